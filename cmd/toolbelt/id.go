package main

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/joshuapare/toolbelt/ident"
)

var idCount int

func init() {
	cmd := newIDCmd()
	cmd.Flags().IntVarP(&idCount, "count", "n", 1, "Number of identifiers to generate")
	rootCmd.AddCommand(cmd)
}

func newIDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "id [uuid|ksuid|ulid]",
		Short: "Generate identifiers",
		Long: `The id command generates identifiers: random UUIDv4, or the
time-sortable KSUID and ULID formats. The default is ulid.

Example:
  toolbelt id
  toolbelt id uuid -n 5
  toolbelt id ksuid --json`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"uuid", "ksuid", "ulid"},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := "ulid"
			if len(args) == 1 {
				kind = args[0]
			}
			return runID(kind)
		},
	}
}

func runID(kind string) error {
	if idCount < 1 {
		return fmt.Errorf("--count must be at least 1")
	}

	var gen func() string
	switch kind {
	case "uuid":
		gen = ident.UUID
	case "ksuid":
		gen = ident.KSUID
	case "ulid":
		gen = ident.ULID
	default:
		return fmt.Errorf("unknown identifier kind %q", kind)
	}

	ids := lo.Times(idCount, func(int) string { return gen() })
	if jsonOut {
		return printJSON(map[string]any{"kind": kind, "ids": ids})
	}
	for _, id := range ids {
		printInfo("%s\n", id)
	}
	return nil
}
