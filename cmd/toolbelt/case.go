package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/toolbelt/casing"
)

var caseTo string

var caseConverters = map[string]func(string) string{
	"snake":           casing.Snake,
	"screaming-snake": casing.ScreamingSnake,
	"camel":           casing.Camel,
	"pascal":          casing.Pascal,
	"kebab":           casing.Kebab,
	"screaming-kebab": casing.ScreamingKebab,
	"title":           casing.Title,
}

func init() {
	cmd := newCaseCmd()
	cmd.Flags().StringVar(&caseTo, "to", "snake",
		"Target convention: snake, screaming-snake, camel, pascal, kebab, screaming-kebab, title")
	rootCmd.AddCommand(cmd)
}

func newCaseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "case <identifier>...",
		Short: "Convert identifiers between case conventions",
		Long: `The case command converts identifiers between the usual programming
case conventions.

Example:
  toolbelt case HelloWorld
  toolbelt case --to pascal user_id parent_id
  toolbelt case --to kebab ParseHTTPResponse`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCase(args)
		},
	}
}

func runCase(args []string) error {
	conv, ok := caseConverters[caseTo]
	if !ok {
		return fmt.Errorf("unknown case convention %q", caseTo)
	}

	if jsonOut {
		out := make(map[string]string, len(args))
		for _, arg := range args {
			out[arg] = conv(arg)
		}
		return printJSON(out)
	}
	for _, arg := range args {
		printInfo("%s\n", conv(arg))
	}
	return nil
}
