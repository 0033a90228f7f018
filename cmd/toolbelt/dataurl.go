package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/toolbelt/convert"
	"github.com/joshuapare/toolbelt/dataurl"
)

var (
	dataurlMediaType string
	dataurlDecode    bool
)

func init() {
	cmd := newDataurlCmd()
	cmd.Flags().StringVar(&dataurlMediaType, "media-type", "", "Media type for encoding (default from file content: text/plain)")
	cmd.Flags().BoolVarP(&dataurlDecode, "decode", "d", false, "Decode a data: URL instead of encoding a file")
	rootCmd.AddCommand(cmd)
}

func newDataurlCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dataurl <file | url>",
		Short: "Encode a file as a data: URL, or decode one",
		Long: `The dataurl command turns a file into an RFC 2397 data: URL, or with
--decode, parses a data: URL and writes its payload to stdout.

Example:
  toolbelt dataurl --media-type image/png logo.png
  toolbelt dataurl --decode "data:text/plain;base64,aGVsbG8="`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if dataurlDecode {
				return runDataurlDecode(args[0])
			}
			return runDataurlEncode(args[0])
		},
	}
}

func runDataurlEncode(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	u := dataurl.New(data, dataurlMediaType)
	printVerbose("%s: %d bytes as %s\n", path, len(data), u.MediaType)
	printInfo("%s\n", u.String())
	return nil
}

func runDataurlDecode(raw string) error {
	u, err := dataurl.Parse(raw)
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(map[string]any{
			"mediaType": u.MediaType,
			"params":    u.Params,
			"base64":    u.Base64,
			"payload":   convert.Base64String(u.Data),
		})
	}
	printVerbose("%s, %d bytes\n", u.MediaType, len(u.Data))
	if _, err := os.Stdout.Write(u.Data); err != nil {
		return fmt.Errorf("write payload: %w", err)
	}
	return nil
}
