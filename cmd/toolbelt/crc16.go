package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/toolbelt/cmd/toolbelt/logger"
	"github.com/joshuapare/toolbelt/crc16"
	"github.com/joshuapare/toolbelt/fsx"
)

var (
	crc16Method string
	crc16Text   string
)

func init() {
	cmd := newCRC16Cmd()
	cmd.Flags().StringVarP(&crc16Method, "method", "m", "modbus", "Variant: modbus, ccitt-false, kermit")
	cmd.Flags().StringVarP(&crc16Text, "text", "t", "", "Checksum a literal string instead of a file")
	rootCmd.AddCommand(cmd)
}

func newCRC16Cmd() *cobra.Command {
	return &cobra.Command{
		Use:   "crc16 [file]",
		Short: "Compute a CRC-16 checksum of a file or literal",
		Long: `The crc16 command computes a 16-bit checksum over a file's bytes, or over
a literal string passed with --text.

Example:
  toolbelt crc16 firmware.bin
  toolbelt crc16 --method kermit firmware.bin
  toolbelt crc16 --text "123456789" --method ccitt-false`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCRC16(args)
		},
	}
}

func runCRC16(args []string) error {
	method, err := crc16.ParseMethod(crc16Method)
	if err != nil {
		return err
	}

	data, label, err := inputBytes(args, crc16Text)
	if err != nil {
		return err
	}

	sum := crc16.Checksum(method, data)
	logger.Debug("crc16 computed", "method", method.String(), "bytes", len(data), "sum", sum)

	if jsonOut {
		return printJSON(map[string]any{
			"input":    label,
			"method":   method.String(),
			"length":   len(data),
			"checksum": fmt.Sprintf("0x%04X", sum),
		})
	}
	printVerbose("%s: %d bytes, method %s\n", label, len(data), method)
	printInfo("0x%04X\n", sum)
	return nil
}

// inputBytes resolves the common file-or---text argument shape. Files are
// memory-mapped and copied out so the mapping can be released before the
// caller touches the bytes.
func inputBytes(args []string, literal string) (data []byte, label string, err error) {
	if literal != "" {
		return []byte(literal), "literal", nil
	}
	if len(args) != 1 {
		return nil, "", fmt.Errorf("expected a file argument or --text")
	}
	mapped, release, err := fsx.Map(args[0])
	if err != nil {
		return nil, "", err
	}
	defer release()
	out := make([]byte, len(mapped))
	copy(out, mapped)
	return out, args[0], nil
}
