package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/toolbelt/bigend"
	"github.com/joshuapare/toolbelt/convert"
)

var (
	decodeType   string
	decodeOffset int
)

func init() {
	cmd := newDecodeCmd()
	cmd.Flags().StringVarP(&decodeType, "type", "T", "u32", "Field type: bool, i16, u16, i32, u32, i64, u64, f32, f64")
	cmd.Flags().IntVar(&decodeOffset, "offset", 0, "Byte offset of the field")
	rootCmd.AddCommand(cmd)
}

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <hex>",
		Short: "Decode a big-endian field from hex bytes",
		Long: `The decode command interprets hex-encoded bytes as a big-endian value of
the given type, starting at the given offset.

Example:
  toolbelt decode 12345678
  toolbelt decode --type u16 --offset 2 12345678
  toolbelt decode --type f64 3FF0000000000000`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(args[0])
		},
	}
}

func runDecode(hexArg string) error {
	buf, err := convert.FromHexString(strings.TrimPrefix(hexArg, "0x"))
	if err != nil {
		return err
	}

	width := fieldWidth(decodeType)
	if width == 0 {
		return fmt.Errorf("unknown field type %q", decodeType)
	}
	if decodeOffset < 0 || decodeOffset+width > len(buf) {
		return fmt.Errorf(
			"field %s at offset %d needs %d byte(s), buffer has %d",
			decodeType, decodeOffset, width, len(buf),
		)
	}

	value := decodeField(buf, decodeOffset, decodeType)
	if jsonOut {
		return printJSON(map[string]any{
			"type":   decodeType,
			"offset": decodeOffset,
			"value":  value,
		})
	}
	printInfo("%v\n", value)
	return nil
}

func fieldWidth(typ string) int {
	switch typ {
	case "bool":
		return bigend.SizeBool
	case "i16", "u16":
		return bigend.Size16
	case "i32", "u32", "f32", "rune":
		return bigend.Size32
	case "i64", "u64", "f64":
		return bigend.Size64
	}
	return 0
}

func decodeField(b []byte, off int, typ string) any {
	switch typ {
	case "bool":
		return bigend.Bool(b, off)
	case "i16":
		return bigend.Int16(b, off)
	case "u16":
		return bigend.Uint16(b, off)
	case "i32":
		return bigend.Int32(b, off)
	case "u32":
		return bigend.Uint32(b, off)
	case "i64":
		return bigend.Int64(b, off)
	case "u64":
		return bigend.Uint64(b, off)
	case "f32":
		return bigend.Float32(b, off)
	case "f64":
		return bigend.Float64(b, off)
	case "rune":
		return string(bigend.Rune(b, off))
	}
	return nil
}
