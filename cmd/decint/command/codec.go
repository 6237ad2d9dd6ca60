package command

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/calebcase/decint/control"
	"github.com/calebcase/decint/integer"
)

var schema = integer.Schema{Nullable: true}

var Encode = &cobra.Command{
	Use:   "encode <x>...",
	Short: "Write integers as a hex encoded BSV stream.",
	Long: "Write integers as a hex encoded BSV stream.\n\n" +
		"The argument `null` encodes a Null block.",
	Example: "decint encode 0 1 -- -524287 null",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		buf := &bytes.Buffer{}

		if err := encode(buf, args); err != nil {
			return err
		}

		slog.Debug("encoded", "values", len(args), "bytes", buf.Len())

		_, err := fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(buf.Bytes()))

		return err
	},
}

var Decode = &cobra.Command{
	Use:     "decode <hex>",
	Short:   "Print the integers of a hex encoded BSV stream, one per line.",
	Example: "decint decode 80821fffff00",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := hex.DecodeString(strings.TrimSpace(args[0]))
		if err != nil {
			return UsageError.Wrap(err)
		}

		return decode(cmd.OutOrStdout(), bytes.NewReader(data))
	},
}

func encode(w io.Writer, args []string) error {
	enc := integer.NewEncoder(schema, control.NewEncoder(w))

	for _, arg := range args {
		if arg == "null" {
			if err := enc.Encode(nil); err != nil {
				return err
			}

			continue
		}

		x, err := integer.Parse(arg)
		if err != nil {
			return err
		}

		if err := enc.Encode(&x); err != nil {
			return err
		}
	}

	return nil
}

func decode(w io.Writer, r io.Reader) error {
	dec := integer.NewDecoder(schema, control.NewDecoder(r))

	for {
		x, err := dec.Decode()
		if err == io.EOF {
			return nil
		}

		if err != nil {
			return err
		}

		line := "null"
		if x != nil {
			line = x.String()
		}

		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
}
