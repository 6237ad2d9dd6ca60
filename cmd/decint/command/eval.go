package command

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/zeebo/errs"

	"github.com/calebcase/decint/integer"
)

// UsageError is the class of errors caused by malformed command arguments.
var UsageError = errs.Class("usage")

var Eval = &cobra.Command{
	Use:   "eval <x> <op> <y> | eval <neg|pos|abs> <x>",
	Short: "Evaluate a single integer operation and print the result.",
	Long: "Evaluate a single integer operation and print the result.\n\n" +
		"Binary operators: + - * / % << >> < == cmp\n" +
		"Unary operators: neg pos abs\n\n" +
		"Shift counts are non-negative decimal digit counts.",
	Example: "decint eval 5819083357103 '*' 4564982376583\n" +
		"decint eval -- -1891265481 '>>' 7\n" +
		"decint eval neg 651892736454",
	Args: cobra.RangeArgs(2, 3),
	RunE: runEval,
}

func runEval(cmd *cobra.Command, args []string) error {
	var (
		result string
		err    error
	)

	if len(args) == 2 {
		result, err = evalUnary(args[0], args[1])
	} else {
		result, err = evalBinary(args[0], args[1], args[2])
	}

	if err != nil {
		return err
	}

	slog.Debug("eval", "args", args, "result", result)

	_, err = fmt.Fprintln(cmd.OutOrStdout(), result)

	return err
}

func evalUnary(op, arg string) (string, error) {
	x, err := integer.Parse(arg)
	if err != nil {
		return "", err
	}

	switch op {
	case "neg", "-":
		return x.Neg().String(), nil
	case "pos", "+":
		return x.Pos().String(), nil
	case "abs":
		return x.Abs().String(), nil
	}

	return "", UsageError.New("unknown unary operator %q", op)
}

func evalBinary(lhs, op, rhs string) (string, error) {
	x, err := integer.Parse(lhs)
	if err != nil {
		return "", err
	}

	switch op {
	case "<<", ">>":
		n, err := strconv.ParseUint(rhs, 10, 0)
		if err != nil {
			return "", UsageError.New("invalid shift count %q", rhs)
		}

		if op == "<<" {
			if !x.IsZero() && n > uint64(math.MaxInt-x.Digits()) {
				return "", UsageError.New("shift count too large: %s", rhs)
			}

			return x.ShiftLeft(uint(n)).String(), nil
		}

		return x.ShiftRight(uint(n)).String(), nil
	}

	y, err := integer.Parse(rhs)
	if err != nil {
		return "", err
	}

	switch op {
	case "+":
		return x.Add(y).String(), nil
	case "-":
		return x.Sub(y).String(), nil
	case "*":
		return x.Mul(y).String(), nil
	case "/":
		q, err := x.Quo(y)
		if err != nil {
			return "", err
		}

		return q.String(), nil
	case "%":
		r, err := x.Rem(y)
		if err != nil {
			return "", err
		}

		return r.String(), nil
	case "<":
		return strconv.FormatBool(x.Less(y)), nil
	case "==":
		return strconv.FormatBool(x.Equal(y)), nil
	case "cmp":
		return strconv.Itoa(x.Cmp(y)), nil
	}

	return "", UsageError.New("unknown binary operator %q", op)
}
