// Command decint evaluates and encodes arbitrary-precision decimal integers.
package main

import (
	"fmt"
	"os"

	"github.com/calebcase/decint/cmd/decint/command"
)

func main() {
	if err := command.Root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
