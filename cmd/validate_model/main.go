// Command validate_model checks a problem model for completeness and
// consistency.
//
//	validate_model model.xml
//	validate_model model.json
//	validate_model --stdin < model.xml
//
// The report goes to stdout. Exit status is 0 when the model is valid and 1
// otherwise, including usage errors, missing files and undetectable input.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/roach88/modelcheck/internal/cli"
)

func main() {
	os.Exit(run())
}

func run() int {
	err := cli.NewRootCommand().Execute()
	if err != nil {
		// ExitErrors have already been reported on stdout.
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
	}
	return cli.GetExitCode(err)
}
