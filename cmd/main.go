package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Main runs the root command against the process arguments and exits. Input
// problems are reported inline and still exit 0; only fatal errors exit 1.
func Main() {
	os.Exit(run(Root()))
}

// run executes root and maps its outcome to an exit status, printing any
// fatal error on the command's error stream.
func run(root *cobra.Command) int {
	err := root.Execute()
	if err == nil {
		return 0
	}
	fmt.Fprintln(root.ErrOrStderr(), err.Error())
	return 1
}
