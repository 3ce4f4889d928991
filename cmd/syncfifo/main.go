// The syncfifo command runs synchronous FIFO models from the command line.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "syncfifo",
	Short: "Run cycle-accurate synchronous FIFO models.",
	Long: `The syncfifo tool builds a synchronous FIFO model, drives it with ` +
		`configurable traffic for a number of cycles, and reports what the ` +
		`model did. Runs can be traced into a SQLite database and inspected ` +
		`live over HTTP.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
