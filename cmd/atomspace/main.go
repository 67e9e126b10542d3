// Command atomspace is a small front end for the atomspace engine. It can
// run a narrated demo of the core operations or load a YAML knowledge base
// and evaluate queries against it.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "atomspace",
	Short: "Symbolic knowledge store and inference engine",
	Long: `atomspace stores structured symbolic terms, matches patterns containing
logic variables against them, and answers queries through grounded
operations and implication-rule chaining.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(queryCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
