// Command tautology is the interactive front end for the coalescence engine
// (SPEC_FULL.md §6.3): a REPL that proves propositional formulas one at a
// time, plus a batch subcommand that proves many formulas from a file and a
// subcommand that writes one formula's proof as Graphviz DOT. Command registration follows the teacher corpus's cobra convention
// (theRebelliousNerd-codenerd/cmd/nerd): one `var xCmd = &cobra.Command{...}`
// per subcommand, wired together in init().
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gitrdm/tautology/internal/config"
	"github.com/gitrdm/tautology/internal/logx"
)

var (
	flagLogLevel   string
	flagSparse     bool
	flagDimBound   int
	flagDotPath    string
	rootExitStatus int
)

var rootCmd = &cobra.Command{
	Use:   "tautology",
	Short: "Prove propositional tautologies with the coalescence engine",
	Long: `tautology attempts to prove that a propositional formula is a
tautology by saturating a sequent-style search (the coalescence engine) and,
on success, extracting the derivation as a proof DAG.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "log level: trace, debug, info")
	rootCmd.PersistentFlags().BoolVar(&flagSparse, "sparse", false, "enable the sparse_fire frontier-shrink optimisation")
	rootCmd.PersistentFlags().IntVar(&flagDimBound, "dim-bound", 0, "override the dimension bound (0 selects |atoms(E)|)")

	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(proveCmd)
	rootCmd.AddCommand(dotCmd)
}

func buildConfig() *config.Config {
	opts := []config.Option{
		config.WithLogLevel(logx.ParseLevel(flagLogLevel)),
		config.WithSparse(flagSparse),
	}
	if flagDimBound > 0 {
		opts = append(opts, config.WithDimensionBound(flagDimBound))
	}
	return config.New(opts...)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(rootExitStatus)
}
