package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gitrdm/tautology/internal/logx"
	"github.com/gitrdm/tautology/pkg/logic"
	"github.com/gitrdm/tautology/pkg/render"
	"github.com/gitrdm/tautology/pkg/syntax"
)

var flagDotOut string

var dotCmd = &cobra.Command{
	Use:   "dot <formula>",
	Short: "Prove a single formula and write its proof DAG as Graphviz DOT",
	Args:  cobra.ExactArgs(1),
	RunE:  runDot,
}

func init() {
	dotCmd.Flags().StringVarP(&flagDotOut, "output", "o", "proof.dot", "output path for the DOT rendering")
}

func runDot(cmd *cobra.Command, args []string) error {
	cfg := buildConfig()
	logger := logx.New(cfg.LogLevel)
	defer logger.Sync()

	expr, err := syntax.ParseNormal(args[0])
	if err != nil {
		rootExitStatus = 1
		return err
	}
	proof, err := logic.Proof(expr, cfg.LogicOptions(logger)...)
	if err != nil {
		rootExitStatus = 1
		return err
	}
	if err := logic.Verify(proof); err != nil {
		rootExitStatus = 1
		return err
	}
	if err := os.WriteFile(flagDotOut, []byte(render.DOT(proof)), 0o644); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", flagDotOut)
	return nil
}
