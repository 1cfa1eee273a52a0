package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gitrdm/tautology/internal/config"
	"github.com/gitrdm/tautology/internal/logx"
	"github.com/gitrdm/tautology/pkg/logic"
	"github.com/gitrdm/tautology/pkg/render"
	"github.com/gitrdm/tautology/pkg/syntax"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Read formulas from stdin, prove each, print or export the proof",
	RunE:  runRepl,
}

func init() {
	replCmd.Flags().StringVar(&flagDotPath, "dot", "", "write each successful proof's DOT rendering to this path instead of printing a debug tree")
}

// runRepl implements the §6.3 REPL: prompt "ψ. ", read one line, parse and
// normalise it, attempt a proof, and on success print a debug rendering or
// write the DOT file. Exit status is 0 on clean EOF; non-zero only if the
// final input processed failed to parse or prove.
func runRepl(cmd *cobra.Command, args []string) error {
	cfg := buildConfig()
	cfg.DotPath = flagDotPath
	logger := logx.New(cfg.LogLevel)
	defer logger.Sync()

	scanner := bufio.NewScanner(os.Stdin)
	var lastErr error
	for {
		fmt.Fprint(cmd.OutOrStdout(), "ψ. ")
		if !scanner.Scan() {
			break
		}
		lastErr = proveOne(cmd, scanner.Text(), cfg, logger)
		if lastErr != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), lastErr)
		}
	}
	if lastErr != nil {
		rootExitStatus = 1
	} else {
		rootExitStatus = 0
	}
	return nil
}

// proveOne runs the parse -> normalise -> engine -> extractor -> render
// pipeline (§2) for a single line of input.
func proveOne(cmd *cobra.Command, line string, cfg *config.Config, logger *logx.Logger) error {
	expr, err := syntax.ParseNormal(line)
	if err != nil {
		return err
	}
	proof, err := logic.Proof(expr, cfg.LogicOptions(logger)...)
	if err != nil {
		return err
	}
	if err := logic.Verify(proof); err != nil {
		return err
	}
	if cfg.DotPath != "" {
		return os.WriteFile(cfg.DotPath, []byte(render.DOT(proof)), 0o644)
	}
	fmt.Fprint(cmd.OutOrStdout(), render.Debug(proof))
	return nil
}
