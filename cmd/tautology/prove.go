package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gitrdm/tautology/internal/logx"
	"github.com/gitrdm/tautology/internal/parallel"
	"github.com/gitrdm/tautology/pkg/logic"
	"github.com/gitrdm/tautology/pkg/syntax"
)

var flagProveWorkers int

var proveCmd = &cobra.Command{
	Use:   "prove <file>",
	Short: "Prove every formula in a file (one per line), in parallel",
	Long: `prove reads one formula per non-empty line from the given file and
proves each independently. Formulas are fanned out across a fixed worker
pool (internal/parallel); every individual coalescence run still proceeds
single-threaded (SPEC_FULL.md §5) — only the across-formula batch is
concurrent.`,
	Args: cobra.ExactArgs(1),
	RunE: runProve,
}

func init() {
	proveCmd.Flags().IntVar(&flagProveWorkers, "workers", 0, "worker count (0 selects runtime.NumCPU())")
}

func runProve(cmd *cobra.Command, args []string) error {
	formulas, err := readFormulas(args[0])
	if err != nil {
		return err
	}

	cfg := buildConfig()
	logger := logx.New(cfg.LogLevel)
	defer logger.Sync()

	tasks := make([]parallel.Task, len(formulas))
	for i, formula := range formulas {
		formula := formula
		tasks[i] = func(ctx context.Context) (any, error) {
			expr, err := syntax.ParseNormal(formula)
			if err != nil {
				return nil, err
			}
			proof, err := logic.Proof(expr, cfg.LogicOptions(logger)...)
			if err != nil {
				return nil, err
			}
			return proof, logic.Verify(proof)
		}
	}

	pool := parallel.NewWorkerPool(flagProveWorkers)
	results := pool.Run(cmd.Context(), tasks)

	failures := 0
	for i, r := range results {
		if r.Err != nil {
			failures++
			fmt.Fprintf(cmd.OutOrStdout(), "%d: %s -> FAILED: %v\n", i+1, formulas[i], r.Err)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d: %s -> proved\n", i+1, formulas[i])
	}
	if failures > 0 {
		rootExitStatus = 1
	}
	return nil
}

func readFormulas(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}
