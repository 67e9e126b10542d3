package main

import (
	"fmt"
	"sort"
	"sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gitrdm/goatomspace/pkg/atomspace"
)

var kbPath string

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Load a YAML knowledge base and evaluate its queries",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		return runQueries(cmd, logger)
	},
}

func init() {
	queryCmd.Flags().StringVarP(&kbPath, "kb", "k", "", "path to a YAML knowledge base file")
	_ = queryCmd.MarkFlagRequired("kb")
}

// newLogger builds a production zap logger, or a development one with
// --verbose.
func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// runQueries evaluates every query in the knowledge base concurrently and
// prints the sorted answer set of each.
func runQueries(cmd *cobra.Command, logger *zap.Logger) error {
	kb, err := loadKnowledgeBase(kbPath)
	if err != nil {
		return err
	}

	store := atomspace.NewStore()
	if err := kb.populate(store); err != nil {
		return err
	}
	logger.Info("knowledge base loaded",
		zap.String("path", kbPath),
		zap.Int("atoms", store.Count()),
		zap.Int("queries", len(kb.Queries)),
	)

	interp, err := atomspace.NewInterpreter(store, atomspace.NewStandardRegistry())
	if err != nil {
		return err
	}

	queries, err := kb.queryAtoms()
	if err != nil {
		return err
	}

	answers := make([][]string, len(queries))
	var mu sync.Mutex

	g := new(errgroup.Group)
	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			atoms := interp.Evaluate(q).Atoms()

			rendered := make([]string, 0, len(atoms))
			for _, a := range atoms {
				rendered = append(rendered, a.String())
			}
			sort.Strings(rendered)

			logger.Debug("query evaluated",
				zap.String("query", q.String()),
				zap.Int("answers", len(rendered)),
			)

			mu.Lock()
			answers[i] = rendered
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, q := range queries {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", q)
		if len(answers[i]) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "  (no results)")
			continue
		}
		for _, a := range answers[i] {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", a)
		}
	}
	return nil
}
