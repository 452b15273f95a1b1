package cli

import (
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dgallion1/docoutline/internal/pipeline"
)

func extractCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "extract <input-dir> <output-dir>",
		Short: "Write one outline artifact per supported document in a directory",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			orch := pipeline.NewOrchestrator(a.cfg, a.log)
			orch.Start(ctx)
			defer orch.Stop()

			items, err := orch.RunBatch(ctx, args[0], args[1])
			printBatch(cmd.OutOrStdout(), items)
			if err != nil {
				return err
			}

			failed := countFailed(items)
			a.log.Info("batch finished", "documents", len(items), "failed", failed)
			if failed > 0 {
				return fmt.Errorf("%d of %d document(s) failed", failed, len(items))
			}
			return nil
		},
	}

	c.Flags().StringVarP(&a.flags.format, "format", "f", "", "Output format: json|markdown|html (overrides OUTPUT_FORMAT)")
	c.Flags().IntVarP(&a.flags.workers, "workers", "j", 0, "Documents processed concurrently (overrides WORKER_COUNT)")
	return c
}

func printBatch(w io.Writer, items []pipeline.BatchItem) {
	for _, it := range items {
		if it.Err != nil {
			fmt.Fprintf(w, "FAIL %s: %v\n", it.File, it.Err)
			continue
		}
		fmt.Fprintf(w, "ok   %s -> %s (%s)\n", it.File, it.Output, it.Title)
	}
}

func countFailed(items []pipeline.BatchItem) int {
	n := 0
	for _, it := range items {
		if it.Err != nil {
			n++
		}
	}
	return n
}
