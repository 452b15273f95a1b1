package cli

import (
	"github.com/spf13/cobra"

	"github.com/dgallion1/docoutline/internal/pipeline"
	"github.com/dgallion1/docoutline/internal/render"
)

func fileCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "file <path>",
		Short: "Print the outline of a single document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := a.cfg.Format()
			job := pipeline.NewFileJob(args[0], "", a.cfg.Outline, format)
			pipeline.NewOrchestrator(a.cfg, a.log).Run(cmd.Context(), job)
			if err := job.Err(); err != nil {
				return err
			}
			doc, _ := job.Outline()
			return render.Write(cmd.OutOrStdout(), doc, format)
		},
	}

	c.Flags().StringVarP(&a.flags.format, "format", "f", "", "Output format: json|markdown|html (overrides OUTPUT_FORMAT)")
	return c
}
