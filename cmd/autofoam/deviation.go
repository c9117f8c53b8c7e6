package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/autofoam/internal/logger"
	"github.com/Faultbox/autofoam/pkg/analysis"
	"github.com/Faultbox/autofoam/pkg/vtp"
)

func (a *app) newDeviationCmd() *cobra.Command {
	var file, field string

	cmd := &cobra.Command{
		Use:   "scalar-deviation",
		Short: "Write the normalised deviation of a scalar field",
		Long: `Compute (v - m) / |m| for every polygon, where m is the area-weighted
mean of the field, and store it in the document as <field>_deviation. The
file is rewritten in place.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := vtp.Load(file)
			if err != nil {
				return err
			}

			name, err := analysis.WriteDeviation(doc, field, a.cfg.Deviation.Suffix, a.cfg.Deviation.Epsilon)
			if err != nil {
				return err
			}
			if err := doc.Save(file); err != nil {
				return err
			}

			logger.Debug("wrote deviation field", zap.String("file", file), zap.String("field", name))
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Path to .vtp file")
	cmd.Flags().StringVar(&field, "field", "", "Scalar field name to process")
	cmd.MarkFlagRequired("file")
	cmd.MarkFlagRequired("field")

	return cmd
}
