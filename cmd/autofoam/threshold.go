package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/autofoam/internal/logger"
	"github.com/Faultbox/autofoam/pkg/analysis"
	"github.com/Faultbox/autofoam/pkg/vtp"
)

func (a *app) newThresholdCmd() *cobra.Command {
	var (
		file       string
		field      string
		percentile float64
		area       float64
	)

	cmd := &cobra.Command{
		Use:   "scalar-area-threshold",
		Short: "Find the scalar value bounding a region of a given area",
		Long: `Bin the cell field by value, weighting each polygon by its area, and
print the field value below which the requested area (absolute, or as a
percentage of the total) lies.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := vtp.Load(file)
			if err != nil {
				return err
			}
			values, err := doc.Field(field)
			if err != nil {
				return err
			}
			areas := doc.Mesh().Areas()
			binWidth := a.cfg.Histogram.BinWidth

			var value float64
			if cmd.Flags().Changed("percentile") {
				value, err = analysis.PercentileThreshold(values, areas, binWidth, percentile)
			} else {
				value, err = analysis.AreaThreshold(values, areas, binWidth, area)
			}
			if err != nil {
				return fmt.Errorf("field %q: %w", field, err)
			}
			logger.Debug("threshold", zap.String("field", field), zap.Float64("bin_width", binWidth), zap.Float64("value", value))

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%.1f\n", value)
			return err
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Path to .vtp file")
	cmd.Flags().StringVar(&field, "field", "", "Scalar field name")
	cmd.Flags().Float64Var(&percentile, "percentile", 0, "Percentile threshold (0-100)")
	cmd.Flags().Float64Var(&area, "area", 0, "Absolute area threshold")
	cmd.MarkFlagRequired("file")
	cmd.MarkFlagRequired("field")
	cmd.MarkFlagsMutuallyExclusive("percentile", "area")
	cmd.MarkFlagsOneRequired("percentile", "area")

	return cmd
}
