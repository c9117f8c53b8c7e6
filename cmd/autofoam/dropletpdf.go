package main

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/autofoam/internal/logger"
	"github.com/Faultbox/autofoam/pkg/rosinrammler"
)

func (a *app) newDropletPDFCmd() *cobra.Command {
	var d32, dv90 float64

	cmd := &cobra.Command{
		Use:   "droplet-pdf",
		Short: "Print a droplet size distribution matching SMD and Dv90",
		Long: `Calibrate a Rosin-Rammler distribution whose Sauter mean diameter is
--d32 and whose 90th volume percentile is --dv90 (both in micrometres), and
print its cumulative distribution sampled up to 1.5 Dv90.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pdf := a.cfg.DropletPDF
			smd := d32 * pdf.UnitScale
			p90 := dv90 * pdf.UnitScale

			dist, cal, err := rosinrammler.FromSMDAndDv90WithOptions(smd, p90, a.cfg.Calibration.Options())
			if err != nil {
				return err
			}
			logger.Debug("calibrated distribution",
				zap.Stringer("distribution", dist),
				zap.Int("iterations", cal.Iterations),
				zap.Bool("converged", cal.Converged),
				zap.Float64("relative_error", cal.RelativeError))
			if !cal.Converged {
				logger.Warn("calibration did not converge, using best effort",
					zap.Int("iterations", cal.Iterations),
					zap.Float64("relative_error", cal.RelativeError))
			}

			w := bufio.NewWriter(cmd.OutOrStdout())
			fmt.Fprintf(w, "// desired_d32: %v, desired_dv90: %v, calculated_d32: %v\n", smd, p90, dist.SMD())
			for _, s := range dist.CDFTable(pdf.RangeFactor*p90, pdf.Samples, pdf.Offset) {
				fmt.Fprintf(w, "( %.6g %.4f )\n", s.X, s.CDF)
			}
			return w.Flush()
		},
	}

	cmd.Flags().Float64Var(&d32, "d32", 0, "SMD [um]")
	cmd.Flags().Float64Var(&dv90, "dv90", 0, "Dv90 [um]")
	cmd.MarkFlagRequired("d32")
	cmd.MarkFlagRequired("dv90")

	return cmd
}
