package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Faultbox/autofoam/pkg/vtp"
)

func (a *app) newVTTCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "print-as-vtt <value>",
		Short: "Print a value as a one-cell VTK table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[0], 32)
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", args[0], err)
			}
			return vtp.WriteTable(cmd.OutOrStdout(), "value", float32(value))
		},
	}
}
