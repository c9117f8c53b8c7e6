package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Faultbox/autofoam/pkg/vtp"
)

func (a *app) newFieldsCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "fields",
		Short: "List the cell fields of a .vtp document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := vtp.Load(file)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, name := range doc.Fields() {
				if _, err := fmt.Fprintln(out, name); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Path to .vtp file")
	cmd.MarkFlagRequired("file")

	return cmd
}
