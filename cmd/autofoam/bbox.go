package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/autofoam/internal/logger"
	"github.com/Faultbox/autofoam/pkg/stl"
)

var errNoVertices = errors.New("no vertices found")

func (a *app) newBBoxCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stl-bbox <file.stl>...",
		Short: "Print the bounding box of one or more STL files",
		Long: `Print "minx miny minz maxx maxy maxz" over every vertex of the given
STL files. Text and binary files are detected automatically.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			box := stl.NewBox()
			total := 0
			for _, path := range args {
				n, err := accumulateFile(&box, path)
				if err != nil {
					return err
				}
				if n == 0 {
					logger.Warn("no vertices in file", zap.String("file", path))
				}
				total += n
			}
			if total == 0 {
				return errNoVertices
			}
			logger.Info("bounding box",
				zap.Int("files", len(args)),
				zap.Int("vertices", total),
				zap.Float32("diagonal", box.Size().Length()))

			_, err := fmt.Fprintln(cmd.OutOrStdout(), box.String())
			return err
		},
	}
}

func accumulateFile(box *stl.Box, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	r, enc, err := stl.NewReader(f)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug("reading STL", zap.String("file", path), zap.Stringer("encoding", enc))

	n, err := stl.Accumulate(box, r, func(err error) {
		logger.Warn("skipping vertex record", zap.String("file", path), zap.Error(err))
	})
	if err != nil {
		return n, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug("read vertices", zap.String("file", path), zap.Int("count", n))
	return n, nil
}
