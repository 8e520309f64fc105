package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"web/frontkit/internal/dom"
)

func newPreloadCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "preload <path>...",
		Short: "Print <img> elements that preload the given image paths",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			images := dom.PreloadImages(args)
			a.logger.Debug("images prepared", zap.Int("count", len(images)))
			return dom.RenderNodes(cmd.OutOrStdout(), images)
		},
	}
}
