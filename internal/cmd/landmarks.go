package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"web/frontkit/internal/dom"
)

func newLandmarksCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "landmarks [file]",
		Short: "Add ARIA role and label attributes from aria-landmark-/aria-label- classes",
		Long: `Reads an HTML document from file (or stdin when omitted) and writes it back
with role and aria-label attributes derived from marker classes.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			source := "stdin"
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open %s: %w", args[0], err)
				}
				defer f.Close()
				in = f
				source = args[0]
			}

			written, err := dom.TagLandmarks(in, cmd.OutOrStdout(), a.cfg.AllowedRoles())
			if err != nil {
				return err
			}
			a.logger.Debug("landmarks tagged", zap.String("source", source), zap.Int("attributes", written))
			return nil
		},
	}
}
