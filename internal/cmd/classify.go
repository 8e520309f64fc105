package cmd

import (
	"encoding/json"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"web/frontkit/internal/viewport"
)

func newClassifyCmd(a *app) *cobra.Command {
	var (
		width, height float64
		asJSON        bool
	)

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Print viewport size flags for the given dimensions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := viewport.NewWindowSize(
				viewport.StaticProvider{Width: width, Height: height},
				a.cfg.ViewportOptions(),
				a.logger,
			)
			if err != nil {
				return err
			}
			if asJSON {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(ws.Flags())
			}
			renderFlags(cmd.OutOrStdout(), width, height, ws.Flags())
			return nil
		},
	}

	cmd.Flags().Float64Var(&width, "width", 0, "viewport width in pixels")
	cmd.Flags().Float64Var(&height, "height", 0, "viewport height in pixels")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print flags as JSON")
	_ = cmd.MarkFlagRequired("width")
	_ = cmd.MarkFlagRequired("height")
	return cmd
}

func renderFlags(w io.Writer, width, height float64, f viewport.Flags) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("%gx%g", width, height)
	t.AppendHeader(table.Row{"Flag", "Value"})
	t.AppendRows([]table.Row{
		{"small", f.IsSmall},
		{"medium", f.IsMedium},
		{"large", f.IsLarge},
		{"larger", f.IsLarger},
		{"tall", f.IsTall},
	})
	t.Render()
}
