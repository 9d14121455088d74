package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/llehouerou/parallax/internal/errmsg"
	"github.com/llehouerou/parallax/internal/header"
	"github.com/llehouerou/parallax/internal/ui"
	"github.com/llehouerou/parallax/internal/ui/layout"
	"github.com/llehouerou/parallax/internal/ui/render"
)

type probeOptions struct {
	offset  float64
	steps   int
	title   string
	width   int
	navIcon int
}

func newProbeCmd(root *rootFlags) *cobra.Command {
	opts := probeOptions{title: defaultViewOptions().title, width: 80, navIcon: 1}

	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Print the header state computed for a scroll offset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProbe(cmd, root, opts)
		},
	}

	cmd.Flags().Float64VarP(&opts.offset, "offset", "o", 0, "Scroll offset in rows")
	cmd.Flags().IntVar(&opts.steps, "steps", 0, "Print a table of this many steps across the collapse distance")
	cmd.Flags().StringVarP(&opts.title, "title", "t", opts.title, "Title measured for the title offsets")
	cmd.Flags().IntVarP(&opts.width, "width", "w", opts.width, "Terminal width used to wrap the title")
	cmd.Flags().IntVar(&opts.navIcon, "nav-width", opts.navIcon, "Navigation icon width in cells")

	return cmd
}

func runProbe(cmd *cobra.Command, root *rootFlags, opts probeOptions) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	log, err := consoleLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	if opts.width < ui.MinWidth {
		return fail(errmsg.OpHeaderProbe, "", fmt.Errorf("width %d is below the minimum of %d", opts.width, ui.MinWidth))
	}

	hc := cfg.Header.Header()
	ctrl, err := header.New(hc, header.WithLogger(log))
	if err != nil {
		return fail(errmsg.OpHeaderCreate, "", err)
	}
	defer ctrl.Close()

	slots := header.SlotNavigationIcon | header.SlotTitle
	ctrl.Expect(slots)
	ctrl.CaptureNavigationIconWidth(float64(opts.navIcon))
	w, h := render.NaturalSize(opts.title, layout.TitleWidth(opts.width, hc.ContentPadding))
	ctrl.CaptureTitleNaturalSize(header.Size{Width: float64(w), Height: float64(h)})

	out := cmd.OutOrStdout()
	if opts.steps <= 0 {
		printState(out, ctrl.OnScrollChanged(opts.offset))
		return nil
	}

	distance := hc.DefaultHeight - hc.MinHeight()
	printTableHeader(out)
	for i := range opts.steps + 1 {
		offset := distance * float64(i) / float64(opts.steps)
		printTableRow(out, ctrl.OnScrollChanged(offset))
	}
	return nil
}

func printState(out io.Writer, st header.State) {
	rows := []struct {
		label string
		value any
	}{
		{"offset", fmt.Sprintf("%g", st.ScrollOffset)},
		{"header height", fmt.Sprintf("%g", st.HeaderHeight)},
		{"progress", fmt.Sprintf("%.3f", st.Progress)},
		{"content alpha", fmt.Sprintf("%.3f", st.ContentAlpha)},
		{"gradient alpha", fmt.Sprintf("%.3f", st.GradientAlpha)},
		{"shadow alpha", fmt.Sprintf("%.3f", st.ShadowAlpha)},
		{"title scale", fmt.Sprintf("%.3f", st.TitleScale)},
		{"title lines", st.TitleLineClamp},
		{"header scale", fmt.Sprintf("%.3f", st.HeaderScale)},
		{"title offset x", fmt.Sprintf("%.2f", st.TitleOffsetX)},
		{"title offset y", fmt.Sprintf("%.2f", st.TitleOffsetY)},
		{"collapsed", st.Collapsed},
	}
	for _, r := range rows {
		fmt.Fprintf(out, "%s %v\n", render.Pad(r.label, 16), r.value)
	}
}

var tableColumns = []string{"offset", "height", "alpha", "gradient", "scale", "lines", "x", "y"}

const tableColumnWidth = 9

func printTableHeader(out io.Writer) {
	for _, c := range tableColumns {
		fmt.Fprint(out, render.Pad(c, tableColumnWidth))
	}
	fmt.Fprintln(out)
}

func printTableRow(out io.Writer, st header.State) {
	cells := []string{
		fmt.Sprintf("%.2f", st.ScrollOffset),
		fmt.Sprintf("%.2f", st.HeaderHeight),
		fmt.Sprintf("%.2f", st.ContentAlpha),
		fmt.Sprintf("%.2f", st.GradientAlpha),
		fmt.Sprintf("%.2f", st.TitleScale),
		fmt.Sprintf("%d", st.TitleLineClamp),
		fmt.Sprintf("%.2f", st.TitleOffsetX),
		fmt.Sprintf("%.2f", st.TitleOffsetY),
	}
	for _, c := range cells {
		fmt.Fprint(out, render.Pad(c, tableColumnWidth))
	}
	fmt.Fprintln(out)
}
