package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/llehouerou/parallax/internal/errmsg"
	"github.com/llehouerou/parallax/internal/imagesrc"
	"github.com/llehouerou/parallax/internal/palette"
	"github.com/llehouerou/parallax/internal/ui/render"
	"github.com/llehouerou/parallax/internal/ui/styles"
)

const paletteTimeout = 30 * time.Second

type paletteOptions struct {
	sample    string
	maxColors int
}

func newPaletteCmd(root *rootFlags) *cobra.Command {
	opts := paletteOptions{maxColors: palette.DefaultMaxColors}

	cmd := &cobra.Command{
		Use:   "palette [IMAGE]",
		Short: "Print the dominant colours the header gradient is built from",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runPalette(cmd, root, path, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.sample, "sample", "s", imagesrc.SampleDusk, "Built-in sample image, when no file is given")
	cmd.Flags().IntVarP(&opts.maxColors, "max", "m", opts.maxColors, "Maximum number of colours")

	return cmd
}

func runPalette(cmd *cobra.Command, root *rootFlags, path string, opts paletteOptions) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	log, err := consoleLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	loader, res := newLoader()
	src, err := resolveSource(res, path, opts.sample)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), paletteTimeout)
	defer cancel()

	start := time.Now()
	img, err := loader.Load(ctx, src)
	if err != nil {
		return fail(errmsg.OpImageLoad, src.String(), err)
	}
	swatches, err := palette.NewMedianCut().Extract(ctx, img, opts.maxColors)
	if err != nil {
		return fail(errmsg.OpPaletteExtract, src.String(), err)
	}
	log.WithFields(map[string]any{
		"source":   src.Key(),
		"swatches": len(swatches),
		"elapsed":  time.Since(start).String(),
	}).Debug("palette extracted")

	out := cmd.OutOrStdout()
	b := img.Bounds()
	summary := fmt.Sprintf("%s  %d×%d", src, b.Dx(), b.Dy())
	if src.Kind == imagesrc.KindFile {
		if info, err := os.Stat(src.Path); err == nil {
			summary += "  " + humanize.IBytes(uint64(info.Size())) //nolint:gosec // file sizes are non-negative
		}
	}
	fmt.Fprintln(out, summary)

	total := 0
	for _, s := range swatches {
		total += s.Population
	}
	for _, s := range swatches {
		block := lipgloss.NewStyle().Foreground(styles.Lip(s.Color)).Render("■■")
		share := 100 * float64(s.Population) / float64(max(total, 1))
		fmt.Fprintf(out, "  %s %s %s %s px\n",
			block,
			s.Hex(),
			render.Pad(fmt.Sprintf("%5.1f%%", share), 7),
			humanize.Comma(int64(s.Population)),
		)
	}
	return nil
}
