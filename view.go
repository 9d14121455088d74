package main

import (
	"github.com/spf13/cobra"

	"github.com/llehouerou/parallax/internal/app"
	"github.com/llehouerou/parallax/internal/errmsg"
	"github.com/llehouerou/parallax/internal/icons"
	"github.com/llehouerou/parallax/internal/imagesrc"
	"github.com/llehouerou/parallax/internal/keymap"
	"github.com/llehouerou/parallax/internal/logger"
)

type viewOptions struct {
	image      string
	sample     string
	banner     string
	title      string
	paragraphs int
}

func defaultViewOptions() viewOptions {
	return viewOptions{
		sample:     imagesrc.SampleDusk,
		title:      "Evening over the ridge",
		paragraphs: 12,
	}
}

func newViewCmd(root *rootFlags) *cobra.Command {
	opts := defaultViewOptions()

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Scroll placeholder content under a collapsing header",
		Long: "Scroll placeholder content under a collapsing header.\n\nKeys: " +
			keymap.Hint(keymap.All),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.image, "image", "i", "", "Header image file (JPEG, PNG or GIF)")
	cmd.Flags().StringVarP(&opts.sample, "sample", "s", opts.sample, "Built-in sample image")
	cmd.Flags().StringVar(&opts.banner, "banner", "", "Show text instead of an image")
	cmd.Flags().StringVarP(&opts.title, "title", "t", opts.title, "Header title")
	cmd.Flags().IntVar(&opts.paragraphs, "paragraphs", opts.paragraphs, "Paragraphs of placeholder content")
	cmd.MarkFlagsMutuallyExclusive("image", "sample", "banner")

	return cmd
}

func runView(root *rootFlags, opts viewOptions) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	icons.Init(cfg.Header.Icons)

	loader, res := newLoader()
	var src *imagesrc.Source
	if opts.banner == "" {
		s, err := resolveSource(res, opts.image, opts.sample)
		if err != nil {
			return err
		}
		src = &s
	}

	logPath, err := cfg.LogPath()
	if err != nil {
		return fail(errmsg.OpLogOpen, "", err)
	}
	log, closer, err := logger.OpenFile(logPath, cfg.Log.Level)
	if err != nil {
		return fail(errmsg.OpLogOpen, logPath, err)
	}
	defer closer.Close()

	err = app.Run(app.Options{
		Config:  cfg,
		Title:   opts.title,
		Image:   src,
		Banner:  opts.banner,
		Body:    app.SampleText(opts.paragraphs),
		Loader:  loader,
		Samples: res.Names(),
		Logger:  log,
	})
	if err != nil {
		log.Error(err, "UI stopped")
		return fail(errmsg.OpUIStart, "", err)
	}
	return nil
}
