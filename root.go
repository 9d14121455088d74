package main

import (
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/llehouerou/parallax/internal/config"
	"github.com/llehouerou/parallax/internal/errmsg"
	"github.com/llehouerou/parallax/internal/imagesrc"
	"github.com/llehouerou/parallax/internal/logger"
)

type rootFlags struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "parallax",
		Short:         "A collapsing parallax header for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand, show the demo with its defaults.
			return runView(flags, defaultViewOptions())
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Config file (default: XDG config dir, then ./config.toml)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Log debug output")

	cmd.AddCommand(newViewCmd(flags))
	cmd.AddCommand(newPaletteCmd(flags))
	cmd.AddCommand(newProbeCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// fail turns an error into the message printed to the user.
func fail(op errmsg.Op, context string, err error) error {
	return errors.New(errmsg.FormatWith(op, context, err))
}

func loadConfig(flags *rootFlags) (*config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, fail(errmsg.OpConfigLoad, flags.configPath, err)
	}
	if flags.verbose {
		cfg.Log.Level = "debug"
	}
	return cfg, nil
}

// consoleLogger logs to w, readable when w is a terminal.
func consoleLogger(cfg *config.Config, w io.Writer) (*logger.Logger, error) {
	log, err := logger.New(logger.Options{
		Level:         cfg.Log.Level,
		HumanReadable: logger.IsTerminal(w),
		Writer:        w,
	})
	if err != nil {
		return nil, fail(errmsg.OpLogOpen, "", err)
	}
	return log, nil
}

// newLoader resolves files from disk and sample names from the built-in
// resources.
func newLoader() (imagesrc.Multi, *imagesrc.Resources) {
	res := imagesrc.NewResources()
	imagesrc.RegisterSamples(res)
	return imagesrc.Multi{
		imagesrc.KindFile:     imagesrc.FileLoader{},
		imagesrc.KindResource: res,
	}, res
}

// resolveSource picks the image named by --image or --sample.
func resolveSource(res *imagesrc.Resources, path, sample string) (imagesrc.Source, error) {
	if path != "" {
		return imagesrc.File(path), nil
	}
	for _, name := range res.Names() {
		if name == sample {
			return imagesrc.Resource(name), nil
		}
	}
	return imagesrc.Source{}, fail(errmsg.OpImageUnknown, sample, imagesrc.ErrNotFound)
}
