package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/phsym/console-slog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"gioui.org/app"

	"github.com/esimov/decor"
	"github.com/esimov/decor/internal/config"
	"github.com/esimov/decor/utils"
)

const HelpBanner = `
┌┬┐┌─┐┌─┐┌─┐┬─┐
 ││├┤ │  │ │├┬┘
─┴┘└─┘└─┘└─┘┴└─

Client side window decorations for Gio.
    Version: %s
`

// Version indicates the current build version.
var Version string

type options struct {
	config    string
	debug     bool
	title     string
	width     int
	height    int
	image     string
	wholeDrag bool
}

func main() {
	colored := term.IsTerminal(int(os.Stderr.Fd()))

	root := newRootCmd(colored)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, utils.DecorateText("✘ "+err.Error(), utils.ErrorMessage, colored))
		os.Exit(1)
	}
}

func newRootCmd(colored bool) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "decor",
		Short: "Open a borderless window drawn with a client side frame",
		Long: fmt.Sprintf(HelpBanner, Version) + `
The window is created without native decorations. The frame paints rounded
corners and a drop shadow, moves the window when the caption is dragged,
resizes it from the border and toggles maximize on a caption double click.

The frame appearance is read from a YAML file and reloaded on change.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			logger := newLogger(cfg.Debug, colored)
			slog.SetDefault(logger)

			d := newDemo(cfg, opts.config, logger)
			// Reloaded files go through the same command line overrides.
			d.override = func(c *config.Config) { applyFlags(cmd, opts, c) }
			if err := d.loadImage(opts.image); err != nil {
				return err
			}

			go func() {
				if err := d.run(); err != nil {
					fmt.Fprintln(os.Stderr, utils.DecorateText("✘ "+err.Error(), utils.ErrorMessage, colored))
					os.Exit(1)
				}
				os.Exit(0)
			}()
			app.Main()
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.config, "config", "c", "", "Path to the frame configuration file")
	pf.BoolVar(&opts.debug, "debug", false, "Outline the frame zones and log window commands")

	f := cmd.Flags()
	f.StringVar(&opts.title, "title", "", "Window title")
	f.IntVar(&opts.width, "width", 0, "Initial window width in Dp")
	f.IntVar(&opts.height, "height", 0, "Initial window height in Dp")
	f.StringVar(&opts.image, "image", "", "Image shown inside the window")
	f.BoolVar(&opts.wholeDrag, "whole-drag", false, "Make the whole window draggable")

	cmd.AddCommand(newConfigCmd(opts))

	return cmd
}

func newConfigCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective frame configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			return config.Encode(cmd.OutOrStdout(), cfg)
		},
	}
}

// loadConfig reads the configuration file and applies the flags set on the
// command line over it.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	path := opts.config
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
		opts.config = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	applyFlags(cmd, opts, cfg)
	return cfg, cfg.Validate()
}

func applyFlags(cmd *cobra.Command, opts *options, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("debug") {
		cfg.Debug = opts.debug
	}
	if f.Changed("title") {
		cfg.Window.Title = opts.title
	}
	if f.Changed("width") {
		cfg.Window.Width = opts.width
	}
	if f.Changed("height") {
		cfg.Window.Height = opts.height
	}
	if opts.wholeDrag {
		cfg.Frame.Caption = config.Caption{
			Max: config.Point{X: config.Length(decor.Unbounded), Y: config.Length(decor.Unbounded)},
		}
	}
}

func newLogger(debug, colored bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(console.NewHandler(os.Stderr, &console.HandlerOptions{
		Level:   level,
		NoColor: !colored,
	}))
}
