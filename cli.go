package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fogleman/gg"
	"github.com/spf13/cobra"
)

type options struct {
	Julia         string
	MaxIterations int
	LogFile       string
	Debug         bool
}

// apply folds explicitly set flags into config and returns the starting fractal.
func (o options) apply(cmd *cobra.Command, config *Config) (Fractal, error) {
	if cmd.Flags().Changed("max-iterations") {
		if o.MaxIterations <= 0 {
			return nil, fmt.Errorf("--max-iterations must be positive")
		}
		config.MaxIterations = o.MaxIterations
	}
	if o.Julia == "" {
		return Mandelbrot{}, nil
	}
	j, err := ParseJulia(o.Julia)
	if err != nil {
		return nil, err
	}
	config.Julia = j
	return j, nil
}

func newRootCmd() *cobra.Command {
	var opts options

	rootCmd := &cobra.Command{
		Use:   "frakt",
		Short: "Escape-time fractal explorer",
		Long: `frakt renders the Mandelbrot set and Julia sets with histogram coloring.
Select a square to zoom in, and go back through the zoom history.`,
		Example: `  # Explore the Mandelbrot set in the terminal
  frakt

  # Explore a Julia set
  frakt --julia -0.8,0.156`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			fractal, err := opts.apply(cmd, config)
			if err != nil {
				return err
			}
			return runExplorer(config, fractal, opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.Julia, "julia", "", "Julia constant as re,im (Mandelbrot when empty)")
	rootCmd.PersistentFlags().IntVar(&opts.MaxIterations, "max-iterations", DefaultMaxIterations, "Iteration cap per pixel")
	rootCmd.PersistentFlags().BoolVarP(&opts.Debug, "debug", "d", false, "Enable debug logging")
	rootCmd.Flags().StringVar(&opts.LogFile, "log-file", "", "Write logs to this file while exploring")

	rootCmd.AddCommand(renderCmd(&opts), serveCmd(&opts))
	return rootCmd
}

func runExplorer(config *Config, fractal Fractal, opts options) error {
	if opts.LogFile != "" {
		f, err := tea.LogToFile(opts.LogFile, "frakt")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		slog.SetDefault(slog.New(newLogHandler(f, opts.Debug)))
	} else {
		// The terminal belongs to the explorer.
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	}

	p := tea.NewProgram(
		initialModel(config, fractal),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}

func newLogHandler(w io.Writer, debug bool) slog.Handler {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
}

func setupLogging(debug bool) {
	slog.SetDefault(slog.New(newLogHandler(os.Stderr, debug)))
}

func renderCmd(opts *options) *cobra.Command {
	var (
		size    int
		area    string
		out     string
		caption bool
	)
	cmd := &cobra.Command{
		Use:     "render",
		Short:   "Render one view to a PNG file",
		Example: `  frakt render --size 2048 --area=-0.8,0.05,0.1 --out seahorse.png`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(opts.Debug)
			config := loadConfig()
			fractal, err := opts.apply(cmd, config)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("size") {
				size = config.ExportSize
			}
			if size <= 0 || size > MaxCanvasSize {
				return fmt.Errorf("--size must be in [1, %d]", MaxCanvasSize)
			}

			renderer := NewRenderer(config.MaxIterations)
			start := time.Now()
			var img *image.RGBA
			if area == "" {
				img = renderer.Render(size, fractal)
			} else {
				a, err := ParseArea(area)
				if err != nil {
					return err
				}
				img = renderer.Jump(a, size, fractal)
			}
			slog.Info("rendered", "size", size, "area", renderer.Viewport().String(), "fractal", fractal.String(), "took", time.Since(start))

			path, err := config.GetSavePath(out)
			if err != nil {
				return err
			}
			if caption {
				err = ExportPNG(path, img, exportCaption(renderer.Viewport(), fractal, renderer.Depth()))
			} else {
				err = gg.SavePNG(path, img)
			}
			if err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			slog.Info("saved", "file", path)
			return nil
		},
	}
	cmd.Flags().IntVar(&size, "size", DefaultExportSize, "Canvas side in pixels")
	cmd.Flags().StringVar(&area, "area", "", "Viewport as x,y,side (start view when empty)")
	cmd.Flags().StringVarP(&out, "out", "o", "frakt.png", "Output PNG file")
	cmd.Flags().BoolVar(&caption, "caption", false, "Add a caption band describing the view")
	return cmd
}

func serveCmd(opts *options) *cobra.Command {
	var (
		listen  string
		origins []string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve rendering sessions over websocket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(opts.Debug)
			config := loadConfig()
			fractal, err := opts.apply(cmd, config)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("listen") {
				config.ListenAddr = listen
			}
			if cmd.Flags().Changed("origin") {
				config.Origins = origins
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return serveFrames(ctx, newFrameServer(config.ListenAddr, sessionDefaults{
				MaxIterations:  config.MaxIterations,
				Fractal:        fractal,
				OriginPatterns: config.Origins,
			}))
		},
	}
	cmd.Flags().StringVar(&listen, "listen", DefaultListenAddr, "Address to listen on")
	cmd.Flags().StringSliceVar(&origins, "origin", nil, "Extra origin patterns allowed to connect (same-origin only when empty)")
	return cmd
}

func serveFrames(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info("listening", "addr", srv.Addr, "path", "/ws")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
