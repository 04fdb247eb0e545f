package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/oliverbestmann/ignite/glimpse"
	"github.com/oliverbestmann/ignite/orion"
	"github.com/oliverbestmann/ignite/pulse"
	"github.com/spf13/cobra"
)

var (
	logLevel        string
	profileMode     string
	shaderPath      string
	windowWidth     int
	windowHeight    int
	windowTitle     string
	fallbackAdapter bool
	tintColor       string
	quadColors      []string
)

var rootCmd = &cobra.Command{
	Use:   "ignite",
	Short: "Bootstrap a WebGPU renderer",
	Long: `ignite opens a window, negotiates a WebGPU adapter and device, builds the
swapchain, compiles the shader module and assembles the render pipeline.
It exits once the renderer is ready.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := parseLevel(logLevel)
		if err != nil {
			return err
		}

		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
		slog.SetDefault(slog.New(handler))

		return nil
	},
	RunE: runBootstrap,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.Flags().StringVar(&shaderPath, "shader", "shaders.wgsl", "WGSL shader file")
	rootCmd.Flags().IntVar(&windowWidth, "width", 800, "Window width")
	rootCmd.Flags().IntVar(&windowHeight, "height", 600, "Window height")
	rootCmd.Flags().StringVar(&windowTitle, "title", "WebGPU", "Window title")
	rootCmd.Flags().StringVar(&profileMode, "profile", "off", "Profile the run (off, cpu, mem)")
	rootCmd.Flags().BoolVar(&fallbackAdapter, "fallback-adapter", false, "Force the fallback adapter")
	rootCmd.Flags().StringVar(&tintColor, "tint", "#ffffff", "Uniform tint color, srgb as #rrggbb or #rrggbbaa")
	rootCmd.Flags().StringSliceVar(&quadColors, "quad-colors", nil, "Four srgb corner colors of the quad, counter clockwise from bottom left")
}

func parseLevel(value string) (slog.Level, error) {
	switch strings.ToLower(value) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", value)
	}
}

func runBootstrap(cmd *cobra.Command, args []string) error {
	prof, err := startProfile(profileMode)
	if err != nil {
		return err
	}

	defer prof.Stop()

	opts, err := bootstrapOptions()
	if err != nil {
		return err
	}

	scene, err := orion.Bootstrap(opts)
	if err != nil {
		return fmt.Errorf("bootstrap renderer: %w", err)
	}

	defer scene.Release()

	slog.Info("Setup complete", slog.Any("steps", scene.Steps()))

	return nil
}

func bootstrapOptions() (orion.Options, error) {
	tint, err := pulse.ParseColor(tintColor)
	if err != nil {
		return orion.Options{}, fmt.Errorf("--tint: %w", err)
	}

	corners, err := parseQuadColors(quadColors)
	if err != nil {
		return orion.Options{}, err
	}

	opts := orion.Options{
		Window: glimpse.WindowOptions{
			Width:  windowWidth,
			Height: windowHeight,
			Title:  windowTitle,
		},
		GPU: pulse.Options{
			ForceFallbackAdapter: fallbackAdapter,
		},
		ShaderPath: shaderPath,
		Tint:       tint,
		QuadColors: corners,
	}

	return opts, nil
}

// parseQuadColors parses the corner colors of the quad. No values keeps
// the default colors.
func parseQuadColors(values []string) ([4]pulse.Color, error) {
	var colors [4]pulse.Color

	if len(values) == 0 {
		return colors, nil
	}

	if len(values) != len(colors) {
		return colors, fmt.Errorf("--quad-colors: expected %d colors, got %d", len(colors), len(values))
	}

	for idx, value := range values {
		color, err := pulse.ParseColor(value)
		if err != nil {
			return colors, fmt.Errorf("--quad-colors: %w", err)
		}

		colors[idx] = color
	}

	return colors, nil
}
