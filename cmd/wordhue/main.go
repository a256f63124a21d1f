package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/jsvensson/wordhue"
	"github.com/jsvensson/wordhue/internal/config"
	"github.com/jsvensson/wordhue/internal/engine"
	"github.com/jsvensson/wordhue/internal/icon"
	"github.com/jsvensson/wordhue/internal/server"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var (
	flagConfig    string
	flagVerbose   int
	flagSort      bool
	flagLerp      float64
	flagTransform string
	flagJSON      bool
	flagIconOut   string
	flagInitOut   string
	flagWidth     int
	flagWordMode  bool
	flagPort      int
	flagForce     bool
	flagTemplates string
	flagExportOut string
	flagApp       []string
	flagCheck     bool
	version       = "dev" // Injected at build time via ldflags
)

var rootCmd = &cobra.Command{
	Use:     "wordhue",
	Short:   "Derive colors, palettes and bit icons from words",
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		commonlog.Configure(flagVerbose, nil)
	},
	SilenceUsage: true,
}

var colorCmd = &cobra.Command{
	Use:   "color TEXT...",
	Short: "Print the color of a sentence and its pastel variant",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runColor,
}

var paletteCmd = &cobra.Command{
	Use:   "palette SCHEME TEXT...",
	Short: "Print a palette derived from the color of a sentence",
	Long:  "Print a palette derived from the color of a sentence. SCHEME is one of triad, tetrad, analogous, triad-tree or tetrad-tree.",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runPalette,
}

var iconCmd = &cobra.Command{
	Use:   "icon TEXT...",
	Short: "Render the bits of a sentence as a PNG icon",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runIcon,
}

var exportCmd = &cobra.Command{
	Use:   "export TEXT...",
	Short: "Render templates against the colors and palettes of a sentence",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runExport,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve colors, palettes and icons over HTTP",
	RunE:  runServe,
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration as HCL",
	RunE:  runInit,
}

var fmtCmd = &cobra.Command{
	Use:   "fmt [files...]",
	Short: "Format wordhue config files",
	Long:  "Format one or more HCL config files in-place. Prints the name of each file that was modified.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFmt,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to HCL config file (defaults are used when empty)")
	rootCmd.PersistentFlags().CountVarP(&flagVerbose, "verbose", "v", "increase log verbosity (repeatable)")

	colorCmd.Flags().BoolVar(&flagSort, "sort", false, "sort words before aggregating")
	colorCmd.Flags().Float64Var(&flagLerp, "lerp", 0, "interpolation factor in (0, 1]")
	colorCmd.Flags().StringVar(&flagTransform, "transform", "", "per-word transform: none, pastel or brighten")
	colorCmd.Flags().BoolVar(&flagJSON, "json", false, "print the result as JSON")

	paletteCmd.Flags().BoolVar(&flagSort, "sort", false, "sort words before aggregating")
	paletteCmd.Flags().BoolVar(&flagJSON, "json", false, "print the result as JSON")

	iconCmd.Flags().StringVar(&flagIconOut, "out", "icon.png", "output PNG file")
	iconCmd.Flags().IntVar(&flagWidth, "width", 0, "approximate image width in pixels (overrides bit size)")
	iconCmd.Flags().BoolVar(&flagWordMode, "word-mode", false, "draw the tokenized words instead of the raw text")
	iconCmd.Flags().BoolVar(&flagSort, "sort", false, "sort words before aggregating")

	exportCmd.Flags().StringVar(&flagTemplates, "templates", "templates", "templates directory")
	exportCmd.Flags().StringVar(&flagExportOut, "out", "output", "output directory")
	exportCmd.Flags().StringArrayVar(&flagApp, "app", nil, "render only specific templates (can be repeated)")
	exportCmd.Flags().BoolVar(&flagSort, "sort", false, "sort words before aggregating")

	serveCmd.Flags().IntVar(&flagPort, "port", 0, "listen port (overrides config)")

	initCmd.Flags().StringVar(&flagInitOut, "out", "wordhue.hcl", "output file, or - for stdout")
	initCmd.Flags().BoolVarP(&flagForce, "force", "f", false, "overwrite an existing file")

	fmtCmd.Flags().BoolVarP(&flagCheck, "check", "c", false, "check if files are formatted (do not write changes)")

	rootCmd.AddCommand(colorCmd, paletteCmd, iconCmd, exportCmd, serveCmd, initCmd, fmtCmd, versionCmd)
}

func loadConfig() (*config.Config, error) {
	if flagConfig == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func runColor(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("lerp") {
		cfg.Color.Lerp = flagLerp
	}
	if cmd.Flags().Changed("transform") {
		cfg.Color.Transform = flagTransform
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	gen, err := wordhue.New(cfg)
	if err != nil {
		return err
	}
	res, err := gen.Evaluate(strings.Join(args, " "), flagSort)
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(cmd, res)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "color  %s\npastel %s\n", res.Color, res.Pastel)
	return nil
}

func runPalette(cmd *cobra.Command, args []string) error {
	gen, err := newGenerator()
	if err != nil {
		return err
	}
	res, err := gen.Palette(strings.Join(args[1:], " "), args[0], flagSort)
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(cmd, res)
	}
	for _, hex := range res.Colors {
		fmt.Fprintln(cmd.OutOrStdout(), hex)
	}
	return nil
}

func runIcon(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	gen, err := wordhue.New(cfg)
	if err != nil {
		return err
	}

	text := strings.Join(args, " ")
	opts := cfg.IconOptions()
	opts.Width = flagWidth
	opts.WordMode = flagWordMode
	opts.Sort = flagSort
	if c, err := gen.Color(text, flagSort); err == nil {
		opts.On = &c
	}

	img, err := icon.FromString(text, gen.Tokenizer, opts)
	if err != nil {
		return err
	}

	f, err := os.Create(flagIconOut)
	if err != nil {
		return fmt.Errorf("creating %s: %w", flagIconOut, err)
	}
	if err := icon.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding icon: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	b := img.Bounds()
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %dx%d icon to %s\n", b.Dx(), b.Dy(), flagIconOut)
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	gen, err := newGenerator()
	if err != nil {
		return err
	}
	data, err := engine.NewData(gen, strings.Join(args, " "), flagSort)
	if err != nil {
		return err
	}

	e := &engine.Engine{
		TemplatesDir: flagTemplates,
		OutputDir:    flagExportOut,
		Apps:         flagApp,
	}
	if err := e.Run(data); err != nil {
		return fmt.Errorf("exporting: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", data.Color.Hex(), flagExportOut)
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagPort != 0 {
		cfg.Server.Port = flagPort
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	gen, err := wordhue.New(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(gen, cfg).ListenAndServe(ctx)
}

func runInit(cmd *cobra.Command, args []string) error {
	src := config.Encode(config.Default())
	if flagInitOut == "-" {
		_, err := cmd.OutOrStdout().Write(src)
		return err
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !flagForce {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(flagInitOut, flags, 0o644)
	if errors.Is(err, os.ErrExist) {
		return fmt.Errorf("%s already exists (use --force to overwrite)", flagInitOut)
	}
	if err != nil {
		return err
	}
	if _, err := f.Write(src); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote default config to %s\n", flagInitOut)
	return nil
}

func runFmt(cmd *cobra.Command, args []string) error {
	hasErrors := false
	needsFormatting := false

	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error reading %s: %v\n", path, err)
			hasErrors = true
			continue
		}

		formatted := config.Format(data)
		if bytes.Equal(formatted, data) {
			continue
		}

		fmt.Fprintln(cmd.OutOrStdout(), path)
		needsFormatting = true

		if !flagCheck {
			if err := os.WriteFile(path, formatted, 0o644); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error writing %s: %v\n", path, err)
				hasErrors = true
			}
		}
	}

	if hasErrors {
		return errors.New("some files could not be formatted")
	}
	if flagCheck && needsFormatting {
		return errors.New("some files are not formatted")
	}
	return nil
}

func newGenerator() (*wordhue.Generator, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return wordhue.New(cfg)
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
