package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"vidstep/config"
	"vidstep/playback"
	"vidstep/ui"
	"vidstep/ui/panels"
	"vidstep/video"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var version = "dev"

var (
	cfgFile  string
	fps      float64
	size     string
	mono     bool
	delayMs  int
	history  int
	renderer string
	quality  string
	hwaccel  bool
	debug    bool
	logFile  string
)

var rootCmd = &cobra.Command{
	Use:          "vidstep <video>",
	Short:        "Play, pause and step through a video in the terminal",
	Args:         cobra.ExactArgs(1),
	RunE:         run,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("vidstep", version)
	},
}

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&cfgFile, "config", "c", "", "config file (default: $XDG_CONFIG_HOME/vidstep/config.toml)")
	f.Float64Var(&fps, "fps", 0, "rewrite the source frame rate before playback")
	f.StringVar(&size, "size", "", "fixed display resolution as WIDTHxHEIGHT")
	f.BoolVarP(&mono, "mono", "m", false, "convert frames to grayscale")
	f.IntVar(&delayMs, "delay", 0, "milliseconds between frames (default 10)")
	f.IntVar(&history, "history", 0, "number of displayed frames to keep (default 8)")
	f.StringVar(&renderer, "renderer", "", "frame renderer: auto, chafa or blocks")
	f.StringVar(&quality, "quality", "", "chafa quality: low, medium or high")
	f.BoolVar(&hwaccel, "hwaccel", false, "use hardware decoding when available")
	f.BoolVarP(&debug, "debug", "d", false, "enable debug logging")
	f.StringVar(&logFile, "log-file", "", "write logs to this file")

	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command, path string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.LoadFrom(cfgFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Path = path

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("size") {
		w, h, err := config.ParseSize(size)
		if err != nil {
			return nil, err
		}
		cfg.Width, cfg.Height = w, h
	}
	if flags.Changed("mono") {
		cfg.Monochrome = mono
	}
	if flags.Changed("delay") {
		cfg.DelayMs = delayMs
	}
	if flags.Changed("history") {
		cfg.HistorySize = history
	}
	if flags.Changed("renderer") {
		cfg.Renderer = renderer
	}
	if flags.Changed("quality") {
		cfg.Quality = quality
	}
	if flags.Changed("hwaccel") {
		cfg.HWAccel = hwaccel
	}
	if flags.Changed("debug") {
		cfg.Debug = debug
	}
	if flags.Changed("log-file") {
		cfg.LogFile = logFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// setupLogging keeps log output off the terminal while the UI owns it.
func setupLogging(cfg *config.Config) (io.Closer, error) {
	video.SetDebugMode(cfg.Debug || video.DebugMode())
	if cfg.LogFile != "" {
		return tea.LogToFile(cfg.LogFile, "vidstep")
	}
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		log.SetOutput(io.Discard)
	}
	return nil, nil
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args[0])
	if err != nil {
		return err
	}

	logCloser, err := setupLogging(cfg)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	if logCloser != nil {
		defer logCloser.Close()
	}

	if err := video.CheckDependencies(); err != nil {
		return err
	}

	preset, err := video.ParseQuality(cfg.Quality)
	if err != nil {
		return err
	}
	frameRenderer, err := video.NewRenderer(cfg.Renderer, preset)
	if err != nil {
		return err
	}

	sched := ui.NewScheduler()
	notice := ui.NewNotice()

	var source *video.Source
	open := func(path string) (playback.Source, error) {
		s, err := video.OpenSource(path, video.SourceOptions{HWAccel: cfg.HWAccel})
		if err != nil {
			return nil, err
		}
		source = s
		return s, nil
	}

	playCfg := playback.Config{
		FPS:         cfg.FPS,
		Monochrome:  cfg.Monochrome,
		FrameDelay:  cfg.FrameDelay(),
		HistorySize: cfg.HistorySize,
	}
	if cfg.HasDisplayResolution() {
		playCfg.DisplayWidth, playCfg.DisplayHeight = cfg.Width, cfg.Height
	}
	ctrl := playback.Open(cfg.Path, open, playCfg, frameRenderer, sched, notice)
	defer ctrl.Close()

	info := panels.SessionInfo{
		Path:     cfg.Path,
		Renderer: frameRenderer.Name(),
		Decode:   video.HWAccelStatus(cfg.HWAccel),
	}
	if source != nil {
		info.Properties = source.Properties()
	}

	p := tea.NewProgram(
		ui.NewModel(ctrl, sched, notice, frameRenderer, info),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
