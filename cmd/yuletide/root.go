package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lixenwraith/yuletide/audio"
	"github.com/lixenwraith/yuletide/config"
	"github.com/lixenwraith/yuletide/core"
	"github.com/lixenwraith/yuletide/engine"
	"github.com/lixenwraith/yuletide/render"
	"github.com/lixenwraith/yuletide/scene"
	"github.com/lixenwraith/yuletide/vmath"
)

var (
	cfgFile  string
	debugLog bool
	mute     bool
	seed     uint64
	fps      int
)

var rootCmd = &cobra.Command{
	Use:   "yuletide",
	Short: "Falling snow, a decorated tree and a holiday countdown in your terminal",
	Long: `Yuletide draws a decorated tree under falling snow with a live countdown
to the next holiday. Press l for the tree lights, s for snow, m to mute,
arrows or the mouse wheel to scroll and q to quit.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return runScene(cfg)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.Flags().BoolVar(&debugLog, "debug", false, "write debug log to logs/yuletide.log")
	rootCmd.Flags().BoolVar(&mute, "mute", false, "start with sound muted")
	rootCmd.Flags().Uint64Var(&seed, "seed", 0, "random seed, 0 seeds from the clock")
	rootCmd.Flags().IntVar(&fps, "fps", 0, "frames per second (default from config)")
}

// loadConfig reads file and environment, then applies flags the user set explicitly
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("debug") {
		cfg.Debug = debugLog
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func runScene(cfg *config.Config) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdout is not a terminal")
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	core.SetCrashScreen(screen)
	defer screen.Fini()

	// Panic recovery: restore the terminal even if the scene crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	screen.EnableMouse()
	screen.EnableFocus()
	screen.HideCursor()

	sounds := audio.NewSoundManager(cfg.Volume)
	if cfg.Audio {
		if err := sounds.Initialize(); err != nil {
			// Non-fatal, the scene runs without sound
			log.Printf("Audio initialization failed: %v", err)
		} else {
			defer sounds.Cleanup()
		}
	}
	if mute {
		sounds.ToggleMute()
	}

	surface := render.NewTerminal(screen, cfg.CellWidth, cfg.CellHeight)

	session := scene.New(surface, engine.NewMonotonicTimeProvider(), vmath.NewRand(cfg.Seed), scene.Options{
		LightsOn:    cfg.Lights,
		SnowOn:      cfg.Snow,
		TargetMonth: time.Month(cfg.TargetMonth),
		TargetDay:   cfg.TargetDay,
		Sounds:      sounds,
	})
	session.Start()
	defer session.Stop()

	log.Printf("config %s, cell %dx%d px, seed %d, %d fps", cfgFile, cfg.CellWidth, cfg.CellHeight, cfg.Seed, cfg.FPS)

	newHost(screen, surface, session, sounds).run(cfg.FrameInterval())
	log.Printf("scene stopped")
	return nil
}
