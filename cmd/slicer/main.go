package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/slicer/audio"
	"github.com/lixenwraith/slicer/config"
	"github.com/lixenwraith/slicer/constants"
	"github.com/lixenwraith/slicer/engine"
	"github.com/lixenwraith/slicer/input"
	"github.com/lixenwraith/slicer/logging"
	"github.com/lixenwraith/slicer/metrics"
	"github.com/lixenwraith/slicer/render"
	"github.com/lixenwraith/slicer/render/renderers"
	"github.com/lixenwraith/slicer/systems"
)

var (
	configFlag = flag.String("config", "", "YAML config file (default $SLICER_CONFIG)")
	debugFlag  = flag.Bool("debug", false, "Write a debug log to the log directory")
)

func main() {
	flag.Parse()

	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "slicer: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load(ctx, *configFlag)
	if err != nil {
		return err
	}
	if *debugFlag {
		cfg.LogEnabled = true
		cfg.LogLevel = zerolog.LevelDebugValue
	}

	// Logging failure is not fatal, the session runs without a log
	logger, logCloser, err := logging.Setup(cfg.LogEnabled, cfg.LogDir, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "slicer: logging disabled: %v\n", err)
	}
	defer logCloser.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: restore the terminal before the trace is printed
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			logger.Error().Interface("panic", r).Bytes("stack", debug.Stack()).Msg("crashed")
			fmt.Fprintf(os.Stderr, "\nSLICER CRASHED: %v\nStack Trace:\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	stats := metrics.NewManager(metrics.WithMetricsEnabled(cfg.MetricsEnabled))

	viewport := render.NewViewport(cfg.CellWidth, cfg.CellHeight)
	cols, rows := screen.Size()
	width, height := viewport.SurfaceSize(cols, rows)

	opts := []engine.Option{
		engine.WithStats(stats),
		engine.WithLogger(logger),
	}
	if cfg.Seed != 0 {
		opts = append(opts, engine.WithSeed(cfg.Seed))
	}
	session := engine.NewSession(width, height, opts...)

	sound := audio.NewSoundManager(audio.AudioConfig{
		Enabled:      cfg.AudioEnabled,
		MasterVolume: cfg.MasterVolume,
		SampleRate:   cfg.SampleRate,
	}, session.Log)
	defer sound.Close()
	session.Sound = sound

	// Per-frame passes
	objects := systems.NewObjectSystem()
	particles := systems.NewParticleSystem()
	trail := systems.NewTrailSystem()
	slice := systems.NewSliceSystem(objects, particles, trail)

	driver := engine.NewFrameDriver(session)
	driver.AddSystem(systems.NewSpawnSystem(objects))
	driver.AddSystem(slice)
	driver.AddSystem(trail)
	driver.AddSystem(objects)
	driver.AddSystem(particles)

	orchestrator := render.NewRenderOrchestrator(screen, viewport)
	renderers.RegisterAll(orchestrator)
	driver.SetRenderer(orchestrator)

	machine := input.NewMachine()
	router := input.NewRouter(session, slice, viewport, orchestrator.Resize)

	session.Log.Info().
		Int("cols", cols).
		Int("rows", rows).
		Dur("frame_interval", cfg.FrameInterval).
		Msg("session ready")

	runLoop(screen, session, driver, machine, router, cfg.FrameInterval)

	if summary, err := stats.Snapshot(); err == nil {
		session.Log.Info().Object("metrics", summary).Int("score", session.Score()).Msg("session ended")
	} else {
		session.Log.Warn().Err(err).Msg("metrics unavailable")
	}
	return nil
}

// runLoop drives frames from a ticker and applies input between them, both on this goroutine
func runLoop(screen tcell.Screen, session *engine.Session, driver *engine.FrameDriver, machine *input.Machine, router *input.Router, interval time.Duration) {
	frameTicker := time.NewTicker(interval)
	defer frameTicker.Stop()

	eventChan := make(chan tcell.Event, constants.EventQueueSize)
	// Input polling uses raw goroutine as it interacts directly with the screen
	go func() {
		for {
			ev := screen.PollEvent()
			// PollEvent returns nil once the screen is finalized
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !router.Handle(machine.Process(ev), session.Clock.Now()) {
				return
			}

		case <-frameTicker.C:
			driver.Tick()
		}
	}
}
