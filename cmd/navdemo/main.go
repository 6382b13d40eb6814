package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"navctl/internal/config"
	"navctl/internal/telemetry"
	"navctl/internal/transition"
	"navctl/internal/ui"
)

// env is what Before prepares for the actions.
type env struct {
	cfg      *config.Config
	log      *zap.Logger
	provider *telemetry.Provider
	start    time.Time
}

var app env

func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	var err error

	app.start = time.Now()
	configFile := cmd.String("config")
	if app.cfg, err = config.Load(configFile); err != nil {
		return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
	}
	if dest := cmd.String("log"); dest != "" {
		app.cfg.Logging.FileLogger.Destination = dest
		if app.cfg.Logging.FileLogger.Level == "" || app.cfg.Logging.FileLogger.Level == "none" {
			app.cfg.Logging.FileLogger.Level = "debug"
		}
	}
	if app.log, err = app.cfg.Logging.Prepare(); err != nil {
		return ctx, fmt.Errorf("unable to prepare logs: %w", err)
	}

	app.log.Debug("Program started", zap.Strings("args", os.Args), zap.String("runtime", runtime.Version()))
	if len(configFile) == 0 {
		app.log.Info("Using defaults (no configuration file)")
	}
	return ctx, nil
}

func destroyAppContext(ctx context.Context, cmd *cli.Command) (err error) {
	if app.provider != nil {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if er := app.provider.Shutdown(sctx); er != nil {
			err = multierr.Append(err, fmt.Errorf("unable to flush traces: %w", er))
		}
	}
	if app.log != nil {
		app.log.Debug("Program ended", zap.Duration("elapsed", time.Since(app.start)))
		// stdout and stderr report EINVAL on sync when they are terminals
		if er := app.log.Sync(); er != nil && !errors.Is(er, syscall.EINVAL) && !errors.Is(er, syscall.ENOTTY) {
			err = multierr.Append(err, fmt.Errorf("unable to sync logs: %w", er))
		}
	}
	return
}

var errWasHandled bool

func exitErrHandler(_ context.Context, _ *cli.Command, err error) {
	if app.log != nil {
		app.log.Error("Program ended with error", zap.Error(err))
		errWasHandled = true
	}
}

func usageErrorHandler(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return err
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	kinds := make([]string, 0, len(transition.Kinds()))
	for _, k := range transition.Kinds() {
		kinds = append(kinds, k.String())
	}

	cmd := &cli.Command{
		Name:            "navdemo",
		Usage:           "terminal demo of the navctl view-stack transition engine",
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		OnUsageError:    usageErrorHandler,
		ExitErrHandler:  exitErrHandler,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "load configuration from `FILE` (YAML)"},
			&cli.StringFlag{Name: "log", Aliases: []string{"l"}, Usage: "write debug log to `FILE`"},
			&cli.StringFlag{Name: "transition", Aliases: []string{"t"},
				Usage: "push transition `KIND` (" + strings.Join(kinds, ", ") + ")"},
			&cli.BoolFlag{Name: "preserve", Aliases: []string{"p"}, Usage: "keep view state across pops"},
		},
		Action: runDemo,
		Commands: []*cli.Command{
			{
				Name:         "dumpconfig",
				Usage:        "Dumps either default or actual configuration (YAML)",
				Flags:        []cli.Flag{&cli.BoolFlag{Name: "default", Usage: "output default embedded configuration"}},
				OnUsageError: usageErrorHandler,
				Action:       outputConfiguration,
				ArgsUsage:    "DESTINATION",
			},
		},
	}

	var err error
	defer func() {
		stop()
		if err != nil {
			if !errWasHandled {
				fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
			}
			os.Exit(1)
		}
	}()
	err = cmd.Run(ctx, os.Args)
}

func runDemo(ctx context.Context, cmd *cli.Command) error {
	navCfg, err := app.cfg.ControllerConfig()
	if err != nil {
		return fmt.Errorf("unable to prepare navigation: %w", err)
	}
	if name := cmd.String("transition"); name != "" {
		k, err := transition.ParseKind(name)
		if err != nil {
			return fmt.Errorf("--transition: %w", err)
		}
		navCfg.DefaultPush = k
		navCfg.DefaultPop = transition.Reverse(k)
	}
	if cmd.Bool("preserve") {
		navCfg.PreserveState = true
	}

	if app.provider, err = telemetry.NewProvider(ctx, telemetry.Options{Logger: app.log}); err != nil {
		return fmt.Errorf("unable to prepare tracing: %w", err)
	}
	navCfg.Logger = app.log
	navCfg.TracerProvider = app.provider.TracerProvider()

	model, err := ui.New(ui.Options{Nav: navCfg, Logger: app.log, Recent: app.provider.Recent()})
	if err != nil {
		return err
	}
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("demo failed: %w", err)
	}
	return nil
}

func outputConfiguration(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() > 1 {
		app.log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}
	fname := cmd.Args().Get(0)

	cfg, state := app.cfg, "actual"
	if cmd.Bool("default") {
		cfg, state = config.Default(), "default"
	}
	data, err := config.Dump(cfg)
	if err != nil {
		return fmt.Errorf("unable to get configuration: %w", err)
	}

	out := os.Stdout
	if len(fname) > 0 {
		if out, err = os.Create(fname); err != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", fname, err)
		}
		defer out.Close()
	} else {
		fname = "STDOUT"
	}
	app.log.Info("Writing configuration", zap.String("state", state), zap.String("file", fname))

	if _, err = out.Write(data); err != nil {
		return fmt.Errorf("unable to write configuration: %w", err)
	}
	return nil
}
