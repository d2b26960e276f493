package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"reqadmin/internal/api"
	"reqadmin/internal/audit"
	"reqadmin/internal/config"
	"reqadmin/internal/eventbus"
	"reqadmin/internal/ui"
)

// app bundles what every command needs once the global flags are parsed
type app struct {
	ctx     context.Context
	bus     *eventbus.Bus
	cfg     *config.Config
	cfgSvc  config.ConfigService
	client  *api.Client
	logger  *log.Logger
	logFile *os.File
	audit   *audit.Recorder
}

var current *app

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	cliApp := &cli.App{
		Name:     "reqadmin",
		Usage:    "Review and bulk-manage registration requests",
		Compiled: time.Now(),
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "path to the config file"},
			&cli.StringFlag{Name: "api-url", EnvVars: []string{config.EnvAPIURL}, Usage: "base URL of the admin API"},
			&cli.StringFlag{Name: "token", EnvVars: []string{config.EnvToken}, Usage: "bearer token for the admin API"},
			&cli.StringFlag{Name: "log-file", Usage: "write logs to this file"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "log at debug level"},
		},
		Before: func(cCtx *cli.Context) error {
			a, err := setup(ctx, cCtx)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			current = a
			return nil
		},
		After: func(cCtx *cli.Context) error {
			if current != nil {
				current.close()
			}
			return nil
		},
		Action: func(cCtx *cli.Context) error {
			return runTUI(current)
		},
		Commands: []*cli.Command{
			listCommand(),
			bulkCommand("delete", "Delete the selected requests"),
			bulkCommand("block", "Block the selected requests"),
			bulkCommand("activate", "Activate the selected requests"),
			configCommand(),
		},
	}

	if err := cliApp.RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setup(ctx context.Context, cCtx *cli.Context) (*app, error) {
	logger := log.New()
	bus := eventbus.NewWithLogger(logger)
	a := &app{ctx: ctx, bus: bus, logger: logger}

	a.cfgSvc = config.NewConfigService(cCtx.String("config"), bus)
	cfg, err := a.cfgSvc.Load()
	if err != nil {
		bus.Close()
		return nil, fmt.Errorf("load config %s: %w", a.cfgSvc.Path(), err)
	}
	cfg.ApplyEnv(os.Getenv)
	if v := cCtx.String("api-url"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := cCtx.String("token"); v != "" {
		cfg.API.Token = v
	}
	if v := cCtx.String("log-file"); v != "" {
		cfg.Log.File = v
	}
	a.cfg = cfg

	if err := a.openLog(cCtx.Bool("verbose")); err != nil {
		bus.Close()
		return nil, err
	}
	a.audit = audit.NewRecorder(bus, a.logger)

	a.client, err = api.New(api.Options{
		BaseURL: cfg.API.BaseURL,
		Token:   cfg.API.Token,
		APIKey:  cfg.API.APIKey,
		Timeout: time.Duration(cfg.API.TimeoutSeconds) * time.Second,
		Logger:  a.logger,
	})
	if err != nil {
		a.close()
		return nil, err
	}

	a.logger.WithFields(log.Fields{
		"config":   a.cfgSvc.Path(),
		"base_url": cfg.API.BaseURL,
	}).Debug("reqadmin started")
	return a, nil
}

// openLog sends log output to the configured file. A TUI owns the terminal,
// so without a file logs are discarded.
func (a *app) openLog(verbose bool) error {
	level, err := log.ParseLevel(a.cfg.Log.Level)
	if err != nil {
		level = log.InfoLevel
	}
	if verbose {
		level = log.DebugLevel
	}
	formatter := &log.TextFormatter{FullTimestamp: true, DisableColors: true}
	for _, l := range []*log.Logger{a.logger, log.StandardLogger()} {
		l.SetLevel(level)
		l.SetFormatter(formatter)
	}

	if a.cfg.Log.File == "" {
		a.logger.SetOutput(io.Discard)
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(a.cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	a.logFile = f
	a.logger.SetOutput(f)
	log.SetOutput(f)
	return nil
}

// close flushes queued events to the audit recorder before the log file goes
func (a *app) close() {
	a.bus.Close()
	if a.audit != nil {
		a.audit.Close()
	}
	if a.logFile != nil {
		_ = a.logFile.Close()
	}
}

func runTUI(a *app) error {
	model := ui.NewModel(ui.Options{
		Ctx:    a.ctx,
		Client: a.client,
		Bus:    a.bus,
		Config: a.cfg,
		Logger: a.logger,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(a.ctx))
	model.SetProgram(p)

	a.logger.Debug("starting UI")
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		a.logger.WithError(err).Error("error running program")
		return cli.Exit(fmt.Sprintf("Error running program: %v", err), 1)
	}
	a.logger.Debug("UI exited normally")
	return nil
}
