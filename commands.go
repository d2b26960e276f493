package main

import (
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"

	"reqadmin/internal/bulk"
	"reqadmin/internal/busy"
	"reqadmin/internal/config"
	"reqadmin/internal/domain"
	"reqadmin/internal/filter"
	"reqadmin/internal/format"
	"reqadmin/internal/selection"
	"reqadmin/internal/store"
	"reqadmin/internal/ui/logic"
)

func filterFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "type", Usage: "request type"},
		&cli.StringFlag{Name: "status", Usage: "PENDING, ACTIVE or BLOCKED"},
		&cli.StringFlag{Name: "dates", Usage: `creation date or range, e.g. "2024-01-02..2024-01-09"`},
	}
}

func criteriaFromFlags(cCtx *cli.Context) (domain.Criteria, error) {
	v, err := filter.ParseForm(cCtx.String("type"), cCtx.String("status"), cCtx.String("dates"), time.Local)
	if err != nil {
		return domain.Criteria{}, err
	}
	return filter.Normalize(v), nil
}

// loadStore lists the requests matching the filter flags
func loadStore(cCtx *cli.Context, a *app) (*store.MemoryRequestStore, domain.Criteria, error) {
	criteria, err := criteriaFromFlags(cCtx)
	if err != nil {
		return nil, criteria, cli.Exit(err.Error(), 2)
	}

	release := busy.NewSpinner(os.Stderr).Begin("Loading")
	requests, err := a.client.ListRequests(a.ctx, criteria)
	release()
	if err != nil {
		a.bus.Publish(domain.ErrorEvent{Message: "listing requests failed", Err: err})
		return nil, criteria, err
	}

	s := store.NewMemoryRequestStore()
	s.Replace(requests)
	a.bus.Publish(domain.RequestsLoadedEvent{Criteria: criteria, Count: s.Len()})
	return s, criteria, nil
}

// sortedIDs orders the listing the same way the TUI does by default
func sortedIDs(a *app, s *store.MemoryRequestStore) []string {
	mode, err := logic.ParseSortMode(a.cfg.UI.DefaultSort)
	if err != nil {
		mode = logic.SortByCreated
	}
	return logic.SortRequests(s.All(), mode)
}

func listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "Print the requests matching the filters",
		Flags: filterFlags(),
		Action: func(cCtx *cli.Context) error {
			a := current
			s, criteria, err := loadStore(cCtx, a)
			if err != nil {
				return err
			}
			if s.Len() == 0 {
				fmt.Println("No requests match the current filters.")
				return nil
			}

			layouts := format.NewLayouts(a.cfg.UI.DateFormat, a.cfg.UI.DateTimeFormat)
			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.AppendHeader(table.Row{"ID", "Email", "Full name", "Created", "Last session", "Status"})
			for _, id := range sortedIDs(a, s) {
				req, _ := s.Get(id)
				t.AppendRow(table.Row{
					req.ID,
					req.Email,
					req.FullName,
					layouts.Date(req.CreatedAt, true),
					layouts.OptionalDate(req.LastSession, true),
					req.Status,
				})
			}
			if !criteria.IsEmpty() {
				t.SetCaption("Filter: %s", criteria.Describe())
			}
			t.Render()
			return nil
		},
	}
}

func bulkCommand(name, usage string) *cli.Command {
	flags := append([]cli.Flag{
		&cli.BoolFlag{Name: "all", Usage: "apply to every request matching the filters"},
	}, filterFlags()...)

	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "[id...]",
		Flags:     flags,
		Action: func(cCtx *cli.Context) error {
			a := current
			action, err := bulk.ParseAction(name)
			if err != nil {
				return err
			}
			if !cCtx.Bool("all") && cCtx.NArg() == 0 {
				return cli.Exit("pass request ids or --all", 2)
			}

			s, _, err := loadStore(cCtx, a)
			if err != nil {
				return err
			}

			sel := selection.New(a.bus)
			if cCtx.Bool("all") {
				sel.ToggleAll(true)
			} else {
				for _, id := range cCtx.Args().Slice() {
					if _, ok := s.Get(id); !ok {
						return cli.Exit(fmt.Sprintf("unknown request id %q", id), 2)
					}
					if !sel.IsRowChecked(id) {
						sel.ToggleRow(id)
					}
				}
			}

			dispatcher := bulk.NewDispatcher(a.client, busy.NewSpinner(os.Stderr), a.bus, a.logger)
			res := dispatcher.Run(a.ctx, action, sel, sortedIDs(a, s))
			if !res.OK() {
				return cli.Exit(res.Message(), 1)
			}
			fmt.Println(res.Message())
			return nil
		},
	}
}

func configCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Manage the config file",
		Subcommands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Write the default config file",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "force", Usage: "overwrite an existing file"},
				},
				Action: func(cCtx *cli.Context) error {
					a := current
					path := a.cfgSvc.Path()
					if _, err := os.Stat(path); err == nil && !cCtx.Bool("force") {
						return cli.Exit(fmt.Sprintf("%s already exists (use --force)", path), 1)
					}
					if err := a.cfgSvc.Save(config.DefaultConfig()); err != nil {
						return err
					}
					fmt.Printf("Wrote %s\n", path)
					return nil
				},
			},
			{
				Name:  "path",
				Usage: "Print the config file location",
				Action: func(cCtx *cli.Context) error {
					fmt.Println(current.cfgSvc.Path())
					return nil
				},
			},
		},
	}
}
