// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/MKhiriev/go-book-catalog/internal/adapter"
	"github.com/MKhiriev/go-book-catalog/internal/logger"
	"github.com/MKhiriev/go-book-catalog/models"
)

const usage = `usage: catalog-client <command> [flags]

commands:
  register -username NAME -password PASS
  login    -username NAME -password PASS   prints a token for CATALOG_TOKEN
  authors  list | create | update | delete
  books    list | create | update | delete
  version
  health

run "<command> [subcommand] -h" for the flags of a command
`

type command func(ctx context.Context, args []string) error

// App runs one catalog command per Run call.
type App struct {
	server    adapter.ServerAdapter
	buildInfo models.AppBuildInfo

	out    io.Writer
	errOut io.Writer

	logger *logger.Logger
}

// NewApp returns an App that talks to the catalog through server. Results
// go to out; usage and flag errors go to errOut.
func NewApp(server adapter.ServerAdapter, buildInfo models.AppBuildInfo, out, errOut io.Writer, logger *logger.Logger) (*App, error) {
	if server == nil {
		return nil, ErrNoServerAdapter
	}

	return &App{
		server:    server,
		buildInfo: buildInfo,
		out:       out,
		errOut:    errOut,
		logger:    logger,
	}, nil
}

// Run implements [Client].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.errOut, usage)
		return ErrMissingCommand
	}

	commands := map[string]command{
		"register": a.register,
		"login":    a.login,
		"authors":  a.authors,
		"books":    a.books,
		"version":  a.version,
		"health":   a.health,
	}

	switch args[0] {
	case "help", "-h", "-help", "--help":
		fmt.Fprint(a.out, usage)
		return nil
	}

	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprint(a.errOut, usage)
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}

	a.logger.Debug().Strs("args", args).Msg("running command")

	return cmd(ctx, args[1:])
}

func (a *App) subcommand(ctx context.Context, group string, args []string, commands map[string]command) error {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)

	if len(args) == 0 {
		return fmt.Errorf("%w: %s needs one of %s", ErrMissingCommand, group, strings.Join(names, ", "))
	}

	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("%w: %s %q, expected one of %s", ErrUnknownCommand, group, args[0], strings.Join(names, ", "))
	}

	return cmd(ctx, args[1:])
}

func (a *App) register(ctx context.Context, args []string) error {
	credentials, err := a.credentials("register", args)
	if err != nil {
		return err
	}

	user, err := a.server.Register(ctx, credentials)
	if err != nil {
		return err
	}

	return a.printJSON(user)
}

func (a *App) login(ctx context.Context, args []string) error {
	credentials, err := a.credentials("login", args)
	if err != nil {
		return err
	}

	token, err := a.server.Login(ctx, credentials)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.out, token.SignedString)
	return err
}

func (a *App) credentials(name string, args []string) (models.Credentials, error) {
	var c models.Credentials

	fs := a.newFlagSet(name)
	fs.StringVar(&c.Username, "username", "", "account username")
	fs.StringVar(&c.Password, "password", "", "account password")

	return c, parseFlags(fs, args)
}

func (a *App) version(ctx context.Context, args []string) error {
	if err := parseFlags(a.newFlagSet("version"), args); err != nil {
		return err
	}

	serverVersion, err := a.server.Version(ctx)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(a.out, "client %s\nserver %s\n", a.buildInfo, serverVersion)
	return err
}

func (a *App) health(ctx context.Context, args []string) error {
	if err := parseFlags(a.newFlagSet("health"), args); err != nil {
		return err
	}

	if err := a.server.Health(ctx); err != nil {
		return err
	}

	_, err := fmt.Fprintln(a.out, "ok")
	return err
}

func (a *App) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	return fs
}

func (a *App) printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}

	_, err = fmt.Fprintln(a.out, string(data))
	return err
}

// parseFlags parses args into fs and rejects positional leftovers.
func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFlags, err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected arguments %v", ErrInvalidFlags, fs.Args())
	}

	return nil
}

// setFlags returns the names of the flags given on the command line.
func setFlags(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}

func requireID(id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: -id must be a positive integer", ErrInvalidFlags)
	}
	return nil
}

func parseDateFlag(name, value string) (*models.Date, error) {
	d, err := models.ParseDate(value)
	if err != nil {
		return nil, fmt.Errorf("%w: -%s: %w", ErrInvalidFlags, name, err)
	}
	return &d, nil
}
