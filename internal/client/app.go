// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/maxazure/home/internal/adapter"
	"github.com/maxazure/home/internal/config"
	"github.com/maxazure/home/internal/logger"
	"github.com/maxazure/home/models"
	"golang.org/x/term"
)

type command struct {
	usage   string
	summary string
	args    int
	admin   bool
	run     func(a *App, ctx context.Context, args []string) error
}

var commands = map[string]command{
	"status":     {usage: "status", summary: "show the session state", run: (*App).status},
	"version":    {usage: "version", summary: "show the server build", run: (*App).version},
	"categories": {usage: "categories", summary: "list categories in display order", run: (*App).categories},
	"users":      {usage: "users", summary: "list users with their lock state", admin: true, run: (*App).users},
	"ip-blocks":  {usage: "ip-blocks", summary: "list tracked source addresses", admin: true, run: (*App).ipBlocks},
	"unlock-user": {
		usage: "unlock-user <user-id>", summary: "clear the lock of a user",
		args: 1, admin: true, run: (*App).unlockUser,
	},
	"unblock-ip": {
		usage: "unblock-ip <block-id>", summary: "clear the block of an address",
		args: 1, admin: true, run: (*App).unblockIP,
	},
	"move": {
		usage: "move <category-id> up|down", summary: "swap a category with its neighbour",
		args: 2, admin: true, run: (*App).move,
	},
	"reorder": {
		usage: "reorder <source-id> <target-id>", summary: "place a category at the position of another",
		args: 2, admin: true, run: (*App).reorder,
	},
	"section": {
		usage: "section <name> up|down", summary: "swap a section with its neighbour",
		args: 2, admin: true, run: (*App).section,
	},
}

// App is the linkctl command dispatcher.
type App struct {
	server      adapter.ServerAdapter
	credentials config.ClientCredentials
	readPass    PasswordReader
	out         io.Writer
	logger      *logger.Logger
}

// NewApp builds an App writing its results to out. A nil readPass prompts on
// the controlling terminal.
func NewApp(server adapter.ServerAdapter, credentials config.ClientCredentials, readPass PasswordReader, out io.Writer, logger *logger.Logger) *App {
	if readPass == nil {
		readPass = terminalPassword
	}
	return &App{
		server:      server,
		credentials: credentials,
		readPass:    readPass,
		out:         out,
		logger:      logger,
	}
}

// Run executes the command named by args[0].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.Usage()
		return ErrNoCommand
	}

	name, rest := args[0], args[1:]
	if name == "help" {
		a.Usage()
		return nil
	}

	cmd, ok := commands[name]
	if !ok {
		a.Usage()
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	if len(rest) != cmd.args {
		return fmt.Errorf("%w: usage: linkctl %s", ErrUsage, cmd.usage)
	}

	if cmd.admin {
		if err := a.login(ctx); err != nil {
			return err
		}
		defer func() {
			if err := a.server.Logout(ctx); err != nil {
				a.logger.Warn().Err(err).Msg("logout failed")
			}
		}()
	}

	a.logger.Debug().Str("command", name).Strs("args", rest).Msg("running command")
	return cmd.run(a, ctx, rest)
}

// Usage prints the command list.
func (a *App) Usage() {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(a.out, "usage: linkctl [-server url] [-timeout d] [-u user] [-p password] <command> [args]")
	fmt.Fprintln(a.out)
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	for _, name := range names {
		fmt.Fprintf(tw, "  %s\t%s\n", commands[name].usage, commands[name].summary)
	}
	_ = tw.Flush()
}

func (a *App) login(ctx context.Context) error {
	if a.credentials.Username == "" {
		return ErrNoUsername
	}

	password := a.credentials.Password
	if password == "" {
		var err error
		password, err = a.readPass(fmt.Sprintf("password for %s: ", a.credentials.Username))
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
	}

	resp, err := a.server.Login(ctx, models.LoginRequest{Username: a.credentials.Username, Password: password})
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	a.logger.Debug().Int64("user_id", resp.User.ID).Msg("logged in")
	return nil
}

func (a *App) status(ctx context.Context, _ []string) error {
	status, err := a.server.Status(ctx)
	if err != nil {
		return err
	}

	if !status.Authenticated || status.User == nil {
		fmt.Fprintln(a.out, "not authenticated")
		return nil
	}
	fmt.Fprintf(a.out, "authenticated as %s\n", status.User.Username)
	return nil
}

func (a *App) version(ctx context.Context, _ []string) error {
	v, err := a.server.Version(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "version: %s\ndate: %s\ncommit: %s\n", v.Version, v.Date, v.Commit)
	return nil
}

func (a *App) categories(ctx context.Context, _ []string) error {
	categories, err := a.server.ListCategories(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSECTION\tTITLE\tORDER\tLINKS")
	for _, c := range categories {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d.%d\t%d\n", c.ID, c.SectionName, c.Title, c.SectionOrder, c.CategoryOrder, len(c.Links))
	}
	return tw.Flush()
}

func (a *App) users(ctx context.Context, _ []string) error {
	users, err := a.server.ListUsers(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUSERNAME\tSTATE\tFAILED")
	for _, u := range users {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\n", u.ID, u.Username, u.State, u.FailedLoginAttempts)
	}
	return tw.Flush()
}

func (a *App) ipBlocks(ctx context.Context, _ []string) error {
	blocks, err := a.server.ListIPBlocks(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tADDRESS\tSTATE\tFAILED\tLAST ATTEMPT")
	for _, b := range blocks {
		last := "-"
		if b.LastAttempt != nil {
			last = b.LastAttempt.Format("2006-01-02 15:04:05")
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\n", b.ID, b.IPAddress, b.State, b.FailedAttempts, last)
	}
	return tw.Flush()
}

func (a *App) unlockUser(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	return a.acknowledge(a.server.UnlockUser(ctx, id))
}

func (a *App) unblockIP(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	return a.acknowledge(a.server.UnblockIP(ctx, id))
}

func (a *App) move(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	dir, err := models.ParseDirection(args[1])
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	return a.acknowledge(a.server.MoveCategory(ctx, models.MoveCategoryRequest{CategoryID: id, Direction: string(dir)}))
}

func (a *App) reorder(ctx context.Context, args []string) error {
	source, err := parseID(args[0])
	if err != nil {
		return err
	}
	target, err := parseID(args[1])
	if err != nil {
		return err
	}
	return a.acknowledge(a.server.ReorderCategory(ctx, models.ReorderCategoryRequest{SourceID: source, TargetID: target}))
}

func (a *App) section(ctx context.Context, args []string) error {
	dir, err := models.ParseDirection(args[1])
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	return a.acknowledge(a.server.ReorderSection(ctx, models.ReorderSectionRequest{SectionName: args[0], Direction: string(dir)}))
}

func (a *App) acknowledge(message string, err error) error {
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, message)
	return nil
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q is not a positive id", ErrUsage, raw)
	}
	return id, nil
}

func terminalPassword(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", ErrNotTerminal
	}

	fmt.Fprint(os.Stderr, prompt)
	password, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(password), nil
}
