package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"shell/internal/store"
	"shell/internal/types"
)

type SessionCommand struct {
	stdout         io.Writer
	stderr         io.Writer
	loadConfig     configLoader
	openRepository repositoryOpener
}

func NewSessionCommand(stdout, stderr io.Writer, loadConfig configLoader, openRepository repositoryOpener) *SessionCommand {
	return &SessionCommand{
		stdout:         stdout,
		stderr:         stderr,
		loadConfig:     loadConfig,
		openRepository: openRepository,
	}
}

func (c *SessionCommand) Run(args []string) error {
	if len(args) == 0 {
		return c.show(nil)
	}
	switch args[0] {
	case "show":
		return c.show(args[1:])
	case "export":
		return c.export(args[1:])
	case "import":
		return c.importFile(args[1:])
	case "clear":
		return c.clear(args[1:])
	default:
		return fmt.Errorf("unknown session command: %s (want show, export, import or clear)", args[0])
	}
}

func (c *SessionCommand) show(args []string) error {
	fs := flag.NewFlagSet("session show", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	return c.withSessions(func(ctx context.Context, sessions store.SessionStore) error {
		session, err := sessions.Load(ctx)
		if err != nil {
			return err
		}
		if session == nil || len(session.Tabs) == 0 {
			fmt.Fprintln(c.stdout, "no saved tabs")
			return nil
		}
		printSession(c.stdout, session)
		return nil
	})
}

func (c *SessionCommand) export(args []string) error {
	fs := flag.NewFlagSet("session export", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	out := fs.String("out", "", "file to write the session to")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(*out) == "" {
		return errors.New("--out is required")
	}
	return c.withSessions(func(ctx context.Context, sessions store.SessionStore) error {
		session, err := sessions.Load(ctx)
		if err != nil {
			return err
		}
		if session == nil {
			session = &types.TabSession{}
		}
		if err := store.NewFileSessionStore(*out).Save(ctx, session); err != nil {
			return err
		}
		fmt.Fprintf(c.stdout, "exported %d tabs to %s\n", len(session.Tabs), *out)
		return nil
	})
}

func (c *SessionCommand) importFile(args []string) error {
	fs := flag.NewFlagSet("session import", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	in := fs.String("in", "", "file to read the session from")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(*in) == "" {
		return errors.New("--in is required")
	}
	ctx := context.Background()
	session, err := store.NewFileSessionStore(*in).Load(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("no session file at %s", *in)
		}
		return err
	}
	return c.withSessions(func(ctx context.Context, sessions store.SessionStore) error {
		if err := sessions.Save(ctx, session); err != nil {
			return err
		}
		fmt.Fprintf(c.stdout, "imported %d tabs\n", len(session.Tabs))
		return nil
	})
}

func (c *SessionCommand) clear(args []string) error {
	fs := flag.NewFlagSet("session clear", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	return c.withSessions(func(ctx context.Context, sessions store.SessionStore) error {
		return sessions.Save(ctx, &types.TabSession{})
	})
}

func (c *SessionCommand) withSessions(fn func(ctx context.Context, sessions store.SessionStore) error) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	repo, err := c.openRepository(cfg)
	if err != nil {
		return err
	}
	defer repo.Close()
	return fn(context.Background(), repo.Session())
}
