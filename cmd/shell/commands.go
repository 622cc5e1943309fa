package main

import (
	"io"
	"os"

	"shell/internal/config"
	"shell/internal/store"
)

type commandRunner interface {
	Run(args []string) error
}

type configLoader func() (config.Config, error)

// repositoryOpener opens the persistent store for cfg.
type repositoryOpener func(cfg config.Config) (store.Repository, error)

type commandWiring struct {
	stdout         io.Writer
	stderr         io.Writer
	loadConfig     configLoader
	openRepository repositoryOpener
	runUI          uiRunner
	version        string
}

func defaultCommandWiring(stdout, stderr io.Writer) commandWiring {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return commandWiring{
		stdout:         stdout,
		stderr:         stderr,
		loadConfig:     config.Load,
		openRepository: openBboltRepository,
		runUI:          runBrowser,
		version:        buildVersion(),
	}
}

func buildCommands(wiring commandWiring) map[string]commandRunner {
	return map[string]commandRunner{
		"ui":      NewUICommand(wiring.stderr, wiring.loadConfig, wiring.openRepository, wiring.runUI, wiring.version),
		"config":  NewConfigCommand(wiring.stdout, wiring.stderr, wiring.loadConfig),
		"tiles":   NewTilesCommand(wiring.stdout, wiring.stderr, wiring.loadConfig, wiring.openRepository),
		"session": NewSessionCommand(wiring.stdout, wiring.stderr, wiring.loadConfig, wiring.openRepository),
	}
}

func openBboltRepository(cfg config.Config) (store.Repository, error) {
	path, err := cfg.ResolveStoragePath()
	if err != nil {
		return nil, err
	}
	return store.NewBboltRepository(path)
}
