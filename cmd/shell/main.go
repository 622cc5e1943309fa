package main

import (
	"fmt"
	"os"
)

const usageText = `shell is a terminal browser shell.

Usage:
  shell <command> [flags]

Commands:
  ui        run the browser shell (default when no command is given)
  config    print configuration (effective or defaults)
  tiles     list, add or remove new tab tiles
  session   show, export or import the saved tab session
  help      show help

Flags:
  -h, --help   show help

UI flags:
  --ephemeral     keep tiles and the session in memory only
  --max-tabs N    override the configured tab limit

Examples:
  shell ui https://go.dev
  shell config --format toml
  shell tiles add --title Go https://go.dev
  shell session export --out tabs.json
`

func printUsage() {
	fmt.Fprint(os.Stderr, usageText)
}

func main() {
	args := os.Args[1:]
	wiring := defaultCommandWiring(os.Stdout, os.Stderr)
	commands := buildCommands(wiring)

	if len(args) == 0 {
		exitOnErr("ui", commands["ui"].Run(nil), wiring.stderr)
		return
	}

	switch args[0] {
	case "-h", "--help", "help":
		printUsage()
		return
	}

	runner, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", args[0])
		printUsage()
		os.Exit(2)
	}
	exitOnErr(args[0], runner.Run(args[1:]), wiring.stderr)
}
