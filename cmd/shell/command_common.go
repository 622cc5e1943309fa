package main

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"text/tabwriter"

	"shell/internal/types"
)

const version = "dev"

func printTiles(output io.Writer, tiles []*types.Tile) {
	writer := tabwriter.NewWriter(output, 0, 8, 2, ' ', 0)
	fmt.Fprintln(writer, "POS\tPINNED\tTITLE\tURL")
	for _, tile := range tiles {
		pinned := "-"
		if tile.Pinned {
			pinned = "yes"
		}
		fmt.Fprintf(writer, "%d\t%s\t%s\t%s\n", tile.Position+1, pinned, tile.Title, tile.URL)
	}
	_ = writer.Flush()
}

func printSession(output io.Writer, session *types.TabSession) {
	writer := tabwriter.NewWriter(output, 0, 8, 2, ' ', 0)
	fmt.Fprintln(writer, "\tID\tTITLE\tURL")
	for _, record := range session.Tabs {
		marker := ""
		if record.ID == session.Selected {
			marker = "*"
		}
		if record.Pinned {
			marker += "^"
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", marker, record.ID, record.Title, record.URL)
	}
	_ = writer.Flush()
	if !session.SavedAt.IsZero() {
		fmt.Fprintf(output, "saved %s\n", session.SavedAt.Format("2006-01-02 15:04:05 MST"))
	}
}

func exitOnErr(label string, err error, stderr io.Writer) {
	if err == nil {
		return
	}
	fmt.Fprintf(stderr, "%s error: %v\n", label, err)
	os.Exit(1)
}

func buildVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		var revision string
		var modified string
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				revision = setting.Value
			case "vcs.modified":
				modified = setting.Value
			}
		}
		if revision != "" {
			if modified == "true" {
				return revision + "-dirty"
			}
			return revision
		}
	}

	exe, err := os.Executable()
	if err == nil {
		file, err := os.Open(exe)
		if err == nil {
			defer file.Close()
			hasher := sha256.New()
			if _, err := io.Copy(hasher, file); err == nil {
				sum := hasher.Sum(nil)
				return fmt.Sprintf("bin-%x", sum[:6])
			}
		}
	}

	return version
}
