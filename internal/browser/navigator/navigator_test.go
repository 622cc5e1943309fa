package navigator

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestNormalizeURL(t *testing.T) {
	cases := map[string]string{
		"":                  "",
		"go.dev":            "https://go.dev",
		" https://go.dev/x": "https://go.dev/x",
		"localhost:8080":    "https://localhost:8080",
		"about:blank":       "about:blank",
		"hello world":       "https://duckduckgo.com/?q=hello+world",
		"golang":            "https://duckduckgo.com/?q=golang",
	}
	for raw, want := range cases {
		if got := NormalizeURL(raw); got != want {
			t.Fatalf("NormalizeURL(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestInitDerivesTitle(t *testing.T) {
	m := Init("tab-1", "www.mozilla.org/en-US")
	if m.ID != "tab-1" || m.URL != "https://www.mozilla.org/en-US" || m.Title != "mozilla.org" {
		t.Fatalf("unexpected model: %#v", m)
	}
}

func TestUpdateLoadRenameAndPin(t *testing.T) {
	m := Init("tab-1", "go.dev")
	m.Status = "old"
	m, fx := Update(m, Load{URL: "pkg.go.dev"})
	if m.URL != "https://pkg.go.dev" || m.Title != "pkg.go.dev" || m.Status != "" || !fx.IsNone() {
		t.Fatalf("unexpected load result: %#v", m)
	}
	unchanged, _ := Update(m, Load{URL: "  "})
	if unchanged != m {
		t.Fatalf("blank load changed the model")
	}
	m, _ = Update(m, Rename{Title: "Packages"})
	if m.Title != "Packages" {
		t.Fatalf("unexpected title %q", m.Title)
	}
	m, _ = Update(m, Pin{})
	if !m.Pinned {
		t.Fatalf("expected pinned")
	}
	m, _ = Update(m, Unpin{})
	if m.Pinned {
		t.Fatalf("expected unpinned")
	}
}

func TestCopyURLEffect(t *testing.T) {
	prevSys, prevOSC := clipboardWriteAll, clipboardWriteOSC52
	t.Cleanup(func() { clipboardWriteAll, clipboardWriteOSC52 = prevSys, prevOSC })

	var copied string
	clipboardWriteAll = func(text string) error {
		copied = text
		return nil
	}
	m := Init("tab-1", "go.dev")
	next, fx := Update(m, CopyURL{})
	if next != m {
		t.Fatalf("copy must not change the model before the effect resolves")
	}
	if copied != "" {
		t.Fatalf("update must not touch the clipboard")
	}
	results := fx.Run(context.Background())
	if len(results) != 1 || copied != "https://go.dev" {
		t.Fatalf("unexpected effect results: %#v copied=%q", results, copied)
	}
	next, _ = Update(next, results[0])
	if next.Status != "copied https://go.dev" {
		t.Fatalf("unexpected status: %q", next.Status)
	}
}

func TestCopyFallsBackToOSC52(t *testing.T) {
	prevSys, prevOSC := clipboardWriteAll, clipboardWriteOSC52
	t.Cleanup(func() { clipboardWriteAll, clipboardWriteOSC52 = prevSys, prevOSC })

	clipboardWriteAll = func(string) error { return errors.New("no xclip") }
	osc := 0
	clipboardWriteOSC52 = func(string) error {
		osc++
		return nil
	}
	if err := copyToClipboard("x"); err != nil || osc != 1 {
		t.Fatalf("expected OSC52 fallback, err=%v osc=%d", err, osc)
	}

	clipboardWriteOSC52 = func(string) error { return errors.New("no tty") }
	err := copyToClipboard("x")
	if err == nil || !strings.Contains(err.Error(), "no tty") {
		t.Fatalf("expected combined error, got %v", err)
	}
	m, _ := Update(Init("tab-1", "go.dev"), Copied{Err: err})
	if !strings.HasPrefix(m.Status, "copy failed:") {
		t.Fatalf("unexpected status: %q", m.Status)
	}
}

func TestWriteOSC52Sequence(t *testing.T) {
	t.Setenv("TMUX", "")
	t.Setenv("TERM", "xterm-256color")
	var buf bytes.Buffer
	if err := writeOSC52Sequence(&buf, "hello"); err != nil {
		t.Fatalf("writeOSC52Sequence: %v", err)
	}
	if !strings.Contains(buf.String(), "]52;c;") {
		t.Fatalf("expected OSC52 sequence, got %q", buf.String())
	}
}
