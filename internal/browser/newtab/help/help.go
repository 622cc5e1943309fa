// Package help renders the keybinding reference on the new tab page.
package help

import (
	"fmt"
	"strings"

	"shell/internal/browser/keys"
	"shell/internal/reflex"
)

type Props struct {
	Keys  keys.Map
	Width int
	Dark  bool
}

// Markdown lists every command with its current key.
func Markdown(km keys.Map) string {
	var b strings.Builder
	b.WriteString("### Keys\n\n")
	b.WriteString("| key | action |\n|---|---|\n")
	for _, command := range keys.Commands() {
		fmt.Fprintf(&b, "| `%s` | %s |\n", escapeCell(km.KeyFor(command)), keys.Help(command))
	}
	b.WriteString("\nPress `1`-`9` to open a tile and `alt+1`-`alt+9` to jump to a tab.\n")
	return b.String()
}

func escapeCell(text string) string {
	return strings.ReplaceAll(text, "|", "\\|")
}

func Render(props Props, _ reflex.Address[struct{}]) reflex.Node {
	return reflex.Text(renderMarkdown(Markdown(props.Keys), props.Width, props.Dark))
}

func View(props Props) reflex.Node {
	return reflex.Thunk[Props, struct{}]("help", Render, props, nil)
}
