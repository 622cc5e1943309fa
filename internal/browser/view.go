package browser

import (
	"fmt"
	"strings"

	"shell/internal/browser/keys"
	"shell/internal/browser/location"
	"shell/internal/browser/navigator"
	"shell/internal/browser/newtab"
	"shell/internal/browser/sidebar"
	"shell/internal/browser/theme"
	"shell/internal/reflex"
)

const (
	defaultWidth  = 100
	defaultHeight = 30
	// location bar (3 rows with border) plus the status line
	chromeHeight = 4
)

func (a *App) View(model Model, address reflex.Address[Action]) reflex.Node {
	width, height := model.Width, model.Height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	contentWidth := width
	if model.Sidebar.IsOpen {
		contentWidth -= theme.SidebarWidth + 1
	}
	bodyHeight := max(height-chromeHeight, 1)

	selected, hasSelected := model.Tabs.SelectedCard()
	current := ""
	if hasSelected && !model.NewTab.IsShown {
		current = selected.URL
	}

	var content reflex.Node
	if model.NewTab.IsShown || !hasSelected {
		content = newtab.View(model.NewTab, reflex.Forward(address, NewTabAction), newtab.Context{
			Keys:   model.Keys,
			Width:  contentWidth,
			Height: bodyHeight,
		})
	} else {
		content = pageView(selected, contentWidth, bodyHeight)
	}

	return reflex.Column(
		location.View(model.Location, current, width-2),
		reflex.Row(
			sidebar.View(model.Sidebar, model.Tabs, reflex.Forward(address, SidebarAction), sidebar.Context{
				Keys:    model.Keys,
				MaxTabs: model.MaxTabs,
			}),
			content,
		),
		statusLine(model, selected, hasSelected),
	)
}

type pageProps struct {
	Card   navigator.Model
	Width  int
	Height int
}

func renderPage(props pageProps, _ reflex.Address[struct{}]) reflex.Node {
	title := props.Card.Title
	if title == "" {
		title = props.Card.URL
	}
	lines := []reflex.Node{
		reflex.Text(title).Styled(theme.Header),
		reflex.Text(props.Card.URL).Styled(theme.Status),
	}
	if props.Card.Pinned {
		lines = append(lines, reflex.Text("pinned").Styled(theme.TabPinned))
	}
	return reflex.Column(lines...).Styled(theme.Page.Width(props.Width).Height(props.Height))
}

func pageView(card navigator.Model, width, height int) reflex.Node {
	return reflex.Thunk[pageProps, struct{}]("Browser/Page", renderPage, pageProps{Card: card, Width: width, Height: height}, nil)
}

func statusLine(model Model, selected navigator.Model, hasSelected bool) reflex.Node {
	status := model.Status
	if status == "" && hasSelected {
		status = selected.Status
	}
	hints := make([]string, 0, 4)
	for _, command := range []string{keys.CommandToggleSidebar, keys.CommandNewTab, keys.CommandFocusLocation, keys.CommandQuit} {
		hints = append(hints, fmt.Sprintf("%s %s", model.Keys.KeyFor(command), keys.Help(command)))
	}
	hint := reflex.Text(strings.Join(hints, " · ")).Styled(theme.Help)
	if status == "" {
		return hint
	}
	style := theme.Status
	if strings.Contains(status, "failed") || strings.Contains(status, "limit") {
		style = theme.StatusError
	}
	return reflex.Row(reflex.Text(status+"  ").Styled(style), hint)
}
