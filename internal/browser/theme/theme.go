// Package theme holds the style sheets shared by browser components. All
// styles are built once at start-up and never mutated.
package theme

import "charm.land/lipgloss/v2"

const (
	SidebarWidth = 28
	TileWidth    = 18
)

var (
	Header        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	Help          = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	Status        = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	StatusError   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	Divider       = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	Sidebar       = lipgloss.NewStyle().Width(SidebarWidth).PaddingRight(1).BorderRight(true).BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("238"))
	Tab           = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	TabSelected   = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("236")).Bold(true)
	TabPinned     = lipgloss.NewStyle().Foreground(lipgloss.Color("110"))
	Button        = lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Bold(true).Underline(true)
	ButtonOff     = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true)
	Location      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	LocationFocus = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("69")).Padding(0, 1)
	TileDark      = lipgloss.NewStyle().Width(TileWidth).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("250")).Foreground(lipgloss.Color("255")).Padding(0, 1)
	TileLight     = lipgloss.NewStyle().Width(TileWidth).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Foreground(lipgloss.Color("234")).Padding(0, 1)
	Swatch        = lipgloss.NewStyle().Padding(0, 1)
	SwatchActive  = lipgloss.NewStyle().Padding(0, 1).Underline(true).Bold(true)
	Page          = lipgloss.NewStyle().Padding(1, 2)
)
