package types

import "time"

// Tile is a shortcut shown on the new tab page.
type Tile struct {
	URL       string    `json:"url"`
	Title     string    `json:"title"`
	Position  int       `json:"position"`
	Pinned    bool      `json:"pinned,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
