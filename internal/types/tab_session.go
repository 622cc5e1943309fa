package types

import "time"

// TabSession is the persisted set of open tabs.
type TabSession struct {
	Tabs     []TabRecord `json:"tabs"`
	Selected string      `json:"selected,omitempty"`
	SavedAt  time.Time   `json:"saved_at"`
}

type TabRecord struct {
	ID     string `json:"id"`
	URL    string `json:"url"`
	Title  string `json:"title,omitempty"`
	Pinned bool   `json:"pinned,omitempty"`
}
