// Package navigator models the page loaded in one tab.
package navigator

import (
	"context"
	"net/url"
	"strings"

	"shell/internal/reflex"
	"shell/internal/unknown"
)

const searchURL = "https://duckduckgo.com/?q="

type Model struct {
	ID     string
	URL    string
	Title  string
	Pinned bool
	Status string
}

type Action interface {
	isNavigatorAction()
}

type Load struct{ URL string }

type Rename struct{ Title string }

type Pin struct{}

type Unpin struct{}

type CopyURL struct{}

type Copied struct{ Err error }

func (Load) isNavigatorAction()    {}
func (Rename) isNavigatorAction()  {}
func (Pin) isNavigatorAction()     {}
func (Unpin) isNavigatorAction()   {}
func (CopyURL) isNavigatorAction() {}
func (Copied) isNavigatorAction()  {}

func Init(id, rawURL string) Model {
	target := NormalizeURL(rawURL)
	return Model{ID: id, URL: target, Title: TitleFor(target)}
}

func Update(model Model, action Action) (Model, reflex.Effects[Action]) {
	switch action := action.(type) {
	case Load:
		target := NormalizeURL(action.URL)
		if target == "" {
			return model, reflex.None[Action]()
		}
		model.URL = target
		model.Title = TitleFor(target)
		model.Status = ""
		return model, reflex.None[Action]()
	case Rename:
		if title := strings.TrimSpace(action.Title); title != "" {
			model.Title = title
		}
		return model, reflex.None[Action]()
	case Pin:
		model.Pinned = true
		return model, reflex.None[Action]()
	case Unpin:
		model.Pinned = false
		return model, reflex.None[Action]()
	case CopyURL:
		if model.URL == "" {
			return model, reflex.None[Action]()
		}
		return model, copyURL(model.URL)
	case Copied:
		if action.Err != nil {
			model.Status = "copy failed: " + action.Err.Error()
		} else {
			model.Status = "copied " + model.URL
		}
		return model, reflex.None[Action]()
	default:
		return unknown.Update(model, action)
	}
}

func copyURL(target string) reflex.Effects[Action] {
	return reflex.Perform(func(context.Context) Action {
		return Copied{Err: copyToClipboard(target)}
	})
}

// NormalizeURL turns location bar input into a URL. Input that does not
// look like an address becomes a search.
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if strings.ContainsAny(raw, " \t") || (!strings.Contains(raw, ".") && !strings.Contains(raw, ":")) {
		return searchURL + url.QueryEscape(raw)
	}
	if parsed, err := url.Parse(raw); err == nil && parsed.Scheme != "" && parsed.Host != "" {
		return parsed.String()
	}
	if parsed, err := url.Parse(raw); err == nil && parsed.Scheme == "about" {
		return raw
	}
	return "https://" + raw
}

// TitleFor derives a placeholder title until the page reports its own.
func TitleFor(target string) string {
	parsed, err := url.Parse(target)
	if err != nil || parsed.Host == "" {
		return target
	}
	return strings.TrimPrefix(parsed.Host, "www.")
}
