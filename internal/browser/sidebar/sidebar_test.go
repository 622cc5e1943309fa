package sidebar

import (
	"slices"
	"testing"

	"shell/internal/browser/keys"
	"shell/internal/browser/navigator"
	"shell/internal/browser/sidebar/tabs"
	"shell/internal/browser/sidebar/toolbar"
	"shell/internal/control"
	"shell/internal/deck"
	"shell/internal/reflex"
)

func sampleTabs() tabs.Model {
	m := deck.New[navigator.Model]()
	m = m.Add("tab-1", navigator.Init("tab-1", "one.test"), false)
	m = m.Add("tab-2", navigator.Init("tab-2", "two.test"), true)
	return m
}

func TestOpenCloseToggle(t *testing.T) {
	tests := []struct {
		name   string
		start  bool
		action Action
		want   bool
	}{
		{name: "open closed", start: false, action: Open{}, want: true},
		{name: "open open", start: true, action: Open{}, want: true},
		{name: "close open", start: true, action: Close{}, want: false},
		{name: "toggle open", start: true, action: Toggle{}, want: false},
		{name: "toggle closed", start: false, action: Toggle{}, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, fx := Update(Init(tt.start, false), tt.action)
			if next.IsOpen != tt.want {
				t.Fatalf("IsOpen = %v, want %v", next.IsOpen, tt.want)
			}
			if !fx.IsNone() {
				t.Fatalf("expected no effects")
			}
		})
	}
}

func TestToolbarActionsReachTheButton(t *testing.T) {
	next, _ := Update(Init(true, false), Toolbar{Source: toolbar.ButtonAction(control.Disable{})})
	if !next.Toolbar.NewTab.Disabled() {
		t.Fatalf("expected new tab button disabled")
	}
	if !next.IsOpen {
		t.Fatalf("toolbar actions must not change visibility")
	}
}

func TestPassThroughActionsAreLeftAlone(t *testing.T) {
	model := Init(true, false)
	for _, action := range []Action{CreateTab{}, Tabs{Source: tabs.Close{ID: "tab-1"}}} {
		next, fx := Update(model, action)
		if next != model || !fx.IsNone() {
			t.Fatalf("sidebar must not handle %T", action)
		}
	}
}

func TestToolbarCreateTabIsLifted(t *testing.T) {
	if got := ToolbarAction(toolbar.CreateTab{}); got != Action(CreateTab{}) {
		t.Fatalf("expected CreateTab, got %#v", got)
	}
	source := toolbar.ButtonAction(control.Enable{})
	if got := ToolbarAction(source); got != Action(Toolbar{Source: source}) {
		t.Fatalf("expected wrapped toolbar action, got %#v", got)
	}
}

func TestViewShowsHeaderAndTabs(t *testing.T) {
	node := View(Init(true, false), sampleTabs(), nil, Context{Keys: keys.Default(), MaxTabs: 5})
	texts := node.Texts()
	if len(texts) == 0 || texts[0] != "Tabs 2/5" {
		t.Fatalf("unexpected header in %#v", texts)
	}

	closed := View(Init(false, false), sampleTabs(), nil, Context{Keys: keys.Default()})
	if got := closed.Texts(); len(got) != 0 {
		t.Fatalf("closed sidebar should render nothing, got %#v", got)
	}
}

func TestViewRoutesTabAndToolbarBindings(t *testing.T) {
	var sent []Action
	address := reflex.Address[Action](func(a Action) { sent = append(sent, a) })
	km := keys.Default()

	frame := reflex.NewRenderer().Render(View(Init(true, false), sampleTabs(), address, Context{Keys: km}))
	newTab, ok := frame.Lookup(km.KeyFor(keys.CommandNewTab))
	if !ok {
		t.Fatalf("expected new tab binding")
	}
	newTab.Send()
	activate, ok := frame.Lookup("alt+1")
	if !ok {
		t.Fatalf("expected alt+1 binding")
	}
	activate.Send()

	want := []Action{CreateTab{}, Tabs{Source: tabs.Activate{ID: "tab-1"}}}
	if !slices.Equal(sent, want) {
		t.Fatalf("unexpected actions %#v", sent)
	}

	frame = reflex.NewRenderer().Render(View(Init(false, false), sampleTabs(), address, Context{Keys: km}))
	if len(frame.Bindings) != 0 {
		t.Fatalf("closed sidebar must not bind keys, got %d", len(frame.Bindings))
	}
}
