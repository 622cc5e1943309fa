package control

import "testing"

type button struct {
	Label    string
	disabled bool
}

func (b button) Disabled() bool { return b.disabled }

func (b button) WithDisabled(disabled bool) button {
	b.disabled = disabled
	return b
}

func TestUpdateTransitions(t *testing.T) {
	cases := []struct {
		name   string
		in     Model
		action Action
		want   Model
	}{
		{name: "enable when enabled", in: Model{IsDisabled: false}, action: Enable{}, want: Model{IsDisabled: false}},
		{name: "enable when disabled", in: Model{IsDisabled: true}, action: Enable{}, want: Model{IsDisabled: false}},
		{name: "disable when enabled", in: Model{IsDisabled: false}, action: Disable{}, want: Model{IsDisabled: true}},
		{name: "disable when disabled", in: Model{IsDisabled: true}, action: Disable{}, want: Model{IsDisabled: true}},
		{name: "nil action", in: Model{IsDisabled: true}, action: nil, want: Model{IsDisabled: true}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, fx := Update(tc.in, tc.action)
			if got != tc.want {
				t.Fatalf("got %#v, want %#v", got, tc.want)
			}
			if !fx.IsNone() {
				t.Fatalf("expected no effects")
			}
		})
	}
}

func TestDisableIsIdempotent(t *testing.T) {
	once, _ := Update(Model{}, Disable{})
	twice, _ := Update(once, Disable{})
	if once != twice {
		t.Fatalf("expected idempotent disable: %#v vs %#v", once, twice)
	}
}

func TestUpdateWorksOnAnyDisableableModel(t *testing.T) {
	in := button{Label: "New tab"}
	got, _ := Update(in, Disable{})
	if !got.Disabled() || got.Label != "New tab" {
		t.Fatalf("unexpected model: %#v", got)
	}
	got, _ = Update(got, Set(false))
	if got.Disabled() {
		t.Fatalf("expected enabled button")
	}
}
