package script

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

const listScript = `
url: https://example.com/list
timeout: 3s
steps:
  - click: "#load"
    wait: "#rows"
  - shift_click: ["#row1", "#row4"]
  - control_click: ["#row1", "#row2", "#row3"]
  - drag: "#row2"
    drop: "#trash"
    native: true
  - key: enter
    on: "#search"
  - type: hello
    on: "#search"
  - hover: "#menu"
  - click: "#save"
    title: Saved
  - pause: 250ms
  - click_and_hold: "#slider"
  - release: "#slider-end"
  - context_click: "#row1"
  - double_click: "#row1"
`

func TestParse(t *testing.T) {
	t.Parallel()

	s, err := Parse([]byte(listScript))
	if err != nil {
		t.Fatalf("got error: %v", err)
	}
	if s.URL != "https://example.com/list" {
		t.Errorf("unexpected url: %s", s.URL)
	}
	if s.Timeout != 3*time.Second {
		t.Errorf("expected timeout 3s, got: %v", s.Timeout)
	}
	if len(s.Steps) != 13 {
		t.Fatalf("expected 13 steps, got: %d", len(s.Steps))
	}
	if s.Steps[8].Pause != 250*time.Millisecond {
		t.Errorf("expected pause 250ms, got: %v", s.Steps[8].Pause)
	}

	tasks, err := s.Tasks()
	if err != nil {
		t.Fatalf("got error: %v", err)
	}
	var names []string
	for _, task := range tasks {
		if task.Action == nil {
			t.Errorf("task %q has no action", task.Name)
		}
		names = append(names, task.Name)
	}
	exp := []string{
		"navigate https://example.com/list",
		"click #load, wait #rows",
		"shift_click #row1, #row4",
		"control_click #row1, #row2, #row3",
		"drag #row2 to #trash",
		"key Enter on #search",
		`type "hello" on #search`,
		"hover #menu",
		`click #save, wait title "Saved"`,
		"pause 250ms",
		"click_and_hold #slider",
		"release #slider-end",
		"context_click #row1",
		"double_click #row1",
	}
	if !reflect.DeepEqual(names, exp) {
		t.Errorf("expected tasks:\n%q\ngot:\n%q", exp, names)
	}
}

func TestActions(t *testing.T) {
	t.Parallel()

	s, err := Parse([]byte(listScript))
	if err != nil {
		t.Fatalf("got error: %v", err)
	}
	a, err := s.Actions()
	if err != nil {
		t.Fatalf("got error: %v", err)
	}
	if len(a) != len(s.Steps)+1 {
		t.Fatalf("expected %d actions, got: %d", len(s.Steps)+1, len(a))
	}
	for i, action := range a {
		if action == nil {
			t.Errorf("action %d is nil", i)
		}
	}

	bad := &Script{Steps: []Step{{Hover: "#a"}, {}}}
	if _, err := bad.Actions(); !errors.Is(err, ErrNoVerb) {
		t.Errorf("expected error %v, got: %v", ErrNoVerb, err)
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		err  error
	}{
		{"yaml", "steps: [", ErrInvalidScript},
		{"no steps", "url: x", ErrInvalidScript},
		{"no verb", "steps:\n  - wait: '#a'", ErrNoVerb},
		{"many verbs", "steps:\n  - click: '#a'\n    hover: '#b'", ErrManyVerbs},
		{"drag without drop", "steps:\n  - drag: '#a'", ErrMissingField},
		{"key without on", "steps:\n  - key: enter", ErrMissingField},
		{"type without on", "steps:\n  - type: abc", ErrMissingField},
		{"unknown key", "steps:\n  - key: hyper\n    on: '#a'", ErrInvalidField},
		{"shift click arity", "steps:\n  - shift_click: ['#a']", ErrInvalidField},
		{"wait after drag", "steps:\n  - drag: '#a'\n    drop: '#b'\n    wait: '#c'", ErrInvalidField},
		{"title after hover", "steps:\n  - hover: '#a'\n    title: x", ErrInvalidField},
		{"wait and title", "steps:\n  - click: '#a'\n    wait: '#b'\n    title: x", ErrInvalidField},
		{"negative pause", "steps:\n  - pause: -1s", ErrInvalidField},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(test.src))
			if !errors.Is(err, test.err) {
				t.Fatalf("expected error %v, got: %v", test.err, err)
			}
		})
	}
}

func TestParseFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "script.yaml")
	if err := os.WriteFile(path, []byte(listScript), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := ParseFile(path)
	if err != nil {
		t.Fatalf("got error: %v", err)
	}
	if len(s.Steps) != 13 {
		t.Errorf("expected 13 steps, got: %d", len(s.Steps))
	}

	if _, err := ParseFile(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not exist error, got: %v", err)
	}
}
