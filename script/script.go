// Package script runs input action scripts written in YAML.
//
// A script names the page to open and the steps to perform on it:
//
//	url: https://example.com/list
//	timeout: 10s
//	steps:
//	  - click: "#load"
//	    wait: "#rows"
//	  - shift_click: ["#row1", "#row4"]
//	  - drag: "#row2"
//	    drop: "#trash"
//	  - key: Enter
//	    on: "#search"
//
// Selectors are CSS selectors (chromedp.ByQuery).
package script

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
	"gopkg.in/yaml.v3"

	"github.com/chromedp/actions"
)

// Error is a script error.
type Error string

// Error satisfies the error interface.
func (err Error) Error() string {
	return string(err)
}

// Error types.
const (
	ErrNoVerb        Error = "step has no action"
	ErrManyVerbs     Error = "step has more than one action"
	ErrMissingField  Error = "missing field"
	ErrInvalidField  Error = "invalid field"
	ErrInvalidScript Error = "invalid script"
)

// Script is a list of steps performed on a page.
type Script struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`
	Steps   []Step        `yaml:"steps"`
}

// Step is a single script step. Exactly one of the action fields (Click,
// DoubleClick, Hover, ContextClick, ClickAndHold, Release, Drag, Key, Type,
// ShiftClick, ControlClick, Pause) must be set.
type Step struct {
	Click        string        `yaml:"click"`
	DoubleClick  string        `yaml:"double_click"`
	Hover        string        `yaml:"hover"`
	ContextClick string        `yaml:"context_click"`
	ClickAndHold string        `yaml:"click_and_hold"`
	Release      string        `yaml:"release"`
	Drag         string        `yaml:"drag"`
	Key          string        `yaml:"key"`
	Type         string        `yaml:"type"`
	ShiftClick   []string      `yaml:"shift_click"`
	ControlClick []string      `yaml:"control_click"`
	Pause        time.Duration `yaml:"pause"`

	// Drop is the drop target of Drag.
	Drop string `yaml:"drop"`
	// Native enables HTML5 drag and drop for Drag.
	Native bool `yaml:"native"`
	// On is the element receiving Key or Type.
	On string `yaml:"on"`
	// Wait is a selector to wait for after Click or Hover.
	Wait string `yaml:"wait"`
	// Title is a page title to wait for after Click.
	Title string `yaml:"title"`
}

// verb returns the name of the action set on the step.
func (s *Step) verb() (string, error) {
	set := map[string]bool{
		"click":          s.Click != "",
		"double_click":   s.DoubleClick != "",
		"hover":          s.Hover != "",
		"context_click":  s.ContextClick != "",
		"click_and_hold": s.ClickAndHold != "",
		"release":        s.Release != "",
		"drag":           s.Drag != "",
		"key":            s.Key != "",
		"type":           s.Type != "",
		"shift_click":    len(s.ShiftClick) != 0,
		"control_click":  len(s.ControlClick) != 0,
		"pause":          s.Pause != 0,
	}
	var verbs []string
	for name, ok := range set {
		if ok {
			verbs = append(verbs, name)
		}
	}
	switch len(verbs) {
	case 0:
		return "", ErrNoVerb
	case 1:
		return verbs[0], nil
	}
	return "", ErrManyVerbs
}

// Task is a compiled step.
type Task struct {
	// Name describes the step, ie "click #load".
	Name   string
	Action chromedp.Action
}

// Parse decodes a script.
func Parse(buf []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(buf, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScript, err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("%w: no steps", ErrInvalidScript)
	}
	for i := range s.Steps {
		if _, err := s.Steps[i].task(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return &s, nil
}

// ParseFile reads and decodes the script at path.
func ParseFile(path string) (*Script, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(buf)
}

// Tasks compiles the script, navigating to its URL first when one is set.
// The script timeout applies unless opts override it.
func (s *Script) Tasks(opts ...actions.Option) ([]Task, error) {
	if s.Timeout > 0 {
		opts = append([]actions.Option{actions.WithTimeout(s.Timeout)}, opts...)
	}
	var tasks []Task
	if s.URL != "" {
		tasks = append(tasks, Task{Name: "navigate " + s.URL, Action: chromedp.Navigate(s.URL)})
	}
	for i := range s.Steps {
		c, err := s.Steps[i].task(opts...)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		tasks = append(tasks, c)
	}
	return tasks, nil
}

// Actions compiles the script like Tasks, dropping the step names.
func (s *Script) Actions(opts ...actions.Option) ([]chromedp.Action, error) {
	tasks, err := s.Tasks(opts...)
	if err != nil {
		return nil, err
	}
	a := make([]chromedp.Action, len(tasks))
	for i, task := range tasks {
		a[i] = task.Action
	}
	return a, nil
}

func query(sel string) actions.Target {
	return actions.Query(sel, chromedp.ByQuery)
}

func queryAll(sels []string) []actions.Target {
	targets := make([]actions.Target, len(sels))
	for i, sel := range sels {
		targets[i] = query(sel)
	}
	return targets
}

func (s *Step) task(opts ...actions.Option) (Task, error) {
	verb, err := s.verb()
	if err != nil {
		return Task{}, err
	}
	if s.Wait != "" && s.Title != "" {
		return Task{}, fmt.Errorf("%w: wait and title are exclusive", ErrInvalidField)
	}
	if s.Wait != "" && verb != "click" && verb != "hover" {
		return Task{}, fmt.Errorf("%w: wait only follows click or hover", ErrInvalidField)
	}
	if s.Title != "" && verb != "click" {
		return Task{}, fmt.Errorf("%w: title only follows click", ErrInvalidField)
	}
	opts = append(append([]actions.Option(nil), opts...), actions.WithQueryOptions(chromedp.ByQuery))

	var a chromedp.Action
	name := verb
	switch verb {
	case "click":
		name += " " + s.Click
		switch {
		case s.Wait != "":
			a = actions.ClickAndWait(query(s.Click), s.Wait, opts...)
			name += ", wait " + s.Wait
		case s.Title != "":
			a = actions.ClickAndWaitTitle(query(s.Click), s.Title, opts...)
			name += fmt.Sprintf(", wait title %q", s.Title)
		default:
			a = actions.Click(query(s.Click), opts...)
		}
	case "double_click":
		name += " " + s.DoubleClick
		a = actions.DoubleClick(query(s.DoubleClick), opts...)
	case "hover":
		name += " " + s.Hover
		if s.Wait != "" {
			a = actions.HoverAndWait(query(s.Hover), s.Wait, opts...)
			name += ", wait " + s.Wait
		} else {
			a = actions.Hover(query(s.Hover), opts...)
		}
	case "context_click":
		name += " " + s.ContextClick
		a = actions.ContextClick(query(s.ContextClick), opts...)
	case "click_and_hold":
		name += " " + s.ClickAndHold
		a = actions.ClickAndHold(query(s.ClickAndHold), opts...)
	case "release":
		name += " " + s.Release
		a = actions.New(opts...).ReleaseOn(query(s.Release)).Build()
	case "drag":
		if s.Drop == "" {
			return Task{}, fmt.Errorf("%w: drop", ErrMissingField)
		}
		name += " " + s.Drag + " to " + s.Drop
		if s.Native {
			opts = append(opts, actions.WithNativeDrag())
		}
		a = actions.DragAndDrop(query(s.Drag), query(s.Drop), opts...)
	case "key":
		if s.On == "" {
			return Task{}, fmt.Errorf("%w: on", ErrMissingField)
		}
		k, err := actions.ParseKey(s.Key)
		if err != nil {
			return Task{}, fmt.Errorf("%w: key: %v (known: %s)", ErrInvalidField, err, strings.Join(actions.KeyNames(), ", "))
		}
		name += " " + k.Name + " on " + s.On
		a = chromedp.Tasks{
			chromedp.Focus(s.On, chromedp.ByQuery),
			actions.Insert(query(s.On), k, opts...),
		}
	case "type":
		if s.On == "" {
			return Task{}, fmt.Errorf("%w: on", ErrMissingField)
		}
		name += fmt.Sprintf(" %q on %s", s.Type, s.On)
		a = actions.Type(query(s.On), s.Type, opts...)
	case "shift_click":
		if len(s.ShiftClick) != 2 {
			return Task{}, fmt.Errorf("%w: shift_click needs 2 selectors, got %d", ErrInvalidField, len(s.ShiftClick))
		}
		name += " " + strings.Join(s.ShiftClick, ", ")
		a = actions.ShiftClick(query(s.ShiftClick[0]), query(s.ShiftClick[1]), opts...)
	case "control_click":
		name += " " + strings.Join(s.ControlClick, ", ")
		a = actions.ControlClick(query(s.ControlClick[0]), queryAll(s.ControlClick[1:]), opts...)
	case "pause":
		if s.Pause < 0 {
			return Task{}, fmt.Errorf("%w: negative pause", ErrInvalidField)
		}
		name += " " + s.Pause.String()
		a = chromedp.Sleep(s.Pause)
	}
	return Task{Name: name, Action: a}, nil
}
