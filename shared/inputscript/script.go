// Package inputscript replays held actions from a YAML file so a headless
// run can drive the character without a keyboard.
//
// A script is a list of tick ranges:
//
//	steps:
//	  - from: 0
//	    to: 120
//	    actions: [forward, boost]
//	  - from: 90
//	    to: 91
//	    actions: [jump]
//
// Ranges are half-open ([from, to)) and may overlap; overlapping actions are
// all held.
package inputscript

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/automoto/ringrush/config"
	"gopkg.in/yaml.v3"
)

// Step holds a set of actions for a range of ticks.
type Step struct {
	From    int      `yaml:"from"`
	To      int      `yaml:"to"`
	Actions []string `yaml:"actions"`
}

type scriptFile struct {
	Steps []Step `yaml:"steps"`
}

type span struct {
	from, to int
	held     [config.ActionCount]bool
}

// Script is a parsed, validated input script.
type Script struct {
	spans  []span
	length int
}

// Load reads a script from disk.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input script %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("input script %s: %w", path, err)
	}
	return s, nil
}

// LoadFS reads a script from fsys.
func LoadFS(fsys fs.FS, path string) (*Script, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read input script %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("input script %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a YAML script.
func Parse(data []byte) (*Script, error) {
	var sp scriptFile
	if err := yaml.Unmarshal(data, &sp); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	s := &Script{spans: make([]span, 0, len(sp.Steps))}
	for i, step := range sp.Steps {
		if step.From < 0 || step.To < step.From {
			return nil, fmt.Errorf("step %d: invalid range [%d, %d)", i, step.From, step.To)
		}
		sn := span{from: step.From, to: step.To}
		for _, name := range step.Actions {
			id, ok := config.ActionNames[name]
			if !ok {
				return nil, fmt.Errorf("step %d: unknown action %q", i, name)
			}
			sn.held[id] = true
		}
		s.spans = append(s.spans, sn)
		s.length = max(s.length, step.To)
	}
	return s, nil
}

// Len is the number of ticks the script covers.
func (s *Script) Len() int {
	return s.length
}

// Held returns the actions held on the given tick.
func (s *Script) Held(tick int) [config.ActionCount]bool {
	var held [config.ActionCount]bool
	for _, sn := range s.spans {
		if tick < sn.from || tick >= sn.to {
			continue
		}
		for id, on := range sn.held {
			if on {
				held[id] = true
			}
		}
	}
	return held
}
