// Package cuesheet loads declarative scene descriptions from YAML.
//
// A cue sheet names groups of actors, gives each actor a starting pose and a
// script of timed steps, and optionally synchronizes every timeline once the
// scripts are queued. Building a sheet produces a ready-to-tick Scene:
//
//	framerate: 60
//	sync: true
//	groups:
//	  dancers:
//	    - name: lead
//	      position: [0, 0]
//	      color: "#ffffff"
//	      script:
//	        - move: [100, 200]
//	          duration: 2
//	        - rotate: 90
//	          duration: 1
//	        - pause: 1.5
//
// Colors may be hex strings or [r, g, b] triples on the 0-255 scale.
package cuesheet

import (
	"fmt"
	"io"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v2"

	"github.com/teranos/choreo"
)

// Sheet is the top-level cue sheet document.
type Sheet struct {
	// Framerate is the scene's target frames per second. Zero keeps the
	// scene default of 60.
	Framerate float64 `yaml:"framerate"`

	// Sync equalizes all timelines after every script is queued.
	Sync bool `yaml:"sync"`

	// Groups maps group names to the actors cast into them.
	Groups map[string][]ActorSpec `yaml:"groups"`
}

// ActorSpec describes one actor's starting pose and script.
type ActorSpec struct {
	Name     string     `yaml:"name"`
	Position []float64  `yaml:"position"`
	Color    *ColorSpec `yaml:"color"`
	Angle    float64    `yaml:"angle"`
	Script   []Step     `yaml:"script"`
}

// Step is one timed action in a script. Exactly one of Move, Rotate, Color
// or Pause must be set. Pause carries its own duration; the others take
// theirs from Duration.
type Step struct {
	Move     []float64  `yaml:"move,omitempty"`
	Rotate   *float64   `yaml:"rotate,omitempty"`
	Color    *ColorSpec `yaml:"color,omitempty"`
	Pause    *float64   `yaml:"pause,omitempty"`
	Duration float64    `yaml:"duration,omitempty"`
}

// ColorSpec decodes either a hex string ("#ff8000") or an [r, g, b] triple
// on the 0-255 scale.
type ColorSpec struct {
	RGB choreo.RGB
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *ColorSpec) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var hex string
	if err := unmarshal(&hex); err == nil {
		col, err := colorful.Hex(hex)
		if err != nil {
			return fmt.Errorf("cuesheet: bad color %q: %w", hex, err)
		}
		c.RGB = choreo.RGB{R: col.R * 255, G: col.G * 255, B: col.B * 255}
		return nil
	}

	var triple []float64
	if err := unmarshal(&triple); err != nil {
		return fmt.Errorf("cuesheet: color must be a hex string or [r, g, b] triple")
	}
	if len(triple) != 3 {
		return fmt.Errorf("cuesheet: color triple needs 3 components, got %d", len(triple))
	}
	c.RGB = choreo.RGB{R: triple[0], G: triple[1], B: triple[2]}
	return nil
}

// Production is a built cue sheet: the scene plus every named actor.
type Production struct {
	Scene  *choreo.Scene
	Actors map[string]*choreo.Actor
}

// Parse decodes a cue sheet document.
func Parse(r io.Reader) (*Sheet, error) {
	var sheet Sheet
	if err := yaml.NewDecoder(r).Decode(&sheet); err != nil {
		return nil, fmt.Errorf("cuesheet: decode: %w", err)
	}
	return &sheet, nil
}

// LoadFile parses and builds a cue sheet from disk.
func LoadFile(path string) (*Production, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cuesheet: %w", err)
	}
	defer f.Close()

	sheet, err := Parse(f)
	if err != nil {
		return nil, err
	}
	return sheet.Build()
}

// Build casts the sheet into a live scene: creates every actor with its
// starting pose, queues its script, registers it into its group, and
// applies the framerate and sync settings. Script errors (a malformed step,
// a negative duration) abort the build.
func (s *Sheet) Build() (*Production, error) {
	scene := choreo.NewScene()
	if s.Framerate > 0 {
		scene.SetFramerate(s.Framerate)
	}

	actors := make(map[string]*choreo.Actor)
	for group, specs := range s.Groups {
		for i, spec := range specs {
			actor, err := spec.cast()
			if err != nil {
				return nil, fmt.Errorf("cuesheet: group %q actor %d: %w", group, i, err)
			}
			scene.Add(group, actor)
			if spec.Name != "" {
				actors[spec.Name] = actor
			}
		}
	}

	if s.Sync {
		scene.Sync()
	}
	return &Production{Scene: scene, Actors: actors}, nil
}

func (spec ActorSpec) cast() (*choreo.Actor, error) {
	actor := choreo.NewActor()

	if spec.Position != nil {
		if len(spec.Position) != 2 {
			return nil, fmt.Errorf("position needs 2 components, got %d", len(spec.Position))
		}
		actor.Position = choreo.Vec2{X: spec.Position[0], Y: spec.Position[1]}
	}
	if spec.Color != nil {
		actor.Color = spec.Color.RGB
	}
	actor.Angle = spec.Angle

	for j, step := range spec.Script {
		action, dur, err := step.action()
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", j, err)
		}
		if err := actor.Act(action, dur); err != nil {
			return nil, fmt.Errorf("step %d: %w", j, err)
		}
	}
	return actor, nil
}

func (st Step) action() (choreo.Action, float64, error) {
	var (
		action choreo.Action
		dur    = st.Duration
		kinds  int
	)

	if st.Move != nil {
		kinds++
		if len(st.Move) != 2 {
			return nil, 0, fmt.Errorf("move needs 2 components, got %d", len(st.Move))
		}
		action = choreo.Move{Dest: choreo.Vec2{X: st.Move[0], Y: st.Move[1]}}
	}
	if st.Rotate != nil {
		kinds++
		action = choreo.Rotate{Dest: *st.Rotate}
	}
	if st.Color != nil {
		kinds++
		action = choreo.Recolor{Dest: st.Color.RGB}
	}
	if st.Pause != nil {
		kinds++
		action = choreo.Stop{}
		dur = *st.Pause
	}

	if kinds != 1 {
		return nil, 0, fmt.Errorf("need exactly one of move, rotate, color, pause; got %d", kinds)
	}
	return action, dur, nil
}
