// Package choreo is a declarative animation/timeline engine for visual
// entities, called actors.
//
// Callers queue time-bounded actions - move, rotate, recolor, pause, or
// custom behaviors - on an actor's timeline, and the engine answers "what is
// this actor's state at absolute time T" deterministically, without
// replaying intermediate frames. A Scene coordinates many actors against one
// global clock and can re-synchronize their timelines so independently
// queued actors finish together.
//
// Basic usage:
//
//	dancer := choreo.NewActor()
//	dancer.Act(choreo.Move{Dest: choreo.Vec2{X: 100, Y: 200}}, 2)
//	dancer.Act(choreo.Rotate{Dest: 90}, 1)
//
//	scene := choreo.NewScene()
//	scene.Add(choreo.DefaultGroup, dancer)
//
//	for running {
//		scene.Update()          // advances the global clock one tick
//		draw(dancer.Position, dancer.Color, dancer.Angle)
//	}
//
// To make independently queued actors finish together:
//
//	scene.Sync()                // pads shorter timelines with pauses
//
// Everything is single-threaded and synchronous: operations are plain
// function calls that run to completion, and all derived state is a pure
// function of the calls made so far. Callers adapting choreo to multiple
// goroutines must serialize access to a Scene and its groups.
package choreo

import (
	"fmt"
	"time"
)

// DefaultGroup is the group name actors land in when the caller does not
// pick one. It always exists on a Scene.
const DefaultGroup = "default"

// A Scene owns the global clock and a mapping of named actor groups. Each
// Update tick advances the clock and pushes the new absolute time into every
// managed actor; Sync equalizes the total duration of every managed
// timeline.
//
// Scene time is monotonically non-decreasing, starts at zero on
// construction, and advances only inside Update.
type Scene struct {
	clock  Clock
	time   float64
	groups map[string]*Group
}

// NewScene creates a scene at time zero with an empty default group and a
// wall clock targeting 60 frames per second.
func NewScene() *Scene {
	return &Scene{
		clock:  newWallClock(time.Second / 60),
		groups: map[string]*Group{DefaultGroup: {}},
	}
}

// WithClock swaps the scene's clock source, e.g. for a ScriptedClock in
// tests or offline rendering.
func (s *Scene) WithClock(c Clock) *Scene {
	s.clock = c
	return s
}

// SetFramerate sets the target frame rate; the clock will not report ticks
// shorter than one frame at this rate.
func (s *Scene) SetFramerate(fps float64) {
	s.clock.SetFrameInterval(time.Duration(float64(time.Second) / fps))
}

// Add appends actors to the named group, creating the group if it does not
// exist yet.
func (s *Scene) Add(group string, actors ...*Actor) {
	g, ok := s.groups[group]
	if !ok {
		g = &Group{}
		s.groups[group] = g
	}
	g.Add(actors...)
}

// AddGroup registers an existing group under a name, by reference: actors
// added through the external handle appear in the scene and vice versa.
func (s *Scene) AddGroup(name string, g *Group) {
	s.groups[name] = g
}

// Group returns the named group, or nil if no such group is registered.
func (s *Scene) Group(name string) *Group {
	return s.groups[name]
}

// Time reports the scene's absolute time.
func (s *Scene) Time() float64 { return s.time }

// Actors returns every managed actor exactly once, even when an actor holds
// membership in several groups.
func (s *Scene) Actors() []*Actor {
	seen := make(map[*Actor]bool)
	var out []*Actor
	for _, g := range s.groups {
		for _, a := range g.actors {
			if !seen[a] {
				seen[a] = true
				out = append(out, a)
			}
		}
	}
	return out
}

// Update advances the scene one tick: it takes the elapsed interval from the
// clock (at least one frame at the configured rate), adds it to the scene
// time, and pushes the new absolute time into every managed actor.
func (s *Scene) Update() error {
	s.time += s.clock.Tick()
	for _, a := range s.Actors() {
		if err := a.Update(s.time); err != nil {
			return fmt.Errorf("scene update: %w", err)
		}
	}
	return nil
}

// Sync equalizes all managed timelines: it finds the maximum end time across
// every actor and pads each shorter timeline with a single pause covering
// the deficit, so actions queued on all of them afterwards complete
// together. Actors already at the maximum are untouched, which makes Sync
// idempotent when timelines are already equal and re-invocable after new
// actions are queued.
func (s *Scene) Sync() {
	actors := s.Actors()

	var max float64
	for _, a := range actors {
		if end := a.Timeline().EndTime(); end > max {
			max = end
		}
	}

	for _, a := range actors {
		if deficit := max - a.Timeline().EndTime(); deficit > 0 {
			// A strictly positive duration cannot be rejected.
			_ = a.Act(Stop{}, deficit)
		}
	}
}
