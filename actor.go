package choreo

// An Actor is a visual entity with live state and one timeline of queued
// actions. The live Position, Color and Angle fields are what a rendering
// sink reads after each Update; assigning them directly takes effect
// immediately and independently of the timeline, and the next Act captures
// the assigned values as the new baseline when the timeline is still empty.
type Actor struct {
	Position Vec2
	Color    RGB
	Angle    float64

	timeline Timeline
	time     float64
}

// NewActor creates an actor at the origin, colored white, facing angle 0,
// with an empty timeline.
func NewActor() *Actor {
	return &Actor{Color: White}
}

// Act queues an action on the actor's timeline for dur seconds. It does not
// advance time; the action plays out through subsequent Update calls.
func (a *Actor) Act(action Action, dur float64) error {
	return a.timeline.Append(action, dur, a.live())
}

// Update moves the actor's absolute time marker to t and overwrites the live
// state with the timeline's state at t. Because StateAt is pure, Update is
// idempotent and order-independent: Update(5) followed by Update(2) leaves
// the same live state as Update(2) alone.
func (a *Actor) Update(t float64) error {
	s, err := a.StateAt(t)
	if err != nil {
		return err
	}
	a.time = t
	a.Position = s.Position
	a.Color = s.Color
	a.Angle = s.Angle
	return nil
}

// StateAt answers what the actor's state is at absolute time t without
// touching the live state or the time marker.
func (a *Actor) StateAt(t float64) (Snapshot, error) {
	return a.timeline.StateAt(t, a.live())
}

// CueAt reports which cue governs absolute time t. For t at or past the
// timeline's end this is the virtual terminal stop.
func (a *Actor) CueAt(t float64) (Cue, error) {
	c, _, err := a.timeline.Resolve(t, a.live())
	return c, err
}

// Time reports the absolute time of the last Update.
func (a *Actor) Time() float64 { return a.time }

// Timeline exposes the actor's timeline for inspection and synchronization.
func (a *Actor) Timeline() *Timeline { return &a.timeline }

func (a *Actor) live() Snapshot {
	return Snapshot{Position: a.Position, Color: a.Color, Angle: a.Angle}
}
