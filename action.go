package choreo

// An Action is a timed unit of behavior: given the snapshot it started from
// and how far into its run it is, it computes the actor's state at that
// moment. Implementations must be pure - same inputs, same snapshot - which
// is what lets timelines answer queries for any time without replaying
// intermediate frames.
//
// The built-in kinds are Move, Rotate, Recolor and Stop. Any other type
// implementing Action is queued and resolved exactly the same way; custom
// results must retain every custom key present in start (see
// miscue.UnknownKey).
type Action interface {
	// Kind names the behavior, e.g. "move". Used for inspection and
	// debugging; the engine never switches on it.
	Kind() string

	// StateAfter computes the snapshot elapsed seconds into the action.
	// start is the snapshot captured when the action was queued, dur the
	// duration it was queued with. The timeline clamps elapsed to
	// [0, dur] before calling.
	StateAfter(start Snapshot, elapsed, dur float64) Snapshot
}

// fraction maps elapsed time onto the unit interval. A zero-duration action
// completes instantly, so its fraction is defined as 1.
func fraction(elapsed, dur float64) float64 {
	if dur == 0 {
		return 1
	}
	return elapsed / dur
}

// lerp interpolates linearly from a toward b. The arithmetic is exact IEEE
// float math with no rounding or clamping; each call works from the fixed
// endpoints rather than accumulating deltas, so repeated queries cannot
// drift.
func lerp(a, b, f float64) float64 {
	return a + (b-a)*f
}

// Move linearly interpolates an actor's position toward Dest over the
// action's duration. All other keys pass through from the start snapshot.
type Move struct {
	Dest Vec2
}

func (Move) Kind() string { return "move" }

func (m Move) StateAfter(start Snapshot, elapsed, dur float64) Snapshot {
	f := fraction(elapsed, dur)
	out := start.Clone()
	out.Position.X = lerp(start.Position.X, m.Dest.X, f)
	out.Position.Y = lerp(start.Position.Y, m.Dest.Y, f)
	return out
}

// Rotate linearly interpolates an actor's angle toward Dest.
type Rotate struct {
	Dest float64
}

func (Rotate) Kind() string { return "rotate" }

func (r Rotate) StateAfter(start Snapshot, elapsed, dur float64) Snapshot {
	out := start.Clone()
	out.Angle = lerp(start.Angle, r.Dest, fraction(elapsed, dur))
	return out
}

// Recolor linearly interpolates an actor's color toward Dest, componentwise.
type Recolor struct {
	Dest RGB
}

func (Recolor) Kind() string { return "color" }

func (r Recolor) StateAfter(start Snapshot, elapsed, dur float64) Snapshot {
	f := fraction(elapsed, dur)
	out := start.Clone()
	out.Color.R = lerp(start.Color.R, r.Dest.R, f)
	out.Color.G = lerp(start.Color.G, r.Dest.G, f)
	out.Color.B = lerp(start.Color.B, r.Dest.B, f)
	return out
}

// Stop holds the start snapshot unchanged for the action's duration. It is
// the explicit pause, the padding Sync queues on lagging timelines, and the
// virtual terminal action every timeline ends on.
type Stop struct{}

func (Stop) Kind() string { return "stop" }

func (Stop) StateAfter(start Snapshot, elapsed, dur float64) Snapshot {
	return start.Clone()
}
