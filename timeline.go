package choreo

import (
	"math"

	"github.com/teranos/choreo/miscue"
)

// A Cue is one queued action together with the timing and the start snapshot
// the timeline fixed for it at queue time.
type Cue struct {
	// Action computes state within this cue.
	Action Action

	// Duration in seconds. The virtual terminal cue reports +Inf.
	Duration float64

	// Start is the snapshot captured when the cue was queued: the previous
	// cue's final snapshot, or the actor's live state for the first cue.
	// It is fixed here and never recomputed, which makes every cue's
	// output a pure function of elapsed time.
	Start Snapshot

	// At is the absolute offset where this cue begins, the sum of all
	// prior durations.
	At float64
}

// Kind reports the queued action's kind.
func (c Cue) Kind() string { return c.Action.Kind() }

// Timeline is an ordered, append-only sequence of cues with derived
// cumulative timing. Cues are contiguous and gapless: the k-th cue begins
// exactly where the (k-1)-th ends.
//
// The zero value is an empty timeline ready for use. Queries are pure:
// StateAt never mutates the timeline, so callers may probe past and future
// times in any order.
type Timeline struct {
	cues    []Cue
	endTime float64
}

// Len reports the number of queued cues.
func (tl *Timeline) Len() int { return len(tl.cues) }

// EndTime reports the timeline's total duration, the sum of all queued cue
// durations.
func (tl *Timeline) EndTime() float64 { return tl.endTime }

// Cues returns a copy of the queued cues in order.
func (tl *Timeline) Cues() []Cue {
	out := make([]Cue, len(tl.cues))
	copy(out, tl.cues)
	return out
}

// Append queues an action for dur seconds. The new cue's start snapshot is
// the timeline's state at its own end time; live supplies that state when
// the timeline is still empty. A negative duration is rejected with
// miscue.InvalidDuration and the timeline is left unmodified.
func (tl *Timeline) Append(action Action, dur float64, live Snapshot) error {
	if dur < 0 {
		return miscue.New(miscue.InvalidDuration, "duration must not be negative",
			miscue.Context{"duration": dur, "kind": action.Kind()})
	}

	tl.cues = append(tl.cues, Cue{
		Action:   action,
		Duration: dur,
		Start:    tl.finalSnapshot(live),
		At:       tl.endTime,
	})
	tl.endTime += dur
	return nil
}

// Resolve locates the cue whose half-open interval [At, At+Duration)
// contains t and returns it with the elapsed time local to that cue. At a
// boundary shared by two cues the one that begins there wins, never the one
// ending there; a zero-duration cue therefore never resolves, its effect
// reaching the future only through the start snapshot it handed its
// successor.
//
// For t at or past EndTime, Resolve yields a virtual terminal Stop cue whose
// start is the timeline's final snapshot and whose domain is unbounded. The
// virtual cue is never materialized into the stored sequence. Negative t is
// rejected with miscue.OutOfRangeQuery.
func (tl *Timeline) Resolve(t float64, live Snapshot) (Cue, float64, error) {
	if t < 0 {
		return Cue{}, 0, miscue.New(miscue.OutOfRangeQuery, "query time must not be negative",
			miscue.Context{"t": t})
	}

	for _, c := range tl.cues {
		if t < c.At+c.Duration {
			return c, t - c.At, nil
		}
	}

	terminal := Cue{
		Action:   Stop{},
		Duration: math.Inf(1),
		Start:    tl.finalSnapshot(live),
		At:       tl.endTime,
	}
	return terminal, t - tl.endTime, nil
}

// StateAt resolves t and evaluates the resolved cue, clamping the local
// elapsed time to the cue's duration. If a custom action's result dropped a
// custom key its start snapshot established, StateAt reports
// miscue.UnknownKey.
func (tl *Timeline) StateAt(t float64, live Snapshot) (Snapshot, error) {
	c, local, err := tl.Resolve(t, live)
	if err != nil {
		return Snapshot{}, err
	}

	if local > c.Duration {
		local = c.Duration
	}

	out := c.Action.StateAfter(c.Start, local, c.Duration)
	if key, ok := out.retainsCustomKeys(c.Start); !ok {
		return Snapshot{}, miscue.New(miscue.UnknownKey, "custom action dropped an established key",
			miscue.Context{"key": key, "kind": c.Kind()})
	}
	return out, nil
}

// finalSnapshot is the timeline's state at its own end time: the last cue
// evaluated at its full duration, or live for an empty timeline.
func (tl *Timeline) finalSnapshot(live Snapshot) Snapshot {
	if len(tl.cues) == 0 {
		return live.Clone()
	}
	last := tl.cues[len(tl.cues)-1]
	return last.Action.StateAfter(last.Start, last.Duration, last.Duration)
}
