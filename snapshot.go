package choreo

// Vec2 is a 2D position in scene coordinates.
type Vec2 struct {
	X, Y float64
}

// RGB is a color triple on the conventional 0-255 scale. Components stay
// float64 so interpolated frames keep full precision between keyframes.
type RGB struct {
	R, G, B float64
}

// White is the default actor color.
var White = RGB{255, 255, 255}

// Snapshot records an actor's interpolatable state at one instant.
//
// The fixed keys every action understands live as struct fields; custom
// actions may establish additional keys in Custom. Snapshots are treated as
// immutable values: actions and timelines always work on clones, so a
// snapshot handed out once never changes underneath its holder.
type Snapshot struct {
	Position Vec2
	Color    RGB
	Angle    float64

	// Custom holds caller-defined keys established by custom actions.
	// Nil until a custom action sets one.
	Custom map[string]interface{}
}

// Clone returns a deep copy; mutating the copy's Custom map never affects
// the original.
func (s Snapshot) Clone() Snapshot {
	out := s
	if s.Custom != nil {
		out.Custom = make(map[string]interface{}, len(s.Custom))
		for k, v := range s.Custom {
			out.Custom[k] = v
		}
	}
	return out
}

// WithCustom returns a clone with one custom key set. Intended for custom
// actions building their result from the start snapshot.
func (s Snapshot) WithCustom(key string, value interface{}) Snapshot {
	out := s.Clone()
	if out.Custom == nil {
		out.Custom = make(map[string]interface{}, 1)
	}
	out.Custom[key] = value
	return out
}

// retainsCustomKeys reports whether s kept every custom key that start
// established, and names the first dropped key otherwise.
func (s Snapshot) retainsCustomKeys(start Snapshot) (string, bool) {
	for k := range start.Custom {
		if _, ok := s.Custom[k]; !ok {
			return k, false
		}
	}
	return "", true
}
