package choreo

// A Group is a shared mutable collection of actors. Every holder of the same
// *Group sees additions made through any other holder; registering a group
// into a Scene shares it by reference, never by copy. Ownership of the
// actors themselves stays with whoever created them.
type Group struct {
	actors []*Actor
}

// NewGroup creates a group containing the given actors.
func NewGroup(actors ...*Actor) *Group {
	g := &Group{}
	g.Add(actors...)
	return g
}

// Add appends one or more actors to the group.
func (g *Group) Add(actors ...*Actor) {
	g.actors = append(g.actors, actors...)
}

// Len reports the number of actors in the group.
func (g *Group) Len() int { return len(g.actors) }

// Actors returns a copy of the membership in insertion order. The copy keeps
// iteration stable while the backing collection is grown through an alias.
func (g *Group) Actors() []*Actor {
	out := make([]*Actor, len(g.actors))
	copy(out, g.actors)
	return out
}
