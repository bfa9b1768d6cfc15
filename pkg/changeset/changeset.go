package changeset

import "maps"

// Change holds the persisted and proposed values of a single attribute.
type Change struct {
	Old any
	New any
}

// Set is an immutable view over the attributes a caller is about to persist,
// keyed by attribute name. It is computed at decision time from the pending
// write, independent of any persistence framework's dirty tracking.
type Set struct {
	changes map[string]Change
}

// Build creates a Set from the given attribute changes. The input map is
// copied; later mutation of it does not affect the Set.
func Build(changes map[string]Change) Set {
	if len(changes) == 0 {
		return Set{}
	}
	return Set{changes: maps.Clone(changes)}
}

// Of creates a Set holding a single attribute change.
func Of(field string, oldValue, newValue any) Set {
	return Set{changes: map[string]Change{field: {Old: oldValue, New: newValue}}}
}

// Changed reports whether the given attribute is part of the pending write
// with a value different from the persisted one.
func (s Set) Changed(field string) bool {
	c, ok := s.changes[field]
	return ok && c.Old != c.New
}

// Get returns the recorded change for the given attribute.
func (s Set) Get(field string) (Change, bool) {
	c, ok := s.changes[field]
	return c, ok
}

// Fields returns the names of all attributes in the pending write.
func (s Set) Fields() []string {
	if len(s.changes) == 0 {
		return nil
	}
	fields := make([]string, 0, len(s.changes))
	for f := range s.changes {
		fields = append(fields, f)
	}
	return fields
}

// IsEmpty reports whether the Set carries no attribute changes.
func (s Set) IsEmpty() bool {
	return len(s.changes) == 0
}
