// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package guid

import (
	"iter"
	"slices"
	"strings"
)

// Set is an ordered set of GUIDs: unique members kept in [Compare]
// order. The zero value is an empty set ready to use.
//
// Insert and Remove mutate the set and are not safe for concurrent
// use; the set algebra functions never modify their operands.
type Set struct {
	members []GUID
}

// NewSet returns a set holding the given GUIDs. Duplicates collapse.
func NewSet(members ...GUID) Set {
	sorted := slices.Clone(members)
	slices.SortFunc(sorted, Compare)
	return Set{members: slices.CompactFunc(sorted, GUID.Equal)}
}

// Len returns the number of members.
func (s Set) Len() int { return len(s.members) }

// Contains reports whether g is a member. O(log n).
func (s Set) Contains(g GUID) bool {
	_, found := slices.BinarySearchFunc(s.members, g, Compare)
	return found
}

// Insert adds g. Reports whether the set changed.
func (s *Set) Insert(g GUID) bool {
	index, found := slices.BinarySearchFunc(s.members, g, Compare)
	if found {
		return false
	}
	s.members = slices.Insert(s.members, index, g)
	return true
}

// Remove deletes g. Reports whether the set changed.
func (s *Set) Remove(g GUID) bool {
	index, found := slices.BinarySearchFunc(s.members, g, Compare)
	if !found {
		return false
	}
	s.members = slices.Delete(s.members, index, index+1)
	return true
}

// All iterates the members in ascending order.
func (s Set) All() iter.Seq[GUID] {
	return slices.Values(s.members)
}

// Slice returns the members in ascending order. The result is a copy.
func (s Set) Slice() []GUID { return slices.Clone(s.members) }

// Equal reports whether s and other have the same members.
func (s Set) Equal(other Set) bool {
	return slices.Equal(s.members, other.members)
}

// String renders the members in text form, comma separated, in braces.
func (s Set) String() string {
	var builder strings.Builder
	builder.WriteByte('{')
	for i, member := range s.members {
		if i > 0 {
			builder.WriteString(", ")
		}
		builder.WriteString(member.String())
	}
	builder.WriteByte('}')
	return builder.String()
}

// Intersect returns the members present in both a and b. It walks both
// sorted member lists once: O(len(a)+len(b)).
func Intersect(a, b Set) Set {
	var result []GUID
	i, j := 0, 0
	for i < len(a.members) && j < len(b.members) {
		switch c := Compare(a.members[i], b.members[j]); {
		case c < 0:
			i++
		case c > 0:
			j++
		default:
			result = append(result, a.members[i])
			i++
			j++
		}
	}
	return Set{members: result}
}

// Union returns the members present in a or b.
func Union(a, b Set) Set {
	result := make([]GUID, 0, len(a.members)+len(b.members))
	i, j := 0, 0
	for i < len(a.members) && j < len(b.members) {
		switch c := Compare(a.members[i], b.members[j]); {
		case c < 0:
			result = append(result, a.members[i])
			i++
		case c > 0:
			result = append(result, b.members[j])
			j++
		default:
			result = append(result, a.members[i])
			i++
			j++
		}
	}
	result = append(result, a.members[i:]...)
	result = append(result, b.members[j:]...)
	return Set{members: result}
}

// Difference returns the members of a that are not in b.
func Difference(a, b Set) Set {
	var result []GUID
	i, j := 0, 0
	for i < len(a.members) {
		if j >= len(b.members) {
			result = append(result, a.members[i:]...)
			break
		}
		switch c := Compare(a.members[i], b.members[j]); {
		case c < 0:
			result = append(result, a.members[i])
			i++
		case c > 0:
			j++
		default:
			i++
			j++
		}
	}
	return Set{members: result}
}

// Pair keys an association between a local entity and a remote one,
// e.g. a local writer matched with a remote reader.
type Pair struct {
	Local  GUID
	Remote GUID
}

// Compare orders pairs by Local, then by Remote.
func (p Pair) Compare(other Pair) int {
	if c := Compare(p.Local, other.Local); c != 0 {
		return c
	}
	return Compare(p.Remote, other.Remote)
}

// Less reports whether p sorts before other.
func (p Pair) Less(other Pair) bool { return p.Compare(other) < 0 }

// ComparePairs is [Pair.Compare] in function form for slices.SortFunc.
func ComparePairs(a, b Pair) int { return a.Compare(b) }
