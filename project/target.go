package project

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// GroupAllID is the reserved group id meaning every fixture of the active patch.
const GroupAllID uint64 = 0

// QualifiedFixtureID locates a fixture inside a patch output.
type QualifiedFixtureID struct {
	Patch   uint64
	Output  uint64
	Fixture uint64
}

func (id QualifiedFixtureID) String() string {
	return fmt.Sprintf("%d/%d/%d", id.Patch, id.Output, id.Fixture)
}

// TargetKind discriminates an OutputTarget.
type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetFixtures
	TargetGroup
)

// OutputTarget is what an effect writes to: one fixture, mapped once per patch,
// or a group.
type OutputTarget struct {
	Kind       TargetKind
	FixtureIDs []QualifiedFixtureID
	GroupID    uint64
}

// FixtureTarget targets a single fixture given its id in one or more patches.
func FixtureTarget(ids ...QualifiedFixtureID) OutputTarget {
	return OutputTarget{Kind: TargetFixtures, FixtureIDs: ids}
}

// GroupTarget targets every member of a group.
func GroupTarget(id uint64) OutputTarget {
	return OutputTarget{Kind: TargetGroup, GroupID: id}
}

// IsSet reports whether the target points anywhere.
func (t OutputTarget) IsSet() bool {
	return t.Kind != TargetNone
}

// Key normalizes the target so equal targets share a cache slot.
func (t OutputTarget) Key() string {
	switch t.Kind {
	case TargetGroup:
		return fmt.Sprintf("g:%d", t.GroupID)
	case TargetFixtures:
		ids := make([]string, 0, len(t.FixtureIDs))
		for _, id := range t.FixtureIDs {
			ids = append(ids, id.String())
		}
		slices.Sort(ids)
		return "f:" + strings.Join(ids, ",")
	default:
		return "none"
	}
}
