package fixture

import (
	"github.com/robmorgan/lumen/project"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ResolveGroup flattens a group into the fixtures of the active patch it
// contains. Nested groups are expanded depth first in declaration order,
// duplicates keep their first position and cycles are broken.
func ResolveGroup(p *project.Project, groupID uint64) []project.QualifiedFixtureID {
	if groupID == project.GroupAllID {
		return AllFixtures(p)
	}
	group, found := p.Groups[groupID]
	if !found {
		return nil
	}

	var (
		out     []project.QualifiedFixtureID
		seen    = map[project.QualifiedFixtureID]bool{}
		visited = map[uint64]bool{groupID: true}
		stack   []project.OutputTarget
	)
	push := func(targets []project.OutputTarget) {
		for i := len(targets) - 1; i >= 0; i-- {
			stack = append(stack, targets[i])
		}
	}
	add := func(id project.QualifiedFixtureID) {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}

	push(group.Targets)
	for len(stack) > 0 {
		target := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch target.Kind {
		case project.TargetFixtures:
			if id, ok := activeID(p, target.FixtureIDs); ok {
				add(id)
			}
		case project.TargetGroup:
			if visited[target.GroupID] {
				continue
			}
			visited[target.GroupID] = true
			if target.GroupID == project.GroupAllID {
				for _, id := range AllFixtures(p) {
					add(id)
				}
				continue
			}
			if nested, found := p.Groups[target.GroupID]; found {
				push(nested.Targets)
			}
		}
	}
	return out
}

// AllFixtures lists every fixture of the active patch ordered by output id,
// then by channel offset for DMX outputs and segment id for WLED outputs.
func AllFixtures(p *project.Project) []project.QualifiedFixtureID {
	var out []project.QualifiedFixtureID
	for _, outputID := range p.OutputIDs() {
		o, _ := p.Output(outputID)
		qualify := func(id uint64) project.QualifiedFixtureID {
			return project.QualifiedFixtureID{Patch: p.ActivePatch, Output: outputID, Fixture: id}
		}

		switch cfg := o.Config.(type) {
		case project.DmxOutput:
			ids := maps.Keys(cfg.Fixtures)
			slices.SortFunc(ids, func(a, b uint64) bool {
				fa, fb := cfg.Fixtures[a], cfg.Fixtures[b]
				if fa.ChannelOffset != fb.ChannelOffset {
					return fa.ChannelOffset < fb.ChannelOffset
				}
				return a < b
			})
			for _, id := range ids {
				out = append(out, qualify(id))
			}
		case project.WledOutput:
			ids := maps.Keys(cfg.Segments)
			slices.Sort(ids)
			for _, id := range ids {
				out = append(out, qualify(uint64(id)))
			}
		}
	}
	return out
}

// activeID picks the id mapped on the active patch.
func activeID(p *project.Project, ids []project.QualifiedFixtureID) (project.QualifiedFixtureID, bool) {
	for _, id := range ids {
		if id.Patch == p.ActivePatch {
			return id, true
		}
	}
	return project.QualifiedFixtureID{}, false
}
