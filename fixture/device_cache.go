package fixture

import (
	"github.com/robmorgan/lumen/project"
)

// DeviceCache memoizes the devices of one output for the duration of a single
// render call. Build a new one for every frame.
type DeviceCache struct {
	project  *project.Project
	outputID uint64
	tables   *TableCache

	devices  map[string]Device
	fixtures map[string][]project.QualifiedFixtureID
}

// NewDeviceCache creates a cache resolving targets against one output of p.
func NewDeviceCache(p *project.Project, outputID uint64, tables *TableCache) *DeviceCache {
	return &DeviceCache{
		project:  p,
		outputID: outputID,
		tables:   tables,
		devices:  map[string]Device{},
		fixtures: map[string][]project.QualifiedFixtureID{},
	}
}

// Get returns the device writing to target on this output. It reports false
// when the target is unknown or has nothing on this output.
func (c *DeviceCache) Get(target project.OutputTarget) (Device, bool) {
	key := target.Key()
	if d, found := c.devices[key]; found {
		return d, d != nil
	}

	var d Device
	switch target.Kind {
	case project.TargetFixtures:
		if id, ok := activeID(c.project, target.FixtureIDs); ok {
			d = c.fixtureDevice(id)
		}
	case project.TargetGroup:
		d = c.groupDevice(target.GroupID)
	}
	c.devices[key] = d
	return d, d != nil
}

// Fixtures returns the fixtures of the active patch a target covers, across
// every output. Phase offsets are spread over this list.
func (c *DeviceCache) Fixtures(target project.OutputTarget) []project.QualifiedFixtureID {
	key := target.Key()
	if ids, found := c.fixtures[key]; found {
		return ids
	}

	var ids []project.QualifiedFixtureID
	switch target.Kind {
	case project.TargetFixtures:
		if id, ok := activeID(c.project, target.FixtureIDs); ok {
			ids = []project.QualifiedFixtureID{id}
		}
	case project.TargetGroup:
		ids = ResolveGroup(c.project, target.GroupID)
	}
	c.fixtures[key] = ids
	return ids
}

func (c *DeviceCache) fixtureDevice(id project.QualifiedFixtureID) Device {
	if id.Output != c.outputID {
		return nil
	}
	o, found := c.project.Output(id.Output)
	if !found {
		return nil
	}

	switch cfg := o.Config.(type) {
	case project.DmxOutput:
		f, found := cfg.Fixtures[id.Fixture]
		if !found {
			return nil
		}
		table, err := c.tables.Get(c.project.Definitions, f)
		if err != nil {
			return nil
		}
		return dmxDevice{table: table}
	case project.WledOutput:
		segment := uint32(id.Fixture)
		if _, found := cfg.Segments[segment]; !found {
			return nil
		}
		return wledDevice{segment: segment}
	}
	return nil
}

func (c *DeviceCache) groupDevice(groupID uint64) Device {
	if _, found := c.project.Groups[groupID]; !found && groupID != project.GroupAllID {
		return nil
	}

	var members []Device
	for _, id := range c.Fixtures(project.GroupTarget(groupID)) {
		if d, ok := c.Get(project.FixtureTarget(id)); ok {
			members = append(members, d)
		}
	}
	if len(members) == 0 {
		return nil
	}
	return groupDevice{members: members}
}
