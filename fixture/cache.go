package fixture

import (
	"fmt"
	"strings"
	"sync"

	"github.com/robmorgan/lumen/profile"
	"github.com/robmorgan/lumen/project"
	"golang.org/x/exp/slices"
)

// TableCache keeps channel tables across frames. Fixture definitions are
// immutable once loaded, so a table only depends on the fixture's patch layout.
type TableCache struct {
	mu     sync.Mutex
	tables map[tableKey]*Table
}

type tableKey struct {
	definition uint64
	mode       string
	offset     int
	angles     string
}

// NewTableCache creates an empty cache.
func NewTableCache() *TableCache {
	return &TableCache{tables: map[tableKey]*Table{}}
}

// Get returns the table of a patched fixture, building it on first use.
func (c *TableCache) Get(definitions map[uint64]profile.Profile, f project.PhysicalDmxFixture) (*Table, error) {
	key := tableKey{
		definition: f.DefinitionID,
		mode:       f.Mode,
		offset:     f.ChannelOffset,
		angles:     angleKey(f.AngleOffsets),
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if t, found := c.tables[key]; found {
		return t, nil
	}

	definition, found := definitions[f.DefinitionID]
	if !found {
		return nil, fmt.Errorf("fixture %q references unknown definition %d", f.Name, f.DefinitionID)
	}
	mode, err := definition.GetMode(f.Mode)
	if err != nil {
		return nil, err
	}

	t := NewTable(f, mode)
	c.tables[key] = t
	return t, nil
}

// Len returns the number of cached tables.
func (c *TableCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.tables)
}

func angleKey(offsets map[profile.ChannelType]float64) string {
	if len(offsets) == 0 {
		return ""
	}
	parts := make([]string, 0, len(offsets))
	for typ, v := range offsets {
		parts = append(parts, fmt.Sprintf("%s=%g", typ, v))
	}
	slices.Sort(parts)
	return strings.Join(parts, ",")
}
