package ecs

import (
	"slices"
	"strings"
)

// StoreStats is a snapshot of store occupancy.
type StoreStats struct {
	TotalEntityCount   int
	ComponentTypeCount int
	SingletonCount     int
	ComponentBreakdown []ComponentStats
	SingletonTypes     []string
}

// ComponentStats describes the population of one component type.
type ComponentStats struct {
	Type        string
	EntityCount int
}

// CollectStats returns current store statistics, sorted by type name.
func (s *Store) CollectStats() StoreStats {
	stats := StoreStats{
		TotalEntityCount:   s.live,
		ComponentTypeCount: len(s.pools),
		SingletonCount:     len(s.singletons),
		ComponentBreakdown: make([]ComponentStats, 0, len(s.pools)),
		SingletonTypes:     make([]string, 0, len(s.singletons)),
	}

	for typ, p := range s.pools {
		stats.ComponentBreakdown = append(stats.ComponentBreakdown, ComponentStats{
			Type:        typ.String(),
			EntityCount: p.Len(),
		})
	}
	slices.SortFunc(stats.ComponentBreakdown, func(a, b ComponentStats) int {
		return strings.Compare(a.Type, b.Type)
	})

	for typ := range s.singletons {
		stats.SingletonTypes = append(stats.SingletonTypes, typ.String())
	}
	slices.Sort(stats.SingletonTypes)

	return stats
}
