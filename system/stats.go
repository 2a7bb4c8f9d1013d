package system

import (
	"time"
)

// SystemStats provides execution statistics for a single group member.
type SystemStats struct {
	Name           string
	Kind           Kind
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

func newStatsInternal() *systemStatsInternal {
	return &systemStatsInternal{minDuration: time.Duration(1<<63 - 1)}
}

func (s *systemStatsInternal) record(duration time.Duration) {
	s.executionCount++
	s.lastDuration = duration
	s.totalDuration += duration

	if duration < s.minDuration {
		s.minDuration = duration
	}
	if duration > s.maxDuration {
		s.maxDuration = duration
	}
}

func (s *systemStatsInternal) snapshot(kind Kind) SystemStats {
	stats := SystemStats{
		Name:           kind.Name(),
		Kind:           kind,
		ExecutionCount: s.executionCount,
		MaxDuration:    s.maxDuration,
		LastDuration:   s.lastDuration,
		TotalDuration:  s.totalDuration,
	}
	if s.executionCount > 0 {
		stats.MinDuration = s.minDuration
		stats.AvgDuration = s.totalDuration / time.Duration(s.executionCount)
	}
	return stats
}
