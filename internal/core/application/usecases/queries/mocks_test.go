package queries_test

import (
	"fishmarket/internal/core/domain/model/kernel"
)

// mockAggregateTracker ignores tracking. The query suites only use the
// repositories to seed rows; nothing consumes the tracked aggregates.
type mockAggregateTracker struct{}

func (t *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}
