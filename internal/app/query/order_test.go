package query_test

import (
	"testing"

	"github.com/palikatech/gunaso/internal/app/query"
	"github.com/stretchr/testify/assert"
)

func TestResolveOrdering_DefaultsToSubmittedAtDesc(t *testing.T) {
	ord := query.ResolveOrdering("", "")
	assert.Equal(t, "c.submitted_at DESC", ord.OrderBy())
}

func TestResolveOrdering_ResolvedStatusSortsByResolutionTime(t *testing.T) {
	ord := query.ResolveOrdering("resolved", "")
	assert.Equal(t, "c.resolved_at DESC", ord.OrderBy())
}

func TestResolveOrdering_OtherStatusesKeepSubmittedAt(t *testing.T) {
	for _, status := range []string{"pending", "in_progress", "escalated", "rejected"} {
		ord := query.ResolveOrdering(status, "")
		assert.Equal(t, "c.submitted_at DESC", ord.OrderBy(), "status %s", status)
	}
}

func TestResolveOrdering_AscIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, "c.submitted_at ASC", query.ResolveOrdering("", "asc").OrderBy())
	assert.Equal(t, "c.submitted_at ASC", query.ResolveOrdering("", "ASC").OrderBy())
	assert.Equal(t, "c.resolved_at ASC", query.ResolveOrdering("resolved", "Asc").OrderBy())
}

func TestResolveOrdering_GarbageDirectionFallsBackToDesc(t *testing.T) {
	// Direction never reaches the SQL text raw, so anything unknown is
	// simply descending.
	for _, order := range []string{"desc", "descending", "ASC; DROP TABLE complaints", "1"} {
		ord := query.ResolveOrdering("", order)
		assert.Equal(t, "DESC", ord.Direction, "order %q", order)
	}
}

func TestResolveOrdering_UnknownStatusKeepsDefaultColumn(t *testing.T) {
	ord := query.ResolveOrdering("nonsense", "asc")
	assert.Equal(t, "c.submitted_at ASC", ord.OrderBy())
}
