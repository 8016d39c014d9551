package refdata

import (
	"testing"

	"maintdesk_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testResolver() *Resolver {
	statuses := []models.JobStatus{
		{Name: models.StatusNew, SortOrder: 1},
		{Name: models.StatusCompleted, SortOrder: 9, IsFinal: true},
		{Name: models.StatusCancelled, SortOrder: 10, IsFinal: true},
	}
	statuses[0].ID = "s-new"
	statuses[1].ID = "s-done"
	statuses[2].ID = "s-cancel"

	priorities := []models.PriorityLevel{
		{Name: models.PriorityCritical, SortOrder: 1},
		{Name: models.PriorityMedium, SortOrder: 3},
	}
	priorities[0].ID = "p-crit"
	priorities[1].ID = "p-med"

	return NewResolver(statuses, priorities)
}

func TestResolverLookups(t *testing.T) {
	r := testResolver()

	assert.Equal(t, "s-new", r.Status(models.StatusNew).ID)
	assert.Equal(t, "p-med", r.Priority(models.PriorityMedium).ID)

	s, ok := r.StatusByID("s-done")
	require.True(t, ok)
	assert.Equal(t, models.StatusCompleted, s.Name)

	_, ok = r.StatusByID("missing")
	assert.False(t, ok)

	p, ok := r.PriorityByID("p-crit")
	require.True(t, ok)
	assert.Equal(t, models.PriorityCritical, p.Name)
}

func TestResolverUnknownNamePanics(t *testing.T) {
	r := testResolver()
	assert.Panics(t, func() { r.Status("No Such Status") })
	assert.Panics(t, func() { r.Priority("No Such Priority") })
}

func workflowResolver() *Resolver {
	statuses := []models.JobStatus{
		{Name: models.StatusNew, SortOrder: 1},
		{Name: models.StatusAwaitingQuotes, SortOrder: 2},
		{Name: models.StatusQuotesReceived, SortOrder: 3},
		{Name: models.StatusPendingApproval, SortOrder: 4},
		{Name: models.StatusApproved, SortOrder: 5},
		{Name: models.StatusCompleted, SortOrder: 9, IsFinal: true},
	}
	priorities := []models.PriorityLevel{
		{Name: models.PriorityMedium, SortOrder: 3},
	}
	return NewResolver(statuses, priorities)
}

func TestVerifyRequiredComplete(t *testing.T) {
	assert.NoError(t, workflowResolver().verifyRequired())
}

func TestVerifyRequiredMissingStatus(t *testing.T) {
	for _, missing := range []string{
		models.StatusNew, models.StatusAwaitingQuotes,
		models.StatusQuotesReceived, models.StatusPendingApproval,
		models.StatusApproved, models.StatusCompleted,
	} {
		full := workflowResolver()
		var kept []models.JobStatus
		for _, s := range full.Statuses() {
			if s.Name != missing {
				kept = append(kept, s)
			}
		}
		r := NewResolver(kept, full.Priorities())

		err := r.verifyRequired()
		require.Error(t, err, missing)
		assert.Contains(t, err.Error(), missing)
	}
}

func TestVerifyRequiredMissingPriority(t *testing.T) {
	full := workflowResolver()
	r := NewResolver(full.Statuses(), nil)

	err := r.verifyRequired()
	require.Error(t, err)
	assert.Contains(t, err.Error(), models.PriorityMedium)
}

func TestResolverSliceAccessors(t *testing.T) {
	r := testResolver()

	assert.Len(t, r.Statuses(), 3)
	assert.Len(t, r.Priorities(), 2)
	assert.Equal(t, models.StatusNew, r.Statuses()[0].Name)
}
