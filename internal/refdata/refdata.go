// Package refdata resolves the static status and priority tables once at
// startup into in-memory maps, so services never re-query reference rows
// by name per request.
package refdata

import (
	"fmt"

	"maintdesk_backend/internal/models"

	"gorm.io/gorm"
)

type Resolver struct {
	statuses   []models.JobStatus
	priorities []models.PriorityLevel

	statusesByID     map[string]models.JobStatus
	statusesByName   map[string]models.JobStatus
	prioritiesByID   map[string]models.PriorityLevel
	prioritiesByName map[string]models.PriorityLevel
}

// Load reads both reference tables. All status/priority names used by the
// workflow must exist; a missing row is a startup error, not a runtime one.
func Load(db *gorm.DB) (*Resolver, error) {
	var statuses []models.JobStatus
	if err := db.Order("sort_order ASC").Find(&statuses).Error; err != nil {
		return nil, fmt.Errorf("load job statuses: %w", err)
	}

	var priorities []models.PriorityLevel
	if err := db.Order("sort_order ASC").Find(&priorities).Error; err != nil {
		return nil, fmt.Errorf("load priority levels: %w", err)
	}

	r := NewResolver(statuses, priorities)
	if err := r.verifyRequired(); err != nil {
		return nil, err
	}
	return r, nil
}

// verifyRequired checks every status and priority name the workflow resolves
// by constant.
func (r *Resolver) verifyRequired() error {
	for _, name := range []string{
		models.StatusNew, models.StatusAwaitingQuotes,
		models.StatusQuotesReceived, models.StatusPendingApproval,
		models.StatusApproved, models.StatusCompleted,
	} {
		if _, ok := r.statusesByName[name]; !ok {
			return fmt.Errorf("job status %q missing from reference data", name)
		}
	}
	if _, ok := r.prioritiesByName[models.PriorityMedium]; !ok {
		return fmt.Errorf("priority level %q missing from reference data", models.PriorityMedium)
	}
	return nil
}

func NewResolver(statuses []models.JobStatus, priorities []models.PriorityLevel) *Resolver {
	r := &Resolver{
		statuses:         statuses,
		priorities:       priorities,
		statusesByID:     make(map[string]models.JobStatus, len(statuses)),
		statusesByName:   make(map[string]models.JobStatus, len(statuses)),
		prioritiesByID:   make(map[string]models.PriorityLevel, len(priorities)),
		prioritiesByName: make(map[string]models.PriorityLevel, len(priorities)),
	}
	for _, s := range statuses {
		r.statusesByID[s.ID] = s
		r.statusesByName[s.Name] = s
	}
	for _, p := range priorities {
		r.prioritiesByID[p.ID] = p
		r.prioritiesByName[p.Name] = p
	}
	return r
}

// Status returns the status row by name. Panics on unknown names: these are
// compile-time constants checked at Load.
func (r *Resolver) Status(name string) models.JobStatus {
	s, ok := r.statusesByName[name]
	if !ok {
		panic(fmt.Sprintf("refdata: unknown job status %q", name))
	}
	return s
}

// StatusByID resolves a status row by primary key.
func (r *Resolver) StatusByID(id string) (models.JobStatus, bool) {
	s, ok := r.statusesByID[id]
	return s, ok
}

// Priority returns the priority row by name.
func (r *Resolver) Priority(name string) models.PriorityLevel {
	p, ok := r.prioritiesByName[name]
	if !ok {
		panic(fmt.Sprintf("refdata: unknown priority level %q", name))
	}
	return p
}

// PriorityByID resolves a priority row by primary key.
func (r *Resolver) PriorityByID(id string) (models.PriorityLevel, bool) {
	p, ok := r.prioritiesByID[id]
	return p, ok
}

// Statuses returns every status row in sort order.
func (r *Resolver) Statuses() []models.JobStatus {
	return r.statuses
}

// Priorities returns every priority row in sort order.
func (r *Resolver) Priorities() []models.PriorityLevel {
	return r.priorities
}
