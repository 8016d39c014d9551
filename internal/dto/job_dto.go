package dto

import "encoding/json"

// Optional distinguishes an absent JSON field from an explicit null.
// Absent leaves Set false; null sets Set with Valid false; a value sets both.
type Optional[T any] struct {
	Set   bool
	Valid bool
	Value T
}

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		return nil
	}
	if err := json.Unmarshal(b, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// Ptr returns the value as a nullable column pointer.
func (o Optional[T]) Ptr() *T {
	if !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}

type CreateJobRequest struct {
	CustomerID      string `json:"customer_id"` // staff only, ignored for customers
	CategoryID      string `json:"category_id" validate:"required"`
	PriorityID      string `json:"priority_id"`
	Title           string `json:"title" validate:"required"`
	Description     string `json:"description" validate:"required"`
	LocationAddress string `json:"location_address"`
	PreferredDate   string `json:"preferred_date"`
	PreferredTime   string `json:"preferred_time"`
	CustomerNotes   string `json:"customer_notes"`
}

// UpdateJobRequest is a patch: an unset field leaves the column unchanged.
// Assignment and cost fields accept an explicit null to clear the column.
type UpdateJobRequest struct {
	StatusID        *string           `json:"status_id"`
	PriorityID      *string           `json:"priority_id"`
	AssignedStaffID Optional[string]  `json:"assigned_staff_id"`
	AssignedTradeID Optional[string]  `json:"assigned_trade_id"`
	ScheduledDate   *string           `json:"scheduled_date"`
	InternalNotes   *string           `json:"internal_notes"`
	EstimatedCost   Optional[float64] `json:"estimated_cost"`
	FinalCost       Optional[float64] `json:"final_cost"`
}

// Empty reports whether no recognized field was provided.
func (r *UpdateJobRequest) Empty() bool {
	return r.StatusID == nil && r.PriorityID == nil &&
		!r.AssignedStaffID.Set && !r.AssignedTradeID.Set &&
		r.ScheduledDate == nil && r.InternalNotes == nil &&
		!r.EstimatedCost.Set && !r.FinalCost.Set
}

type CreateJobResponse struct {
	Message   string `json:"message"`
	JobID     string `json:"job_id"`
	JobNumber string `json:"job_number"`
}
