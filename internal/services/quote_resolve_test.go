package services

import (
	"testing"

	"maintdesk_backend/internal/appErrors"
	"maintdesk_backend/internal/models"
	"maintdesk_backend/internal/refdata"
	"maintdesk_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Recording stubs capture the writes the decision issues so the tests can
// assert on the full approval sweep without a database.

type recordingQuoteRepo struct {
	repositories.QuoteRepository
	resolveRows int64

	resolveFrom  models.QuoteStatus
	resolveTo    models.QuoteStatus
	resolveBy    string
	rejectCalls  int
	rejectJobID  string
	rejectKeepID string
	rejectReason string
}

func (s *recordingQuoteRepo) Resolve(id string, from, to models.QuoteStatus, approvedBy string, reason *string) (int64, error) {
	s.resolveFrom = from
	s.resolveTo = to
	s.resolveBy = approvedBy
	return s.resolveRows, nil
}

func (s *recordingQuoteRepo) RejectOtherPending(jobID, approvedQuoteID, reason string) error {
	s.rejectCalls++
	s.rejectJobID = jobID
	s.rejectKeepID = approvedQuoteID
	s.rejectReason = reason
	return nil
}

type recordingJobRepo struct {
	repositories.JobRepository
	updateCalls int
	fields      map[string]interface{}
	histories   []*models.JobHistory
}

func (s *recordingJobRepo) UpdateFields(id string, fields map[string]interface{}) error {
	s.updateCalls++
	s.fields = fields
	return nil
}

func (s *recordingJobRepo) CreateHistory(entry *models.JobHistory) error {
	s.histories = append(s.histories, entry)
	return nil
}

type stubTradeRepo struct {
	repositories.TradeRepository
	trade *models.TradeSpecialist
}

func (s *stubTradeRepo) FindByID(id string) (*models.TradeSpecialist, error) {
	return s.trade, nil
}

type recordingNotificationRepo struct {
	repositories.NotificationRepository
	created []*models.Notification
}

func (s *recordingNotificationRepo) Create(n *models.Notification) error {
	s.created = append(s.created, n)
	return nil
}

func approvedOnlyResolver() *refdata.Resolver {
	status := models.JobStatus{Name: models.StatusApproved}
	status.ID = "s-approved"
	return refdata.NewResolver([]models.JobStatus{status}, nil)
}

func pendingQuote() *models.Quote {
	quote := &models.Quote{
		QuoteNumber: "QTE-20260829-AAAAA",
		JobID:       "job-1",
		TradeID:     "trade-1",
		Amount:      450.50,
		Status:      models.QuoteStatusPending,
	}
	quote.ID = "q-1"
	return quote
}

func resolveFixture(rows int64) (*QuoteService, *recordingQuoteRepo, *recordingJobRepo, *recordingNotificationRepo) {
	qr := &recordingQuoteRepo{resolveRows: rows}
	jr := &recordingJobRepo{}
	nr := &recordingNotificationRepo{}
	tr := &stubTradeRepo{trade: &models.TradeSpecialist{UserID: "u-spark"}}
	svc := NewQuoteService(nil, qr, jr, tr, nil, nr, approvedOnlyResolver(), nil)
	return svc, qr, jr, nr
}

func TestResolveApprovalSweepsCompetitors(t *testing.T) {
	svc, qr, jr, nr := resolveFixture(1)
	quote := pendingQuote()
	job := &models.Job{JobNumber: "JOB-20260829-BBBBB"}

	notification, err := svc.resolveInTx(qr, jr, nr, quote, job, models.QuoteStatusApproved, "u-staff", nil)
	require.NoError(t, err)

	assert.Equal(t, models.QuoteStatusPending, qr.resolveFrom)
	assert.Equal(t, models.QuoteStatusApproved, qr.resolveTo)
	assert.Equal(t, "u-staff", qr.resolveBy)

	require.Equal(t, 1, jr.updateCalls)
	assert.Equal(t, "s-approved", jr.fields["status_id"])
	assert.Equal(t, 450.50, jr.fields["estimated_cost"])

	require.Equal(t, 1, qr.rejectCalls)
	assert.Equal(t, "job-1", qr.rejectJobID)
	assert.Equal(t, "q-1", qr.rejectKeepID)
	assert.Equal(t, "Another quote was approved", qr.rejectReason)

	require.NotNil(t, notification)
	assert.Equal(t, "u-spark", notification.UserID)
	assert.Equal(t, models.NotificationQuoteApproved, notification.Type)
	assert.JSONEq(t, `{"quote_id":"q-1","quote_number":"QTE-20260829-AAAAA"}`, string(notification.Data))
	require.Len(t, nr.created, 1)
	assert.Same(t, notification, nr.created[0])

	require.Len(t, jr.histories, 1)
	assert.Equal(t, models.ChangeTypeQuoteApproved, jr.histories[0].ChangeType)
	assert.Equal(t, quote.QuoteNumber, jr.histories[0].NewValue)
}

func TestResolveReapproveRepeatsSweep(t *testing.T) {
	svc, qr, jr, _ := resolveFixture(0)
	quote := pendingQuote()
	quote.Status = models.QuoteStatusApproved

	_, err := svc.resolveInTx(qr, jr, &recordingNotificationRepo{}, quote, &models.Job{}, models.QuoteStatusApproved, "u-staff", nil)
	require.NoError(t, err)

	assert.Equal(t, 1, jr.updateCalls)
	assert.Equal(t, 1, qr.rejectCalls)
}

func TestResolveStaleQuoteIsConflict(t *testing.T) {
	svc, qr, jr, nr := resolveFixture(0)

	_, err := svc.resolveInTx(qr, jr, nr, pendingQuote(), &models.Job{}, models.QuoteStatusRejected, "u-staff", nil)
	assert.ErrorIs(t, err, appErrors.ErrQuoteNotPending)

	assert.Zero(t, jr.updateCalls)
	assert.Zero(t, qr.rejectCalls)
	assert.Empty(t, jr.histories)
}

func TestResolveRejectLeavesJobAlone(t *testing.T) {
	svc, qr, jr, nr := resolveFixture(1)

	notification, err := svc.resolveInTx(qr, jr, nr, pendingQuote(), &models.Job{}, models.QuoteStatusRejected, "u-staff", strPtr("Too expensive"))
	require.NoError(t, err)
	assert.Nil(t, notification)

	assert.Zero(t, jr.updateCalls)
	assert.Zero(t, qr.rejectCalls)
	assert.Empty(t, nr.created)
	require.Len(t, jr.histories, 1)
	assert.Equal(t, models.ChangeTypeQuoteRejected, jr.histories[0].ChangeType)
}
