package services

import (
	"testing"

	"maintdesk_backend/internal/appErrors"
	"maintdesk_backend/internal/auth"
	"maintdesk_backend/internal/dto"
	"maintdesk_backend/internal/models"
	"maintdesk_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Stub repositories embed the interface so only the methods a test path
// touches need implementations; anything else panics loudly.

type stubJobRepo struct {
	repositories.JobRepository
	job *models.Job
	err error
}

func (s *stubJobRepo) FindByID(id string) (*models.Job, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.job, nil
}

type stubQuoteRepo struct {
	repositories.QuoteRepository
	quote  *models.Quote
	quotes []models.Quote
	err    error
}

func (s *stubQuoteRepo) FindByID(id string) (*models.Quote, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.quote, nil
}

func (s *stubQuoteRepo) FindByJob(jobID string) ([]models.Quote, error) {
	return s.quotes, s.err
}

func (s *stubQuoteRepo) FindActiveByJob(jobID string) ([]models.Quote, error) {
	return s.quotes, s.err
}

func strPtr(s string) *string { return &s }

func quoteServiceWith(jobRepo repositories.JobRepository, quoteRepo repositories.QuoteRepository) *QuoteService {
	return NewQuoteService(nil, quoteRepo, jobRepo, nil, nil, nil, nil, nil)
}

func staffID() auth.Identity {
	return auth.Identity{UserID: "u-staff", Role: models.UserRoleStaff}
}

func customerID(id string) auth.Identity {
	return auth.Identity{UserID: "u-cust", Role: models.UserRoleCustomer, CustomerID: &id}
}

func tradeID(id string) auth.Identity {
	return auth.Identity{UserID: "u-trade", Role: models.UserRoleTrade, TradeID: &id}
}

func TestQuoteCreateRejectsCustomers(t *testing.T) {
	svc := quoteServiceWith(&stubJobRepo{}, &stubQuoteRepo{})

	_, err := svc.Create(customerID("cust-1"), &dto.CreateQuoteRequest{JobID: "job-1", Amount: 100})

	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.CodeForbidden, appErr.Code)
}

func TestQuoteCreateStaffNeedsTradeID(t *testing.T) {
	svc := quoteServiceWith(&stubJobRepo{}, &stubQuoteRepo{})

	_, err := svc.Create(staffID(), &dto.CreateQuoteRequest{JobID: "job-1", Amount: 100})
	assert.Error(t, err)
}

func TestQuoteCreateUnassignedTrade(t *testing.T) {
	job := &models.Job{CustomerID: "cust-1", AssignedTradeID: strPtr("trade-other")}
	job.ID = "job-1"
	svc := quoteServiceWith(&stubJobRepo{job: job}, &stubQuoteRepo{})

	_, err := svc.Create(tradeID("trade-1"), &dto.CreateQuoteRequest{JobID: "job-1", Amount: 100})
	assert.ErrorIs(t, err, appErrors.ErrNotAssignedToJob)
}

func TestQuoteCreateJobNotFound(t *testing.T) {
	svc := quoteServiceWith(&stubJobRepo{err: repositories.ErrJobNotFound}, &stubQuoteRepo{})

	_, err := svc.Create(tradeID("trade-1"), &dto.CreateQuoteRequest{JobID: "missing", Amount: 100})
	assert.ErrorIs(t, err, appErrors.ErrJobNotFound)
}

func TestListByJobFiltersForCustomers(t *testing.T) {
	job := &models.Job{CustomerID: "cust-1"}
	job.ID = "job-1"

	quotes := []models.Quote{
		{Status: models.QuoteStatusPending},
		{Status: models.QuoteStatusApproved},
		{Status: models.QuoteStatusRejected},
		{Status: models.QuoteStatusWithdrawn},
	}
	svc := quoteServiceWith(&stubJobRepo{job: job}, &stubQuoteRepo{quotes: quotes})

	visible, err := svc.ListByJob(customerID("cust-1"), "job-1")
	require.NoError(t, err)
	require.Len(t, visible, 2)
	assert.Equal(t, models.QuoteStatusPending, visible[0].Status)
	assert.Equal(t, models.QuoteStatusApproved, visible[1].Status)

	// Staff sees everything.
	all, err := svc.ListByJob(staffID(), "job-1")
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestListByJobForbiddenForOtherCustomer(t *testing.T) {
	job := &models.Job{CustomerID: "cust-1"}
	job.ID = "job-1"
	svc := quoteServiceWith(&stubJobRepo{job: job}, &stubQuoteRepo{})

	_, err := svc.ListByJob(customerID("cust-2"), "job-1")
	assert.ErrorIs(t, err, appErrors.ErrForbidden)
}

func TestComparisonStaffOnly(t *testing.T) {
	svc := quoteServiceWith(&stubJobRepo{}, &stubQuoteRepo{})

	_, _, err := svc.Comparison(customerID("cust-1"), "job-1")
	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.CodeForbidden, appErr.Code)
}

func TestComparisonNoQuotes(t *testing.T) {
	job := &models.Job{CustomerID: "cust-1"}
	job.ID = "job-1"
	svc := quoteServiceWith(&stubJobRepo{job: job}, &stubQuoteRepo{quotes: nil})

	quotes, comparison, err := svc.Comparison(staffID(), "job-1")
	require.NoError(t, err)
	assert.Empty(t, quotes)
	assert.Nil(t, comparison)
}

func TestComparisonWithQuotes(t *testing.T) {
	job := &models.Job{CustomerID: "cust-1"}
	job.ID = "job-1"

	q1 := quote("q1", 100, 4.5)
	q2 := quote("q2", 200, 3.0)
	svc := quoteServiceWith(&stubJobRepo{job: job}, &stubQuoteRepo{quotes: []models.Quote{q1, q2}})

	quotes, comparison, err := svc.Comparison(staffID(), "job-1")
	require.NoError(t, err)
	assert.Len(t, quotes, 2)
	require.NotNil(t, comparison)
	assert.Equal(t, "q1", comparison.RecommendedQuoteID)
	assert.Equal(t, 100.0, comparison.PriceRange)
}

func TestWithdrawGuards(t *testing.T) {
	approved := &models.Quote{TradeID: "trade-1", Status: models.QuoteStatusApproved}
	approved.ID = "q-1"
	svc := quoteServiceWith(&stubJobRepo{}, &stubQuoteRepo{quote: approved})

	err := svc.Withdraw(tradeID("trade-1"), "q-1")
	assert.ErrorIs(t, err, appErrors.ErrQuoteAlreadyApproved)

	withdrawn := &models.Quote{TradeID: "trade-1", Status: models.QuoteStatusWithdrawn}
	withdrawn.ID = "q-2"
	svc = quoteServiceWith(&stubJobRepo{}, &stubQuoteRepo{quote: withdrawn})

	err = svc.Withdraw(tradeID("trade-1"), "q-2")
	assert.ErrorIs(t, err, appErrors.ErrQuoteWithdrawn)

	// Another trade's quote cannot be withdrawn at all.
	pending := &models.Quote{TradeID: "trade-1", Status: models.QuoteStatusPending}
	pending.ID = "q-3"
	svc = quoteServiceWith(&stubJobRepo{}, &stubQuoteRepo{quote: pending})

	err = svc.Withdraw(tradeID("trade-2"), "q-3")
	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.CodeForbidden, appErr.Code)
}

func TestResolveForbiddenForTrades(t *testing.T) {
	pending := &models.Quote{JobID: "job-1", TradeID: "trade-1", Status: models.QuoteStatusPending}
	pending.ID = "q-1"
	job := &models.Job{CustomerID: "cust-1", AssignedTradeID: strPtr("trade-1")}
	job.ID = "job-1"

	svc := quoteServiceWith(&stubJobRepo{job: job}, &stubQuoteRepo{quote: pending})

	err := svc.Resolve(tradeID("trade-1"), "q-1", &dto.ResolveQuoteRequest{Status: "approved"})
	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.CodeForbidden, appErr.Code)
	assert.Contains(t, appErr.Message, "Trade specialists")
}

func TestResolveQuoteNotFound(t *testing.T) {
	svc := quoteServiceWith(&stubJobRepo{}, &stubQuoteRepo{err: repositories.ErrQuoteNotFound})

	err := svc.Resolve(staffID(), "missing", &dto.ResolveQuoteRequest{Status: "approved"})
	assert.ErrorIs(t, err, appErrors.ErrQuoteNotFound)
}
