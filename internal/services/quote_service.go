package services

import (
	"errors"
	"fmt"
	"math"

	"maintdesk_backend/internal/appErrors"
	"maintdesk_backend/internal/auth"
	"maintdesk_backend/internal/dto"
	"maintdesk_backend/internal/models"
	"maintdesk_backend/internal/refdata"
	"maintdesk_backend/internal/repositories"

	"gorm.io/gorm"
)

const competitorRejectionReason = "Another quote was approved"

type QuoteService struct {
	db               *gorm.DB
	quoteRepo        repositories.QuoteRepository
	jobRepo          repositories.JobRepository
	tradeRepo        repositories.TradeRepository
	userRepo         repositories.UserRepository
	notificationRepo repositories.NotificationRepository
	refdata          *refdata.Resolver
	notifier         *Notifier
}

func NewQuoteService(
	db *gorm.DB,
	quoteRepo repositories.QuoteRepository,
	jobRepo repositories.JobRepository,
	tradeRepo repositories.TradeRepository,
	userRepo repositories.UserRepository,
	notificationRepo repositories.NotificationRepository,
	resolver *refdata.Resolver,
	notifier *Notifier,
) *QuoteService {
	return &QuoteService{
		db:               db,
		quoteRepo:        quoteRepo,
		jobRepo:          jobRepo,
		tradeRepo:        tradeRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		refdata:          resolver,
		notifier:         notifier,
	}
}

// Create submits a quote for a job. Trades quote only jobs assigned to
// them; staff may quote on behalf of any trade. Submission moves the job
// to Quotes Received and notifies every active staff account.
func (s *QuoteService) Create(identity auth.Identity, req *dto.CreateQuoteRequest) (*models.Quote, error) {
	var tradeID string
	switch {
	case identity.IsTrade():
		if identity.TradeID == nil {
			return nil, appErrors.ErrForbidden
		}
		tradeID = *identity.TradeID
	case identity.IsStaff():
		if req.TradeID == "" {
			return nil, appErrors.NewBadRequestError("trade_id required for staff")
		}
		tradeID = req.TradeID
	default:
		return nil, appErrors.NewForbiddenError("Only trade specialists or staff can create quotes")
	}

	job, err := s.jobRepo.FindByID(req.JobID)
	if errors.Is(err, repositories.ErrJobNotFound) {
		return nil, appErrors.ErrJobNotFound
	}
	if err != nil {
		return nil, err
	}
	if identity.IsTrade() && (job.AssignedTradeID == nil || *job.AssignedTradeID != tradeID) {
		return nil, appErrors.ErrNotAssignedToJob
	}

	startDate, err := parseDate(req.EstimatedStartDate)
	if err != nil {
		return nil, err
	}

	quote := &models.Quote{
		QuoteNumber:        newReferenceNumber("QTE"),
		JobID:              req.JobID,
		TradeID:            tradeID,
		Amount:             req.Amount,
		Description:        req.Description,
		EstimatedDuration:  req.EstimatedDuration,
		EstimatedStartDate: startDate,
		Status:             models.QuoteStatusPending,
	}
	for i, item := range req.Items {
		quote.Items = append(quote.Items, models.QuoteItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.TotalPrice,
			SortOrder:   i,
		})
	}

	staff, err := s.userRepo.FindActiveStaff()
	if err != nil {
		return nil, err
	}
	notifications := make([]*models.Notification, 0, len(staff))
	for _, u := range staff {
		notifications = append(notifications, &models.Notification{
			UserID:  u.ID,
			JobID:   &job.ID,
			Type:    models.NotificationQuoteReceived,
			Title:   "New Quote Received",
			Message: fmt.Sprintf("A new quote has been submitted for job %s.", job.JobNumber),
		})
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.quoteRepo.WithTx(tx).Create(quote); err != nil {
			return err
		}
		// The quote ID exists only after the insert.
		data := notificationData(map[string]interface{}{
			"quote_id":     quote.ID,
			"quote_number": quote.QuoteNumber,
		})
		for _, n := range notifications {
			n.Data = data
		}
		if err := s.jobRepo.WithTx(tx).UpdateFields(job.ID, map[string]interface{}{
			"status_id": s.refdata.Status(models.StatusQuotesReceived).ID,
		}); err != nil {
			return err
		}
		history := &models.JobHistory{
			JobID:      job.ID,
			ChangedBy:  identity.UserID,
			ChangeType: models.ChangeTypeQuoteSubmitted,
			NewValue:   quote.QuoteNumber,
			Notes:      fmt.Sprintf("Quote %s submitted for $%.2f", quote.QuoteNumber, quote.Amount),
		}
		if err := s.jobRepo.WithTx(tx).CreateHistory(history); err != nil {
			return err
		}
		if len(notifications) == 0 {
			return nil
		}
		return s.notificationRepo.WithTx(tx).CreateBulk(notifications)
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Dispatch(notifications...)
	return quote, nil
}

// ListByJob returns a job's quotes cheapest first. Customers see only
// pending and approved quotes.
func (s *QuoteService) ListByJob(identity auth.Identity, jobID string) ([]models.Quote, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if errors.Is(err, repositories.ErrJobNotFound) {
		return nil, appErrors.ErrJobNotFound
	}
	if err != nil {
		return nil, err
	}
	if !auth.CanViewJob(identity, job) {
		return nil, appErrors.ErrForbidden
	}

	quotes, err := s.quoteRepo.FindByJob(jobID)
	if err != nil {
		return nil, err
	}
	if !identity.IsCustomer() {
		return quotes, nil
	}

	visible := make([]models.Quote, 0, len(quotes))
	for _, q := range quotes {
		if q.Status == models.QuoteStatusPending || q.Status == models.QuoteStatusApproved {
			visible = append(visible, q)
		}
	}
	return visible, nil
}

// Comparison computes the staff-facing price summary over a job's
// non-withdrawn quotes.
func (s *QuoteService) Comparison(identity auth.Identity, jobID string) ([]models.Quote, *dto.QuoteComparison, error) {
	if !identity.IsStaff() {
		return nil, nil, appErrors.NewForbiddenError("Staff access required")
	}
	if _, err := s.jobRepo.FindByID(jobID); errors.Is(err, repositories.ErrJobNotFound) {
		return nil, nil, appErrors.ErrJobNotFound
	} else if err != nil {
		return nil, nil, err
	}

	quotes, err := s.quoteRepo.FindActiveByJob(jobID)
	if err != nil {
		return nil, nil, err
	}
	if len(quotes) == 0 {
		return []models.Quote{}, nil, nil
	}

	return quotes, CompareQuotes(quotes), nil
}

// CompareQuotes expects quotes ordered by amount ascending. The recommended
// quote is the cheapest whose trade is rated at least 4.0, else the
// cheapest overall.
func CompareQuotes(quotes []models.Quote) *dto.QuoteComparison {
	if len(quotes) == 0 {
		return nil
	}

	lowest := quotes[0].Amount
	highest := quotes[0].Amount
	sum := 0.0
	for _, q := range quotes {
		if q.Amount < lowest {
			lowest = q.Amount
		}
		if q.Amount > highest {
			highest = q.Amount
		}
		sum += q.Amount
	}
	average := math.Round(sum/float64(len(quotes))*100) / 100

	recommended := quotes[0]
	for _, q := range quotes {
		if q.Trade != nil && q.Trade.Rating >= 4.0 {
			recommended = q
			break
		}
	}

	return &dto.QuoteComparison{
		TotalQuotes:        len(quotes),
		LowestAmount:       lowest,
		HighestAmount:      highest,
		AverageAmount:      average,
		PriceRange:         highest - lowest,
		RecommendedQuoteID: recommended.ID,
		Savings:            highest - lowest,
	}
}

// Resolve approves or rejects a quote. Approval is a conditional update on
// the pending status, so two concurrent approvals cannot both win; the
// winning approval force-rejects every pending competitor and re-approving
// the already-approved quote repeats only that sweep.
func (s *QuoteService) Resolve(identity auth.Identity, id string, req *dto.ResolveQuoteRequest) error {
	quote, err := s.quoteRepo.FindByID(id)
	if errors.Is(err, repositories.ErrQuoteNotFound) {
		return appErrors.ErrQuoteNotFound
	}
	if err != nil {
		return err
	}

	job, err := s.jobRepo.FindByID(quote.JobID)
	if err != nil {
		return err
	}
	if !auth.CanResolveQuote(identity, job) {
		if identity.IsTrade() {
			return appErrors.NewForbiddenError("Trade specialists cannot approve or reject quotes")
		}
		return appErrors.ErrForbidden
	}

	target := models.QuoteStatus(req.Status)
	var notification *models.Notification

	err = s.db.Transaction(func(tx *gorm.DB) error {
		n, err := s.resolveInTx(
			s.quoteRepo.WithTx(tx),
			s.jobRepo.WithTx(tx),
			s.notificationRepo.WithTx(tx),
			quote, job, target, identity.UserID, req.RejectionReason,
		)
		notification = n
		return err
	})
	if err != nil {
		return err
	}

	if notification != nil {
		s.notifier.Dispatch(notification)
	}
	return nil
}

// resolveInTx runs the decision against one transaction's repositories and
// returns the approval notification, if any, for post-commit delivery.
func (s *QuoteService) resolveInTx(
	quotes repositories.QuoteRepository,
	jobs repositories.JobRepository,
	notifications repositories.NotificationRepository,
	quote *models.Quote,
	job *models.Job,
	target models.QuoteStatus,
	actorID string,
	rejectionReason *string,
) (*models.Notification, error) {
	rows, err := quotes.Resolve(quote.ID, models.QuoteStatusPending, target, actorID, rejectionReason)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		// Re-approving the approved quote is a no-op that still
		// sweeps pending competitors; any other stale state is a
		// conflict.
		if !(target == models.QuoteStatusApproved && quote.Status == models.QuoteStatusApproved) {
			return nil, appErrors.ErrQuoteNotPending
		}
	}

	var notification *models.Notification
	if target == models.QuoteStatusApproved {
		if err := jobs.UpdateFields(quote.JobID, map[string]interface{}{
			"status_id":      s.refdata.Status(models.StatusApproved).ID,
			"estimated_cost": quote.Amount,
		}); err != nil {
			return nil, err
		}
		if err := quotes.RejectOtherPending(quote.JobID, quote.ID, competitorRejectionReason); err != nil {
			return nil, err
		}

		trade, err := s.tradeRepo.FindByID(quote.TradeID)
		if err != nil {
			return nil, err
		}
		notification = &models.Notification{
			UserID:  trade.UserID,
			JobID:   &quote.JobID,
			Type:    models.NotificationQuoteApproved,
			Title:   "Quote Approved",
			Message: fmt.Sprintf("Your quote %s for job %s has been approved!", quote.QuoteNumber, job.JobNumber),
			Data: notificationData(map[string]interface{}{
				"quote_id":     quote.ID,
				"quote_number": quote.QuoteNumber,
			}),
		}
		if err := notifications.Create(notification); err != nil {
			return nil, err
		}
	}

	changeType := models.ChangeTypeQuoteApproved
	if target == models.QuoteStatusRejected {
		changeType = models.ChangeTypeQuoteRejected
	}
	if err := jobs.CreateHistory(&models.JobHistory{
		JobID:      quote.JobID,
		ChangedBy:  actorID,
		ChangeType: changeType,
		NewValue:   quote.QuoteNumber,
		Notes:      fmt.Sprintf("Quote %s", target),
	}); err != nil {
		return nil, err
	}
	return notification, nil
}

// Withdraw retracts a trade's own quote. Approved quotes cannot be
// withdrawn, and withdrawing twice is an error.
func (s *QuoteService) Withdraw(identity auth.Identity, id string) error {
	quote, err := s.quoteRepo.FindByID(id)
	if errors.Is(err, repositories.ErrQuoteNotFound) {
		return appErrors.ErrQuoteNotFound
	}
	if err != nil {
		return err
	}
	if !auth.CanWithdrawQuote(identity, quote) {
		return appErrors.NewForbiddenError("Only trade specialists can withdraw quotes")
	}
	if quote.Status == models.QuoteStatusApproved {
		return appErrors.ErrQuoteAlreadyApproved
	}
	if quote.Status == models.QuoteStatusWithdrawn {
		return appErrors.ErrQuoteWithdrawn
	}

	staff, err := s.userRepo.FindActiveStaff()
	if err != nil {
		return err
	}
	notifications := make([]*models.Notification, 0, len(staff))
	for _, u := range staff {
		notifications = append(notifications, &models.Notification{
			UserID:  u.ID,
			JobID:   &quote.JobID,
			Type:    models.NotificationQuoteWithdrawn,
			Title:   "Quote Withdrawn",
			Message: fmt.Sprintf("Quote %s has been withdrawn.", quote.QuoteNumber),
			Data: notificationData(map[string]interface{}{
				"quote_id":     quote.ID,
				"quote_number": quote.QuoteNumber,
			}),
		})
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		rows, err := s.quoteRepo.WithTx(tx).Withdraw(id)
		if err != nil {
			return err
		}
		if rows == 0 {
			return appErrors.ErrQuoteWithdrawn
		}
		if len(notifications) == 0 {
			return nil
		}
		return s.notificationRepo.WithTx(tx).CreateBulk(notifications)
	})
	if err != nil {
		return err
	}

	s.notifier.Dispatch(notifications...)
	return nil
}
