package repositories

import (
	"errors"
	"time"

	"maintdesk_backend/internal/models"

	"gorm.io/gorm"
)

var ErrQuoteNotFound = errors.New("quote not found")

type QuoteRepository interface {
	WithTx(tx *gorm.DB) QuoteRepository

	Create(quote *models.Quote) error
	FindByID(id string) (*models.Quote, error)
	FindByJob(jobID string) ([]models.Quote, error)
	FindActiveByJob(jobID string) ([]models.Quote, error)

	// Resolve sets the quote's terminal state only if its status still
	// matches from; returns the number of rows changed so the caller can
	// detect a lost race.
	Resolve(id string, from, to models.QuoteStatus, approvedBy string, reason *string) (int64, error)

	// RejectOtherPending force-rejects every still-pending competitor of
	// the approved quote.
	RejectOtherPending(jobID, approvedQuoteID, reason string) error

	// Withdraw succeeds from any state except approved and withdrawn.
	Withdraw(id string) (int64, error)
}

type QuoteRepositoryImpl struct {
	db *gorm.DB
}

func NewQuoteRepository(db *gorm.DB) QuoteRepository {
	return &QuoteRepositoryImpl{db: db}
}

func (r *QuoteRepositoryImpl) WithTx(tx *gorm.DB) QuoteRepository {
	return &QuoteRepositoryImpl{db: tx}
}

func (r *QuoteRepositoryImpl) Create(quote *models.Quote) error {
	return r.db.Create(quote).Error
}

func (r *QuoteRepositoryImpl) FindByID(id string) (*models.Quote, error) {
	var quote models.Quote
	err := r.db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("quote_items.sort_order ASC")
	}).Preload("Trade").First(&quote, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrQuoteNotFound
	}
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

// FindByJob returns every quote for the job, cheapest first, with nested
// line items and the owning trade.
func (r *QuoteRepositoryImpl) FindByJob(jobID string) ([]models.Quote, error) {
	var quotes []models.Quote
	err := r.db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("quote_items.sort_order ASC")
	}).Preload("Trade").
		Where("job_id = ?", jobID).
		Order("amount ASC").
		Find(&quotes).Error
	return quotes, err
}

// FindActiveByJob is FindByJob minus withdrawn quotes (comparison input).
func (r *QuoteRepositoryImpl) FindActiveByJob(jobID string) ([]models.Quote, error) {
	var quotes []models.Quote
	err := r.db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("quote_items.sort_order ASC")
	}).Preload("Trade").
		Where("job_id = ? AND status <> ?", jobID, models.QuoteStatusWithdrawn).
		Order("amount ASC").
		Find(&quotes).Error
	return quotes, err
}

func (r *QuoteRepositoryImpl) Resolve(id string, from, to models.QuoteStatus, approvedBy string, reason *string) (int64, error) {
	now := time.Now()
	res := r.db.Model(&models.Quote{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]interface{}{
			"status":           to,
			"approved_by":      approvedBy,
			"approved_at":      now,
			"rejection_reason": reason,
		})
	return res.RowsAffected, res.Error
}

func (r *QuoteRepositoryImpl) RejectOtherPending(jobID, approvedQuoteID, reason string) error {
	return r.db.Model(&models.Quote{}).
		Where("job_id = ? AND id <> ? AND status = ?", jobID, approvedQuoteID, models.QuoteStatusPending).
		Updates(map[string]interface{}{
			"status":           models.QuoteStatusRejected,
			"rejection_reason": reason,
		}).Error
}

func (r *QuoteRepositoryImpl) Withdraw(id string) (int64, error) {
	res := r.db.Model(&models.Quote{}).
		Where("id = ? AND status NOT IN ?", id, []models.QuoteStatus{models.QuoteStatusApproved, models.QuoteStatusWithdrawn}).
		Update("status", models.QuoteStatusWithdrawn)
	return res.RowsAffected, res.Error
}
