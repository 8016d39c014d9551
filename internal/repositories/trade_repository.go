package repositories

import (
	"errors"

	"maintdesk_backend/internal/models"

	"gorm.io/gorm"
)

var ErrTradeNotFound = errors.New("trade specialist not found")

type TradeRepository interface {
	WithTx(tx *gorm.DB) TradeRepository

	Create(trade *models.TradeSpecialist) error
	Update(trade *models.TradeSpecialist) error
	FindByID(id string) (*models.TradeSpecialist, error)
	FindAllActive(categoryID string) ([]models.TradeSpecialist, error)
	ReplaceCategories(tradeID string, categoryIDs []string) error
	CountCompletedJobs(tradeID, completedStatusID string) (int64, error)
}

type TradeRepositoryImpl struct {
	db *gorm.DB
}

func NewTradeRepository(db *gorm.DB) TradeRepository {
	return &TradeRepositoryImpl{db: db}
}

func (r *TradeRepositoryImpl) WithTx(tx *gorm.DB) TradeRepository {
	return &TradeRepositoryImpl{db: tx}
}

func (r *TradeRepositoryImpl) Create(trade *models.TradeSpecialist) error {
	return r.db.Create(trade).Error
}

func (r *TradeRepositoryImpl) Update(trade *models.TradeSpecialist) error {
	return r.db.Omit("Categories").Save(trade).Error
}

func (r *TradeRepositoryImpl) FindByID(id string) (*models.TradeSpecialist, error) {
	var trade models.TradeSpecialist
	err := r.db.Preload("Categories").First(&trade, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTradeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &trade, nil
}

// FindAllActive lists active trades, optionally narrowed to one category,
// best-rated first.
func (r *TradeRepositoryImpl) FindAllActive(categoryID string) ([]models.TradeSpecialist, error) {
	q := r.db.Preload("Categories").Where("is_active = ?", true)

	if categoryID != "" {
		q = q.Where("EXISTS (SELECT 1 FROM trade_categories tc WHERE tc.trade_specialist_id = trade_specialists.id AND tc.category_id = ?)", categoryID)
	}

	var trades []models.TradeSpecialist
	err := q.Order("rating DESC, company_name ASC").Find(&trades).Error
	return trades, err
}

// ReplaceCategories swaps the trade's category links for the given set.
func (r *TradeRepositoryImpl) ReplaceCategories(tradeID string, categoryIDs []string) error {
	if err := r.db.Where("trade_specialist_id = ?", tradeID).Delete(&models.TradeCategory{}).Error; err != nil {
		return err
	}
	for _, categoryID := range categoryIDs {
		link := models.TradeCategory{TradeSpecialistID: tradeID, CategoryID: categoryID}
		if err := r.db.Create(&link).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *TradeRepositoryImpl) CountCompletedJobs(tradeID, completedStatusID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Job{}).
		Where("assigned_trade_id = ? AND status_id = ?", tradeID, completedStatusID).
		Count(&count).Error
	return count, err
}
