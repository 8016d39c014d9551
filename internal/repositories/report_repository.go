package repositories

import (
	"time"

	"maintdesk_backend/internal/models"

	"gorm.io/gorm"
)

// StatsCriteria bounds an aggregation. Empty fields are skipped; CustomerID
// scoping for non-staff callers is applied by the service.
type StatsCriteria struct {
	CustomerID string
	From       *time.Time
	To         *time.Time
}

type NameCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

type PriorityCount struct {
	Name      string `json:"name"`
	ColorCode string `json:"color_code"`
	Count     int64  `json:"count"`
}

type FinancialSummary struct {
	TotalJobs      int64   `json:"total_jobs"`
	CompletedJobs  int64   `json:"completed_jobs"`
	TotalRevenue   float64 `json:"total_revenue"`
	AvgJobValue    float64 `json:"avg_job_value"`
	TotalEstimated float64 `json:"total_estimated"`
	TotalActual    float64 `json:"total_actual"`
}

type CategoryAmount struct {
	Name  string  `json:"name"`
	Total float64 `json:"total"`
	Jobs  int64   `json:"jobs"`
}

type CustomerSpend struct {
	OrganizationName string  `json:"organization_name"`
	TotalJobs        int64   `json:"total_jobs"`
	TotalSpent       float64 `json:"total_spent"`
}

// CompletionRow carries the timestamps needed for duration math, which is
// done in Go so the SQL stays dialect-portable.
type CompletionRow struct {
	CreatedAt     time.Time
	ScheduledDate *time.Time
	CompletedDate *time.Time
}

type FirstQuoteRow struct {
	JobCreatedAt time.Time
	FirstQuoteAt time.Time
}

type TradeJobRow struct {
	TradeID       string
	CompanyName   string
	Rating        float64
	ScheduledDate *time.Time
	CompletedDate *time.Time
}

type ReportRepository interface {
	WithTx(tx *gorm.DB) ReportRepository

	// Dashboard counters
	CountJobsByCustomer(customerID string) (int64, error)
	CountJobsByCustomerStatus(customerID, statusID string) (int64, error)
	CountActiveJobsByCustomer(customerID string) (int64, error)
	SumFinalCostByCustomer(customerID string) (float64, error)

	CountAllJobs() (int64, error)
	CountActiveJobs() (int64, error)
	CountJobsByStatus(statusID string) (int64, error)
	CountCustomers() (int64, error)
	CountActiveTrades() (int64, error)
	SumFinalCost() (float64, error)

	CountJobsByTrade(tradeID string) (int64, error)
	CountActiveJobsByTrade(tradeID string) (int64, error)
	CountJobsByTradeStatus(tradeID, statusID string) (int64, error)
	CountQuotesByTradeStatus(tradeID string, status models.QuoteStatus) (int64, error)
	SumFinalCostByTradeStatus(tradeID, statusID string) (float64, error)

	// Job statistics
	JobCountsByStatus(criteria StatsCriteria) ([]NameCount, error)
	JobCountsByPriority(criteria StatsCriteria) ([]PriorityCount, error)
	JobCountsByCategory(criteria StatsCriteria) ([]NameCount, error)

	// Financial report
	Summary(criteria StatsCriteria, completedStatusID string) (*FinancialSummary, error)
	AmountByCategory(criteria StatsCriteria, completedStatusID string) ([]CategoryAmount, error)
	TopCustomersBySpend(criteria StatsCriteria, completedStatusID string) ([]CustomerSpend, error)

	// Performance metrics
	CountAllJobsIn(criteria StatsCriteria) (int64, error)
	CompletionRows(criteria StatsCriteria, completedStatusID string) ([]CompletionRow, error)
	FirstQuoteRows(criteria StatsCriteria) ([]FirstQuoteRow, error)
	TradeJobRows(criteria StatsCriteria, completedStatusID string) ([]TradeJobRow, error)
}

type ReportRepositoryImpl struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &ReportRepositoryImpl{db: db}
}

func (r *ReportRepositoryImpl) WithTx(tx *gorm.DB) ReportRepository {
	return &ReportRepositoryImpl{db: tx}
}

// --- Dashboard counters ---

func (r *ReportRepositoryImpl) CountJobsByCustomer(customerID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Job{}).Where("customer_id = ?", customerID).Count(&count).Error
	return count, err
}

func (r *ReportRepositoryImpl) CountJobsByCustomerStatus(customerID, statusID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Job{}).
		Where("customer_id = ? AND status_id = ?", customerID, statusID).
		Count(&count).Error
	return count, err
}

func (r *ReportRepositoryImpl) CountActiveJobsByCustomer(customerID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Job{}).
		Joins("JOIN job_statuses ON job_statuses.id = jobs.status_id").
		Where("jobs.customer_id = ? AND job_statuses.is_final = ?", customerID, false).
		Count(&count).Error
	return count, err
}

func (r *ReportRepositoryImpl) SumFinalCostByCustomer(customerID string) (float64, error) {
	var total float64
	err := r.db.Model(&models.Job{}).
		Where("customer_id = ? AND final_cost IS NOT NULL", customerID).
		Select("COALESCE(SUM(final_cost), 0)").
		Scan(&total).Error
	return total, err
}

func (r *ReportRepositoryImpl) CountAllJobs() (int64, error) {
	var count int64
	err := r.db.Model(&models.Job{}).Count(&count).Error
	return count, err
}

func (r *ReportRepositoryImpl) CountActiveJobs() (int64, error) {
	var count int64
	err := r.db.Model(&models.Job{}).
		Joins("JOIN job_statuses ON job_statuses.id = jobs.status_id").
		Where("job_statuses.is_final = ?", false).
		Count(&count).Error
	return count, err
}

func (r *ReportRepositoryImpl) CountJobsByStatus(statusID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Job{}).Where("status_id = ?", statusID).Count(&count).Error
	return count, err
}

func (r *ReportRepositoryImpl) CountCustomers() (int64, error) {
	var count int64
	err := r.db.Model(&models.Customer{}).Count(&count).Error
	return count, err
}

func (r *ReportRepositoryImpl) CountActiveTrades() (int64, error) {
	var count int64
	err := r.db.Model(&models.TradeSpecialist{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}

func (r *ReportRepositoryImpl) SumFinalCost() (float64, error) {
	var total float64
	err := r.db.Model(&models.Job{}).
		Where("final_cost IS NOT NULL").
		Select("COALESCE(SUM(final_cost), 0)").
		Scan(&total).Error
	return total, err
}

func (r *ReportRepositoryImpl) CountJobsByTrade(tradeID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Job{}).Where("assigned_trade_id = ?", tradeID).Count(&count).Error
	return count, err
}

func (r *ReportRepositoryImpl) CountActiveJobsByTrade(tradeID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Job{}).
		Joins("JOIN job_statuses ON job_statuses.id = jobs.status_id").
		Where("jobs.assigned_trade_id = ? AND job_statuses.is_final = ?", tradeID, false).
		Count(&count).Error
	return count, err
}

func (r *ReportRepositoryImpl) CountJobsByTradeStatus(tradeID, statusID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Job{}).
		Where("assigned_trade_id = ? AND status_id = ?", tradeID, statusID).
		Count(&count).Error
	return count, err
}

func (r *ReportRepositoryImpl) CountQuotesByTradeStatus(tradeID string, status models.QuoteStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Quote{}).
		Where("trade_id = ? AND status = ?", tradeID, status).
		Count(&count).Error
	return count, err
}

func (r *ReportRepositoryImpl) SumFinalCostByTradeStatus(tradeID, statusID string) (float64, error) {
	var total float64
	err := r.db.Model(&models.Job{}).
		Where("assigned_trade_id = ? AND status_id = ? AND final_cost IS NOT NULL", tradeID, statusID).
		Select("COALESCE(SUM(final_cost), 0)").
		Scan(&total).Error
	return total, err
}

// --- Job statistics ---

func applyStatsCriteria(q *gorm.DB, criteria StatsCriteria) *gorm.DB {
	if criteria.CustomerID != "" {
		q = q.Where("jobs.customer_id = ?", criteria.CustomerID)
	}
	if criteria.From != nil && criteria.To != nil {
		q = q.Where("jobs.created_at BETWEEN ? AND ?", *criteria.From, *criteria.To)
	}
	return q
}

func (r *ReportRepositoryImpl) JobCountsByStatus(criteria StatsCriteria) ([]NameCount, error) {
	q := r.db.Table("jobs").
		Select("job_statuses.name, COUNT(*) AS count").
		Joins("JOIN job_statuses ON job_statuses.id = jobs.status_id")
	q = applyStatsCriteria(q, criteria)

	var rows []NameCount
	err := q.Group("job_statuses.name").Order("count DESC").Scan(&rows).Error
	return rows, err
}

func (r *ReportRepositoryImpl) JobCountsByPriority(criteria StatsCriteria) ([]PriorityCount, error) {
	q := r.db.Table("jobs").
		Select("priority_levels.name, priority_levels.color_code, priority_levels.sort_order, COUNT(*) AS count").
		Joins("JOIN priority_levels ON priority_levels.id = jobs.priority_id")
	q = applyStatsCriteria(q, criteria)

	var rows []PriorityCount
	err := q.Group("priority_levels.name, priority_levels.color_code, priority_levels.sort_order").
		Order("priority_levels.sort_order ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *ReportRepositoryImpl) JobCountsByCategory(criteria StatsCriteria) ([]NameCount, error) {
	q := r.db.Table("jobs").
		Select("categories.name, COUNT(*) AS count").
		Joins("JOIN categories ON categories.id = jobs.category_id")
	q = applyStatsCriteria(q, criteria)

	var rows []NameCount
	err := q.Group("categories.name").Order("count DESC").Limit(10).Scan(&rows).Error
	return rows, err
}

// --- Financial report ---

func (r *ReportRepositoryImpl) Summary(criteria StatsCriteria, completedStatusID string) (*FinancialSummary, error) {
	q := r.db.Table("jobs").
		Select(`COUNT(*) AS total_jobs,
			COALESCE(SUM(CASE WHEN jobs.status_id = ? THEN 1 ELSE 0 END), 0) AS completed_jobs,
			COALESCE(SUM(CASE WHEN jobs.status_id = ? THEN jobs.final_cost END), 0) AS total_revenue,
			COALESCE(AVG(CASE WHEN jobs.status_id = ? THEN jobs.final_cost END), 0) AS avg_job_value,
			COALESCE(SUM(jobs.estimated_cost), 0) AS total_estimated,
			COALESCE(SUM(jobs.final_cost), 0) AS total_actual`,
			completedStatusID, completedStatusID, completedStatusID)
	q = applyStatsCriteria(q, criteria)

	var summary FinancialSummary
	err := q.Scan(&summary).Error
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func (r *ReportRepositoryImpl) AmountByCategory(criteria StatsCriteria, completedStatusID string) ([]CategoryAmount, error) {
	q := r.db.Table("jobs").
		Select("categories.name, COALESCE(SUM(jobs.final_cost), 0) AS total, COUNT(*) AS jobs").
		Joins("JOIN categories ON categories.id = jobs.category_id").
		Where("jobs.status_id = ? AND jobs.final_cost IS NOT NULL", completedStatusID)
	q = applyStatsCriteria(q, criteria)

	var rows []CategoryAmount
	err := q.Group("categories.name").Order("total DESC").Scan(&rows).Error
	return rows, err
}

func (r *ReportRepositoryImpl) TopCustomersBySpend(criteria StatsCriteria, completedStatusID string) ([]CustomerSpend, error) {
	q := r.db.Table("jobs").
		Select("customers.organization_name, COUNT(*) AS total_jobs, COALESCE(SUM(jobs.final_cost), 0) AS total_spent").
		Joins("JOIN customers ON customers.id = jobs.customer_id").
		Where("jobs.status_id = ? AND jobs.final_cost IS NOT NULL", completedStatusID)
	q = applyStatsCriteria(q, criteria)

	var rows []CustomerSpend
	err := q.Group("customers.id, customers.organization_name").
		Order("total_spent DESC").
		Limit(10).
		Scan(&rows).Error
	return rows, err
}

// --- Performance metrics ---

func (r *ReportRepositoryImpl) CountAllJobsIn(criteria StatsCriteria) (int64, error) {
	q := r.db.Table("jobs")
	q = applyStatsCriteria(q, criteria)

	var count int64
	err := q.Count(&count).Error
	return count, err
}

func (r *ReportRepositoryImpl) CompletionRows(criteria StatsCriteria, completedStatusID string) ([]CompletionRow, error) {
	q := r.db.Table("jobs").
		Select("jobs.created_at, jobs.scheduled_date, jobs.completed_date").
		Where("jobs.status_id = ? AND jobs.completed_date IS NOT NULL", completedStatusID)
	q = applyStatsCriteria(q, criteria)

	var rows []CompletionRow
	err := q.Scan(&rows).Error
	return rows, err
}

func (r *ReportRepositoryImpl) FirstQuoteRows(criteria StatsCriteria) ([]FirstQuoteRow, error) {
	q := r.db.Table("jobs").
		Select("jobs.created_at AS job_created_at, MIN(quotes.created_at) AS first_quote_at").
		Joins("JOIN quotes ON quotes.job_id = jobs.id")
	q = applyStatsCriteria(q, criteria)

	var rows []FirstQuoteRow
	err := q.Group("jobs.id, jobs.created_at").Scan(&rows).Error
	return rows, err
}

func (r *ReportRepositoryImpl) TradeJobRows(criteria StatsCriteria, completedStatusID string) ([]TradeJobRow, error) {
	q := r.db.Table("jobs").
		Select(`trade_specialists.id AS trade_id,
			trade_specialists.company_name,
			trade_specialists.rating,
			jobs.scheduled_date, jobs.completed_date`).
		Joins("JOIN trade_specialists ON trade_specialists.id = jobs.assigned_trade_id").
		Where("jobs.status_id = ?", completedStatusID)
	if criteria.From != nil && criteria.To != nil {
		q = q.Where("jobs.completed_date BETWEEN ? AND ?", *criteria.From, *criteria.To)
	}

	var rows []TradeJobRow
	err := q.Scan(&rows).Error
	return rows, err
}
