package repositories

import (
	"errors"
	"time"

	"maintdesk_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrJobNotFound        = errors.New("job not found")
	ErrAttachmentNotFound = errors.New("attachment not found")
)

// JobListCriteria narrows the staff job list. Empty fields are skipped.
// Role scoping (own customer / assigned trade) is applied by the service.
type JobListCriteria struct {
	CustomerID      string `form:"customer_id"`
	StatusID        string `form:"status"`
	PriorityID      string `form:"priority"`
	CategoryID      string `form:"category"`
	AssignedStaffID string `form:"assigned_staff_id"`
	AssignedTradeID string `form:"assigned_trade_id"`
}

// JobListRow is a job joined with its display names for list views.
type JobListRow struct {
	models.Job
	CustomerName      string `json:"customer_name"`
	CategoryName      string `json:"category_name"`
	PriorityName      string `json:"priority_name"`
	PriorityColor     string `json:"priority_color"`
	StatusName        string `json:"status_name"`
	AssignedStaffName string `json:"assigned_staff_name"`
	AssignedTradeName string `json:"assigned_trade_name"`
}

// JobHistoryRow is a history entry joined with the actor's name and role.
type JobHistoryRow struct {
	models.JobHistory
	ChangedByName string `json:"changed_by_name"`
	ChangedByRole string `json:"changed_by_role"`
}

// AttachmentRow is an attachment joined with the uploader's name.
type AttachmentRow struct {
	models.JobAttachment
	UploadedByName string `json:"uploaded_by_name"`
}

// RecentJobRow is the trimmed job line shown on a customer's detail page.
type RecentJobRow struct {
	ID         string    `json:"id"`
	JobNumber  string    `json:"job_number"`
	Title      string    `json:"title"`
	StatusName string    `json:"status_name"`
	CreatedAt  time.Time `json:"created_at"`
}

type JobRepository interface {
	WithTx(tx *gorm.DB) JobRepository

	Create(job *models.Job) error
	FindByID(id string) (*models.Job, error)
	FindRowByID(id string) (*JobListRow, error)
	List(criteria JobListCriteria) ([]JobListRow, error)
	FindRecentByCustomer(customerID string, limit int) ([]RecentJobRow, error)
	UpdateFields(id string, fields map[string]interface{}) error

	CreateHistory(entry *models.JobHistory) error
	FindHistory(jobID string) ([]JobHistoryRow, error)

	CreateAttachment(attachment *models.JobAttachment) error
	FindAttachment(id string) (*models.JobAttachment, error)
	FindAttachments(jobID string) ([]AttachmentRow, error)
	DeleteAttachment(id string) error
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) WithTx(tx *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: tx}
}

func (r *JobRepositoryImpl) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(id string) (*models.Job, error) {
	var job models.Job
	err := r.db.First(&job, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) listQuery() *gorm.DB {
	return r.db.Table("jobs").
		Select(`jobs.*,
			customers.organization_name AS customer_name,
			categories.name AS category_name,
			priority_levels.name AS priority_name,
			priority_levels.color_code AS priority_color,
			job_statuses.name AS status_name,
			CONCAT(staff.first_name, ' ', staff.last_name) AS assigned_staff_name,
			trade_specialists.company_name AS assigned_trade_name`).
		Joins("LEFT JOIN customers ON customers.id = jobs.customer_id").
		Joins("LEFT JOIN categories ON categories.id = jobs.category_id").
		Joins("LEFT JOIN priority_levels ON priority_levels.id = jobs.priority_id").
		Joins("LEFT JOIN job_statuses ON job_statuses.id = jobs.status_id").
		Joins("LEFT JOIN users staff ON staff.id = jobs.assigned_staff_id").
		Joins("LEFT JOIN trade_specialists ON trade_specialists.id = jobs.assigned_trade_id")
}

func (r *JobRepositoryImpl) FindRowByID(id string) (*JobListRow, error) {
	var row JobListRow
	err := r.listQuery().Where("jobs.id = ?", id).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == "" {
		return nil, ErrJobNotFound
	}
	return &row, nil
}

func (r *JobRepositoryImpl) List(criteria JobListCriteria) ([]JobListRow, error) {
	q := r.listQuery()

	if criteria.CustomerID != "" {
		q = q.Where("jobs.customer_id = ?", criteria.CustomerID)
	}
	if criteria.StatusID != "" {
		q = q.Where("jobs.status_id = ?", criteria.StatusID)
	}
	if criteria.PriorityID != "" {
		q = q.Where("jobs.priority_id = ?", criteria.PriorityID)
	}
	if criteria.CategoryID != "" {
		q = q.Where("jobs.category_id = ?", criteria.CategoryID)
	}
	if criteria.AssignedStaffID != "" {
		q = q.Where("jobs.assigned_staff_id = ?", criteria.AssignedStaffID)
	}
	if criteria.AssignedTradeID != "" {
		q = q.Where("jobs.assigned_trade_id = ?", criteria.AssignedTradeID)
	}

	var rows []JobListRow
	err := q.Order("jobs.created_at DESC").Scan(&rows).Error
	return rows, err
}

func (r *JobRepositoryImpl) FindRecentByCustomer(customerID string, limit int) ([]RecentJobRow, error) {
	var rows []RecentJobRow
	err := r.db.Table("jobs").
		Select("jobs.id, jobs.job_number, jobs.title, job_statuses.name AS status_name, jobs.created_at").
		Joins("LEFT JOIN job_statuses ON job_statuses.id = jobs.status_id").
		Where("jobs.customer_id = ?", customerID).
		Order("jobs.created_at DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *JobRepositoryImpl) UpdateFields(id string, fields map[string]interface{}) error {
	return r.db.Model(&models.Job{}).Where("id = ?", id).Updates(fields).Error
}

func (r *JobRepositoryImpl) CreateHistory(entry *models.JobHistory) error {
	return r.db.Create(entry).Error
}

func (r *JobRepositoryImpl) FindHistory(jobID string) ([]JobHistoryRow, error) {
	var rows []JobHistoryRow
	err := r.db.Table("job_histories").
		Select("job_histories.*, CONCAT(users.first_name, ' ', users.last_name) AS changed_by_name, users.role AS changed_by_role").
		Joins("LEFT JOIN users ON users.id = job_histories.changed_by").
		Where("job_histories.job_id = ?", jobID).
		Order("job_histories.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *JobRepositoryImpl) CreateAttachment(attachment *models.JobAttachment) error {
	return r.db.Create(attachment).Error
}

func (r *JobRepositoryImpl) FindAttachment(id string) (*models.JobAttachment, error) {
	var attachment models.JobAttachment
	err := r.db.First(&attachment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAttachmentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &attachment, nil
}

func (r *JobRepositoryImpl) FindAttachments(jobID string) ([]AttachmentRow, error) {
	var rows []AttachmentRow
	err := r.db.Table("job_attachments").
		Select("job_attachments.*, CONCAT(users.first_name, ' ', users.last_name) AS uploaded_by_name").
		Joins("LEFT JOIN users ON users.id = job_attachments.uploaded_by").
		Where("job_attachments.job_id = ?", jobID).
		Order("job_attachments.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *JobRepositoryImpl) DeleteAttachment(id string) error {
	return r.db.Delete(&models.JobAttachment{}, "id = ?", id).Error
}
