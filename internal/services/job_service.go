package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"maintdesk_backend/internal/appErrors"
	"maintdesk_backend/internal/auth"
	"maintdesk_backend/internal/config"
	"maintdesk_backend/internal/dto"
	"maintdesk_backend/internal/models"
	"maintdesk_backend/internal/refdata"
	"maintdesk_backend/internal/repositories"
	"maintdesk_backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JobDetail bundles the job row with its related collections.
type JobDetail struct {
	repositories.JobListRow
	Attachments []repositories.AttachmentRow `json:"attachments"`
	Quotes      []models.Quote               `json:"quotes"`
	History     []repositories.JobHistoryRow `json:"history"`
}

type JobService struct {
	db               *gorm.DB
	jobRepo          repositories.JobRepository
	quoteRepo        repositories.QuoteRepository
	customerRepo     repositories.CustomerRepository
	tradeRepo        repositories.TradeRepository
	notificationRepo repositories.NotificationRepository
	refdata          *refdata.Resolver
	storage          storage.Storage
	notifier         *Notifier
}

func NewJobService(
	db *gorm.DB,
	jobRepo repositories.JobRepository,
	quoteRepo repositories.QuoteRepository,
	customerRepo repositories.CustomerRepository,
	tradeRepo repositories.TradeRepository,
	notificationRepo repositories.NotificationRepository,
	resolver *refdata.Resolver,
	store storage.Storage,
	notifier *Notifier,
) *JobService {
	return &JobService{
		db:               db,
		jobRepo:          jobRepo,
		quoteRepo:        quoteRepo,
		customerRepo:     customerRepo,
		tradeRepo:        tradeRepo,
		notificationRepo: notificationRepo,
		refdata:          resolver,
		storage:          store,
		notifier:         notifier,
	}
}

// newReferenceNumber builds the prefix-millis-token numbers used for jobs
// and quotes, e.g. JOB-1724900000000-4F7A2.
func newReferenceNumber(prefix string) string {
	token := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:5])
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), token)
}

// parseDate accepts date-only or RFC3339 timestamps.
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, appErrors.NewBadRequestError(fmt.Sprintf("invalid date %q", s))
	}
	return &t, nil
}

// Create registers a new maintenance request. New jobs always start in the
// New status regardless of caller input; priority falls back to Medium.
func (s *JobService) Create(identity auth.Identity, req *dto.CreateJobRequest) (*models.Job, error) {
	var customerID string
	switch {
	case identity.IsCustomer():
		if identity.CustomerID == nil {
			return nil, appErrors.ErrForbidden
		}
		customerID = *identity.CustomerID
	case identity.IsStaff():
		if req.CustomerID == "" {
			return nil, appErrors.NewBadRequestError("customer_id required for staff")
		}
		customerID = req.CustomerID
	default:
		return nil, appErrors.ErrForbidden
	}

	customer, err := s.customerRepo.FindByID(customerID)
	if err != nil {
		return nil, err
	}

	priorityID := req.PriorityID
	if priorityID == "" {
		priorityID = s.refdata.Priority(models.PriorityMedium).ID
	}

	preferredDate, err := parseDate(req.PreferredDate)
	if err != nil {
		return nil, err
	}

	job := &models.Job{
		JobNumber:       newReferenceNumber("JOB"),
		CustomerID:      customerID,
		CategoryID:      req.CategoryID,
		PriorityID:      priorityID,
		StatusID:        s.refdata.Status(models.StatusNew).ID,
		Title:           req.Title,
		Description:     req.Description,
		LocationAddress: req.LocationAddress,
		PreferredDate:   preferredDate,
		PreferredTime:   req.PreferredTime,
		CustomerNotes:   req.CustomerNotes,
	}

	notification := &models.Notification{
		UserID:  customer.UserID,
		Type:    models.NotificationJobCreated,
		Title:   "New Maintenance Request Submitted",
		Message: fmt.Sprintf("Your maintenance request %q has been submitted successfully with job number %s.", req.Title, job.JobNumber),
		Data:    notificationData(map[string]interface{}{"job_number": job.JobNumber}),
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.jobRepo.WithTx(tx).Create(job); err != nil {
			return err
		}
		history := &models.JobHistory{
			JobID:      job.ID,
			ChangedBy:  identity.UserID,
			ChangeType: models.ChangeTypeCreated,
			NewValue:   models.StatusNew,
			Notes:      "Job created",
		}
		if err := s.jobRepo.WithTx(tx).CreateHistory(history); err != nil {
			return err
		}
		notification.JobID = &job.ID
		return s.notificationRepo.WithTx(tx).Create(notification)
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Dispatch(notification)
	return job, nil
}

// List returns jobs visible to the caller, newest first. Customers and
// trades are pinned to their own records; the extra filters are staff-only.
func (s *JobService) List(identity auth.Identity, criteria repositories.JobListCriteria) ([]repositories.JobListRow, error) {
	switch {
	case identity.IsCustomer():
		if identity.CustomerID == nil {
			return nil, appErrors.ErrForbidden
		}
		criteria = repositories.JobListCriteria{
			CustomerID: *identity.CustomerID,
			StatusID:   criteria.StatusID,
			PriorityID: criteria.PriorityID,
			CategoryID: criteria.CategoryID,
		}
	case identity.IsTrade():
		if identity.TradeID == nil {
			return nil, appErrors.ErrForbidden
		}
		criteria = repositories.JobListCriteria{
			AssignedTradeID: *identity.TradeID,
			StatusID:        criteria.StatusID,
			PriorityID:      criteria.PriorityID,
			CategoryID:      criteria.CategoryID,
		}
	}
	return s.jobRepo.List(criteria)
}

// Get returns the full job detail bundle after an ownership check.
func (s *JobService) Get(identity auth.Identity, id string) (*JobDetail, error) {
	row, err := s.jobRepo.FindRowByID(id)
	if errors.Is(err, repositories.ErrJobNotFound) {
		return nil, appErrors.ErrJobNotFound
	}
	if err != nil {
		return nil, err
	}
	if !auth.CanViewJob(identity, &row.Job) {
		return nil, appErrors.ErrForbidden
	}

	attachments, err := s.jobRepo.FindAttachments(id)
	if err != nil {
		return nil, err
	}
	quotes, err := s.quoteRepo.FindByJob(id)
	if err != nil {
		return nil, err
	}
	history, err := s.jobRepo.FindHistory(id)
	if err != nil {
		return nil, err
	}

	return &JobDetail{
		JobListRow:  *row,
		Attachments: attachments,
		Quotes:      quotes,
		History:     history,
	}, nil
}

// Update applies a staff patch. Every provided field is written in one
// transaction together with its history and notification side effects.
func (s *JobService) Update(identity auth.Identity, id string, req *dto.UpdateJobRequest) error {
	if !auth.CanUpdateJob(identity) {
		return appErrors.NewForbiddenError("Customers cannot update jobs directly")
	}
	if req.Empty() {
		return appErrors.ErrEmptyUpdate
	}

	job, err := s.jobRepo.FindByID(id)
	if errors.Is(err, repositories.ErrJobNotFound) {
		return appErrors.ErrJobNotFound
	}
	if err != nil {
		return err
	}

	fields := map[string]interface{}{}
	var histories []*models.JobHistory
	var notifications []*models.Notification

	if req.StatusID != nil {
		newStatus, ok := s.refdata.StatusByID(*req.StatusID)
		if !ok {
			return appErrors.NewBadRequestError("unknown status_id")
		}
		oldStatus, _ := s.refdata.StatusByID(job.StatusID)

		fields["status_id"] = newStatus.ID
		if newStatus.Name == models.StatusCompleted && job.CompletedDate == nil {
			now := time.Now()
			fields["completed_date"] = &now
		}

		histories = append(histories, &models.JobHistory{
			JobID:      id,
			ChangedBy:  identity.UserID,
			ChangeType: models.ChangeTypeStatusChange,
			OldValue:   oldStatus.Name,
			NewValue:   newStatus.Name,
		})

		customer, err := s.customerRepo.FindByID(job.CustomerID)
		if err != nil {
			return err
		}
		notifications = append(notifications, &models.Notification{
			UserID:  customer.UserID,
			JobID:   &id,
			Type:    models.NotificationStatusChange,
			Title:   "Job Status Updated",
			Message: fmt.Sprintf("Your maintenance request %s status has been updated to %s.", job.JobNumber, newStatus.Name),
			Data:    notificationData(map[string]interface{}{"status": newStatus.Name}),
		})
	}

	if req.PriorityID != nil {
		if _, ok := s.refdata.PriorityByID(*req.PriorityID); !ok {
			return appErrors.NewBadRequestError("unknown priority_id")
		}
		fields["priority_id"] = *req.PriorityID
	}

	if req.AssignedStaffID.Set {
		staffID := req.AssignedStaffID.Ptr()
		fields["assigned_staff_id"] = staffID
		histories = append(histories, &models.JobHistory{
			JobID:      id,
			ChangedBy:  identity.UserID,
			ChangeType: models.ChangeTypeStaffAssigned,
			NewValue:   req.AssignedStaffID.Value,
		})
	}

	if req.AssignedTradeID.Set {
		tradeID := req.AssignedTradeID.Ptr()
		fields["assigned_trade_id"] = tradeID
		histories = append(histories, &models.JobHistory{
			JobID:      id,
			ChangedBy:  identity.UserID,
			ChangeType: models.ChangeTypeTradeAssigned,
			NewValue:   req.AssignedTradeID.Value,
		})

		if tradeID != nil {
			trade, err := s.tradeRepo.FindByID(*tradeID)
			if err != nil {
				return err
			}
			notifications = append(notifications, &models.Notification{
				UserID:  trade.UserID,
				JobID:   &id,
				Type:    models.NotificationJobAssigned,
				Title:   "New Job Assigned",
				Message: fmt.Sprintf("You have been assigned to job %s. Please review and submit a quote.", job.JobNumber),
				Data:    notificationData(map[string]interface{}{"job_number": job.JobNumber}),
			})
		}
	}

	if req.ScheduledDate != nil {
		scheduled, err := parseDate(*req.ScheduledDate)
		if err != nil {
			return err
		}
		fields["scheduled_date"] = scheduled
	}
	if req.InternalNotes != nil {
		fields["internal_notes"] = *req.InternalNotes
	}
	if req.EstimatedCost.Set {
		fields["estimated_cost"] = req.EstimatedCost.Ptr()
	}
	if req.FinalCost.Set {
		fields["final_cost"] = req.FinalCost.Ptr()
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.jobRepo.WithTx(tx).UpdateFields(id, fields); err != nil {
			return err
		}
		for _, history := range histories {
			if err := s.jobRepo.WithTx(tx).CreateHistory(history); err != nil {
				return err
			}
		}
		for _, notification := range notifications {
			if err := s.notificationRepo.WithTx(tx).Create(notification); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.notifier.Dispatch(notifications...)
	return nil
}

// UploadAttachments stores up to the configured number of files against a
// job and records one attachment row per stored file.
func (s *JobService) UploadAttachments(ctx context.Context, identity auth.Identity, jobID, description string, files []*multipart.FileHeader) ([]string, error) {
	cfg := config.GetConfig()

	if len(files) == 0 {
		return nil, appErrors.NewBadRequestError("No files uploaded")
	}
	if len(files) > cfg.Upload.MaxFiles {
		return nil, appErrors.NewBadRequestError(fmt.Sprintf("at most %d files per upload", cfg.Upload.MaxFiles))
	}

	job, err := s.jobRepo.FindByID(jobID)
	if errors.Is(err, repositories.ErrJobNotFound) {
		return nil, appErrors.ErrJobNotFound
	}
	if err != nil {
		return nil, err
	}
	if !auth.CanTouchAttachment(identity, job) {
		return nil, appErrors.ErrForbidden
	}

	var ids []string
	for _, header := range files {
		if cfg.Upload.MaxSize > 0 && header.Size > cfg.Upload.MaxSize {
			return nil, appErrors.NewBadRequestError(fmt.Sprintf("file %s exceeds the size limit", header.Filename))
		}
		contentType := header.Header.Get("Content-Type")
		if !allowedType(cfg.Upload.AllowedTypes, contentType) {
			return nil, appErrors.NewBadRequestError(fmt.Sprintf("file type %s is not allowed", contentType))
		}

		src, err := header.Open()
		if err != nil {
			return nil, err
		}

		path := filepath.Join("jobs", jobID, uuid.NewString()+filepath.Ext(header.Filename))
		size, err := s.storage.Save(ctx, path, src)
		src.Close()
		if err != nil {
			return nil, err
		}

		attachment := &models.JobAttachment{
			JobID:       jobID,
			FileName:    header.Filename,
			FilePath:    path,
			FileType:    contentType,
			FileSize:    size,
			UploadedBy:  identity.UserID,
			Description: description,
		}
		if err := s.jobRepo.CreateAttachment(attachment); err != nil {
			_ = s.storage.Delete(ctx, path)
			return nil, err
		}
		ids = append(ids, attachment.ID)
	}
	return ids, nil
}

func allowedType(allowed []string, contentType string) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, t := range allowed {
		if strings.EqualFold(t, contentType) {
			return true
		}
	}
	return false
}

// DeleteAttachment removes the file first, then the record. A missing file
// is tolerated so a half-deleted attachment can be cleaned up.
func (s *JobService) DeleteAttachment(ctx context.Context, identity auth.Identity, id string) error {
	attachment, err := s.jobRepo.FindAttachment(id)
	if errors.Is(err, repositories.ErrAttachmentNotFound) {
		return appErrors.ErrAttachmentNotFound
	}
	if err != nil {
		return err
	}

	job, err := s.jobRepo.FindByID(attachment.JobID)
	if err != nil {
		return err
	}
	if !auth.CanTouchAttachment(identity, job) {
		return appErrors.ErrForbidden
	}

	if err := s.storage.Delete(ctx, attachment.FilePath); err != nil {
		return err
	}
	return s.jobRepo.DeleteAttachment(id)
}

// OpenAttachment streams an attachment after the same ownership check that
// guards the parent job.
func (s *JobService) OpenAttachment(ctx context.Context, identity auth.Identity, id string) (*models.JobAttachment, io.ReadCloser, error) {
	attachment, err := s.jobRepo.FindAttachment(id)
	if errors.Is(err, repositories.ErrAttachmentNotFound) {
		return nil, nil, appErrors.ErrAttachmentNotFound
	}
	if err != nil {
		return nil, nil, err
	}

	job, err := s.jobRepo.FindByID(attachment.JobID)
	if err != nil {
		return nil, nil, err
	}
	if !auth.CanViewJob(identity, job) {
		return nil, nil, appErrors.ErrForbidden
	}

	reader, err := s.storage.Get(ctx, attachment.FilePath)
	if err != nil {
		return nil, nil, err
	}
	return attachment, reader, nil
}
