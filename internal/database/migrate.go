package database

import (
	"fmt"

	"maintdesk_backend/internal/auth"
	"maintdesk_backend/internal/config"
	"maintdesk_backend/internal/logger"
	"maintdesk_backend/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates the schema for every model.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.TradeSpecialist{},
		&models.Category{},
		&models.TradeCategory{},
		&models.PriorityLevel{},
		&models.JobStatus{},
		&models.Job{},
		&models.JobAttachment{},
		&models.JobHistory{},
		&models.Quote{},
		&models.QuoteItem{},
		&models.Notification{},
	)
}

// Seed inserts the reference data and the first staff account. Every insert
// is guarded by an existence check, so repeated startups are safe.
func Seed(db *gorm.DB, cfg *config.Config) error {
	if err := seedCategories(db); err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	if err := seedPriorities(db); err != nil {
		return fmt.Errorf("seed priorities: %w", err)
	}
	if err := seedStatuses(db); err != nil {
		return fmt.Errorf("seed statuses: %w", err)
	}
	if err := seedFirstStaff(db, cfg); err != nil {
		return fmt.Errorf("seed staff account: %w", err)
	}
	return nil
}

func seedCategories(db *gorm.DB) error {
	categories := []models.Category{
		{Name: "Electrical", Description: "Electrical repairs, installations, and maintenance", Icon: "electrical"},
		{Name: "Plumbing", Description: "Plumbing repairs, installations, and drainage", Icon: "plumbing"},
		{Name: "HVAC", Description: "Air conditioning, heating, and ventilation", Icon: "hvac"},
		{Name: "Carpentry", Description: "Carpentry, woodwork, and structural repairs", Icon: "carpentry"},
		{Name: "Painting", Description: "Interior and exterior painting services", Icon: "painting"},
		{Name: "Roofing", Description: "Roof repairs, replacements, and gutter work", Icon: "roofing"},
		{Name: "Tiling", Description: "Floor and wall tiling services", Icon: "tiling"},
		{Name: "Landscaping", Description: "Garden maintenance and landscaping", Icon: "landscaping"},
		{Name: "Pest Control", Description: "Pest inspection and treatment services", Icon: "pest"},
		{Name: "Cleaning", Description: "Professional cleaning services", Icon: "cleaning"},
		{Name: "Locksmith", Description: "Lock repairs and security services", Icon: "locksmith"},
		{Name: "Glass & Glazing", Description: "Window and glass repairs", Icon: "glass"},
		{Name: "Flooring", Description: "Floor installation and repairs", Icon: "flooring"},
		{Name: "General Repairs", Description: "General maintenance and handyman services", Icon: "tools"},
	}

	for i := range categories {
		categories[i].IsActive = true
		if err := insertIfMissing(db, &models.Category{}, "name", categories[i].Name, &categories[i]); err != nil {
			return err
		}
	}
	return nil
}

func seedPriorities(db *gorm.DB) error {
	priorities := []models.PriorityLevel{
		{Name: models.PriorityCritical, Description: "Immediate safety hazard or emergency", ResponseTimeHours: 2, ColorCode: "#DC2626", SortOrder: 1},
		{Name: models.PriorityHigh, Description: "Urgent issue requiring prompt attention", ResponseTimeHours: 24, ColorCode: "#EA580C", SortOrder: 2},
		{Name: models.PriorityMedium, Description: "Important but not urgent", ResponseTimeHours: 72, ColorCode: "#F59E0B", SortOrder: 3},
		{Name: models.PriorityLow, Description: "Routine maintenance or minor issue", ResponseTimeHours: 168, ColorCode: "#10B981", SortOrder: 4},
	}

	for i := range priorities {
		if err := insertIfMissing(db, &models.PriorityLevel{}, "name", priorities[i].Name, &priorities[i]); err != nil {
			return err
		}
	}
	return nil
}

func seedStatuses(db *gorm.DB) error {
	statuses := []models.JobStatus{
		{Name: models.StatusNew, Description: "New request submitted by customer", SortOrder: 1},
		{Name: models.StatusUnderReview, Description: "Being reviewed by staff", SortOrder: 2},
		{Name: models.StatusAwaitingQuotes, Description: "Waiting for trade specialist quotes", SortOrder: 3},
		{Name: models.StatusQuotesReceived, Description: "Quotes have been received from trades", SortOrder: 4},
		{Name: models.StatusPendingApproval, Description: "Waiting for customer approval", SortOrder: 5},
		{Name: models.StatusApproved, Description: "Quote approved by customer", SortOrder: 6},
		{Name: models.StatusScheduled, Description: "Job scheduled with trade specialist", SortOrder: 7},
		{Name: models.StatusInProgress, Description: "Work is currently being performed", SortOrder: 8},
		{Name: models.StatusCompleted, Description: "Work has been completed", SortOrder: 9, IsFinal: true},
		{Name: models.StatusCancelled, Description: "Job cancelled", SortOrder: 10, IsFinal: true},
	}

	for i := range statuses {
		if err := insertIfMissing(db, &models.JobStatus{}, "name", statuses[i].Name, &statuses[i]); err != nil {
			return err
		}
	}
	return nil
}

func insertIfMissing(db *gorm.DB, model interface{}, column, value string, record interface{}) error {
	var count int64
	if err := db.Model(model).Where(column+" = ?", value).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return db.Create(record).Error
}

// seedFirstStaff creates the initial staff account from config. Without it a
// fresh deployment has no one who can register trades or manage jobs.
func seedFirstStaff(db *gorm.DB, cfg *config.Config) error {
	email := cfg.Seed.StaffEmail
	password := cfg.Seed.StaffPassword
	if email == "" || password == "" {
		logger.Warn("seed.staff_email or seed.staff_password not set, skipping staff seeding")
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	staff := models.User{
		Email:        email,
		PasswordHash: hash,
		Role:         models.UserRoleStaff,
		FirstName:    "System",
		LastName:     "Staff",
		IsActive:     true,
	}
	if err := db.Create(&staff).Error; err != nil {
		return err
	}
	logger.Info("Seeded first staff account", "email", email)
	return nil
}
