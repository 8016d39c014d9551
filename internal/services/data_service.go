package services

import (
	"errors"

	"maintdesk_backend/internal/appErrors"
	"maintdesk_backend/internal/auth"
	"maintdesk_backend/internal/dto"
	"maintdesk_backend/internal/models"
	"maintdesk_backend/internal/refdata"
	"maintdesk_backend/internal/repositories"

	"gorm.io/gorm"
)

const recentJobsLimit = 10

// TradeRow is a trade specialist joined with its account contact details.
type TradeRow struct {
	models.TradeSpecialist
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	CompletedJobs *int64 `json:"completed_jobs,omitempty"`
}

// CustomerDetail is the staff view of one customer with recent activity.
type CustomerDetail struct {
	repositories.CustomerListRow
	RecentJobs []repositories.RecentJobRow `json:"recent_jobs"`
}

type DataService struct {
	db           *gorm.DB
	categoryRepo repositories.CategoryRepository
	tradeRepo    repositories.TradeRepository
	customerRepo repositories.CustomerRepository
	userRepo     repositories.UserRepository
	jobRepo      repositories.JobRepository
	refdata      *refdata.Resolver
}

func NewDataService(
	db *gorm.DB,
	categoryRepo repositories.CategoryRepository,
	tradeRepo repositories.TradeRepository,
	customerRepo repositories.CustomerRepository,
	userRepo repositories.UserRepository,
	jobRepo repositories.JobRepository,
	resolver *refdata.Resolver,
) *DataService {
	return &DataService{
		db:           db,
		categoryRepo: categoryRepo,
		tradeRepo:    tradeRepo,
		customerRepo: customerRepo,
		userRepo:     userRepo,
		jobRepo:      jobRepo,
		refdata:      resolver,
	}
}

// --- Categories ---

func (s *DataService) ListCategories() ([]models.Category, error) {
	return s.categoryRepo.FindActive()
}

func (s *DataService) CreateCategory(identity auth.Identity, req *dto.CreateCategoryRequest) (*models.Category, error) {
	category := &models.Category{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		IsActive:    true,
		CreatedBy:   identity.UserID,
	}
	if err := s.categoryRepo.Create(category); err != nil {
		if appErrors.IsDuplicateKey(err) {
			return nil, appErrors.ErrCategoryAlreadyExists
		}
		return nil, err
	}
	return category, nil
}

func (s *DataService) UpdateCategory(id string, req *dto.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.categoryRepo.FindByID(id)
	if errors.Is(err, repositories.ErrCategoryNotFound) {
		return nil, appErrors.NotFound("Category")
	}
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.Icon != nil {
		category.Icon = *req.Icon
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := s.categoryRepo.Update(category); err != nil {
		if appErrors.IsDuplicateKey(err) {
			return nil, appErrors.ErrCategoryAlreadyExists
		}
		return nil, err
	}
	return category, nil
}

// --- Reference enumerations ---

func (s *DataService) ListPriorities() []models.PriorityLevel {
	return s.refdata.Priorities()
}

func (s *DataService) ListStatuses() []models.JobStatus {
	return s.refdata.Statuses()
}

// --- Trade specialists ---

func (s *DataService) ListTrades(categoryID string) ([]TradeRow, error) {
	trades, err := s.tradeRepo.FindAllActive(categoryID)
	if err != nil {
		return nil, err
	}
	return s.withContacts(trades)
}

func (s *DataService) withContacts(trades []models.TradeSpecialist) ([]TradeRow, error) {
	userIDs := make([]string, 0, len(trades))
	for _, t := range trades {
		userIDs = append(userIDs, t.UserID)
	}
	users, err := s.userRepo.FindByIDs(userIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	rows := make([]TradeRow, 0, len(trades))
	for _, t := range trades {
		row := TradeRow{TradeSpecialist: t}
		if u, ok := byID[t.UserID]; ok {
			row.Email = u.Email
			row.Phone = u.Phone
			row.FirstName = u.FirstName
			row.LastName = u.LastName
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *DataService) GetTrade(id string) (*TradeRow, error) {
	trade, err := s.tradeRepo.FindByID(id)
	if errors.Is(err, repositories.ErrTradeNotFound) {
		return nil, appErrors.NotFound("Trade specialist")
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.withContacts([]models.TradeSpecialist{*trade})
	if err != nil {
		return nil, err
	}
	row := rows[0]

	completed, err := s.tradeRepo.CountCompletedJobs(id, s.refdata.Status(models.StatusCompleted).ID)
	if err != nil {
		return nil, err
	}
	row.CompletedJobs = &completed
	return &row, nil
}

// CreateTrade provisions the account, the profile and the category links
// in one transaction.
func (s *DataService) CreateTrade(req *dto.CreateTradeRequest) (*models.TradeSpecialist, *models.User, error) {
	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, nil, appErrors.ErrEmailAlreadyExists
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, nil, err
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		Role:         models.UserRoleTrade,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		IsActive:     true,
	}
	trade := &models.TradeSpecialist{
		CompanyName:   req.CompanyName,
		ABN:           req.ABN,
		LicenseNumber: req.LicenseNumber,
		ServiceAreas:  req.ServiceAreas,
		IsActive:      true,
	}
	if req.Address != nil {
		trade.AddressLine1 = req.Address.Line1
		trade.AddressLine2 = req.Address.Line2
		trade.City = req.Address.City
		trade.State = req.Address.State
		trade.PostalCode = req.Address.PostalCode
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.WithTx(tx).Create(user); err != nil {
			return err
		}
		trade.UserID = user.ID
		if err := s.tradeRepo.WithTx(tx).Create(trade); err != nil {
			return err
		}
		if len(req.Categories) == 0 {
			return nil
		}
		return s.tradeRepo.WithTx(tx).ReplaceCategories(trade.ID, req.Categories)
	})
	if errors.Is(err, repositories.ErrUserAlreadyExists) {
		return nil, nil, appErrors.ErrEmailAlreadyExists
	}
	if err != nil {
		return nil, nil, err
	}
	return trade, user, nil
}

// UpdateTrade patches a trade profile. Staff can touch any trade and
// re-link categories; a trade can update only its own profile.
func (s *DataService) UpdateTrade(identity auth.Identity, id string, req *dto.UpdateTradeRequest) error {
	if !auth.CanUpdateTrade(identity, id) {
		return appErrors.ErrForbidden
	}

	trade, err := s.tradeRepo.FindByID(id)
	if errors.Is(err, repositories.ErrTradeNotFound) {
		return appErrors.NotFound("Trade specialist")
	}
	if err != nil {
		return err
	}

	if req.CompanyName != nil {
		trade.CompanyName = *req.CompanyName
	}
	if req.ABN != nil {
		trade.ABN = *req.ABN
	}
	if req.LicenseNumber != nil {
		trade.LicenseNumber = *req.LicenseNumber
	}
	if req.Address != nil {
		trade.AddressLine1 = req.Address.Line1
		trade.AddressLine2 = req.Address.Line2
		trade.City = req.Address.City
		trade.State = req.Address.State
		trade.PostalCode = req.Address.PostalCode
	}
	if req.ServiceAreas != nil {
		trade.ServiceAreas = *req.ServiceAreas
	}
	if req.IsVerified != nil && identity.IsStaff() {
		trade.IsVerified = *req.IsVerified
	}
	if req.IsActive != nil && identity.IsStaff() {
		trade.IsActive = *req.IsActive
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.tradeRepo.WithTx(tx).Update(trade); err != nil {
			return err
		}
		if req.Categories == nil || !identity.IsStaff() {
			return nil
		}
		return s.tradeRepo.WithTx(tx).ReplaceCategories(id, req.Categories)
	})
}

// --- Customers ---

func (s *DataService) ListCustomers() ([]repositories.CustomerListRow, error) {
	return s.customerRepo.FindAllActive()
}

func (s *DataService) GetCustomer(identity auth.Identity, id string) (*CustomerDetail, error) {
	if !auth.CanViewCustomer(identity, id) {
		return nil, appErrors.ErrForbidden
	}

	row, err := s.customerRepo.FindRowByID(id)
	if errors.Is(err, repositories.ErrCustomerNotFound) {
		return nil, appErrors.NotFound("Customer")
	}
	if err != nil {
		return nil, err
	}

	recent, err := s.jobRepo.FindRecentByCustomer(id, recentJobsLimit)
	if err != nil {
		return nil, err
	}
	return &CustomerDetail{CustomerListRow: *row, RecentJobs: recent}, nil
}
