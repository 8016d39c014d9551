package services

import (
	"errors"

	"maintdesk_backend/internal/appErrors"
	"maintdesk_backend/internal/auth"
	"maintdesk_backend/internal/dto"
	"maintdesk_backend/internal/models"
	"maintdesk_backend/internal/repositories"

	"gorm.io/gorm"
)

type AuthService struct {
	db           *gorm.DB
	userRepo     repositories.UserRepository
	customerRepo repositories.CustomerRepository
}

func NewAuthService(db *gorm.DB, userRepo repositories.UserRepository, customerRepo repositories.CustomerRepository) *AuthService {
	return &AuthService{db: db, userRepo: userRepo, customerRepo: customerRepo}
}

// Register creates the account and, for customers, the profile row in the
// same transaction.
func (s *AuthService) Register(req *dto.RegisterRequest) (*models.User, error) {
	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, appErrors.ErrEmailAlreadyExists
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		Role:         models.UserRole(req.Role),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		IsActive:     true,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.WithTx(tx).Create(user); err != nil {
			return err
		}
		if user.Role != models.UserRoleCustomer {
			return nil
		}

		customer := &models.Customer{
			UserID:           user.ID,
			OrganizationName: req.OrganizationName,
			OrganizationType: models.OrgTypeResidential,
		}
		if req.OrganizationType != "" {
			customer.OrganizationType = models.OrganizationType(req.OrganizationType)
		}
		if req.Address != nil {
			customer.AddressLine1 = req.Address.Line1
			customer.AddressLine2 = req.Address.Line2
			customer.City = req.Address.City
			customer.State = req.Address.State
			customer.PostalCode = req.Address.PostalCode
		}
		return s.customerRepo.WithTx(tx).Create(customer)
	})
	// A concurrent registration can slip past the pre-check and lose the
	// insert race on the unique email index.
	if errors.Is(err, repositories.ErrUserAlreadyExists) {
		return nil, appErrors.ErrEmailAlreadyExists
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and issues a token. Unknown email, inactive
// account and wrong password all fail identically.
func (s *AuthService) Login(req *dto.LoginRequest) (string, *models.User, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if errors.Is(err, repositories.ErrUserNotFound) {
		return "", nil, appErrors.ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}
	if !user.IsActive {
		return "", nil, appErrors.ErrInvalidCredentials
	}
	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return "", nil, appErrors.ErrInvalidCredentials
	}

	if err := s.userRepo.UpdateLastLogin(user.ID); err != nil {
		return "", nil, err
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) GetProfile(userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if errors.Is(err, repositories.ErrUserNotFound) {
		return nil, appErrors.ErrUserNotFound
	}
	return user, err
}

// UpdateProfile patches the user row and, for customers, the profile row.
func (s *AuthService) UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if errors.Is(err, repositories.ErrUserNotFound) {
		return nil, appErrors.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.WithTx(tx).Update(user); err != nil {
			return err
		}
		if user.Customer == nil {
			return nil
		}

		customer := user.Customer
		if req.OrganizationName != nil {
			customer.OrganizationName = *req.OrganizationName
		}
		if req.Address != nil {
			customer.AddressLine1 = req.Address.Line1
			customer.AddressLine2 = req.Address.Line2
			customer.City = req.Address.City
			customer.State = req.Address.State
			customer.PostalCode = req.Address.PostalCode
		}
		return s.customerRepo.WithTx(tx).Update(customer)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) ChangePassword(userID string, req *dto.ChangePasswordRequest) error {
	user, err := s.userRepo.FindByID(userID)
	if errors.Is(err, repositories.ErrUserNotFound) {
		return appErrors.ErrUserNotFound
	}
	if err != nil {
		return err
	}

	if !auth.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		return appErrors.ErrInvalidCredentials
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	return s.userRepo.UpdatePassword(userID, hash)
}
