package repositories

import (
	"errors"

	"maintdesk_backend/internal/models"

	"gorm.io/gorm"
)

var ErrCustomerNotFound = errors.New("customer not found")

// CustomerListRow is a customer joined with its account and job count for
// the staff directory.
type CustomerListRow struct {
	models.Customer
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	TotalJobs int64  `json:"total_jobs"`
}

type CustomerRepository interface {
	WithTx(tx *gorm.DB) CustomerRepository

	Create(customer *models.Customer) error
	Update(customer *models.Customer) error
	FindByID(id string) (*models.Customer, error)
	FindAllActive() ([]CustomerListRow, error)
	FindRowByID(id string) (*CustomerListRow, error)
}

type CustomerRepositoryImpl struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &CustomerRepositoryImpl{db: db}
}

func (r *CustomerRepositoryImpl) WithTx(tx *gorm.DB) CustomerRepository {
	return &CustomerRepositoryImpl{db: tx}
}

func (r *CustomerRepositoryImpl) Create(customer *models.Customer) error {
	return r.db.Create(customer).Error
}

func (r *CustomerRepositoryImpl) Update(customer *models.Customer) error {
	return r.db.Save(customer).Error
}

func (r *CustomerRepositoryImpl) FindByID(id string) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.First(&customer, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *CustomerRepositoryImpl) FindAllActive() ([]CustomerListRow, error) {
	var rows []CustomerListRow
	err := r.db.Table("customers").
		Select("customers.*, users.email, users.phone, users.first_name, users.last_name, COUNT(DISTINCT jobs.id) AS total_jobs").
		Joins("LEFT JOIN users ON users.id = customers.user_id").
		Joins("LEFT JOIN jobs ON jobs.customer_id = customers.id").
		Where("users.is_active = ?", true).
		Group("customers.id, users.email, users.phone, users.first_name, users.last_name").
		Order("customers.organization_name ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *CustomerRepositoryImpl) FindRowByID(id string) (*CustomerListRow, error) {
	var row CustomerListRow
	err := r.db.Table("customers").
		Select("customers.*, users.email, users.phone, users.first_name, users.last_name, COUNT(DISTINCT jobs.id) AS total_jobs").
		Joins("LEFT JOIN users ON users.id = customers.user_id").
		Joins("LEFT JOIN jobs ON jobs.customer_id = customers.id").
		Where("customers.id = ?", id).
		Group("customers.id, users.email, users.phone, users.first_name, users.last_name").
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == "" {
		return nil, ErrCustomerNotFound
	}
	return &row, nil
}
