package dto

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	IsActive    *bool   `json:"is_active"`
}

type CreateTradeRequest struct {
	Email         string   `json:"email" validate:"required,email"`
	Password      string   `json:"password" validate:"required,min=8"`
	FirstName     string   `json:"first_name" validate:"required"`
	LastName      string   `json:"last_name" validate:"required"`
	Phone         string   `json:"phone"`
	CompanyName   string   `json:"company_name" validate:"required"`
	ABN           string   `json:"abn"`
	LicenseNumber string   `json:"license_number"`
	Address       *Address `json:"address"`
	ServiceAreas  string   `json:"service_areas"`
	Categories    []string `json:"categories"`
}

type CreateTradeResponse struct {
	Message string `json:"message"`
	TradeID string `json:"trade_id"`
	UserID  string `json:"user_id"`
}

type UpdateTradeRequest struct {
	CompanyName   *string  `json:"company_name"`
	ABN           *string  `json:"abn"`
	LicenseNumber *string  `json:"license_number"`
	Address       *Address `json:"address"`
	ServiceAreas  *string  `json:"service_areas"`
	IsVerified    *bool    `json:"is_verified"`
	IsActive      *bool    `json:"is_active"`
	Categories    []string `json:"categories"` // staff only, nil leaves links unchanged
}
