package dto

type QuoteItemInput struct {
	Description string  `json:"description" validate:"required"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
}

type CreateQuoteRequest struct {
	JobID              string           `json:"job_id" validate:"required"`
	TradeID            string           `json:"trade_id"` // staff only, ignored for trades
	Amount             float64          `json:"amount" validate:"required,gt=0"`
	Description        string           `json:"description" validate:"required"`
	EstimatedDuration  string           `json:"estimated_duration"`
	EstimatedStartDate string           `json:"estimated_start_date"`
	Items              []QuoteItemInput `json:"items" validate:"dive"`
}

type CreateQuoteResponse struct {
	Message     string `json:"message"`
	QuoteID     string `json:"quote_id"`
	QuoteNumber string `json:"quote_number"`
}

type ResolveQuoteRequest struct {
	Status          string  `json:"status" validate:"required,quote_decision"`
	RejectionReason *string `json:"rejection_reason"`
}

// QuoteComparison is the aggregate block served next to the quote list.
type QuoteComparison struct {
	TotalQuotes        int     `json:"total_quotes"`
	LowestAmount       float64 `json:"lowest_amount"`
	HighestAmount      float64 `json:"highest_amount"`
	AverageAmount      float64 `json:"average_amount"`
	PriceRange         float64 `json:"price_range"`
	RecommendedQuoteID string  `json:"recommended_quote_id"`
	Savings            float64 `json:"savings"`
}
