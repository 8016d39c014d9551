package dto

type CustomerDashboard struct {
	TotalJobs       int64   `json:"total_jobs"`
	ActiveJobs      int64   `json:"active_jobs"`
	CompletedJobs   int64   `json:"completed_jobs"`
	PendingApproval int64   `json:"pending_approval"`
	TotalSpent      float64 `json:"total_spent"`
}

type StaffDashboard struct {
	TotalJobs       int64   `json:"total_jobs"`
	ActiveJobs      int64   `json:"active_jobs"`
	NewJobs         int64   `json:"new_jobs"`
	AwaitingQuotes  int64   `json:"awaiting_quotes"`
	PendingApproval int64   `json:"pending_approval"`
	TotalCustomers  int64   `json:"total_customers"`
	TotalTrades     int64   `json:"total_trades"`
	TotalRevenue    float64 `json:"total_revenue"`
}

type TradeDashboard struct {
	AssignedJobs   int64   `json:"assigned_jobs"`
	ActiveJobs     int64   `json:"active_jobs"`
	CompletedJobs  int64   `json:"completed_jobs"`
	PendingQuotes  int64   `json:"pending_quotes"`
	ApprovedQuotes int64   `json:"approved_quotes"`
	TotalEarnings  float64 `json:"total_earnings"`
}

type CustomerFinancialSummary struct {
	TotalJobs     int64   `json:"total_jobs"`
	CompletedJobs int64   `json:"completed_jobs"`
	TotalSpent    float64 `json:"total_spent"`
	AvgJobCost    float64 `json:"avg_job_cost"`
}

type CompletionRate struct {
	TotalJobs            int64   `json:"total_jobs"`
	CompletedJobs        int64   `json:"completed_jobs"`
	CompletionPercentage float64 `json:"completion_percentage"`
}

type TradePerformance struct {
	CompanyName       string  `json:"company_name"`
	Rating            float64 `json:"rating"`
	CompletedJobs     int     `json:"completed_jobs"`
	AvgCompletionDays float64 `json:"avg_completion_days"`
}

type PerformanceReport struct {
	AvgTimeToCompletionDays float64            `json:"avg_time_to_completion_days"`
	AvgTimeToFirstQuoteDays float64            `json:"avg_time_to_first_quote_days"`
	CompletionRate          CompletionRate     `json:"completion_rate"`
	TopPerformingTrades     []TradePerformance `json:"top_performing_trades"`
}
