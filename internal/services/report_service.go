package services

import (
	"math"
	"sort"
	"time"

	"maintdesk_backend/internal/appErrors"
	"maintdesk_backend/internal/auth"
	"maintdesk_backend/internal/dto"
	"maintdesk_backend/internal/models"
	"maintdesk_backend/internal/refdata"
	"maintdesk_backend/internal/repositories"
)

const topTradesLimit = 10

type ReportService struct {
	reportRepo repositories.ReportRepository
	refdata    *refdata.Resolver
}

func NewReportService(reportRepo repositories.ReportRepository, resolver *refdata.Resolver) *ReportService {
	return &ReportService{reportRepo: reportRepo, refdata: resolver}
}

func (s *ReportService) completedID() string {
	return s.refdata.Status(models.StatusCompleted).ID
}

// Dashboard returns the role-shaped counters block.
func (s *ReportService) Dashboard(identity auth.Identity) (interface{}, error) {
	switch {
	case identity.IsCustomer():
		if identity.CustomerID == nil {
			return nil, appErrors.ErrForbidden
		}
		return s.customerDashboard(*identity.CustomerID)
	case identity.IsStaff():
		return s.staffDashboard()
	case identity.IsTrade():
		if identity.TradeID == nil {
			return nil, appErrors.ErrForbidden
		}
		return s.tradeDashboard(*identity.TradeID)
	}
	return nil, appErrors.ErrForbidden
}

func (s *ReportService) customerDashboard(customerID string) (*dto.CustomerDashboard, error) {
	out := &dto.CustomerDashboard{}
	var err error

	if out.TotalJobs, err = s.reportRepo.CountJobsByCustomer(customerID); err != nil {
		return nil, err
	}
	if out.ActiveJobs, err = s.reportRepo.CountActiveJobsByCustomer(customerID); err != nil {
		return nil, err
	}
	if out.CompletedJobs, err = s.reportRepo.CountJobsByCustomerStatus(customerID, s.completedID()); err != nil {
		return nil, err
	}
	pendingApprovalID := s.refdata.Status(models.StatusPendingApproval).ID
	if out.PendingApproval, err = s.reportRepo.CountJobsByCustomerStatus(customerID, pendingApprovalID); err != nil {
		return nil, err
	}
	if out.TotalSpent, err = s.reportRepo.SumFinalCostByCustomer(customerID); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ReportService) staffDashboard() (*dto.StaffDashboard, error) {
	out := &dto.StaffDashboard{}
	var err error

	if out.TotalJobs, err = s.reportRepo.CountAllJobs(); err != nil {
		return nil, err
	}
	if out.ActiveJobs, err = s.reportRepo.CountActiveJobs(); err != nil {
		return nil, err
	}
	if out.NewJobs, err = s.reportRepo.CountJobsByStatus(s.refdata.Status(models.StatusNew).ID); err != nil {
		return nil, err
	}
	if out.AwaitingQuotes, err = s.reportRepo.CountJobsByStatus(s.refdata.Status(models.StatusAwaitingQuotes).ID); err != nil {
		return nil, err
	}
	if out.PendingApproval, err = s.reportRepo.CountJobsByStatus(s.refdata.Status(models.StatusPendingApproval).ID); err != nil {
		return nil, err
	}
	if out.TotalCustomers, err = s.reportRepo.CountCustomers(); err != nil {
		return nil, err
	}
	if out.TotalTrades, err = s.reportRepo.CountActiveTrades(); err != nil {
		return nil, err
	}
	if out.TotalRevenue, err = s.reportRepo.SumFinalCost(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ReportService) tradeDashboard(tradeID string) (*dto.TradeDashboard, error) {
	out := &dto.TradeDashboard{}
	var err error

	if out.AssignedJobs, err = s.reportRepo.CountJobsByTrade(tradeID); err != nil {
		return nil, err
	}
	if out.ActiveJobs, err = s.reportRepo.CountActiveJobsByTrade(tradeID); err != nil {
		return nil, err
	}
	if out.CompletedJobs, err = s.reportRepo.CountJobsByTradeStatus(tradeID, s.completedID()); err != nil {
		return nil, err
	}
	if out.PendingQuotes, err = s.reportRepo.CountQuotesByTradeStatus(tradeID, models.QuoteStatusPending); err != nil {
		return nil, err
	}
	if out.ApprovedQuotes, err = s.reportRepo.CountQuotesByTradeStatus(tradeID, models.QuoteStatusApproved); err != nil {
		return nil, err
	}
	if out.TotalEarnings, err = s.reportRepo.SumFinalCostByTradeStatus(tradeID, s.completedID()); err != nil {
		return nil, err
	}
	return out, nil
}

// criteriaFor pins non-staff callers to their own customer; the customer_id
// filter is honored for staff only.
func criteriaFor(identity auth.Identity, customerID string, from, to *time.Time) repositories.StatsCriteria {
	criteria := repositories.StatsCriteria{From: from, To: to}
	if identity.IsStaff() {
		criteria.CustomerID = customerID
	} else if identity.CustomerID != nil {
		criteria.CustomerID = *identity.CustomerID
	}
	return criteria
}

type JobStatistics struct {
	ByStatus   []repositories.NameCount     `json:"by_status"`
	ByPriority []repositories.PriorityCount `json:"by_priority"`
	ByCategory []repositories.NameCount     `json:"by_category"`
}

func (s *ReportService) JobStatistics(identity auth.Identity, customerID string, from, to *time.Time) (*JobStatistics, error) {
	criteria := criteriaFor(identity, customerID, from, to)

	byStatus, err := s.reportRepo.JobCountsByStatus(criteria)
	if err != nil {
		return nil, err
	}
	byPriority, err := s.reportRepo.JobCountsByPriority(criteria)
	if err != nil {
		return nil, err
	}
	byCategory, err := s.reportRepo.JobCountsByCategory(criteria)
	if err != nil {
		return nil, err
	}
	return &JobStatistics{ByStatus: byStatus, ByPriority: byPriority, ByCategory: byCategory}, nil
}

type CustomerFinancialReport struct {
	Summary    dto.CustomerFinancialSummary  `json:"summary"`
	ByCategory []repositories.CategoryAmount `json:"by_category"`
}

type StaffFinancialReport struct {
	Summary      repositories.FinancialSummary `json:"summary"`
	ByCategory   []repositories.CategoryAmount `json:"by_category"`
	TopCustomers []repositories.CustomerSpend  `json:"top_customers"`
}

// Financial serves the customer spend report or the staff revenue report.
func (s *ReportService) Financial(identity auth.Identity, from, to *time.Time) (interface{}, error) {
	switch {
	case identity.IsCustomer():
		if identity.CustomerID == nil {
			return nil, appErrors.ErrForbidden
		}
		criteria := repositories.StatsCriteria{CustomerID: *identity.CustomerID, From: from, To: to}

		summary, err := s.reportRepo.Summary(criteria, s.completedID())
		if err != nil {
			return nil, err
		}
		byCategory, err := s.reportRepo.AmountByCategory(criteria, s.completedID())
		if err != nil {
			return nil, err
		}
		return &CustomerFinancialReport{
			Summary: dto.CustomerFinancialSummary{
				TotalJobs:     summary.TotalJobs,
				CompletedJobs: summary.CompletedJobs,
				TotalSpent:    summary.TotalRevenue,
				AvgJobCost:    summary.AvgJobValue,
			},
			ByCategory: byCategory,
		}, nil

	case identity.IsStaff():
		criteria := repositories.StatsCriteria{From: from, To: to}

		summary, err := s.reportRepo.Summary(criteria, s.completedID())
		if err != nil {
			return nil, err
		}
		byCategory, err := s.reportRepo.AmountByCategory(criteria, s.completedID())
		if err != nil {
			return nil, err
		}
		topCustomers, err := s.reportRepo.TopCustomersBySpend(criteria, s.completedID())
		if err != nil {
			return nil, err
		}
		return &StaffFinancialReport{
			Summary:      *summary,
			ByCategory:   byCategory,
			TopCustomers: topCustomers,
		}, nil
	}
	return nil, appErrors.ErrForbidden
}

// Performance computes the duration metrics in Go over fetched timestamps,
// which keeps the SQL identical across database drivers.
func (s *ReportService) Performance(identity auth.Identity, from, to *time.Time) (*dto.PerformanceReport, error) {
	if !identity.IsStaff() {
		return nil, appErrors.NewForbiddenError("Staff access required")
	}
	criteria := repositories.StatsCriteria{From: from, To: to}

	completions, err := s.reportRepo.CompletionRows(criteria, s.completedID())
	if err != nil {
		return nil, err
	}
	firstQuotes, err := s.reportRepo.FirstQuoteRows(criteria)
	if err != nil {
		return nil, err
	}
	totalJobs, err := s.reportRepo.CountAllJobsIn(criteria)
	if err != nil {
		return nil, err
	}
	tradeJobs, err := s.reportRepo.TradeJobRows(criteria, s.completedID())
	if err != nil {
		return nil, err
	}

	report := &dto.PerformanceReport{
		AvgTimeToCompletionDays: round1(avgCompletionDays(completions)),
		AvgTimeToFirstQuoteDays: round1(avgFirstQuoteDays(firstQuotes)),
		CompletionRate: dto.CompletionRate{
			TotalJobs:     totalJobs,
			CompletedJobs: int64(len(completions)),
		},
		TopPerformingTrades: topTrades(tradeJobs),
	}
	if totalJobs > 0 {
		report.CompletionRate.CompletionPercentage = math.Round(float64(len(completions))/float64(totalJobs)*100*100) / 100
	}
	return report, nil
}

func avgCompletionDays(rows []repositories.CompletionRow) float64 {
	if len(rows) == 0 {
		return 0
	}
	var total float64
	for _, row := range rows {
		if row.CompletedDate == nil {
			continue
		}
		total += row.CompletedDate.Sub(row.CreatedAt).Hours() / 24
	}
	return total / float64(len(rows))
}

func avgFirstQuoteDays(rows []repositories.FirstQuoteRow) float64 {
	if len(rows) == 0 {
		return 0
	}
	var total float64
	for _, row := range rows {
		total += row.FirstQuoteAt.Sub(row.JobCreatedAt).Hours() / 24
	}
	return total / float64(len(rows))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// topTrades groups completed jobs per trade and ranks by completed count.
func topTrades(rows []repositories.TradeJobRow) []dto.TradePerformance {
	type agg struct {
		perf    dto.TradePerformance
		days    float64
		sampled int
	}

	byTrade := map[string]*agg{}
	var order []string
	for _, row := range rows {
		a, ok := byTrade[row.TradeID]
		if !ok {
			a = &agg{perf: dto.TradePerformance{CompanyName: row.CompanyName, Rating: row.Rating}}
			byTrade[row.TradeID] = a
			order = append(order, row.TradeID)
		}
		a.perf.CompletedJobs++
		if row.ScheduledDate != nil && row.CompletedDate != nil {
			a.days += row.CompletedDate.Sub(*row.ScheduledDate).Hours() / 24
			a.sampled++
		}
	}

	out := make([]dto.TradePerformance, 0, len(byTrade))
	for _, id := range order {
		a := byTrade[id]
		if a.sampled > 0 {
			a.perf.AvgCompletionDays = round1(a.days / float64(a.sampled))
		}
		out = append(out, a.perf)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CompletedJobs > out[j].CompletedJobs
	})
	if len(out) > topTradesLimit {
		out = out[:topTradesLimit]
	}
	return out
}
