package services

// ServiceContainer holds every application service.
type ServiceContainer struct {
	AuthService         *AuthService
	JobService          *JobService
	QuoteService        *QuoteService
	NotificationService *NotificationService
	DataService         *DataService
	ReportService       *ReportService
}
