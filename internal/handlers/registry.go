package handlers

// AppHandlers bundles every HTTP handler for route registration.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	JobHandler          *JobHandler
	QuoteHandler        *QuoteHandler
	DataHandler         *DataHandler
	NotificationHandler *NotificationHandler
	ReportHandler       *ReportHandler
}
