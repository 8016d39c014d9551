package handlers

import (
	"net/http"

	"maintdesk_backend/internal/appErrors"
	"maintdesk_backend/internal/middleware"
	"maintdesk_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	*BaseHandler
	reportService *services.ReportService
}

func NewReportHandler(base *BaseHandler, reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{BaseHandler: base, reportService: reportService}
}

func (h *ReportHandler) RegisterRoutes(r *gin.RouterGroup) {
	reports := r.Group("/reports")
	reports.Use(middleware.AuthMiddleware())
	{
		reports.GET("/dashboard", h.Dashboard)
		reports.GET("/job-statistics", h.JobStatistics)
		reports.GET("/financial", h.Financial)
		reports.GET("/performance", h.Performance)
	}
}

func (h *ReportHandler) Dashboard(c *gin.Context) {
	identity, ok := h.Identity(c)
	if !ok {
		return
	}

	dashboard, err := h.reportService.Dashboard(identity)
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

func (h *ReportHandler) JobStatistics(c *gin.Context) {
	identity, ok := h.Identity(c)
	if !ok {
		return
	}

	from, to, err := queryDateRange(c)
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}

	stats, err := h.reportService.JobStatistics(identity, c.Query("customer_id"), from, to)
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *ReportHandler) Financial(c *gin.Context) {
	identity, ok := h.Identity(c)
	if !ok {
		return
	}

	from, to, err := queryDateRange(c)
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}

	report, err := h.reportService.Financial(identity, from, to)
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *ReportHandler) Performance(c *gin.Context) {
	identity, ok := h.Identity(c)
	if !ok {
		return
	}

	from, to, err := queryDateRange(c)
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}

	report, err := h.reportService.Performance(identity, from, to)
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
