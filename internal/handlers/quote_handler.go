package handlers

import (
	"net/http"

	"maintdesk_backend/internal/appErrors"
	"maintdesk_backend/internal/dto"
	"maintdesk_backend/internal/middleware"
	"maintdesk_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	*BaseHandler
	quoteService *services.QuoteService
}

func NewQuoteHandler(base *BaseHandler, quoteService *services.QuoteService) *QuoteHandler {
	return &QuoteHandler{BaseHandler: base, quoteService: quoteService}
}

func (h *QuoteHandler) RegisterRoutes(r *gin.RouterGroup) {
	quotes := r.Group("/quotes")
	quotes.Use(middleware.AuthMiddleware())
	{
		quotes.POST("", h.Create)
		quotes.GET("/job/:jobId", h.ListByJob)
		quotes.GET("/job/:jobId/comparison", h.Comparison)
		quotes.PUT("/:id/status", h.Resolve)
		quotes.PUT("/:id/withdraw", h.Withdraw)
	}
}

func (h *QuoteHandler) Create(c *gin.Context) {
	identity, ok := h.Identity(c)
	if !ok {
		return
	}

	var req dto.CreateQuoteRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	quote, err := h.quoteService.Create(identity, &req)
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateQuoteResponse{
		Message:     "Quote submitted successfully",
		QuoteID:     quote.ID,
		QuoteNumber: quote.QuoteNumber,
	})
}

func (h *QuoteHandler) ListByJob(c *gin.Context) {
	identity, ok := h.Identity(c)
	if !ok {
		return
	}

	quotes, err := h.quoteService.ListByJob(identity, c.Param("jobId"))
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, quotes)
}

func (h *QuoteHandler) Comparison(c *gin.Context) {
	identity, ok := h.Identity(c)
	if !ok {
		return
	}

	quotes, comparison, err := h.quoteService.Comparison(identity, c.Param("jobId"))
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}

	// comparison is null when the job has no active quotes.
	c.JSON(http.StatusOK, gin.H{
		"quotes":     quotes,
		"comparison": comparison,
	})
}

func (h *QuoteHandler) Resolve(c *gin.Context) {
	identity, ok := h.Identity(c)
	if !ok {
		return
	}

	var req dto.ResolveQuoteRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	if err := h.quoteService.Resolve(identity, c.Param("id"), &req); err != nil {
		appErrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Quote " + req.Status + " successfully"})
}

func (h *QuoteHandler) Withdraw(c *gin.Context) {
	identity, ok := h.Identity(c)
	if !ok {
		return
	}

	if err := h.quoteService.Withdraw(identity, c.Param("id")); err != nil {
		appErrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Quote withdrawn successfully"})
}
