package handlers

import (
	"net/http"

	"maintdesk_backend/internal/appErrors"
	"maintdesk_backend/internal/dto"
	"maintdesk_backend/internal/middleware"
	"maintdesk_backend/internal/models"
	"maintdesk_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type DataHandler struct {
	*BaseHandler
	dataService *services.DataService
}

func NewDataHandler(base *BaseHandler, dataService *services.DataService) *DataHandler {
	return &DataHandler{BaseHandler: base, dataService: dataService}
}

func (h *DataHandler) RegisterRoutes(r *gin.RouterGroup) {
	data := r.Group("/data")
	data.Use(middleware.AuthMiddleware())
	{
		data.GET("/categories", h.ListCategories)
		data.POST("/categories", middleware.RequireRoles(models.UserRoleStaff), h.CreateCategory)
		data.PUT("/categories/:id", middleware.RequireRoles(models.UserRoleStaff), h.UpdateCategory)

		data.GET("/priorities", h.ListPriorities)
		data.GET("/statuses", h.ListStatuses)

		data.GET("/trade-specialists", h.ListTrades)
		data.GET("/trade-specialists/:id", h.GetTrade)
		data.POST("/trade-specialists", middleware.RequireRoles(models.UserRoleStaff), h.CreateTrade)
		data.PUT("/trade-specialists/:id", h.UpdateTrade)

		data.GET("/customers", middleware.RequireRoles(models.UserRoleStaff), h.ListCustomers)
		data.GET("/customers/:id", h.GetCustomer)
	}
}

func (h *DataHandler) ListCategories(c *gin.Context) {
	categories, err := h.dataService.ListCategories()
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *DataHandler) CreateCategory(c *gin.Context) {
	identity, ok := h.Identity(c)
	if !ok {
		return
	}

	var req dto.CreateCategoryRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	category, err := h.dataService.CreateCategory(identity, &req)
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *DataHandler) UpdateCategory(c *gin.Context) {
	var req dto.UpdateCategoryRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	category, err := h.dataService.UpdateCategory(c.Param("id"), &req)
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *DataHandler) ListPriorities(c *gin.Context) {
	c.JSON(http.StatusOK, h.dataService.ListPriorities())
}

func (h *DataHandler) ListStatuses(c *gin.Context) {
	c.JSON(http.StatusOK, h.dataService.ListStatuses())
}

func (h *DataHandler) ListTrades(c *gin.Context) {
	trades, err := h.dataService.ListTrades(c.Query("category_id"))
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, trades)
}

func (h *DataHandler) GetTrade(c *gin.Context) {
	trade, err := h.dataService.GetTrade(c.Param("id"))
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, trade)
}

func (h *DataHandler) CreateTrade(c *gin.Context) {
	var req dto.CreateTradeRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	trade, user, err := h.dataService.CreateTrade(&req)
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateTradeResponse{
		Message: "Trade specialist created successfully",
		TradeID: trade.ID,
		UserID:  user.ID,
	})
}

func (h *DataHandler) UpdateTrade(c *gin.Context) {
	identity, ok := h.Identity(c)
	if !ok {
		return
	}

	var req dto.UpdateTradeRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	if err := h.dataService.UpdateTrade(identity, c.Param("id"), &req); err != nil {
		appErrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Trade specialist updated successfully"})
}

func (h *DataHandler) ListCustomers(c *gin.Context) {
	customers, err := h.dataService.ListCustomers()
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *DataHandler) GetCustomer(c *gin.Context) {
	identity, ok := h.Identity(c)
	if !ok {
		return
	}

	customer, err := h.dataService.GetCustomer(identity, c.Param("id"))
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}
