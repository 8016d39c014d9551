package handlers

import (
	"io"
	"net/http"

	"maintdesk_backend/internal/appErrors"
	"maintdesk_backend/internal/dto"
	"maintdesk_backend/internal/middleware"
	"maintdesk_backend/internal/models"
	"maintdesk_backend/internal/repositories"
	"maintdesk_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService *services.JobService
}

func NewJobHandler(base *BaseHandler, jobService *services.JobService) *JobHandler {
	return &JobHandler{BaseHandler: base, jobService: jobService}
}

func (h *JobHandler) RegisterRoutes(r *gin.RouterGroup) {
	jobs := r.Group("/jobs")
	jobs.Use(middleware.AuthMiddleware())
	{
		jobs.POST("", h.Create)
		jobs.GET("", h.List)
		jobs.GET("/:id", h.Get)
		jobs.PUT("/:id", middleware.RequireRoles(models.UserRoleStaff), h.Update)

		jobs.POST("/attachments", h.UploadAttachments)
		jobs.DELETE("/attachments/:id", h.DeleteAttachment)
		jobs.GET("/attachments/:id/download", h.DownloadAttachment)
	}
}

func (h *JobHandler) Create(c *gin.Context) {
	identity, ok := h.Identity(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	job, err := h.jobService.Create(identity, &req)
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateJobResponse{
		Message:   "Job created successfully",
		JobID:     job.ID,
		JobNumber: job.JobNumber,
	})
}

func (h *JobHandler) List(c *gin.Context) {
	identity, ok := h.Identity(c)
	if !ok {
		return
	}

	var criteria repositories.JobListCriteria
	if err := c.ShouldBindQuery(&criteria); err != nil {
		appErrors.HandleError(c, appErrors.NewBadRequestError("Invalid query parameters"))
		return
	}

	jobs, err := h.jobService.List(identity, criteria)
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (h *JobHandler) Get(c *gin.Context) {
	identity, ok := h.Identity(c)
	if !ok {
		return
	}

	detail, err := h.jobService.Get(identity, c.Param("id"))
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *JobHandler) Update(c *gin.Context) {
	identity, ok := h.Identity(c)
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	if err := h.jobService.Update(identity, c.Param("id"), &req); err != nil {
		appErrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Job updated successfully"})
}

func (h *JobHandler) UploadAttachments(c *gin.Context) {
	identity, ok := h.Identity(c)
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		appErrors.HandleError(c, appErrors.NewBadRequestError("Invalid multipart form"))
		return
	}

	jobID := c.PostForm("job_id")
	if jobID == "" {
		appErrors.HandleError(c, appErrors.NewBadRequestError("job_id required"))
		return
	}

	ids, err := h.jobService.UploadAttachments(
		c.Request.Context(), identity, jobID, c.PostForm("description"), form.File["files"])
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":        "Files uploaded successfully",
		"attachment_ids": ids,
	})
}

func (h *JobHandler) DeleteAttachment(c *gin.Context) {
	identity, ok := h.Identity(c)
	if !ok {
		return
	}

	if err := h.jobService.DeleteAttachment(c.Request.Context(), identity, c.Param("id")); err != nil {
		appErrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Attachment deleted successfully"})
}

func (h *JobHandler) DownloadAttachment(c *gin.Context) {
	identity, ok := h.Identity(c)
	if !ok {
		return
	}

	attachment, reader, err := h.jobService.OpenAttachment(c.Request.Context(), identity, c.Param("id"))
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}
	defer reader.Close()

	c.Header("Content-Disposition", `attachment; filename="`+attachment.FileName+`"`)
	c.Header("Content-Type", attachment.FileType)
	if _, err := io.Copy(c.Writer, reader); err != nil {
		// Headers are already out; just drop the connection.
		c.Abort()
	}
}
