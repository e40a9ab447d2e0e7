package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/futbol-backend-go/internal/models"
	"github.com/jengzang/futbol-backend-go/internal/service"
	"github.com/jengzang/futbol-backend-go/pkg/response"
)

// ImportHandler handles HTTP requests for import tasks
type ImportHandler struct {
	service *service.ImportService
}

// NewImportHandler creates a new import handler
func NewImportHandler(service *service.ImportService) *ImportHandler {
	return &ImportHandler{service: service}
}

// CreateTask handles POST /api/v1/imports
func (h *ImportHandler) CreateTask(c *gin.Context) {
	var req service.ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	createdBy := c.GetHeader("X-Requested-By")
	if createdBy == "" {
		createdBy = "api"
	}

	task, err := h.service.CreateTask(req, createdBy)
	if err != nil {
		writeError(c, "Failed to create import task", err)
		return
	}

	c.JSON(http.StatusAccepted, response.Response{Code: 0, Message: "accepted", Data: task})
}

// GetTask handles GET /api/v1/imports/:id
func (h *ImportHandler) GetTask(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	task, err := h.service.GetTask(id)
	if err != nil {
		writeError(c, "Import task not found", err)
		return
	}
	response.Success(c, task)
}

// ListTasks handles GET /api/v1/imports
func (h *ImportHandler) ListTasks(c *gin.Context) {
	var filter models.ImportFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	tasks, err := h.service.ListTasks(filter)
	if err != nil {
		writeError(c, "Failed to list import tasks", err)
		return
	}

	response.Success(c, gin.H{
		"tasks":  tasks,
		"limit":  filter.Limit,
		"offset": filter.Offset,
	})
}
