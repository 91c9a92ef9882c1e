package handlers

import (
	"net/http"

	"workreg_backend/internal/middleware"
	"workreg_backend/internal/services"
	"workreg_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type WorkerHandler struct {
	*BaseHandler
	workerService services.WorkerService
}

func NewWorkerHandler(base *BaseHandler, workerService services.WorkerService) *WorkerHandler {
	return &WorkerHandler{
		BaseHandler:   base,
		workerService: workerService,
	}
}

func (h *WorkerHandler) RegisterRoutes(r *gin.RouterGroup) {
	workers := r.Group("/workers")
	workers.Use(middleware.RequireApproved())
	{
		workers.POST("", h.Create)
		workers.GET("", h.List)
		workers.GET("/:id", h.GetByID)
		workers.PUT("/:id", h.Update)
		workers.DELETE("/:id", h.Delete)
	}
}

func (h *WorkerHandler) Create(c *gin.Context) {
	var req dto.CreateWorkerRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user := middleware.CurrentUser(c)
	worker, err := h.workerService.Create(h.GetDB(c), &req, user.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, worker)
}

func (h *WorkerHandler) List(c *gin.Context) {
	workers, err := h.workerService.List(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, workers)
}

func (h *WorkerHandler) GetByID(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	worker, err := h.workerService.GetByID(h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, worker)
}

func (h *WorkerHandler) Update(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateWorkerRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	worker, err := h.workerService.Update(h.GetDB(c), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, worker)
}

func (h *WorkerHandler) Delete(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.workerService.Delete(h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
