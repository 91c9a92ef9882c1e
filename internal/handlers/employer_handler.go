package handlers

import (
	"net/http"

	"workreg_backend/internal/middleware"
	"workreg_backend/internal/services"
	"workreg_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type EmployerHandler struct {
	*BaseHandler
	employerService services.EmployerService
	workerService   services.WorkerService
}

func NewEmployerHandler(base *BaseHandler, employerService services.EmployerService, workerService services.WorkerService) *EmployerHandler {
	return &EmployerHandler{
		BaseHandler:     base,
		employerService: employerService,
		workerService:   workerService,
	}
}

func (h *EmployerHandler) RegisterRoutes(r *gin.RouterGroup) {
	employers := r.Group("/employers")
	employers.Use(middleware.RequireApproved())
	{
		employers.POST("", h.Create)
		employers.GET("", h.List)
		employers.GET("/:id", h.GetByID)
		employers.PUT("/:id", h.Update)
		employers.DELETE("/:id", h.Delete)
		employers.GET("/:id/workers", h.ListWorkers)
	}
}

func (h *EmployerHandler) Create(c *gin.Context) {
	var req dto.CreateEmployerRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user := middleware.CurrentUser(c)
	employer, err := h.employerService.Create(h.GetDB(c), &req, user.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, employer)
}

func (h *EmployerHandler) List(c *gin.Context) {
	employers, err := h.employerService.List(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, employers)
}

func (h *EmployerHandler) GetByID(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	employer, err := h.employerService.GetByID(h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, employer)
}

func (h *EmployerHandler) Update(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateEmployerRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	employer, err := h.employerService.Update(h.GetDB(c), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, employer)
}

func (h *EmployerHandler) Delete(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.employerService.Delete(h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListWorkers returns the workers currently attached to an employer.
func (h *EmployerHandler) ListWorkers(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	// 404 for a missing employer instead of an empty list.
	if _, err := h.employerService.GetByID(h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	workers, err := h.workerService.ListByEmployer(h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, workers)
}
