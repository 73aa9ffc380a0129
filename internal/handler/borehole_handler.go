package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/stratigo/borehole-backend-go/internal/models"
	"github.com/stratigo/borehole-backend-go/internal/service"
	"github.com/stratigo/borehole-backend-go/pkg/response"
)

// BoreholeHandler handles HTTP requests for boreholes and intervals
type BoreholeHandler struct {
	service *service.BoreholeService
}

// NewBoreholeHandler creates a new borehole handler
func NewBoreholeHandler(service *service.BoreholeService) *BoreholeHandler {
	return &BoreholeHandler{service: service}
}

// CreateBorehole handles POST /api/v1/boreholes
func (h *BoreholeHandler) CreateBorehole(c *gin.Context) {
	var req models.CreateBoreholeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	borehole, err := h.service.CreateBorehole(req)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Created(c, borehole)
}

// ListBoreholes handles GET /api/v1/boreholes?site=...
func (h *BoreholeHandler) ListBoreholes(c *gin.Context) {
	site := c.Query("site")
	if site == "" {
		response.BadRequest(c, "site query parameter is required")
		return
	}

	boreholes, err := h.service.GetBoreholesBySite(site)
	if err != nil {
		response.InternalError(c, "Failed to list boreholes")
		return
	}

	response.Success(c, gin.H{
		"data":  boreholes,
		"count": len(boreholes),
	})
}

// GetBorehole handles GET /api/v1/boreholes/:id
func (h *BoreholeHandler) GetBorehole(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid borehole ID")
		return
	}

	borehole, intervals, err := h.service.GetBorehole(id)
	if err != nil {
		response.InternalError(c, "Failed to get borehole")
		return
	}
	if borehole == nil {
		response.NotFound(c, "Borehole not found")
		return
	}

	response.Success(c, gin.H{
		"borehole":  borehole,
		"intervals": intervals,
	})
}

// CreateInterval handles POST /api/v1/boreholes/:id/intervals
func (h *BoreholeHandler) CreateInterval(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid borehole ID")
		return
	}

	var req models.CreateIntervalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	interval, err := h.service.CreateInterval(id, req)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Created(c, interval)
}
