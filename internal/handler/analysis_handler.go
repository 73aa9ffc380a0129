package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/stratigo/borehole-backend-go/internal/models"
	"github.com/stratigo/borehole-backend-go/internal/service"
	"github.com/stratigo/borehole-backend-go/pkg/response"
)

// AnalysisHandler handles HTTP requests for analysis runs
type AnalysisHandler struct {
	service *service.AnalysisService
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(service *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{service: service}
}

// IdentifyUnits handles POST /api/v1/analysis/units
func (h *AnalysisHandler) IdentifyUnits(c *gin.Context) {
	var req models.IdentifyUnitsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if req.Site == "" && len(req.Entries) == 0 {
		response.BadRequest(c, "site or entries is required")
		return
	}

	result, err := h.service.IdentifyUnits(req)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, result)
}

// Cluster handles POST /api/v1/analysis/clusters
func (h *AnalysisHandler) Cluster(c *gin.Context) {
	var req models.ClusterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.service.ClusterSite(req)
	if err != nil {
		response.InternalError(c, "Clustering failed")
		return
	}

	response.Success(c, result)
}

// Interpolate handles POST /api/v1/analysis/interpolate
func (h *AnalysisHandler) Interpolate(c *gin.Context) {
	var req models.InterpolateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.service.Interpolate(req)
	if err != nil {
		response.InternalError(c, "Interpolation failed")
		return
	}

	response.Success(c, result)
}

// BoundaryUncertainty handles POST /api/v1/analysis/uncertainty
func (h *AnalysisHandler) BoundaryUncertainty(c *gin.Context) {
	var req models.UncertaintyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.service.BoundaryUncertainty(req)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, result)
}

// CrossValidate handles POST /api/v1/analysis/cross-validate
func (h *AnalysisHandler) CrossValidate(c *gin.Context) {
	var req models.CrossValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.service.CrossValidate(req)
	if err != nil {
		response.InternalError(c, "Cross-validation failed")
		return
	}

	response.Success(c, result)
}
