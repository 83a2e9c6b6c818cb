package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/cashclose_app/internal/apperrors"
	"github.com/SscSPs/cashclose_app/internal/core/domain"
	portssvc "github.com/SscSPs/cashclose_app/internal/core/ports/services"
	"github.com/SscSPs/cashclose_app/internal/dto"
	"github.com/SscSPs/cashclose_app/internal/middleware"
	"github.com/SscSPs/cashclose_app/internal/utils/export"
	"github.com/gin-gonic/gin"
)

// closingHandler handles HTTP requests related to cash closings.
type closingHandler struct {
	closingService  portssvc.ClosingSvcFacade
	summaryService  portssvc.SummarySvc
	analysisService portssvc.AnalysisSvc
}

func newClosingHandler(services *portssvc.ServiceContainer) *closingHandler {
	return &closingHandler{
		closingService:  services.Closing,
		summaryService:  services.Summary,
		analysisService: services.Analysis,
	}
}

// registerClosingRoutes registers closing routes. Submitting is open to every role;
// everything else is the dashboard and needs admin.
func registerClosingRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newClosingHandler(services)

	closings := rg.Group("/closings")
	{
		closings.POST("", middleware.RequireRole(domain.RoleAdmin, domain.RoleStaff), h.createClosing)

		dashboard := closings.Group("", middleware.RequireRole(domain.RoleAdmin))
		dashboard.GET("", h.listClosings)
		dashboard.GET("/summary", h.getSummary)
		dashboard.GET("/export", h.exportClosings)
		dashboard.GET("/:closingID", h.getClosing)
		dashboard.POST("/:closingID/analysis", h.analyzeClosing)
	}
}

// createClosing godoc
// @Summary Submit a daily closing
// @Description Coerces the form amounts, derives totals and stores a new record. Blank or unparsable amounts count as zero.
// @Tags closings
// @Accept json
// @Produce json
// @Param closing body dto.CreateClosingRequest true "Closing form"
// @Success 201 {object} dto.ClosingResponse
// @Failure 400 {object} ErrorResponse "Missing date or negative amount"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse "Record store unavailable"
// @Security BearerAuth
// @Router /closings [post]
func (h *closingHandler) createClosing(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateClosingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateClosing", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	role, ok := middleware.GetRoleFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	record, err := h.closingService.CreateClosing(c.Request.Context(), req.ToRawForm(), role)
	if err != nil {
		respondError(c, logger, err, "Failed to create closing")
		return
	}

	c.JSON(http.StatusCreated, dto.ToClosingResponse(record))
}

// listClosings godoc
// @Summary List closings
// @Description Lists records inside the optional inclusive date range, newest first. When the store is down the last-known records are returned with status 503.
// @Tags closings
// @Produce json
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.ListClosingsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 503 {object} map[string]interface{} "error plus last-known records"
// @Security BearerAuth
// @Router /closings [get]
func (h *closingHandler) listClosings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	r, ok := bindDateRange(c)
	if !ok {
		return
	}

	records, err := h.closingService.ListClosings(c.Request.Context(), r)
	if err != nil {
		if errors.Is(err, apperrors.ErrStoreUnavailable) {
			logger.Error("Serving last-known closings", slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error":   "Record store unavailable",
				"records": dto.ToListClosingsResponse(records).Records,
			})
			return
		}
		respondError(c, logger, err, "Failed to list closings")
		return
	}

	c.JSON(http.StatusOK, dto.ToListClosingsResponse(records))
}

// getSummary godoc
// @Summary Period summary
// @Description Totals, payment breakdown and the last seven days of the filtered records.
// @Tags closings
// @Produce json
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.SummaryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 503 {object} map[string]interface{} "error plus last-known summary"
// @Security BearerAuth
// @Router /closings/summary [get]
func (h *closingHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	r, ok := bindDateRange(c)
	if !ok {
		return
	}

	summary, err := h.summaryService.Summarize(c.Request.Context(), r)
	if err != nil {
		if errors.Is(err, apperrors.ErrStoreUnavailable) && summary != nil {
			logger.Error("Serving last-known summary", slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error":   "Record store unavailable",
				"summary": dto.ToSummaryResponse(summary),
			})
			return
		}
		respondError(c, logger, err, "Failed to summarize closings")
		return
	}

	c.JSON(http.StatusOK, dto.ToSummaryResponse(summary))
}

// exportClosings godoc
// @Summary Export closings
// @Description Downloads the filtered records and their totals as an xlsx workbook.
// @Tags closings
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date (YYYY-MM-DD)"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Security BearerAuth
// @Router /closings/export [get]
func (h *closingHandler) exportClosings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	r, ok := bindDateRange(c)
	if !ok {
		return
	}

	summary, err := h.summaryService.Summarize(c.Request.Context(), r)
	if err != nil {
		respondError(c, logger, err, "Failed to export closings")
		return
	}

	var buf bytes.Buffer
	if err := export.WriteClosingsXLSX(&buf, *summary); err != nil {
		respondError(c, logger, err, "Failed to export closings")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", export.Filename(r)))
	c.Data(http.StatusOK, export.XLSXContentType, buf.Bytes())
}

// getClosing godoc
// @Summary Get a closing by ID
// @Tags closings
// @Produce json
// @Param closingID path string true "Closing ID"
// @Success 200 {object} dto.ClosingResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Security BearerAuth
// @Router /closings/{closingID} [get]
func (h *closingHandler) getClosing(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	closingID := c.Param("closingID")

	record, err := h.closingService.GetClosingByID(c.Request.Context(), closingID)
	if err != nil {
		respondError(c, logger.With(slog.String("closing_id", closingID)), err, "Failed to retrieve closing")
		return
	}
	c.JSON(http.StatusOK, dto.ToClosingResponse(record))
}

// analyzeClosing godoc
// @Summary Analyze a closing
// @Description Returns the stored narrative, or generates and stores one. Generation failures return a fixed fallback text with status 200 and source "fallback".
// @Tags closings
// @Produce json
// @Param closingID path string true "Closing ID"
// @Success 200 {object} dto.AnalysisResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} map[string]interface{} "generated text that could not be stored"
// @Security BearerAuth
// @Router /closings/{closingID}/analysis [post]
func (h *closingHandler) analyzeClosing(c *gin.Context) {
	closingID := c.Param("closingID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("closing_id", closingID))

	outcome, err := h.analysisService.AnalyzeClosing(c.Request.Context(), closingID)
	if err != nil {
		if errors.Is(err, apperrors.ErrStoreUnavailable) && outcome != nil {
			logger.Error("Analysis generated but not stored", slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error":    "Record store unavailable",
				"analysis": dto.ToAnalysisResponse(outcome),
			})
			return
		}
		respondError(c, logger, err, "Failed to analyze closing")
		return
	}

	logger.Info("Analysis served", slog.String("source", string(outcome.Source)))
	c.JSON(http.StatusOK, dto.ToAnalysisResponse(outcome))
}

func bindDateRange(c *gin.Context) (domain.DateRange, bool) {
	var params dto.ListClosingsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid date range: dates must be YYYY-MM-DD"})
		return domain.DateRange{}, false
	}
	r, err := params.ToDateRange()
	if err == nil {
		err = r.Validate()
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: publicMessage(http.StatusBadRequest, err, "")})
		return domain.DateRange{}, false
	}
	return r, true
}
