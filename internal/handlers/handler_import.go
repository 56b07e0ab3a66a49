package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/hostalqori/hotel_management_app/internal/adapters/spreadsheet"
	"github.com/hostalqori/hotel_management_app/internal/apperrors"
	portssvc "github.com/hostalqori/hotel_management_app/internal/core/ports/services"
	"github.com/hostalqori/hotel_management_app/internal/dto"
	"github.com/hostalqori/hotel_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// importHandler handles HTTP requests for the legacy stay import engine.
type importHandler struct {
	importService portssvc.ImportSvcFacade
}

func newImportHandler(svc portssvc.ImportSvcFacade) *importHandler {
	return &importHandler{importService: svc}
}

// registerImportRoutes registers the stay import, deletion and analysis routes.
func registerImportRoutes(rg *gin.RouterGroup, svc portssvc.ImportSvcFacade) {
	h := newImportHandler(svc)

	imports := rg.Group("/imports/stays")
	{
		imports.POST("", h.importStays)
		imports.POST("/deletion", h.deleteImportedStays)
		imports.POST("/analysis", h.analyzeImportedStays)
	}
}

// importStays ingests a batch of legacy registry rows, either as JSON rows or
// as a multipart xlsx upload, and returns the batch report.
func (h *importHandler) importStays(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rows, batchNumber, totalBatches, ok := h.bindRows(c)
	if !ok {
		return
	}
	logger.Info("Received stay import request",
		slog.Int("rows", len(rows)),
		slog.Int("batch_number", batchNumber))

	result, err := h.importService.ImportStays(c.Request.Context(), rows, batchNumber, totalBatches)
	if err != nil {
		h.writeServiceError(c, err, "Failed to import stays")
		return
	}
	c.JSON(http.StatusOK, result)
}

// deleteImportedStays removes the records a prior import created from the same
// source rows.
func (h *importHandler) deleteImportedStays(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rows, _, _, ok := h.bindRows(c)
	if !ok {
		return
	}
	logger.Info("Received stay deletion request", slog.Int("rows", len(rows)))

	result, err := h.importService.DeleteImportedStays(c.Request.Context(), rows)
	if err != nil {
		h.writeServiceError(c, err, "Failed to delete imported stays")
		return
	}
	c.JSON(http.StatusOK, result)
}

// analyzeImportedStays partitions rows into imported and missing without
// modifying anything.
func (h *importHandler) analyzeImportedStays(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rows, _, _, ok := h.bindRows(c)
	if !ok {
		return
	}
	logger.Info("Received stay analysis request", slog.Int("rows", len(rows)))

	result, err := h.importService.AnalyzeImportedStays(c.Request.Context(), rows)
	if err != nil {
		h.writeServiceError(c, err, "Failed to analyze imported stays")
		return
	}
	c.JSON(http.StatusOK, result)
}

// bindRows extracts the rows from either a multipart xlsx upload (field
// "file") or a JSON body. It writes the error response itself when binding
// fails.
func (h *importHandler) bindRows(c *gin.Context) (rows []dto.RowRecord, batchNumber, totalBatches int, ok bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			logger.Warn("Missing spreadsheet upload", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'file' upload: " + err.Error()})
			return nil, 0, 0, false
		}
		f, err := fileHeader.Open()
		if err != nil {
			logger.Error("Failed to open uploaded file", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unreadable upload"})
			return nil, 0, 0, false
		}
		defer f.Close()
		payload, err := io.ReadAll(f)
		if err != nil {
			logger.Error("Failed to read uploaded file", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unreadable upload"})
			return nil, 0, 0, false
		}
		rows, err = spreadsheet.ReadRows(payload)
		if err != nil {
			logger.Warn("Failed to parse workbook", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid workbook: " + err.Error()})
			return nil, 0, 0, false
		}
		batchNumber, _ = strconv.Atoi(c.PostForm("batchNumber"))
		totalBatches, _ = strconv.Atoi(c.PostForm("totalBatches"))
		return rows, batchNumber, totalBatches, true
	}

	var req dto.ImportStaysRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for import", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return nil, 0, 0, false
	}
	return req.Rows, req.BatchNumber, req.TotalBatches, true
}

func (h *importHandler) writeServiceError(c *gin.Context, err error, msg string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if errors.Is(err, apperrors.ErrValidation) {
		logger.Warn(msg, slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	logger.Error(msg, slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
