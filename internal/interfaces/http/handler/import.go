package handler

import (
	"encoding/json"
	"io"

	importerapp "github.com/danstoll/Northpass-PP-sub000/internal/application/importer"
	"github.com/danstoll/Northpass-PP-sub000/internal/domain/bulk"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ImportHandler handles CRM sync batch ingestion and import history
type ImportHandler struct {
	BaseHandler
	importService  *importerapp.ContactImportService
	historyService *importerapp.ImportHistoryService
}

// NewImportHandler creates a new ImportHandler
func NewImportHandler(
	importService *importerapp.ContactImportService,
	historyService *importerapp.ImportHistoryService,
) *ImportHandler {
	return &ImportHandler{
		importService:  importService,
		historyService: historyService,
	}
}

// ContactImportRequest is the envelope for one CRM contact sync batch
type ContactImportRequest struct {
	SourceRef    string          `json:"source_ref" binding:"required,max=255"`
	ConflictMode string          `json:"conflict_mode" binding:"omitempty,oneof=skip update fail"`
	Contacts     json.RawMessage `json:"contacts" binding:"required"`
}

// ImportContacts godoc
// @ID           importContacts
// @Summary      Import a CRM contact batch
// @Description  Ingest one CRM contact sync batch with the chosen conflict mode
// @Tags         imports
// @Accept       json
// @Produce      json
// @Param        request body ContactImportRequest true "Contact import batch"
// @Success      200 {object} APIResponse[importerapp.ContactImportResult]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /imports/contacts [post]
func (h *ImportHandler) ImportContacts(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.BadRequest(c, "Failed to read request body")
		return
	}

	var req ContactImportRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.BadRequest(c, "Invalid JSON payload")
		return
	}
	if req.SourceRef == "" {
		h.BadRequest(c, "source_ref is required")
		return
	}
	if len(req.Contacts) == 0 {
		h.BadRequest(c, "contacts is required")
		return
	}

	mode := bulk.ConflictMode(req.ConflictMode)
	if mode == "" {
		mode = bulk.ConflictModeSkip
	}
	if !mode.IsValid() {
		h.BadRequest(c, "conflict_mode must be one of: skip, update, fail")
		return
	}

	result, err := h.importService.ImportContacts(c.Request.Context(), req.SourceRef, req.Contacts, mode)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// ImportHistoryListFilter carries the query parameters for listing import runs
type ImportHistoryListFilter struct {
	Page       int    `form:"page"`
	PageSize   int    `form:"page_size" binding:"omitempty,max=100"`
	EntityType string `form:"entity_type" binding:"omitempty,oneof=contacts partners"`
	Status     string `form:"status" binding:"omitempty,oneof=pending processing completed failed"`
}

// ListHistory godoc
// @ID           listImportHistory
// @Summary      List import runs
// @Description  Retrieve a paginated list of import runs with optional filtering
// @Tags         imports
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Param        entity_type query string false "Filter by entity type" Enums(contacts, partners)
// @Param        status query string false "Filter by run status" Enums(pending, processing, completed, failed)
// @Success      200 {object} APIResponse[[]bulk.ImportHistory]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /imports/history [get]
func (h *ImportHandler) ListHistory(c *gin.Context) {
	var q ImportHistoryListFilter
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	filter := bulk.ImportHistoryFilter{}
	if q.EntityType != "" {
		et := bulk.ImportEntityType(q.EntityType)
		filter.EntityType = &et
	}
	if q.Status != "" {
		st := bulk.ImportStatus(q.Status)
		filter.Status = &st
	}

	result, err := h.historyService.List(c.Request.Context(), filter, q.Page, q.PageSize)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.TotalCount, result.Page, result.PageSize)
}

// GetHistory godoc
// @ID           getImportHistoryById
// @Summary      Get import run by ID
// @Description  Retrieve one import run by its ID
// @Tags         imports
// @Produce      json
// @Param        id path string true "Import history ID" format(uuid)
// @Success      200 {object} APIResponse[bulk.ImportHistory]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /imports/history/{id} [get]
func (h *ImportHandler) GetHistory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid import history ID format")
		return
	}

	history, err := h.historyService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, history)
}

// LatestHistory godoc
// @ID           getLatestImportHistory
// @Summary      Get the latest contact import run
// @Description  Retrieve the most recent contact import run
// @Tags         imports
// @Produce      json
// @Success      200 {object} APIResponse[bulk.ImportHistory]
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /imports/history/latest [get]
func (h *ImportHandler) LatestHistory(c *gin.Context) {
	history, err := h.historyService.Latest(c.Request.Context(), bulk.ImportEntityContacts)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if history == nil {
		h.NotFound(c, "No import has run yet")
		return
	}
	h.Success(c, history)
}

// RegisterRoutes registers import routes on the given group
func (h *ImportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	imports := rg.Group("/imports")
	imports.POST("/contacts", h.ImportContacts)
	imports.GET("/history", h.ListHistory)
	imports.GET("/history/latest", h.LatestHistory)
	imports.GET("/history/:id", h.GetHistory)
}
