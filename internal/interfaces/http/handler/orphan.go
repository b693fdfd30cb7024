package handler

import (
	partnerapp "github.com/danstoll/Northpass-PP-sub000/internal/application/partner"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OrphanHandler handles orphan dismissal endpoints. Orphans themselves are
// reported by the analysis endpoint; this handler only manages the operator
// decisions about them.
type OrphanHandler struct {
	BaseHandler
	orphanService *partnerapp.OrphanService
}

// NewOrphanHandler creates a new OrphanHandler
func NewOrphanHandler(orphanService *partnerapp.OrphanService) *OrphanHandler {
	return &OrphanHandler{
		orphanService: orphanService,
	}
}

// DismissOrphanRequest is the request to dismiss an orphan pairing
type DismissOrphanRequest struct {
	LmsUserID string    `json:"lms_user_id" binding:"required"`
	PartnerID uuid.UUID `json:"partner_id" binding:"required"`
	Reason    string    `json:"reason" binding:"required,max=500"`
}

// RestoreOrphanRequest is the request to restore a dismissed orphan pairing
type RestoreOrphanRequest struct {
	LmsUserID string    `json:"lms_user_id" binding:"required"`
	PartnerID uuid.UUID `json:"partner_id" binding:"required"`
}

// ListDismissals godoc
// @ID           listOrphanDismissals
// @Summary      List orphan dismissals
// @Description  Retrieve every recorded orphan dismissal
// @Tags         orphans
// @Produce      json
// @Success      200 {object} APIResponse[[]partnerapp.DismissalResponse]
// @Failure      500 {object} ErrorResponse
// @Router       /orphans/dismissals [get]
func (h *OrphanHandler) ListDismissals(c *gin.Context) {
	dismissals, err := h.orphanService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dismissals)
}

// Dismiss godoc
// @ID           dismissOrphan
// @Summary      Dismiss an orphan pairing
// @Description  Record that an orphan pairing should stop being reported by analysis
// @Tags         orphans
// @Accept       json
// @Produce      json
// @Param        request body DismissOrphanRequest true "Orphan dismissal request"
// @Success      201 {object} APIResponse[partnerapp.DismissalResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /orphans/dismissals [post]
func (h *OrphanHandler) Dismiss(c *gin.Context) {
	var req DismissOrphanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	dismissal, err := h.orphanService.Dismiss(c.Request.Context(), req.LmsUserID, req.PartnerID, req.Reason)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, dismissal)
}

// Restore godoc
// @ID           restoreOrphan
// @Summary      Restore a dismissed orphan pairing
// @Description  Remove a dismissal so the pairing is reported again
// @Tags         orphans
// @Accept       json
// @Produce      json
// @Param        request body RestoreOrphanRequest true "Orphan restore request"
// @Success      204 "No Content"
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /orphans/restore [post]
func (h *OrphanHandler) Restore(c *gin.Context) {
	var req RestoreOrphanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.orphanService.Restore(c.Request.Context(), req.LmsUserID, req.PartnerID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// RegisterRoutes registers orphan routes on the given group
func (h *OrphanHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orphans := rg.Group("/orphans")
	orphans.GET("/dismissals", h.ListDismissals)
	orphans.POST("/dismissals", h.Dismiss)
	orphans.POST("/restore", h.Restore)
}
