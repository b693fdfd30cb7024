package handler

import (
	"strconv"

	reconcileapp "github.com/danstoll/Northpass-PP-sub000/internal/application/reconcile"
	"github.com/gin-gonic/gin"
)

// ReconcileHandler exposes the analysis and sync flows. Analysis is read-only;
// every sync endpoint mutates the LMS and is guarded by the executor's run
// lock, so a second request while one is running gets a 409.
type ReconcileHandler struct {
	BaseHandler
	analysisService *reconcileapp.AnalysisService
	syncService     *reconcileapp.SyncService
}

// NewReconcileHandler creates a new ReconcileHandler
func NewReconcileHandler(
	analysisService *reconcileapp.AnalysisService,
	syncService *reconcileapp.SyncService,
) *ReconcileHandler {
	return &ReconcileHandler{
		analysisService: analysisService,
		syncService:     syncService,
	}
}

// refreshParam reads the optional ?refresh= query flag
func refreshParam(c *gin.Context) bool {
	refresh, _ := strconv.ParseBool(c.DefaultQuery("refresh", "false"))
	return refresh
}

// Analyze godoc
// @ID           analyzeReconciliation
// @Summary      Run a reconciliation analysis
// @Description  Classify every CRM/LMS discrepancy and return the buckets without mutating anything
// @Tags         reconcile
// @Produce      json
// @Param        refresh query bool false "Bypass the cached LMS snapshot" default(false)
// @Success      200 {object} APIResponse[reconcileapp.AnalysisResponse]
// @Failure      502 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /reconcile/analysis [get]
func (h *ReconcileHandler) Analyze(c *gin.Context) {
	result, err := h.analysisService.Analyze(c.Request.Context(), refreshParam(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// RefreshSnapshot godoc
// @ID           refreshLmsSnapshot
// @Summary      Refresh the LMS snapshot
// @Description  Drop the cached LMS snapshot and fetch a fresh one
// @Tags         reconcile
// @Produce      json
// @Success      200 {object} APIResponse[map[string]interface{}]
// @Failure      502 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /reconcile/snapshot/refresh [post]
func (h *ReconcileHandler) RefreshSnapshot(c *gin.Context) {
	snapshot, err := h.analysisService.RefreshSnapshot(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{
		"users":      len(snapshot.Users),
		"groups":     len(snapshot.Groups),
		"fetched_at": snapshot.FetchedAt,
	})
}

// RefreshDomains godoc
// @ID           refreshPartnerDomains
// @Summary      Refresh partner domains
// @Description  Re-derive every partner's domain set from current contacts and persist it
// @Tags         reconcile
// @Produce      json
// @Success      200 {object} APIResponse[CountData]
// @Failure      500 {object} ErrorResponse
// @Router       /reconcile/domains/refresh [post]
func (h *ReconcileHandler) RefreshDomains(c *gin.Context) {
	updated, err := h.analysisService.RefreshPartnerDomains(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, CountData{Count: updated})
}

// Onboard godoc
// @ID           syncOnboard
// @Summary      Onboard missing users
// @Description  Create missing LMS users and assign their partner and global groups
// @Tags         reconcile
// @Produce      json
// @Param        refresh query bool false "Bypass the cached LMS snapshot" default(false)
// @Success      200 {object} APIResponse[reconcileapp.OnboardResult]
// @Failure      409 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /reconcile/sync/onboard [post]
func (h *ReconcileHandler) Onboard(c *gin.Context) {
	result, err := h.syncService.OnboardMissingUsers(c.Request.Context(), refreshParam(c), nil)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// SyncPartnerGroups godoc
// @ID           syncPartnerGroups
// @Summary      Sync partner group membership
// @Description  Add existing LMS users to the partner groups they are missing from
// @Tags         reconcile
// @Produce      json
// @Param        refresh query bool false "Bypass the cached LMS snapshot" default(false)
// @Success      200 {object} APIResponse[reconcileapp.GroupAddResult]
// @Failure      409 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /reconcile/sync/partner-groups [post]
func (h *ReconcileHandler) SyncPartnerGroups(c *gin.Context) {
	result, err := h.syncService.SyncPartnerGroups(c.Request.Context(), refreshParam(c), nil)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// SyncGlobalGroup godoc
// @ID           syncGlobalGroup
// @Summary      Sync global group membership
// @Description  Add existing LMS users to the global partner group they are missing from
// @Tags         reconcile
// @Produce      json
// @Param        refresh query bool false "Bypass the cached LMS snapshot" default(false)
// @Success      200 {object} APIResponse[reconcileapp.GroupAddResult]
// @Failure      409 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /reconcile/sync/global-group [post]
func (h *ReconcileHandler) SyncGlobalGroup(c *gin.Context) {
	result, err := h.syncService.SyncGlobalGroup(c.Request.Context(), refreshParam(c), nil)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// RemoveOffboarded godoc
// @ID           syncRemovals
// @Summary      Remove offboarded users from the global group
// @Description  Remove offboard candidates from the global partner group
// @Tags         reconcile
// @Produce      json
// @Param        refresh query bool false "Bypass the cached LMS snapshot" default(false)
// @Success      200 {object} APIResponse[reconcileapp.RemovalResult]
// @Failure      409 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /reconcile/sync/removals [post]
func (h *ReconcileHandler) RemoveOffboarded(c *gin.Context) {
	result, err := h.syncService.RemoveOffboarded(c.Request.Context(), refreshParam(c), nil)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// DeactivateOffboarded godoc
// @ID           syncDeactivations
// @Summary      Deactivate offboarded users
// @Description  Deactivate offboard candidates' LMS accounts
// @Tags         reconcile
// @Produce      json
// @Param        refresh query bool false "Bypass the cached LMS snapshot" default(false)
// @Success      200 {object} APIResponse[reconcileapp.DeactivationResult]
// @Failure      409 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /reconcile/sync/deactivations [post]
func (h *ReconcileHandler) DeactivateOffboarded(c *gin.Context) {
	result, err := h.syncService.DeactivateOffboarded(c.Request.Context(), refreshParam(c), nil)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// AdoptOrphans godoc
// @ID           syncAdoptions
// @Summary      Adopt orphaned LMS users
// @Description  Create a CRM contact for every orphan matched to a partner by domain
// @Tags         reconcile
// @Produce      json
// @Param        refresh query bool false "Bypass the cached LMS snapshot" default(false)
// @Success      200 {object} APIResponse[reconcileapp.AdoptionResult]
// @Failure      409 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /reconcile/sync/adoptions [post]
func (h *ReconcileHandler) AdoptOrphans(c *gin.Context) {
	result, err := h.syncService.AdoptOrphans(c.Request.Context(), refreshParam(c), nil)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// CreateGroups godoc
// @ID           syncCreateGroups
// @Summary      Create missing partner groups
// @Description  Create the partner groups that have contacts but no LMS group yet
// @Tags         reconcile
// @Produce      json
// @Param        refresh query bool false "Bypass the cached LMS snapshot" default(false)
// @Success      200 {object} APIResponse[reconcileapp.GroupCreateResult]
// @Failure      409 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /reconcile/sync/groups [post]
func (h *ReconcileHandler) CreateGroups(c *gin.Context) {
	result, err := h.syncService.CreateMissingGroups(c.Request.Context(), refreshParam(c), nil)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// RegisterRoutes registers reconcile routes on the given group
func (h *ReconcileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rec := rg.Group("/reconcile")
	rec.GET("/analysis", h.Analyze)
	rec.POST("/snapshot/refresh", h.RefreshSnapshot)
	rec.POST("/domains/refresh", h.RefreshDomains)

	sync := rec.Group("/sync")
	sync.POST("/onboard", h.Onboard)
	sync.POST("/partner-groups", h.SyncPartnerGroups)
	sync.POST("/global-group", h.SyncGlobalGroup)
	sync.POST("/removals", h.RemoveOffboarded)
	sync.POST("/deactivations", h.DeactivateOffboarded)
	sync.POST("/adoptions", h.AdoptOrphans)
	sync.POST("/groups", h.CreateGroups)
}
