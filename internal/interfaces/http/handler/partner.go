package handler

import (
	partnerapp "github.com/danstoll/Northpass-PP-sub000/internal/application/partner"
	"github.com/danstoll/Northpass-PP-sub000/internal/domain/shared"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PartnerHandler handles partner organization endpoints
type PartnerHandler struct {
	BaseHandler
	partnerService *partnerapp.PartnerService
}

// NewPartnerHandler creates a new PartnerHandler
func NewPartnerHandler(partnerService *partnerapp.PartnerService) *PartnerHandler {
	return &PartnerHandler{
		partnerService: partnerService,
	}
}

// PartnerListFilter carries the query parameters for listing partners
type PartnerListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size" binding:"omitempty,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
	Search   string `form:"search"`
	Tier     string `form:"tier"`
	Region   string `form:"region"`
	Active   *bool  `form:"active"`
}

func (f *PartnerListFilter) toFilter() shared.Filter {
	filter := shared.Filter{
		Page:     f.Page,
		PageSize: f.PageSize,
		OrderBy:  f.OrderBy,
		OrderDir: f.OrderDir,
		Search:   f.Search,
		Filters:  make(map[string]interface{}),
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if f.Tier != "" {
		filter.Filters["tier"] = f.Tier
	}
	if f.Region != "" {
		filter.Filters["region"] = f.Region
	}
	if f.Active != nil {
		filter.Filters["active"] = *f.Active
	}
	return filter
}

// Create godoc
// @ID           createPartner
// @Summary      Create a new partner
// @Description  Create a new partner organization
// @Tags         partners
// @Accept       json
// @Produce      json
// @Param        request body partnerapp.CreatePartnerRequest true "Partner creation request"
// @Success      201 {object} APIResponse[partnerapp.PartnerResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /partners [post]
func (h *PartnerHandler) Create(c *gin.Context) {
	var req partnerapp.CreatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	p, err := h.partnerService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, p)
}

// GetByID godoc
// @ID           getPartnerById
// @Summary      Get partner by ID
// @Description  Retrieve a partner organization by its ID
// @Tags         partners
// @Produce      json
// @Param        id path string true "Partner ID" format(uuid)
// @Success      200 {object} APIResponse[partnerapp.PartnerResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /partners/{id} [get]
func (h *PartnerHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid partner ID format")
		return
	}

	p, err := h.partnerService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, p)
}

// List godoc
// @ID           listPartners
// @Summary      List partners
// @Description  Retrieve a paginated list of partner organizations with optional filtering
// @Tags         partners
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Param        search query string false "Search by account name"
// @Param        tier query string false "Filter by tier"
// @Param        region query string false "Filter by region"
// @Param        active query bool false "Filter by active state"
// @Success      200 {object} APIResponse[[]partnerapp.PartnerResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /partners [get]
func (h *PartnerHandler) List(c *gin.Context) {
	var filter PartnerListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	page, err := h.partnerService.List(c.Request.Context(), filter.toFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Update godoc
// @ID           updatePartner
// @Summary      Update a partner
// @Description  Change a partner's tier, region or active flag
// @Tags         partners
// @Accept       json
// @Produce      json
// @Param        id path string true "Partner ID" format(uuid)
// @Param        request body partnerapp.UpdatePartnerRequest true "Partner update request"
// @Success      200 {object} APIResponse[partnerapp.PartnerResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /partners/{id} [put]
func (h *PartnerHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid partner ID format")
		return
	}

	var req partnerapp.UpdatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	p, err := h.partnerService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, p)
}

// RegisterRoutes registers partner routes on the given group
func (h *PartnerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	partners := rg.Group("/partners")
	partners.POST("", h.Create)
	partners.GET("", h.List)
	partners.GET("/:id", h.GetByID)
	partners.PUT("/:id", h.Update)
}
