package handler

import (
	partnerapp "github.com/danstoll/Northpass-PP-sub000/internal/application/partner"
	"github.com/danstoll/Northpass-PP-sub000/internal/domain/shared"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContactHandler handles CRM contact endpoints
type ContactHandler struct {
	BaseHandler
	contactService *partnerapp.ContactService
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(contactService *partnerapp.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

// ContactListFilter carries the query parameters for listing contacts
type ContactListFilter struct {
	Page      int    `form:"page"`
	PageSize  int    `form:"page_size" binding:"omitempty,max=100"`
	OrderBy   string `form:"order_by"`
	OrderDir  string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
	Search    string `form:"search"`
	AccountID string `form:"account_id"`
	Tier      string `form:"tier"`
	Region    string `form:"region"`
	Active    *bool  `form:"active"`
}

func (f *ContactListFilter) toFilter() shared.Filter {
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
	if f.AccountID != "" {
		filter.Filters["account_id"] = f.AccountID
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
// @ID           createContact
// @Summary      Create a new contact
// @Description  Create a new CRM contact
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        request body partnerapp.CreateContactRequest true "Contact creation request"
// @Success      201 {object} APIResponse[partnerapp.ContactResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /contacts [post]
func (h *ContactHandler) Create(c *gin.Context) {
	var req partnerapp.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	contact, err := h.contactService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, contact)
}

// GetByID godoc
// @ID           getContactById
// @Summary      Get contact by ID
// @Description  Retrieve a contact by its ID
// @Tags         contacts
// @Produce      json
// @Param        id path string true "Contact ID" format(uuid)
// @Success      200 {object} APIResponse[partnerapp.ContactResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /contacts/{id} [get]
func (h *ContactHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid contact ID format")
		return
	}

	contact, err := h.contactService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, contact)
}

// List godoc
// @ID           listContacts
// @Summary      List contacts
// @Description  Retrieve a paginated list of contacts with optional filtering
// @Tags         contacts
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Param        search query string false "Search by name or email"
// @Param        account_id query string false "Filter by partner account ID"
// @Param        tier query string false "Filter by partner tier"
// @Param        region query string false "Filter by region"
// @Param        active query bool false "Filter by active state"
// @Success      200 {object} APIResponse[[]partnerapp.ContactResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /contacts [get]
func (h *ContactHandler) List(c *gin.Context) {
	var filter ContactListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	page, err := h.contactService.List(c.Request.Context(), filter.toFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Update godoc
// @ID           updateContact
// @Summary      Update a contact
// @Description  Update a contact's CRM fields
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        id path string true "Contact ID" format(uuid)
// @Param        request body partnerapp.UpdateContactRequest true "Contact update request"
// @Success      200 {object} APIResponse[partnerapp.ContactResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /contacts/{id} [put]
func (h *ContactHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid contact ID format")
		return
	}

	var req partnerapp.UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	contact, err := h.contactService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, contact)
}

// Deactivate godoc
// @ID           deactivateContact
// @Summary      Deactivate a contact
// @Description  Mark a contact inactive without deleting it
// @Tags         contacts
// @Produce      json
// @Param        id path string true "Contact ID" format(uuid)
// @Success      204 "No Content"
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /contacts/{id}/deactivate [post]
func (h *ContactHandler) Deactivate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid contact ID format")
		return
	}

	if err := h.contactService.Deactivate(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Delete godoc
// @ID           deleteContact
// @Summary      Delete a contact
// @Description  Remove a contact permanently
// @Tags         contacts
// @Produce      json
// @Param        id path string true "Contact ID" format(uuid)
// @Success      204 "No Content"
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /contacts/{id} [delete]
func (h *ContactHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid contact ID format")
		return
	}

	if err := h.contactService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// RegisterRoutes registers contact routes on the given group
func (h *ContactHandler) RegisterRoutes(rg *gin.RouterGroup) {
	contacts := rg.Group("/contacts")
	contacts.POST("", h.Create)
	contacts.GET("", h.List)
	contacts.GET("/:id", h.GetByID)
	contacts.PUT("/:id", h.Update)
	contacts.POST("/:id/deactivate", h.Deactivate)
	contacts.DELETE("/:id", h.Delete)
}
