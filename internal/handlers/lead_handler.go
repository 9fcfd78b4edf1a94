package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gabrielbeloni06/zytechhub/internal/pdf"
	"github.com/gabrielbeloni06/zytechhub/internal/services"
)

type LeadHandler struct {
	Service   *services.LeadService
	Templates *services.TemplateService
	PDF       pdf.Generator
	Users     services.UserService
}

func NewLeadHandler(service *services.LeadService, templates *services.TemplateService, gen pdf.Generator, users services.UserService) *LeadHandler {
	return &LeadHandler{Service: service, Templates: templates, PDF: gen, Users: users}
}

// @Summary      Listar leads salvos
// @Description  Todos os leads do usuário, mais recentes primeiro, sem paginação
// @Tags         Leads
// @Produce      json
// @Success      200  {array}  models.Lead
// @Router       /api/leads [get]
func (h *LeadHandler) List(c *gin.Context) {
	leads, err := h.Service.List(getUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, leads)
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

// @Summary      Alternar status do lead
// @Tags         Leads
// @Accept       json
// @Produce      json
// @Param        id      path  int            true  "ID do lead"
// @Param        status  body  statusRequest  true  "new ou contacted"
// @Success      200  {object}  models.Lead
// @Router       /api/leads/{id}/status [post]
func (h *LeadHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lead, err := h.Service.UpdateStatus(getUserID(c), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lead)
}

// @Summary      Apagar lead
// @Tags         Leads
// @Param        id  path  int  true  "ID do lead"
// @Success      204
// @Router       /api/leads/{id} [delete]
func (h *LeadHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.Service.Delete(getUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type contactRequest struct {
	TemplateID int `json:"template_id" binding:"required"`
}

// @Summary      Contatar lead via WhatsApp
// @Description  Renderiza o template, marca contacted e devolve o deep link wa.me
// @Tags         Leads
// @Accept       json
// @Produce      json
// @Param        id       path  int             true  "ID do lead"
// @Param        contato  body  contactRequest  true  "Template escolhido"
// @Success      200  {object}  services.ContactResult
// @Router       /api/leads/{id}/contact [post]
func (h *LeadHandler) Contact(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.Templates.Contact(getUserID(c), id, req.TemplateID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary      Exportar leads em PDF
// @Tags         Leads
// @Produce      application/pdf
// @Router       /api/leads/export/pdf [get]
func (h *LeadHandler) ExportPDF(c *gin.Context) {
	userID := getUserID(c)
	leads, err := h.Service.List(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	nome := "Zytech Hub"
	if u, err := h.Users.GetUserByID(userID); err == nil && u != nil {
		nome = u.Nome
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `attachment; filename="leads.pdf"`)
	if err := h.PDF.LeadsReport(c.Writer, nome, leads); err != nil {
		respondError(c, err)
		return
	}
}
