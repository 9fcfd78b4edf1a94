package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gabrielbeloni06/zytechhub/internal/services"
)

type TemplateHandler struct {
	Service *services.TemplateService
}

func NewTemplateHandler(service *services.TemplateService) *TemplateHandler {
	return &TemplateHandler{Service: service}
}

type templateRequest struct {
	Titulo string `json:"titulo" binding:"required"`
	Corpo  string `json:"corpo" binding:"required"`
}

// @Summary      Criar template de mensagem
// @Tags         Templates
// @Accept       json
// @Produce      json
// @Param        template  body  templateRequest  true  "Título e corpo (aceita {nome})"
// @Success      201  {object}  models.Template
// @Router       /api/templates [post]
func (h *TemplateHandler) Create(c *gin.Context) {
	var req templateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	t, err := h.Service.Create(getUserID(c), req.Titulo, req.Corpo)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// @Summary      Listar templates do usuário
// @Tags         Templates
// @Produce      json
// @Success      200  {array}  models.Template
// @Router       /api/templates [get]
func (h *TemplateHandler) List(c *gin.Context) {
	templates, err := h.Service.List(getUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, templates)
}

// @Summary      Apagar template
// @Tags         Templates
// @Param        id  path  int  true  "ID do template"
// @Success      204
// @Router       /api/templates/{id} [delete]
func (h *TemplateHandler) Delete(c *gin.Context) {
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
