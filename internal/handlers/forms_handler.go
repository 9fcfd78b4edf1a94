package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gabrielbeloni06/zytechhub/internal/services"
)

type FormsHandler struct {
	Service *services.SubmissionService
}

func NewFormsHandler(service *services.SubmissionService) *FormsHandler {
	return &FormsHandler{Service: service}
}

// @Summary      Caixa de entrada de orçamentos
// @Description  Pedidos mais recentes primeiro; periodo = all|today|week|month
// @Tags         Forms
// @Produce      json
// @Param        periodo  query  string  false  "Filtro de período"
// @Success      200  {array}  models.Submission
// @Router       /api/forms [get]
func (h *FormsHandler) List(c *gin.Context) {
	periodo := c.DefaultQuery("periodo", "all")
	subs, err := h.Service.List(periodo)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, subs)
}

// @Summary      Detalhe de um pedido
// @Description  Inclui dados_tecnicos interpretados pela categoria (chatbot/website)
// @Tags         Forms
// @Produce      json
// @Param        id  path  string  true  "ID do pedido"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/forms/{id} [get]
func (h *FormsHandler) Get(c *gin.Context) {
	sub, err := h.Service.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	detalhes, err := services.ParseDetails(sub)
	if err != nil {
		// payload fora das formas conhecidas: devolve cru, sem quebrar a tela
		detalhes = sub.DadosTecnicos
	}
	c.JSON(http.StatusOK, gin.H{
		"pedido":   sub,
		"detalhes": detalhes,
	})
}

// @Summary      Marcar pedido como visto
// @Tags         Forms
// @Param        id  path  string  true  "ID do pedido"
// @Success      204
// @Router       /api/forms/{id}/viewed [post]
func (h *FormsHandler) MarkViewed(c *gin.Context) {
	if err := h.Service.MarkViewed(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary      Receber formulário público de orçamento
// @Description  Endpoint aberto usado pelo site; notifica o ops no Telegram
// @Tags         Forms
// @Accept       json
// @Produce      json
// @Param        pedido  body  services.IntakeRequest  true  "Dados do formulário"
// @Success      201  {object}  models.Submission
// @Router       /public/orcamento [post]
func (h *FormsHandler) Intake(c *gin.Context) {
	var req services.IntakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sub, err := h.Service.Intake(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sub)
}
