package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gabrielbeloni06/zytechhub/internal/services"
)

type DashboardHandler struct {
	Service *services.DashboardService
}

func NewDashboardHandler(service *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{Service: service}
}

// @Summary      KPIs do painel
// @Description  Receita recorrente, clientes ativos, bots conectados e pedidos na caixa de entrada
// @Tags         Dashboard
// @Produce      json
// @Success      200  {object}  services.Summary
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	data, err := h.Service.GetSummary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}
