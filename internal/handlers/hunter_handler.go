package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gabrielbeloni06/zytechhub/internal/models"
	"github.com/gabrielbeloni06/zytechhub/internal/services"
)

type HunterHandler struct {
	Hunter *services.HunterService
	Leads  *services.LeadService
}

func NewHunterHandler(hunter *services.HunterService, leads *services.LeadService) *HunterHandler {
	return &HunterHandler{Hunter: hunter, Leads: leads}
}

type hunterSearchRequest struct {
	Termo  string `json:"termo"`
	Cidade string `json:"cidade"`
}

// @Summary      Buscar leads no places
// @Description  Busca "{termo} em {cidade}" e devolve candidatos com telefone normalizado, celulares primeiro
// @Tags         Hunter
// @Accept       json
// @Produce      json
// @Param        busca  body      hunterSearchRequest  true  "Termo e cidade"
// @Success      200    {object}  map[string]interface{}
// @Failure      404    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /api/hunter [post]
func (h *HunterHandler) Search(c *gin.Context) {
	var req hunterSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	leads, err := h.Hunter.Search(c.Request.Context(), req.Termo, req.Cidade)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"leads": leads})
}

// @Summary      Salvar um lead da busca
// @Tags         Hunter
// @Accept       json
// @Produce      json
// @Param        lead  body  models.LeadResult  true  "Lead da busca"
// @Success      201   {object}  models.Lead
// @Router       /api/hunter/save [post]
func (h *HunterHandler) Save(c *gin.Context) {
	var req models.LeadResult
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lead, err := h.Leads.SaveOne(getUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, lead)
}

type bulkSaveRequest struct {
	Leads []models.LeadResult `json:"leads" binding:"required"`
}

// @Summary      Salvar leads selecionados em lote
// @Description  Um único INSERT multi-linha; marca como salvos só os enviados
// @Tags         Hunter
// @Accept       json
// @Produce      json
// @Param        leads  body  bulkSaveRequest  true  "Subconjunto selecionado"
// @Success      201    {object}  map[string]interface{}
// @Router       /api/hunter/save-bulk [post]
func (h *HunterHandler) SaveBulk(c *gin.Context) {
	var req bulkSaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := getUserID(c)
	marcados, err := h.Leads.SaveBulk(userID, req.Leads)
	if err != nil {
		respondError(c, err)
		return
	}

	// recarrega os persistidos depois do lote confirmar
	salvos, err := h.Leads.List(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"leads":  marcados,
		"salvos": salvos,
	})
}
