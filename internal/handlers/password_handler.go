package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gabrielbeloni06/zytechhub/internal/services"
)

type PasswordHandler struct {
	Service services.PasswordResetService
}

func NewPasswordHandler(service services.PasswordResetService) *PasswordHandler {
	return &PasswordHandler{Service: service}
}

// @Summary      Pedir redefinição de senha
// @Description  Sempre responde 200 pra não vazar se a conta existe
// @Tags         Auth
// @Accept       json
// @Router       /password/forgot [post]
func (h *PasswordHandler) Forgot(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.RequestReset(req.Email); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Se a conta existir, o email foi enviado"})
}

// @Summary      Redefinir senha com token
// @Tags         Auth
// @Accept       json
// @Router       /password/reset [post]
func (h *PasswordHandler) Reset(c *gin.Context) {
	var req struct {
		Token    string `json:"token" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.ResetPassword(req.Token, req.Password); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Senha atualizada"})
}
