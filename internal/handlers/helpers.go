package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gabrielbeloni06/zytechhub/internal/apperrors"
)

// tolerante a tipos (int / int64 / float64 / string)
func getIntFromCtx(c *gin.Context, key string) (int, bool) {
	v, ok := c.Get(key)
	if !ok {
		return 0, false
	}
	switch t := v.(type) {
	case int:
		return t, true
	case int64:
		return int(t), true
	case float64:
		return int(t), true
	case string:
		if n, err := strconv.Atoi(t); err == nil {
			return n, true
		}
	}
	return 0, false
}

func getUserID(c *gin.Context) int {
	id, _ := getIntFromCtx(c, "user_id")
	return id
}

// respondError traduz os erros sentinela dos serviços pra status HTTP.
func respondError(c *gin.Context, err error) {
	var up *apperrors.ErrUpstream
	switch {
	case errors.Is(err, apperrors.ErrNaoAutenticado):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Faça login novamente"})
	case errors.Is(err, apperrors.ErrNaoEncontrado):
		c.JSON(http.StatusNotFound, gin.H{"error": "registro não encontrado"})
	case errors.Is(err, apperrors.ErrAPIKeyAusente):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "API Key não configurada"})
	case errors.Is(err, apperrors.ErrSemResultados):
		c.JSON(http.StatusNotFound, gin.H{"error": "Nenhum resultado encontrado"})
	case errors.As(err, &up):
		c.JSON(http.StatusBadGateway, gin.H{"error": up.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
