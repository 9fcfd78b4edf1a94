package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gabrielbeloni06/zytechhub/internal/services"
)

type UserHandler struct {
	Service services.UserService
}

func NewUserHandler(service services.UserService) *UserHandler {
	return &UserHandler{Service: service}
}

// @Summary      Listar usuários (admin)
// @Tags         Users
// @Produce      json
// @Success      200  {array}  models.User
// @Router       /api/users [get]
func (h *UserHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "100"))
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 100
	}

	users, err := h.Service.ListUsers(size, (page-1)*size)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// @Summary      Perfil do usuário logado
// @Tags         Users
// @Produce      json
// @Success      200  {object}  models.User
// @Router       /api/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	user, err := h.Service.GetUserByID(getUserID(c))
	if err != nil || user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "usuário não encontrado"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// @Summary      Remover usuário (admin)
// @Tags         Users
// @Param        id  path  int  true  "ID do usuário"
// @Success      204
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.Service.DeleteUser(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
