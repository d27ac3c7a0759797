package api

import (
	"net/http"

	"staybook/internal/handler/dto/request"
	"staybook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	users queries.UserQueries
}

func NewUserHandler(users queries.UserQueries) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) GetUserProfile(c *gin.Context) {
	var req request.GetUserProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	usr, err := h.users.GetUser(c.Request.Context(), req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, usr)
}
