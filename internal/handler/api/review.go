package api

import (
	"net/http"

	"staybook/internal/handler/dto/request"
	"staybook/internal/usecase/commands"
	"staybook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviews commands.ReviewCommands
	queries queries.ReviewQueries
}

func NewReviewHandler(reviews commands.ReviewCommands, q queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{reviews: reviews, queries: q}
}

func (h *ReviewHandler) AddReview(c *gin.Context) {
	var req request.AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	rv, err := h.reviews.AddReview(c.Request.Context(), commands.AddReviewParams{
		BookingID: req.BookingID,
		Rating:    *req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rv)
}

func (h *ReviewHandler) GetPropertyReviews(c *gin.Context) {
	var req request.GetPropertyReviewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	list, err := h.queries.ListPropertyReviews(c.Request.Context(), req.PropertyID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": list, "count": len(list)})
}
