package api

import (
	"net/http"

	"staybook/internal/handler/dto/request"
	"staybook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalog queries.CatalogQueries
}

func NewCatalogHandler(catalog queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// SearchProperties filters the catalog by city, dates, guest count,
// property type and nightly price band. All filters are optional; an
// empty body returns the whole catalog.
func (h *CatalogHandler) SearchProperties(c *gin.Context) {
	var req request.SearchPropertiesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	params := queries.SearchParams{}
	if req.City != nil {
		params.City = *req.City
	}
	if req.CheckInDate != nil {
		params.CheckInDate = *req.CheckInDate
	}
	if req.CheckOutDate != nil {
		params.CheckOutDate = *req.CheckOutDate
	}
	if req.Guests != nil {
		params.Guests = *req.Guests
	}
	if req.PropertyType != nil {
		params.PropertyType = *req.PropertyType
	}
	if req.MinPrice != nil {
		params.MinPrice = *req.MinPrice
	}
	if req.MaxPrice != nil {
		params.MaxPrice = *req.MaxPrice
	}

	hits, err := h.catalog.Search(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"properties": hits, "count": len(hits)})
}

func (h *CatalogHandler) GetPropertyDetails(c *gin.Context) {
	var req request.GetPropertyDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	prop, err := h.catalog.GetProperty(c.Request.Context(), req.PropertyID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, prop)
}

func (h *CatalogHandler) ListCities(c *gin.Context) {
	cities, err := h.catalog.ListCities(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cities": cities})
}
