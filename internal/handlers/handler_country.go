package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/quickfunds/loanflow_backend/internal/core/ports/services"
	"github.com/quickfunds/loanflow_backend/internal/dto"
)

// countryHandler serves country formatting metadata.
type countryHandler struct {
	countries portssvc.CountrySvcFacade
}

func newCountryHandler(cs portssvc.CountrySvcFacade) *countryHandler {
	return &countryHandler{countries: cs}
}

// registerCountryRoutes registers the country metadata routes.
func registerCountryRoutes(rg *gin.RouterGroup, cs portssvc.CountrySvcFacade) {
	h := newCountryHandler(cs)
	rg.GET("/countries/:code", h.getCountry)
}

// getCountry godoc
// @Summary Country formatting metadata
// @Description Returns the formatting rules, tax ID label and region subdivisions for a country. Unknown codes fall back to the default country.
// @Tags countries
// @Produce json
// @Param code path string true "ISO-3166 alpha-3 country code"
// @Success 200 {object} dto.CountryResponse
// @Router /countries/{code} [get]
func (h *countryHandler) getCountry(c *gin.Context) {
	settings := h.countries.Settings(c.Param("code"))
	c.JSON(http.StatusOK, dto.ToCountryResponse(settings))
}
