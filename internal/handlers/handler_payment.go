package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/quickfunds/loanflow_backend/internal/core/ports/services"
	"github.com/quickfunds/loanflow_backend/internal/dto"
	"github.com/quickfunds/loanflow_backend/internal/middleware"
)

// paymentHandler handles payment option and gateway diagnostic requests.
type paymentHandler struct {
	payments  portssvc.PaymentConfigSvcFacade
	countries portssvc.CountrySvcFacade
}

// newPaymentHandler creates a new paymentHandler.
func newPaymentHandler(ps portssvc.PaymentConfigSvcFacade, cs portssvc.CountrySvcFacade) *paymentHandler {
	return &paymentHandler{
		payments:  ps,
		countries: cs,
	}
}

// registerPaymentRoutes registers the public payment option routes.
func registerPaymentRoutes(rg *gin.RouterGroup, ps portssvc.PaymentConfigSvcFacade, cs portssvc.CountrySvcFacade) {
	h := newPaymentHandler(ps, cs)
	rg.GET("/payment-options", h.paymentOptions)
}

// registerAdminPaymentRoutes registers the admin gateway diagnostics.
func registerAdminPaymentRoutes(rg *gin.RouterGroup, ps portssvc.PaymentConfigSvcFacade, cs portssvc.CountrySvcFacade) {
	h := newPaymentHandler(ps, cs)
	rg.GET("/payment-gateways/status", h.gatewayStatuses)
}

// paymentOptions godoc
// @Summary List payment methods for a billing country
// @Description Returns the payment method categories safe to show a client. The card category is omitted when no gateway is enabled and fully credentialed.
// @Tags payments
// @Produce json
// @Param country query string false "ISO-3166 alpha-3 country code (defaults to USA)"
// @Success 200 {object} dto.PaymentOptionsResponse
// @Failure 500 {object} map[string]string "Internal error"
// @Router /payment-options [get]
func (h *paymentHandler) paymentOptions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	// Unknown codes fall back to the default country.
	country := h.countries.Settings(c.Query("country")).Code

	methods, err := h.payments.AvailableMethods(c.Request.Context(), country)
	if err != nil {
		logger.Error("Failed to resolve payment methods", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payment options"})
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentOptionsResponse(country, methods))
}

// gatewayStatuses godoc
// @Summary Gateway configuration diagnostics
// @Description Returns the enabled/configured/available state of every supported gateway, with the names of missing credential fields. Values are never included.
// @Tags admin
// @Produce json
// @Success 200 {array} dto.GatewayStatusResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal error"
// @Security BearerAuth
// @Router /admin/payment-gateways/status [get]
func (h *paymentHandler) gatewayStatuses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	statuses, err := h.payments.GatewayStatuses(c.Request.Context())
	if err != nil {
		logger.Error("Failed to resolve gateway statuses", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load gateway status"})
		return
	}
	c.JSON(http.StatusOK, dto.ToGatewayStatusResponses(statuses))
}
