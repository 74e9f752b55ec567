package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"

	"github.com/quickfunds/loanflow_backend/internal/apperrors"
	portssvc "github.com/quickfunds/loanflow_backend/internal/core/ports/services"
	"github.com/quickfunds/loanflow_backend/internal/dto"
	"github.com/quickfunds/loanflow_backend/internal/middleware"
)

// referenceNumberPattern matches the public 6-digit reference format;
// anything else is rejected without a database round trip.
var referenceNumberPattern = regexp.MustCompile(`^\d{6}$`)

// applicationHandler handles HTTP requests for the two-step application
// wizard.
type applicationHandler struct {
	wizard      portssvc.WizardSvcFacade
	submissions portssvc.SubmissionSvcFacade
}

// newApplicationHandler creates a new applicationHandler.
func newApplicationHandler(ws portssvc.WizardSvcFacade, ss portssvc.SubmissionSvcFacade) *applicationHandler {
	return &applicationHandler{
		wizard:      ws,
		submissions: ss,
	}
}

// registerApplicationRoutes registers all wizard-related routes.
func registerApplicationRoutes(rg *gin.RouterGroup, ws portssvc.WizardSvcFacade, ss portssvc.SubmissionSvcFacade) {
	h := newApplicationHandler(ws, ss)

	app := rg.Group("/application")
	{
		app.GET("/step1", h.beginStep1)
		app.POST("/step1", h.submitStep1)
		app.GET("/step2", h.beginStep2)
		app.POST("/step2", h.submitStep2)
		app.POST("/back", h.stepBack)
		app.GET("/success/:referenceNumber", h.successView)
	}
}

// sessionIDOrAbort pulls the browsing session ID placed by the session
// middleware, aborting with 500 when it is missing.
func sessionIDOrAbort(c *gin.Context) (string, bool) {
	sessionID, ok := middleware.GetSessionIDFromCtx(c.Request.Context())
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Session ID not found in context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return "", false
	}
	return sessionID, true
}

// beginStep1 godoc
// @Summary Begin wizard step 1
// @Description Returns the step-1 form bootstrap: country formatting metadata, a fresh anti-forgery token and any previously saved values.
// @Tags application
// @Produce json
// @Param country query string false "ISO-3166 alpha-3 country code (defaults to USA)"
// @Success 200 {object} dto.Step1View
// @Failure 500 {object} map[string]string "Internal error"
// @Router /application/step1 [get]
func (h *applicationHandler) beginStep1(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sessionID, ok := sessionIDOrAbort(c)
	if !ok {
		return
	}

	view, err := h.wizard.BeginStep1(c.Request.Context(), sessionID, c.Query("country"))
	if err != nil {
		logger.Error("Failed to begin step 1", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load application form"})
		return
	}
	c.JSON(http.StatusOK, view)
}

// submitStep1 godoc
// @Summary Submit wizard step 1
// @Description Validates the personal, address and loan fields. On success the draft is saved and the wizard advances to step 2.
// @Tags application
// @Accept json
// @Produce json
// @Param form body dto.Step1Request true "Step-1 form fields"
// @Success 200 {object} map[string]string "Step accepted"
// @Failure 400 {object} dto.ViolationsResponse "Validation failed, step 1 is re-entered"
// @Failure 500 {object} map[string]string "Internal error"
// @Router /application/step1 [post]
func (h *applicationHandler) submitStep1(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sessionID, ok := sessionIDOrAbort(c)
	if !ok {
		return
	}

	var req dto.Step1Request
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for step 1", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	violations, err := h.wizard.SubmitStep1(c.Request.Context(), sessionID, req)
	if err != nil {
		logger.Error("Failed to process step 1", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process application step"})
		return
	}
	if len(violations) > 0 {
		c.JSON(http.StatusBadRequest, dto.ViolationsResponse{Errors: violations})
		return
	}
	c.JSON(http.StatusOK, gin.H{"next": "step2"})
}

// beginStep2 godoc
// @Summary Begin wizard step 2
// @Description Returns the step-2 form bootstrap: the saved draft, a fresh anti-forgery token, side-channel recall values and the verification challenge when required.
// @Tags application
// @Produce json
// @Success 200 {object} dto.Step2View
// @Failure 409 {object} map[string]interface{} "Step-1 data missing, wizard restarts"
// @Failure 500 {object} map[string]string "Internal error"
// @Router /application/step2 [get]
func (h *applicationHandler) beginStep2(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sessionID, ok := sessionIDOrAbort(c)
	if !ok {
		return
	}

	view, err := h.wizard.BeginStep2(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrStateRestart) {
			c.JSON(http.StatusConflict, gin.H{"error": "Your session expired, please start over.", "restart": true})
			return
		}
		logger.Error("Failed to begin step 2", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load application form"})
		return
	}
	c.JSON(http.StatusOK, view)
}

// submitStep2 godoc
// @Summary Submit wizard step 2 and finalize
// @Description Validates the financial fields, consents and verification challenge, then finalizes the application with a unique reference number.
// @Tags application
// @Accept json
// @Produce json
// @Param form body dto.Step2Request true "Step-2 form fields"
// @Success 201 {object} dto.SubmissionResponse
// @Failure 400 {object} dto.ViolationsResponse "Validation failed, step 2 is re-entered"
// @Failure 409 {object} map[string]interface{} "Step-1 data missing, wizard restarts"
// @Failure 500 {object} map[string]string "Finalization failed, data retained for retry"
// @Router /application/step2 [post]
func (h *applicationHandler) submitStep2(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sessionID, ok := sessionIDOrAbort(c)
	if !ok {
		return
	}

	var req dto.Step2Request
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for step 2", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	app, violations, err := h.wizard.SubmitStep2(c.Request.Context(), sessionID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrStateRestart) {
			c.JSON(http.StatusConflict, gin.H{"error": "Your session expired, please start over.", "restart": true})
			return
		}
		logger.Error("Failed to finalize application", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "We could not submit your application. Please try again."})
		return
	}
	if len(violations) > 0 {
		c.JSON(http.StatusBadRequest, dto.ViolationsResponse{Errors: violations})
		return
	}

	logger.Info("Application finalized", slog.String("reference_number", app.ReferenceNumber))
	c.JSON(http.StatusCreated, dto.ToSubmissionResponse(app))
}

// stepBack godoc
// @Summary Go back from step 2 to step 1
// @Description Preserves the non-sensitive step-2 values in a side channel so they can be re-filled when the applicant returns.
// @Tags application
// @Accept json
// @Produce json
// @Param form body dto.StepBackRequest true "Step-2 values to preserve"
// @Success 200 {object} map[string]string "Values preserved"
// @Failure 500 {object} map[string]string "Internal error"
// @Router /application/back [post]
func (h *applicationHandler) stepBack(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sessionID, ok := sessionIDOrAbort(c)
	if !ok {
		return
	}

	var req dto.StepBackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for step back", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.wizard.SaveStep2Recall(c.Request.Context(), sessionID, req.ToRecall()); err != nil {
		logger.Error("Failed to save step-2 recall", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to preserve entered values"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"next": "step1"})
}

// successView godoc
// @Summary Confirmation page lookup
// @Description Returns the confirmation details for a submitted application by its reference number.
// @Tags application
// @Produce json
// @Param referenceNumber path string true "Application reference number"
// @Success 200 {object} dto.SuccessViewResponse
// @Failure 404 {object} map[string]string "Unknown reference number"
// @Failure 500 {object} map[string]string "Internal error"
// @Router /application/success/{referenceNumber} [get]
func (h *applicationHandler) successView(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ref := c.Param("referenceNumber")
	if !referenceNumberPattern.MatchString(ref) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}

	app, err := h.submissions.LookupByReference(c.Request.Context(), ref)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
			return
		}
		logger.Error("Failed to look up application", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load application"})
		return
	}
	c.JSON(http.StatusOK, dto.ToSuccessViewResponse(app))
}
