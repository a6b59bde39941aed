package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	portssvc "github.com/wealthsight/wealth_projection_app/internal/core/ports/services"
	"github.com/wealthsight/wealth_projection_app/internal/dto"
	"github.com/wealthsight/wealth_projection_app/internal/middleware"
)

// amortizationHandler handles HTTP requests for loan amortization calculations
type amortizationHandler struct {
	amortizationService portssvc.AmortizationSvcFacade
}

// newAmortizationHandler creates a new amortizationHandler
func newAmortizationHandler(as portssvc.AmortizationSvcFacade) *amortizationHandler {
	return &amortizationHandler{
		amortizationService: as,
	}
}

// registerAmortizationRoutes registers routes related to amortization calculations
func registerAmortizationRoutes(rg *gin.RouterGroup, amortizationService portssvc.AmortizationSvcFacade) {
	h := newAmortizationHandler(amortizationService)

	amortization := rg.Group("/amortization")
	{
		amortization.POST("/payment", h.computePayment)
		amortization.POST("/schedule", h.generateSchedule)
		amortization.POST("/balance", h.currentBalance)
	}
}

// computePayment godoc
// @Summary Compute the periodic payment for a loan
// @Description Computes the fixed monthly payment for a fully amortizing loan and its first-period principal/interest split
// @Tags amortization
// @Accept json
// @Produce json
// @Param loan body dto.ComputePaymentRequest true "Loan principal, rate and term"
// @Success 200 {object} dto.ComputePaymentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to compute payment"
// @Router /amortization/payment [post]
func (h *amortizationHandler) computePayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ComputePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid payment request payload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	payment, err := h.amortizationService.ComputePayment(c.Request.Context(), req.Principal, req.AnnualInterestRate, req.TermMonths)
	if err != nil {
		handleEngineError(c, logger, err, "Failed to compute payment")
		return
	}

	// First-period split against the full principal
	split := h.amortizationService.CurrentPaymentSplit(c.Request.Context(), req.Principal, req.AnnualInterestRate, payment)

	c.JSON(http.StatusOK, dto.ComputePaymentResponse{
		Payment:          payment,
		PrincipalPortion: split.Principal,
		InterestPortion:  split.Interest,
	})
}

// generateSchedule godoc
// @Summary Generate a full amortization schedule
// @Description Generates the payment-by-payment schedule for a loan, one entry per month of the term, terminating at exactly zero balance
// @Tags amortization
// @Accept json
// @Produce json
// @Param loan body dto.LoanTermsRequest true "Loan terms"
// @Success 200 {object} dto.ScheduleResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate schedule"
// @Router /amortization/schedule [post]
func (h *amortizationHandler) generateSchedule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoanTermsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid schedule request payload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	terms, err := req.ToDomain()
	if err != nil {
		logger.Warn("Malformed loan terms", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payment, err := h.amortizationService.ComputePayment(c.Request.Context(), terms.Principal, terms.AnnualInterestRate, terms.TermMonths)
	if err != nil {
		handleEngineError(c, logger, err, "Failed to generate schedule")
		return
	}

	entries, err := h.amortizationService.GenerateSchedule(c.Request.Context(), terms)
	if err != nil {
		handleEngineError(c, logger, err, "Failed to generate schedule")
		return
	}

	logger.Info("Amortization schedule generated", slog.Int("entries", len(entries)))
	c.JSON(http.StatusOK, dto.ToScheduleResponse(payment, entries))
}

// currentBalance godoc
// @Summary Reconstruct a loan's balance as of a date
// @Description Reads today's outstanding balance from the loan's fixed schedule and splits the payment due against it
// @Tags amortization
// @Accept json
// @Produce json
// @Param loan body dto.CurrentBalanceRequest true "Loan terms and as-of date"
// @Success 200 {object} dto.CurrentBalanceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to compute balance"
// @Router /amortization/balance [post]
func (h *amortizationHandler) currentBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CurrentBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid balance request payload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	terms, err := req.ToDomain()
	if err != nil {
		logger.Warn("Malformed loan terms", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	asOf := time.Now()
	if req.AsOf != "" {
		asOf, err = time.Parse("2006-01-02", req.AsOf)
		if err != nil {
			logger.Warn("Invalid asOf date format", slog.String("asOf", req.AsOf))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asOf format. Use YYYY-MM-DD"})
			return
		}
	}

	balance, err := h.amortizationService.CurrentBalance(c.Request.Context(), terms, asOf)
	if err != nil {
		handleEngineError(c, logger, err, "Failed to compute balance")
		return
	}

	payment, err := h.amortizationService.ComputePayment(c.Request.Context(), terms.Principal, terms.AnnualInterestRate, terms.TermMonths)
	if err != nil {
		handleEngineError(c, logger, err, "Failed to compute balance")
		return
	}
	if terms.InterestOnly {
		// Interest-only loans have no amortizing payment; only interest is due.
		payment = h.amortizationService.CurrentPaymentSplit(c.Request.Context(), balance, terms.AnnualInterestRate, payment).Interest
	}

	split := h.amortizationService.CurrentPaymentSplit(c.Request.Context(), balance, terms.AnnualInterestRate, payment)

	c.JSON(http.StatusOK, dto.CurrentBalanceResponse{
		AsOf:             asOf.Format("2006-01-02"),
		Balance:          balance,
		Payment:          payment,
		PrincipalPortion: split.Principal,
		InterestPortion:  split.Interest,
	})
}
