package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/wealthsight/wealth_projection_app/internal/core/domain"
)

// registerCustomValidators adds the engine's enum rules to gin's binding validator.
func registerCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	// paymentfrequency accepts any case of WEEKLY/FORTNIGHTLY/MONTHLY/QUARTERLY/ANNUALLY
	_ = v.RegisterValidation("paymentfrequency", func(fl validator.FieldLevel) bool {
		_, err := domain.ParsePaymentFrequency(fl.Field().String())
		return err == nil
	})
}
