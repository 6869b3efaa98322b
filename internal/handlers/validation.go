package handlers

import (
	"sync"

	"github.com/SscSPs/wealth_tracker/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators adds the decimal, currency and isodate tags to gin's validator.
// It is safe to call more than once.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("decimal", validateDecimal)
		_ = v.RegisterValidation("currency", validateCurrency)
		_ = v.RegisterValidation("isodate", validateISODate)
	})
}

func validateDecimal(fl validator.FieldLevel) bool {
	_, err := domain.ParseDecimal(fl.Field().String())
	return err == nil
}

func validateCurrency(fl validator.FieldLevel) bool {
	_, err := domain.ParseCurrency(fl.Field().String())
	return err == nil
}

func validateISODate(fl validator.FieldLevel) bool {
	_, err := domain.ParseDate(fl.Field().String())
	return err == nil
}
