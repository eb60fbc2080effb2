package handler

import (
	"errors"

	"portal/internal/app/catalog"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the "catalogfilter" binding tag to gin's validator.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin validator is not go-playground/validator")
	}
	return v.RegisterValidation("catalogfilter", func(fl validator.FieldLevel) bool {
		_, err := catalog.ParseFilter(fl.Field().String())
		return err == nil
	})
}
