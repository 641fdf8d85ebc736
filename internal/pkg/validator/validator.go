package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/vastu-microservice/internal/domain"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// direction - код одного из 8 главных направлений (N, NE, ..., NW)
	_ = validate.RegisterValidation("direction", func(fl validator.FieldLevel) bool {
		return domain.DirectionCode(fl.Field().String()).IsValid()
	})
}

// Validate - валидация структуры
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}
