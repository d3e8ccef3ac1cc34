package customvalidator

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations registra as regras de validação específicas do
// sistema no validador recebido.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("apidate", isAPIDate); err != nil {
		return err
	}
	if err := v.RegisterValidation("notfuture", isNotFutureDate); err != nil {
		return err
	}
	return nil
}

// isAPIDate aceita datas no formato aaaa-mm-dd.
func isAPIDate(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// isNotFutureDate rejeita datas posteriores a hoje. Campos vazios passam;
// obrigatoriedade é responsabilidade da regra "required".
func isNotFutureDate(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return false
	}
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return !t.After(today)
}
