package utils

import (
	"time"

	"facilities-system/pkg/constants"
	apperrors "facilities-system/pkg/errors"
)

// DateLayout é o formato de data usado em toda a API (somente data, sem hora).
const DateLayout = "2006-01-02"

// Today devolve a data de hoje truncada (UTC, meia-noite), comparável com
// datas vindas de ParseDate.
func Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate converte uma string "aaaa-mm-dd" em time.Time.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, apperrors.NewInvalidInputError("data inválida: %q (formato esperado: %s)", s, DateLayout)
	}
	return t, nil
}

// FormatDate formata uma data no layout da API.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatDatePtr formata uma data opcional; devolve "" para nil.
func FormatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateLayout)
}

// NextMaintenanceDate calcula a data da próxima manutenção preventiva:
// âncora + 30 dias por mês de intervalo. O sistema usa meses de 30 dias,
// não meses de calendário.
func NextMaintenanceDate(anchor time.Time, intervalMonths int) time.Time {
	return anchor.AddDate(0, 0, constants.DaysPerMaintenanceMonth*intervalMonths)
}
