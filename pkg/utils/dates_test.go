package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "facilities-system/pkg/errors"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-10")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("10/01/2024")
	var invalid *apperrors.InvalidInputError
	assert.ErrorAs(t, err, &invalid)

	_, err = ParseDate("")
	assert.ErrorAs(t, err, &invalid)
}

func TestNextMaintenanceDate(t *testing.T) {
	anchor := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	// Meses de 30 dias, não meses de calendário.
	assert.Equal(t, time.Date(2024, 7, 8, 0, 0, 0, 0, time.UTC), NextMaintenanceDate(anchor, 6))
	assert.Equal(t, time.Date(2024, 2, 9, 0, 0, 0, 0, time.UTC), NextMaintenanceDate(anchor, 1))
	assert.Equal(t, time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC), NextMaintenanceDate(anchor, 12))
}

func TestFormatDatePtr(t *testing.T) {
	assert.Equal(t, "", FormatDatePtr(nil))

	d := time.Date(2024, 7, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-07-05", FormatDatePtr(&d))
}
