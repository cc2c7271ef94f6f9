package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "minibank/pkg/domain-errors"
)

var birthDate = time.Date(1990, 5, 14, 0, 0, 0, 0, time.UTC)

func TestNewIdentity(t *testing.T) {
	now := time.Now()

	id, err := NewIdentity("Ana Souza", birthDate, "12345678900", "Rua A, 10 - Centro", now)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, id.ID)
	assert.Equal(t, "Ana Souza", id.FullName)
	assert.Equal(t, "12345678900", id.NationalID)
	assert.Equal(t, birthDate, id.BirthDate)
	assert.Equal(t, now, id.CreatedAt)
}

func TestNewIdentityValidation(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name       string
		fullName   string
		birth      time.Time
		nationalID string
	}{
		{"empty name", "", birthDate, "12345678900"},
		{"empty national id", "Ana Souza", birthDate, ""},
		{"national id with letters", "Ana Souza", birthDate, "123abc"},
		{"national id with punctuation", "Ana Souza", birthDate, "123.456.789-00"},
		{"zero birth date", "Ana Souza", time.Time{}, "12345678900"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewIdentity(tt.fullName, tt.birth, tt.nationalID, "somewhere", now)
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
		})
	}
}
