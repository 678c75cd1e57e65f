package service

import (
	"errors"
	"fmt"

	"connectrpc.com/connect"

	"github.com/mmynk/docshelf/internal/calendar"
	"github.com/mmynk/docshelf/internal/models"
	"github.com/mmynk/docshelf/internal/storage"
)

var (
	ErrTitleRequired    = errors.New("title is required")
	ErrNegativeAmount   = errors.New("amount must not be negative")
	ErrNegativeDuration = errors.New("audio duration must not be negative")
	ErrUnknownCurrency  = errors.New("unknown currency")
	ErrNameRequired     = errors.New("name is required")
)

// validateMetadata checks the invariants capture is expected to uphold.
// Absent fields are always fine.
func validateMetadata(m models.Metadata) error {
	if m.Amount.Valid && m.Amount.Decimal.IsNegative() {
		return ErrNegativeAmount
	}
	if err := validateDate("date", m.Date); err != nil {
		return err
	}
	return validateDate("warrantyEndDate", m.WarrantyEndDate)
}

func validateDate(field, value string) error {
	if value == "" {
		return nil
	}
	if _, ok := calendar.ParseLocalDate(value); !ok {
		return fmt.Errorf("%s must be a valid YYYY-MM-DD date, got %q", field, value)
	}
	return nil
}

func validateAudio(rec *models.AudioRecording) error {
	if rec != nil && rec.Duration < 0 {
		return ErrNegativeDuration
	}
	return nil
}

// storeError maps a storage error to a Connect error.
func storeError(err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return connect.NewError(connect.CodeNotFound, err)
	}
	return connect.NewError(connect.CodeInternal, err)
}
