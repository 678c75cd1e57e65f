package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/docshelf/internal/models"
	"github.com/mmynk/docshelf/internal/storage"
	"github.com/mmynk/docshelf/pkg/api"
	"github.com/mmynk/docshelf/pkg/api/apiconnect"
)

var _ apiconnect.SettingsServiceHandler = (*SettingsService)(nil)

// SettingsService implements the Connect SettingsService
type SettingsService struct {
	store storage.Store
}

// NewSettingsService creates a new SettingsService with the given storage backend.
func NewSettingsService(store storage.Store) *SettingsService {
	return &SettingsService{store: store}
}

// GetSettings returns the user settings.
func (s *SettingsService) GetSettings(ctx context.Context, req *connect.Request[api.GetSettingsRequest]) (*connect.Response[api.GetSettingsResponse], error) {
	settings, err := s.store.GetSettings(ctx)
	if err != nil {
		slog.Error("GetSettings failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	return connect.NewResponse(&api.GetSettingsResponse{Settings: settings}), nil
}

// UpdateSettings changes the display currency.
func (s *SettingsService) UpdateSettings(ctx context.Context, req *connect.Request[api.UpdateSettingsRequest]) (*connect.Response[api.UpdateSettingsResponse], error) {
	code := strings.ToUpper(strings.TrimSpace(req.Msg.Currency))
	slog.Info("UpdateSettings request received", "currency", code)

	if _, ok := models.LookupCurrency(code); !ok {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("%w: %q", ErrUnknownCurrency, req.Msg.Currency))
	}

	settings := &models.UserSettings{Currency: code}
	if err := s.store.UpdateSettings(ctx, settings); err != nil {
		slog.Error("UpdateSettings failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Settings updated", "currency", code)

	return connect.NewResponse(&api.UpdateSettingsResponse{Settings: settings}), nil
}

// ListCurrencies returns the recognized currencies.
func (s *SettingsService) ListCurrencies(ctx context.Context, req *connect.Request[api.ListCurrenciesRequest]) (*connect.Response[api.ListCurrenciesResponse], error) {
	return connect.NewResponse(&api.ListCurrenciesResponse{Currencies: slices.Clone(models.Currencies)}), nil
}
