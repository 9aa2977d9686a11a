package commands

import (
	"context"
)

// UpdateSettingsCommandHandler handles platform settings changes.
type UpdateSettingsCommandHandler struct {
	uowFactory SettingsUoWFactory
}

// NewUpdateSettingsCommandHandler creates a handler for settings changes.
func NewUpdateSettingsCommandHandler(uowFactory SettingsUoWFactory) UpdateSettingsCommandHandler {
	return UpdateSettingsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the settings change command.
func (h *UpdateSettingsCommandHandler) Handle(ctx context.Context, cmd UpdateSettingsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.SettingsRepository().Update(ctx, cmd.Settings()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
