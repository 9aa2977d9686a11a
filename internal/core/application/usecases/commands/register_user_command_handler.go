package commands

import (
	"context"
	"errors"

	"constructmart/internal/core/domain/model/kernel"
	"constructmart/internal/core/domain/model/user"
	"constructmart/internal/pkg/errs"
)

// RegisterUserCommandHandler handles account sign-up.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewRegisterUserCommandHandler creates a handler for sign-up operations.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sign-up command and returns the created user.
// A taken email fails with a ConflictError.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	_, err := userRepo.GetByEmail(ctx, cmd.Email())
	if err == nil {
		return nil, errs.NewConflictError("email", cmd.Email())
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	newUser, err := user.NewUser(kernel.NewUUID(), cmd.Name(), cmd.Email(), cmd.Password(), cmd.Role())
	if err != nil {
		return nil, err
	}

	if err = userRepo.Add(ctx, newUser); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newUser, nil
}
