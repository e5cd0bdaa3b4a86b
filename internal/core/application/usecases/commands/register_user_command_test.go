package commands_test

import (
	"testing"

	"foodorders/internal/core/application/usecases/commands"
	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/model/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterUserCommand_ValidInput(t *testing.T) {
	userID := kernel.NewUUID()

	cmd, err := commands.NewRegisterUserCommand(userID, "Admin", "User",
		[]string{user.PermissionReadUsers})
	require.NoError(t, err)
	assert.Equal(t, userID, cmd.UserID())
	assert.Equal(t, "Admin", cmd.FirstName())
	assert.Equal(t, "User", cmd.LastName())
	assert.Equal(t, []string{user.PermissionReadUsers}, cmd.Permissions())
}

func TestNewRegisterUserCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewRegisterUserCommand(kernel.UUID{}, "Admin", "User", nil)
	require.Error(t, err)

	_, err = commands.NewRegisterUserCommand(kernel.NewUUID(), "", "User", nil)
	require.Error(t, err)
}

func TestRegisterUserCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterUserCommand(kernel.NewUUID(), "Regular", "User", nil)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockUserUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	userRepo.On("Add", ctx, mock.AnythingOfType("*user.User")).Return(nil).Once()

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterUserCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	userRepo.AssertExpectations(t)
}
