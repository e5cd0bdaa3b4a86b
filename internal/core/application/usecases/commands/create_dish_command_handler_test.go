package commands_test

import (
	"errors"
	"testing"

	"foodorders/internal/core/application/usecases/commands"
	"foodorders/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateDishCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateDishCommand(kernel.NewUUID(), "Pepperoni Pizza",
		"Pepperoni, mozzarella and tomato sauce", 15.99, "Pizza")
	require.NoError(t, err)

	dishRepo := new(MockDishRepository)
	uow := new(MockCatalogUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DishRepository").Return(dishRepo).Once(),
		dishRepo.On("Add", mock.Anything, mock.AnythingOfType("*dish.Dish")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateDishCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	dishRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateDishCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateDishCommand{} // not constructed properly

	h := commands.NewCreateDishCommandHandler(new(MockCatalogUoWFactory))
	require.Error(t, h.Handle(ctx, cmd))
}

func TestCreateDishCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateDishCommand(kernel.NewUUID(), "Pepperoni Pizza", "", 15.99, "Pizza")
	require.NoError(t, err)

	dishRepo := new(MockDishRepository)
	uow := new(MockCatalogUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DishRepository").Return(dishRepo).Once(),
		dishRepo.On("Add", mock.Anything, mock.AnythingOfType("*dish.Dish")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateDishCommandHandler(factory)
	require.Error(t, h.Handle(ctx, cmd))
}
