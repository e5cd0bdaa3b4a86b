package commands_test

import (
	"testing"
	"time"

	"foodorders/internal/core/application/usecases/commands"
	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlaceOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	userID := kernel.NewUUID()
	dishIDs := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}

	cmd, err := commands.NewPlaceOrderCommand(orderID, userID, dishIDs, nil)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, userID, cmd.UserID())
	assert.Equal(t, dishIDs, cmd.DishIDs())
	assert.Nil(t, cmd.ScheduledFor())
}

func TestNewPlaceOrderCommand_DuplicateDishes(t *testing.T) {
	dishID := kernel.NewUUID()

	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), kernel.NewUUID(),
		[]kernel.UUID{dishID, dishID, dishID}, nil)
	require.NoError(t, err)
	assert.Len(t, cmd.DishIDs(), 3, "duplicates are one unit each")
}

func TestNewPlaceOrderCommand_ScheduledFor(t *testing.T) {
	scheduledFor := time.Now().Add(time.Hour)

	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), kernel.NewUUID(),
		[]kernel.UUID{kernel.NewUUID()}, &scheduledFor)
	require.NoError(t, err)
	require.NotNil(t, cmd.ScheduledFor())
	assert.True(t, cmd.ScheduledFor().Equal(scheduledFor))
}

func TestNewPlaceOrderCommand_EmptyDishes(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), kernel.NewUUID(), nil, nil)
	require.Error(t, err)
}

func TestNewPlaceOrderCommand_TooManyDishes(t *testing.T) {
	dishIDs := make([]kernel.UUID, order.MaxDishesPerOrder+1)
	for i := range dishIDs {
		dishIDs[i] = kernel.NewUUID()
	}

	_, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), kernel.NewUUID(), dishIDs, nil)
	require.Error(t, err)
}

func TestNewPlaceOrderCommand_InvalidIDs(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand(kernel.UUID{}, kernel.NewUUID(),
		[]kernel.UUID{kernel.NewUUID()}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = commands.NewPlaceOrderCommand(kernel.NewUUID(), kernel.UUID{},
		[]kernel.UUID{kernel.NewUUID()}, nil)
	require.Error(t, err)

	_, err = commands.NewPlaceOrderCommand(kernel.NewUUID(), kernel.NewUUID(),
		[]kernel.UUID{{}}, nil)
	require.Error(t, err)
}
