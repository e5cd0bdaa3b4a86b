package commands_test

import (
	"testing"

	"foodorders/internal/core/application/usecases/commands"
	"foodorders/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateDishCommand_ValidInput(t *testing.T) {
	dishID := kernel.NewUUID()

	cmd, err := commands.NewCreateDishCommand(dishID, "Caesar Salad",
		"Romaine lettuce with Caesar dressing", 8.99, "Salad")
	require.NoError(t, err)
	assert.Equal(t, dishID, cmd.DishID())
	assert.Equal(t, "Caesar Salad", cmd.Name())
	assert.Equal(t, "Romaine lettuce with Caesar dressing", cmd.Description())
	assert.InDelta(t, 8.99, cmd.Price(), 0.001)
	assert.Equal(t, "Salad", cmd.Category())
}

func TestNewCreateDishCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewCreateDishCommand(kernel.UUID{}, "Caesar Salad", "", 8.99, "Salad")
	require.Error(t, err)

	_, err = commands.NewCreateDishCommand(kernel.NewUUID(), "", "", 8.99, "Salad")
	require.Error(t, err)

	_, err = commands.NewCreateDishCommand(kernel.NewUUID(), "Caesar Salad", "", 0, "Salad")
	require.Error(t, err)
}
