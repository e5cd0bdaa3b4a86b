package queries_test

import (
	"testing"
	"time"

	"foodorders/internal/core/application/usecases/queries"
	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrackOrderQuery_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	userID := kernel.NewUUID()

	query, err := queries.NewTrackOrderQuery(orderID, userID)
	require.NoError(t, err)
	assert.Equal(t, orderID, query.OrderID())
	assert.Equal(t, userID, query.UserID())
}

func TestNewTrackOrderQuery_InvalidInput(t *testing.T) {
	_, err := queries.NewTrackOrderQuery(kernel.UUID{}, kernel.NewUUID())
	require.Error(t, err)

	_, err = queries.NewTrackOrderQuery(kernel.NewUUID(), kernel.UUID{})
	require.Error(t, err)
}

func TestTrackOrderQuery_NotConstructed(t *testing.T) {
	var query queries.TrackOrderQuery
	require.ErrorIs(t, query.Validate(), queries.ErrTrackOrderQueryIsNotConstructed)
}

func TestNewSearchOrdersQuery_ValidInput(t *testing.T) {
	actorID := kernel.NewUUID()
	from := time.Now().Add(-24 * time.Hour)
	to := time.Now()
	userFilter := kernel.NewUUID()

	query, err := queries.NewSearchOrdersQuery(actorID,
		[]order.Status{order.Preparing, order.InDelivery}, &from, &to, &userFilter)
	require.NoError(t, err)
	assert.Equal(t, actorID, query.ActorID())
	assert.Equal(t, []order.Status{order.Preparing, order.InDelivery}, query.Statuses())
	assert.True(t, query.DateFrom().Equal(from))
	assert.True(t, query.DateTo().Equal(to))
	assert.Equal(t, userFilter, *query.UserFilter())
}

func TestNewSearchOrdersQuery_EmptyFilters(t *testing.T) {
	query, err := queries.NewSearchOrdersQuery(kernel.NewUUID(), nil, nil, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, query.Statuses())
	assert.Nil(t, query.DateFrom())
	assert.Nil(t, query.DateTo())
	assert.Nil(t, query.UserFilter())
}

func TestNewSearchOrdersQuery_InvalidStatus(t *testing.T) {
	_, err := queries.NewSearchOrdersQuery(kernel.NewUUID(),
		[]order.Status{order.Status(42)}, nil, nil, nil)
	require.Error(t, err)
}

func TestNewSearchOrdersQuery_InvalidActor(t *testing.T) {
	_, err := queries.NewSearchOrdersQuery(kernel.UUID{}, nil, nil, nil, nil)
	require.Error(t, err)
}

func TestNewListDishesQuery(t *testing.T) {
	assert.True(t, queries.NewListDishesQuery(true).AvailableOnly())
	assert.False(t, queries.NewListDishesQuery(false).AvailableOnly())

	var query queries.ListDishesQuery
	require.ErrorIs(t, query.Validate(), queries.ErrListDishesQueryIsNotConstructed)
}

func TestNewListErrorsQuery(t *testing.T) {
	userID := kernel.NewUUID()

	query, err := queries.NewListErrorsQuery(userID)
	require.NoError(t, err)
	assert.Equal(t, userID, query.UserID())

	_, err = queries.NewListErrorsQuery(kernel.UUID{})
	require.Error(t, err)
}
