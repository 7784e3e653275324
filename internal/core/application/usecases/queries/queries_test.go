package queries_test

import (
	"testing"

	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/principal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPrincipal(t *testing.T, role principal.Role) principal.Principal {
	t.Helper()

	p, err := principal.NewPrincipal(kernel.NewUUID(), role)
	require.NoError(t, err)
	return p
}

func TestNewGetOrderQuery_ValidInput(t *testing.T) {
	p := testPrincipal(t, principal.Client)
	orderID := kernel.NewUUID()

	query, err := queries.NewGetOrderQuery(p, orderID)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, orderID.IsEqual(query.OrderID()))
	assert.Equal(t, p, query.Principal())
}

func TestNewGetOrderQuery_InvalidInput(t *testing.T) {
	_, err := queries.NewGetOrderQuery(principal.Principal{}, kernel.NewUUID())
	require.Error(t, err)

	_, err = queries.NewGetOrderQuery(testPrincipal(t, principal.Client), kernel.UUID{})
	require.Error(t, err)
}

func TestGetOrderQuery_ZeroValueFailsValidation(t *testing.T) {
	var query queries.GetOrderQuery
	require.ErrorIs(t, query.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
}

func TestNewGetOrdersQuery_ValidInput(t *testing.T) {
	p := testPrincipal(t, principal.Owner)
	cooked := order.Cooked

	query, err := queries.NewGetOrdersQuery(p, &cooked)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	require.NotNil(t, query.Status())
	assert.Equal(t, order.Cooked, *query.Status())
}

func TestNewGetOrdersQuery_NoFilter(t *testing.T) {
	query, err := queries.NewGetOrdersQuery(testPrincipal(t, principal.Delivery), nil)

	require.NoError(t, err)
	assert.Nil(t, query.Status())
}

func TestNewGetOrdersQuery_InvalidStatusFilter(t *testing.T) {
	invalid := order.StatusUnknown
	_, err := queries.NewGetOrdersQuery(testPrincipal(t, principal.Client), &invalid)
	require.Error(t, err)
}

func TestGetOrdersQuery_ZeroValueFailsValidation(t *testing.T) {
	var query queries.GetOrdersQuery
	require.ErrorIs(t, query.Validate(), queries.ErrGetOrdersQueryIsNotConstructed)
}
