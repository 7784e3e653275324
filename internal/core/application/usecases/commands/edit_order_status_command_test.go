package commands_test

import (
	"testing"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/principal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEditOrderStatusCommand_ValidInput(t *testing.T) {
	p := newTestPrincipal(t, principal.Owner)
	orderID := kernel.NewUUID()

	cmd, err := commands.NewEditOrderStatusCommand(p, orderID, order.Cooking)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.True(t, orderID.IsEqual(cmd.OrderID()))
	assert.Equal(t, order.Cooking, cmd.Target())
	assert.Equal(t, p, cmd.Principal())
}

func TestNewEditOrderStatusCommand_InvalidPrincipal(t *testing.T) {
	_, err := commands.NewEditOrderStatusCommand(principal.Principal{}, kernel.NewUUID(), order.Cooking)
	require.Error(t, err)
	assert.ErrorIs(t, err, principal.ErrPrincipalIsNotConstructed)
}

func TestNewEditOrderStatusCommand_InvalidOrderID(t *testing.T) {
	p := newTestPrincipal(t, principal.Owner)
	_, err := commands.NewEditOrderStatusCommand(p, kernel.UUID{}, order.Cooking)
	require.Error(t, err)
}

func TestNewEditOrderStatusCommand_InvalidTarget(t *testing.T) {
	p := newTestPrincipal(t, principal.Owner)
	_, err := commands.NewEditOrderStatusCommand(p, kernel.NewUUID(), order.StatusUnknown)
	require.Error(t, err)
}

func TestEditOrderStatusCommand_ZeroValueFailsValidation(t *testing.T) {
	var cmd commands.EditOrderStatusCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrEditOrderStatusCommandIsNotConstructed)
}
