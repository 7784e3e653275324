package commands_test

import (
	"testing"
	"time"

	"eats/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExpirePromotionsCommand_ValidInput(t *testing.T) {
	now := time.Now().UTC()

	cmd, err := commands.NewExpirePromotionsCommand(now)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, now, cmd.Now())
}

func TestNewExpirePromotionsCommand_ZeroTime(t *testing.T) {
	_, err := commands.NewExpirePromotionsCommand(time.Time{})
	require.Error(t, err)
}

func TestExpirePromotionsCommand_ZeroValueFailsValidation(t *testing.T) {
	var cmd commands.ExpirePromotionsCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrExpirePromotionsCommandIsNotConstructed)
}
