package commands_test

import (
	"testing"

	"dinebot/internal/core/application/usecases/commands"
	"dinebot/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

func TestNewCompleteOrderCommand(t *testing.T) {
	t.Run("valid command", func(t *testing.T) {
		key := sessionKey(t)

		cmd, err := commands.NewCompleteOrderCommand(key)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		require.True(t, cmd.SessionKey().IsEqual(key))
	})

	t.Run("absent session key is rejected", func(t *testing.T) {
		var zero kernel.SessionKey

		_, err := commands.NewCompleteOrderCommand(zero)

		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.CompleteOrderCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrCompleteOrderCommandIsNotConstructed)
	})
}
