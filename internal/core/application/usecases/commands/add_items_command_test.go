package commands_test

import (
	"testing"

	"dinebot/internal/core/application/usecases/commands"
	"dinebot/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionKey(t *testing.T) kernel.SessionKey {
	t.Helper()
	key, err := kernel.NewSessionKey(uuid.NewString())
	require.NoError(t, err)
	return key
}

func TestNewAddItemsCommand(t *testing.T) {
	t.Run("valid command", func(t *testing.T) {
		key := sessionKey(t)

		cmd, err := commands.NewAddItemsCommand(key, []string{"pizza"}, []float64{2})

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.SessionKey().IsEqual(key))
		assert.Equal(t, []string{"pizza"}, cmd.Items())
		assert.Equal(t, []float64{2}, cmd.Quantities())
	})

	t.Run("absent session key is rejected", func(t *testing.T) {
		var zero kernel.SessionKey

		_, err := commands.NewAddItemsCommand(zero, []string{"pizza"}, []float64{2})

		require.Error(t, err)
	})

	t.Run("mismatched lists are carried, not rejected", func(t *testing.T) {
		cmd, err := commands.NewAddItemsCommand(sessionKey(t), []string{"pizza", "samosa"}, []float64{2})

		require.NoError(t, err)
		assert.Len(t, cmd.Items(), 2)
		assert.Len(t, cmd.Quantities(), 1)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.AddItemsCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrAddItemsCommandIsNotConstructed)
	})
}
