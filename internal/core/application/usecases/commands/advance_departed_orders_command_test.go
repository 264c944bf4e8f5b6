package commands_test

import (
	"testing"
	"time"

	"kandypack/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAdvanceDepartedOrdersCommand_ValidInput(t *testing.T) {
	now := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)
	cmd, err := commands.NewAdvanceDepartedOrdersCommand(now)
	require.NoError(t, err)
	assert.Equal(t, now, cmd.Now())
	require.NoError(t, cmd.Validate())
}

func TestNewAdvanceDepartedOrdersCommand_ZeroTime(t *testing.T) {
	_, err := commands.NewAdvanceDepartedOrdersCommand(time.Time{})
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrNowIsRequired)
}

func TestAdvanceDepartedOrdersCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.AdvanceDepartedOrdersCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrAdvanceDepartedOrdersCommandIsNotConstructed)
}
