package order_test

import (
	"testing"

	"kandypack/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromString(t *testing.T) {
	t.Run("parses_all_valid_statuses", func(t *testing.T) {
		cases := map[string]order.Status{
			"pending":    order.Pending,
			"confirmed":  order.Confirmed,
			"placed":     order.Placed,
			"scheduled":  order.Scheduled,
			"in_transit": order.InTransit,
			"delivered":  order.Delivered,
			"cancelled":  order.Cancelled,
		}

		for str, expected := range cases {
			status, err := order.StatusFromString(str)
			require.NoError(t, err)
			assert.Equal(t, expected, status)
		}
	})

	t.Run("is_case_insensitive", func(t *testing.T) {
		status, err := order.StatusFromString("In_Transit")

		require.NoError(t, err)
		assert.Equal(t, order.InTransit, status)
	})

	t.Run("rejects_empty_string", func(t *testing.T) {
		_, err := order.StatusFromString("")

		require.Error(t, err)
	})

	t.Run("rejects_unknown_status", func(t *testing.T) {
		_, err := order.StatusFromString("shipped")

		require.Error(t, err)
	})
}

func TestStatus_CanTransitionTo(t *testing.T) {
	t.Run("forward_edges_are_allowed", func(t *testing.T) {
		assert.True(t, order.Pending.CanTransitionTo(order.Confirmed))
		assert.True(t, order.Pending.CanTransitionTo(order.Placed))
		assert.True(t, order.Confirmed.CanTransitionTo(order.Placed))
		assert.True(t, order.Placed.CanTransitionTo(order.Scheduled))
		assert.True(t, order.Scheduled.CanTransitionTo(order.InTransit))
		assert.True(t, order.InTransit.CanTransitionTo(order.Delivered))
	})

	t.Run("lateral_moves_of_the_deployed_guard_are_preserved", func(t *testing.T) {
		assert.True(t, order.Confirmed.CanTransitionTo(order.InTransit))
		assert.True(t, order.Confirmed.CanTransitionTo(order.Delivered))
		assert.True(t, order.Placed.CanTransitionTo(order.Delivered))
	})

	t.Run("backward_moves_are_rejected", func(t *testing.T) {
		assert.False(t, order.Delivered.CanTransitionTo(order.Pending))
		assert.False(t, order.Confirmed.CanTransitionTo(order.Pending))
		assert.False(t, order.Placed.CanTransitionTo(order.Confirmed))
		assert.False(t, order.InTransit.CanTransitionTo(order.Scheduled))
	})

	t.Run("cancellation_from_any_non_terminal_state", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Pending, order.Confirmed, order.Placed, order.Scheduled, order.InTransit,
		} {
			assert.True(t, s.CanTransitionTo(order.Cancelled), "from %s", s)
		}
	})

	t.Run("terminal_states_only_self_loop", func(t *testing.T) {
		assert.True(t, order.Delivered.CanTransitionTo(order.Delivered))
		assert.True(t, order.Cancelled.CanTransitionTo(order.Cancelled))
		assert.False(t, order.Delivered.CanTransitionTo(order.Cancelled))
		assert.False(t, order.Cancelled.CanTransitionTo(order.Delivered))
		assert.False(t, order.Cancelled.CanTransitionTo(order.Pending))
	})

	t.Run("self_loops_are_allowed", func(t *testing.T) {
		assert.True(t, order.Pending.CanTransitionTo(order.Pending))
		assert.True(t, order.InTransit.CanTransitionTo(order.InTransit))
	})

	t.Run("unknown_old_status_is_first_assignment", func(t *testing.T) {
		assert.True(t, order.Unknown.CanTransitionTo(order.Placed))
		assert.True(t, order.Unknown.CanTransitionTo(order.Pending))
	})

	t.Run("unknown_new_status_is_always_rejected", func(t *testing.T) {
		assert.False(t, order.Pending.CanTransitionTo(order.Unknown))
		assert.False(t, order.Unknown.CanTransitionTo(order.Unknown))
	})
}

func TestStatus_ValidatePlace(t *testing.T) {
	t.Run("pending_and_confirmed_can_be_placed", func(t *testing.T) {
		require.NoError(t, order.Pending.ValidatePlace())
		require.NoError(t, order.Confirmed.ValidatePlace())
	})

	t.Run("other_statuses_cannot_be_placed", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Placed, order.Scheduled, order.InTransit, order.Delivered, order.Cancelled, order.Unknown,
		} {
			require.Error(t, s.ValidatePlace(), "from %s", s)
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("valid_statuses_have_lowercase_names", func(t *testing.T) {
		assert.Equal(t, "in_transit", order.InTransit.String())
		assert.Equal(t, "placed", order.Placed.String())
	})

	t.Run("invalid_status_is_unknown", func(t *testing.T) {
		assert.Equal(t, "unknown", order.Status(42).String())
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.InTransit.IsTerminal())
}
