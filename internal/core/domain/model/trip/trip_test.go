package trip_test

import (
	"testing"
	"time"

	"kandypack/internal/core/domain/model/kernel"
	"kandypack/internal/core/domain/model/trip"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSpace(t *testing.T, units float64) kernel.Space {
	t.Helper()

	s, err := kernel.NewSpace(units)
	require.NoError(t, err)
	return s
}

func restoreTestTrip(t *testing.T, capacity, used float64) *trip.Trip {
	t.Helper()

	depart := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	tr, err := trip.RestoreTrip(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		depart, depart.Add(trip.DefaultDuration),
		mustSpace(t, capacity), mustSpace(t, used),
	)
	require.NoError(t, err)
	return tr
}

func TestNewTrip(t *testing.T) {
	t.Run("synthesized_trip_starts_preloaded", func(t *testing.T) {
		depart := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

		tr, err := trip.NewTrip(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			depart, mustSpace(t, 100), mustSpace(t, 4),
		)

		require.NoError(t, err)
		assert.InDelta(t, 4, tr.CapacityUsed().Units(), kernel.SpaceEpsilon)
		assert.InDelta(t, 96, tr.Remaining().Units(), kernel.SpaceEpsilon)
		assert.Equal(t, depart, tr.DepartTime())
		assert.Equal(t, depart.Add(trip.DefaultDuration), tr.ArriveTime())
	})

	t.Run("initial_load_exceeding_capacity_fails", func(t *testing.T) {
		depart := time.Now()

		_, err := trip.NewTrip(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			depart, mustSpace(t, 3), mustSpace(t, 4),
		)

		require.ErrorIs(t, err, trip.ErrCapacityExceeded)
	})

	t.Run("zero_capacity_is_invalid", func(t *testing.T) {
		_, err := trip.NewTrip(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			time.Now(), mustSpace(t, 0), mustSpace(t, 0),
		)

		require.Error(t, err)
	})

	t.Run("requires_departure_time", func(t *testing.T) {
		_, err := trip.NewTrip(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			time.Time{}, mustSpace(t, 10), mustSpace(t, 1),
		)

		require.Error(t, err)
	})
}

func TestRestoreTrip(t *testing.T) {
	t.Run("rejects_used_above_capacity", func(t *testing.T) {
		depart := time.Now()

		_, err := trip.RestoreTrip(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			depart, depart.Add(time.Hour),
			mustSpace(t, 10), mustSpace(t, 11),
		)

		require.Error(t, err)
	})

	t.Run("rejects_arrival_before_departure", func(t *testing.T) {
		depart := time.Now()

		_, err := trip.RestoreTrip(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			depart, depart.Add(-time.Hour),
			mustSpace(t, 10), mustSpace(t, 1),
		)

		require.Error(t, err)
	})
}

func TestTrip_Reserve(t *testing.T) {
	t.Run("reserves_within_remaining_capacity", func(t *testing.T) {
		tr := restoreTestTrip(t, 10, 2)

		remaining, err := tr.Reserve(mustSpace(t, 4))

		require.NoError(t, err)
		assert.InDelta(t, 4.0, remaining.Units(), kernel.SpaceEpsilon)
		assert.InDelta(t, 6.0, tr.CapacityUsed().Units(), kernel.SpaceEpsilon)
	})

	t.Run("fills_trip_exactly", func(t *testing.T) {
		tr := restoreTestTrip(t, 10, 2)

		remaining, err := tr.Reserve(mustSpace(t, 8))

		require.NoError(t, err)
		assert.True(t, remaining.IsZero())
	})

	t.Run("rejects_amount_exceeding_remaining", func(t *testing.T) {
		tr := restoreTestTrip(t, 10, 8)

		_, err := tr.Reserve(mustSpace(t, 3))

		require.ErrorIs(t, err, trip.ErrCapacityExceeded)

		var capErr *trip.CapacityExceededError
		require.ErrorAs(t, err, &capErr)
		assert.InDelta(t, 3.0, capErr.Required.Units(), kernel.SpaceEpsilon)
		assert.InDelta(t, 2.0, capErr.Remaining.Units(), kernel.SpaceEpsilon)

		// Failed reservation leaves the ledger untouched.
		assert.InDelta(t, 8.0, tr.CapacityUsed().Units(), kernel.SpaceEpsilon)
	})

	t.Run("rejects_zero_amount", func(t *testing.T) {
		tr := restoreTestTrip(t, 10, 0)

		_, err := tr.Reserve(mustSpace(t, 0))

		require.Error(t, err)
		assert.NotErrorIs(t, err, trip.ErrCapacityExceeded)
	})

	t.Run("absorbs_floating_rounding_within_epsilon", func(t *testing.T) {
		tr := restoreTestTrip(t, 1.0, 0)

		// Ten reservations of 0.1 must fill the trip without a spurious
		// rejection from accumulated floating error.
		for i := 0; i < 10; i++ {
			_, err := tr.Reserve(mustSpace(t, 0.1))
			require.NoError(t, err, "reservation %d", i+1)
		}

		assert.True(t, tr.Remaining().IsZero())
	})

	t.Run("capacity_invariant_over_a_sequence", func(t *testing.T) {
		tr := restoreTestTrip(t, 5, 0)
		amounts := []float64{1.5, 2.0, 1.0, 3.0, 0.5}

		reserved := 0.0
		for _, a := range amounts {
			if _, err := tr.Reserve(mustSpace(t, a)); err == nil {
				reserved += a
			}
		}

		assert.InDelta(t, reserved, tr.CapacityUsed().Units(), kernel.SpaceEpsilon)
		assert.False(t, tr.Capacity().Less(tr.CapacityUsed()))
	})
}

func TestTrip_Validate(t *testing.T) {
	t.Run("zero_value_trip_is_invalid", func(t *testing.T) {
		var tr trip.Trip

		require.ErrorIs(t, tr.Validate(), trip.ErrTripIsNotConstructed)
	})

	t.Run("nil_trip_is_invalid", func(t *testing.T) {
		var tr *trip.Trip

		require.ErrorIs(t, tr.Validate(), trip.ErrTripIsNotConstructed)
	})
}
