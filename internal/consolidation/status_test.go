package consolidation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	legal := []struct{ from, to GroupStatus }{
		{StatusOpen, StatusPending},
		{StatusOpen, StatusCancelled},
		{StatusPending, StatusInProgress},
		{StatusPending, StatusCancelled},
		{StatusInProgress, StatusReadyToShip},
		{StatusInProgress, StatusShipped},
		{StatusInProgress, StatusCancelled},
		{StatusReadyToShip, StatusShipped},
		{StatusShipped, StatusDelivered},
	}
	for _, tc := range legal {
		assert.True(t, CanTransition(tc.from, tc.to), "%s -> %s should be legal", tc.from, tc.to)
	}

	illegal := []struct{ from, to GroupStatus }{
		{StatusOpen, StatusInProgress},
		{StatusOpen, StatusShipped},
		{StatusPending, StatusOpen},
		{StatusPending, StatusReadyToShip},
		{StatusReadyToShip, StatusCancelled},
		{StatusReadyToShip, StatusDelivered},
		{StatusShipped, StatusCancelled},
		{StatusDelivered, StatusShipped},
		{StatusCancelled, StatusOpen},
	}
	for _, tc := range illegal {
		assert.False(t, CanTransition(tc.from, tc.to), "%s -> %s should be illegal", tc.from, tc.to)
	}
}

func TestFeesImmutable(t *testing.T) {
	assert.True(t, FeesImmutable(StatusShipped))
	assert.True(t, FeesImmutable(StatusDelivered))
	assert.False(t, FeesImmutable(StatusReadyToShip))
	assert.False(t, FeesImmutable(StatusOpen))
}
