package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusReady, false},
		{StatusConfirmed, StatusPreparing, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusPreparing, StatusReady, true},
		{StatusPreparing, StatusConfirmed, false},
		{StatusReady, StatusPickedUp, true},
		{StatusReady, StatusCancelled, true},
		{StatusPickedUp, StatusPreparing, false},
		{StatusPickedUp, StatusRefunded, true},
		{StatusCancelled, StatusRefunded, true},
		{StatusCancelled, StatusPending, false},
		{StatusRefunded, StatusPending, false},
		{StatusRefunded, StatusCancelled, false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range []OrderStatus{
		StatusPending, StatusConfirmed, StatusPreparing,
		StatusReady, StatusPickedUp, StatusCancelled, StatusRefunded,
	} {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, OrderStatus("delivered").Valid())
	assert.False(t, OrderStatus("").Valid())
}

func TestStatusIsTerminal(t *testing.T) {
	assert.True(t, StatusRefunded.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusPickedUp.IsTerminal(), "picked_up can still be refunded")
	assert.False(t, StatusCancelled.IsTerminal(), "cancelled can still be refunded")
}
