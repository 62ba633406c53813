package event_test

import (
	"testing"

	"deliveryrates/internal/core/domain/model/event"
	"deliveryrates/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, event.Pending.Validate())
	require.NoError(t, event.Delivered.Validate())
	require.NoError(t, event.Cancelled.Validate())

	err := event.Unknown.Validate()
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	err = event.Status(42).Validate()
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "42 is not a valid status")
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, event.Pending.IsTerminal())
	assert.True(t, event.Delivered.IsTerminal())
	assert.True(t, event.Cancelled.IsTerminal())
	assert.False(t, event.Unknown.IsTerminal())
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "PENDING", event.Pending.String())
	assert.Equal(t, "DELIVERED", event.Delivered.String())
	assert.Equal(t, "CANCELLED", event.Cancelled.String())
	assert.Equal(t, "UNKNOWN", event.Unknown.String())
	assert.Equal(t, "UNKNOWN", event.Status(99).String())
}

func TestParseStatus(t *testing.T) {
	testCases := []struct {
		in   string
		want event.Status
	}{
		{"PENDING", event.Pending},
		{"delivered", event.Delivered},
		{"  Cancelled ", event.Cancelled},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := event.ParseStatus(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	for _, bad := range []string{"", "UNKNOWN", "shipped"} {
		t.Run("rejects "+bad, func(t *testing.T) {
			got, err := event.ParseStatus(bad)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Equal(t, event.Unknown, got)
		})
	}
}
