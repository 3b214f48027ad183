package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPolicy = ResetThrottlePolicy{Window: 15 * time.Minute, MaxAttempts: 3, OTPTTL: 10 * time.Minute}

func TestResetAttemptState_Admit_ThreeWithinWindowThenThrottled(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	state := ResetAttemptState{}

	for i := range 3 {
		var decision ResetDecision
		state, decision = state.Admit(start.Add(time.Duration(i)*time.Minute), testPolicy)
		require.True(t, decision.Allowed, "attempt %d", i+1)
		assert.Equal(t, i+1, state.AttemptCount)
	}

	now := start.Add(5 * time.Minute)
	next, decision := state.Admit(now, testPolicy)

	assert.False(t, decision.Allowed)
	// last attempt at +2m, window ends at +17m
	assert.Equal(t, 12*time.Minute, decision.RetryAfter)
	assert.Equal(t, state, next)
}

func TestResetAttemptState_Admit_ResetsCounterAfterWindow(t *testing.T) {
	last := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	state := ResetAttemptState{AttemptCount: 3, LastAttemptAt: &last}

	now := last.Add(15 * time.Minute)
	next, decision := state.Admit(now, testPolicy)

	require.True(t, decision.Allowed)
	assert.Equal(t, 1, next.AttemptCount)
	require.NotNil(t, next.LastAttemptAt)
	assert.Equal(t, now, *next.LastAttemptAt)
}

func TestResetAttemptState_Admit_DoesNotMutateReceiver(t *testing.T) {
	last := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	state := ResetAttemptState{AttemptCount: 1, LastAttemptAt: &last}

	_, _ = state.Admit(last.Add(time.Minute), testPolicy)

	assert.Equal(t, 1, state.AttemptCount)
	assert.Equal(t, last, *state.LastAttemptAt)
}

func TestResetAttemptState_OTPLifecycle(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	state := ResetAttemptState{}.WithOTP("hash", now, testPolicy.OTPTTL)

	assert.True(t, state.HasPendingOTP(now.Add(9*time.Minute)))
	assert.False(t, state.HasPendingOTP(now.Add(10*time.Minute)))
	assert.False(t, ResetAttemptState{}.HasPendingOTP(now))
}

func TestGroupMember_Resolve(t *testing.T) {
	user := &User{Email: "a@example.org"}
	user.ID[0] = 1

	ref := GroupMember{UserID: user.ID}
	populated := GroupMember{User: user}

	assert.Equal(t, user.ID, ref.Resolve())
	assert.Equal(t, user.ID, populated.Resolve())
}
