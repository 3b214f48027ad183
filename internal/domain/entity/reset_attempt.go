package entity

import "time"

// ResetThrottlePolicy bounds how often a user may request a reset code.
type ResetThrottlePolicy struct {
	Window      time.Duration // Trailing window counted from the last attempt.
	MaxAttempts int           // Requests allowed per window.
	OTPTTL      time.Duration // Lifetime of an issued code.
}

// ResetAttemptState is the forgot-password state embedded on a user.
// The zero value means no reset is in progress.
type ResetAttemptState struct {
	OTPHash       string
	OTPExpiresAt  *time.Time
	AttemptCount  int
	LastAttemptAt *time.Time
}

// ResetDecision is the outcome of Admit.
type ResetDecision struct {
	Allowed    bool
	RetryAfter time.Duration // Set only when Allowed is false.
}

// Admit applies the throttle for a new reset request at now. It returns the
// state to persist and the decision. A denied request leaves the state unchanged.
func (s ResetAttemptState) Admit(now time.Time, policy ResetThrottlePolicy) (ResetAttemptState, ResetDecision) {
	next := s

	if s.inWindow(now, policy.Window) {
		if s.AttemptCount >= policy.MaxAttempts {
			return s, ResetDecision{RetryAfter: policy.Window - now.Sub(*s.LastAttemptAt)}
		}
	} else {
		next.AttemptCount = 0
	}

	next.AttemptCount++
	last := now
	next.LastAttemptAt = &last

	return next, ResetDecision{Allowed: true}
}

// WithOTP records a freshly issued code hash expiring after ttl.
func (s ResetAttemptState) WithOTP(hash string, now time.Time, ttl time.Duration) ResetAttemptState {
	expiresAt := now.Add(ttl)
	s.OTPHash = hash
	s.OTPExpiresAt = &expiresAt

	return s
}

// HasPendingOTP reports whether a code was issued and has not expired at now.
func (s ResetAttemptState) HasPendingOTP(now time.Time) bool {
	return s.OTPHash != "" && s.OTPExpiresAt != nil && now.Before(*s.OTPExpiresAt)
}

func (s ResetAttemptState) inWindow(now time.Time, window time.Duration) bool {
	return s.LastAttemptAt != nil && now.Sub(*s.LastAttemptAt) < window
}
