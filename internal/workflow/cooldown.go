package workflow

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// ResendCooldown is how long a user waits before asking for another code.
const ResendCooldown = 45 * time.Second

// Cooldown computes resend deadlines and the whole seconds left until them.
// The deadline itself is stored by the caller, typically in the session.
type Cooldown struct {
	clock  clockwork.Clock
	period time.Duration
}

// NewCooldown creates a Cooldown of the given period on clock.
func NewCooldown(clock clockwork.Clock, period time.Duration) *Cooldown {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Cooldown{clock: clock, period: period}
}

// Start returns the deadline for a cooldown beginning now.
func (c *Cooldown) Start() time.Time {
	return c.clock.Now().Add(c.period)
}

// Remaining returns the seconds left until deadline, rounded up, never below zero.
func (c *Cooldown) Remaining(deadline time.Time) int {
	left := deadline.Sub(c.clock.Now())
	if left <= 0 {
		return 0
	}
	return int((left + time.Second - 1) / time.Second)
}

// Elapsed reports whether deadline has passed.
func (c *Cooldown) Elapsed(deadline time.Time) bool {
	return c.Remaining(deadline) == 0
}
