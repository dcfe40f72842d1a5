// Package inflight enforces the at-most-one-in-flight rule for mutating
// operations: one call per (assignment, action) pair, one bulk call per
// shift. Flags live in redis so the guarantee holds across API replicas;
// the TTL keeps a crashed request from wedging its key forever.
package inflight

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	ActionClockIn    = "clock_in"
	ActionClockOut   = "clock_out"
	ActionStartBreak = "start_break"
	ActionEndBreak   = "end_break"
	ActionEndShift   = "end_shift"
	ActionNoShow     = "no_show"
	ActionDrop       = "drop"
	ActionUnassign   = "unassign"
	ActionAssign     = "assign"
	ActionEndAll     = "end_all"
	ActionFinalize   = "finalize"
	ActionUpdateReqs = "update_requirements"
)

func AssignmentKey(assignmentID int64, action string) string {
	return fmt.Sprintf("inflight_assignment_%d_%s", assignmentID, action)
}

func ShiftKey(shiftID int64, action string) string {
	return fmt.Sprintf("inflight_shift_%d_%s", shiftID, action)
}

type Locker struct {
	client *redis.Client
	ttl    time.Duration
}

func NewLocker(client *redis.Client, ttl time.Duration) *Locker {
	return &Locker{
		client: client,
		ttl:    ttl,
	}
}

// TryAcquire sets the busy flag for key. It returns false when a prior
// call for the same key is still pending.
func (l *Locker) TryAcquire(ctx context.Context, key string) (bool, error) {
	return l.client.SetNX(ctx, key, 1, l.ttl).Result()
}

func (l *Locker) Release(ctx context.Context, key string) error {
	return l.client.Del(ctx, key).Err()
}
