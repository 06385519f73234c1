package cas

import "time"

// WithClock replaces the time source used for expiry checks.
func (c *Cache) WithClock(now func() time.Time) *Cache {
	c.now = now
	return c
}
