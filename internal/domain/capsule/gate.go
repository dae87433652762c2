package capsule

import "time"

// CanRead decides read access for a loaded capsule: the owner may always
// read; anyone else only once the reveal date has passed. Callers resolve
// existence before the gate runs, and take the wall clock at the moment of
// the check.
func CanRead(c *Capsule, requesterID int64, now time.Time) error {
	if c.UserID == requesterID {
		return nil
	}
	if c.Revealed(now) {
		return nil
	}
	return ErrLocked
}

// CanWrite decides mutation access: owner only, at any time.
func CanWrite(c *Capsule, requesterID int64) error {
	if c.UserID != requesterID {
		return ErrNotOwner
	}
	return nil
}
