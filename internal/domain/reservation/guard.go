package reservation

// Guard is the per-reservation mutual exclusion primitive. Acquisition is
// non-blocking: TryLock reports false when another action holds it. Guards
// are not reentrant.
type Guard interface {
	TryLock() bool
	Unlock()
}
