package supabase

import "time"

// SetBackoffs swaps the retry schedule for the duration of a test.
func SetBackoffs(b []time.Duration) (restore func()) {
	old := backoffs
	backoffs = b
	return func() { backoffs = old }
}
