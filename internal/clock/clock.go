package clock

import "time"

// Clock abstracts time.Now so window math and last-contacted writes can be
// pinned in tests.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
