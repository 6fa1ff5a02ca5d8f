package rollz

import "github.com/zoobzio/clockz"

// Clock provides time operations for deterministic testing. Roller stamps
// arrivals through a Clock so tests can drive it with a fake.
type Clock = clockz.Clock

// RealClock is the default Clock using standard time.
var RealClock Clock = clockz.RealClock
