package progressor

// broadcast capacity used unless overridden with [WithCapacity]. Enough
// slots to tolerate brief consumer lag; sizing is a tuning knob, not a
// correctness requirement.
const defaultCapacity = 32

type config struct {
	capacity int
}

// Option configures a [Start] call.
type Option func(*config)

func defaultConfig() config {
	return config{
		capacity: defaultCapacity,
	}
}

// WithCapacity sets how many snapshots each subscriber may buffer
// before intermediate snapshots start being dropped for it.
// It panics if n is not positive.
func WithCapacity(n int) Option {
	return func(c *config) {
		if n <= 0 {
			panic("progressor: WithCapacity requires n > 0")
		}
		c.capacity = n
	}
}
