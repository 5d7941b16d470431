package core

// CodeCounter accumulates regular-bucket code sightings within one polling
// cycle. It is an interface so the per-cycle counter below could be swapped
// for a sliding-window implementation without touching extraction or
// filtering.
type CodeCounter interface {
	// Add records one post independently surfacing a code
	Add(code string)

	// Confirmed returns the codes whose sighting count reached the threshold
	Confirmed(threshold int) []string
}

// cycleCounter counts sightings for a single cycle. State never persists
// across cycles: a code seen once this cycle and once the next is not
// confirmed unless both sightings land in the same cycle.
type cycleCounter struct {
	counts map[string]int
}

// NewCycleCounter returns an empty per-cycle counter
func NewCycleCounter() CodeCounter {
	return &cycleCounter{counts: make(map[string]int)}
}

func (c *cycleCounter) Add(code string) {
	c.counts[code]++
}

func (c *cycleCounter) Confirmed(threshold int) []string {
	var confirmed []string
	for code, count := range c.counts {
		if count >= threshold {
			confirmed = append(confirmed, code)
		}
	}
	return confirmed
}
