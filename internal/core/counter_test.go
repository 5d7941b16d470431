package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCycleCounter(t *testing.T) {
	counter := NewCycleCounter()

	counter.Add("AAA111")
	counter.Add("BBB222")
	counter.Add("AAA111")
	counter.Add("CCC333")
	counter.Add("CCC333")
	counter.Add("CCC333")

	confirmed := counter.Confirmed(2)
	assert.ElementsMatch(t, []string{"AAA111", "CCC333"}, confirmed)

	assert.Empty(t, NewCycleCounter().Confirmed(2))
}
