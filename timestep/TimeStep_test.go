package timestep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestStepTypePredicates(t *testing.T) {
	o := mat.NewVecDense(4, nil)

	first := New(First, 0.0, 0.9, o, 0)
	assert.True(t, first.First())
	assert.False(t, first.Mid())
	assert.False(t, first.Last())

	mid := New(Mid, 0.0, 0.9, o, 3)
	assert.True(t, mid.Mid())

	last := New(Last, 1.0, 0.9, o, 7)
	assert.True(t, last.Last())
}

func TestEndTypeDistinguishesTruncationFromTermination(t *testing.T) {
	o := mat.NewVecDense(4, nil)

	step := New(Mid, 0.0, 0.9, o, 5)
	assert.Equal(t, Nil, step.End())
	assert.False(t, step.TerminatedEarly())

	step.StepType = Last
	step.SetEnd(TerminalStateReached)
	assert.Equal(t, TerminalStateReached, step.End())
	assert.False(t, step.TerminatedEarly())

	truncated := New(Mid, 0.0, 0.9, o, 5)
	truncated.StepType = Last
	truncated.SetEnd(StepLimitReached)
	assert.True(t, truncated.TerminatedEarly())
}

func TestStepTypeStrings(t *testing.T) {
	assert.Equal(t, "First", First.String())
	assert.Equal(t, "Mid", Mid.String())
	assert.Equal(t, "Last", Last.String())

	assert.Equal(t, "Nil", Nil.String())
	assert.Equal(t, "TerminalStateReached", TerminalStateReached.String())
	assert.Equal(t, "StepLimitReached", StepLimitReached.String())
}
