package stepmachine

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countdown yields the steps 0..k-1 and finishes on step k.
func countdown(k int) StepFunc[int] {
	return func(resume int, step int) (Result[int], error) {
		if step < k {
			return Result[int]{Value: step + resume, Done: false}, nil
		}
		return Result[int]{Value: -1, Done: true}, nil
	}
}

func TestAdvance(t *testing.T) {
	m := NewMachine(countdown(3))

	for i := 0; i < 3; i++ {
		assert.Equal(t, i, m.Step())
		res, err := m.Advance(10)
		require.NoError(t, err)
		assert.Equal(t, Result[int]{Value: i + 10}, res)
		assert.False(t, m.Done())
	}

	res, err := m.Advance(0)
	require.NoError(t, err)
	assert.True(t, res.Done)
	assert.True(t, m.Done())
	assert.Equal(t, 4, m.Step())
}

func TestAdvanceMovesOnError(t *testing.T) {
	boom := errors.New("boom")
	var seen []int
	m := NewMachine(func(_ string, step int) (Result[string], error) {
		seen = append(seen, step)
		if step == 0 {
			return Result[string]{}, boom
		}
		return Result[string]{Value: "ok", Done: true}, nil
	})

	_, err := m.Advance("")
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, m.Step())
	assert.False(t, m.Done())

	res, err := m.Advance("")
	require.NoError(t, err)
	assert.Equal(t, "ok", res.Value)
	assert.Equal(t, []int{0, 1}, seen)
}

func TestRaise(t *testing.T) {
	calls := 0
	m := NewMachine(func(_ int, step int) (Result[int], error) {
		calls++
		return Result[int]{Value: step}, nil
	})
	_, err := m.Advance(0)
	require.NoError(t, err)

	cause := fmt.Errorf("stop")
	err = m.Raise(cause)

	var reraise *ReraiseError
	require.ErrorAs(t, err, &reraise)
	assert.Equal(t, 1, reraise.Step)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "generator raised at step 1: stop", err.Error())

	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, m.Step())
}

func TestStartReturnsIndependentInstances(t *testing.T) {
	g := New(countdown(2))
	a, b := g.Start(), g.Start()

	_, err := a.Advance(0)
	require.NoError(t, err)
	_, err = a.Advance(0)
	require.NoError(t, err)

	assert.Equal(t, 2, a.Step())
	assert.Equal(t, 0, b.Step())

	res, err := b.Advance(0)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Value)
}

func TestDrain(t *testing.T) {
	values, err := Drain(New(countdown(3)).Start(), 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, values)

	values, err = Drain(New(countdown(10)).Start(), 4)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, values)

	boom := errors.New("boom")
	failing := NewMachine(func(_ int, step int) (Result[int], error) {
		if step == 1 {
			return Result[int]{}, boom
		}
		return Result[int]{Value: 7}, nil
	})
	values, err = Drain(failing, 0)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []int{7}, values)
}
