package scenario

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampPolicy(t *testing.T) {
	reg := newTestRegistry(t)

	ev, err := reg.Evaluate("bitcoin", NumberInput(0))
	require.NoError(t, err)
	assert.True(t, ev.Clamped)
	assert.Equal(t, 0.0, ev.Requested.Number)
	assert.Equal(t, 1.0, ev.Input.Number)
	assert.InDelta(t, 225, ev.Results.Number("multiplier"), delta)

	ev, err = reg.Evaluate("sleep", NumberInput(5))
	require.NoError(t, err)
	assert.True(t, ev.Clamped)
	assert.Equal(t, 3.0, ev.Input.Number)
}

func TestPassthroughPolicy(t *testing.T) {
	reg := newTestRegistry(t, WithBoundaryPolicy(PolicyPassthrough))
	assert.Equal(t, PolicyPassthrough, reg.Policy())

	ev, err := reg.Evaluate("bitcoin", NumberInput(-1000))
	require.NoError(t, err)
	assert.False(t, ev.Clamped)
	assert.Equal(t, -1000.0, ev.Input.Number)
	assert.InDelta(t, -224000, ev.Results.Number("profit"), delta)
}

func TestEvaluateRejectsNonFinite(t *testing.T) {
	reg := newTestRegistry(t)

	_, err := reg.Evaluate("coffee", NumberInput(math.NaN()))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = reg.Evaluate("coffee", NumberInput(math.Inf(1)))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = reg.Evaluate("nope", NumberInput(1))
	assert.ErrorIs(t, err, ErrUnknownScenario)
}

func TestInputSpecParse(t *testing.T) {
	spec := InputSpec{Kind: InputNumber, Min: bound(1)}

	in, err := spec.Parse(" 12.5 ")
	require.NoError(t, err)
	assert.Equal(t, 12.5, in.Number)

	_, err = spec.Parse("abc")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = spec.Parse("")
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Out of range still parses; the boundary policy handles it.
	in, err = spec.Parse("-3")
	require.NoError(t, err)
	assert.Equal(t, -3.0, in.Number)
}

func TestChoiceInput(t *testing.T) {
	spec := InputSpec{Kind: InputChoice, Options: []string{"low", "high"}}

	in, err := spec.Parse("high")
	require.NoError(t, err)
	assert.Equal(t, "high", in.Choice)
	assert.Equal(t, "high", in.Value(InputChoice))

	_, err = spec.Parse("medium")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestClampBounds(t *testing.T) {
	spec := InputSpec{Kind: InputNumber, Min: bound(5), Max: bound(100)}

	v, moved := spec.Clamp(50)
	assert.False(t, moved)
	assert.Equal(t, 50.0, v)

	v, moved = spec.Clamp(1)
	assert.True(t, moved)
	assert.Equal(t, 5.0, v)

	v, moved = spec.Clamp(101)
	assert.True(t, moved)
	assert.Equal(t, 100.0, v)

	open := InputSpec{Kind: InputNumber}
	v, moved = open.Clamp(-1e9)
	assert.False(t, moved)
	assert.Equal(t, -1e9, v)
}

func TestParseBoundaryPolicy(t *testing.T) {
	p, err := ParseBoundaryPolicy("")
	require.NoError(t, err)
	assert.Equal(t, PolicyClamp, p)

	p, err = ParseBoundaryPolicy("PassThrough")
	require.NoError(t, err)
	assert.Equal(t, PolicyPassthrough, p)

	_, err = ParseBoundaryPolicy("reject")
	assert.Error(t, err)
}
