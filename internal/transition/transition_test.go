package transition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"navctl/internal/slot"
)

func TestFamilies(t *testing.T) {
	tests := []struct {
		kind                Kind
		push, cover, reveal bool
	}{
		{None, false, false, false},
		{PushLeft, true, false, false},
		{PushRight, true, false, false},
		{PushUp, true, false, false},
		{PushDown, true, false, false},
		{CoverLeft, false, true, false},
		{CoverRight, false, true, false},
		{CoverUp, false, true, false},
		{CoverDown, false, true, false},
		{RevealLeft, false, false, true},
		{RevealRight, false, false, true},
		{RevealUp, false, false, true},
		{RevealDown, false, false, true},
		{Kind(42), false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.push, IsPush(tt.kind))
			assert.Equal(t, tt.cover, IsCover(tt.kind))
			assert.Equal(t, tt.reveal, IsReveal(tt.kind))
			assert.Equal(t, tt.reveal, tt.kind.IsReveal())
		})
	}
}

func TestKindValidAndNames(t *testing.T) {
	assert.Len(t, Kinds(), 13)
	for _, k := range Kinds() {
		require.True(t, k.Valid())
		parsed, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}
	assert.False(t, Kind(-1).Valid())
	assert.False(t, Kind(13).Valid())
	assert.Equal(t, "Kind(13)", Kind(13).String())

	k, err := ParseKind("  Cover-Up ")
	require.NoError(t, err)
	assert.Equal(t, CoverUp, k)

	_, err = ParseKind("slide")
	assert.Error(t, err)
}

// start/end pairs for the animated coordinates of each kind.
type span struct{ from, to float64 }

func TestCompute_Interpolates(t *testing.T) {
	tests := []struct {
		kind                       Kind
		prevX, prevY, nextX, nextY span
	}{
		{None, span{0, -100}, span{}, span{100, 0}, span{}},
		{PushLeft, span{0, -100}, span{}, span{100, 0}, span{}},
		{PushRight, span{0, 100}, span{}, span{-100, 0}, span{}},
		{PushUp, span{}, span{0, -100}, span{}, span{100, 0}},
		{PushDown, span{}, span{0, 100}, span{}, span{-100, 0}},
		{CoverLeft, span{}, span{}, span{100, 0}, span{}},
		{CoverRight, span{}, span{}, span{-100, 0}, span{}},
		{CoverUp, span{}, span{}, span{}, span{100, 0}},
		{CoverDown, span{}, span{}, span{}, span{-100, 0}},
		{RevealLeft, span{0, -100}, span{}, span{}, span{}},
		{RevealRight, span{0, 100}, span{}, span{}, span{}},
		{RevealUp, span{}, span{0, -100}, span{}, span{}},
		{RevealDown, span{}, span{0, 100}, span{}, span{}},
	}
	at := func(s span, p float64) float64 { return s.from + p*(s.to-s.from) }
	for _, tt := range tests {
		for _, p := range []float64{0, 0.25, 0.5, 1} {
			got := Compute(p, tt.kind)
			assert.InDelta(t, at(tt.prevX, p), got.Prev.X, 1e-9, "%s prevX @%v", tt.kind, p)
			assert.InDelta(t, at(tt.prevY, p), got.Prev.Y, 1e-9, "%s prevY @%v", tt.kind, p)
			assert.InDelta(t, at(tt.nextX, p), got.Next.X, 1e-9, "%s nextX @%v", tt.kind, p)
			assert.InDelta(t, at(tt.nextY, p), got.Next.Y, 1e-9, "%s nextY @%v", tt.kind, p)
		}
	}
}

func TestCompute_SettlesIncomingAtOrigin(t *testing.T) {
	for _, k := range Kinds() {
		got := Compute(1, k)
		assert.Equal(t, slot.Offset{}, got.Next, "%s: incoming view must land at 0,0", k)
		if IsCover(k) {
			assert.Equal(t, slot.Offset{}, got.Prev, "%s: outgoing view stays put", k)
			continue
		}
		// Every other kind moves the outgoing view fully off one edge.
		assert.Equal(t, 100.0, abs(got.Prev.X)+abs(got.Prev.Y), "%s outgoing terminal", k)
	}
}

func TestCompute_UnknownKindActsAsNone(t *testing.T) {
	assert.Equal(t, Compute(0.3, None), Compute(0.3, Kind(99)))
}

func TestCompute_Overshoot(t *testing.T) {
	got := Compute(1.1, PushLeft)
	assert.InDelta(t, -110, got.Prev.X, 1e-9)
	assert.InDelta(t, -10, got.Next.X, 1e-9)
}

func TestResolve(t *testing.T) {
	k, fn := Resolve(nil, PushRight)
	assert.Equal(t, PushRight, k)
	assert.Nil(t, fn)

	k, fn = Resolve(CoverUp, PushRight)
	assert.Equal(t, CoverUp, k)
	assert.Nil(t, fn)

	custom := Func(func(prev, next slot.Target, done func()) { done() })
	k, fn = Resolve(custom, PushRight)
	assert.Equal(t, None, k)
	assert.NotNil(t, fn)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func TestReverse(t *testing.T) {
	for _, k := range Kinds() {
		r := Reverse(k)
		assert.Equal(t, k, Reverse(r), "%s", k)
		if k == None {
			continue
		}
		// The reversed motion ends where the forward one started.
		fwd, back := Compute(0, k), Compute(1, r)
		assert.Equal(t, fwd.Prev, back.Next, "%s", k)
		assert.Equal(t, fwd.Next, back.Prev, "%s", k)
	}
	assert.Equal(t, None, Reverse(Kind(99)))
}
