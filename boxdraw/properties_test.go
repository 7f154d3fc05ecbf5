package boxdraw

import (
	"sync"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allMasks() []Mask {
	masks := make([]Mask, 0, 16)
	for m := MaskNone; m <= MaskAll; m++ {
		masks = append(masks, m)
	}
	return masks
}

func TestRoundTripMask(t *testing.T) {
	for _, m := range allMasks() {
		r, err := BitsToChar(m)
		require.NoError(t, err)
		back, err := CharToBits(r)
		require.NoError(t, err, "glyph %q", r)
		assert.Equal(t, m, back, "mask %v", m)
	}
}

func TestRoundTripGlyph(t *testing.T) {
	glyphs := Light.Glyphs()
	seen := make(map[rune]bool, len(glyphs))
	for _, g := range glyphs {
		require.False(t, seen[g], "duplicate glyph %q", g)
		seen[g] = true

		m, err := CharToBits(g)
		require.NoError(t, err)
		r, err := BitsToChar(m)
		require.NoError(t, err)
		assert.Equal(t, g, r)
	}
}

func TestStackAlgebra(t *testing.T) {
	glyphs := Light.Glyphs()

	for _, a := range glyphs {
		got, ok := Stack(a, a)
		require.True(t, ok)
		assert.Equal(t, a, got, "idempotence of %q", a)

		got, ok = Stack(a, Blank)
		require.True(t, ok)
		assert.Equal(t, a, got, "blank identity of %q", a)

		for _, b := range glyphs {
			ab, okAB := Stack(a, b)
			ba, okBA := Stack(b, a)
			require.True(t, okAB)
			require.True(t, okBA)
			assert.Equal(t, ab, ba, "commutativity of %q %q", a, b)

			for _, c := range glyphs {
				left, ok := Stack(ab, c)
				require.True(t, ok)
				bc, ok := Stack(b, c)
				require.True(t, ok)
				right, ok := Stack(a, bc)
				require.True(t, ok)
				assert.Equal(t, left, right, "associativity of %q %q %q", a, b, c)

				ma, _ := CharToBits(a)
				mb, _ := CharToBits(b)
				mc, _ := CharToBits(c)
				ml, err := CharToBits(left)
				require.NoError(t, err)
				assert.Equal(t, ma|mb|mc, ml)
			}
		}
	}
}

func TestStackAllMatchesPairwise(t *testing.T) {
	glyphs := Light.Glyphs()
	for _, a := range glyphs {
		for _, b := range glyphs {
			pair, ok := Stack(a, b)
			require.True(t, ok)
			all, ok := StackAll(a, b)
			require.True(t, ok)
			assert.Equal(t, pair, all)
		}
	}
}

func TestStackRejectsUnsupported(t *testing.T) {
	for _, g := range Light.Glyphs() {
		for _, bad := range []rune{'X', '═', '┃', '╭', '+'} {
			_, ok := Stack(g, bad)
			assert.False(t, ok, "%q with %q", g, bad)
			_, ok = Stack(bad, g)
			assert.False(t, ok, "%q with %q", bad, g)
		}
	}
}

// Every glyph must fill exactly one terminal cell so a grid owner can overwrite in place
func TestGlyphWidth(t *testing.T) {
	cond := &runewidth.Condition{EastAsianWidth: false}
	for _, g := range Light.Glyphs() {
		assert.Equal(t, 1, cond.RuneWidth(g), "width of %q (%U)", g, g)
	}
}

func TestConcurrentStack(t *testing.T) {
	glyphs := Light.Glyphs()
	var wg sync.WaitGroup
	errs := make(chan string, 64)

	for w := 0; w < 16; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				a := glyphs[(w+i)%len(glyphs)]
				b := glyphs[(w*7+i)%len(glyphs)]
				got, ok := Stack(a, b)
				ma, _ := CharToBits(a)
				mb, _ := CharToBits(b)
				if !ok || got != MustBitsToChar(ma|mb) {
					select {
					case errs <- string([]rune{a, b}):
					default:
					}
					return
				}
			}
		}(w)
	}

	wg.Wait()
	close(errs)
	for pair := range errs {
		t.Errorf("Concurrent stack mismatch for %q", pair)
	}
}
