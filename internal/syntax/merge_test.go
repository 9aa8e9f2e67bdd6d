package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMerge(t *testing.T) {
	t.Run("sorts by start across pools", func(t *testing.T) {
		a := []Match{{Start: 5, End: 8, Kind: KindAlias}}
		b := []Match{{Start: 0, End: 3, Kind: KindChoice}}

		merged := Merge(a, b)
		assert.Equal(t, []Match{
			{Start: 0, End: 3, Kind: KindChoice},
			{Start: 5, End: 8, Kind: KindAlias},
		}, merged)
	})

	t.Run("drops overlapping later match", func(t *testing.T) {
		a := []Match{{Start: 0, End: 7, Kind: KindBrace, Depth: 1}}
		b := []Match{{Start: 2, End: 5, Kind: KindAlias}}

		merged := Merge(a, b)
		assert.Equal(t, []Match{{Start: 0, End: 7, Kind: KindBrace, Depth: 1}}, merged)
	})

	t.Run("adjacent matches both survive", func(t *testing.T) {
		a := []Match{{Start: 0, End: 3, Kind: KindBrace, Depth: 1}}
		b := []Match{{Start: 3, End: 6, Kind: KindAlias}}

		merged := Merge(a, b)
		assert.Len(t, merged, 2)
	})

	t.Run("first-registered wins equal starts", func(t *testing.T) {
		first := []Match{{Start: 0, End: 2, Kind: KindWeightMain}}
		second := []Match{{Start: 0, End: 4, Kind: KindChoice}}

		merged := Merge(first, second)
		assert.Equal(t, []Match{{Start: 0, End: 2, Kind: KindWeightMain}}, merged)
	})

	t.Run("empty pools", func(t *testing.T) {
		assert.Nil(t, Merge(nil, nil))
	})
}
