package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameCache(t *testing.T) {
	t.Run("одинаковое содержимое - один и тот же фрейм", func(t *testing.T) {
		cache := NewFrameCache(time.Minute)
		a := newTable([]string{"A"}, []string{"P"}, [][]any{{1}})
		b := newTable([]string{"A"}, []string{"P"}, [][]any{{1}})

		first := cache.Numeric(a)
		second := cache.Numeric(b)

		assert.Same(t, first, second)
		assert.Equal(t, 1, cache.Len())
	})

	t.Run("другое содержимое - другой ключ", func(t *testing.T) {
		cache := NewFrameCache(time.Minute)

		first := cache.Numeric(newTable([]string{"A"}, []string{"P"}, [][]any{{1}}))
		second := cache.Numeric(newTable([]string{"A"}, []string{"P"}, [][]any{{2}}))

		assert.NotSame(t, first, second)
		assert.Equal(t, 2.0, second.Values[0][0])
	})

	t.Run("запись истекает по таймауту", func(t *testing.T) {
		cache := NewFrameCache(time.Minute)
		now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
		cache.now = func() time.Time { return now }
		table := newTable([]string{"A"}, []string{"P"}, [][]any{{1}})

		first := cache.Numeric(table)
		now = now.Add(2 * time.Minute)
		second := cache.Numeric(table)

		assert.NotSame(t, first, second)
		assert.Equal(t, 1, cache.Len())
	})

	t.Run("нулевой TTL отключает кэш", func(t *testing.T) {
		cache := NewFrameCache(0)
		table := newTable([]string{"A"}, []string{"P"}, [][]any{{1}})

		assert.NotSame(t, cache.Numeric(table), cache.Numeric(table))
		assert.Equal(t, 0, cache.Len())
	})
}
