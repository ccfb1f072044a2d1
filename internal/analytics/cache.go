package analytics

import (
	"sync"
	"time"

	"github.com/bagdasarian/position-helper/internal/domain"
	"github.com/mitchellh/hashstructure/v2"
)

// FrameCache мемоизирует NumericFrame по содержимому таблицы. Записи живут
// фиксированное время, другой политики вытеснения нет.
type FrameCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[uint64]frameEntry
	now     func() time.Time
}

type frameEntry struct {
	frame   *Frame
	expires time.Time
}

func NewFrameCache(ttl time.Duration) *FrameCache {
	return &FrameCache{
		ttl:     ttl,
		entries: map[uint64]frameEntry{},
		now:     time.Now,
	}
}

// Numeric возвращает числовой фрейм таблицы. Результат разделяется между
// вызовами и не должен изменяться.
func (c *FrameCache) Numeric(table *domain.PositionTable) *Frame {
	key, err := hashstructure.Hash(table, hashstructure.FormatV2, nil)
	if err != nil || c.ttl <= 0 {
		return NumericFrame(table)
	}

	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		if now.Before(e.expires) {
			return e.frame
		}
		delete(c.entries, key)
	}

	for k, e := range c.entries {
		if !now.Before(e.expires) {
			delete(c.entries, k)
		}
	}

	frame := NumericFrame(table)
	c.entries[key] = frameEntry{frame: frame, expires: now.Add(c.ttl)}
	return frame
}

func (c *FrameCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
