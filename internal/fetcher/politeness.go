package fetcher

import (
	"context"
	"math/rand"
	"time"
)

// Пауза вежливости перед каждым запросом: целое число секунд из [0, 3).
const politenessMaxSeconds = 3

type politenessDelay struct {
	rng        *rand.Rand
	maxSeconds int
}

func newPolitenessDelay() *politenessDelay {
	return &politenessDelay{
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		maxSeconds: politenessMaxSeconds,
	}
}

func (d *politenessDelay) next() time.Duration {
	return time.Duration(d.rng.Intn(d.maxSeconds)) * time.Second
}

// Wait блокирует на случайную паузу либо до отмены контекста. Пауза
// применяется безусловно, независимо от исхода предыдущих запросов.
func (d *politenessDelay) Wait(ctx context.Context) error {
	pause := d.next()
	if pause == 0 {
		return ctx.Err()
	}

	select {
	case <-time.After(pause):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
