package directory

import (
	"sync"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"

	"github.com/maxpoletaev/meshconsole/mesh"
)

// Subscription receives node snapshots published after it was created. Only the
// newest undelivered snapshot is kept for a slow subscriber.
type Subscription struct {
	ID uuid.UUID
	C  <-chan []mesh.Node

	ch    chan []mesh.Node
	owner *broadcaster
	once  sync.Once
}

// Close stops the subscription and closes C. It is safe to call Close multiple times.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.owner.remove(s.ID)
	})
}

type broadcaster struct {
	mut  sync.RWMutex
	subs map[uuid.UUID]*Subscription
}

func newBroadcaster() *broadcaster {
	return &broadcaster{
		subs: make(map[uuid.UUID]*Subscription),
	}
}

func (b *broadcaster) add() *Subscription {
	ch := make(chan []mesh.Node, 1)

	sub := &Subscription{
		ID:    uuid.New(),
		C:     ch,
		ch:    ch,
		owner: b,
	}

	b.mut.Lock()
	b.subs[sub.ID] = sub
	b.mut.Unlock()

	return sub
}

func (b *broadcaster) remove(id uuid.UUID) {
	b.mut.Lock()
	defer b.mut.Unlock()

	if sub, ok := b.subs[id]; ok {
		delete(b.subs, id)
		close(sub.ch)
	}
}

func (b *broadcaster) len() int {
	b.mut.RLock()
	defer b.mut.RUnlock()

	return len(b.subs)
}

func (b *broadcaster) publish(nodes []mesh.Node) {
	b.mut.RLock()
	defer b.mut.RUnlock()

	for _, sub := range b.subs {
		snapshot := slices.Clone(nodes)

		select {
		case sub.ch <- snapshot:
			continue
		default:
		}

		// The subscriber has not consumed the previous snapshot yet,
		// replace it with the newer one.
		select {
		case <-sub.ch:
		default:
		}

		select {
		case sub.ch <- snapshot:
		default:
		}
	}
}

func (b *broadcaster) closeAll() {
	b.mut.Lock()
	defer b.mut.Unlock()

	for id, sub := range b.subs {
		delete(b.subs, id)
		close(sub.ch)
	}
}
