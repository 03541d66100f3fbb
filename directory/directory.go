// Package directory keeps a continuously refreshed list of the nodes known to
// the manager and broadcasts every refreshed list to its subscribers.
package directory

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/maxpoletaev/meshconsole/manager"
	"github.com/maxpoletaev/meshconsole/mesh"
)

// Directory polls the manager for the node list. There is at most one refresh
// loop per directory; calling Refresh restarts it.
//
// Ticks are independent: a tick still waiting for the manager does not delay
// the next one. A response that arrives after a newer one has been published
// is discarded.
type Directory struct {
	client   Client
	logger   log.Logger
	interval time.Duration
	timeout  time.Duration
	subs     *broadcaster
	index    *snapshotIndex

	mut        sync.Mutex
	closed     bool
	cancelLoop context.CancelFunc
	loopDone   chan struct{}
	loops      atomic.Int32
	ticks      sync.WaitGroup

	pubMut  sync.Mutex
	seq     atomic.Uint64
	lastSeq uint64
}

func New(client Client, conf Config) (*Directory, error) {
	if conf.RefreshInterval <= 0 {
		return nil, fmt.Errorf("refresh interval must be > 0")
	}

	index, err := newSnapshotIndex()
	if err != nil {
		return nil, err
	}

	logger := conf.Logger
	if logger == nil {
		logger = log.NewNopLogger()
	}

	return &Directory{
		client:   client,
		logger:   logger,
		interval: conf.RefreshInterval,
		timeout:  conf.RequestTimeout,
		subs:     newBroadcaster(),
		index:    index,
	}, nil
}

// Subscribe returns a subscription to the node lists published from now on and
// restarts the refresh loop, so that a fresh list is requested immediately.
func (d *Directory) Subscribe() *Subscription {
	sub := d.subs.add()

	if d.isClosed() {
		sub.Close()
		return sub
	}

	d.Refresh()

	return sub
}

// Refresh stops the current refresh loop, if any, and starts a new one. The new
// loop requests the node list immediately and then every refresh interval.
func (d *Directory) Refresh() {
	d.mut.Lock()
	defer d.mut.Unlock()

	if d.closed {
		return
	}

	d.stopLoop()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	d.cancelLoop = cancel
	d.loopDone = done
	d.loops.Add(1)

	go d.runLoop(ctx, done)
}

func (d *Directory) isClosed() bool {
	d.mut.Lock()
	defer d.mut.Unlock()

	return d.closed
}

// Close stops the refresh loop, waits for in-flight requests, and closes all
// subscriptions.
func (d *Directory) Close() {
	d.mut.Lock()
	d.closed = true
	d.stopLoop()
	d.mut.Unlock()

	d.ticks.Wait()
	d.subs.closeAll()
}

// stopLoop must be called with d.mut held.
func (d *Directory) stopLoop() {
	if d.cancelLoop == nil {
		return
	}

	d.cancelLoop()
	<-d.loopDone

	d.cancelLoop = nil
	d.loopDone = nil
}

func (d *Directory) runLoop(ctx context.Context, done chan struct{}) {
	defer close(done)
	defer d.loops.Add(-1)

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	level.Debug(d.logger).Log("msg", "node refresh loop started", "interval", d.interval)

	d.tick(ctx)

	for {
		select {
		case <-ticker.C:
			d.tick(ctx)
		case <-ctx.Done():
			level.Debug(d.logger).Log("msg", "node refresh loop stopped")
			return
		}
	}
}

func (d *Directory) tick(ctx context.Context) {
	seq := d.seq.Add(1)

	d.ticks.Add(1)

	go func() {
		defer d.ticks.Done()

		nodes, err := d.fetch(ctx)
		if err != nil {
			if ctx.Err() == nil {
				level.Warn(d.logger).Log("msg", "failed to refresh nodes", "err", err)
			}

			return
		}

		d.publish(ctx, seq, nodes)
	}()
}

func (d *Directory) fetch(ctx context.Context) ([]mesh.Node, error) {
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)

		defer cancel()
	}

	resp, err := d.client.Get(ctx, "conn/getAll", manager.RequestOptions{})
	if err != nil {
		return nil, err
	}

	var nodes []mesh.Node
	if err := resp.Decode(&nodes); err != nil {
		return nil, err
	}

	if nodes == nil {
		nodes = []mesh.Node{}
	}

	return nodes, nil
}

func (d *Directory) publish(ctx context.Context, seq uint64, nodes []mesh.Node) {
	d.pubMut.Lock()
	defer d.pubMut.Unlock()

	// The loop has been restarted or stopped while the request was in flight.
	if ctx.Err() != nil || seq <= d.lastSeq {
		return
	}

	d.lastSeq = seq

	if err := d.index.replace(nodes); err != nil {
		level.Error(d.logger).Log("msg", "failed to index node snapshot", "err", err)
	}

	d.subs.publish(nodes)

	level.Debug(d.logger).Log("msg", "node list refreshed", "nodes", len(nodes), "subscribers", d.subs.len())
}

// LookupNode asks the manager for a single node.
func (d *Directory) LookupNode(ctx context.Context, key string) (mesh.Node, error) {
	resp, err := d.client.Post(ctx, "conn/getNode", map[string]string{"key": key}, manager.FormOptions())
	if err != nil {
		return mesh.Node{}, fmt.Errorf("%w: %w", mesh.ErrLookupFailed, err)
	}

	var node mesh.Node
	if err := resp.Decode(&node); err != nil {
		return mesh.Node{}, fmt.Errorf("%w: %w", mesh.ErrLookupFailed, err)
	}

	return node, nil
}

// Snapshot returns the most recently published node list, ordered by key.
func (d *Directory) Snapshot() []mesh.Node {
	return d.index.all()
}

// Find returns the node with the given key from the latest snapshot.
func (d *Directory) Find(key string) (mesh.Node, bool) {
	return d.index.first(keyIndex, key)
}

// FindByAddr returns the node with the given address from the latest snapshot.
func (d *Directory) FindByAddr(addr string) (mesh.Node, bool) {
	return d.index.first(addrIndex, addr)
}
