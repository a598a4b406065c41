package cart

import (
	"context"
	"sync"
	"time"

	"github.com/neski321/E-Store-revamp/internal/domain"
)

// Coalescer debounces quantity writes per line item. Rapid +/- clicks from
// the UI each used to produce a remote write; here only the latest value
// within the window reaches the store. The clamped value is returned
// immediately so the caller can render it; the write itself is
// fire-and-forget, matching how abandoned in-flight quantity updates
// behave for non-critical writes.
type Coalescer struct {
	svc    *Service
	window time.Duration

	mu      sync.Mutex
	pending map[string]*pendingWrite
}

type pendingWrite struct {
	timer    *time.Timer
	sess     domain.Session
	quantity int
}

func NewCoalescer(svc *Service, window time.Duration) *Coalescer {
	return &Coalescer{
		svc:     svc,
		window:  window,
		pending: make(map[string]*pendingWrite),
	}
}

// SetQuantity records the latest requested quantity for the line and
// schedules one write after the debounce window. The returned item carries
// the clamped quantity the flush will store.
func (c *Coalescer) SetQuantity(ctx context.Context, sess domain.Session, itemID string, quantity int) (*domain.CartItem, error) {
	if sess.Anonymous {
		return nil, domain.ErrAccountRequired
	}
	item, err := c.svc.repo.GetByID(ctx, sess.UserID, itemID)
	if err != nil {
		return nil, err
	}
	clamped := item.ClampQuantity(quantity)

	c.mu.Lock()
	defer c.mu.Unlock()
	if p, ok := c.pending[itemID]; ok {
		p.quantity = clamped
		p.timer.Reset(c.window)
	} else {
		p := &pendingWrite{sess: sess, quantity: clamped}
		p.timer = time.AfterFunc(c.window, func() { c.flush(itemID) })
		c.pending[itemID] = p
	}

	item.Quantity = clamped
	return item, nil
}

// Flush writes out every pending quantity immediately. Called on shutdown
// so debounced values are not lost.
func (c *Coalescer) Flush() {
	c.mu.Lock()
	ids := make([]string, 0, len(c.pending))
	for id, p := range c.pending {
		p.timer.Stop()
		ids = append(ids, id)
	}
	c.mu.Unlock()

	for _, id := range ids {
		c.flush(id)
	}
}

func (c *Coalescer) flush(itemID string) {
	c.mu.Lock()
	p, ok := c.pending[itemID]
	if ok {
		delete(c.pending, itemID)
	}
	c.mu.Unlock()
	if !ok {
		return
	}

	// The originating request is gone by flush time; the write gets its
	// own deadline.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := c.svc.SetQuantity(ctx, p.sess, itemID, p.quantity); err != nil {
		c.svc.logger.Printf("cart: coalesced write item=%s qty=%d error=%v", itemID, p.quantity, err)
	}
}
