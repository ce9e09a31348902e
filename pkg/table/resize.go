package table

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"
)

// resizeDebounce collapses a burst of resize events into a single redraw
// reflecting only the latest terminal geometry.
const resizeDebounce = 100 * time.Millisecond

// Handle controls a live-adapting render started by RenderWithResize.
type Handle struct {
	t        *Table
	sig      chan os.Signal
	done     chan struct{}
	once     sync.Once
	watching bool
}

// RenderWithResize renders the table and, when the output is an
// interactive terminal, subscribes to terminal resize notifications and
// redraws the block in place after each debounced burst. Stop must be
// called before the caller reads further terminal input, otherwise a
// stale redraw can corrupt an in-progress prompt.
func (t *Table) RenderWithResize() *Handle {
	t.Render()
	h := &Handle{
		t:    t,
		sig:  make(chan os.Signal, 8),
		done: make(chan struct{}),
	}
	if !t.interactive() {
		return h
	}
	h.watching = true
	notifyResize(h.sig)
	go h.watch()
	return h
}

// Watching reports whether the handle is subscribed to resize events.
// Non-interactive output never watches.
func (h *Handle) Watching() bool {
	return h.watching
}

// Stop unsubscribes from resize notifications and cancels any pending
// redraw. Safe to call more than once.
func (h *Handle) Stop() {
	h.once.Do(func() {
		if h.watching {
			signal.Stop(h.sig)
		}
		close(h.done)
	})
}

func (h *Handle) watch() {
	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-h.done:
			if timer != nil {
				timer.Stop()
			}
			return
		case <-h.sig:
			// Re-arm on every event so only the last one of a burst
			// triggers a redraw.
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(resizeDebounce)
			fire = timer.C
		case <-fire:
			fire = nil
			h.t.redraw()
		}
	}
}

// redraw erases the previously rendered block and renders again at the
// current width. The erase distance is the visual line count of the old
// block at the new width: the terminal re-wraps long lines when it
// narrows, so counting source lines alone would leave stale rows behind.
func (t *Table) redraw() {
	width := t.widthFn()
	t.mu.Lock()
	prev := t.lastBlock
	t.mu.Unlock()
	if up := visualLines(prev, width); up > 0 {
		fmt.Fprintf(t.out, "\x1b[%dA\r\x1b[J", up)
	}
	t.renderAt(width)
}
