package wlrender

import (
	"sync"
	"time"
)

// BlinkPhase is the current blink-attribute display phase: cells with
// AttrBlink set are painted only while Phase is BlinkOn.
type BlinkPhase bool

const (
	BlinkOn  BlinkPhase = true
	BlinkOff BlinkPhase = false
)

const blinkInterval = 500 * time.Millisecond

// BlinkClock toggles phase every 500ms while armed and disarms itself
// when a frame finds no visible blinking cell. Grounded on bubbletea's
// tick/timer idiom in subscriptions.go (Every/Tick), generalized from a
// one-shot command into a long-lived, externally armable ticker since
// the core owns its own render loop rather than a bubbletea-style
// message pump.
type BlinkClock struct {
	mu      sync.Mutex
	phase   BlinkPhase
	active  bool
	ticker  *time.Ticker
	stop    chan struct{}
	logger  Logger
}

func NewBlinkClock(logger Logger) *BlinkClock {
	if logger == nil {
		logger = NopLogger{}
	}
	return &BlinkClock{phase: BlinkOn, logger: logger}
}

// Arm starts the periodic timer if it is not already running. A timer
// failure degrades the blink subsystem to "always on" rather than
// failing the frame; in this Go rendition the only failure mode
// modeled is "already armed", which Arm treats as a no-op rather than
// an error.
func (b *BlinkClock) Arm() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.active {
		return nil
	}
	b.active = true
	b.phase = BlinkOn
	b.ticker = time.NewTicker(blinkInterval)
	b.stop = make(chan struct{})
	ticker, stop := b.ticker, b.stop
	go b.run(ticker, stop)
	return nil
}

func (b *BlinkClock) run(ticker *time.Ticker, stop chan struct{}) {
	for {
		select {
		case <-ticker.C:
			b.mu.Lock()
			b.phase = !b.phase
			b.mu.Unlock()
		case <-stop:
			ticker.Stop()
			return
		}
	}
}

// Disarm stops the timer and resets phase to On, so a newly-armed cell
// starts out visible.
func (b *BlinkClock) Disarm() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.active {
		return
	}
	b.active = false
	close(b.stop)
	b.phase = BlinkOn
}

// Phase reports the current blink display phase.
func (b *BlinkClock) Phase() BlinkPhase {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.phase
}

// Active reports whether the timer is currently armed.
func (b *BlinkClock) Active() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.active
}

// Reconcile implements the per-frame arm/disarm decision: if active but
// nothing visible still blinks, disarm; if inactive but something now
// blinks, arm.
func (b *BlinkClock) Reconcile(anyVisibleBlink bool) {
	switch {
	case b.Active() && !anyVisibleBlink:
		b.Disarm()
	case !b.Active() && anyVisibleBlink:
		_ = b.Arm()
	}
}
