package batch

// Status tells whether a batch is still running or how it finished.
type Status int

const (
	Running Status = iota
	Loaded
	Saved
)

func (s Status) String() string {
	switch s {
	case Loaded:
		return "loaded"
	case Saved:
		return "saved"
	default:
		return "running"
	}
}

// Progress reports how many of a batch's files have been handled.
type Progress struct {
	Completed int
	Total     int
	Status    Status
}

// Terminal reports whether p is the last progress of its batch.
func (p Progress) Terminal() bool {
	return p.Status != Running
}

// Percent returns the completion ratio in [0, 100].
// An empty batch that has finished counts as 100.
func (p Progress) Percent() int {
	if p.Total <= 0 {
		if p.Terminal() {
			return 100
		}
		return 0
	}
	return min(p.Completed*100/p.Total, 100)
}

// Channel carries progress from a worker to the control loop.
// It keeps at most one unread value: a newer value replaces an unread older
// one, so the reader always sees the latest state. Safe for one sender and
// one receiver.
type Channel struct {
	ch chan Progress
}

// NewChannel creates an empty progress channel.
func NewChannel() *Channel {
	return &Channel{ch: make(chan Progress, 1)}
}

// Send publishes p, replacing any value the receiver has not read yet.
func (c *Channel) Send(p Progress) {
	for {
		select {
		case c.ch <- p:
			return
		default:
		}
		// Buffer full: drop the stale value and retry
		select {
		case <-c.ch:
		default:
		}
	}
}

// TryLatest returns the latest unread progress without blocking.
// ok is false when nothing new was sent since the last read.
func (c *Channel) TryLatest() (p Progress, ok bool) {
	select {
	case p = <-c.ch:
		return p, true
	default:
		return Progress{}, false
	}
}
