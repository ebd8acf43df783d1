package plot

// Sink receives rendered charts. Close flushes anything buffered.
type Sink interface {
	Render(data BarData) error
	Close() error
}
