package trace

// Log collects event records during a simulation run. It is append-only:
// the engine retains full history, and presentation layers may display only
// a suffix via Tail.
type Log struct {
	records []Record
}

// NewLog creates an empty Log ready for recording.
func NewLog() *Log {
	return &Log{records: make([]Record, 0)}
}

// Append records one event.
func (l *Log) Append(tick int64, message string, level Level) {
	l.records = append(l.records, Record{Tick: tick, Message: message, Level: level})
}

// Len returns the number of records.
func (l *Log) Len() int {
	return len(l.records)
}

// Records returns a copy of the full history. Callers observe a snapshot
// and cannot mutate the log through it.
func (l *Log) Records() []Record {
	out := make([]Record, len(l.records))
	copy(out, l.records)
	return out
}

// Tail returns a copy of the most recent n records (all of them when the
// history is shorter than n).
func (l *Log) Tail(n int) []Record {
	if n <= 0 {
		return nil
	}
	start := len(l.records) - n
	if start < 0 {
		start = 0
	}
	out := make([]Record, len(l.records)-start)
	copy(out, l.records[start:])
	return out
}
