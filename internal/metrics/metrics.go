// Package metrics provides application-level metrics collection.
// This is a lightweight metrics foundation using atomic counters.
// For production observability, consider integrating with Prometheus or similar.
package metrics

import (
	"sync/atomic"
	"time"
)

// Metrics holds application metrics using atomic counters for thread safety.
type Metrics struct {
	// Word-level throughput, one tick per 8-byte word shared or reconstructed.
	wordsEncoded  atomic.Int64
	wordsDecoded  atomic.Int64
	encodeLatency atomic.Int64 // nanoseconds, across all Encode calls
	decodeLatency atomic.Int64 // nanoseconds, across all Decode calls

	// Share file I/O.
	sharesWritten atomic.Int64
	sharesRead    atomic.Int64
	ioErrors      atomic.Int64
}

// Global is the global metrics instance.
// Use this for recording metrics throughout the application.
//
//nolint:gochecknoglobals // Intentional global for metrics access
var Global = &Metrics{}

// RecordEncode records an Encode call covering wordCount input words and
// sharesWritten output share files, taking duration and finishing with err.
func (m *Metrics) RecordEncode(wordCount, sharesWritten int, duration time.Duration, err error) {
	m.wordsEncoded.Add(int64(wordCount))
	m.sharesWritten.Add(int64(sharesWritten))
	m.encodeLatency.Add(duration.Nanoseconds())
	if err != nil {
		m.ioErrors.Add(1)
	}
}

// RecordDecode records a Decode call covering wordCount reconstructed words
// and sharesRead input share files, taking duration and finishing with err.
func (m *Metrics) RecordDecode(wordCount, sharesRead int, duration time.Duration, err error) {
	m.wordsDecoded.Add(int64(wordCount))
	m.sharesRead.Add(int64(sharesRead))
	m.decodeLatency.Add(duration.Nanoseconds())
	if err != nil {
		m.ioErrors.Add(1)
	}
}

// Snapshot is a point-in-time copy of all metrics.
type Snapshot struct {
	WordsEncoded  int64
	WordsDecoded  int64
	SharesWritten int64
	SharesRead    int64
	EncodeNanos   int64
	DecodeNanos   int64
	IOErrors      int64
}

// Snapshot returns a point-in-time copy of all metrics.
func (m *Metrics) Snapshot() Snapshot {
	return Snapshot{
		WordsEncoded:  m.wordsEncoded.Load(),
		WordsDecoded:  m.wordsDecoded.Load(),
		SharesWritten: m.sharesWritten.Load(),
		SharesRead:    m.sharesRead.Load(),
		EncodeNanos:   m.encodeLatency.Load(),
		DecodeNanos:   m.decodeLatency.Load(),
		IOErrors:      m.ioErrors.Load(),
	}
}

// WordsEncoded returns the total number of words shared via Encode.
func (m *Metrics) WordsEncoded() int64 {
	return m.wordsEncoded.Load()
}

// WordsDecoded returns the total number of words reconstructed via Decode.
func (m *Metrics) WordsDecoded() int64 {
	return m.wordsDecoded.Load()
}

// EncodeLatencyAvgMs returns the average Encode time per encoded word in
// milliseconds (total Encode duration divided by words encoded).
// Returns 0 if no words have been encoded.
func (m *Metrics) EncodeLatencyAvgMs() float64 {
	words := m.wordsEncoded.Load()
	if words == 0 {
		return 0
	}
	nanos := m.encodeLatency.Load()
	return float64(nanos) / float64(words) / 1e6
}

// DecodeLatencyAvgMs returns the average Decode time per reconstructed word
// in milliseconds (total Decode duration divided by words decoded).
// Returns 0 if no words have been decoded.
func (m *Metrics) DecodeLatencyAvgMs() float64 {
	words := m.wordsDecoded.Load()
	if words == 0 {
		return 0
	}
	nanos := m.decodeLatency.Load()
	return float64(nanos) / float64(words) / 1e6
}

// IOErrorRate returns the number of Encode/Decode calls that recorded an
// error divided by the total number of share files written and read, as a
// percentage. Returns 0 if no share files have been recorded.
func (m *Metrics) IOErrorRate() float64 {
	total := m.sharesWritten.Load() + m.sharesRead.Load()
	if total == 0 {
		return 0
	}
	return float64(m.ioErrors.Load()) / float64(total) * 100
}

// Reset resets all metrics to zero.
// Useful for testing.
func (m *Metrics) Reset() {
	m.wordsEncoded.Store(0)
	m.wordsDecoded.Store(0)
	m.encodeLatency.Store(0)
	m.decodeLatency.Store(0)
	m.sharesWritten.Store(0)
	m.sharesRead.Store(0)
	m.ioErrors.Store(0)
}
