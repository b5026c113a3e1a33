// Package queue defines message payloads exchanged over the message broker.
package queue

// CheckPerformedEvent is published after every successful text check. It
// carries enough for downstream consumers to log or feed analytics
// without holding the checked text itself (which may be user content we
// should not persist).
type CheckPerformedEvent struct {
	RequestID    string  `json:"request_id"`
	TextLength   int     `json:"text_length"`
	WordsChecked int     `json:"words_checked"`
	ErrorsFound  int     `json:"errors_found"`
	Confidence   float64 `json:"confidence"`
	DurationMs   float64 `json:"duration_ms"`
	RemoteIP     string  `json:"remote_ip"`
	CheckedAt    string  `json:"checked_at"`
}
