package models

import "time"

// TimestampLayout is the display format of [Note.Timestamp],
// e.g. "18 Oct 2026, 14:05".
const TimestampLayout = "02 Jan 2006, 15:04"

// Note is a single saved explanation of a topic.
//
// Topic is the unique key of a note within the collection: saving a note
// with an existing topic overwrites that entry in place. The JSON field
// names are part of the storage layout and must not change.
type Note struct {
	// Topic is the short subject the note explains. Never empty.
	Topic string `json:"topic"`

	// Text is the user-editable plain-text explanation.
	Text string `json:"text"`

	// Timestamp is a human-readable time of the last write, regenerated on
	// every edit. It is stored as display text, not as a parsable instant.
	Timestamp string `json:"timestamp"`
}

// FormatTimestamp renders t in [TimestampLayout].
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}
