package view

import "strings"

// State is the lifecycle position of a card in the main list.
type State int

const (
	// Draft is an unsaved suggestion awaiting Accept or Discard.
	Draft State = iota
	// Saved is a persisted, editable note.
	Saved
)

func (s State) String() string {
	switch s {
	case Draft:
		return "draft"
	case Saved:
		return "saved"
	default:
		return "unknown"
	}
}

// Card is one entry of the main list.
type Card struct {
	ID        string
	Topic     string
	Timestamp string
	// Body is the text shown and edited by the user. Drafts carry the
	// "[topic] " prefix in front of the suggestion.
	Body   string
	State  State
	Hidden bool
}

// GridCard is one entry of the search grid. Only saved notes appear here.
type GridCard struct {
	Topic     string
	Timestamp string
	Text      string
	Hidden    bool
}

func topicPrefix(topic string) string {
	return "[" + topic + "] "
}

// stripTopicPrefix removes the first occurrence of the "[topic] " marker.
func stripTopicPrefix(topic, body string) string {
	return strings.Replace(body, topicPrefix(topic), "", 1)
}

func (c Card) matches(query string) bool {
	return matches(query, c.Topic, c.Timestamp, c.Body)
}

func (g GridCard) matches(query string) bool {
	return matches(query, g.Topic, g.Timestamp, g.Text)
}

// matches reports whether the lower-cased query is a substring of the
// visible text made of fields.
func matches(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(strings.Join(fields, "\n")), query)
}
