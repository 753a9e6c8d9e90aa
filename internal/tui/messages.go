package tui

// suggestionMsg delivers a finished suggestion for topic.
type suggestionMsg struct {
	topic string
	text  string
}

type clearStatusMsg struct{}
