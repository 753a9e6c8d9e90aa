package service

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ReplyKind tells which known response shape a chat reply matched.
type ReplyKind int

const (
	// ReplyUnrecognized means no known shape matched; Reply.Text holds the
	// raw document truncated to [MaxUnrecognizedReply] characters.
	ReplyUnrecognized ReplyKind = iota
	// ReplyString is a bare JSON string.
	ReplyString
	// ReplyText is an object with a "text" field.
	ReplyText
	// ReplyMessage is an object with "message.content".
	ReplyMessage
	// ReplyChoiceMessage is an object with "choices[0].message.content".
	ReplyChoiceMessage
	// ReplyChoiceText is an object with "choices[0].text".
	ReplyChoiceText
)

// MaxUnrecognizedReply bounds the dump of an unrecognized reply.
const MaxUnrecognizedReply = 500

// Reply is a chat reply reduced to its answer text.
type Reply struct {
	Kind ReplyKind
	Text string
}

// replyShapes are tried in order; the first match wins.
var replyShapes = []struct {
	kind    ReplyKind
	extract func(v any) (any, bool)
}{
	{kind: ReplyString, extract: func(v any) (any, bool) {
		s, ok := v.(string)
		return s, ok
	}},
	{kind: ReplyText, extract: func(v any) (any, bool) {
		return lookup(v, "text")
	}},
	{kind: ReplyMessage, extract: func(v any) (any, bool) {
		return lookup(v, "message", "content")
	}},
	{kind: ReplyChoiceMessage, extract: func(v any) (any, bool) {
		return lookup(firstChoice(v), "message", "content")
	}},
	{kind: ReplyChoiceText, extract: func(v any) (any, bool) {
		return lookup(firstChoice(v), "text")
	}},
}

// DecodeReply matches raw against the known reply shapes. Recognized
// answers are trimmed. A bare string always matches, even when empty; object
// fields only match when they hold a non-empty scalar.
func DecodeReply(raw []byte) Reply {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return Reply{Kind: ReplyUnrecognized, Text: truncateRunes(string(raw), MaxUnrecognizedReply)}
	}

	for _, shape := range replyShapes {
		field, ok := shape.extract(v)
		if !ok {
			continue
		}
		if shape.kind == ReplyString {
			return Reply{Kind: shape.kind, Text: strings.TrimSpace(field.(string))}
		}
		if text, ok := scalarText(field); ok {
			return Reply{Kind: shape.kind, Text: strings.TrimSpace(text)}
		}
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, raw); err != nil {
		compact.Reset()
		compact.Write(raw)
	}
	return Reply{Kind: ReplyUnrecognized, Text: truncateRunes(compact.String(), MaxUnrecognizedReply)}
}

func lookup(v any, path ...string) (any, bool) {
	for _, key := range path {
		obj, ok := v.(map[string]any)
		if !ok {
			return nil, false
		}
		if v, ok = obj[key]; !ok {
			return nil, false
		}
	}
	return v, true
}

func firstChoice(v any) any {
	choices, ok := lookup(v, "choices")
	if !ok {
		return nil
	}
	list, ok := choices.([]any)
	if !ok || len(list) == 0 {
		return nil
	}
	return list[0]
}

// scalarText renders a non-empty scalar as text. Empty strings, zero, false,
// null and composite values do not count as an answer.
func scalarText(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, t != ""
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), t != 0
	case bool:
		return "true", t
	default:
		return "", false
	}
}

func truncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max])
}
