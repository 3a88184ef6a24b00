package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrEmptyOutput marks a completion that normalized to nothing even though
// the provider reported success.
var ErrEmptyOutput = errors.New("provider returned empty output")

// Output is a provider's raw completion payload. Providers disagree on
// shape: some return a single string, some a list of string fragments, and
// misbehaving ones return arbitrary JSON. The kind is fixed at decode time
// and resolved by Normalize.
type Output struct {
	kind      outputKind
	text      string
	fragments []string
	raw       json.RawMessage
}

type outputKind int

const (
	outputNone outputKind = iota
	outputText
	outputFragments
	outputOther
)

func (o *Output) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" || trimmed == "" {
		*o = Output{kind: outputNone}
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*o = Output{kind: outputText, text: text}
		return nil
	}

	var fragments []string
	if err := json.Unmarshal(data, &fragments); err == nil {
		*o = Output{kind: outputFragments, fragments: fragments}
		return nil
	}

	*o = Output{kind: outputOther, raw: append(json.RawMessage(nil), data...)}
	return nil
}

// Normalize resolves the raw payload into a single reply string: fragments
// are concatenated in order, a string is used directly, and anything else is
// textualized. A result that trims to nothing is ErrEmptyOutput regardless
// of what the provider claimed.
func (o Output) Normalize() (string, error) {
	var text string
	switch o.kind {
	case outputText:
		text = o.text
	case outputFragments:
		text = strings.Join(o.fragments, "")
	case outputOther:
		var value interface{}
		if err := json.Unmarshal(o.raw, &value); err != nil {
			text = string(o.raw)
		} else {
			text = fmt.Sprint(value)
		}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyOutput
	}
	return text, nil
}

var (
	boldMarkers   = regexp.MustCompile(`\*\*`)
	tableBars     = regexp.MustCompile(`\|`)
	ruleLines     = regexp.MustCompile(`---+`)
	headingMarks  = regexp.MustCompile(`#{1,6}\s*`)
	quoteMarks    = regexp.MustCompile(`>\s*`)
	surplusBlanks = regexp.MustCompile(`\n\s*\n\s*\n`)
)

// CleanMarkdown strips Markdown artifacts chat-completion models tend to
// emit, so the widget renders plain readable text.
func CleanMarkdown(s string) string {
	s = boldMarkers.ReplaceAllString(s, "")
	s = tableBars.ReplaceAllString(s, " ")
	s = ruleLines.ReplaceAllString(s, "")
	s = headingMarks.ReplaceAllString(s, "")
	s = quoteMarks.ReplaceAllString(s, "")
	s = surplusBlanks.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
