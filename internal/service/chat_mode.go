package service

import "errors"

// ErrUnknownChatMode rejects typo'd modes instead of silently falling
// through to a default behavior.
var ErrUnknownChatMode = errors.New("unknown chat mode")

// ChatMode is a closed enumeration of the resolution policies.
type ChatMode int

const (
	ModeHybrid ChatMode = iota
	ModeKnowledgeBase
	ModeAI
)

// ParseChatMode maps the wire value to a mode. An empty value defaults to
// hybrid; anything unrecognized is an error.
func ParseChatMode(s string) (ChatMode, error) {
	switch s {
	case "", "hybrid":
		return ModeHybrid, nil
	case "knowledge-base":
		return ModeKnowledgeBase, nil
	case "ai":
		return ModeAI, nil
	default:
		return ModeHybrid, ErrUnknownChatMode
	}
}

func (m ChatMode) String() string {
	switch m {
	case ModeKnowledgeBase:
		return "knowledge-base"
	case ModeAI:
		return "ai"
	default:
		return "hybrid"
	}
}
