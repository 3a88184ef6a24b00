package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChatMode(t *testing.T) {
	cases := []struct {
		in   string
		want ChatMode
	}{
		{"", ModeHybrid},
		{"hybrid", ModeHybrid},
		{"knowledge-base", ModeKnowledgeBase},
		{"ai", ModeAI},
	}

	for _, tc := range cases {
		mode, err := ParseChatMode(tc.in)
		require.NoError(t, err, "mode %q", tc.in)
		assert.Equal(t, tc.want, mode)
	}
}

func TestParseChatModeRejectsUnknown(t *testing.T) {
	for _, in := range []string{"Hybrid", "kb", "knowledge_base", "AI", "auto"} {
		_, err := ParseChatMode(in)
		assert.ErrorIs(t, err, ErrUnknownChatMode, "mode %q", in)
	}
}
