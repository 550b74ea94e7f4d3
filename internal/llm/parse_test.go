package llm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStripFence(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "json fence",
			content: "```json\n{\"summary\": \"s\"}\n```",
			want:    `{"summary": "s"}`,
		},
		{
			name:    "bare fence",
			content: "```\n{\"summary\": \"s\"}\n```",
			want:    `{"summary": "s"}`,
		},
		{
			name:    "fence with leading prose",
			content: "Here you go:\n```json\n{\"a\":1}\n```\nLet me know!",
			want:    `{"a":1}`,
		},
		{
			name:    "no fence",
			content: "  {\"a\":1}  ",
			want:    `{"a":1}`,
		},
		{
			name:    "unterminated fence",
			content: "```json\n{\"a\":1}",
			want:    `{"a":1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripFence(tt.content))
		})
	}
}

func TestDecodeResponse(t *testing.T) {
	parsed, ok := decodeResponse[summaryPayload]("```json\n{\"summary\":\"s\",\"remedy\":\"r\"}\n```")
	assert.True(t, ok)
	assert.Equal(t, "s", parsed.Summary)
	assert.Equal(t, "r", parsed.Remedy)

	_, ok = decodeResponse[summaryPayload]("not json at all")
	assert.False(t, ok)

	// Missing fields decode to zero values, not failure.
	parsed, ok = decodeResponse[summaryPayload](`{"summary":"only"}`)
	assert.True(t, ok)
	assert.Equal(t, "only", parsed.Summary)
	assert.Empty(t, parsed.Remedy)

	// Mixed-type command arrays survive; stringification happens later.
	cmds, ok := decodeResponse[commandsPayload](`{"commands": ["aws foo", 7]}`)
	assert.True(t, ok)
	assert.Len(t, cmds.Commands, 2)
}

func TestBackoffPolicyDoubles(t *testing.T) {
	p := backoffPolicy{base: 2 * time.Second}
	var prev time.Duration
	for i := 0; i < 5; i++ {
		d := p.delay(i)
		if i > 0 {
			assert.Equal(t, prev*2, d)
		}
		prev = d
	}
}

func TestModelForAttemptWrapsAround(t *testing.T) {
	models := []string{"a", "b", "c"}
	got := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		got = append(got, modelForAttempt(models, i))
	}
	assert.Equal(t, []string{"a", "b", "c", "a", "b", "c", "a"}, got)
}
