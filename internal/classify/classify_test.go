package classify

import (
	"context"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/prospect-cli/pkg/anthropic"
)

// fakeLLM records the last request and returns a canned response.
type fakeLLM struct {
	lastReq anthropic.MessageRequest
	text    string
	err     error
}

func (f *fakeLLM) CreateMessage(_ context.Context, req anthropic.MessageRequest) (*anthropic.MessageResponse, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &anthropic.MessageResponse{
		Content: []anthropic.ContentBlock{{Type: "text", Text: f.text}},
	}, nil
}

func TestAccept_AlwaysYes(t *testing.T) {
	t.Parallel()

	ok, err := Accept{}.IsCompany(context.Background(), "anything", "at all")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestClaude_Yes(t *testing.T) {
	t.Parallel()

	llm := &fakeLLM{text: "YES"}
	judge := NewClaude(llm, "claude-haiku-4-5-20251001")

	ok, err := judge.IsCompany(context.Background(), "Razorpay", "Payments platform for businesses")
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Contains(t, llm.lastReq.Messages[0].Content, "Razorpay")
	assert.Contains(t, llm.lastReq.Messages[0].Content, "Payments platform")
	assert.Contains(t, llm.lastReq.Messages[0].Content, "Reply YES or NO")
	require.NotNil(t, llm.lastReq.Temperature)
	assert.Zero(t, *llm.lastReq.Temperature)
}

func TestClaude_No(t *testing.T) {
	t.Parallel()

	judge := NewClaude(&fakeLLM{text: "NO"}, "claude-haiku-4-5-20251001")

	ok, err := judge.IsCompany(context.Background(), "Top 10 FinTech Companies", "A listicle")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClaude_CaseInsensitiveMatch(t *testing.T) {
	t.Parallel()

	judge := NewClaude(&fakeLLM{text: "yes."}, "claude-haiku-4-5-20251001")

	ok, err := judge.IsCompany(context.Background(), "Acme", "Widgets")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestClaude_Error(t *testing.T) {
	t.Parallel()

	judge := NewClaude(&fakeLLM{err: eris.New("overloaded")}, "claude-haiku-4-5-20251001")

	_, err := judge.IsCompany(context.Background(), "Acme", "Widgets")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "company judgment")
}
