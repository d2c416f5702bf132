package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/jobtracker/internal/client/models"
	"github.com/dmitrijs2005/jobtracker/internal/logging"
)

func listedDocs() []models.Document {
	return []models.Document{
		{ID: 100, Filename: "cv.pdf"},
		{ID: 101, Filename: "letter.pdf", Indexed: true},
		{ID: 102, Filename: "broken.pdf"},
		{ID: 103, Filename: "notes.txt"},
	}
}

func TestChatPanel_PreIndexesThenSends(t *testing.T) {
	fc := &fakeClient{
		chatResp: &models.ChatResponse{Message: "Done", ActionTaken: &models.ChatAction{Company: "Acme", NewStatus: "interview"}},
		indexErr: map[int64]error{102: errBackend},
	}
	p := NewChatPanel(fc, logging.Discard(), "ollama", true)

	res, err := p.Send(context.Background(), "Interview at Acme on Monday", listedDocs())
	require.NoError(t, err)

	assert.Equal(t, []int64{100, 103}, fc.indexed)
	assert.Equal(t, []int64{100, 103}, res.PreIndexed)
	assert.Equal(t, "ollama", fc.lastProv)
	assert.Equal(t, "Done", res.Response.Message)
	require.NotNil(t, p.Last())
	assert.Equal(t, "interview", p.Last().ActionTaken.NewStatus)
}

func TestChatPanel_NoPreIndex(t *testing.T) {
	fc := &fakeClient{chatResp: &models.ChatResponse{Message: "hi"}}
	p := NewChatPanel(fc, logging.Discard(), "openai", false)

	res, err := p.Send(context.Background(), "hello", listedDocs())
	require.NoError(t, err)
	assert.Empty(t, fc.indexed)
	assert.Empty(t, res.PreIndexed)
}

func TestChatPanel_SendFailureKeepsLast(t *testing.T) {
	fc := &fakeClient{chatResp: &models.ChatResponse{Message: "first"}}
	p := NewChatPanel(fc, logging.Discard(), "ollama", false)
	_, err := p.Send(context.Background(), "one", nil)
	require.NoError(t, err)

	fc.chatErr = errBackend
	_, err = p.Send(context.Background(), "two", nil)
	assert.ErrorIs(t, err, errBackend)
	assert.Equal(t, "first", p.Last().Message)
}

func TestChatPanel_HistoryAndClear(t *testing.T) {
	fc := &fakeClient{
		chatResp: &models.ChatResponse{Message: "x"},
		history:  []models.ChatMessage{{ID: 1, Role: "user", Content: "hi"}},
	}
	p := NewChatPanel(fc, logging.Discard(), "ollama", false)

	msgs, err := p.History(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, msgs, 1)
	assert.Equal(t, DefaultHistoryLimit, fc.lastLimit)

	_, err = p.Send(context.Background(), "x", nil)
	require.NoError(t, err)
	require.NoError(t, p.Clear(context.Background()))
	assert.True(t, fc.cleared)
	assert.Nil(t, p.Last())
}

func TestChatPanel_SetProvider(t *testing.T) {
	fc := &fakeClient{chatResp: &models.ChatResponse{Message: "hi"}}
	p := NewChatPanel(fc, logging.Discard(), "ollama", false)

	p.SetProvider("anthropic")
	assert.Equal(t, "anthropic", p.Provider())

	_, err := p.Send(context.Background(), "hello", nil)
	require.NoError(t, err)
	assert.Equal(t, "anthropic", fc.lastProv)
}
