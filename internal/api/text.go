package api

import (
	"context"
	"fmt"
	"net/url"
)

// Conversations lists the user's conversations, newest first.
func (c *Client) Conversations(ctx context.Context, userEmail string) ([]ConversationSummary, error) {
	q := url.Values{"user_email": {userEmail}}
	var out []ConversationSummary
	if err := c.get(ctx, "/text/conversations", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Conversation fetches one full transcript.
func (c *Client) Conversation(ctx context.Context, conversationID, userEmail string) (*Conversation, error) {
	if conversationID == "" {
		return nil, fmt.Errorf("%w: conversation id is required", ErrInvalidInput)
	}
	q := url.Values{"user_email": {userEmail}}
	var out Conversation
	if err := c.get(ctx, "/text/conversation/"+conversationID, q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Generate submits one chat turn and returns the updated transcript.
func (c *Client) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	if req.Prompt == "" {
		return nil, fmt.Errorf("%w: prompt is required", ErrInvalidInput)
	}
	var out GenerateResponse
	if err := c.postJSON(ctx, "/text/generate", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
