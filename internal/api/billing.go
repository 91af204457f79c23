package api

import (
	"context"
	"fmt"
)

// Plans lists the subscription products with their prices.
func (c *Client) Plans(ctx context.Context) ([]Plan, error) {
	var out []Plan
	if err := c.get(ctx, "/stripe/subscription_plans", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Subscribe creates a Stripe checkout session for the given price. Never
// retried: a duplicate submission would open a second checkout.
func (c *Client) Subscribe(ctx context.Context, email, priceID string) (*CheckoutSession, error) {
	if priceID == "" {
		return nil, fmt.Errorf("%w: price id is required", ErrInvalidInput)
	}
	body := map[string]string{"email": email, "priceId": priceID}
	var out CheckoutSession
	if err := c.postJSON(ctx, "/stripe/subs", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SubscriptionStatus reports the account's billing state.
func (c *Client) SubscriptionStatus(ctx context.Context, email string) (*SubscriptionStatus, error) {
	var out SubscriptionStatus
	if err := c.postJSON(ctx, "/stripe/subscription_status", map[string]string{"email": email}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
