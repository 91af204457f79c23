package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlans(t *testing.T) {
	c := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/stripe/subscription_plans", r.URL.Path)
		w.Write([]byte(`[
			{"id":"prod_1","name":"Pro","description":"Everything unlimited",
			 "prices":[{"id":"price_1","unit_amount":1999,"currency":"usd"}]},
			{"id":"prod_2","name":"Basic","prices":[{"id":"price_2","unit_amount":499,"currency":"usd"}]}
		]`))
	})

	plans, err := c.Plans(context.Background())
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, "Pro", plans[0].Name)
	require.Len(t, plans[0].Prices, 1)
	assert.Equal(t, int64(1999), plans[0].Prices[0].UnitAmount)
}

func TestSubscribe(t *testing.T) {
	c := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/stripe/subs", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "a@b.com", body["email"])
		assert.Equal(t, "price_1", body["priceId"])
		w.Write([]byte(`{"session_id":"cs_test_123"}`))
	})

	sess, err := c.Subscribe(context.Background(), "a@b.com", "price_1")
	require.NoError(t, err)
	assert.Equal(t, "cs_test_123", sess.SessionID)
}

func TestSubscribe_RequiresPriceID(t *testing.T) {
	c, err := New(Config{BaseURL: "https://example.com"})
	require.NoError(t, err)

	_, err = c.Subscribe(context.Background(), "a@b.com", "")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestSubscribe_MissingSessionIsContractViolation(t *testing.T) {
	c := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	_, err := c.Subscribe(context.Background(), "a@b.com", "price_1")
	var dec *DecodeError
	require.ErrorAs(t, err, &dec)
}

func TestSubscriptionStatus(t *testing.T) {
	c := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/stripe/subscription_status", r.URL.Path)
		w.Write([]byte(`{"status":"active","expire_date":"2026-09-28T00:00:00Z"}`))
	})

	st, err := c.SubscriptionStatus(context.Background(), "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "active", st.Status)
	require.NotNil(t, st.ExpireDate)
	assert.Equal(t, 2026, st.ExpireDate.Year())
}

func TestSubscriptionStatus_NoSubscription(t *testing.T) {
	c := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"none"}`))
	})

	st, err := c.SubscriptionStatus(context.Background(), "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "none", st.Status)
	assert.Nil(t, st.ExpireDate)
}
