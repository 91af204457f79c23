package cli

import (
	"context"
	"fmt"
	"log"
)

// Plans lists the subscription products. Available without login.
func (a *App) Plans(ctx context.Context) error {
	plans, err := a.public.Plans(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	for _, p := range plans {
		fmt.Printf("%s  %s\n", p.ID, p.Name)
		if p.Description != "" {
			fmt.Println("  ", p.Description)
		}
		for _, pr := range p.Prices {
			fmt.Printf("   %s  %.2f %s\n", pr.ID, float64(pr.UnitAmount)/100, pr.Currency)
		}
	}
	return nil
}

// Subscribe opens a Stripe checkout session for the given price and prints
// the session id the user completes in a browser.
func (a *App) Subscribe(ctx context.Context, priceID string) error {
	sess, err := a.private.Subscribe(ctx, a.session.Email(), priceID)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	fmt.Println("Checkout session:", sess.SessionID)
	fmt.Println("Complete the payment in your browser to activate the plan.")
	return nil
}

// Status reports the account's billing state.
func (a *App) Status(ctx context.Context) error {
	st, err := a.private.SubscriptionStatus(ctx, a.session.Email())
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if st.ExpireDate != nil {
		fmt.Printf("%s (until %s)\n", st.Status, st.ExpireDate.Format("2006-01-02"))
		return nil
	}
	fmt.Println(st.Status)
	return nil
}

// Balance prints the remaining usage quotas. Negative means unlimited.
func (a *App) Balance(ctx context.Context) error {
	b, err := a.private.Balance(ctx, a.session.Email())
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	fmt.Println("text: ", quota(b.TextQuota))
	fmt.Println("audio:", quota(b.AudioQuota))
	fmt.Println("video:", quota(b.VideoQuota))
	if b.SubscriptionStatus != "" {
		fmt.Println("plan: ", b.SubscriptionStatus)
	}
	return nil
}

func quota(n int) string {
	if n < 0 {
		return "unlimited"
	}
	return fmt.Sprint(n)
}
