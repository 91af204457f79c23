package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/luga-ai/luga-cli/internal/store"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for an email, username and password and attempts to
// create a new account.
//
// A duplicate email is not an HTTP error: the server answers success=false
// with the reason in the message, and that message is shown to the user.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	res, err := a.public.Register(ctx, email, username, password)
	if err != nil {
		log.Printf("Registration unsuccessful: %s", err.Error())
		return err
	}

	if !res.Success {
		fmt.Println(res.Message)
		return nil
	}

	fmt.Println("Success!", res.Message)
	return nil
}

// Login prompts for credentials, exchanges them for a bearer token and hands
// the token to the session manager, which persists it before the in-memory
// state flips to authenticated.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	res, err := a.public.Login(ctx, email, password)
	if err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	if err := a.session.Login(ctx, res.AccessToken, email); err != nil {
		log.Printf("error persisting session: %s", err.Error())
		return err
	}

	log.Printf("Login successful")
	return nil
}

// Logout asks the server to blacklist the token, then clears the local
// session. The local part always runs: a dead server must not keep the
// client signed in.
func (a *App) Logout(ctx context.Context) error {
	if tok := a.session.Current().Token; tok != "" {
		if err := a.private.Logout(ctx, tok); err != nil {
			a.log.Warn(ctx, "server logout failed, clearing local session anyway", "error", err)
		}
	}

	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	a.conversationID = ""

	fmt.Println("Logged out")
	return nil
}

// Whoami prints the signed-in identity.
func (a *App) Whoami(ctx context.Context) error {
	snap := a.session.Current()
	if snap.Email == "" {
		fmt.Println("Not logged in")
		return nil
	}
	fmt.Println(snap.Email)
	return nil
}

// ForgotPassword requests a reset email and remembers the address so the
// reset-password step does not have to ask again.
func (a *App) ForgotPassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.public.ForgotPassword(ctx, email); err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if err := a.store.Set(ctx, store.KeyResetEmail, email); err != nil {
		return err
	}

	fmt.Println("Check your email for the reset link, then run reset-password.")
	return nil
}

// ResetPassword completes the reset flow for the address captured on the
// forgot-password step (prompting for it when absent) and clears the
// remembered address on success.
func (a *App) ResetPassword(ctx context.Context) error {
	email, err := a.store.Get(ctx, store.KeyResetEmail)
	if err != nil {
		return err
	}
	if email == "" {
		email, err = getSimpleText(a.reader, "Enter email", os.Stdout)
		if err != nil {
			return err
		}
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.public.ResetPassword(ctx, email, password); err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if err := a.store.Delete(ctx, store.KeyResetEmail); err != nil {
		return err
	}

	fmt.Println("Password updated, you can log in now.")
	return nil
}
