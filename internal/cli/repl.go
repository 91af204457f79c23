package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	ForgotPassword(ctx context.Context) error
	ResetPassword(ctx context.Context) error
	Chats(ctx context.Context) error
	Chat(ctx context.Context, id string) error
	Ask(ctx context.Context) error
	Voices(ctx context.Context) error
	MyVoices(ctx context.Context) error
	Say(ctx context.Context) error
	Clone(ctx context.Context) error
	Preview(ctx context.Context, voiceID string) error
	Audios(ctx context.Context) error
	RenameAudio(ctx context.Context, audioID string) error
	UploadAudio(ctx context.Context) error
	UploadVideo(ctx context.Context) error
	Lipsync(ctx context.Context) error
	Jobs(ctx context.Context) error
	Job(ctx context.Context, videoID string) error
	Watch(ctx context.Context, videoID string) error
	DeleteJob(ctx context.Context, videoID string) error
	Plans(ctx context.Context) error
	Subscribe(ctx context.Context, priceID string) error
	Status(ctx context.Context) error
	Balance(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the Luga CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current identity (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help               — show available commands
//	  - register           — create an account
//	  - login              — authenticate
//	  - forgot-password    — request a password reset email
//	  - reset-password     — complete a password reset
//	  - voices | plans     — browse the public catalogs
//	  - exit | quit        — leave the program
//
//	Logged in:
//	  - whoami             — show the signed-in identity
//	  - chats              — list conversations
//	  - chat <id>          — show one conversation transcript
//	  - ask                — send a prompt (continues the current chat)
//	  - voices | myvoices  — list premade / cloned voices
//	  - say                — synthesize speech
//	  - clone              — clone a voice from audio samples
//	  - preview <voice_id> — hear a sample of a cloned voice
//	  - audios             — list uploaded audio files
//	  - rename-audio <id>  — rename an uploaded audio file
//	  - upload-audio       — upload a soundtrack for lipsync
//	  - upload-video       — upload a video for lipsync
//	  - lipsync            — submit a lipsync job
//	  - jobs               — list lipsync jobs
//	  - job <video_id>     — show one job
//	  - watch <video_id>   — poll a job until it finishes
//	  - deljob <video_id>  — delete a job
//	  - plans | subscribe <price_id> | status | balance
//	  - logout             — log out
//	  - exit | quit        — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("luga %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, chats, chat <id>, ask, voices, myvoices, say, clone,")
				printlnFn("  preview <voice_id>, audios, rename-audio <id>, upload-audio, upload-video,")
				printlnFn("  lipsync, jobs, job <id>, watch <id>, deljob <id>,")
				printlnFn("  plans, subscribe <price_id>, status, balance, logout, exit")
			} else {
				printlnFn("Available commands: register, login, forgot-password, reset-password, voices, plans, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "forgot-password":
			_ = a.ForgotPassword(ctx)

		case "reset-password":
			_ = a.ResetPassword(ctx)

		case "chats":
			_ = a.Chats(ctx)

		case "chat":
			if len(args) == 0 {
				printlnFn("Usage: chat <conversation_id>")
				continue
			}
			_ = a.Chat(ctx, args[0])

		case "ask":
			_ = a.Ask(ctx)

		case "voices":
			_ = a.Voices(ctx)

		case "myvoices":
			_ = a.MyVoices(ctx)

		case "say":
			_ = a.Say(ctx)

		case "clone":
			_ = a.Clone(ctx)

		case "preview":
			if len(args) == 0 {
				printlnFn("Usage: preview <voice_id>")
				continue
			}
			_ = a.Preview(ctx, args[0])

		case "audios":
			_ = a.Audios(ctx)

		case "rename-audio":
			if len(args) == 0 {
				printlnFn("Usage: rename-audio <audio_id>")
				continue
			}
			_ = a.RenameAudio(ctx, args[0])

		case "upload-audio":
			_ = a.UploadAudio(ctx)

		case "upload-video":
			_ = a.UploadVideo(ctx)

		case "lipsync":
			_ = a.Lipsync(ctx)

		case "jobs":
			_ = a.Jobs(ctx)

		case "job":
			if len(args) == 0 {
				printlnFn("Usage: job <video_id>")
				continue
			}
			_ = a.Job(ctx, args[0])

		case "watch":
			if len(args) == 0 {
				printlnFn("Usage: watch <video_id>")
				continue
			}
			_ = a.Watch(ctx, args[0])

		case "deljob":
			if len(args) == 0 {
				printlnFn("Usage: deljob <video_id>")
				continue
			}
			_ = a.DeleteJob(ctx, args[0])

		case "plans":
			_ = a.Plans(ctx)

		case "subscribe":
			if len(args) == 0 {
				printlnFn("Usage: subscribe <price_id>")
				continue
			}
			_ = a.Subscribe(ctx, args[0])

		case "status":
			_ = a.Status(ctx)

		case "balance":
			_ = a.Balance(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
