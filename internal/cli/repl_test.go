package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	arg   string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Whoami(ctx context.Context) error {
	f.calls = append(f.calls, "whoami")
	return nil
}
func (f *fakeExec) ForgotPassword(ctx context.Context) error {
	f.calls = append(f.calls, "forgot-password")
	return nil
}
func (f *fakeExec) ResetPassword(ctx context.Context) error {
	f.calls = append(f.calls, "reset-password")
	return nil
}
func (f *fakeExec) Chats(ctx context.Context) error { f.calls = append(f.calls, "chats"); return nil }
func (f *fakeExec) Chat(ctx context.Context, id string) error {
	f.calls = append(f.calls, "chat")
	f.arg = id
	return nil
}
func (f *fakeExec) Ask(ctx context.Context) error { f.calls = append(f.calls, "ask"); return nil }
func (f *fakeExec) Voices(ctx context.Context) error {
	f.calls = append(f.calls, "voices")
	return nil
}
func (f *fakeExec) MyVoices(ctx context.Context) error {
	f.calls = append(f.calls, "myvoices")
	return nil
}
func (f *fakeExec) Say(ctx context.Context) error   { f.calls = append(f.calls, "say"); return nil }
func (f *fakeExec) Clone(ctx context.Context) error { f.calls = append(f.calls, "clone"); return nil }
func (f *fakeExec) Preview(ctx context.Context, voiceID string) error {
	f.calls = append(f.calls, "preview")
	f.arg = voiceID
	return nil
}
func (f *fakeExec) Audios(ctx context.Context) error {
	f.calls = append(f.calls, "audios")
	return nil
}
func (f *fakeExec) RenameAudio(ctx context.Context, audioID string) error {
	f.calls = append(f.calls, "rename-audio")
	f.arg = audioID
	return nil
}
func (f *fakeExec) UploadAudio(ctx context.Context) error {
	f.calls = append(f.calls, "upload-audio")
	return nil
}
func (f *fakeExec) UploadVideo(ctx context.Context) error {
	f.calls = append(f.calls, "upload-video")
	return nil
}
func (f *fakeExec) Lipsync(ctx context.Context) error {
	f.calls = append(f.calls, "lipsync")
	return nil
}
func (f *fakeExec) Jobs(ctx context.Context) error { f.calls = append(f.calls, "jobs"); return nil }
func (f *fakeExec) Job(ctx context.Context, videoID string) error {
	f.calls = append(f.calls, "job")
	f.arg = videoID
	return nil
}
func (f *fakeExec) Watch(ctx context.Context, videoID string) error {
	f.calls = append(f.calls, "watch")
	f.arg = videoID
	return nil
}
func (f *fakeExec) DeleteJob(ctx context.Context, videoID string) error {
	f.calls = append(f.calls, "deljob")
	f.arg = videoID
	return nil
}
func (f *fakeExec) Plans(ctx context.Context) error { f.calls = append(f.calls, "plans"); return nil }
func (f *fakeExec) Subscribe(ctx context.Context, priceID string) error {
	f.calls = append(f.calls, "subscribe")
	f.arg = priceID
	return nil
}
func (f *fakeExec) Status(ctx context.Context) error {
	f.calls = append(f.calls, "status")
	return nil
}
func (f *fakeExec) Balance(ctx context.Context) error {
	f.calls = append(f.calls, "balance")
	return nil
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"chats",
		"chat c1",
		"ask",
		"jobs",
		"watch v1",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "chats", "chat", "ask", "jobs", "watch"}
	if len(exec.calls) < len(wantOrder) {
		t.Fatalf("few calls: %+v", exec.calls)
	}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
	if exec.arg != "v1" {
		t.Fatalf("last arg = %q, want v1", exec.arg)
	}
}

func TestRunREPL_UsageAndQuit(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("chat\njob\nsubscribe\npreview\nrename-audio\nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
