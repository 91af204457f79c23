package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/luga-ai/luga-cli/internal/api"
	"github.com/luga-ai/luga-cli/internal/filex"
	"github.com/luga-ai/luga-cli/internal/netx"
)

// downloadsDir is where generated media ends up, relative to the cwd.
const downloadsDir = "downloads"

// Voices lists the premade voice library. Available without login.
func (a *App) Voices(ctx context.Context) error {
	voices, err := a.public.Voices(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	printVoices(voices)
	return nil
}

// MyVoices lists the voices the user has cloned.
func (a *App) MyVoices(ctx context.Context) error {
	voices, err := a.private.UserVoices(ctx, a.session.Email())
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if len(voices) == 0 {
		fmt.Println("No cloned voices yet, use 'clone' to create one.")
		return nil
	}
	printVoices(voices)
	return nil
}

// Say synthesizes speech from a prompt with a chosen voice and downloads the
// resulting clip.
func (a *App) Say(ctx context.Context) error {
	voiceID, err := getSimpleText(a.reader, "Enter voice id", os.Stdout)
	if err != nil {
		return err
	}
	text, err := GetMultiline(a.reader, "Enter text to speak:", os.Stdout)
	if err != nil {
		return err
	}

	res, err := a.private.TextToSpeech(ctx, api.SpeechRequest{
		Text:      text,
		VoiceID:   voiceID,
		UserEmail: a.session.Email(),
	})
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	path, err := a.download(ctx, res.AudioURL, "speech.mp3")
	if err != nil {
		// the clip exists server-side even if saving failed
		fmt.Println("Generated:", res.AudioURL)
		log.Printf("download error: %v", err)
		return err
	}

	fmt.Println("Saved to", path)
	return nil
}

// Clone creates a cloned voice from local audio samples.
func (a *App) Clone(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter a name for the voice", os.Stdout)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Enter a description (optional)", os.Stdout)
	if err != nil {
		return err
	}
	paths, err := GetPathList(a.reader, "Enter audio sample paths", os.Stdout)
	if err != nil {
		return err
	}

	files := make([]api.CloneFile, 0, len(paths))
	closers := make([]*os.File, 0, len(paths))
	defer func() {
		for _, f := range closers {
			_ = f.Close()
		}
	}()

	for _, p := range paths {
		ct, err := filex.ContentType(p)
		if err != nil {
			log.Printf("error: %v", err)
			return err
		}
		f, err := os.Open(p)
		if err != nil {
			log.Printf("error: %v", err)
			return err
		}
		closers = append(closers, f)
		files = append(files, api.CloneFile{Name: filepath.Base(p), ContentType: ct, Reader: f})
	}

	res, err := a.private.CloneVoice(ctx, name, description, files)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	fmt.Println("Created voice", res.VoiceID)
	return nil
}

// RenameAudio gives an uploaded audio file a friendlier display name.
func (a *App) RenameAudio(ctx context.Context, audioID string) error {
	name, err := getSimpleText(a.reader, "Enter the new name", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.private.RenameAudio(ctx, audioID, name); err != nil {
		log.Printf("error: %v", err)
		return err
	}

	fmt.Println("Renamed", audioID, "to", name)
	return nil
}

// Preview renders a short sample with a cloned voice and downloads the clip,
// so the user can hear the voice before using it for real work.
func (a *App) Preview(ctx context.Context, voiceID string) error {
	text, err := GetMultiline(a.reader, "Enter preview text:", os.Stdout)
	if err != nil {
		return err
	}

	if _, err := a.private.GeneratePreview(ctx, voiceID, text); err != nil {
		log.Printf("error: %v", err)
		return err
	}

	path, err := a.download(ctx, a.private.PreviewAudioURL(voiceID), "preview.mp3")
	if err != nil {
		log.Printf("download error: %v", err)
		return err
	}

	fmt.Println("Saved to", path)
	return nil
}

// download saves the media at url under the downloads directory and returns
// the local path.
func (a *App) download(ctx context.Context, url, filename string) (string, error) {
	dir, err := filex.EnsureSubDir(downloadsDir)
	if err != nil {
		return "", err
	}
	dest := filepath.Join(dir, filename)
	if err := netx.DownloadFile(ctx, url, dest); err != nil {
		return "", err
	}
	return dest, nil
}

func printVoices(voices []api.Voice) {
	for _, v := range voices {
		if v.Category != "" {
			fmt.Printf("%s  %s  [%s]\n", v.VoiceID, v.Name, v.Category)
			continue
		}
		fmt.Printf("%s  %s\n", v.VoiceID, v.Name)
	}
}
