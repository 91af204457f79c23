package api

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
)

// Voices lists the premade voice library.
func (c *Client) Voices(ctx context.Context) ([]Voice, error) {
	var out []Voice
	if err := c.get(ctx, "/voice/voices", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UserVoices lists the voices the user has cloned.
func (c *Client) UserVoices(ctx context.Context, email string) ([]Voice, error) {
	var out []Voice
	if err := c.postJSON(ctx, "/voice/user-voices", map[string]string{"user_email": email}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TextToSpeech renders text with the chosen voice. Speech generation is the
// one flow that runs under the retry policy: synthesis backends throttle
// and hiccup, and the request is idempotent.
func (c *Client) TextToSpeech(ctx context.Context, req SpeechRequest) (*SpeechResult, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, fmt.Errorf("%w: text is required", ErrInvalidInput)
	}
	if req.VoiceID == "" {
		return nil, fmt.Errorf("%w: voice id is required", ErrInvalidInput)
	}

	var out SpeechResult
	err := c.withRetry(ctx, func(ctx context.Context) error {
		out = SpeechResult{}
		return c.postJSON(ctx, "/voice/text-to-speech", req, &out)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// RenameAudio updates the display name of an uploaded audio file.
func (c *Client) RenameAudio(ctx context.Context, audioID, newName string) error {
	if audioID == "" {
		return fmt.Errorf("%w: audio id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(newName) == "" {
		return fmt.Errorf("%w: new name is required", ErrInvalidInput)
	}
	body := map[string]string{"audio_id": audioID, "new_name": newName}
	return c.postJSON(ctx, "/voice/update-audio-name", body, nil)
}

// CloneFile is one audio sample for voice cloning.
type CloneFile struct {
	Name        string
	ContentType string
	Reader      io.Reader
}

// CloneVoice submits audio samples to create a cloned voice. Only audio/*
// content types are accepted; the server enforces the same rule.
func (c *Client) CloneVoice(ctx context.Context, name, description string, files []CloneFile) (*CloneResult, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: at least one audio sample is required", ErrInvalidInput)
	}
	for _, f := range files {
		if !strings.HasPrefix(f.ContentType, "audio/") {
			return nil, fmt.Errorf("%w: %s is %s, only audio files are accepted", ErrInvalidInput, f.Name, f.ContentType)
		}
	}

	var out CloneResult
	err := c.postMultipart(ctx, "/clone/clone-voice", func(mw *multipart.Writer) error {
		if err := mw.WriteField("voice_name", name); err != nil {
			return err
		}
		if err := mw.WriteField("description", description); err != nil {
			return err
		}
		for _, f := range files {
			part, err := createFilePart(mw, "files", f.Name, f.ContentType)
			if err != nil {
				return err
			}
			if _, err := io.Copy(part, f.Reader); err != nil {
				return err
			}
		}
		return nil
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GeneratePreview renders a short sample clip with a cloned voice so the
// user can hear it before committing to it.
func (c *Client) GeneratePreview(ctx context.Context, voiceID, text string) (*PreviewResult, error) {
	if voiceID == "" {
		return nil, fmt.Errorf("%w: voice id is required", ErrInvalidInput)
	}
	body := map[string]string{"voice_id": voiceID, "text": text}
	var out PreviewResult
	if err := c.postJSON(ctx, "/clone/generate-preview", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PreviewAudioURL is the absolute URL of the preview clip generated for the
// voice. The server keeps one preview per voice, overwritten on each
// GeneratePreview call.
func (c *Client) PreviewAudioURL(voiceID string) string {
	return c.endpoint("/clone/preview-audio/"+voiceID, nil)
}

// createFilePart is CreateFormFile with an honest Content-Type instead of
// the default application/octet-stream.
func createFilePart(mw *multipart.Writer, field, filename, contentType string) (io.Writer, error) {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
	h.Set("Content-Type", contentType)
	return mw.CreatePart(h)
}
