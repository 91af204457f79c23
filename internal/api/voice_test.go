package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVoices(t *testing.T) {
	c := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/voice/voices", r.URL.Path)
		w.Write([]byte(`[{"voice_id":"v1","name":"Rachel","category":"premade"}]`))
	})

	voices, err := c.Voices(context.Background())
	require.NoError(t, err)
	require.Len(t, voices, 1)
	assert.Equal(t, "Rachel", voices[0].Name)
}

func TestTextToSpeech_Validation(t *testing.T) {
	c, err := New(Config{BaseURL: "https://example.com"})
	require.NoError(t, err)
	ctx := context.Background()

	_, err = c.TextToSpeech(ctx, SpeechRequest{Text: "   ", VoiceID: "v1"})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = c.TextToSpeech(ctx, SpeechRequest{Text: "hello"})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestCloneVoice_SendsMultipartForm(t *testing.T) {
	c := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/clone/clone-voice", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "My Voice", r.FormValue("voice_name"))
		assert.Equal(t, "sample desc", r.FormValue("description"))

		files := r.MultipartForm.File["files"]
		require.Len(t, files, 2)
		assert.Equal(t, "one.mp3", files[0].Filename)
		assert.Equal(t, "audio/mpeg", files[0].Header.Get("Content-Type"))

		f, err := files[1].Open()
		require.NoError(t, err)
		defer f.Close()
		content, err := io.ReadAll(f)
		require.NoError(t, err)
		assert.Equal(t, "wav-bytes", string(content))

		w.Write([]byte(`{"voice_id":"cloned-1","name":"My Voice"}`))
	})

	res, err := c.CloneVoice(context.Background(), "My Voice", "sample desc", []CloneFile{
		{Name: "one.mp3", ContentType: "audio/mpeg", Reader: strings.NewReader("mp3-bytes")},
		{Name: "two.wav", ContentType: "audio/wav", Reader: strings.NewReader("wav-bytes")},
	})
	require.NoError(t, err)
	assert.Equal(t, "cloned-1", res.VoiceID)
}

func TestCloneVoice_RejectsNonAudio(t *testing.T) {
	c, err := New(Config{BaseURL: "https://example.com"})
	require.NoError(t, err)

	_, err = c.CloneVoice(context.Background(), "v", "", []CloneFile{
		{Name: "movie.mp4", ContentType: "video/mp4", Reader: strings.NewReader("x")},
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestCloneVoice_RequiresFiles(t *testing.T) {
	c, err := New(Config{BaseURL: "https://example.com"})
	require.NoError(t, err)

	_, err = c.CloneVoice(context.Background(), "v", "", nil)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestRenameAudio(t *testing.T) {
	c := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/voice/update-audio-name", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "a1", body["audio_id"])
		assert.Equal(t, "intro take 2", body["new_name"])
		w.Write([]byte(`{"message":"ok"}`))
	})

	require.NoError(t, c.RenameAudio(context.Background(), "a1", "intro take 2"))
}

func TestRenameAudio_Validation(t *testing.T) {
	c, err := New(Config{BaseURL: "https://example.com"})
	require.NoError(t, err)
	ctx := context.Background()

	require.ErrorIs(t, c.RenameAudio(ctx, "", "name"), ErrInvalidInput)
	require.ErrorIs(t, c.RenameAudio(ctx, "a1", "   "), ErrInvalidInput)
}

func TestGeneratePreview(t *testing.T) {
	c := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/clone/generate-preview", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "v1", body["voice_id"])
		w.Write([]byte(`{"preview_url":"/preview-audio/v1","message":"Preview generated successfully"}`))
	})

	res, err := c.GeneratePreview(context.Background(), "v1", "hello there")
	require.NoError(t, err)
	assert.Equal(t, "/preview-audio/v1", res.PreviewURL)
}

func TestGeneratePreview_RequiresVoiceID(t *testing.T) {
	c, err := New(Config{BaseURL: "https://example.com"})
	require.NoError(t, err)

	_, err = c.GeneratePreview(context.Background(), "", "hi")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestPreviewAudioURL(t *testing.T) {
	c, err := New(Config{BaseURL: "https://example.com/api"})
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/api/clone/preview-audio/v1", c.PreviewAudioURL("v1"))
}

func TestUserVoices(t *testing.T) {
	c := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/voice/user-voices", r.URL.Path)
		w.Write([]byte(`[{"voice_id":"u1","name":"Me"}]`))
	})

	voices, err := c.UserVoices(context.Background(), "a@b.com")
	require.NoError(t, err)
	require.Len(t, voices, 1)
	assert.Equal(t, "u1", voices[0].VoiceID)
}
