package api

import (
	"errors"
	"time"
)

// TokenResponse is returned by login and the social-auth callbacks.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Email       string `json:"email,omitempty"`
}

func (r *TokenResponse) Validate() error {
	if r.AccessToken == "" {
		return errors.New("missing access_token")
	}
	return nil
}

// RegisterResult mirrors the register endpoint's envelope. Success=false is
// a normal outcome (e.g. duplicate email) and carries the reason in Message.
type RegisterResult struct {
	Success bool   `json:"success"`
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

// StatusMessage is the generic {"message": ...} acknowledgement several
// endpoints return.
type StatusMessage struct {
	Message string `json:"message"`
}

// Balance is the account's remaining usage quotas. Negative means unlimited.
type Balance struct {
	TextQuota          int    `json:"text_quota"`
	AudioQuota         int    `json:"audio_quota"`
	VideoQuota         int    `json:"video_quota"`
	SubscriptionStatus string `json:"subscription_status"`
}

// Message is one turn of a conversation: the user prompt and the model's
// response (empty while the turn is still pending).
type Message struct {
	Prompt    string    `json:"prompt"`
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}

// ConversationSummary is a list entry; the full transcript is fetched per
// conversation.
type ConversationSummary struct {
	ConversationID string    `json:"conversation_id"`
	Title          string    `json:"title"`
	CreatedAt      time.Time `json:"created_at"`
}

func (c *ConversationSummary) Validate() error {
	if c.ConversationID == "" {
		return errors.New("missing conversation_id")
	}
	return nil
}

// Conversation is a full transcript.
type Conversation struct {
	ConversationID string    `json:"conversation_id"`
	Title          string    `json:"title"`
	CreatedAt      time.Time `json:"created_at"`
	Messages       []Message `json:"messages"`
}

func (c *Conversation) Validate() error {
	if c.ConversationID == "" {
		return errors.New("missing conversation_id")
	}
	return nil
}

// GenerateRequest is one chat turn. Level selects the backing model;
// ConversationID empty starts a new conversation.
type GenerateRequest struct {
	Prompt         string `json:"prompt"`
	UserEmail      string `json:"user_email"`
	Level          string `json:"level,omitempty"`
	ConversationID string `json:"conversation_id,omitempty"`
}

// GenerateResponse carries the updated transcript plus an optional quota
// warning for the UI.
type GenerateResponse struct {
	ConversationID string    `json:"conversation_id"`
	Title          string    `json:"title"`
	Messages       []Message `json:"messages"`
	Warning        string    `json:"warning,omitempty"`
}

func (r *GenerateResponse) Validate() error {
	if r.ConversationID == "" {
		return errors.New("missing conversation_id")
	}
	if len(r.Messages) == 0 {
		return errors.New("empty messages")
	}
	return nil
}

// Voice is a premade or cloned voice available for synthesis.
type Voice struct {
	VoiceID    string `json:"voice_id"`
	Name       string `json:"name"`
	Category   string `json:"category,omitempty"`
	PreviewURL string `json:"preview_url,omitempty"`
}

// SpeechRequest asks for a text-to-speech rendering.
type SpeechRequest struct {
	Text      string `json:"text"`
	VoiceID   string `json:"voice_id"`
	UserEmail string `json:"user_email"`
}

// SpeechResult points at the generated clip.
type SpeechResult struct {
	VoiceID  string `json:"voice_id"`
	AudioURL string `json:"audio_url"`
}

func (r *SpeechResult) Validate() error {
	if r.AudioURL == "" {
		return errors.New("missing audio_url")
	}
	return nil
}

// CloneResult is the provider's handle for a newly cloned voice.
type CloneResult struct {
	VoiceID string `json:"voice_id"`
	Name    string `json:"name,omitempty"`
}

func (r *CloneResult) Validate() error {
	if r.VoiceID == "" {
		return errors.New("missing voice_id")
	}
	return nil
}

// PreviewResult acknowledges preview generation; the clip itself is fetched
// from the preview-audio endpoint.
type PreviewResult struct {
	PreviewURL string `json:"preview_url"`
	Message    string `json:"message,omitempty"`
}

func (r *PreviewResult) Validate() error {
	if r.PreviewURL == "" {
		return errors.New("missing preview_url")
	}
	return nil
}

// UploadResult acknowledges an audio or video upload.
type UploadResult struct {
	UserID   string `json:"user_id"`
	AudioID  string `json:"audio_id,omitempty"`
	VideoID  string `json:"video_id,omitempty"`
	AudioURL string `json:"audio_url,omitempty"`
	VideoURL string `json:"video_url,omitempty"`
	Message  string `json:"message"`
}

// AudioFile is one entry of the user's uploaded-audio library.
type AudioFile struct {
	AudioID   string    `json:"audio_id"`
	Name      string    `json:"name,omitempty"`
	AudioURL  string    `json:"audio_url"`
	CreatedAt time.Time `json:"created_at"`
}

// JobStatus is the lipsync pipeline's lifecycle enum.
type JobStatus string

const (
	JobPending    JobStatus = "pending"
	JobProcessing JobStatus = "processing"
	JobCompleted  JobStatus = "completed"
	JobFailed     JobStatus = "failed"
)

// Terminal reports whether the job will not change state again.
func (s JobStatus) Terminal() bool {
	return s == JobCompleted || s == JobFailed
}

// SyncRequest submits a lipsync job joining an uploaded video with an
// uploaded audio track.
type SyncRequest struct {
	UserID     string `json:"user_id"`
	VideoID    string `json:"video_id"`
	AudioID    string `json:"audio_id"`
	Model      string `json:"model,omitempty"`
	WebhookURL string `json:"webhook_url,omitempty"`
}

// SyncSubmitResult acknowledges job submission.
type SyncSubmitResult struct {
	UserID     string `json:"user_id"`
	VideoID    string `json:"video_id"`
	SyncResult struct {
		ID     string    `json:"id"`
		Status JobStatus `json:"status"`
	} `json:"sync_result"`
	Message string `json:"message"`
}

// SyncJob is the stored state of a lipsync job.
type SyncJob struct {
	UserID         string    `json:"user_id"`
	VideoID        string    `json:"video_id"`
	Status         JobStatus `json:"status"`
	ResultVideoURL string    `json:"result_video_url,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (j *SyncJob) Validate() error {
	if j.VideoID == "" {
		return errors.New("missing video_id")
	}
	return nil
}

// Price is one Stripe price attached to a plan.
type Price struct {
	ID         string `json:"id"`
	UnitAmount int64  `json:"unit_amount"`
	Currency   string `json:"currency"`
}

// Plan is a subscription product with its prices.
type Plan struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Prices      []Price `json:"prices"`
}

func (p *Plan) Validate() error {
	if p.ID == "" {
		return errors.New("missing plan id")
	}
	return nil
}

// CheckoutSession is the handle the caller redirects to Stripe with.
type CheckoutSession struct {
	SessionID string `json:"session_id"`
}

func (s *CheckoutSession) Validate() error {
	if s.SessionID == "" {
		return errors.New("missing session_id")
	}
	return nil
}

// SubscriptionStatus reports the account's billing state.
type SubscriptionStatus struct {
	Status     string     `json:"status"`
	ExpireDate *time.Time `json:"expire_date,omitempty"`
}
