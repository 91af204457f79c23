package api

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// UploadAudio uploads a soundtrack for lipsync. contentType must be audio/*.
func (c *Client) UploadAudio(ctx context.Context, userID, filename, contentType string, r io.Reader) (*UploadResult, error) {
	if !strings.HasPrefix(contentType, "audio/") {
		return nil, fmt.Errorf("%w: %s is %s, expected an audio file", ErrInvalidInput, filename, contentType)
	}
	return c.upload(ctx, "/video/upload-audio", "audio", userID, filename, contentType, r)
}

// UploadVideo uploads the video to be resynced. contentType must be video/*.
func (c *Client) UploadVideo(ctx context.Context, userID, filename, contentType string, r io.Reader) (*UploadResult, error) {
	if !strings.HasPrefix(contentType, "video/") {
		return nil, fmt.Errorf("%w: %s is %s, expected a video file", ErrInvalidInput, filename, contentType)
	}
	return c.upload(ctx, "/video/upload-video", "video", userID, filename, contentType, r)
}

func (c *Client) upload(ctx context.Context, path, field, userID, filename, contentType string, r io.Reader) (*UploadResult, error) {
	var out UploadResult
	err := c.postMultipart(ctx, path, func(mw *multipart.Writer) error {
		if err := mw.WriteField("user_id", userID); err != nil {
			return err
		}
		part, err := createFilePart(mw, field, filename, contentType)
		if err != nil {
			return err
		}
		_, err = io.Copy(part, r)
		return err
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Audios lists the user's previously uploaded soundtracks, so a lipsync job
// can reuse one instead of uploading again.
func (c *Client) Audios(ctx context.Context, email string) ([]AudioFile, error) {
	var out []AudioFile
	if err := c.postJSON(ctx, "/video/get-audio", map[string]string{"user_email": email}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SyncAudio submits a lipsync job joining an uploaded video and audio track.
func (c *Client) SyncAudio(ctx context.Context, req SyncRequest) (*SyncSubmitResult, error) {
	if req.VideoID == "" || req.AudioID == "" {
		return nil, fmt.Errorf("%w: video id and audio id are required", ErrInvalidInput)
	}
	var out SyncSubmitResult
	if err := c.postJSON(ctx, "/video/sync-audio", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Jobs lists the user's lipsync jobs, newest first.
func (c *Client) Jobs(ctx context.Context, userID string, limit, skip int) ([]SyncJob, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if skip > 0 {
		q.Set("skip", strconv.Itoa(skip))
	}
	var out []SyncJob
	if err := c.get(ctx, "/video/jobs/"+userID, q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Job fetches the latest job state for one video.
func (c *Client) Job(ctx context.Context, userID, videoID string) (*SyncJob, error) {
	var out SyncJob
	if err := c.get(ctx, "/video/job/"+userID+"/"+videoID, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteJob removes a job and its source video.
func (c *Client) DeleteJob(ctx context.Context, userID, videoID string) error {
	return c.delete(ctx, "/video/job/"+userID+"/"+videoID, nil)
}

// AwaitJob polls the job until it reaches a terminal status or ctx is
// cancelled. Transient poll failures (transport errors, 429/5xx) are retried
// on the next tick; anything the retry policy would not retry — a 404 for a
// job that does not exist, a 401 — ends the wait immediately. Each in-flight
// request is bounded by the client timeout; the overall wait is bounded only
// by the caller's context, which is the cancellation point when the consumer
// loses interest.
func (c *Client) AwaitJob(ctx context.Context, userID, videoID string, interval time.Duration) (*SyncJob, error) {
	if interval <= 0 {
		interval = 5 * time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		job, err := c.Job(ctx, userID, videoID)
		if err == nil && job.Status.Terminal() {
			return job, nil
		}
		if err != nil {
			if !retryable(err) {
				return nil, err
			}
			c.log.Warn(ctx, "job poll failed, retrying", "video_id", videoID, "error", err)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}
