package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/luga-ai/luga-cli/internal/api"
	"github.com/luga-ai/luga-cli/internal/filex"
)

const jobsPageSize = 20

// UploadAudio uploads a local soundtrack for lipsync.
func (a *App) UploadAudio(ctx context.Context) error {
	res, err := a.uploadMedia(ctx, "Enter audio file path", a.private.UploadAudio)
	if err != nil {
		return err
	}
	fmt.Println("Uploaded audio", res.AudioID)
	return nil
}

// UploadVideo uploads a local video to be resynced.
func (a *App) UploadVideo(ctx context.Context) error {
	res, err := a.uploadMedia(ctx, "Enter video file path", a.private.UploadVideo)
	if err != nil {
		return err
	}
	fmt.Println("Uploaded video", res.VideoID)
	return nil
}

// uploadMedia is the shared prompt-open-upload workflow. The content type
// comes from the file itself; the API rejects mismatched media.
func (a *App) uploadMedia(
	ctx context.Context,
	prompt string,
	upload func(ctx context.Context, userID, filename, contentType string, r io.Reader) (*api.UploadResult, error),
) (*api.UploadResult, error) {
	path, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return nil, err
	}

	ct, err := filex.ContentType(path)
	if err != nil {
		log.Printf("error: %v", err)
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		log.Printf("error: %v", err)
		return nil, err
	}
	defer f.Close()

	res, err := upload(ctx, a.session.Email(), filepath.Base(path), ct, f)
	if err != nil {
		log.Printf("error: %v", err)
		return nil, err
	}
	return res, nil
}

// Audios lists the user's uploaded-audio library, so a lipsync job can reuse
// an earlier soundtrack.
func (a *App) Audios(ctx context.Context) error {
	audios, err := a.private.Audios(ctx, a.session.Email())
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if len(audios) == 0 {
		fmt.Println("No uploaded audio yet, use 'upload-audio' to add one.")
		return nil
	}
	for _, f := range audios {
		if f.Name != "" {
			fmt.Printf("%s  %s\n", f.AudioID, f.Name)
			continue
		}
		fmt.Printf("%s  %s\n", f.AudioID, f.AudioURL)
	}
	return nil
}

// Lipsync submits a job joining an uploaded video with an uploaded audio
// track, then starts watching it.
func (a *App) Lipsync(ctx context.Context) error {
	videoID, err := getSimpleText(a.reader, "Enter video id", os.Stdout)
	if err != nil {
		return err
	}
	audioID, err := getSimpleText(a.reader, "Enter audio id", os.Stdout)
	if err != nil {
		return err
	}

	res, err := a.private.SyncAudio(ctx, api.SyncRequest{
		UserID:  a.session.Email(),
		VideoID: videoID,
		AudioID: audioID,
	})
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	fmt.Println("Submitted job", res.SyncResult.ID, "-", res.SyncResult.Status)
	return a.Watch(ctx, res.VideoID)
}

// Jobs lists the user's lipsync jobs, newest first.
func (a *App) Jobs(ctx context.Context) error {
	jobs, err := a.private.Jobs(ctx, a.session.Email(), jobsPageSize, 0)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if len(jobs) == 0 {
		fmt.Println("No jobs yet, use 'lipsync' to submit one.")
		return nil
	}
	for _, j := range jobs {
		printJob(&j)
	}
	return nil
}

// Job shows the latest state of one job.
func (a *App) Job(ctx context.Context, videoID string) error {
	job, err := a.private.Job(ctx, a.session.Email(), videoID)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	printJob(job)
	return nil
}

// Watch polls the job until it reaches a terminal status, then downloads the
// result when the job completed. The wait runs under its own
// interrupt-cancelled context: Ctrl-C stops this watch without touching the
// job or the rest of the session. A job the server rejects outright (404,
// 401) ends the wait immediately.
func (a *App) Watch(ctx context.Context, videoID string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	fmt.Println("Waiting for job", videoID, "... (Ctrl-C to stop waiting)")

	job, err := a.private.AwaitJob(ctx, a.session.Email(), videoID, a.config.PollInterval)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	printJob(job)
	if job.Status != api.JobCompleted {
		return nil
	}

	path, err := a.download(ctx, job.ResultVideoURL, job.VideoID+".mp4")
	if err != nil {
		fmt.Println("Result:", job.ResultVideoURL)
		log.Printf("download error: %v", err)
		return err
	}
	fmt.Println("Saved to", path)
	return nil
}

// DeleteJob removes a job and its source video.
func (a *App) DeleteJob(ctx context.Context, videoID string) error {
	if err := a.private.DeleteJob(ctx, a.session.Email(), videoID); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	fmt.Println("Deleted job", videoID)
	return nil
}

func printJob(j *api.SyncJob) {
	line := fmt.Sprintf("%s  %s", j.VideoID, j.Status)
	if j.ResultVideoURL != "" {
		line += "  " + j.ResultVideoURL
	}
	fmt.Println(line)
}
