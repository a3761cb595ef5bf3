package converter

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"voice2txt/internal/app/api"
	"voice2txt/internal/app/converter/export"
	"voice2txt/internal/app/model"
	"voice2txt/internal/app/util/files"
)

// ResultHeader is printed on stdout right before the transcript.
const ResultHeader = "Transcription result:"

// Options configures where a Converter prints and what it reports.
type Options struct {
	Stdout   io.Writer
	Stderr   io.Writer
	Progress ProgressConfig
	// BaseURL is only echoed to the user; the transcriber already carries it.
	BaseURL string
}

// Job is one audio file to transcribe.
type Job struct {
	InputFilePath string
	Model         string
	Language      string
	Prompt        string
	// OutputPath, when set, also writes the transcript to a file.
	OutputPath string
}

type Converter struct {
	transcriber api.Transcriber
	logger      *zap.Logger
	progress    *ProgressManager
	stdout      io.Writer
	stderr      io.Writer
	baseURL     string
	now         func() time.Time
}

func NewConverter(transcriber api.Transcriber, logger *zap.Logger, opts Options) *Converter {
	if logger == nil {
		logger = zap.NewNop()
	}
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	return &Converter{
		transcriber: transcriber,
		logger:      logger,
		progress:    NewProgressManager(opts.Progress),
		stdout:      stdout,
		stderr:      stderr,
		baseURL:     opts.BaseURL,
		now:         time.Now,
	}
}

// Do checks the file, transcribes it and prints the result. The endpoint is
// never called for a missing or unreadable file.
func (c *Converter) Do(ctx context.Context, job Job) (*model.Transcription, error) {
	file, err := files.CheckAudioFile(job.InputFilePath)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(c.stderr, "Uploading and transcribing %s...\n", file.FullPath)
	if c.baseURL != "" {
		fmt.Fprintf(c.stderr, "Using API endpoint: %s\n", c.baseURL)
	}
	c.logger.Debug("transcribing",
		zap.String("file", file.FullPath),
		zap.Int64("size", file.Size),
		zap.String("model", job.Model))

	started := c.now()
	spinner := c.progress.StartSpinner("Transcribing " + file.Name)
	result, err := c.transcriber.Transcript(ctx, api.Request{
		InputFilePath: file.FullPath,
		Model:         job.Model,
		Language:      job.Language,
		Prompt:        job.Prompt,
	})
	spinner.Stop(err == nil)
	c.progress.Wait()
	if err != nil {
		c.logger.Debug("transcription failed", zap.String("file", file.FullPath), zap.Error(err))
		return nil, err
	}
	elapsed := c.now().Sub(started)

	fmt.Fprintln(c.stderr, "Transcription complete.")
	fmt.Fprintf(c.stdout, "\n%s\n%s\n", ResultHeader, result.Text)

	record := model.Transcription{
		ID:             uuid.NewString(),
		FilePath:       file.FullPath,
		Model:          job.Model,
		Language:       result.Language,
		BaseURL:        c.baseURL,
		AudioDuration:  result.Duration,
		ProcessingTime: elapsed,
		CreatedAt:      started,
		Text:           result.Text,
	}
	c.logger.Info("transcription finished",
		zap.String("id", record.ID),
		zap.Duration("elapsed", elapsed),
		zap.Int("chars", len(record.Text)))

	if job.OutputPath != "" {
		hash, err := files.CalculateFileHash(file.FullPath)
		if err != nil {
			c.logger.Warn("hashing audio file failed", zap.String("file", file.FullPath), zap.Error(err))
		}
		record.FileHash = hash
		if err := export.Write(record, job.OutputPath); err != nil {
			return &record, err
		}
		fmt.Fprintf(c.stderr, "Saved transcript to %s\n", job.OutputPath)
	}

	return &record, nil
}
