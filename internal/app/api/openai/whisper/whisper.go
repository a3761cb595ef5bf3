package whisper

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"voice2txt/internal/app/api"
	apperrors "voice2txt/internal/app/errors"
)

// RemoteTranscriber implements remote transcription using the OpenAI API.
type RemoteTranscriber struct {
	client *openai.Client
	logger *zap.Logger
}

// NewRemoteTranscriber creates a new RemoteTranscriber instance.
func NewRemoteTranscriber(client *openai.Client, logger *zap.Logger) *RemoteTranscriber {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RemoteTranscriber{client: client, logger: logger}
}

// Transcript uploads the file and returns the endpoint's transcription.
func (rt *RemoteTranscriber) Transcript(ctx context.Context, req api.Request) (*api.Result, error) {
	f, err := os.Open(req.InputFilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.FileNotFound(req.InputFilePath)
		}
		return nil, apperrors.ErrFileReadFailed.WithDetail(req.InputFilePath).WithCause(err)
	}
	defer f.Close()

	model := req.Model
	if model == "" {
		model = openai.Whisper1
	}

	audioReq := openai.AudioRequest{
		Model:    model,
		FilePath: filepath.Base(req.InputFilePath),
		Reader:   f,
		Language: req.Language,
		Prompt:   req.Prompt,
	}

	rt.logger.Debug("creating transcription",
		zap.String("file", req.InputFilePath),
		zap.String("model", model),
		zap.String("language", req.Language))

	resp, err := rt.client.CreateTranscription(ctx, audioReq)
	if err != nil {
		return nil, handleAPIError(err)
	}

	return &api.Result{
		Text:     resp.Text,
		Language: resp.Language,
		Duration: resp.Duration,
	}, nil
}

// handleAPIError separates failures reported by the endpoint from transport
// and decoding failures.
func handleAPIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &apperrors.APIError{
			Status:  apiErr.HTTPStatusCode,
			Message: apiErr.Message,
		}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		msg := http.StatusText(reqErr.HTTPStatusCode)
		if reqErr.Err != nil {
			msg = reqErr.Err.Error()
		}
		return &apperrors.APIError{
			Status:  reqErr.HTTPStatusCode,
			Message: msg,
		}
	}

	return apperrors.ErrRequestFailed.WithCause(err)
}
