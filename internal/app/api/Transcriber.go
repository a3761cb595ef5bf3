package api

import "context"

// Request describes one transcription call.
type Request struct {
	InputFilePath string
	Model         string
	Language      string
	Prompt        string
}

// Result is what the endpoint returned for a request.
type Result struct {
	Text     string
	Language string
	// Duration of the audio in seconds, when the endpoint reports it.
	Duration float64
}

// Transcriber defines a transcription interface for converting audio files to text.
type Transcriber interface {
	Transcript(ctx context.Context, req Request) (*Result, error)
}
