package model

import "time"

// Transcription is one completed run, as written by the exporter.
type Transcription struct {
	ID             string        `json:"id" yaml:"id"`
	FilePath       string        `json:"file_path" yaml:"file_path"`
	FileHash       string        `json:"file_hash,omitempty" yaml:"file_hash,omitempty"`
	Model          string        `json:"model" yaml:"model"`
	Language       string        `json:"language,omitempty" yaml:"language,omitempty"`
	BaseURL        string        `json:"base_url,omitempty" yaml:"base_url,omitempty"`
	AudioDuration  float64       `json:"audio_duration,omitempty" yaml:"audio_duration,omitempty"`
	ProcessingTime time.Duration `json:"processing_time" yaml:"processing_time"`
	CreatedAt      time.Time     `json:"created_at" yaml:"created_at"`
	Text           string        `json:"text" yaml:"text"`
}
