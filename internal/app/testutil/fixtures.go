package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// CreateTestAudioFile creates a minimal valid WAV file for testing
func CreateTestAudioFile(t *testing.T, filename string) string {
	t.Helper()

	fullPath := filepath.Join(t.TempDir(), filepath.Base(filename))

	wavHeader := []byte{
		0x52, 0x49, 0x46, 0x46, // "RIFF"
		0x24, 0x08, 0x00, 0x00, // File size (2084 bytes)
		0x57, 0x41, 0x56, 0x45, // "WAVE"
		0x66, 0x6D, 0x74, 0x20, // "fmt "
		0x10, 0x00, 0x00, 0x00, // Chunk size
		0x01, 0x00, // Audio format (PCM)
		0x01, 0x00, // Channels (mono)
		0x80, 0x3E, 0x00, 0x00, // Sample rate (16000)
		0x00, 0x7D, 0x00, 0x00, // Byte rate
		0x02, 0x00, // Block align
		0x10, 0x00, // Bits per sample
		0x64, 0x61, 0x74, 0x61, // "data"
		0x00, 0x08, 0x00, 0x00, // Data size (2048 bytes)
	}

	// silence
	data := append(wavHeader, make([]byte, 2048)...)
	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		t.Fatalf("Failed to create test audio file: %v", err)
	}

	return fullPath
}

// WriteConfigFile writes raw content as the saved config in dir and returns its path.
func WriteConfigFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

// ReadConfigFile decodes the saved config at path into a plain map.
func ReadConfigFile(t *testing.T, path string) map[string]string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read config file: %v", err)
	}
	var out map[string]string
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Config file is not a JSON object of strings: %v\n%s", err, data)
	}
	return out
}
