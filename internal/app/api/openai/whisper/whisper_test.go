package whisper

import (
	"context"
	stderrors "errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"voice2txt/internal/app/api"
	appopenai "voice2txt/internal/app/api/openai"
	apperrors "voice2txt/internal/app/errors"
)

// TestRemoteTranscriber_Transcript tests the RemoteTranscriber implementation
func TestRemoteTranscriber_Transcript(t *testing.T) {
	tests := []struct {
		name          string
		mockResponse  string
		mockStatus    int
		expectedText  string
		expectError   bool
		expectKind    apperrors.Kind
		errorContains string
	}{
		{
			name:         "successful transcription",
			mockResponse: `{"text": "This is a test transcription"}`,
			mockStatus:   http.StatusOK,
			expectedText: "This is a test transcription",
		},
		{
			name:         "successful transcription with special characters",
			mockResponse: `{"text": "Hello, 世界! This is a test with émojis 🎵"}`,
			mockStatus:   http.StatusOK,
			expectedText: "Hello, 世界! This is a test with émojis 🎵",
		},
		{
			name:          "API error - unauthorized",
			mockResponse:  `{"error": {"message": "Invalid API key", "type": "invalid_request_error"}}`,
			mockStatus:    http.StatusUnauthorized,
			expectError:   true,
			expectKind:    apperrors.KindAPI,
			errorContains: "401",
		},
		{
			name:          "API error - rate limit",
			mockResponse:  `{"error": {"message": "Rate limit exceeded", "type": "rate_limit_error"}}`,
			mockStatus:    http.StatusTooManyRequests,
			expectError:   true,
			expectKind:    apperrors.KindAPI,
			errorContains: "Rate limit exceeded",
		},
		{
			name:          "API error - server error without error body",
			mockResponse:  `upstream exploded`,
			mockStatus:    http.StatusBadGateway,
			expectError:   true,
			expectKind:    apperrors.KindAPI,
			errorContains: "502",
		},
		{
			name:          "network error",
			mockStatus:    0,
			expectError:   true,
			expectKind:    apperrors.KindUnexpected,
			errorContains: "EOF",
		},
		{
			name:          "invalid JSON response",
			mockResponse:  `{"text": "incomplete JSON`,
			mockStatus:    http.StatusOK,
			expectError:   true,
			expectKind:    apperrors.KindUnexpected,
			errorContains: "request failed",
		},
		{
			name:         "empty transcription",
			mockResponse: `{"text": ""}`,
			mockStatus:   http.StatusOK,
			expectedText: "",
		},
		{
			name:         "transcription with line breaks",
			mockResponse: `{"text": "Line 1\nLine 2\nLine 3"}`,
			mockStatus:   http.StatusOK,
			expectedText: "Line 1\nLine 2\nLine 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.mockStatus == 0 {
					hijacker, ok := w.(http.Hijacker)
					if ok {
						conn, _, _ := hijacker.Hijack()
						conn.Close()
						return
					}
				}

				if r.Header.Get("Authorization") != "Bearer test-api-key" {
					t.Errorf("Unexpected Authorization header %q", r.Header.Get("Authorization"))
				}
				if r.Method != http.MethodPost {
					t.Errorf("Expected POST method, got %s", r.Method)
				}
				if !strings.HasSuffix(r.URL.Path, "/audio/transcriptions") {
					t.Errorf("Unexpected path %s", r.URL.Path)
				}

				if err := r.ParseMultipartForm(32 << 20); err != nil {
					t.Errorf("Failed to parse multipart form: %v", err)
				}
				if model := r.FormValue("model"); model != "whisper-1" {
					t.Errorf("Expected model whisper-1, got %s", model)
				}

				file, header, err := r.FormFile("file")
				if err != nil {
					t.Errorf("Failed to get file from form: %v", err)
				} else {
					defer file.Close()
					if header.Filename != "audio.wav" {
						t.Errorf("Expected filename audio.wav, got %s", header.Filename)
					}
				}

				w.WriteHeader(tt.mockStatus)
				w.Write([]byte(tt.mockResponse))
			}))
			defer server.Close()

			rt := NewRemoteTranscriber(appopenai.NewClient("test-api-key", server.URL+"/v1", nil), nil)
			tempFile := createTempTestFile(t, "audio.wav")

			result, err := rt.Transcript(context.Background(), api.Request{InputFilePath: tempFile})

			if tt.expectError {
				if err == nil {
					t.Fatalf("Expected error but got none")
				}
				if tt.errorContains != "" && !strings.Contains(err.Error(), tt.errorContains) {
					t.Errorf("Expected error containing '%s', got '%s'", tt.errorContains, err.Error())
				}
				if kind := apperrors.Classify(err); kind != tt.expectKind {
					t.Errorf("Expected error kind %s, got %s (%v)", tt.expectKind, kind, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if result.Text != tt.expectedText {
				t.Errorf("Expected text '%s', got '%s'", tt.expectedText, result.Text)
			}
		})
	}
}

// TestRemoteTranscriber_UploadsFileContents checks the multipart body carries the file bytes
func TestRemoteTranscriber_UploadsFileContents(t *testing.T) {
	var uploaded []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		file, _, err := r.FormFile("file")
		if err != nil {
			t.Errorf("Failed to get file from form: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer file.Close()
		uploaded, _ = io.ReadAll(file)
		w.Write([]byte(`{"text": "ok"}`))
	}))
	defer server.Close()

	tempFile := createTempTestFile(t, "audio.wav")
	want, err := os.ReadFile(tempFile)
	if err != nil {
		t.Fatal(err)
	}

	rt := NewRemoteTranscriber(appopenai.NewClient("test-api-key", server.URL+"/v1", nil), nil)
	if _, err := rt.Transcript(context.Background(), api.Request{InputFilePath: tempFile}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if string(uploaded) != string(want) {
		t.Errorf("Uploaded %d bytes, expected %d", len(uploaded), len(want))
	}
}

// TestRemoteTranscriber_Options checks model, language and prompt reach the form
func TestRemoteTranscriber_Options(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			t.Errorf("Failed to parse multipart form: %v", err)
		}
		if got := r.FormValue("model"); got != "whisper-large-v3" {
			t.Errorf("Expected model whisper-large-v3, got %s", got)
		}
		if got := r.FormValue("language"); got != "zh" {
			t.Errorf("Expected language zh, got %s", got)
		}
		if got := r.FormValue("prompt"); got != "以下是普通话" {
			t.Errorf("Expected prompt, got %s", got)
		}
		w.Write([]byte(`{"text": "你好", "language": "chinese", "duration": 1.5}`))
	}))
	defer server.Close()

	rt := NewRemoteTranscriber(appopenai.NewClient("test-api-key", server.URL+"/v1", nil), nil)
	result, err := rt.Transcript(context.Background(), api.Request{
		InputFilePath: createTempTestFile(t, "audio.wav"),
		Model:         "whisper-large-v3",
		Language:      "zh",
		Prompt:        "以下是普通话",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.Text != "你好" || result.Language != "chinese" || result.Duration != 1.5 {
		t.Errorf("Unexpected result: %+v", result)
	}
}

// TestRemoteTranscriber_FileNotFound tests handling of non-existent files
func TestRemoteTranscriber_FileNotFound(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	rt := NewRemoteTranscriber(appopenai.NewClient("test-api-key", server.URL+"/v1", nil), nil)

	_, err := rt.Transcript(context.Background(), api.Request{InputFilePath: "/non/existent/file.mp3"})
	if !stderrors.Is(err, apperrors.ErrFileNotFound) {
		t.Errorf("Expected file not found error, got %v", err)
	}
	if called {
		t.Error("Endpoint must not be called for a missing file")
	}
}

// TestRemoteTranscriber_Timeout tests request timeout handling
func TestRemoteTranscriber_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-time.After(2 * time.Second):
		}
		w.Write([]byte(`{"text": "Should timeout"}`))
	}))
	defer server.Close()
	defer close(release)

	client := appopenai.NewClient("test-api-key", server.URL+"/v1", &http.Client{Timeout: 100 * time.Millisecond})
	rt := NewRemoteTranscriber(client, nil)

	_, err := rt.Transcript(context.Background(), api.Request{InputFilePath: createTempTestFile(t, "audio.wav")})
	if err == nil {
		t.Fatal("Expected timeout error, got none")
	}
	if apperrors.Classify(err) != apperrors.KindUnexpected {
		t.Errorf("Expected unexpected error kind, got %s", apperrors.Classify(err))
	}
}

// TestRemoteTranscriber_ContextCanceled stops before the endpoint answers
func TestRemoteTranscriber_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"text": "too late"}`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rt := NewRemoteTranscriber(appopenai.NewClient("test-api-key", server.URL+"/v1", nil), nil)
	_, err := rt.Transcript(ctx, api.Request{InputFilePath: createTempTestFile(t, "audio.wav")})
	if !stderrors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

// Helper function to create temporary test files
func createTempTestFile(t *testing.T, name string) string {
	t.Helper()

	tempFile := filepath.Join(t.TempDir(), name)

	// Create a minimal valid audio file (WAV header)
	wavHeader := []byte{
		0x52, 0x49, 0x46, 0x46, // "RIFF"
		0x24, 0x00, 0x00, 0x00, // File size
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
		0x00, 0x00, 0x00, 0x00, // Data size
	}

	if err := os.WriteFile(tempFile, wavHeader, 0o644); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tempFile
}
