// Package testutil provides shared test doubles and fixtures.
//
//   - MockTranscriber (mock_transcriber.go): a testify mock of api.Transcriber
//     that records every request it receives.
//   - Fixtures (fixtures.go): small WAV files and config files in t.TempDir().
//
// # Usage
//
//	func TestSomething(t *testing.T) {
//	    transcriber := testutil.NewMockTranscriber()
//	    transcriber.On("Transcript", mock.Anything, mock.Anything).
//	        Return(&api.Result{Text: "hello world"}, nil)
//	    audio := testutil.CreateTestAudioFile(t, "clip.wav")
//	    ...
//	    transcriber.AssertExpectations(t)
//	}
package testutil
