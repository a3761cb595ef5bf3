package cmd

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"voice2txt/cmd/voice2txt/cmd/config"
	"voice2txt/cmd/voice2txt/cmd/version"
	"voice2txt/internal/app"
	"voice2txt/internal/app/common"
	"voice2txt/internal/app/converter"
	"voice2txt/internal/app/errors"
	appconfig "voice2txt/internal/config"
)

type rootOptions struct {
	apiKey     string
	baseURL    string
	save       bool
	model      string
	language   string
	prompt     string
	output     string
	timeout    time.Duration
	noProgress bool
	configPath string
	verbose    bool
}

// usageError marks mistakes in how the command was invoked.
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }

func (e usageError) Unwrap() error { return e.err }

// NewRootCmd builds the voice2txt command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "voice2txt <audio_file>",
		Short: "Transcribe an audio file with the Whisper API",
		Long: `Transcribe an audio file with the OpenAI Whisper API or any compatible endpoint.

The API key and base URL are taken from, in order of priority:
- the --api-key / --base-url flags
- the saved config file (see --save and --config)
- the ` + appconfig.EnvAPIKey + ` environment variable (api key only; a .env file is read too)`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				return usageError{err}
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranscribe(cmd, opts, args[0])
		},
	}

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err}
	})

	flags := rootCmd.Flags()
	flags.StringVar(&opts.apiKey, "api-key", "", "API key (overrides the saved config and "+appconfig.EnvAPIKey+")")
	flags.StringVar(&opts.baseURL, "base-url", "", "Base URL of a Whisper-compatible API, e.g. https://api.example.com/v1")
	flags.BoolVar(&opts.save, "save", false, "Save the given --api-key/--base-url to the config file")
	flags.StringVarP(&opts.model, "model", "m", appconfig.DefaultModel, "Model name sent to the API")
	flags.StringVarP(&opts.language, "language", "l", "", "Language of the audio as an ISO-639-1 code (auto-detected when empty)")
	flags.StringVar(&opts.prompt, "prompt", "", "Optional text to guide the transcription style")
	flags.StringVarP(&opts.output, "output", "o", "", "Also write the transcript to a file (.txt, .json, .yaml, .xlsx)")
	flags.DurationVar(&opts.timeout, "timeout", appconfig.DefaultTimeout, "Give up on the API call after this long (0 = no limit)")
	flags.BoolVar(&opts.noProgress, "no-progress", false, "Do not show the progress spinner")

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", appconfig.DefaultConfigFile, "Path of the saved config file")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "V", false, "verbose output")

	rootCmd.AddCommand(config.NewCmd(&opts.configPath))
	rootCmd.AddCommand(version.NewCmd())

	return rootCmd
}

func runTranscribe(cmd *cobra.Command, opts *rootOptions, audioPath string) error {
	stderr := cmd.ErrOrStderr()
	logger := common.NewLogger(opts.verbose, stderr)
	defer logger.Sync()

	appconfig.LoadEnv(logger)

	loaded := appconfig.Load(opts.configPath)
	switch loaded.State {
	case appconfig.StateMalformed, appconfig.StateUnreadable:
		logger.Warn("ignoring saved config",
			zap.String("path", loaded.Path),
			zap.String("state", string(loaded.State)),
			zap.Error(loaded.Err))
	default:
		logger.Debug("saved config", zap.String("path", loaded.Path), zap.String("state", string(loaded.State)))
	}

	sources := appconfig.Sources{
		Flags: appconfig.Config{APIKey: opts.apiKey, BaseURL: opts.baseURL},
		File:  loaded,
	}
	eff := appconfig.Resolve(sources)
	logger.Debug("resolved config",
		zap.String("api_key", appconfig.MaskKey(eff.APIKey)),
		zap.String("api_key_source", string(eff.APIKeySource)),
		zap.String("base_url", eff.BaseURL),
		zap.String("base_url_source", string(eff.BaseURLSource)))

	if err := eff.Validate(); err != nil {
		return err
	}
	if err := appconfig.ValidateTimeout(opts.timeout, "--timeout"); err != nil {
		return err
	}

	if opts.save {
		saveConfig(stderr, logger, opts.configPath, sources)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}

	conv := app.InitializeConverter(eff, logger, converter.Options{
		Stdout:  cmd.OutOrStdout(),
		Stderr:  stderr,
		BaseURL: eff.BaseURL,
		Progress: converter.ProgressConfig{
			Enabled: converter.ShouldShowProgress(opts.noProgress, stderr),
			Writer:  stderr,
		},
	})

	_, err := conv.Do(ctx, converter.Job{
		InputFilePath: audioPath,
		Model:         opts.model,
		Language:      opts.language,
		Prompt:        opts.prompt,
		OutputPath:    opts.output,
	})
	return err
}

// saveConfig persists the CLI-supplied values. A failed save is reported but
// does not stop the transcription.
func saveConfig(w io.Writer, logger *zap.Logger, path string, sources appconfig.Sources) {
	cfg, ok := appconfig.ToSave(sources)
	if !ok {
		fmt.Fprintln(w, "Warning: nothing to save; pass --api-key or --base-url together with --save.")
		return
	}
	if err := appconfig.Save(path, cfg); err != nil {
		logger.Error("saving config failed", zap.String("path", path), zap.Error(err))
		fmt.Fprintf(w, "Warning: could not save configuration: %v\n", err)
		return
	}
	fmt.Fprintf(w, "Configuration saved to %s\n", path)
}

// describe renders any error returned by the command tree.
func describe(err error) string {
	var uerr usageError
	if stderrors.As(err, &uerr) {
		return fmt.Sprintf("Error: %v\nRun 'voice2txt --help' for usage.", uerr.err)
	}
	return errors.Describe(err)
}

// Run executes the command tree with args and returns the process exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, describe(err))
		return 1
	}
	return 0
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if code := Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); code != 0 {
		os.Exit(code)
	}
}
