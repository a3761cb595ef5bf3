//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
	"voice2txt/internal/app/api"
	appopenai "voice2txt/internal/app/api/openai"
	"voice2txt/internal/app/api/openai/whisper"
	"voice2txt/internal/app/converter"
	"voice2txt/internal/config"
)

// provideOpenAIClient builds the client from the effective config; the base URL
// falls back to the library default when none was resolved
func provideOpenAIClient(cfg config.Effective) *openai.Client {
	return appopenai.NewClient(cfg.APIKey, cfg.BaseURL, nil)
}

// provideRemoteTranscriber with openai's remote service conversion
func provideRemoteTranscriber(client *openai.Client, logger *zap.Logger) api.Transcriber {
	return whisper.NewRemoteTranscriber(client, logger)
}

func InitializeConverter(cfg config.Effective, logger *zap.Logger, opts converter.Options) *converter.Converter {
	wire.Build(converter.NewConverter, provideRemoteTranscriber, provideOpenAIClient)
	return &converter.Converter{}
}
