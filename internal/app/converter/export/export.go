package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tealeg/xlsx"
	"gopkg.in/yaml.v3"

	"voice2txt/internal/app/errors"
	"voice2txt/internal/app/model"
)

// Format is an export file format.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatXLSX Format = "xlsx"
)

// FormatFor picks the format from the file extension; unknown extensions are text.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".xlsx":
		return FormatXLSX
	default:
		return FormatText
	}
}

// Write saves t to outputFilePath in the format its extension names.
func Write(t model.Transcription, outputFilePath string) error {
	var err error
	switch FormatFor(outputFilePath) {
	case FormatJSON:
		err = toJSON(t, outputFilePath)
	case FormatYAML:
		err = toYAML(t, outputFilePath)
	case FormatXLSX:
		err = ToExcel([]model.Transcription{t}, outputFilePath)
	default:
		err = os.WriteFile(outputFilePath, []byte(t.Text+"\n"), 0o644)
	}
	if err != nil {
		return errors.ErrExportFailed.WithDetail(outputFilePath).WithCause(err)
	}
	return nil
}

func toJSON(t model.Transcription, outputFilePath string) error {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outputFilePath, append(data, '\n'), 0o644)
}

func toYAML(t model.Transcription, outputFilePath string) error {
	data, err := yaml.Marshal(t)
	if err != nil {
		return err
	}
	return os.WriteFile(outputFilePath, data, 0o644)
}

func ToExcel(transcriptions []model.Transcription, outputFilePath string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Transcriptions")
	if err != nil {
		return err
	}

	headerRow := sheet.AddRow()
	headerRow.AddCell().Value = "ID"
	headerRow.AddCell().Value = "File"
	headerRow.AddCell().Value = "Created At"
	headerRow.AddCell().Value = "Model"
	headerRow.AddCell().Value = "Language"
	headerRow.AddCell().Value = "Audio Duration"
	headerRow.AddCell().Value = "Transcription"

	for _, t := range transcriptions {
		row := sheet.AddRow()
		row.AddCell().Value = t.ID
		row.AddCell().Value = t.FilePath
		row.AddCell().Value = t.CreatedAt.Format(time.RFC3339)
		row.AddCell().Value = t.Model
		row.AddCell().Value = t.Language
		row.AddCell().Value = fmt.Sprintf("%.2f", t.AudioDuration)
		row.AddCell().Value = t.Text
	}

	return file.Save(outputFilePath)
}
