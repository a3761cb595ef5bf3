package files

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"

	"voice2txt/internal/app/errors"
)

// CalculateFileHash calculates SHA256 hash of a file
func CalculateFileHash(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", errors.ErrFileReadFailed.WithDetail(filePath).WithCause(err)
	}
	defer file.Close()

	hash := sha256.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", errors.ErrFileReadFailed.WithDetail(filePath).WithCause(err)
	}

	return hex.EncodeToString(hash.Sum(nil)), nil
}
