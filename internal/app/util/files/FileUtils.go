package files

import (
	"os"
	"path/filepath"

	"voice2txt/internal/app/errors"
	"voice2txt/internal/app/model"
)

// CheckAudioFile verifies that path names a readable regular file. It does
// not look at the contents: format checks are left to the endpoint.
func CheckAudioFile(path string) (model.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.FileInfo{}, errors.FileNotFound(path)
		}
		return model.FileInfo{}, errors.ErrFileReadFailed.WithDetail(path).WithCause(err)
	}
	if !info.Mode().IsRegular() {
		return model.FileInfo{}, errors.FileNotFound(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return model.FileInfo{}, errors.ErrFileReadFailed.WithDetail(path).WithCause(err)
	}
	f.Close()

	return model.FileInfo{
		FullPath: path,
		ModTime:  info.ModTime(),
		Name:     filepath.Base(path),
		Size:     info.Size(),
	}, nil
}
