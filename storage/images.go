package storage

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Recipe and avatar images arrive either as multipart uploads or as base64
// data-URIs embedded in JSON. Either way they end up as files under the
// uploads dir, and the rest of the system only ever sees the reference URL.

const publicPrefix = "/uploads/"

var extensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/gif":  "gif",
	"image/webp": "webp",
}

// UploadsDir is the root directory for stored images, served statically
// under /uploads.
func UploadsDir() string {
	if dir := os.Getenv("UPLOADS_DIR"); dir != "" {
		return dir
	}
	return "./uploads"
}

// SaveDataURI decodes a "data:image/...;base64," payload, stores it under
// <uploads>/<subdir>/ with a generated filename and returns the public URL.
func SaveDataURI(dataURI, subdir string) (string, error) {
	if !strings.HasPrefix(dataURI, "data:") {
		return "", fmt.Errorf("not a data-URI")
	}
	marker := strings.Index(dataURI, ";base64,")
	if marker < 0 {
		return "", fmt.Errorf("missing base64 payload")
	}
	mediaType := dataURI[len("data:"):marker]
	ext, ok := extensions[mediaType]
	if !ok {
		return "", fmt.Errorf("unsupported media type %q", mediaType)
	}

	data, err := base64.StdEncoding.DecodeString(dataURI[marker+len(";base64,"):])
	if err != nil {
		return "", fmt.Errorf("invalid base64 payload: %w", err)
	}

	dir := filepath.Join(UploadsDir(), subdir)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", err
	}

	filename := uuid.NewString() + "." + ext
	if err := os.WriteFile(filepath.Join(dir, filename), data, 0o644); err != nil {
		return "", err
	}
	return publicPrefix + subdir + "/" + filename, nil
}

// SavedFilename builds the storage path and public URL for a multipart
// upload with the given original filename.
func SavedFilename(subdir, original string) (savePath, url string, err error) {
	ext := strings.TrimPrefix(filepath.Ext(original), ".")
	if ext == "" {
		ext = "jpg"
	}
	dir := filepath.Join(UploadsDir(), subdir)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", "", err
	}
	filename := uuid.NewString() + "." + ext
	return filepath.Join(dir, filename), publicPrefix + subdir + "/" + filename, nil
}

// Remove deletes the stored file behind a public URL. References outside
// the uploads dir (external URLs, empty fields) are left alone.
func Remove(url string) {
	if !strings.HasPrefix(url, publicPrefix) {
		return
	}
	_ = os.Remove(filepath.Join(UploadsDir(), filepath.FromSlash(strings.TrimPrefix(url, publicPrefix))))
}
