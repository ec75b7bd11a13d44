// Package storage persists uploaded post images. Local disk is the default,
// Cloudflare R2 takes over when the R2 credentials are configured.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ImageStore saves an image under the given key and returns the path that is
// recorded on the post.
type ImageStore interface {
	Save(key string, r io.Reader, contentType string) (string, error)
}

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
}

// ExtensionFor maps an upload's content type to a file extension, rejecting
// anything that is not jpeg/png/gif.
func ExtensionFor(contentType string) (string, error) {
	ext, ok := allowedImageTypes[strings.ToLower(contentType)]
	if !ok {
		return "", fmt.Errorf("unsupported image type %q", contentType)
	}
	return ext, nil
}

// Local writes files under Root and serves them from /media/.
type Local struct {
	Root string
}

func NewLocal(root string) *Local {
	return &Local{Root: root}
}

func (l *Local) Save(key string, r io.Reader, _ string) (string, error) {
	path := filepath.Join(l.Root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}

	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return "", err
	}
	return "/media/" + key, nil
}
