package object

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"time"

	"resume-feedback/internal/shared/util"
)

// ErrNotFound is returned by Open and Delete for unknown keys.
var ErrNotFound = errors.New("object not found")

// Object describes a stored upload.
type Object struct {
	Key         string
	Size        int64
	ContentType string
}

// Store saves and retrieves résumé uploads and their derived text.
type Store interface {
	// Save stores r under a fresh key in owner's namespace.
	Save(ctx context.Context, owner, fileName string, r io.Reader) (Object, error)
	// Put stores r at an exact key, replacing any previous object.
	Put(ctx context.Context, key, contentType string, r io.Reader) (int64, error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

// NewKey returns "<owner hash>/<random>_<sanitized name>".
func NewKey(owner, fileName string) (string, error) {
	name, err := util.SanitizeFileName(fileName)
	if err != nil {
		return "", fmt.Errorf("sanitize file name: %w", err)
	}
	return path.Join(util.HashUserKey(owner), randomID()+"_"+name), nil
}

// DerivedKey is the key of the extracted-text sibling of key.
func DerivedKey(key string) string {
	return key + ".extracted.txt"
}

// Sniff detects the content type of r from its first 512 bytes and returns a
// reader that still yields the full stream.
func Sniff(r io.Reader) (string, io.Reader, error) {
	var head [512]byte
	n, err := io.ReadFull(r, head[:])
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", nil, fmt.Errorf("read sniff: %w", err)
	}
	return http.DetectContentType(head[:n]), io.MultiReader(bytes.NewReader(head[:n]), r), nil
}

func randomID() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b[:])
}
