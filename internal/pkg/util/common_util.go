package util

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

// PeerKey builds the canonical key for an unordered user pair, smaller
// id first, so one conversation row serves both directions.
func PeerKey(a, b uint64) string {
	if a > b {
		a, b = b, a
	}
	return fmt.Sprintf("%d_%d", a, b)
}

// FormatTime renders timestamps for API responses
func FormatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

// SniffContentType detects the media type from the first bytes and
// rewinds the reader so the caller can still stream the full body.
func SniffContentType(r io.ReadSeeker) (string, error) {
	buf := make([]byte, 512)
	n, err := r.Read(buf)
	if err != nil && err != io.EOF {
		return "", err
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return http.DetectContentType(buf[:n]), nil
}

// TruncateRunes cuts a string to at most n runes for previews
func TruncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
