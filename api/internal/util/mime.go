package util

import (
	"encoding/base64"
	"regexp"
	"strings"
)

// imageDataURLRe accepts only the two formats a browser canvas produces.
var imageDataURLRe = regexp.MustCompile(`^data:image/(png|jpeg);base64,`)

func SniffMimeHTTP(b []byte) string {
	if len(b) >= 2 && b[0] == 0xFF && b[1] == 0xD8 {
		return "image/jpeg"
	}
	if len(b) >= 8 &&
		b[0] == 0x89 && b[1] == 0x50 && b[2] == 0x4E && b[3] == 0x47 &&
		b[4] == 0x0D && b[5] == 0x0A && b[6] == 0x1A && b[7] == 0x0A {
		return "image/png"
	}
	return "application/octet-stream"
}

func MakeDataURL(mime, b64 string) string {
	return "data:" + mime + ";base64," + b64
}

// SplitImageDataURL returns the MIME type and the base64 payload of
// data:image/(png|jpeg);base64,<payload>. ok is false for anything else.
func SplitImageDataURL(s string) (mime, payload string, ok bool) {
	m := imageDataURLRe.FindStringSubmatch(s)
	if m == nil {
		return "", "", false
	}
	_, payload, _ = strings.Cut(s, ",")
	return "image/" + m[1], payload, true
}

// DecodeBase64 tries standard base64 first, then the URL-safe alphabet.
func DecodeBase64(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if b, err := base64.StdEncoding.DecodeString(s); err == nil {
		return b, nil
	} else if b2, err2 := base64.URLEncoding.DecodeString(s); err2 == nil {
		return b2, nil
	} else {
		return nil, err
	}
}
