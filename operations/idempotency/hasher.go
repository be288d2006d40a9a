package idempotency

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// Fingerprint returns the hex encoded SHA-256 of the canonical form of a JSON payload.
// Two payloads that differ only in object key order or whitespace share a fingerprint.
func Fingerprint(payload []byte) (string, error) {
	canonical, err := Canonicalize(payload)
	if err != nil {
		return "", err
	}
	return hashing(canonical), nil
}

// Canonicalize re-encodes a JSON document with sorted object keys and no
// insignificant whitespace. Numbers keep their literal form.
func Canonicalize(payload []byte) ([]byte, error) {
	if len(bytes.TrimSpace(payload)) == 0 {
		return nil, errors.New("payload is empty")
	}
	// The decoder would map invalid bytes to U+FFFD and merge distinct payloads.
	if !utf8.Valid(payload) {
		return nil, errors.New("payload is not valid UTF-8")
	}

	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("payload has trailing data")
	}

	// encoding/json writes map keys in sorted order.
	canonical, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	return canonical, nil
}

func hashing(body []byte) string {
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}

// IsObject reports whether payload is a JSON object. It only inspects the first
// non-whitespace byte, so callers still need Canonicalize to validate the document.
func IsObject(payload []byte) bool {
	trimmed := bytes.TrimLeft(payload, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '{'
}
