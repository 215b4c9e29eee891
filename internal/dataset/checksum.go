package dataset

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// ErrChecksumMismatch is returned when a file does not have the expected hash.
var ErrChecksumMismatch = errors.New("checksum mismatch: file may be corrupted")

// ComputeChecksum returns the hex SHA-256 checksum of everything read from r.
func ComputeChecksum(r io.Reader) (string, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// ValidateChecksum compares the SHA-256 checksum of filePath with want.
func ValidateChecksum(filePath, want string) error {
	f, err := os.Open(filePath)
	if err != nil {
		return errors.Wrapf(err, "failed to open %q", filePath)
	}
	defer func() { _ = f.Close() }()
	got, err := ComputeChecksum(f)
	if err != nil {
		return errors.Wrapf(err, "failed to read %q", filePath)
	}
	if !strings.EqualFold(got, want) {
		return errors.Wrapf(ErrChecksumMismatch, "%q has SHA-256 %s, want %s", filePath, got, want)
	}
	return nil
}
