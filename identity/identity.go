package identity

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/blake2b"
)

// Probe returns a stable identifier of the device or installation.
type Probe interface {
	DeviceIdentity() (string, error)
}

// StaticProbe returns a fixed identity.
type StaticProbe string

// DeviceIdentity implements Probe.
func (p StaticProbe) DeviceIdentity() (string, error) {
	if p == "" {
		return "", errors.New("static identity is empty")
	}
	return string(p), nil
}

// FileProbe returns an installation id kept in a file. The id is a random
// UUID generated on first use, so it changes when the file is wiped, as it
// is when the application data is cleared.
type FileProbe struct {
	path string
	mu   sync.Mutex
}

// NewFileProbe creates a probe backed by path.
func NewFileProbe(path string) *FileProbe {
	return &FileProbe{path: path}
}

// DeviceIdentity implements Probe.
func (p *FileProbe) DeviceIdentity() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	// #nosec G304 -- path is supplied by the embedding application
	data, err := os.ReadFile(p.path)
	if err == nil {
		id := strings.TrimSpace(string(data))
		if _, perr := uuid.Parse(id); perr == nil {
			return id, nil
		}
		logrus.WithFields(logrus.Fields{
			"function": "FileProbe.DeviceIdentity",
			"path":     p.path,
		}).Warn("Installation id file is corrupt, generating a new id")
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("failed to read installation id: %w", err)
	}

	id := uuid.NewString()
	if err := os.MkdirAll(filepath.Dir(p.path), 0o750); err != nil {
		return "", fmt.Errorf("failed to create installation id directory: %w", err)
	}
	if err := os.WriteFile(p.path, []byte(id+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("failed to write installation id: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"function": "FileProbe.DeviceIdentity",
		"path":     p.path,
	}).Info("Generated new installation id")
	return id, nil
}

var fingerprintKey = []byte("openpush device identity v1")

// Fingerprint returns the keyed BLAKE2b-256 digest of identity, hex encoded.
// Only fingerprints are persisted, never the raw identity.
func Fingerprint(identity string) string {
	h, err := blake2b.New256(fingerprintKey)
	if err != nil {
		// The key is shorter than blake2b.Size, so New256 cannot fail.
		panic(err)
	}
	h.Write([]byte(identity))
	return hex.EncodeToString(h.Sum(nil))
}
