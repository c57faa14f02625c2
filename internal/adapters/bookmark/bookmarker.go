package bookmark

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/crypto/blake2b"

	"github.com/stephan-zhuchen/fastgit/internal/logging"
	"github.com/stephan-zhuchen/fastgit/internal/ports"
)

// ErrCorruptToken is returned when a token fails to decode or its digest does not match
var ErrCorruptToken = errors.New("corrupt access token")

// payload is what a token remembers about a directory
type payload struct {
	Created time.Time `json:"created"`
	Dev     uint64    `json:"dev"`
	Ino     uint64    `json:"ino"`
	Path    string    `json:"path"`
}

type envelope struct {
	Digest  string          `json:"digest"`
	Payload json.RawMessage `json:"payload"`
}

// Bookmarker implements ports.Bookmarker with self-describing tokens. A token
// records the directory path and its file identity; it turns stale when the
// directory at that path is no longer the one it was created for.
type Bookmarker struct {
	now func() time.Time
}

// Verify interface compliance at compile time
var _ ports.Bookmarker = (*Bookmarker)(nil)

// NewBookmarker creates a new Bookmarker
func NewBookmarker() *Bookmarker {
	return &Bookmarker{now: time.Now}
}

// Create implements Bookmarker.Create
func (b *Bookmarker) Create(dir string) ([]byte, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve directory: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to stat directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", abs)
	}

	dev, ino, err := fileIdentity(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory identity: %w", err)
	}

	return encode(payload{Created: b.now().UTC(), Dev: dev, Ino: ino, Path: abs})
}

// Resolve implements Bookmarker.Resolve
func (b *Bookmarker) Resolve(token []byte) (string, bool, error) {
	p, err := decode(token)
	if err != nil {
		return "", false, err
	}

	dev, ino, err := fileIdentity(p.Path)
	if err != nil {
		logging.Logger.Debug("Bookmarked directory unavailable", "path", p.Path, "error", err)
		return p.Path, true, nil
	}
	if dev != p.Dev || ino != p.Ino {
		logging.Logger.Debug("Bookmarked directory was replaced", "path", p.Path)
		return p.Path, true, nil
	}
	return p.Path, false, nil
}

// StartAccess implements Bookmarker.StartAccess
func (b *Bookmarker) StartAccess(resolved string) (ports.AccessSession, error) {
	return startAccess(resolved)
}

func digest(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func encode(p payload) ([]byte, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal token payload: %w", err)
	}
	token, err := json.Marshal(envelope{Digest: digest(data), Payload: data})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal token: %w", err)
	}
	return token, nil
}

func decode(token []byte) (payload, error) {
	var env envelope
	if err := json.Unmarshal(token, &env); err != nil {
		return payload{}, fmt.Errorf("%w: %v", ErrCorruptToken, err)
	}

	// json.RawMessage keeps the bytes as written, so the digest can be recomputed
	compact := new(bytes.Buffer)
	if err := json.Compact(compact, env.Payload); err != nil {
		return payload{}, fmt.Errorf("%w: %v", ErrCorruptToken, err)
	}
	if digest(compact.Bytes()) != env.Digest {
		return payload{}, fmt.Errorf("%w: digest mismatch", ErrCorruptToken)
	}

	var p payload
	if err := json.Unmarshal(env.Payload, &p); err != nil {
		return payload{}, fmt.Errorf("%w: %v", ErrCorruptToken, err)
	}
	if p.Path == "" {
		return payload{}, fmt.Errorf("%w: empty path", ErrCorruptToken)
	}
	return p, nil
}
