//go:build !unix

package bookmark

import (
	"fmt"
	"os"
	"sync"

	"github.com/stephan-zhuchen/fastgit/internal/ports"
)

// Without inode numbers a token only goes stale when its directory disappears
func fileIdentity(path string) (uint64, uint64, error) {
	if _, err := os.Stat(path); err != nil {
		return 0, 0, err
	}
	return 0, 0, nil
}

type dirSession struct {
	f    *os.File
	once sync.Once
}

func startAccess(resolved string) (ports.AccessSession, error) {
	f, err := os.Open(resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to open directory %s: %w", resolved, err)
	}
	return &dirSession{f: f}, nil
}

func (s *dirSession) Stop() error {
	var err error
	s.once.Do(func() {
		err = s.f.Close()
	})
	return err
}
