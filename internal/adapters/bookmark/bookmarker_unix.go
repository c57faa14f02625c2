//go:build unix

package bookmark

import (
	"fmt"
	"sync"

	"golang.org/x/sys/unix"

	"github.com/stephan-zhuchen/fastgit/internal/ports"
)

func fileIdentity(path string) (uint64, uint64, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return 0, 0, err
	}
	return uint64(st.Dev), uint64(st.Ino), nil
}

// dirSession pins the directory with an open descriptor for the session lifetime
type dirSession struct {
	fd   int
	once sync.Once
}

func startAccess(resolved string) (ports.AccessSession, error) {
	fd, err := unix.Open(resolved, unix.O_RDONLY|unix.O_DIRECTORY|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open directory %s: %w", resolved, err)
	}
	return &dirSession{fd: fd}, nil
}

func (s *dirSession) Stop() error {
	var err error
	s.once.Do(func() {
		err = unix.Close(s.fd)
	})
	return err
}
