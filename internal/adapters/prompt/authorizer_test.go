package prompt

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stephan-zhuchen/fastgit/internal/domain"
)

func stubbed(ask askFunc) *Authorizer {
	a := NewAuthorizer()
	a.ask = ask
	return a
}

func TestRequestAuthorization_AssumeYes(t *testing.T) {
	dir := t.TempDir()
	a := NewAuthorizer(WithAssumeYes(true))
	a.ask = func(context.Context, string) (string, bool, error) {
		t.Fatal("prompt must not be shown")
		return "", false, nil
	}

	got, err := a.RequestAuthorization(context.Background(), dir)

	require.NoError(t, err)
	assert.Equal(t, dir, got)
}

func TestRequestAuthorization_Granted(t *testing.T) {
	parent := t.TempDir()
	chosen := filepath.Join(parent, "repo")
	require.NoError(t, os.Mkdir(chosen, 0755))

	a := stubbed(func(_ context.Context, path string) (string, bool, error) {
		assert.Equal(t, "/requested", path)
		return chosen, true, nil
	})

	got, err := a.RequestAuthorization(context.Background(), "/requested")

	require.NoError(t, err)
	assert.Equal(t, chosen, got)
}

func TestRequestAuthorization_Declined(t *testing.T) {
	a := stubbed(func(_ context.Context, path string) (string, bool, error) {
		return path, false, nil
	})

	_, err := a.RequestAuthorization(context.Background(), t.TempDir())

	assert.ErrorIs(t, err, domain.ErrAuthorizationDeclined)
}

func TestRequestAuthorization_Aborted(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "user abort", err: huh.ErrUserAborted},
		{name: "context canceled", err: context.Canceled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := stubbed(func(context.Context, string) (string, bool, error) {
				return "", false, tt.err
			})

			_, err := a.RequestAuthorization(context.Background(), t.TempDir())

			assert.ErrorIs(t, err, domain.ErrAuthorizationDeclined)
		})
	}
}

func TestRequestAuthorization_PromptError(t *testing.T) {
	boom := errors.New("no tty")
	a := stubbed(func(context.Context, string) (string, bool, error) {
		return "", false, boom
	})

	_, err := a.RequestAuthorization(context.Background(), t.TempDir())

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, domain.ErrAuthorizationDeclined)
}

func TestRequestAuthorization_InvalidDirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	tests := []struct {
		name string
		dir  string
	}{
		{name: "missing", dir: filepath.Join(t.TempDir(), "missing")},
		{name: "regular file", dir: file},
		{name: "empty", dir: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := stubbed(func(context.Context, string) (string, bool, error) {
				return tt.dir, true, nil
			})

			_, err := a.RequestAuthorization(context.Background(), "/requested")

			assert.Error(t, err)
		})
	}
}
