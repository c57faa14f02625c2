package services

import (
	"errors"

	"github.com/stephan-zhuchen/fastgit/internal/domain"
)

var (
	ErrSessionClosed    = errors.New("session closed while loading")
	ErrSessionNotLoaded = errors.New("session not loaded")
	ErrUnknownTreeKind  = errors.New("unknown tree kind")
)

// Status is the lifecycle of an open repository as seen by callers
type Status int

const (
	StatusClosed Status = iota
	StatusLoading
	StatusReady
	StatusNeedsAuthorization
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusClosed:
		return "closed"
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusNeedsAuthorization:
		return "requires re-authorization"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// statusForError maps a failed open to the status callers should render
func statusForError(err error) Status {
	if errors.Is(err, domain.ErrAccessDenied) {
		return StatusNeedsAuthorization
	}
	return StatusFailed
}

// SelectionKind is what the user currently focuses
type SelectionKind int

const (
	SelectionHistory SelectionKind = iota
	SelectionBranch
	SelectionTag
	SelectionFile
)

// Selection is coordinator-local focus state. The zero value is the history view.
type Selection struct {
	Kind SelectionKind
	Name string
}

// Snapshot is an immutable view of one session
type Snapshot struct {
	Entry     *domain.SessionCacheEntry
	Err       error
	Identity  domain.RepositoryIdentity
	Selection Selection
	Status    Status
}

// Event notifies subscribers that the snapshot of Path changed
type Event struct {
	Path     string
	Snapshot Snapshot
}

// session is the coordinator's record of one open repository
type session struct {
	entry    *domain.SessionCacheEntry
	err      error
	granted  bool
	identity domain.RepositoryIdentity
	status   Status
}
