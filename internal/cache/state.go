package cache

// State is the lifecycle position of one repository path in the cache
type State int

const (
	StateEmpty State = iota
	StateLoading
	StateLoaded
	StateEvicted
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateEvicted:
		return "evicted"
	default:
		return "unknown"
	}
}
