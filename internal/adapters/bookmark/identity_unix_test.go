//go:build unix

package bookmark

func isUnixIdentity() bool { return true }
