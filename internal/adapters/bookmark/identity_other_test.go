//go:build !unix

package bookmark

func isUnixIdentity() bool { return false }
