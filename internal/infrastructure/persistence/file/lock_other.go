//go:build !unix

package file

// lockFile is a no-op where flock is unavailable.
func lockFile(string, bool) (func(), error) {
	return func() {}, nil
}
