//go:build !debug

package sweep

// logDebugf is a no-op outside debug builds.
func logDebugf(format string, v ...interface{}) {}
