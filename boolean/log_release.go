//go:build !debug

package boolean

// logDebugf is a no-op outside debug builds, so the O((n+k) log n) sweep
// never pays for string formatting on the hot path by default.
func logDebugf(format string, v ...any) {}
