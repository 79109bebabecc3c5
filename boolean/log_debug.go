//go:build debug

package boolean

import (
	"log"
	"os"
)

// logger is the package's debug logger, active only in builds tagged
// "debug" — the same convention the upstream geom2d root package uses for
// its own logDebugf. Kept separate per package
// so sweep-internal tracing doesn't need the whole module built with the tag.
var logger = log.New(os.Stderr, "[geom2d/boolean DEBUG] ", log.LstdFlags)

func logDebugf(format string, v ...any) {
	logger.Printf(format, v...)
}
