package errs

import (
	"log/slog"
	"os"
)

// ExitFunc - Terminates the process after a fatal error has been reported. Tests may replace it.
var ExitFunc = os.Exit

var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

// SetLogger - Replaces the logger fatal errors are reported to. A nil logger restores the stderr default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	logger = l
}

// Fatal - Reports err to the diagnostic stream and terminates the process with exit status 1
func Fatal(err error) {
	logger.Error("collections: fatal error", slog.String("error", err.Error()))
	ExitFunc(1)
}

// Check - Returns err unchanged, unless strict is set and err is non nil in which case the error is fatal.
// Containers created in strict mode route every failing operation through Check.
func Check(strict bool, err error) error {
	if strict && err != nil {
		Fatal(err)
	}

	return err
}
