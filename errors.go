package timecode

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// The closed set of error kinds raised by this package. Callers can
// distinguish them with errors.Is; every error returned by the package
// wraps exactly one of these sentinels.
var (
	// ErrType reports a value that does not match the declared or
	// detected format, or an unsupported operand type.
	ErrType = errors.New("timecode: type mismatch")

	// ErrValue reports a value outside its legal domain, such as an
	// illegal frame number or a zero-length range.
	ErrValue = errors.New("timecode: illegal value")

	// ErrInitialization reports a drop-frame flag that contradicts
	// the separator of an SMPTE input string.
	ErrInitialization = errors.New("timecode: initialization conflict")

	// ErrOperator reports arithmetic or comparison between
	// incompatible operands.
	ErrOperator = errors.New("timecode: incompatible operands")

	// ErrMethod reports invalid arguments to a Range operation.
	ErrMethod = errors.New("timecode: invalid range operation")

	// ErrFPS reports an operation between ranges or endpoints with
	// different frame rates.
	ErrFPS = errors.New("timecode: frame rate mismatch")
)

var log = defaultLogger()

func defaultLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.WarnLevel)
	return l
}

// SetLogger replaces the logger used for the package's soft-fallback
// warnings and construction traces.
func SetLogger(l *logrus.Logger) {
	if l != nil {
		log = l
	}
}
