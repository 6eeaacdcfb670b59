package eval

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Report renders an unhandled error at top level: the cause line, every
// backtrace frame innermost first, and the END_BACKTRACE sentinel, followed
// by a newline. A structured record also goes to the package logger.
func Report(w io.Writer, err error) {
	ev := Wrap(err)
	fmt.Fprintln(w, ev.Error())
	Logger().Error("unhandled eval error",
		zap.String("cause", causeName(ev.Cause)),
		zap.Int("frames", len(ev.backtrace)),
	)
}

func causeName(c Cause) string {
	switch c.(type) {
	case Thrown:
		return "throw"
	case Signaled:
		return "signal"
	default:
		return "error"
	}
}
