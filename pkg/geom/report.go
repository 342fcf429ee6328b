package geom

import (
	"fmt"
	"sync/atomic"
)

// Reporter receives diagnostics about degenerate inputs. Computations never
// fail because of degenerate geometry; they only notify the installed Reporter.
type Reporter interface {
	Degenerate(op string, err error)
}

type reporterHolder struct {
	r Reporter
}

var reporter atomic.Pointer[reporterHolder]

// SetReporter installs r as the process-wide diagnostics receiver.
// A nil r disables reporting.
func SetReporter(r Reporter) {
	if r == nil {
		reporter.Store(nil)
		return
	}
	reporter.Store(&reporterHolder{r: r})
}

func reportDegenerate(op, format string, args ...any) {
	h := reporter.Load()
	if h == nil {
		return
	}
	h.r.Degenerate(op, fmt.Errorf("%w: "+format, append([]any{ErrDegenerateGeometry}, args...)...))
}
