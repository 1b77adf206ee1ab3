package profile

import (
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"unicode"

	"github.com/google/pprof/profile"
)

// since we are assuming usage of this package from a single go routine, this channel only has
// one "producer", and one "consumer". it's purpose is to guarantee the order of execution of
// adding / removing a profiling session and sampling events, while enabling the caller
// (the graph builder) to sample the events asynchronously.
var chCommands = make(chan command, 100)
var onceInit sync.Once

type command struct {
	p      *Profile
	pc     []uintptr
	remove bool
}

func worker() {
	for c := range chCommands {
		if c.p != nil {
			if c.remove {
				for i := 0; i < len(sessions); i++ {
					if sessions[i] == c.p {
						sessions[i] = sessions[len(sessions)-1]
						sessions = sessions[:len(sessions)-1]
						break
					}
				}
				close(c.p.chDone)

				// decrement active sessions
				atomic.AddUint32(&activeSessions, ^uint32(0))
			} else {
				sessions = append(sessions, c.p)
			}
			continue
		}

		// it's a sampling of event (node creation)
		collectSample(c.pc)
	}

}

// collectSample must be called from the worker go routine
func collectSample(pc []uintptr) {
	// for each session we may have a distinct sample, since ids of functions and locations may mismatch
	samples := make([]*profile.Sample, len(sessions))
	for i := range samples {
		samples[i] = &profile.Sample{Value: []int64{1}} // for now, we just collect new nodes count
	}

	frames := runtime.CallersFrames(pc)
	// Loop to get frames.
	// A fixed number of pcs can expand to an indefinite number of Frames.
	for {
		frame, more := frames.Next()

		// filter internal graph functions
		if filterGraphPrivateFunc(frame.Function) {
			if more {
				continue
			}
			break
		}

		// filter the test and runtime machinery from the trace.
		if filterRuntimeFunc(frame.Function) {
			if more {
				continue
			}
			break
		}

		for i := range samples {
			samples[i].Location = append(samples[i].Location, sessions[i].getLocation(&frame))
		}

		if !more {
			break
		}
	}

	for i := range sessions {
		sessions[i].pprof.Sample = append(sessions[i].pprof.Sample, samples[i])
	}
}

func filterGraphPrivateFunc(f string) bool {
	const graphPrefix = "github.com/consensys/circuitgraph/circuit.(*Graph)."
	if strings.HasPrefix(f, graphPrefix) && len(f) > len(graphPrefix) {
		// filter graph private APIs from the trace.
		c := []rune(f)[len(graphPrefix)]
		if unicode.IsLower(c) {
			return true
		}
	}
	return false
}

func filterRuntimeFunc(f string) bool {
	return strings.HasPrefix(f, "runtime.") || strings.HasPrefix(f, "testing.")
}
