package console

import "time"

// DefaultDetachKeys is the key sequence that ends a session and leaves
// the server running.
const DefaultDetachKeys = "ctrl-p,ctrl-q"

// remoteCloseGrace is how long a failed write to the server waits for the
// output side to report the stream closed.
const remoteCloseGrace = 500 * time.Millisecond

// Reason tells why a console session ended.
type Reason string

const (
	ReasonDetached     Reason = "detached"
	ReasonInterrupted  Reason = "interrupted"
	ReasonRemoteClosed Reason = "remote closed"
)
