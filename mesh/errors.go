package mesh

// Error is a sentinel error that may have a parent. Errors created with
// (*Error).New match their parent with errors.Is.
type Error struct {
	parent error
	msg    string
}

// NewError creates a root error.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// New creates a child of the error.
func (err *Error) New(msg string) *Error {
	return &Error{
		parent: err,
		msg:    msg,
	}
}

func (err *Error) Error() string {
	return err.msg
}

func (err *Error) Unwrap() error {
	return err.parent
}

var (
	// ErrBackendUnavailable is returned when the manager could not be reached.
	ErrBackendUnavailable = NewError("manager unavailable")

	// ErrLookupFailed is returned when the manager failed to resolve a node by key.
	ErrLookupFailed = NewError("node lookup failed")

	// ErrNoCurrentNode is returned by node commands issued before a node was selected.
	ErrNoCurrentNode = NewError("no current node selected")

	// ErrSemantic is the parent of errors reported by the node in a successful response.
	ErrSemantic = NewError("node rejected the command")

	// ErrRebootUnsupported is returned when the node cannot reboot on its OS.
	ErrRebootUnsupported = ErrSemantic.New("reboot is not supported on the node")

	// ErrNoUpdate is returned by the update check when there is nothing to install.
	ErrNoUpdate = ErrSemantic.New("no update available")

	// ErrTimeout is returned when a long-running command did not produce a result in time.
	ErrTimeout = NewError("operation did not complete in time")
)
