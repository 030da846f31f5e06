package util

// ErrKind classifies an operation failure
type ErrKind int

const (
	// KindMissingInput marks a required file or raster that does not exist
	KindMissingInput ErrKind = iota + 1
	// KindInvalidArgument marks a caller-supplied argument that cannot be used
	KindInvalidArgument
	// KindNotFound marks a lookup miss in a static table
	KindNotFound
)

func (k ErrKind) String() string {
	switch k {
	case KindMissingInput:
		return "missing input"
	case KindInvalidArgument:
		return "invalid argument"
	case KindNotFound:
		return "not found"
	}
	return "unknown"
}

// OpErr is an operation error carrying its classification kind
type OpErr struct {
	Kind    ErrKind
	Message string
}

func (e OpErr) Error() string {
	return e.Message
}

// MissingInput creates an OpErr for an absent input file or raster
func MissingInput(message string) OpErr {
	return OpErr{Kind: KindMissingInput, Message: message}
}

// InvalidArgument creates an OpErr for an unusable caller argument
func InvalidArgument(message string) OpErr {
	return OpErr{Kind: KindInvalidArgument, Message: message}
}

// NotFound creates an OpErr for a static lookup miss
func NotFound(message string) OpErr {
	return OpErr{Kind: KindNotFound, Message: message}
}

// IsKind reports whether err is an OpErr of the given kind
func IsKind(err error, kind ErrKind) bool {
	opErr, ok := err.(OpErr)
	return ok && opErr.Kind == kind
}
