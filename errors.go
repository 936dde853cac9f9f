package actions

// Error is an actions error.
type Error string

// Error satisfies the error interface.
func (err Error) Error() string {
	return string(err)
}

// Error types.
const (
	// ErrInvalidBoxModel is the error returned when the content quads of a
	// target node cannot be used to find its on-screen point.
	ErrInvalidBoxModel Error = "invalid box model"

	// ErrNoTarget is the error returned when a step needs a target and was
	// given none.
	ErrNoTarget Error = "no target"

	// ErrNoResults is the error returned when a query target matched no
	// nodes.
	ErrNoResults Error = "no results"

	// ErrUnknownKey is the error returned when a key name is not known.
	ErrUnknownKey Error = "unknown key"

	// ErrNoSteps is the error returned when performing an empty sequence.
	ErrNoSteps Error = "no steps"

	// ErrInvalidDragSteps is the error returned when a drag is configured
	// with fewer than one intermediate move.
	ErrInvalidDragSteps Error = "invalid drag steps"
)
