package kernel

// Error describes a kernel error. Errors are declared as global variables
// that point to an Error so they can be returned before the allocator is
// available.
type Error struct {
	// The module where the error occurred.
	Module string

	// The error message
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}
