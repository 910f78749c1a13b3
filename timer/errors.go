package timer

import "github.com/homegym/spotter/internal/apperr"

var (
	errReadStatus = &apperr.Error{
		Message: "unable to read the session status",
	}

	errPostWorkoutCmd = &apperr.Error{
		Message: "post-workout command failed",
	}
)
