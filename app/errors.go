package app

import "github.com/homegym/spotter/internal/apperr"

var (
	errNotInteractive = &apperr.Error{
		Message: "a workout needs an interactive terminal",
	}

	errNoRoutines = &apperr.Error{
		Message: "no routines found: add one with 'spotter routine import <file>'",
	}

	errRoutineNotFound = &apperr.Error{
		Message: "no routine matches %q",
	}

	errAmbiguousRoutine = &apperr.Error{
		Message: "%q matches more than one routine: use the routine id",
	}

	errDayOutOfRange = &apperr.Error{
		Message: "routine %q has %d days, day %d does not exist",
	}

	errMissingArg = &apperr.Error{
		Message: "missing argument: %s",
	}

	errParseRoutine = &apperr.Error{
		Message: "unable to read routine file %s",
	}

	errInvalidTime = &apperr.Error{
		Message: "invalid --%s value",
	}

	errWorkoutNotSaved = &apperr.Error{
		Message: "the workout was completed but could not be saved",
	}
)
