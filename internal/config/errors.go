package config

import "github.com/homegym/spotter/internal/apperr"

var (
	errInitPaths = &apperr.Error{
		Message: "resolving file locations failed",
	}

	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errInvalidRest = &apperr.Error{
		Message: "rest %s must be between %d and %d seconds, got %d",
	}

	errInvalidCLIRest = &apperr.Error{
		Message: "invalid rest for --%s: %v",
	}

	errInvalidDay = &apperr.Error{
		Message: "--day must be 1 or greater, got %d",
	}

	errUnknownDriver = &apperr.Error{
		Message: "storage driver must be one of %v, got %q",
	}

	errInvalidSoundFormat = &apperr.Error{
		Message: "invalid sound file format: %s (must be mp3, ogg, flac, or wav)",
	}

	errMissingSound = &apperr.Error{
		Message: "pre-cue sound not found: %s",
	}

	errInvalidVolume = &apperr.Error{
		Message: "cue volume must be between %v and %v, got %v",
	}
)
