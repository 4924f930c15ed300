package errors

import "errors"

// Custom application errors
var (
	ErrDeckNotFound      = errors.New("deck not found")
	ErrTopicNotFound     = errors.New("topic not found")
	ErrCardNotFound      = errors.New("card not found")
	ErrEmptyCardSide     = errors.New("card side needs text or an image") // Side has neither text nor image at creation time
	ErrTooFewCards       = errors.New("deck has one or fewer flashcards") // Scheduling precondition failure
	ErrUnknownAction     = errors.New("unknown notification action")      // Action identifier outside the registered category
	ErrDatabaseOperation = errors.New("database operation failed")        // Generic database error
	ErrScheduling        = errors.New("scheduling failed")                // Generic scheduling error
	ErrRendering         = errors.New("card rendering failed")            // Raster surface or encoding failure
	ErrInternalServer    = errors.New("internal server error")            // Generic internal error
)
