package schema

import "errors"

var (
	ErrMissingLLM         = errors.New("missing llm client")
	ErrMissingDestination = errors.New("missing destination")
	ErrEndBeforeStart     = errors.New("end date is before start date")
	ErrStartInPast        = errors.New("start date is in the past")
)
