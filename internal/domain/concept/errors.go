package concept

import "errors"

var (
	ErrConceptNotFound = errors.New("concept not found")
)
