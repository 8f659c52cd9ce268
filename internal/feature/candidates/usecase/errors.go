// Package usecase implements the command and query handlers of the candidates feature.
package usecase

import "errors"

// ErrCandidateNotFound is returned by repositories when a candidate row
// vanished between being loaded and being written back.
// The update and delete handlers translate it into a nil result or false.
var ErrCandidateNotFound = errors.New("candidate not found")
