package scenes

import "errors"

var (
	// ErrProjectNotFound is returned when the requested project does not
	// exist
	ErrProjectNotFound = errors.New("project not found")

	// ErrSceneNotFound is returned when the requested scene does not
	// exist
	ErrSceneNotFound = errors.New("scene not found")
)
