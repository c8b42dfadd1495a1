package storage

import "github.com/google/uuid"

// Entity kinds used by NotFoundError.
const (
	KindNode    = "node"
	KindProject = "project"
	KindEdge    = "edge"
)

// NotFoundError is returned when a referenced entity does not exist.
type NotFoundError struct {
	Kind string
	ID   uuid.UUID
}

func (e NotFoundError) Error() string {
	if e.Kind == "" {
		return "not found: " + e.ID.String()
	}
	return e.Kind + " not found: " + e.ID.String()
}
