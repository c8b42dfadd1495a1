package node

import (
	"time"

	"github.com/google/uuid"
)

// Project groups a tree of nodes. Creating a project also creates the tree's
// root node.
type Project struct {
	ID          uuid.UUID `json:"project_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
