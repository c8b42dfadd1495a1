package workspace

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/fractalhq/fractal/pkg/node"
)

// InvalidStateError indicates an operation was attempted on a node whose
// lifecycle status forbids it.
type InvalidStateError struct {
	NodeID uuid.UUID
	Status node.Status
	Op     string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("cannot %s node %s: status is %q", e.Op, e.NodeID, e.Status)
}

// InvalidMergeError indicates a merge whose source/target pair violates the
// lineage precondition.
type InvalidMergeError struct {
	SourceID uuid.UUID
	TargetID uuid.UUID
	Reason   string
}

func (e *InvalidMergeError) Error() string {
	return fmt.Sprintf("cannot merge %s into %s: %s", e.SourceID, e.TargetID, e.Reason)
}
