// Package inmemory provides a map-backed storage.Driver used by tests and
// by serve mode when no database is configured.
package inmemory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fractalhq/fractal/pkg/node"
	"github.com/fractalhq/fractal/pkg/storage"
)

// Driver implements storage.Driver using in-memory maps guarded by a single
// read-write mutex. Each request's read-then-write sequence runs under one
// lock acquisition, standing in for the transactional commit boundary a
// database driver provides.
type Driver struct {
	mu sync.RWMutex

	nodes     map[uuid.UUID]*node.Node
	messages  map[uuid.UUID][]*node.Message
	summaries map[uuid.UUID][]*node.Summary
	edges     map[uuid.UUID]*node.Edge
	projects  map[uuid.UUID]*node.Project
	events    []*node.Event
}

// NewDriver creates an empty in-memory store.
func NewDriver() *Driver {
	return &Driver{
		nodes:     make(map[uuid.UUID]*node.Node),
		messages:  make(map[uuid.UUID][]*node.Message),
		summaries: make(map[uuid.UUID][]*node.Summary),
		edges:     make(map[uuid.UUID]*node.Edge),
		projects:  make(map[uuid.UUID]*node.Project),
	}
}

var _ storage.Driver = (*Driver)(nil)

// CreateNode persists a new node.
func (d *Driver) CreateNode(_ context.Context, n *node.Node) error {
	if n == nil {
		return errors.New("cannot store nil node")
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}

	if n.ParentID != nil {
		if _, ok := d.nodes[*n.ParentID]; !ok {
			return storage.NotFoundError{Kind: storage.KindNode, ID: *n.ParentID}
		}
	}

	stored := *n
	d.nodes[n.ID] = &stored
	return nil
}

// Node retrieves a node by id regardless of status.
func (d *Driver) Node(_ context.Context, id uuid.UUID) (*node.Node, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.nodeLocked(id)
}

func (d *Driver) nodeLocked(id uuid.UUID) (*node.Node, error) {
	n, ok := d.nodes[id]
	if !ok {
		return nil, storage.NotFoundError{Kind: storage.KindNode, ID: id}
	}
	cp := *n
	return &cp, nil
}

// SetNodeStatus updates a node's lifecycle status.
func (d *Driver) SetNodeStatus(_ context.Context, id uuid.UUID, status node.Status) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	n, ok := d.nodes[id]
	if !ok {
		return storage.NotFoundError{Kind: storage.KindNode, ID: id}
	}
	n.Status = status
	return nil
}

// Lineage returns [self, parent, ..., root], stopping at the first missing
// parent.
func (d *Driver) Lineage(_ context.Context, id uuid.UUID) ([]*node.Node, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var lineage []*node.Node
	current := &id
	for current != nil {
		n, ok := d.nodes[*current]
		if !ok {
			break
		}
		cp := *n
		lineage = append(lineage, &cp)
		current = n.ParentID
	}

	if len(lineage) == 0 {
		return nil, storage.NotFoundError{Kind: storage.KindNode, ID: id}
	}
	return lineage, nil
}

// Descendants returns the flat set of all transitive children.
func (d *Driver) Descendants(_ context.Context, id uuid.UUID) ([]*node.Node, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if _, ok := d.nodes[id]; !ok {
		return nil, storage.NotFoundError{Kind: storage.KindNode, ID: id}
	}

	var out []*node.Node
	d.collectDescendants(id, &out)
	return out, nil
}

func (d *Driver) collectDescendants(parentID uuid.UUID, out *[]*node.Node) {
	for _, n := range d.nodes {
		if n.ParentID != nil && *n.ParentID == parentID {
			cp := *n
			*out = append(*out, &cp)
			d.collectDescendants(n.ID, out)
		}
	}
}

// Children returns the direct children of a node.
func (d *Driver) Children(_ context.Context, parentID uuid.UUID) ([]*node.Node, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var out []*node.Node
	for _, n := range d.nodes {
		if n.ParentID != nil && *n.ParentID == parentID {
			cp := *n
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// CountChildren returns the number of direct children of a node.
func (d *Driver) CountChildren(_ context.Context, parentID uuid.UUID) (int, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	count := 0
	for _, n := range d.nodes {
		if n.ParentID != nil && *n.ParentID == parentID {
			count++
		}
	}
	return count, nil
}

// ListTree returns all non-deleted nodes, optionally scoped to a project.
func (d *Driver) ListTree(_ context.Context, projectID *uuid.UUID) ([]*node.Node, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var out []*node.Node
	for _, n := range d.nodes {
		if n.Status == node.StatusDeleted {
			continue
		}
		if projectID != nil && (n.ProjectID == nil || *n.ProjectID != *projectID) {
			continue
		}
		cp := *n
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// CreateMessage appends a message to its node's log.
func (d *Driver) CreateMessage(_ context.Context, m *node.Message) error {
	if m == nil {
		return errors.New("cannot store nil message")
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.nodes[m.NodeID]; !ok {
		return storage.NotFoundError{Kind: storage.KindNode, ID: m.NodeID}
	}

	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Timestamp.IsZero() {
		// Monotonic within the log even when the clock ties.
		m.Timestamp = time.Now().UTC()
		if msgs := d.messages[m.NodeID]; len(msgs) > 0 {
			last := msgs[len(msgs)-1].Timestamp
			if !m.Timestamp.After(last) {
				m.Timestamp = last.Add(time.Microsecond)
			}
		}
	}

	cp := *m
	d.messages[m.NodeID] = append(d.messages[m.NodeID], &cp)
	return nil
}

// Messages returns a node's full log in ascending timestamp order.
func (d *Driver) Messages(_ context.Context, nodeID uuid.UUID) ([]*node.Message, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	msgs := d.messages[nodeID]
	out := make([]*node.Message, len(msgs))
	for i, m := range msgs {
		cp := *m
		out[i] = &cp
	}
	return out, nil
}

// LastMessages returns the most recent n messages in ascending order.
func (d *Driver) LastMessages(_ context.Context, nodeID uuid.UUID, n int) ([]*node.Message, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	msgs := d.messages[nodeID]
	start := len(msgs) - n
	if n <= 0 || start < 0 {
		start = 0
	}

	tail := msgs[start:]
	out := make([]*node.Message, len(tail))
	for i, m := range tail {
		cp := *m
		out[i] = &cp
	}
	return out, nil
}

// CreateSummary stores a new latest summary, flipping the prior latest.
func (d *Driver) CreateSummary(_ context.Context, s *node.Summary) error {
	if s == nil {
		return errors.New("cannot store nil summary")
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.nodes[s.NodeID]; !ok {
		return storage.NotFoundError{Kind: storage.KindNode, ID: s.NodeID}
	}

	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	s.IsLatest = true

	for _, prior := range d.summaries[s.NodeID] {
		prior.IsLatest = false
	}

	cp := *s
	d.summaries[s.NodeID] = append(d.summaries[s.NodeID], &cp)
	return nil
}

// LatestSummary returns the node's latest summary, or nil when none exists.
func (d *Driver) LatestSummary(_ context.Context, nodeID uuid.UUID) (*node.Summary, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, s := range d.summaries[nodeID] {
		if s.IsLatest {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

// InsertEdge persists a new edge.
func (d *Driver) InsertEdge(_ context.Context, e *node.Edge) error {
	if e == nil {
		return errors.New("cannot store nil edge")
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	cp := *e
	d.edges[e.ID] = &cp
	return nil
}

// FindEdge returns the live edge matching the dedup key, or nil.
func (d *Driver) FindEdge(_ context.Context, from, to, relationType string, sourceNode uuid.UUID) (*node.Edge, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, e := range d.edges {
		if e.Live() && e.SourceNode == sourceNode && e.SameKey(from, to, relationType) {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

// NodeEdges returns all live edges owned by a node.
func (d *Driver) NodeEdges(_ context.Context, nodeID uuid.UUID) ([]*node.Edge, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var out []*node.Edge
	for _, e := range d.edges {
		if e.Live() && e.SourceNode == nodeID {
			cp := *e
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// EdgesForNodes returns all live edges owned by any of the given nodes.
func (d *Driver) EdgesForNodes(_ context.Context, nodeIDs []uuid.UUID) ([]*node.Edge, error) {
	want := make(map[uuid.UUID]bool, len(nodeIDs))
	for _, id := range nodeIDs {
		want[id] = true
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	var out []*node.Edge
	for _, e := range d.edges {
		if e.Live() && want[e.SourceNode] {
			cp := *e
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// UpdateEdge overwrites an edge's confidence and metadata.
func (d *Driver) UpdateEdge(_ context.Context, id uuid.UUID, confidence float64, metadata map[string]any) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	e, ok := d.edges[id]
	if !ok {
		return storage.NotFoundError{Kind: storage.KindEdge, ID: id}
	}
	e.Confidence = confidence
	e.Metadata = metadata
	return nil
}

// SoftDeleteEdges stamps deleted_at on every edge owned by the node.
func (d *Driver) SoftDeleteEdges(_ context.Context, nodeID uuid.UUID) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := time.Now().UTC()
	count := 0
	for _, e := range d.edges {
		if e.SourceNode == nodeID && e.Live() {
			ts := now
			e.DeletedAt = &ts
			count++
		}
	}
	return count, nil
}

// CreateProject persists a new project.
func (d *Driver) CreateProject(_ context.Context, p *node.Project) error {
	if p == nil {
		return errors.New("cannot store nil project")
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}

	cp := *p
	d.projects[p.ID] = &cp
	return nil
}

// Project retrieves a project by id.
func (d *Driver) Project(_ context.Context, id uuid.UUID) (*node.Project, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	p, ok := d.projects[id]
	if !ok {
		return nil, storage.NotFoundError{Kind: storage.KindProject, ID: id}
	}
	cp := *p
	return &cp, nil
}

// Projects returns all projects, newest first.
func (d *Driver) Projects(_ context.Context) ([]*node.Project, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]*node.Project, 0, len(d.projects))
	for _, p := range d.projects {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// UpdateProject overwrites a project's mutable fields.
func (d *Driver) UpdateProject(_ context.Context, p *node.Project) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	existing, ok := d.projects[p.ID]
	if !ok {
		return storage.NotFoundError{Kind: storage.KindProject, ID: p.ID}
	}
	existing.Name = p.Name
	existing.Description = p.Description
	existing.UpdatedAt = time.Now().UTC()
	return nil
}

// DeleteProject removes a project row.
func (d *Driver) DeleteProject(_ context.Context, id uuid.UUID) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.projects[id]; !ok {
		return storage.NotFoundError{Kind: storage.KindProject, ID: id}
	}
	delete(d.projects, id)
	return nil
}

// CountProjectNodes returns the number of nodes owned by a project.
func (d *Driver) CountProjectNodes(_ context.Context, id uuid.UUID) (int, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	count := 0
	for _, n := range d.nodes {
		if n.ProjectID != nil && *n.ProjectID == id {
			count++
		}
	}
	return count, nil
}

// InsertEvent appends an audit-log event.
func (d *Driver) InsertEvent(_ context.Context, e *node.Event) error {
	if e == nil {
		return errors.New("cannot store nil event")
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}

	cp := *e
	d.events = append(d.events, &cp)
	return nil
}

// Events returns all recorded events for a node in insertion order. Test
// helper; not part of storage.Driver.
func (d *Driver) Events(nodeID uuid.UUID) []*node.Event {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var out []*node.Event
	for _, e := range d.events {
		if e.NodeID == nodeID {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out
}

// Close releases resources. No-op for the in-memory store.
func (d *Driver) Close() error {
	return nil
}
