// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// GraphEdge is the predicate function for graphedge builders.
type GraphEdge func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// Node is the predicate function for node builders.
type Node func(*sql.Selector)

// NodeEvent is the predicate function for nodeevent builders.
type NodeEvent func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// Summary is the predicate function for summary builders.
type Summary func(*sql.Selector)
