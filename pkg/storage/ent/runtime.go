// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/fractalhq/fractal/pkg/storage/ent/graphedge"
	"github.com/fractalhq/fractal/pkg/storage/ent/message"
	"github.com/fractalhq/fractal/pkg/storage/ent/node"
	"github.com/fractalhq/fractal/pkg/storage/ent/nodeevent"
	"github.com/fractalhq/fractal/pkg/storage/ent/project"
	"github.com/fractalhq/fractal/pkg/storage/ent/schema"
	"github.com/fractalhq/fractal/pkg/storage/ent/summary"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	graphedgeFields := schema.GraphEdge{}.Fields()
	_ = graphedgeFields
	// graphedgeDescFromEntity is the schema descriptor for from_entity field.
	graphedgeDescFromEntity := graphedgeFields[1].Descriptor()
	// graphedge.FromEntityValidator is a validator for the "from_entity" field. It is called by the builders before save.
	graphedge.FromEntityValidator = graphedgeDescFromEntity.Validators[0].(func(string) error)
	// graphedgeDescToEntity is the schema descriptor for to_entity field.
	graphedgeDescToEntity := graphedgeFields[2].Descriptor()
	// graphedge.ToEntityValidator is a validator for the "to_entity" field. It is called by the builders before save.
	graphedge.ToEntityValidator = graphedgeDescToEntity.Validators[0].(func(string) error)
	// graphedgeDescRelationType is the schema descriptor for relation_type field.
	graphedgeDescRelationType := graphedgeFields[3].Descriptor()
	// graphedge.DefaultRelationType holds the default value on creation for the relation_type field.
	graphedge.DefaultRelationType = graphedgeDescRelationType.Default.(string)
	// graphedgeDescConfidence is the schema descriptor for confidence field.
	graphedgeDescConfidence := graphedgeFields[5].Descriptor()
	// graphedge.DefaultConfidence holds the default value on creation for the confidence field.
	graphedge.DefaultConfidence = graphedgeDescConfidence.Default.(float64)
	// graphedgeDescCreatedAt is the schema descriptor for created_at field.
	graphedgeDescCreatedAt := graphedgeFields[7].Descriptor()
	// graphedge.DefaultCreatedAt holds the default value on creation for the created_at field.
	graphedge.DefaultCreatedAt = graphedgeDescCreatedAt.Default.(func() time.Time)
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescRole is the schema descriptor for role field.
	messageDescRole := messageFields[2].Descriptor()
	// message.RoleValidator is a validator for the "role" field. It is called by the builders before save.
	message.RoleValidator = messageDescRole.Validators[0].(func(string) error)
	// messageDescTimestamp is the schema descriptor for timestamp field.
	messageDescTimestamp := messageFields[6].Descriptor()
	// message.DefaultTimestamp holds the default value on creation for the timestamp field.
	message.DefaultTimestamp = messageDescTimestamp.Default.(func() time.Time)
	nodeFields := schema.Node{}.Fields()
	_ = nodeFields
	// nodeDescTitle is the schema descriptor for title field.
	nodeDescTitle := nodeFields[3].Descriptor()
	// node.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	node.TitleValidator = nodeDescTitle.Validators[0].(func(string) error)
	// nodeDescNodeType is the schema descriptor for node_type field.
	nodeDescNodeType := nodeFields[4].Descriptor()
	// node.DefaultNodeType holds the default value on creation for the node_type field.
	node.DefaultNodeType = nodeDescNodeType.Default.(string)
	// nodeDescStatus is the schema descriptor for status field.
	nodeDescStatus := nodeFields[5].Descriptor()
	// node.DefaultStatus holds the default value on creation for the status field.
	node.DefaultStatus = nodeDescStatus.Default.(string)
	// nodeDescPositionX is the schema descriptor for position_x field.
	nodeDescPositionX := nodeFields[6].Descriptor()
	// node.DefaultPositionX holds the default value on creation for the position_x field.
	node.DefaultPositionX = nodeDescPositionX.Default.(float64)
	// nodeDescPositionY is the schema descriptor for position_y field.
	nodeDescPositionY := nodeFields[7].Descriptor()
	// node.DefaultPositionY holds the default value on creation for the position_y field.
	node.DefaultPositionY = nodeDescPositionY.Default.(float64)
	// nodeDescCreatedAt is the schema descriptor for created_at field.
	nodeDescCreatedAt := nodeFields[11].Descriptor()
	// node.DefaultCreatedAt holds the default value on creation for the created_at field.
	node.DefaultCreatedAt = nodeDescCreatedAt.Default.(func() time.Time)
	nodeeventFields := schema.NodeEvent{}.Fields()
	_ = nodeeventFields
	// nodeeventDescEventType is the schema descriptor for event_type field.
	nodeeventDescEventType := nodeeventFields[2].Descriptor()
	// nodeevent.EventTypeValidator is a validator for the "event_type" field. It is called by the builders before save.
	nodeevent.EventTypeValidator = nodeeventDescEventType.Validators[0].(func(string) error)
	// nodeeventDescTimestamp is the schema descriptor for timestamp field.
	nodeeventDescTimestamp := nodeeventFields[5].Descriptor()
	// nodeevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	nodeevent.DefaultTimestamp = nodeeventDescTimestamp.Default.(func() time.Time)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescName is the schema descriptor for name field.
	projectDescName := projectFields[1].Descriptor()
	// project.NameValidator is a validator for the "name" field. It is called by the builders before save.
	project.NameValidator = projectDescName.Validators[0].(func(string) error)
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[3].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	// projectDescUpdatedAt is the schema descriptor for updated_at field.
	projectDescUpdatedAt := projectFields[4].Descriptor()
	// project.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	project.DefaultUpdatedAt = projectDescUpdatedAt.Default.(func() time.Time)
	// project.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	project.UpdateDefaultUpdatedAt = projectDescUpdatedAt.UpdateDefault.(func() time.Time)
	summaryFields := schema.Summary{}.Fields()
	_ = summaryFields
	// summaryDescIsLatest is the schema descriptor for is_latest field.
	summaryDescIsLatest := summaryFields[4].Descriptor()
	// summary.DefaultIsLatest holds the default value on creation for the is_latest field.
	summary.DefaultIsLatest = summaryDescIsLatest.Default.(bool)
	// summaryDescCreatedAt is the schema descriptor for created_at field.
	summaryDescCreatedAt := summaryFields[5].Descriptor()
	// summary.DefaultCreatedAt holds the default value on creation for the created_at field.
	summary.DefaultCreatedAt = summaryDescCreatedAt.Default.(func() time.Time)
}
