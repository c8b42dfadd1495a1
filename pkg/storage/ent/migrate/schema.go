// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// GraphEdgesColumns holds the columns for the "graph_edges" table.
	GraphEdgesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "from_entity", Type: field.TypeString},
		{Name: "to_entity", Type: field.TypeString},
		{Name: "relation_type", Type: field.TypeString, Default: "RELATED"},
		{Name: "source_node", Type: field.TypeUUID},
		{Name: "confidence", Type: field.TypeFloat64, Default: 1},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// GraphEdgesTable holds the schema information for the "graph_edges" table.
	GraphEdgesTable = &schema.Table{
		Name:       "graph_edges",
		Columns:    GraphEdgesColumns,
		PrimaryKey: []*schema.Column{GraphEdgesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "graphedge_source_node",
				Unique:  false,
				Columns: []*schema.Column{GraphEdgesColumns[4]},
			},
			{
				Name:    "graphedge_from_entity_to_entity_relation_type_source_node",
				Unique:  true,
				Columns: []*schema.Column{GraphEdgesColumns[1], GraphEdgesColumns[2], GraphEdgesColumns[3], GraphEdgesColumns[4]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NULL",
				},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "role", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "token_count", Type: field.TypeInt, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "timestamp", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
		{Name: "node_id", Type: field.TypeUUID},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "messages_nodes_messages",
				Columns:    []*schema.Column{MessagesColumns[6]},
				RefColumns: []*schema.Column{NodesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "message_node_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[6], MessagesColumns[5]},
			},
		},
	}
	// NodesColumns holds the columns for the "nodes" table.
	NodesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "project_id", Type: field.TypeUUID, Nullable: true},
		{Name: "title", Type: field.TypeString},
		{Name: "node_type", Type: field.TypeString, Default: "standard"},
		{Name: "status", Type: field.TypeString, Default: "active"},
		{Name: "position_x", Type: field.TypeFloat64, Default: 0},
		{Name: "position_y", Type: field.TypeFloat64, Default: 0},
		{Name: "inherited_context", Type: field.TypeJSON, Nullable: true},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
		{Name: "parent_id", Type: field.TypeUUID, Nullable: true},
	}
	// NodesTable holds the schema information for the "nodes" table.
	NodesTable = &schema.Table{
		Name:       "nodes",
		Columns:    NodesColumns,
		PrimaryKey: []*schema.Column{NodesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "nodes_nodes_parent",
				Columns:    []*schema.Column{NodesColumns[11]},
				RefColumns: []*schema.Column{NodesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "node_parent_id",
				Unique:  false,
				Columns: []*schema.Column{NodesColumns[11]},
			},
			{
				Name:    "node_project_id",
				Unique:  false,
				Columns: []*schema.Column{NodesColumns[1]},
			},
			{
				Name:    "node_status",
				Unique:  false,
				Columns: []*schema.Column{NodesColumns[4]},
			},
		},
	}
	// NodeEventsColumns holds the columns for the "node_events" table.
	NodeEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "event_type", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "timestamp", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
		{Name: "node_id", Type: field.TypeUUID},
	}
	// NodeEventsTable holds the schema information for the "node_events" table.
	NodeEventsTable = &schema.Table{
		Name:       "node_events",
		Columns:    NodeEventsColumns,
		PrimaryKey: []*schema.Column{NodeEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "node_events_nodes_events",
				Columns:    []*schema.Column{NodeEventsColumns[5]},
				RefColumns: []*schema.Column{NodesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "nodeevent_node_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{NodeEventsColumns[5], NodeEventsColumns[4]},
			},
			{
				Name:    "nodeevent_event_type",
				Unique:  false,
				Columns: []*schema.Column{NodeEventsColumns[1]},
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
	}
	// SummariesColumns holds the columns for the "summaries" table.
	SummariesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID, Unique: true},
		{Name: "document", Type: field.TypeJSON},
		{Name: "generated_from_event", Type: field.TypeUUID, Nullable: true},
		{Name: "is_latest", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
		{Name: "node_id", Type: field.TypeUUID},
	}
	// SummariesTable holds the schema information for the "summaries" table.
	SummariesTable = &schema.Table{
		Name:       "summaries",
		Columns:    SummariesColumns,
		PrimaryKey: []*schema.Column{SummariesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "summaries_nodes_summaries",
				Columns:    []*schema.Column{SummariesColumns[5]},
				RefColumns: []*schema.Column{NodesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "summary_node_id_is_latest",
				Unique:  false,
				Columns: []*schema.Column{SummariesColumns[5], SummariesColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		GraphEdgesTable,
		MessagesTable,
		NodesTable,
		NodeEventsTable,
		ProjectsTable,
		SummariesTable,
	}
)

func init() {
	MessagesTable.ForeignKeys[0].RefTable = NodesTable
	NodesTable.ForeignKeys[0].RefTable = NodesTable
	NodeEventsTable.ForeignKeys[0].RefTable = NodesTable
	SummariesTable.ForeignKeys[0].RefTable = NodesTable
}
