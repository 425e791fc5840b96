// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DatasetsColumns holds the columns for the "datasets" table.
	DatasetsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt64, Nullable: true},
		{Name: "hash", Type: field.TypeString, Default: ""},
		{Name: "revision", Type: field.TypeString, Default: ""},
		{Name: "default_revision", Type: field.TypeBool, Default: true},
		{Name: "protected", Type: field.TypeBool, Default: false},
		{Name: "parent_id", Type: field.TypeUUID, Nullable: true},
		{Name: "lab_id", Type: field.TypeString, Nullable: true},
	}
	// DatasetsTable holds the schema information for the "datasets" table.
	DatasetsTable = &schema.Table{
		Name:       "datasets",
		Columns:    DatasetsColumns,
		PrimaryKey: []*schema.Column{DatasetsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "datasets_datasets_children",
				Columns:    []*schema.Column{DatasetsColumns[9]},
				RefColumns: []*schema.Column{DatasetsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "datasets_labs_datasets",
				Columns:    []*schema.Column{DatasetsColumns[10]},
				RefColumns: []*schema.Column{LabsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "dataset_lab_id",
				Unique:  false,
				Columns: []*schema.Column{DatasetsColumns[10]},
			},
			{
				Name:    "dataset_name",
				Unique:  false,
				Columns: []*schema.Column{DatasetsColumns[3]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "type", Type: field.TypeString},
		{Name: "message", Type: field.TypeString, Default: ""},
		{Name: "subject_type", Type: field.TypeEnum, Enums: []string{"system", "dataset", "repository", "endpoint"}, Default: "system"},
		{Name: "subject_id", Type: field.TypeString, Nullable: true},
		{Name: "repository_name", Type: field.TypeString, Default: ""},
		{Name: "details", Type: field.TypeString, Default: ""},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_type",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1]},
			},
			{
				Name:    "event_subject_type_subject_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[3], EventsColumns[4]},
			},
			{
				Name:    "event_repository_name",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[5]},
			},
			{
				Name:    "event_timestamp",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[7]},
			},
		},
	}
	// FileRecordsColumns holds the columns for the "file_records" table.
	FileRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "relative_path", Type: field.TypeString},
		{Name: "exists", Type: field.TypeBool, Default: false},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"none", "pending", "mismatch", "missing"}, Default: "none"},
		{Name: "dataset_id", Type: field.TypeUUID},
		{Name: "repository_id", Type: field.TypeString},
	}
	// FileRecordsTable holds the schema information for the "file_records" table.
	FileRecordsTable = &schema.Table{
		Name:       "file_records",
		Columns:    FileRecordsColumns,
		PrimaryKey: []*schema.Column{FileRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "file_records_datasets_file_records",
				Columns:    []*schema.Column{FileRecordsColumns[6]},
				RefColumns: []*schema.Column{DatasetsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "file_records_repositories_file_records",
				Columns:    []*schema.Column{FileRecordsColumns[7]},
				RefColumns: []*schema.Column{RepositoriesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "filerecord_dataset_id_repository_id_relative_path",
				Unique:  true,
				Columns: []*schema.Column{FileRecordsColumns[6], FileRecordsColumns[7], FileRecordsColumns[3]},
			},
			{
				Name:    "filerecord_repository_id",
				Unique:  false,
				Columns: []*schema.Column{FileRecordsColumns[7]},
			},
			{
				Name:    "filerecord_exists",
				Unique:  false,
				Columns: []*schema.Column{FileRecordsColumns[4]},
			},
			{
				Name:    "filerecord_status",
				Unique:  false,
				Columns: []*schema.Column{FileRecordsColumns[5]},
			},
		},
	}
	// LabsColumns holds the columns for the "labs" table.
	LabsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Unique: true},
	}
	// LabsTable holds the schema information for the "labs" table.
	LabsTable = &schema.Table{
		Name:       "labs",
		Columns:    LabsColumns,
		PrimaryKey: []*schema.Column{LabsColumns[0]},
	}
	// RepositoriesColumns holds the columns for the "repositories" table.
	RepositoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "root_path", Type: field.TypeString, Default: ""},
		{Name: "endpoint_id", Type: field.TypeString, Default: ""},
		{Name: "is_personal", Type: field.TypeBool, Default: false},
		{Name: "lab_id", Type: field.TypeString, Nullable: true},
	}
	// RepositoriesTable holds the schema information for the "repositories" table.
	RepositoriesTable = &schema.Table{
		Name:       "repositories",
		Columns:    RepositoriesColumns,
		PrimaryKey: []*schema.Column{RepositoriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "repositories_labs_repositories",
				Columns:    []*schema.Column{RepositoriesColumns[7]},
				RefColumns: []*schema.Column{LabsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "repository_lab_id",
				Unique:  false,
				Columns: []*schema.Column{RepositoriesColumns[7]},
			},
			{
				Name:    "repository_is_personal",
				Unique:  false,
				Columns: []*schema.Column{RepositoriesColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DatasetsTable,
		EventsTable,
		FileRecordsTable,
		LabsTable,
		RepositoriesTable,
	}
)

func init() {
	DatasetsTable.ForeignKeys[0].RefTable = DatasetsTable
	DatasetsTable.ForeignKeys[1].RefTable = LabsTable
	DatasetsTable.Annotation = &entsql.Annotation{
		Table: "datasets",
	}
	EventsTable.Annotation = &entsql.Annotation{
		Table: "events",
	}
	FileRecordsTable.ForeignKeys[0].RefTable = DatasetsTable
	FileRecordsTable.ForeignKeys[1].RefTable = RepositoriesTable
	FileRecordsTable.Annotation = &entsql.Annotation{
		Table: "file_records",
	}
	LabsTable.Annotation = &entsql.Annotation{
		Table: "labs",
	}
	RepositoriesTable.ForeignKeys[0].RefTable = LabsTable
	RepositoriesTable.Annotation = &entsql.Annotation{
		Table: "repositories",
	}
}
