// Code generated by ent, DO NOT EDIT.

package generated

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dataferry/dataferry/internal/ent/generated/dataset"
	"github.com/dataferry/dataferry/internal/ent/generated/filerecord"
	"github.com/dataferry/dataferry/internal/ent/generated/repository"
	"github.com/google/uuid"
	ulid "github.com/oklog/ulid/v2"
)

// FileRecord is the model entity for the FileRecord schema.
type FileRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID ulid.ULID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// DatasetID holds the value of the "dataset_id" field.
	DatasetID uuid.UUID `json:"dataset_id,omitempty"`
	// RepositoryID holds the value of the "repository_id" field.
	RepositoryID ulid.ULID `json:"repository_id,omitempty"`
	// Collection, optional revision segment and filename
	RelativePath string `json:"relative_path,omitempty"`
	// Exists holds the value of the "exists" field.
	Exists bool `json:"exists,omitempty"`
	// pending: transfer submitted but unconfirmed; mismatch: hash disagrees, re-verify; missing: no source copy found anywhere
	Status filerecord.Status `json:"status,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FileRecordQuery when eager-loading is set.
	Edges        FileRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FileRecordEdges holds the relations/edges for other nodes in the graph.
type FileRecordEdges struct {
	// Dataset holds the value of the dataset edge.
	Dataset *Dataset `json:"dataset,omitempty"`
	// Repository holds the value of the repository edge.
	Repository *Repository `json:"repository,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// DatasetOrErr returns the Dataset value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FileRecordEdges) DatasetOrErr() (*Dataset, error) {
	if e.Dataset != nil {
		return e.Dataset, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: dataset.Label}
	}
	return nil, &NotLoadedError{edge: "dataset"}
}

// RepositoryOrErr returns the Repository value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FileRecordEdges) RepositoryOrErr() (*Repository, error) {
	if e.Repository != nil {
		return e.Repository, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: repository.Label}
	}
	return nil, &NotLoadedError{edge: "repository"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FileRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case filerecord.FieldExists:
			values[i] = new(sql.NullBool)
		case filerecord.FieldRelativePath, filerecord.FieldStatus:
			values[i] = new(sql.NullString)
		case filerecord.FieldCreatedAt, filerecord.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case filerecord.FieldID, filerecord.FieldRepositoryID:
			values[i] = new(ulid.ULID)
		case filerecord.FieldDatasetID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FileRecord fields.
func (_m *FileRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case filerecord.FieldID:
			if value, ok := values[i].(*ulid.ULID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case filerecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case filerecord.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case filerecord.FieldDatasetID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field dataset_id", values[i])
			} else if value != nil {
				_m.DatasetID = *value
			}
		case filerecord.FieldRepositoryID:
			if value, ok := values[i].(*ulid.ULID); !ok {
				return fmt.Errorf("unexpected type %T for field repository_id", values[i])
			} else if value != nil {
				_m.RepositoryID = *value
			}
		case filerecord.FieldRelativePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field relative_path", values[i])
			} else if value.Valid {
				_m.RelativePath = value.String
			}
		case filerecord.FieldExists:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field exists", values[i])
			} else if value.Valid {
				_m.Exists = value.Bool
			}
		case filerecord.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = filerecord.Status(value.String)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FileRecord.
// This includes values selected through modifiers, order, etc.
func (_m *FileRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDataset queries the "dataset" edge of the FileRecord entity.
func (_m *FileRecord) QueryDataset() *DatasetQuery {
	return NewFileRecordClient(_m.config).QueryDataset(_m)
}

// QueryRepository queries the "repository" edge of the FileRecord entity.
func (_m *FileRecord) QueryRepository() *RepositoryQuery {
	return NewFileRecordClient(_m.config).QueryRepository(_m)
}

// Update returns a builder for updating this FileRecord.
// Note that you need to call FileRecord.Unwrap() before calling this method if this FileRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FileRecord) Update() *FileRecordUpdateOne {
	return NewFileRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FileRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FileRecord) Unwrap() *FileRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("generated: FileRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FileRecord) String() string {
	var builder strings.Builder
	builder.WriteString("FileRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("dataset_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DatasetID))
	builder.WriteString(", ")
	builder.WriteString("repository_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RepositoryID))
	builder.WriteString(", ")
	builder.WriteString("relative_path=")
	builder.WriteString(_m.RelativePath)
	builder.WriteString(", ")
	builder.WriteString("exists=")
	builder.WriteString(fmt.Sprintf("%v", _m.Exists))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteByte(')')
	return builder.String()
}

// FileRecords is a parsable slice of FileRecord.
type FileRecords []*FileRecord
