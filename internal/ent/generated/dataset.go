// Code generated by ent, DO NOT EDIT.

package generated

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dataferry/dataferry/internal/ent/generated/dataset"
	"github.com/dataferry/dataferry/internal/ent/generated/lab"
	"github.com/google/uuid"
	ulid "github.com/oklog/ulid/v2"
)

// Dataset is the model entity for the Dataset schema.
type Dataset struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Declared byte size, null until observed
	FileSize *int64 `json:"file_size,omitempty"`
	// Hash holds the value of the "hash" field.
	Hash string `json:"hash,omitempty"`
	// Revision holds the value of the "revision" field.
	Revision string `json:"revision,omitempty"`
	// IsDefaultRevision holds the value of the "is_default_revision" field.
	IsDefaultRevision bool `json:"default_revision,omitempty"`
	// Protected datasets reject overwrite and purge
	Protected bool `json:"protected,omitempty"`
	// Parent dataset for derived outputs
	ParentID *uuid.UUID `json:"parent_id,omitempty"`
	// LabID holds the value of the "lab_id" field.
	LabID ulid.ULID `json:"lab_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DatasetQuery when eager-loading is set.
	Edges        DatasetEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DatasetEdges holds the relations/edges for other nodes in the graph.
type DatasetEdges struct {
	// Parent holds the value of the parent edge.
	Parent *Dataset `json:"parent,omitempty"`
	// Children holds the value of the children edge.
	Children []*Dataset `json:"children,omitempty"`
	// Lab holds the value of the lab edge.
	Lab *Lab `json:"lab,omitempty"`
	// FileRecords holds the value of the file_records edge.
	FileRecords []*FileRecord `json:"file_records,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// ParentOrErr returns the Parent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DatasetEdges) ParentOrErr() (*Dataset, error) {
	if e.Parent != nil {
		return e.Parent, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: dataset.Label}
	}
	return nil, &NotLoadedError{edge: "parent"}
}

// ChildrenOrErr returns the Children value or an error if the edge
// was not loaded in eager-loading.
func (e DatasetEdges) ChildrenOrErr() ([]*Dataset, error) {
	if e.loadedTypes[1] {
		return e.Children, nil
	}
	return nil, &NotLoadedError{edge: "children"}
}

// LabOrErr returns the Lab value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DatasetEdges) LabOrErr() (*Lab, error) {
	if e.Lab != nil {
		return e.Lab, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: lab.Label}
	}
	return nil, &NotLoadedError{edge: "lab"}
}

// FileRecordsOrErr returns the FileRecords value or an error if the edge
// was not loaded in eager-loading.
func (e DatasetEdges) FileRecordsOrErr() ([]*FileRecord, error) {
	if e.loadedTypes[3] {
		return e.FileRecords, nil
	}
	return nil, &NotLoadedError{edge: "file_records"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Dataset) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case dataset.FieldParentID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case dataset.FieldIsDefaultRevision, dataset.FieldProtected:
			values[i] = new(sql.NullBool)
		case dataset.FieldFileSize:
			values[i] = new(sql.NullInt64)
		case dataset.FieldName, dataset.FieldHash, dataset.FieldRevision:
			values[i] = new(sql.NullString)
		case dataset.FieldCreatedAt, dataset.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case dataset.FieldLabID:
			values[i] = new(ulid.ULID)
		case dataset.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Dataset fields.
func (_m *Dataset) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case dataset.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case dataset.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case dataset.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case dataset.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case dataset.FieldFileSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field file_size", values[i])
			} else if value.Valid {
				_m.FileSize = new(int64)
				*_m.FileSize = value.Int64
			}
		case dataset.FieldHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hash", values[i])
			} else if value.Valid {
				_m.Hash = value.String
			}
		case dataset.FieldRevision:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field revision", values[i])
			} else if value.Valid {
				_m.Revision = value.String
			}
		case dataset.FieldIsDefaultRevision:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_default_revision", values[i])
			} else if value.Valid {
				_m.IsDefaultRevision = value.Bool
			}
		case dataset.FieldProtected:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field protected", values[i])
			} else if value.Valid {
				_m.Protected = value.Bool
			}
		case dataset.FieldParentID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field parent_id", values[i])
			} else if value.Valid {
				_m.ParentID = new(uuid.UUID)
				*_m.ParentID = *value.S.(*uuid.UUID)
			}
		case dataset.FieldLabID:
			if value, ok := values[i].(*ulid.ULID); !ok {
				return fmt.Errorf("unexpected type %T for field lab_id", values[i])
			} else if value != nil {
				_m.LabID = *value
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Dataset.
// This includes values selected through modifiers, order, etc.
func (_m *Dataset) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryParent queries the "parent" edge of the Dataset entity.
func (_m *Dataset) QueryParent() *DatasetQuery {
	return NewDatasetClient(_m.config).QueryParent(_m)
}

// QueryChildren queries the "children" edge of the Dataset entity.
func (_m *Dataset) QueryChildren() *DatasetQuery {
	return NewDatasetClient(_m.config).QueryChildren(_m)
}

// QueryLab queries the "lab" edge of the Dataset entity.
func (_m *Dataset) QueryLab() *LabQuery {
	return NewDatasetClient(_m.config).QueryLab(_m)
}

// QueryFileRecords queries the "file_records" edge of the Dataset entity.
func (_m *Dataset) QueryFileRecords() *FileRecordQuery {
	return NewDatasetClient(_m.config).QueryFileRecords(_m)
}

// Update returns a builder for updating this Dataset.
// Note that you need to call Dataset.Unwrap() before calling this method if this Dataset
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Dataset) Update() *DatasetUpdateOne {
	return NewDatasetClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Dataset entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Dataset) Unwrap() *Dataset {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("generated: Dataset is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Dataset) String() string {
	var builder strings.Builder
	builder.WriteString("Dataset(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	if v := _m.FileSize; v != nil {
		builder.WriteString("file_size=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("hash=")
	builder.WriteString(_m.Hash)
	builder.WriteString(", ")
	builder.WriteString("revision=")
	builder.WriteString(_m.Revision)
	builder.WriteString(", ")
	builder.WriteString("is_default_revision=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsDefaultRevision))
	builder.WriteString(", ")
	builder.WriteString("protected=")
	builder.WriteString(fmt.Sprintf("%v", _m.Protected))
	builder.WriteString(", ")
	if v := _m.ParentID; v != nil {
		builder.WriteString("parent_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("lab_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.LabID))
	builder.WriteByte(')')
	return builder.String()
}

// Datasets is a parsable slice of Dataset.
type Datasets []*Dataset
