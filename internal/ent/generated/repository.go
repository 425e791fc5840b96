// Code generated by ent, DO NOT EDIT.

package generated

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dataferry/dataferry/internal/ent/generated/lab"
	"github.com/dataferry/dataferry/internal/ent/generated/repository"
	ulid "github.com/oklog/ulid/v2"
)

// Repository is the model entity for the Repository schema.
type Repository struct {
	config `json:"-"`
	// ID of the ent.
	ID ulid.ULID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Path prefix under the endpoint root
	RootPath string `json:"root_path,omitempty"`
	// Opaque identifier used by the transfer backend
	EndpointID string `json:"endpoint_id,omitempty"`
	// True for node-local working copies, false for authoritative stores
	IsPersonal bool `json:"is_personal,omitempty"`
	// LabID holds the value of the "lab_id" field.
	LabID ulid.ULID `json:"lab_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RepositoryQuery when eager-loading is set.
	Edges        RepositoryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RepositoryEdges holds the relations/edges for other nodes in the graph.
type RepositoryEdges struct {
	// Lab holds the value of the lab edge.
	Lab *Lab `json:"lab,omitempty"`
	// FileRecords holds the value of the file_records edge.
	FileRecords []*FileRecord `json:"file_records,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// LabOrErr returns the Lab value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RepositoryEdges) LabOrErr() (*Lab, error) {
	if e.Lab != nil {
		return e.Lab, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: lab.Label}
	}
	return nil, &NotLoadedError{edge: "lab"}
}

// FileRecordsOrErr returns the FileRecords value or an error if the edge
// was not loaded in eager-loading.
func (e RepositoryEdges) FileRecordsOrErr() ([]*FileRecord, error) {
	if e.loadedTypes[1] {
		return e.FileRecords, nil
	}
	return nil, &NotLoadedError{edge: "file_records"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Repository) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case repository.FieldIsPersonal:
			values[i] = new(sql.NullBool)
		case repository.FieldName, repository.FieldRootPath, repository.FieldEndpointID:
			values[i] = new(sql.NullString)
		case repository.FieldCreatedAt, repository.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case repository.FieldID, repository.FieldLabID:
			values[i] = new(ulid.ULID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Repository fields.
func (_m *Repository) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case repository.FieldID:
			if value, ok := values[i].(*ulid.ULID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case repository.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case repository.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case repository.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case repository.FieldRootPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field root_path", values[i])
			} else if value.Valid {
				_m.RootPath = value.String
			}
		case repository.FieldEndpointID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field endpoint_id", values[i])
			} else if value.Valid {
				_m.EndpointID = value.String
			}
		case repository.FieldIsPersonal:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_personal", values[i])
			} else if value.Valid {
				_m.IsPersonal = value.Bool
			}
		case repository.FieldLabID:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Repository.
// This includes values selected through modifiers, order, etc.
func (_m *Repository) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryLab queries the "lab" edge of the Repository entity.
func (_m *Repository) QueryLab() *LabQuery {
	return NewRepositoryClient(_m.config).QueryLab(_m)
}

// QueryFileRecords queries the "file_records" edge of the Repository entity.
func (_m *Repository) QueryFileRecords() *FileRecordQuery {
	return NewRepositoryClient(_m.config).QueryFileRecords(_m)
}

// Update returns a builder for updating this Repository.
// Note that you need to call Repository.Unwrap() before calling this method if this Repository
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Repository) Update() *RepositoryUpdateOne {
	return NewRepositoryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Repository entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Repository) Unwrap() *Repository {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("generated: Repository is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Repository) String() string {
	var builder strings.Builder
	builder.WriteString("Repository(")
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
	builder.WriteString("root_path=")
	builder.WriteString(_m.RootPath)
	builder.WriteString(", ")
	builder.WriteString("endpoint_id=")
	builder.WriteString(_m.EndpointID)
	builder.WriteString(", ")
	builder.WriteString("is_personal=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsPersonal))
	builder.WriteString(", ")
	builder.WriteString("lab_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.LabID))
	builder.WriteByte(')')
	return builder.String()
}

// Repositories is a parsable slice of Repository.
type Repositories []*Repository
