// Code generated by ent, DO NOT EDIT.

package generated

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dataferry/dataferry/internal/ent/generated/lab"
	ulid "github.com/oklog/ulid/v2"
)

// Lab is the model entity for the Lab schema.
type Lab struct {
	config `json:"-"`
	// ID of the ent.
	ID ulid.ULID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LabQuery when eager-loading is set.
	Edges        LabEdges `json:"edges"`
	selectValues sql.SelectValues
}

// LabEdges holds the relations/edges for other nodes in the graph.
type LabEdges struct {
	// Repositories holds the value of the repositories edge.
	Repositories []*Repository `json:"repositories,omitempty"`
	// Datasets holds the value of the datasets edge.
	Datasets []*Dataset `json:"datasets,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// RepositoriesOrErr returns the Repositories value or an error if the edge
// was not loaded in eager-loading.
func (e LabEdges) RepositoriesOrErr() ([]*Repository, error) {
	if e.loadedTypes[0] {
		return e.Repositories, nil
	}
	return nil, &NotLoadedError{edge: "repositories"}
}

// DatasetsOrErr returns the Datasets value or an error if the edge
// was not loaded in eager-loading.
func (e LabEdges) DatasetsOrErr() ([]*Dataset, error) {
	if e.loadedTypes[1] {
		return e.Datasets, nil
	}
	return nil, &NotLoadedError{edge: "datasets"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Lab) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case lab.FieldName:
			values[i] = new(sql.NullString)
		case lab.FieldCreatedAt, lab.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case lab.FieldID:
			values[i] = new(ulid.ULID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Lab fields.
func (_m *Lab) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case lab.FieldID:
			if value, ok := values[i].(*ulid.ULID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case lab.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case lab.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case lab.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Lab.
// This includes values selected through modifiers, order, etc.
func (_m *Lab) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRepositories queries the "repositories" edge of the Lab entity.
func (_m *Lab) QueryRepositories() *RepositoryQuery {
	return NewLabClient(_m.config).QueryRepositories(_m)
}

// QueryDatasets queries the "datasets" edge of the Lab entity.
func (_m *Lab) QueryDatasets() *DatasetQuery {
	return NewLabClient(_m.config).QueryDatasets(_m)
}

// Update returns a builder for updating this Lab.
// Note that you need to call Lab.Unwrap() before calling this method if this Lab
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Lab) Update() *LabUpdateOne {
	return NewLabClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Lab entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Lab) Unwrap() *Lab {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("generated: Lab is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Lab) String() string {
	var builder strings.Builder
	builder.WriteString("Lab(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteByte(')')
	return builder.String()
}

// Labs is a parsable slice of Lab.
type Labs []*Lab
