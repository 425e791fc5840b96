// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Dataset is the predicate function for dataset builders.
type Dataset func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// FileRecord is the predicate function for filerecord builders.
type FileRecord func(*sql.Selector)

// Lab is the predicate function for lab builders.
type Lab func(*sql.Selector)

// Repository is the predicate function for repository builders.
type Repository func(*sql.Selector)
