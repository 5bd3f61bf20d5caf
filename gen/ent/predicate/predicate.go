// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Response is the predicate function for response builders.
type Response func(*sql.Selector)
