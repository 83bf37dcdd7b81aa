// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Campaign is the predicate function for campaign builders.
type Campaign func(*sql.Selector)

// ConnectedAccount is the predicate function for connectedaccount builders.
type ConnectedAccount func(*sql.Selector)

// Lead is the predicate function for lead builders.
type Lead func(*sql.Selector)

// LeadStep is the predicate function for leadstep builders.
type LeadStep func(*sql.Selector)
