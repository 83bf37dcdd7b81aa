// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/reachforge/reachforge/ent/connectedaccount"
	"github.com/reachforge/reachforge/ent/predicate"
)

// ConnectedAccountUpdate is the builder for updating ConnectedAccount entities.
type ConnectedAccountUpdate struct {
	config
	hooks    []Hook
	mutation *ConnectedAccountMutation
}

// Where appends a list predicates to the ConnectedAccountUpdate builder.
func (_u *ConnectedAccountUpdate) Where(ps ...predicate.ConnectedAccount) *ConnectedAccountUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProviderAccountID sets the "provider_account_id" field.
func (_u *ConnectedAccountUpdate) SetProviderAccountID(v string) *ConnectedAccountUpdate {
	_u.mutation.SetProviderAccountID(v)
	return _u
}

// SetNillableProviderAccountID sets the "provider_account_id" field if the given value is not nil.
func (_u *ConnectedAccountUpdate) SetNillableProviderAccountID(v *string) *ConnectedAccountUpdate {
	if v != nil {
		_u.SetProviderAccountID(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *ConnectedAccountUpdate) SetDisplayName(v string) *ConnectedAccountUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *ConnectedAccountUpdate) SetNillableDisplayName(v *string) *ConnectedAccountUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// ClearDisplayName clears the value of the "display_name" field.
func (_u *ConnectedAccountUpdate) ClearDisplayName() *ConnectedAccountUpdate {
	_u.mutation.ClearDisplayName()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ConnectedAccountUpdate) SetStatus(v connectedaccount.Status) *ConnectedAccountUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ConnectedAccountUpdate) SetNillableStatus(v *connectedaccount.Status) *ConnectedAccountUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConnectedAccountUpdate) SetUpdatedAt(v time.Time) *ConnectedAccountUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ConnectedAccountMutation object of the builder.
func (_u *ConnectedAccountUpdate) Mutation() *ConnectedAccountMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConnectedAccountUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConnectedAccountUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConnectedAccountUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConnectedAccountUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConnectedAccountUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := connectedaccount.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConnectedAccountUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := connectedaccount.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ConnectedAccount.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ConnectedAccountUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(connectedaccount.Table, connectedaccount.Columns, sqlgraph.NewFieldSpec(connectedaccount.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProviderAccountID(); ok {
		_spec.SetField(connectedaccount.FieldProviderAccountID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(connectedaccount.FieldDisplayName, field.TypeString, value)
	}
	if _u.mutation.DisplayNameCleared() {
		_spec.ClearField(connectedaccount.FieldDisplayName, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(connectedaccount.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(connectedaccount.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{connectedaccount.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConnectedAccountUpdateOne is the builder for updating a single ConnectedAccount entity.
type ConnectedAccountUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConnectedAccountMutation
}

// SetProviderAccountID sets the "provider_account_id" field.
func (_u *ConnectedAccountUpdateOne) SetProviderAccountID(v string) *ConnectedAccountUpdateOne {
	_u.mutation.SetProviderAccountID(v)
	return _u
}

// SetNillableProviderAccountID sets the "provider_account_id" field if the given value is not nil.
func (_u *ConnectedAccountUpdateOne) SetNillableProviderAccountID(v *string) *ConnectedAccountUpdateOne {
	if v != nil {
		_u.SetProviderAccountID(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *ConnectedAccountUpdateOne) SetDisplayName(v string) *ConnectedAccountUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *ConnectedAccountUpdateOne) SetNillableDisplayName(v *string) *ConnectedAccountUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// ClearDisplayName clears the value of the "display_name" field.
func (_u *ConnectedAccountUpdateOne) ClearDisplayName() *ConnectedAccountUpdateOne {
	_u.mutation.ClearDisplayName()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ConnectedAccountUpdateOne) SetStatus(v connectedaccount.Status) *ConnectedAccountUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ConnectedAccountUpdateOne) SetNillableStatus(v *connectedaccount.Status) *ConnectedAccountUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConnectedAccountUpdateOne) SetUpdatedAt(v time.Time) *ConnectedAccountUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ConnectedAccountMutation object of the builder.
func (_u *ConnectedAccountUpdateOne) Mutation() *ConnectedAccountMutation {
	return _u.mutation
}

// Where appends a list predicates to the ConnectedAccountUpdate builder.
func (_u *ConnectedAccountUpdateOne) Where(ps ...predicate.ConnectedAccount) *ConnectedAccountUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConnectedAccountUpdateOne) Select(field string, fields ...string) *ConnectedAccountUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ConnectedAccount entity.
func (_u *ConnectedAccountUpdateOne) Save(ctx context.Context) (*ConnectedAccount, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConnectedAccountUpdateOne) SaveX(ctx context.Context) *ConnectedAccount {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConnectedAccountUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConnectedAccountUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConnectedAccountUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := connectedaccount.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConnectedAccountUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := connectedaccount.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ConnectedAccount.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ConnectedAccountUpdateOne) sqlSave(ctx context.Context) (_node *ConnectedAccount, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(connectedaccount.Table, connectedaccount.Columns, sqlgraph.NewFieldSpec(connectedaccount.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ConnectedAccount.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, connectedaccount.FieldID)
		for _, f := range fields {
			if !connectedaccount.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != connectedaccount.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProviderAccountID(); ok {
		_spec.SetField(connectedaccount.FieldProviderAccountID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(connectedaccount.FieldDisplayName, field.TypeString, value)
	}
	if _u.mutation.DisplayNameCleared() {
		_spec.ClearField(connectedaccount.FieldDisplayName, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(connectedaccount.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(connectedaccount.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ConnectedAccount{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{connectedaccount.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
