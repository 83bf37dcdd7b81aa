// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/reachforge/reachforge/ent/connectedaccount"
)

// ConnectedAccountCreate is the builder for creating a ConnectedAccount entity.
type ConnectedAccountCreate struct {
	config
	mutation *ConnectedAccountMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetOrganizationID sets the "organization_id" field.
func (_c *ConnectedAccountCreate) SetOrganizationID(v string) *ConnectedAccountCreate {
	_c.mutation.SetOrganizationID(v)
	return _c
}

// SetProviderAccountID sets the "provider_account_id" field.
func (_c *ConnectedAccountCreate) SetProviderAccountID(v string) *ConnectedAccountCreate {
	_c.mutation.SetProviderAccountID(v)
	return _c
}

// SetDisplayName sets the "display_name" field.
func (_c *ConnectedAccountCreate) SetDisplayName(v string) *ConnectedAccountCreate {
	_c.mutation.SetDisplayName(v)
	return _c
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_c *ConnectedAccountCreate) SetNillableDisplayName(v *string) *ConnectedAccountCreate {
	if v != nil {
		_c.SetDisplayName(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ConnectedAccountCreate) SetStatus(v connectedaccount.Status) *ConnectedAccountCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ConnectedAccountCreate) SetNillableStatus(v *connectedaccount.Status) *ConnectedAccountCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ConnectedAccountCreate) SetCreatedAt(v time.Time) *ConnectedAccountCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ConnectedAccountCreate) SetNillableCreatedAt(v *time.Time) *ConnectedAccountCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ConnectedAccountCreate) SetUpdatedAt(v time.Time) *ConnectedAccountCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ConnectedAccountCreate) SetNillableUpdatedAt(v *time.Time) *ConnectedAccountCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ConnectedAccountCreate) SetID(v string) *ConnectedAccountCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ConnectedAccountMutation object of the builder.
func (_c *ConnectedAccountCreate) Mutation() *ConnectedAccountMutation {
	return _c.mutation
}

// Save creates the ConnectedAccount in the database.
func (_c *ConnectedAccountCreate) Save(ctx context.Context) (*ConnectedAccount, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConnectedAccountCreate) SaveX(ctx context.Context) *ConnectedAccount {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConnectedAccountCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConnectedAccountCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConnectedAccountCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := connectedaccount.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := connectedaccount.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := connectedaccount.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConnectedAccountCreate) check() error {
	if _, ok := _c.mutation.OrganizationID(); !ok {
		return &ValidationError{Name: "organization_id", err: errors.New(`ent: missing required field "ConnectedAccount.organization_id"`)}
	}
	if _, ok := _c.mutation.ProviderAccountID(); !ok {
		return &ValidationError{Name: "provider_account_id", err: errors.New(`ent: missing required field "ConnectedAccount.provider_account_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ConnectedAccount.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := connectedaccount.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ConnectedAccount.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ConnectedAccount.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ConnectedAccount.updated_at"`)}
	}
	return nil
}

func (_c *ConnectedAccountCreate) sqlSave(ctx context.Context) (*ConnectedAccount, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ConnectedAccount.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ConnectedAccountCreate) createSpec() (*ConnectedAccount, *sqlgraph.CreateSpec) {
	var (
		_node = &ConnectedAccount{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(connectedaccount.Table, sqlgraph.NewFieldSpec(connectedaccount.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OrganizationID(); ok {
		_spec.SetField(connectedaccount.FieldOrganizationID, field.TypeString, value)
		_node.OrganizationID = value
	}
	if value, ok := _c.mutation.ProviderAccountID(); ok {
		_spec.SetField(connectedaccount.FieldProviderAccountID, field.TypeString, value)
		_node.ProviderAccountID = value
	}
	if value, ok := _c.mutation.DisplayName(); ok {
		_spec.SetField(connectedaccount.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(connectedaccount.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(connectedaccount.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(connectedaccount.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ConnectedAccount.Create().
//		SetOrganizationID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ConnectedAccountUpsert) {
//			SetOrganizationID(v+v).
//		}).
//		Exec(ctx)
func (_c *ConnectedAccountCreate) OnConflict(opts ...sql.ConflictOption) *ConnectedAccountUpsertOne {
	_c.conflict = opts
	return &ConnectedAccountUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ConnectedAccount.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ConnectedAccountCreate) OnConflictColumns(columns ...string) *ConnectedAccountUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ConnectedAccountUpsertOne{
		create: _c,
	}
}

type (
	// ConnectedAccountUpsertOne is the builder for "upsert"-ing
	//  one ConnectedAccount node.
	ConnectedAccountUpsertOne struct {
		create *ConnectedAccountCreate
	}

	// ConnectedAccountUpsert is the "OnConflict" setter.
	ConnectedAccountUpsert struct {
		*sql.UpdateSet
	}
)

// SetProviderAccountID sets the "provider_account_id" field.
func (u *ConnectedAccountUpsert) SetProviderAccountID(v string) *ConnectedAccountUpsert {
	u.Set(connectedaccount.FieldProviderAccountID, v)
	return u
}

// UpdateProviderAccountID sets the "provider_account_id" field to the value that was provided on create.
func (u *ConnectedAccountUpsert) UpdateProviderAccountID() *ConnectedAccountUpsert {
	u.SetExcluded(connectedaccount.FieldProviderAccountID)
	return u
}

// SetDisplayName sets the "display_name" field.
func (u *ConnectedAccountUpsert) SetDisplayName(v string) *ConnectedAccountUpsert {
	u.Set(connectedaccount.FieldDisplayName, v)
	return u
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *ConnectedAccountUpsert) UpdateDisplayName() *ConnectedAccountUpsert {
	u.SetExcluded(connectedaccount.FieldDisplayName)
	return u
}

// ClearDisplayName clears the value of the "display_name" field.
func (u *ConnectedAccountUpsert) ClearDisplayName() *ConnectedAccountUpsert {
	u.SetNull(connectedaccount.FieldDisplayName)
	return u
}

// SetStatus sets the "status" field.
func (u *ConnectedAccountUpsert) SetStatus(v connectedaccount.Status) *ConnectedAccountUpsert {
	u.Set(connectedaccount.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ConnectedAccountUpsert) UpdateStatus() *ConnectedAccountUpsert {
	u.SetExcluded(connectedaccount.FieldStatus)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ConnectedAccountUpsert) SetUpdatedAt(v time.Time) *ConnectedAccountUpsert {
	u.Set(connectedaccount.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ConnectedAccountUpsert) UpdateUpdatedAt() *ConnectedAccountUpsert {
	u.SetExcluded(connectedaccount.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ConnectedAccount.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(connectedaccount.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ConnectedAccountUpsertOne) UpdateNewValues() *ConnectedAccountUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(connectedaccount.FieldID)
		}
		if _, exists := u.create.mutation.OrganizationID(); exists {
			s.SetIgnore(connectedaccount.FieldOrganizationID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(connectedaccount.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ConnectedAccount.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ConnectedAccountUpsertOne) Ignore() *ConnectedAccountUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ConnectedAccountUpsertOne) DoNothing() *ConnectedAccountUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ConnectedAccountCreate.OnConflict
// documentation for more info.
func (u *ConnectedAccountUpsertOne) Update(set func(*ConnectedAccountUpsert)) *ConnectedAccountUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ConnectedAccountUpsert{UpdateSet: update})
	}))
	return u
}

// SetProviderAccountID sets the "provider_account_id" field.
func (u *ConnectedAccountUpsertOne) SetProviderAccountID(v string) *ConnectedAccountUpsertOne {
	return u.Update(func(s *ConnectedAccountUpsert) {
		s.SetProviderAccountID(v)
	})
}

// UpdateProviderAccountID sets the "provider_account_id" field to the value that was provided on create.
func (u *ConnectedAccountUpsertOne) UpdateProviderAccountID() *ConnectedAccountUpsertOne {
	return u.Update(func(s *ConnectedAccountUpsert) {
		s.UpdateProviderAccountID()
	})
}

// SetDisplayName sets the "display_name" field.
func (u *ConnectedAccountUpsertOne) SetDisplayName(v string) *ConnectedAccountUpsertOne {
	return u.Update(func(s *ConnectedAccountUpsert) {
		s.SetDisplayName(v)
	})
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *ConnectedAccountUpsertOne) UpdateDisplayName() *ConnectedAccountUpsertOne {
	return u.Update(func(s *ConnectedAccountUpsert) {
		s.UpdateDisplayName()
	})
}

// ClearDisplayName clears the value of the "display_name" field.
func (u *ConnectedAccountUpsertOne) ClearDisplayName() *ConnectedAccountUpsertOne {
	return u.Update(func(s *ConnectedAccountUpsert) {
		s.ClearDisplayName()
	})
}

// SetStatus sets the "status" field.
func (u *ConnectedAccountUpsertOne) SetStatus(v connectedaccount.Status) *ConnectedAccountUpsertOne {
	return u.Update(func(s *ConnectedAccountUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ConnectedAccountUpsertOne) UpdateStatus() *ConnectedAccountUpsertOne {
	return u.Update(func(s *ConnectedAccountUpsert) {
		s.UpdateStatus()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ConnectedAccountUpsertOne) SetUpdatedAt(v time.Time) *ConnectedAccountUpsertOne {
	return u.Update(func(s *ConnectedAccountUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ConnectedAccountUpsertOne) UpdateUpdatedAt() *ConnectedAccountUpsertOne {
	return u.Update(func(s *ConnectedAccountUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ConnectedAccountUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ConnectedAccountCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ConnectedAccountUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ConnectedAccountUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ConnectedAccountUpsertOne.ID is not supported by MySQL driver. Use ConnectedAccountUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ConnectedAccountUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ConnectedAccountCreateBulk is the builder for creating many ConnectedAccount entities in bulk.
type ConnectedAccountCreateBulk struct {
	config
	err      error
	builders []*ConnectedAccountCreate
	conflict []sql.ConflictOption
}

// Save creates the ConnectedAccount entities in the database.
func (_c *ConnectedAccountCreateBulk) Save(ctx context.Context) ([]*ConnectedAccount, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ConnectedAccount, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConnectedAccountMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ConnectedAccountCreateBulk) SaveX(ctx context.Context) []*ConnectedAccount {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConnectedAccountCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConnectedAccountCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ConnectedAccount.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ConnectedAccountUpsert) {
//			SetOrganizationID(v+v).
//		}).
//		Exec(ctx)
func (_c *ConnectedAccountCreateBulk) OnConflict(opts ...sql.ConflictOption) *ConnectedAccountUpsertBulk {
	_c.conflict = opts
	return &ConnectedAccountUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ConnectedAccount.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ConnectedAccountCreateBulk) OnConflictColumns(columns ...string) *ConnectedAccountUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ConnectedAccountUpsertBulk{
		create: _c,
	}
}

// ConnectedAccountUpsertBulk is the builder for "upsert"-ing
// a bulk of ConnectedAccount nodes.
type ConnectedAccountUpsertBulk struct {
	create *ConnectedAccountCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ConnectedAccount.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(connectedaccount.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ConnectedAccountUpsertBulk) UpdateNewValues() *ConnectedAccountUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(connectedaccount.FieldID)
			}
			if _, exists := b.mutation.OrganizationID(); exists {
				s.SetIgnore(connectedaccount.FieldOrganizationID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(connectedaccount.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ConnectedAccount.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ConnectedAccountUpsertBulk) Ignore() *ConnectedAccountUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ConnectedAccountUpsertBulk) DoNothing() *ConnectedAccountUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ConnectedAccountCreateBulk.OnConflict
// documentation for more info.
func (u *ConnectedAccountUpsertBulk) Update(set func(*ConnectedAccountUpsert)) *ConnectedAccountUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ConnectedAccountUpsert{UpdateSet: update})
	}))
	return u
}

// SetProviderAccountID sets the "provider_account_id" field.
func (u *ConnectedAccountUpsertBulk) SetProviderAccountID(v string) *ConnectedAccountUpsertBulk {
	return u.Update(func(s *ConnectedAccountUpsert) {
		s.SetProviderAccountID(v)
	})
}

// UpdateProviderAccountID sets the "provider_account_id" field to the value that was provided on create.
func (u *ConnectedAccountUpsertBulk) UpdateProviderAccountID() *ConnectedAccountUpsertBulk {
	return u.Update(func(s *ConnectedAccountUpsert) {
		s.UpdateProviderAccountID()
	})
}

// SetDisplayName sets the "display_name" field.
func (u *ConnectedAccountUpsertBulk) SetDisplayName(v string) *ConnectedAccountUpsertBulk {
	return u.Update(func(s *ConnectedAccountUpsert) {
		s.SetDisplayName(v)
	})
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *ConnectedAccountUpsertBulk) UpdateDisplayName() *ConnectedAccountUpsertBulk {
	return u.Update(func(s *ConnectedAccountUpsert) {
		s.UpdateDisplayName()
	})
}

// ClearDisplayName clears the value of the "display_name" field.
func (u *ConnectedAccountUpsertBulk) ClearDisplayName() *ConnectedAccountUpsertBulk {
	return u.Update(func(s *ConnectedAccountUpsert) {
		s.ClearDisplayName()
	})
}

// SetStatus sets the "status" field.
func (u *ConnectedAccountUpsertBulk) SetStatus(v connectedaccount.Status) *ConnectedAccountUpsertBulk {
	return u.Update(func(s *ConnectedAccountUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ConnectedAccountUpsertBulk) UpdateStatus() *ConnectedAccountUpsertBulk {
	return u.Update(func(s *ConnectedAccountUpsert) {
		s.UpdateStatus()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ConnectedAccountUpsertBulk) SetUpdatedAt(v time.Time) *ConnectedAccountUpsertBulk {
	return u.Update(func(s *ConnectedAccountUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ConnectedAccountUpsertBulk) UpdateUpdatedAt() *ConnectedAccountUpsertBulk {
	return u.Update(func(s *ConnectedAccountUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ConnectedAccountUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ConnectedAccountCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ConnectedAccountCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ConnectedAccountUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
