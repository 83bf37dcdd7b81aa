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
	"github.com/reachforge/reachforge/ent/campaign"
	"github.com/reachforge/reachforge/ent/lead"
	"github.com/reachforge/reachforge/ent/leadstep"
)

// LeadStepCreate is the builder for creating a LeadStep entity.
type LeadStepCreate struct {
	config
	mutation *LeadStepMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCampaignID sets the "campaign_id" field.
func (_c *LeadStepCreate) SetCampaignID(v string) *LeadStepCreate {
	_c.mutation.SetCampaignID(v)
	return _c
}

// SetLeadID sets the "lead_id" field.
func (_c *LeadStepCreate) SetLeadID(v string) *LeadStepCreate {
	_c.mutation.SetLeadID(v)
	return _c
}

// SetStepIndex sets the "step_index" field.
func (_c *LeadStepCreate) SetStepIndex(v int) *LeadStepCreate {
	_c.mutation.SetStepIndex(v)
	return _c
}

// SetNodeID sets the "node_id" field.
func (_c *LeadStepCreate) SetNodeID(v string) *LeadStepCreate {
	_c.mutation.SetNodeID(v)
	return _c
}

// SetNodeKind sets the "node_kind" field.
func (_c *LeadStepCreate) SetNodeKind(v leadstep.NodeKind) *LeadStepCreate {
	_c.mutation.SetNodeKind(v)
	return _c
}

// SetConfig sets the "config" field.
func (_c *LeadStepCreate) SetConfig(v map[string]interface{}) *LeadStepCreate {
	_c.mutation.SetConfig(v)
	return _c
}

// SetSuccess sets the "success" field.
func (_c *LeadStepCreate) SetSuccess(v bool) *LeadStepCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetResult sets the "result" field.
func (_c *LeadStepCreate) SetResult(v map[string]interface{}) *LeadStepCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LeadStepCreate) SetCreatedAt(v time.Time) *LeadStepCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LeadStepCreate) SetNillableCreatedAt(v *time.Time) *LeadStepCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LeadStepCreate) SetID(v string) *LeadStepCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetCampaign sets the "campaign" edge to the Campaign entity.
func (_c *LeadStepCreate) SetCampaign(v *Campaign) *LeadStepCreate {
	return _c.SetCampaignID(v.ID)
}

// SetLead sets the "lead" edge to the Lead entity.
func (_c *LeadStepCreate) SetLead(v *Lead) *LeadStepCreate {
	return _c.SetLeadID(v.ID)
}

// Mutation returns the LeadStepMutation object of the builder.
func (_c *LeadStepCreate) Mutation() *LeadStepMutation {
	return _c.mutation
}

// Save creates the LeadStep in the database.
func (_c *LeadStepCreate) Save(ctx context.Context) (*LeadStep, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LeadStepCreate) SaveX(ctx context.Context) *LeadStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LeadStepCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LeadStepCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LeadStepCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := leadstep.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LeadStepCreate) check() error {
	if _, ok := _c.mutation.CampaignID(); !ok {
		return &ValidationError{Name: "campaign_id", err: errors.New(`ent: missing required field "LeadStep.campaign_id"`)}
	}
	if _, ok := _c.mutation.LeadID(); !ok {
		return &ValidationError{Name: "lead_id", err: errors.New(`ent: missing required field "LeadStep.lead_id"`)}
	}
	if _, ok := _c.mutation.StepIndex(); !ok {
		return &ValidationError{Name: "step_index", err: errors.New(`ent: missing required field "LeadStep.step_index"`)}
	}
	if _, ok := _c.mutation.NodeID(); !ok {
		return &ValidationError{Name: "node_id", err: errors.New(`ent: missing required field "LeadStep.node_id"`)}
	}
	if _, ok := _c.mutation.NodeKind(); !ok {
		return &ValidationError{Name: "node_kind", err: errors.New(`ent: missing required field "LeadStep.node_kind"`)}
	}
	if v, ok := _c.mutation.NodeKind(); ok {
		if err := leadstep.NodeKindValidator(v); err != nil {
			return &ValidationError{Name: "node_kind", err: fmt.Errorf(`ent: validator failed for field "LeadStep.node_kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "LeadStep.success"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LeadStep.created_at"`)}
	}
	if len(_c.mutation.CampaignIDs()) == 0 {
		return &ValidationError{Name: "campaign", err: errors.New(`ent: missing required edge "LeadStep.campaign"`)}
	}
	if len(_c.mutation.LeadIDs()) == 0 {
		return &ValidationError{Name: "lead", err: errors.New(`ent: missing required edge "LeadStep.lead"`)}
	}
	return nil
}

func (_c *LeadStepCreate) sqlSave(ctx context.Context) (*LeadStep, error) {
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
			return nil, fmt.Errorf("unexpected LeadStep.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LeadStepCreate) createSpec() (*LeadStep, *sqlgraph.CreateSpec) {
	var (
		_node = &LeadStep{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(leadstep.Table, sqlgraph.NewFieldSpec(leadstep.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.StepIndex(); ok {
		_spec.SetField(leadstep.FieldStepIndex, field.TypeInt, value)
		_node.StepIndex = value
	}
	if value, ok := _c.mutation.NodeID(); ok {
		_spec.SetField(leadstep.FieldNodeID, field.TypeString, value)
		_node.NodeID = value
	}
	if value, ok := _c.mutation.NodeKind(); ok {
		_spec.SetField(leadstep.FieldNodeKind, field.TypeEnum, value)
		_node.NodeKind = value
	}
	if value, ok := _c.mutation.Config(); ok {
		_spec.SetField(leadstep.FieldConfig, field.TypeJSON, value)
		_node.Config = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(leadstep.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(leadstep.FieldResult, field.TypeJSON, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(leadstep.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.CampaignIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   leadstep.CampaignTable,
			Columns: []string{leadstep.CampaignColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CampaignID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.LeadIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   leadstep.LeadTable,
			Columns: []string{leadstep.LeadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.LeadID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LeadStep.Create().
//		SetCampaignID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LeadStepUpsert) {
//			SetCampaignID(v+v).
//		}).
//		Exec(ctx)
func (_c *LeadStepCreate) OnConflict(opts ...sql.ConflictOption) *LeadStepUpsertOne {
	_c.conflict = opts
	return &LeadStepUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LeadStep.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LeadStepCreate) OnConflictColumns(columns ...string) *LeadStepUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LeadStepUpsertOne{
		create: _c,
	}
}

type (
	// LeadStepUpsertOne is the builder for "upsert"-ing
	//  one LeadStep node.
	LeadStepUpsertOne struct {
		create *LeadStepCreate
	}

	// LeadStepUpsert is the "OnConflict" setter.
	LeadStepUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.LeadStep.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(leadstep.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LeadStepUpsertOne) UpdateNewValues() *LeadStepUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(leadstep.FieldID)
		}
		if _, exists := u.create.mutation.CampaignID(); exists {
			s.SetIgnore(leadstep.FieldCampaignID)
		}
		if _, exists := u.create.mutation.LeadID(); exists {
			s.SetIgnore(leadstep.FieldLeadID)
		}
		if _, exists := u.create.mutation.StepIndex(); exists {
			s.SetIgnore(leadstep.FieldStepIndex)
		}
		if _, exists := u.create.mutation.NodeID(); exists {
			s.SetIgnore(leadstep.FieldNodeID)
		}
		if _, exists := u.create.mutation.NodeKind(); exists {
			s.SetIgnore(leadstep.FieldNodeKind)
		}
		if _, exists := u.create.mutation.Config(); exists {
			s.SetIgnore(leadstep.FieldConfig)
		}
		if _, exists := u.create.mutation.Success(); exists {
			s.SetIgnore(leadstep.FieldSuccess)
		}
		if _, exists := u.create.mutation.Result(); exists {
			s.SetIgnore(leadstep.FieldResult)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(leadstep.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LeadStep.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LeadStepUpsertOne) Ignore() *LeadStepUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LeadStepUpsertOne) DoNothing() *LeadStepUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LeadStepCreate.OnConflict
// documentation for more info.
func (u *LeadStepUpsertOne) Update(set func(*LeadStepUpsert)) *LeadStepUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LeadStepUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *LeadStepUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LeadStepCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LeadStepUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LeadStepUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: LeadStepUpsertOne.ID is not supported by MySQL driver. Use LeadStepUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LeadStepUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LeadStepCreateBulk is the builder for creating many LeadStep entities in bulk.
type LeadStepCreateBulk struct {
	config
	err      error
	builders []*LeadStepCreate
	conflict []sql.ConflictOption
}

// Save creates the LeadStep entities in the database.
func (_c *LeadStepCreateBulk) Save(ctx context.Context) ([]*LeadStep, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LeadStep, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LeadStepMutation)
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
func (_c *LeadStepCreateBulk) SaveX(ctx context.Context) []*LeadStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LeadStepCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LeadStepCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LeadStep.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LeadStepUpsert) {
//			SetCampaignID(v+v).
//		}).
//		Exec(ctx)
func (_c *LeadStepCreateBulk) OnConflict(opts ...sql.ConflictOption) *LeadStepUpsertBulk {
	_c.conflict = opts
	return &LeadStepUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LeadStep.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LeadStepCreateBulk) OnConflictColumns(columns ...string) *LeadStepUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LeadStepUpsertBulk{
		create: _c,
	}
}

// LeadStepUpsertBulk is the builder for "upsert"-ing
// a bulk of LeadStep nodes.
type LeadStepUpsertBulk struct {
	create *LeadStepCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.LeadStep.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(leadstep.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LeadStepUpsertBulk) UpdateNewValues() *LeadStepUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(leadstep.FieldID)
			}
			if _, exists := b.mutation.CampaignID(); exists {
				s.SetIgnore(leadstep.FieldCampaignID)
			}
			if _, exists := b.mutation.LeadID(); exists {
				s.SetIgnore(leadstep.FieldLeadID)
			}
			if _, exists := b.mutation.StepIndex(); exists {
				s.SetIgnore(leadstep.FieldStepIndex)
			}
			if _, exists := b.mutation.NodeID(); exists {
				s.SetIgnore(leadstep.FieldNodeID)
			}
			if _, exists := b.mutation.NodeKind(); exists {
				s.SetIgnore(leadstep.FieldNodeKind)
			}
			if _, exists := b.mutation.Config(); exists {
				s.SetIgnore(leadstep.FieldConfig)
			}
			if _, exists := b.mutation.Success(); exists {
				s.SetIgnore(leadstep.FieldSuccess)
			}
			if _, exists := b.mutation.Result(); exists {
				s.SetIgnore(leadstep.FieldResult)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(leadstep.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LeadStep.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LeadStepUpsertBulk) Ignore() *LeadStepUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LeadStepUpsertBulk) DoNothing() *LeadStepUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LeadStepCreateBulk.OnConflict
// documentation for more info.
func (u *LeadStepUpsertBulk) Update(set func(*LeadStepUpsert)) *LeadStepUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LeadStepUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *LeadStepUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the LeadStepCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LeadStepCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LeadStepUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
