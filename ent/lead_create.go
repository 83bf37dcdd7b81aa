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

// LeadCreate is the builder for creating a Lead entity.
type LeadCreate struct {
	config
	mutation *LeadMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCampaignID sets the "campaign_id" field.
func (_c *LeadCreate) SetCampaignID(v string) *LeadCreate {
	_c.mutation.SetCampaignID(v)
	return _c
}

// SetFirstName sets the "first_name" field.
func (_c *LeadCreate) SetFirstName(v string) *LeadCreate {
	_c.mutation.SetFirstName(v)
	return _c
}

// SetLastName sets the "last_name" field.
func (_c *LeadCreate) SetLastName(v string) *LeadCreate {
	_c.mutation.SetLastName(v)
	return _c
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_c *LeadCreate) SetNillableLastName(v *string) *LeadCreate {
	if v != nil {
		_c.SetLastName(*v)
	}
	return _c
}

// SetCompany sets the "company" field.
func (_c *LeadCreate) SetCompany(v string) *LeadCreate {
	_c.mutation.SetCompany(v)
	return _c
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_c *LeadCreate) SetNillableCompany(v *string) *LeadCreate {
	if v != nil {
		_c.SetCompany(*v)
	}
	return _c
}

// SetProfileURL sets the "profile_url" field.
func (_c *LeadCreate) SetProfileURL(v string) *LeadCreate {
	_c.mutation.SetProfileURL(v)
	return _c
}

// SetProviderID sets the "provider_id" field.
func (_c *LeadCreate) SetProviderID(v string) *LeadCreate {
	_c.mutation.SetProviderID(v)
	return _c
}

// SetNillableProviderID sets the "provider_id" field if the given value is not nil.
func (_c *LeadCreate) SetNillableProviderID(v *string) *LeadCreate {
	if v != nil {
		_c.SetProviderID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *LeadCreate) SetStatus(v lead.Status) *LeadCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *LeadCreate) SetNillableStatus(v *lead.Status) *LeadCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *LeadCreate) SetErrorMessage(v string) *LeadCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *LeadCreate) SetNillableErrorMessage(v *string) *LeadCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LeadCreate) SetCreatedAt(v time.Time) *LeadCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LeadCreate) SetNillableCreatedAt(v *time.Time) *LeadCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *LeadCreate) SetStartedAt(v time.Time) *LeadCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *LeadCreate) SetNillableStartedAt(v *time.Time) *LeadCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *LeadCreate) SetCompletedAt(v time.Time) *LeadCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *LeadCreate) SetNillableCompletedAt(v *time.Time) *LeadCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LeadCreate) SetID(v string) *LeadCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetCampaign sets the "campaign" edge to the Campaign entity.
func (_c *LeadCreate) SetCampaign(v *Campaign) *LeadCreate {
	return _c.SetCampaignID(v.ID)
}

// AddStepIDs adds the "steps" edge to the LeadStep entity by IDs.
func (_c *LeadCreate) AddStepIDs(ids ...string) *LeadCreate {
	_c.mutation.AddStepIDs(ids...)
	return _c
}

// AddSteps adds the "steps" edges to the LeadStep entity.
func (_c *LeadCreate) AddSteps(v ...*LeadStep) *LeadCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStepIDs(ids...)
}

// Mutation returns the LeadMutation object of the builder.
func (_c *LeadCreate) Mutation() *LeadMutation {
	return _c.mutation
}

// Save creates the Lead in the database.
func (_c *LeadCreate) Save(ctx context.Context) (*Lead, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LeadCreate) SaveX(ctx context.Context) *Lead {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LeadCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LeadCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LeadCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := lead.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := lead.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LeadCreate) check() error {
	if _, ok := _c.mutation.CampaignID(); !ok {
		return &ValidationError{Name: "campaign_id", err: errors.New(`ent: missing required field "Lead.campaign_id"`)}
	}
	if _, ok := _c.mutation.FirstName(); !ok {
		return &ValidationError{Name: "first_name", err: errors.New(`ent: missing required field "Lead.first_name"`)}
	}
	if _, ok := _c.mutation.ProfileURL(); !ok {
		return &ValidationError{Name: "profile_url", err: errors.New(`ent: missing required field "Lead.profile_url"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Lead.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := lead.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Lead.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Lead.created_at"`)}
	}
	if len(_c.mutation.CampaignIDs()) == 0 {
		return &ValidationError{Name: "campaign", err: errors.New(`ent: missing required edge "Lead.campaign"`)}
	}
	return nil
}

func (_c *LeadCreate) sqlSave(ctx context.Context) (*Lead, error) {
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
			return nil, fmt.Errorf("unexpected Lead.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LeadCreate) createSpec() (*Lead, *sqlgraph.CreateSpec) {
	var (
		_node = &Lead{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lead.Table, sqlgraph.NewFieldSpec(lead.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.FirstName(); ok {
		_spec.SetField(lead.FieldFirstName, field.TypeString, value)
		_node.FirstName = value
	}
	if value, ok := _c.mutation.LastName(); ok {
		_spec.SetField(lead.FieldLastName, field.TypeString, value)
		_node.LastName = value
	}
	if value, ok := _c.mutation.Company(); ok {
		_spec.SetField(lead.FieldCompany, field.TypeString, value)
		_node.Company = value
	}
	if value, ok := _c.mutation.ProfileURL(); ok {
		_spec.SetField(lead.FieldProfileURL, field.TypeString, value)
		_node.ProfileURL = value
	}
	if value, ok := _c.mutation.ProviderID(); ok {
		_spec.SetField(lead.FieldProviderID, field.TypeString, value)
		_node.ProviderID = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(lead.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(lead.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(lead.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(lead.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(lead.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.CampaignIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   lead.CampaignTable,
			Columns: []string{lead.CampaignColumn},
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
	if nodes := _c.mutation.StepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   lead.StepsTable,
			Columns: []string{lead.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(leadstep.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Lead.Create().
//		SetCampaignID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LeadUpsert) {
//			SetCampaignID(v+v).
//		}).
//		Exec(ctx)
func (_c *LeadCreate) OnConflict(opts ...sql.ConflictOption) *LeadUpsertOne {
	_c.conflict = opts
	return &LeadUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Lead.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LeadCreate) OnConflictColumns(columns ...string) *LeadUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LeadUpsertOne{
		create: _c,
	}
}

type (
	// LeadUpsertOne is the builder for "upsert"-ing
	//  one Lead node.
	LeadUpsertOne struct {
		create *LeadCreate
	}

	// LeadUpsert is the "OnConflict" setter.
	LeadUpsert struct {
		*sql.UpdateSet
	}
)

// SetFirstName sets the "first_name" field.
func (u *LeadUpsert) SetFirstName(v string) *LeadUpsert {
	u.Set(lead.FieldFirstName, v)
	return u
}

// UpdateFirstName sets the "first_name" field to the value that was provided on create.
func (u *LeadUpsert) UpdateFirstName() *LeadUpsert {
	u.SetExcluded(lead.FieldFirstName)
	return u
}

// SetLastName sets the "last_name" field.
func (u *LeadUpsert) SetLastName(v string) *LeadUpsert {
	u.Set(lead.FieldLastName, v)
	return u
}

// UpdateLastName sets the "last_name" field to the value that was provided on create.
func (u *LeadUpsert) UpdateLastName() *LeadUpsert {
	u.SetExcluded(lead.FieldLastName)
	return u
}

// ClearLastName clears the value of the "last_name" field.
func (u *LeadUpsert) ClearLastName() *LeadUpsert {
	u.SetNull(lead.FieldLastName)
	return u
}

// SetCompany sets the "company" field.
func (u *LeadUpsert) SetCompany(v string) *LeadUpsert {
	u.Set(lead.FieldCompany, v)
	return u
}

// UpdateCompany sets the "company" field to the value that was provided on create.
func (u *LeadUpsert) UpdateCompany() *LeadUpsert {
	u.SetExcluded(lead.FieldCompany)
	return u
}

// ClearCompany clears the value of the "company" field.
func (u *LeadUpsert) ClearCompany() *LeadUpsert {
	u.SetNull(lead.FieldCompany)
	return u
}

// SetProfileURL sets the "profile_url" field.
func (u *LeadUpsert) SetProfileURL(v string) *LeadUpsert {
	u.Set(lead.FieldProfileURL, v)
	return u
}

// UpdateProfileURL sets the "profile_url" field to the value that was provided on create.
func (u *LeadUpsert) UpdateProfileURL() *LeadUpsert {
	u.SetExcluded(lead.FieldProfileURL)
	return u
}

// SetProviderID sets the "provider_id" field.
func (u *LeadUpsert) SetProviderID(v string) *LeadUpsert {
	u.Set(lead.FieldProviderID, v)
	return u
}

// UpdateProviderID sets the "provider_id" field to the value that was provided on create.
func (u *LeadUpsert) UpdateProviderID() *LeadUpsert {
	u.SetExcluded(lead.FieldProviderID)
	return u
}

// ClearProviderID clears the value of the "provider_id" field.
func (u *LeadUpsert) ClearProviderID() *LeadUpsert {
	u.SetNull(lead.FieldProviderID)
	return u
}

// SetStatus sets the "status" field.
func (u *LeadUpsert) SetStatus(v lead.Status) *LeadUpsert {
	u.Set(lead.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *LeadUpsert) UpdateStatus() *LeadUpsert {
	u.SetExcluded(lead.FieldStatus)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *LeadUpsert) SetErrorMessage(v string) *LeadUpsert {
	u.Set(lead.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *LeadUpsert) UpdateErrorMessage() *LeadUpsert {
	u.SetExcluded(lead.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *LeadUpsert) ClearErrorMessage() *LeadUpsert {
	u.SetNull(lead.FieldErrorMessage)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *LeadUpsert) SetStartedAt(v time.Time) *LeadUpsert {
	u.Set(lead.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *LeadUpsert) UpdateStartedAt() *LeadUpsert {
	u.SetExcluded(lead.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *LeadUpsert) ClearStartedAt() *LeadUpsert {
	u.SetNull(lead.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *LeadUpsert) SetCompletedAt(v time.Time) *LeadUpsert {
	u.Set(lead.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *LeadUpsert) UpdateCompletedAt() *LeadUpsert {
	u.SetExcluded(lead.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *LeadUpsert) ClearCompletedAt() *LeadUpsert {
	u.SetNull(lead.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Lead.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(lead.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LeadUpsertOne) UpdateNewValues() *LeadUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(lead.FieldID)
		}
		if _, exists := u.create.mutation.CampaignID(); exists {
			s.SetIgnore(lead.FieldCampaignID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(lead.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Lead.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LeadUpsertOne) Ignore() *LeadUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LeadUpsertOne) DoNothing() *LeadUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LeadCreate.OnConflict
// documentation for more info.
func (u *LeadUpsertOne) Update(set func(*LeadUpsert)) *LeadUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LeadUpsert{UpdateSet: update})
	}))
	return u
}

// SetFirstName sets the "first_name" field.
func (u *LeadUpsertOne) SetFirstName(v string) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetFirstName(v)
	})
}

// UpdateFirstName sets the "first_name" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdateFirstName() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateFirstName()
	})
}

// SetLastName sets the "last_name" field.
func (u *LeadUpsertOne) SetLastName(v string) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetLastName(v)
	})
}

// UpdateLastName sets the "last_name" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdateLastName() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateLastName()
	})
}

// ClearLastName clears the value of the "last_name" field.
func (u *LeadUpsertOne) ClearLastName() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.ClearLastName()
	})
}

// SetCompany sets the "company" field.
func (u *LeadUpsertOne) SetCompany(v string) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetCompany(v)
	})
}

// UpdateCompany sets the "company" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdateCompany() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateCompany()
	})
}

// ClearCompany clears the value of the "company" field.
func (u *LeadUpsertOne) ClearCompany() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.ClearCompany()
	})
}

// SetProfileURL sets the "profile_url" field.
func (u *LeadUpsertOne) SetProfileURL(v string) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetProfileURL(v)
	})
}

// UpdateProfileURL sets the "profile_url" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdateProfileURL() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateProfileURL()
	})
}

// SetProviderID sets the "provider_id" field.
func (u *LeadUpsertOne) SetProviderID(v string) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetProviderID(v)
	})
}

// UpdateProviderID sets the "provider_id" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdateProviderID() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateProviderID()
	})
}

// ClearProviderID clears the value of the "provider_id" field.
func (u *LeadUpsertOne) ClearProviderID() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.ClearProviderID()
	})
}

// SetStatus sets the "status" field.
func (u *LeadUpsertOne) SetStatus(v lead.Status) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdateStatus() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateStatus()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *LeadUpsertOne) SetErrorMessage(v string) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdateErrorMessage() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *LeadUpsertOne) ClearErrorMessage() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.ClearErrorMessage()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *LeadUpsertOne) SetStartedAt(v time.Time) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdateStartedAt() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *LeadUpsertOne) ClearStartedAt() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *LeadUpsertOne) SetCompletedAt(v time.Time) *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *LeadUpsertOne) UpdateCompletedAt() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *LeadUpsertOne) ClearCompletedAt() *LeadUpsertOne {
	return u.Update(func(s *LeadUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *LeadUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LeadCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LeadUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LeadUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: LeadUpsertOne.ID is not supported by MySQL driver. Use LeadUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LeadUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LeadCreateBulk is the builder for creating many Lead entities in bulk.
type LeadCreateBulk struct {
	config
	err      error
	builders []*LeadCreate
	conflict []sql.ConflictOption
}

// Save creates the Lead entities in the database.
func (_c *LeadCreateBulk) Save(ctx context.Context) ([]*Lead, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Lead, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LeadMutation)
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
func (_c *LeadCreateBulk) SaveX(ctx context.Context) []*Lead {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LeadCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LeadCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Lead.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LeadUpsert) {
//			SetCampaignID(v+v).
//		}).
//		Exec(ctx)
func (_c *LeadCreateBulk) OnConflict(opts ...sql.ConflictOption) *LeadUpsertBulk {
	_c.conflict = opts
	return &LeadUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Lead.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LeadCreateBulk) OnConflictColumns(columns ...string) *LeadUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LeadUpsertBulk{
		create: _c,
	}
}

// LeadUpsertBulk is the builder for "upsert"-ing
// a bulk of Lead nodes.
type LeadUpsertBulk struct {
	create *LeadCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Lead.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(lead.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LeadUpsertBulk) UpdateNewValues() *LeadUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(lead.FieldID)
			}
			if _, exists := b.mutation.CampaignID(); exists {
				s.SetIgnore(lead.FieldCampaignID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(lead.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Lead.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LeadUpsertBulk) Ignore() *LeadUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LeadUpsertBulk) DoNothing() *LeadUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LeadCreateBulk.OnConflict
// documentation for more info.
func (u *LeadUpsertBulk) Update(set func(*LeadUpsert)) *LeadUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LeadUpsert{UpdateSet: update})
	}))
	return u
}

// SetFirstName sets the "first_name" field.
func (u *LeadUpsertBulk) SetFirstName(v string) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetFirstName(v)
	})
}

// UpdateFirstName sets the "first_name" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdateFirstName() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateFirstName()
	})
}

// SetLastName sets the "last_name" field.
func (u *LeadUpsertBulk) SetLastName(v string) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetLastName(v)
	})
}

// UpdateLastName sets the "last_name" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdateLastName() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateLastName()
	})
}

// ClearLastName clears the value of the "last_name" field.
func (u *LeadUpsertBulk) ClearLastName() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.ClearLastName()
	})
}

// SetCompany sets the "company" field.
func (u *LeadUpsertBulk) SetCompany(v string) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetCompany(v)
	})
}

// UpdateCompany sets the "company" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdateCompany() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateCompany()
	})
}

// ClearCompany clears the value of the "company" field.
func (u *LeadUpsertBulk) ClearCompany() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.ClearCompany()
	})
}

// SetProfileURL sets the "profile_url" field.
func (u *LeadUpsertBulk) SetProfileURL(v string) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetProfileURL(v)
	})
}

// UpdateProfileURL sets the "profile_url" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdateProfileURL() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateProfileURL()
	})
}

// SetProviderID sets the "provider_id" field.
func (u *LeadUpsertBulk) SetProviderID(v string) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetProviderID(v)
	})
}

// UpdateProviderID sets the "provider_id" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdateProviderID() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateProviderID()
	})
}

// ClearProviderID clears the value of the "provider_id" field.
func (u *LeadUpsertBulk) ClearProviderID() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.ClearProviderID()
	})
}

// SetStatus sets the "status" field.
func (u *LeadUpsertBulk) SetStatus(v lead.Status) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdateStatus() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateStatus()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *LeadUpsertBulk) SetErrorMessage(v string) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdateErrorMessage() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *LeadUpsertBulk) ClearErrorMessage() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.ClearErrorMessage()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *LeadUpsertBulk) SetStartedAt(v time.Time) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdateStartedAt() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *LeadUpsertBulk) ClearStartedAt() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *LeadUpsertBulk) SetCompletedAt(v time.Time) *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *LeadUpsertBulk) UpdateCompletedAt() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *LeadUpsertBulk) ClearCompletedAt() *LeadUpsertBulk {
	return u.Update(func(s *LeadUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *LeadUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the LeadCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LeadCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LeadUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
