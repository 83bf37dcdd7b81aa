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

// CampaignCreate is the builder for creating a Campaign entity.
type CampaignCreate struct {
	config
	mutation *CampaignMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetOrganizationID sets the "organization_id" field.
func (_c *CampaignCreate) SetOrganizationID(v string) *CampaignCreate {
	_c.mutation.SetOrganizationID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *CampaignCreate) SetName(v string) *CampaignCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetConnectedAccountID sets the "connected_account_id" field.
func (_c *CampaignCreate) SetConnectedAccountID(v string) *CampaignCreate {
	_c.mutation.SetConnectedAccountID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *CampaignCreate) SetStatus(v campaign.Status) *CampaignCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableStatus(v *campaign.Status) *CampaignCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetGraph sets the "graph" field.
func (_c *CampaignCreate) SetGraph(v string) *CampaignCreate {
	_c.mutation.SetGraph(v)
	return _c
}

// SetScheduleStart sets the "schedule_start" field.
func (_c *CampaignCreate) SetScheduleStart(v string) *CampaignCreate {
	_c.mutation.SetScheduleStart(v)
	return _c
}

// SetNillableScheduleStart sets the "schedule_start" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableScheduleStart(v *string) *CampaignCreate {
	if v != nil {
		_c.SetScheduleStart(*v)
	}
	return _c
}

// SetScheduleEnd sets the "schedule_end" field.
func (_c *CampaignCreate) SetScheduleEnd(v string) *CampaignCreate {
	_c.mutation.SetScheduleEnd(v)
	return _c
}

// SetNillableScheduleEnd sets the "schedule_end" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableScheduleEnd(v *string) *CampaignCreate {
	if v != nil {
		_c.SetScheduleEnd(*v)
	}
	return _c
}

// SetTimezone sets the "timezone" field.
func (_c *CampaignCreate) SetTimezone(v string) *CampaignCreate {
	_c.mutation.SetTimezone(v)
	return _c
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableTimezone(v *string) *CampaignCreate {
	if v != nil {
		_c.SetTimezone(*v)
	}
	return _c
}

// SetDailyLimit sets the "daily_limit" field.
func (_c *CampaignCreate) SetDailyLimit(v int) *CampaignCreate {
	_c.mutation.SetDailyLimit(v)
	return _c
}

// SetNillableDailyLimit sets the "daily_limit" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableDailyLimit(v *int) *CampaignCreate {
	if v != nil {
		_c.SetDailyLimit(*v)
	}
	return _c
}

// SetWeeklyLimit sets the "weekly_limit" field.
func (_c *CampaignCreate) SetWeeklyLimit(v int) *CampaignCreate {
	_c.mutation.SetWeeklyLimit(v)
	return _c
}

// SetNillableWeeklyLimit sets the "weekly_limit" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableWeeklyLimit(v *int) *CampaignCreate {
	if v != nil {
		_c.SetWeeklyLimit(*v)
	}
	return _c
}

// SetSentDay sets the "sent_day" field.
func (_c *CampaignCreate) SetSentDay(v int) *CampaignCreate {
	_c.mutation.SetSentDay(v)
	return _c
}

// SetNillableSentDay sets the "sent_day" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableSentDay(v *int) *CampaignCreate {
	if v != nil {
		_c.SetSentDay(*v)
	}
	return _c
}

// SetSentWeek sets the "sent_week" field.
func (_c *CampaignCreate) SetSentWeek(v int) *CampaignCreate {
	_c.mutation.SetSentWeek(v)
	return _c
}

// SetNillableSentWeek sets the "sent_week" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableSentWeek(v *int) *CampaignCreate {
	if v != nil {
		_c.SetSentWeek(*v)
	}
	return _c
}

// SetLastDayResetAt sets the "last_day_reset_at" field.
func (_c *CampaignCreate) SetLastDayResetAt(v time.Time) *CampaignCreate {
	_c.mutation.SetLastDayResetAt(v)
	return _c
}

// SetNillableLastDayResetAt sets the "last_day_reset_at" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableLastDayResetAt(v *time.Time) *CampaignCreate {
	if v != nil {
		_c.SetLastDayResetAt(*v)
	}
	return _c
}

// SetLastWeekResetAt sets the "last_week_reset_at" field.
func (_c *CampaignCreate) SetLastWeekResetAt(v time.Time) *CampaignCreate {
	_c.mutation.SetLastWeekResetAt(v)
	return _c
}

// SetNillableLastWeekResetAt sets the "last_week_reset_at" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableLastWeekResetAt(v *time.Time) *CampaignCreate {
	if v != nil {
		_c.SetLastWeekResetAt(*v)
	}
	return _c
}

// SetPauseReason sets the "pause_reason" field.
func (_c *CampaignCreate) SetPauseReason(v string) *CampaignCreate {
	_c.mutation.SetPauseReason(v)
	return _c
}

// SetNillablePauseReason sets the "pause_reason" field if the given value is not nil.
func (_c *CampaignCreate) SetNillablePauseReason(v *string) *CampaignCreate {
	if v != nil {
		_c.SetPauseReason(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *CampaignCreate) SetErrorMessage(v string) *CampaignCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableErrorMessage(v *string) *CampaignCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CampaignCreate) SetCreatedAt(v time.Time) *CampaignCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableCreatedAt(v *time.Time) *CampaignCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *CampaignCreate) SetStartedAt(v time.Time) *CampaignCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableStartedAt(v *time.Time) *CampaignCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *CampaignCreate) SetCompletedAt(v time.Time) *CampaignCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableCompletedAt(v *time.Time) *CampaignCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *CampaignCreate) SetDeletedAt(v time.Time) *CampaignCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableDeletedAt(v *time.Time) *CampaignCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CampaignCreate) SetID(v string) *CampaignCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddLeadIDs adds the "leads" edge to the Lead entity by IDs.
func (_c *CampaignCreate) AddLeadIDs(ids ...string) *CampaignCreate {
	_c.mutation.AddLeadIDs(ids...)
	return _c
}

// AddLeads adds the "leads" edges to the Lead entity.
func (_c *CampaignCreate) AddLeads(v ...*Lead) *CampaignCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLeadIDs(ids...)
}

// AddStepIDs adds the "steps" edge to the LeadStep entity by IDs.
func (_c *CampaignCreate) AddStepIDs(ids ...string) *CampaignCreate {
	_c.mutation.AddStepIDs(ids...)
	return _c
}

// AddSteps adds the "steps" edges to the LeadStep entity.
func (_c *CampaignCreate) AddSteps(v ...*LeadStep) *CampaignCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStepIDs(ids...)
}

// Mutation returns the CampaignMutation object of the builder.
func (_c *CampaignCreate) Mutation() *CampaignMutation {
	return _c.mutation
}

// Save creates the Campaign in the database.
func (_c *CampaignCreate) Save(ctx context.Context) (*Campaign, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CampaignCreate) SaveX(ctx context.Context) *Campaign {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CampaignCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CampaignCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CampaignCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := campaign.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Timezone(); !ok {
		v := campaign.DefaultTimezone
		_c.mutation.SetTimezone(v)
	}
	if _, ok := _c.mutation.DailyLimit(); !ok {
		v := campaign.DefaultDailyLimit
		_c.mutation.SetDailyLimit(v)
	}
	if _, ok := _c.mutation.WeeklyLimit(); !ok {
		v := campaign.DefaultWeeklyLimit
		_c.mutation.SetWeeklyLimit(v)
	}
	if _, ok := _c.mutation.SentDay(); !ok {
		v := campaign.DefaultSentDay
		_c.mutation.SetSentDay(v)
	}
	if _, ok := _c.mutation.SentWeek(); !ok {
		v := campaign.DefaultSentWeek
		_c.mutation.SetSentWeek(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := campaign.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CampaignCreate) check() error {
	if _, ok := _c.mutation.OrganizationID(); !ok {
		return &ValidationError{Name: "organization_id", err: errors.New(`ent: missing required field "Campaign.organization_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Campaign.name"`)}
	}
	if _, ok := _c.mutation.ConnectedAccountID(); !ok {
		return &ValidationError{Name: "connected_account_id", err: errors.New(`ent: missing required field "Campaign.connected_account_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Campaign.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := campaign.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Campaign.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Graph(); !ok {
		return &ValidationError{Name: "graph", err: errors.New(`ent: missing required field "Campaign.graph"`)}
	}
	if _, ok := _c.mutation.Timezone(); !ok {
		return &ValidationError{Name: "timezone", err: errors.New(`ent: missing required field "Campaign.timezone"`)}
	}
	if _, ok := _c.mutation.DailyLimit(); !ok {
		return &ValidationError{Name: "daily_limit", err: errors.New(`ent: missing required field "Campaign.daily_limit"`)}
	}
	if _, ok := _c.mutation.WeeklyLimit(); !ok {
		return &ValidationError{Name: "weekly_limit", err: errors.New(`ent: missing required field "Campaign.weekly_limit"`)}
	}
	if _, ok := _c.mutation.SentDay(); !ok {
		return &ValidationError{Name: "sent_day", err: errors.New(`ent: missing required field "Campaign.sent_day"`)}
	}
	if _, ok := _c.mutation.SentWeek(); !ok {
		return &ValidationError{Name: "sent_week", err: errors.New(`ent: missing required field "Campaign.sent_week"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Campaign.created_at"`)}
	}
	return nil
}

func (_c *CampaignCreate) sqlSave(ctx context.Context) (*Campaign, error) {
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
			return nil, fmt.Errorf("unexpected Campaign.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CampaignCreate) createSpec() (*Campaign, *sqlgraph.CreateSpec) {
	var (
		_node = &Campaign{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(campaign.Table, sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OrganizationID(); ok {
		_spec.SetField(campaign.FieldOrganizationID, field.TypeString, value)
		_node.OrganizationID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(campaign.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.ConnectedAccountID(); ok {
		_spec.SetField(campaign.FieldConnectedAccountID, field.TypeString, value)
		_node.ConnectedAccountID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(campaign.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Graph(); ok {
		_spec.SetField(campaign.FieldGraph, field.TypeString, value)
		_node.Graph = value
	}
	if value, ok := _c.mutation.ScheduleStart(); ok {
		_spec.SetField(campaign.FieldScheduleStart, field.TypeString, value)
		_node.ScheduleStart = &value
	}
	if value, ok := _c.mutation.ScheduleEnd(); ok {
		_spec.SetField(campaign.FieldScheduleEnd, field.TypeString, value)
		_node.ScheduleEnd = &value
	}
	if value, ok := _c.mutation.Timezone(); ok {
		_spec.SetField(campaign.FieldTimezone, field.TypeString, value)
		_node.Timezone = value
	}
	if value, ok := _c.mutation.DailyLimit(); ok {
		_spec.SetField(campaign.FieldDailyLimit, field.TypeInt, value)
		_node.DailyLimit = value
	}
	if value, ok := _c.mutation.WeeklyLimit(); ok {
		_spec.SetField(campaign.FieldWeeklyLimit, field.TypeInt, value)
		_node.WeeklyLimit = value
	}
	if value, ok := _c.mutation.SentDay(); ok {
		_spec.SetField(campaign.FieldSentDay, field.TypeInt, value)
		_node.SentDay = value
	}
	if value, ok := _c.mutation.SentWeek(); ok {
		_spec.SetField(campaign.FieldSentWeek, field.TypeInt, value)
		_node.SentWeek = value
	}
	if value, ok := _c.mutation.LastDayResetAt(); ok {
		_spec.SetField(campaign.FieldLastDayResetAt, field.TypeTime, value)
		_node.LastDayResetAt = &value
	}
	if value, ok := _c.mutation.LastWeekResetAt(); ok {
		_spec.SetField(campaign.FieldLastWeekResetAt, field.TypeTime, value)
		_node.LastWeekResetAt = &value
	}
	if value, ok := _c.mutation.PauseReason(); ok {
		_spec.SetField(campaign.FieldPauseReason, field.TypeString, value)
		_node.PauseReason = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(campaign.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(campaign.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(campaign.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(campaign.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(campaign.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if nodes := _c.mutation.LeadsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.LeadsTable,
			Columns: []string{campaign.LeadsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.StepsTable,
			Columns: []string{campaign.StepsColumn},
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
//	client.Campaign.Create().
//		SetOrganizationID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CampaignUpsert) {
//			SetOrganizationID(v+v).
//		}).
//		Exec(ctx)
func (_c *CampaignCreate) OnConflict(opts ...sql.ConflictOption) *CampaignUpsertOne {
	_c.conflict = opts
	return &CampaignUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Campaign.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CampaignCreate) OnConflictColumns(columns ...string) *CampaignUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CampaignUpsertOne{
		create: _c,
	}
}

type (
	// CampaignUpsertOne is the builder for "upsert"-ing
	//  one Campaign node.
	CampaignUpsertOne struct {
		create *CampaignCreate
	}

	// CampaignUpsert is the "OnConflict" setter.
	CampaignUpsert struct {
		*sql.UpdateSet
	}
)

// SetOrganizationID sets the "organization_id" field.
func (u *CampaignUpsert) SetOrganizationID(v string) *CampaignUpsert {
	u.Set(campaign.FieldOrganizationID, v)
	return u
}

// UpdateOrganizationID sets the "organization_id" field to the value that was provided on create.
func (u *CampaignUpsert) UpdateOrganizationID() *CampaignUpsert {
	u.SetExcluded(campaign.FieldOrganizationID)
	return u
}

// SetName sets the "name" field.
func (u *CampaignUpsert) SetName(v string) *CampaignUpsert {
	u.Set(campaign.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *CampaignUpsert) UpdateName() *CampaignUpsert {
	u.SetExcluded(campaign.FieldName)
	return u
}

// SetConnectedAccountID sets the "connected_account_id" field.
func (u *CampaignUpsert) SetConnectedAccountID(v string) *CampaignUpsert {
	u.Set(campaign.FieldConnectedAccountID, v)
	return u
}

// UpdateConnectedAccountID sets the "connected_account_id" field to the value that was provided on create.
func (u *CampaignUpsert) UpdateConnectedAccountID() *CampaignUpsert {
	u.SetExcluded(campaign.FieldConnectedAccountID)
	return u
}

// SetStatus sets the "status" field.
func (u *CampaignUpsert) SetStatus(v campaign.Status) *CampaignUpsert {
	u.Set(campaign.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CampaignUpsert) UpdateStatus() *CampaignUpsert {
	u.SetExcluded(campaign.FieldStatus)
	return u
}

// SetGraph sets the "graph" field.
func (u *CampaignUpsert) SetGraph(v string) *CampaignUpsert {
	u.Set(campaign.FieldGraph, v)
	return u
}

// UpdateGraph sets the "graph" field to the value that was provided on create.
func (u *CampaignUpsert) UpdateGraph() *CampaignUpsert {
	u.SetExcluded(campaign.FieldGraph)
	return u
}

// SetScheduleStart sets the "schedule_start" field.
func (u *CampaignUpsert) SetScheduleStart(v string) *CampaignUpsert {
	u.Set(campaign.FieldScheduleStart, v)
	return u
}

// UpdateScheduleStart sets the "schedule_start" field to the value that was provided on create.
func (u *CampaignUpsert) UpdateScheduleStart() *CampaignUpsert {
	u.SetExcluded(campaign.FieldScheduleStart)
	return u
}

// ClearScheduleStart clears the value of the "schedule_start" field.
func (u *CampaignUpsert) ClearScheduleStart() *CampaignUpsert {
	u.SetNull(campaign.FieldScheduleStart)
	return u
}

// SetScheduleEnd sets the "schedule_end" field.
func (u *CampaignUpsert) SetScheduleEnd(v string) *CampaignUpsert {
	u.Set(campaign.FieldScheduleEnd, v)
	return u
}

// UpdateScheduleEnd sets the "schedule_end" field to the value that was provided on create.
func (u *CampaignUpsert) UpdateScheduleEnd() *CampaignUpsert {
	u.SetExcluded(campaign.FieldScheduleEnd)
	return u
}

// ClearScheduleEnd clears the value of the "schedule_end" field.
func (u *CampaignUpsert) ClearScheduleEnd() *CampaignUpsert {
	u.SetNull(campaign.FieldScheduleEnd)
	return u
}

// SetTimezone sets the "timezone" field.
func (u *CampaignUpsert) SetTimezone(v string) *CampaignUpsert {
	u.Set(campaign.FieldTimezone, v)
	return u
}

// UpdateTimezone sets the "timezone" field to the value that was provided on create.
func (u *CampaignUpsert) UpdateTimezone() *CampaignUpsert {
	u.SetExcluded(campaign.FieldTimezone)
	return u
}

// SetDailyLimit sets the "daily_limit" field.
func (u *CampaignUpsert) SetDailyLimit(v int) *CampaignUpsert {
	u.Set(campaign.FieldDailyLimit, v)
	return u
}

// UpdateDailyLimit sets the "daily_limit" field to the value that was provided on create.
func (u *CampaignUpsert) UpdateDailyLimit() *CampaignUpsert {
	u.SetExcluded(campaign.FieldDailyLimit)
	return u
}

// AddDailyLimit adds v to the "daily_limit" field.
func (u *CampaignUpsert) AddDailyLimit(v int) *CampaignUpsert {
	u.Add(campaign.FieldDailyLimit, v)
	return u
}

// SetWeeklyLimit sets the "weekly_limit" field.
func (u *CampaignUpsert) SetWeeklyLimit(v int) *CampaignUpsert {
	u.Set(campaign.FieldWeeklyLimit, v)
	return u
}

// UpdateWeeklyLimit sets the "weekly_limit" field to the value that was provided on create.
func (u *CampaignUpsert) UpdateWeeklyLimit() *CampaignUpsert {
	u.SetExcluded(campaign.FieldWeeklyLimit)
	return u
}

// AddWeeklyLimit adds v to the "weekly_limit" field.
func (u *CampaignUpsert) AddWeeklyLimit(v int) *CampaignUpsert {
	u.Add(campaign.FieldWeeklyLimit, v)
	return u
}

// SetSentDay sets the "sent_day" field.
func (u *CampaignUpsert) SetSentDay(v int) *CampaignUpsert {
	u.Set(campaign.FieldSentDay, v)
	return u
}

// UpdateSentDay sets the "sent_day" field to the value that was provided on create.
func (u *CampaignUpsert) UpdateSentDay() *CampaignUpsert {
	u.SetExcluded(campaign.FieldSentDay)
	return u
}

// AddSentDay adds v to the "sent_day" field.
func (u *CampaignUpsert) AddSentDay(v int) *CampaignUpsert {
	u.Add(campaign.FieldSentDay, v)
	return u
}

// SetSentWeek sets the "sent_week" field.
func (u *CampaignUpsert) SetSentWeek(v int) *CampaignUpsert {
	u.Set(campaign.FieldSentWeek, v)
	return u
}

// UpdateSentWeek sets the "sent_week" field to the value that was provided on create.
func (u *CampaignUpsert) UpdateSentWeek() *CampaignUpsert {
	u.SetExcluded(campaign.FieldSentWeek)
	return u
}

// AddSentWeek adds v to the "sent_week" field.
func (u *CampaignUpsert) AddSentWeek(v int) *CampaignUpsert {
	u.Add(campaign.FieldSentWeek, v)
	return u
}

// SetLastDayResetAt sets the "last_day_reset_at" field.
func (u *CampaignUpsert) SetLastDayResetAt(v time.Time) *CampaignUpsert {
	u.Set(campaign.FieldLastDayResetAt, v)
	return u
}

// UpdateLastDayResetAt sets the "last_day_reset_at" field to the value that was provided on create.
func (u *CampaignUpsert) UpdateLastDayResetAt() *CampaignUpsert {
	u.SetExcluded(campaign.FieldLastDayResetAt)
	return u
}

// ClearLastDayResetAt clears the value of the "last_day_reset_at" field.
func (u *CampaignUpsert) ClearLastDayResetAt() *CampaignUpsert {
	u.SetNull(campaign.FieldLastDayResetAt)
	return u
}

// SetLastWeekResetAt sets the "last_week_reset_at" field.
func (u *CampaignUpsert) SetLastWeekResetAt(v time.Time) *CampaignUpsert {
	u.Set(campaign.FieldLastWeekResetAt, v)
	return u
}

// UpdateLastWeekResetAt sets the "last_week_reset_at" field to the value that was provided on create.
func (u *CampaignUpsert) UpdateLastWeekResetAt() *CampaignUpsert {
	u.SetExcluded(campaign.FieldLastWeekResetAt)
	return u
}

// ClearLastWeekResetAt clears the value of the "last_week_reset_at" field.
func (u *CampaignUpsert) ClearLastWeekResetAt() *CampaignUpsert {
	u.SetNull(campaign.FieldLastWeekResetAt)
	return u
}

// SetPauseReason sets the "pause_reason" field.
func (u *CampaignUpsert) SetPauseReason(v string) *CampaignUpsert {
	u.Set(campaign.FieldPauseReason, v)
	return u
}

// UpdatePauseReason sets the "pause_reason" field to the value that was provided on create.
func (u *CampaignUpsert) UpdatePauseReason() *CampaignUpsert {
	u.SetExcluded(campaign.FieldPauseReason)
	return u
}

// ClearPauseReason clears the value of the "pause_reason" field.
func (u *CampaignUpsert) ClearPauseReason() *CampaignUpsert {
	u.SetNull(campaign.FieldPauseReason)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *CampaignUpsert) SetErrorMessage(v string) *CampaignUpsert {
	u.Set(campaign.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *CampaignUpsert) UpdateErrorMessage() *CampaignUpsert {
	u.SetExcluded(campaign.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *CampaignUpsert) ClearErrorMessage() *CampaignUpsert {
	u.SetNull(campaign.FieldErrorMessage)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *CampaignUpsert) SetStartedAt(v time.Time) *CampaignUpsert {
	u.Set(campaign.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *CampaignUpsert) UpdateStartedAt() *CampaignUpsert {
	u.SetExcluded(campaign.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *CampaignUpsert) ClearStartedAt() *CampaignUpsert {
	u.SetNull(campaign.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *CampaignUpsert) SetCompletedAt(v time.Time) *CampaignUpsert {
	u.Set(campaign.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *CampaignUpsert) UpdateCompletedAt() *CampaignUpsert {
	u.SetExcluded(campaign.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *CampaignUpsert) ClearCompletedAt() *CampaignUpsert {
	u.SetNull(campaign.FieldCompletedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *CampaignUpsert) SetDeletedAt(v time.Time) *CampaignUpsert {
	u.Set(campaign.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *CampaignUpsert) UpdateDeletedAt() *CampaignUpsert {
	u.SetExcluded(campaign.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *CampaignUpsert) ClearDeletedAt() *CampaignUpsert {
	u.SetNull(campaign.FieldDeletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Campaign.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(campaign.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CampaignUpsertOne) UpdateNewValues() *CampaignUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(campaign.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(campaign.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Campaign.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CampaignUpsertOne) Ignore() *CampaignUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CampaignUpsertOne) DoNothing() *CampaignUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CampaignCreate.OnConflict
// documentation for more info.
func (u *CampaignUpsertOne) Update(set func(*CampaignUpsert)) *CampaignUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CampaignUpsert{UpdateSet: update})
	}))
	return u
}

// SetOrganizationID sets the "organization_id" field.
func (u *CampaignUpsertOne) SetOrganizationID(v string) *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.SetOrganizationID(v)
	})
}

// UpdateOrganizationID sets the "organization_id" field to the value that was provided on create.
func (u *CampaignUpsertOne) UpdateOrganizationID() *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateOrganizationID()
	})
}

// SetName sets the "name" field.
func (u *CampaignUpsertOne) SetName(v string) *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *CampaignUpsertOne) UpdateName() *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateName()
	})
}

// SetConnectedAccountID sets the "connected_account_id" field.
func (u *CampaignUpsertOne) SetConnectedAccountID(v string) *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.SetConnectedAccountID(v)
	})
}

// UpdateConnectedAccountID sets the "connected_account_id" field to the value that was provided on create.
func (u *CampaignUpsertOne) UpdateConnectedAccountID() *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateConnectedAccountID()
	})
}

// SetStatus sets the "status" field.
func (u *CampaignUpsertOne) SetStatus(v campaign.Status) *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CampaignUpsertOne) UpdateStatus() *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateStatus()
	})
}

// SetGraph sets the "graph" field.
func (u *CampaignUpsertOne) SetGraph(v string) *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.SetGraph(v)
	})
}

// UpdateGraph sets the "graph" field to the value that was provided on create.
func (u *CampaignUpsertOne) UpdateGraph() *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateGraph()
	})
}

// SetScheduleStart sets the "schedule_start" field.
func (u *CampaignUpsertOne) SetScheduleStart(v string) *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.SetScheduleStart(v)
	})
}

// UpdateScheduleStart sets the "schedule_start" field to the value that was provided on create.
func (u *CampaignUpsertOne) UpdateScheduleStart() *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateScheduleStart()
	})
}

// ClearScheduleStart clears the value of the "schedule_start" field.
func (u *CampaignUpsertOne) ClearScheduleStart() *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.ClearScheduleStart()
	})
}

// SetScheduleEnd sets the "schedule_end" field.
func (u *CampaignUpsertOne) SetScheduleEnd(v string) *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.SetScheduleEnd(v)
	})
}

// UpdateScheduleEnd sets the "schedule_end" field to the value that was provided on create.
func (u *CampaignUpsertOne) UpdateScheduleEnd() *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateScheduleEnd()
	})
}

// ClearScheduleEnd clears the value of the "schedule_end" field.
func (u *CampaignUpsertOne) ClearScheduleEnd() *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.ClearScheduleEnd()
	})
}

// SetTimezone sets the "timezone" field.
func (u *CampaignUpsertOne) SetTimezone(v string) *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.SetTimezone(v)
	})
}

// UpdateTimezone sets the "timezone" field to the value that was provided on create.
func (u *CampaignUpsertOne) UpdateTimezone() *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateTimezone()
	})
}

// SetDailyLimit sets the "daily_limit" field.
func (u *CampaignUpsertOne) SetDailyLimit(v int) *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.SetDailyLimit(v)
	})
}

// AddDailyLimit adds v to the "daily_limit" field.
func (u *CampaignUpsertOne) AddDailyLimit(v int) *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.AddDailyLimit(v)
	})
}

// UpdateDailyLimit sets the "daily_limit" field to the value that was provided on create.
func (u *CampaignUpsertOne) UpdateDailyLimit() *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateDailyLimit()
	})
}

// SetWeeklyLimit sets the "weekly_limit" field.
func (u *CampaignUpsertOne) SetWeeklyLimit(v int) *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.SetWeeklyLimit(v)
	})
}

// AddWeeklyLimit adds v to the "weekly_limit" field.
func (u *CampaignUpsertOne) AddWeeklyLimit(v int) *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.AddWeeklyLimit(v)
	})
}

// UpdateWeeklyLimit sets the "weekly_limit" field to the value that was provided on create.
func (u *CampaignUpsertOne) UpdateWeeklyLimit() *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateWeeklyLimit()
	})
}

// SetSentDay sets the "sent_day" field.
func (u *CampaignUpsertOne) SetSentDay(v int) *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.SetSentDay(v)
	})
}

// AddSentDay adds v to the "sent_day" field.
func (u *CampaignUpsertOne) AddSentDay(v int) *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.AddSentDay(v)
	})
}

// UpdateSentDay sets the "sent_day" field to the value that was provided on create.
func (u *CampaignUpsertOne) UpdateSentDay() *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateSentDay()
	})
}

// SetSentWeek sets the "sent_week" field.
func (u *CampaignUpsertOne) SetSentWeek(v int) *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.SetSentWeek(v)
	})
}

// AddSentWeek adds v to the "sent_week" field.
func (u *CampaignUpsertOne) AddSentWeek(v int) *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.AddSentWeek(v)
	})
}

// UpdateSentWeek sets the "sent_week" field to the value that was provided on create.
func (u *CampaignUpsertOne) UpdateSentWeek() *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateSentWeek()
	})
}

// SetLastDayResetAt sets the "last_day_reset_at" field.
func (u *CampaignUpsertOne) SetLastDayResetAt(v time.Time) *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.SetLastDayResetAt(v)
	})
}

// UpdateLastDayResetAt sets the "last_day_reset_at" field to the value that was provided on create.
func (u *CampaignUpsertOne) UpdateLastDayResetAt() *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateLastDayResetAt()
	})
}

// ClearLastDayResetAt clears the value of the "last_day_reset_at" field.
func (u *CampaignUpsertOne) ClearLastDayResetAt() *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.ClearLastDayResetAt()
	})
}

// SetLastWeekResetAt sets the "last_week_reset_at" field.
func (u *CampaignUpsertOne) SetLastWeekResetAt(v time.Time) *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.SetLastWeekResetAt(v)
	})
}

// UpdateLastWeekResetAt sets the "last_week_reset_at" field to the value that was provided on create.
func (u *CampaignUpsertOne) UpdateLastWeekResetAt() *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateLastWeekResetAt()
	})
}

// ClearLastWeekResetAt clears the value of the "last_week_reset_at" field.
func (u *CampaignUpsertOne) ClearLastWeekResetAt() *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.ClearLastWeekResetAt()
	})
}

// SetPauseReason sets the "pause_reason" field.
func (u *CampaignUpsertOne) SetPauseReason(v string) *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.SetPauseReason(v)
	})
}

// UpdatePauseReason sets the "pause_reason" field to the value that was provided on create.
func (u *CampaignUpsertOne) UpdatePauseReason() *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdatePauseReason()
	})
}

// ClearPauseReason clears the value of the "pause_reason" field.
func (u *CampaignUpsertOne) ClearPauseReason() *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.ClearPauseReason()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *CampaignUpsertOne) SetErrorMessage(v string) *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *CampaignUpsertOne) UpdateErrorMessage() *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *CampaignUpsertOne) ClearErrorMessage() *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.ClearErrorMessage()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *CampaignUpsertOne) SetStartedAt(v time.Time) *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *CampaignUpsertOne) UpdateStartedAt() *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *CampaignUpsertOne) ClearStartedAt() *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *CampaignUpsertOne) SetCompletedAt(v time.Time) *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *CampaignUpsertOne) UpdateCompletedAt() *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *CampaignUpsertOne) ClearCompletedAt() *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.ClearCompletedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *CampaignUpsertOne) SetDeletedAt(v time.Time) *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *CampaignUpsertOne) UpdateDeletedAt() *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *CampaignUpsertOne) ClearDeletedAt() *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.ClearDeletedAt()
	})
}

// Exec executes the query.
func (u *CampaignUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CampaignCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CampaignUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CampaignUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CampaignUpsertOne.ID is not supported by MySQL driver. Use CampaignUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CampaignUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CampaignCreateBulk is the builder for creating many Campaign entities in bulk.
type CampaignCreateBulk struct {
	config
	err      error
	builders []*CampaignCreate
	conflict []sql.ConflictOption
}

// Save creates the Campaign entities in the database.
func (_c *CampaignCreateBulk) Save(ctx context.Context) ([]*Campaign, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Campaign, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CampaignMutation)
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
func (_c *CampaignCreateBulk) SaveX(ctx context.Context) []*Campaign {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CampaignCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CampaignCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Campaign.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CampaignUpsert) {
//			SetOrganizationID(v+v).
//		}).
//		Exec(ctx)
func (_c *CampaignCreateBulk) OnConflict(opts ...sql.ConflictOption) *CampaignUpsertBulk {
	_c.conflict = opts
	return &CampaignUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Campaign.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CampaignCreateBulk) OnConflictColumns(columns ...string) *CampaignUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CampaignUpsertBulk{
		create: _c,
	}
}

// CampaignUpsertBulk is the builder for "upsert"-ing
// a bulk of Campaign nodes.
type CampaignUpsertBulk struct {
	create *CampaignCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Campaign.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(campaign.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CampaignUpsertBulk) UpdateNewValues() *CampaignUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(campaign.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(campaign.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Campaign.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CampaignUpsertBulk) Ignore() *CampaignUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CampaignUpsertBulk) DoNothing() *CampaignUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CampaignCreateBulk.OnConflict
// documentation for more info.
func (u *CampaignUpsertBulk) Update(set func(*CampaignUpsert)) *CampaignUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CampaignUpsert{UpdateSet: update})
	}))
	return u
}

// SetOrganizationID sets the "organization_id" field.
func (u *CampaignUpsertBulk) SetOrganizationID(v string) *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.SetOrganizationID(v)
	})
}

// UpdateOrganizationID sets the "organization_id" field to the value that was provided on create.
func (u *CampaignUpsertBulk) UpdateOrganizationID() *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateOrganizationID()
	})
}

// SetName sets the "name" field.
func (u *CampaignUpsertBulk) SetName(v string) *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *CampaignUpsertBulk) UpdateName() *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateName()
	})
}

// SetConnectedAccountID sets the "connected_account_id" field.
func (u *CampaignUpsertBulk) SetConnectedAccountID(v string) *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.SetConnectedAccountID(v)
	})
}

// UpdateConnectedAccountID sets the "connected_account_id" field to the value that was provided on create.
func (u *CampaignUpsertBulk) UpdateConnectedAccountID() *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateConnectedAccountID()
	})
}

// SetStatus sets the "status" field.
func (u *CampaignUpsertBulk) SetStatus(v campaign.Status) *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CampaignUpsertBulk) UpdateStatus() *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateStatus()
	})
}

// SetGraph sets the "graph" field.
func (u *CampaignUpsertBulk) SetGraph(v string) *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.SetGraph(v)
	})
}

// UpdateGraph sets the "graph" field to the value that was provided on create.
func (u *CampaignUpsertBulk) UpdateGraph() *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateGraph()
	})
}

// SetScheduleStart sets the "schedule_start" field.
func (u *CampaignUpsertBulk) SetScheduleStart(v string) *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.SetScheduleStart(v)
	})
}

// UpdateScheduleStart sets the "schedule_start" field to the value that was provided on create.
func (u *CampaignUpsertBulk) UpdateScheduleStart() *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateScheduleStart()
	})
}

// ClearScheduleStart clears the value of the "schedule_start" field.
func (u *CampaignUpsertBulk) ClearScheduleStart() *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.ClearScheduleStart()
	})
}

// SetScheduleEnd sets the "schedule_end" field.
func (u *CampaignUpsertBulk) SetScheduleEnd(v string) *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.SetScheduleEnd(v)
	})
}

// UpdateScheduleEnd sets the "schedule_end" field to the value that was provided on create.
func (u *CampaignUpsertBulk) UpdateScheduleEnd() *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateScheduleEnd()
	})
}

// ClearScheduleEnd clears the value of the "schedule_end" field.
func (u *CampaignUpsertBulk) ClearScheduleEnd() *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.ClearScheduleEnd()
	})
}

// SetTimezone sets the "timezone" field.
func (u *CampaignUpsertBulk) SetTimezone(v string) *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.SetTimezone(v)
	})
}

// UpdateTimezone sets the "timezone" field to the value that was provided on create.
func (u *CampaignUpsertBulk) UpdateTimezone() *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateTimezone()
	})
}

// SetDailyLimit sets the "daily_limit" field.
func (u *CampaignUpsertBulk) SetDailyLimit(v int) *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.SetDailyLimit(v)
	})
}

// AddDailyLimit adds v to the "daily_limit" field.
func (u *CampaignUpsertBulk) AddDailyLimit(v int) *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.AddDailyLimit(v)
	})
}

// UpdateDailyLimit sets the "daily_limit" field to the value that was provided on create.
func (u *CampaignUpsertBulk) UpdateDailyLimit() *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateDailyLimit()
	})
}

// SetWeeklyLimit sets the "weekly_limit" field.
func (u *CampaignUpsertBulk) SetWeeklyLimit(v int) *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.SetWeeklyLimit(v)
	})
}

// AddWeeklyLimit adds v to the "weekly_limit" field.
func (u *CampaignUpsertBulk) AddWeeklyLimit(v int) *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.AddWeeklyLimit(v)
	})
}

// UpdateWeeklyLimit sets the "weekly_limit" field to the value that was provided on create.
func (u *CampaignUpsertBulk) UpdateWeeklyLimit() *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateWeeklyLimit()
	})
}

// SetSentDay sets the "sent_day" field.
func (u *CampaignUpsertBulk) SetSentDay(v int) *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.SetSentDay(v)
	})
}

// AddSentDay adds v to the "sent_day" field.
func (u *CampaignUpsertBulk) AddSentDay(v int) *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.AddSentDay(v)
	})
}

// UpdateSentDay sets the "sent_day" field to the value that was provided on create.
func (u *CampaignUpsertBulk) UpdateSentDay() *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateSentDay()
	})
}

// SetSentWeek sets the "sent_week" field.
func (u *CampaignUpsertBulk) SetSentWeek(v int) *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.SetSentWeek(v)
	})
}

// AddSentWeek adds v to the "sent_week" field.
func (u *CampaignUpsertBulk) AddSentWeek(v int) *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.AddSentWeek(v)
	})
}

// UpdateSentWeek sets the "sent_week" field to the value that was provided on create.
func (u *CampaignUpsertBulk) UpdateSentWeek() *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateSentWeek()
	})
}

// SetLastDayResetAt sets the "last_day_reset_at" field.
func (u *CampaignUpsertBulk) SetLastDayResetAt(v time.Time) *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.SetLastDayResetAt(v)
	})
}

// UpdateLastDayResetAt sets the "last_day_reset_at" field to the value that was provided on create.
func (u *CampaignUpsertBulk) UpdateLastDayResetAt() *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateLastDayResetAt()
	})
}

// ClearLastDayResetAt clears the value of the "last_day_reset_at" field.
func (u *CampaignUpsertBulk) ClearLastDayResetAt() *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.ClearLastDayResetAt()
	})
}

// SetLastWeekResetAt sets the "last_week_reset_at" field.
func (u *CampaignUpsertBulk) SetLastWeekResetAt(v time.Time) *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.SetLastWeekResetAt(v)
	})
}

// UpdateLastWeekResetAt sets the "last_week_reset_at" field to the value that was provided on create.
func (u *CampaignUpsertBulk) UpdateLastWeekResetAt() *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateLastWeekResetAt()
	})
}

// ClearLastWeekResetAt clears the value of the "last_week_reset_at" field.
func (u *CampaignUpsertBulk) ClearLastWeekResetAt() *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.ClearLastWeekResetAt()
	})
}

// SetPauseReason sets the "pause_reason" field.
func (u *CampaignUpsertBulk) SetPauseReason(v string) *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.SetPauseReason(v)
	})
}

// UpdatePauseReason sets the "pause_reason" field to the value that was provided on create.
func (u *CampaignUpsertBulk) UpdatePauseReason() *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdatePauseReason()
	})
}

// ClearPauseReason clears the value of the "pause_reason" field.
func (u *CampaignUpsertBulk) ClearPauseReason() *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.ClearPauseReason()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *CampaignUpsertBulk) SetErrorMessage(v string) *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *CampaignUpsertBulk) UpdateErrorMessage() *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *CampaignUpsertBulk) ClearErrorMessage() *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.ClearErrorMessage()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *CampaignUpsertBulk) SetStartedAt(v time.Time) *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *CampaignUpsertBulk) UpdateStartedAt() *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *CampaignUpsertBulk) ClearStartedAt() *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *CampaignUpsertBulk) SetCompletedAt(v time.Time) *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *CampaignUpsertBulk) UpdateCompletedAt() *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *CampaignUpsertBulk) ClearCompletedAt() *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.ClearCompletedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *CampaignUpsertBulk) SetDeletedAt(v time.Time) *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *CampaignUpsertBulk) UpdateDeletedAt() *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *CampaignUpsertBulk) ClearDeletedAt() *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.ClearDeletedAt()
	})
}

// Exec executes the query.
func (u *CampaignUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CampaignCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CampaignCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CampaignUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
