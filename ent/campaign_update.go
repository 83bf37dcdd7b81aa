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
	"github.com/reachforge/reachforge/ent/campaign"
	"github.com/reachforge/reachforge/ent/lead"
	"github.com/reachforge/reachforge/ent/leadstep"
	"github.com/reachforge/reachforge/ent/predicate"
)

// CampaignUpdate is the builder for updating Campaign entities.
type CampaignUpdate struct {
	config
	hooks    []Hook
	mutation *CampaignMutation
}

// Where appends a list predicates to the CampaignUpdate builder.
func (_u *CampaignUpdate) Where(ps ...predicate.Campaign) *CampaignUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOrganizationID sets the "organization_id" field.
func (_u *CampaignUpdate) SetOrganizationID(v string) *CampaignUpdate {
	_u.mutation.SetOrganizationID(v)
	return _u
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableOrganizationID(v *string) *CampaignUpdate {
	if v != nil {
		_u.SetOrganizationID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *CampaignUpdate) SetName(v string) *CampaignUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableName(v *string) *CampaignUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetConnectedAccountID sets the "connected_account_id" field.
func (_u *CampaignUpdate) SetConnectedAccountID(v string) *CampaignUpdate {
	_u.mutation.SetConnectedAccountID(v)
	return _u
}

// SetNillableConnectedAccountID sets the "connected_account_id" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableConnectedAccountID(v *string) *CampaignUpdate {
	if v != nil {
		_u.SetConnectedAccountID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *CampaignUpdate) SetStatus(v campaign.Status) *CampaignUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableStatus(v *campaign.Status) *CampaignUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetGraph sets the "graph" field.
func (_u *CampaignUpdate) SetGraph(v string) *CampaignUpdate {
	_u.mutation.SetGraph(v)
	return _u
}

// SetNillableGraph sets the "graph" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableGraph(v *string) *CampaignUpdate {
	if v != nil {
		_u.SetGraph(*v)
	}
	return _u
}

// SetScheduleStart sets the "schedule_start" field.
func (_u *CampaignUpdate) SetScheduleStart(v string) *CampaignUpdate {
	_u.mutation.SetScheduleStart(v)
	return _u
}

// SetNillableScheduleStart sets the "schedule_start" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableScheduleStart(v *string) *CampaignUpdate {
	if v != nil {
		_u.SetScheduleStart(*v)
	}
	return _u
}

// ClearScheduleStart clears the value of the "schedule_start" field.
func (_u *CampaignUpdate) ClearScheduleStart() *CampaignUpdate {
	_u.mutation.ClearScheduleStart()
	return _u
}

// SetScheduleEnd sets the "schedule_end" field.
func (_u *CampaignUpdate) SetScheduleEnd(v string) *CampaignUpdate {
	_u.mutation.SetScheduleEnd(v)
	return _u
}

// SetNillableScheduleEnd sets the "schedule_end" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableScheduleEnd(v *string) *CampaignUpdate {
	if v != nil {
		_u.SetScheduleEnd(*v)
	}
	return _u
}

// ClearScheduleEnd clears the value of the "schedule_end" field.
func (_u *CampaignUpdate) ClearScheduleEnd() *CampaignUpdate {
	_u.mutation.ClearScheduleEnd()
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *CampaignUpdate) SetTimezone(v string) *CampaignUpdate {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableTimezone(v *string) *CampaignUpdate {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetDailyLimit sets the "daily_limit" field.
func (_u *CampaignUpdate) SetDailyLimit(v int) *CampaignUpdate {
	_u.mutation.ResetDailyLimit()
	_u.mutation.SetDailyLimit(v)
	return _u
}

// SetNillableDailyLimit sets the "daily_limit" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableDailyLimit(v *int) *CampaignUpdate {
	if v != nil {
		_u.SetDailyLimit(*v)
	}
	return _u
}

// AddDailyLimit adds value to the "daily_limit" field.
func (_u *CampaignUpdate) AddDailyLimit(v int) *CampaignUpdate {
	_u.mutation.AddDailyLimit(v)
	return _u
}

// SetWeeklyLimit sets the "weekly_limit" field.
func (_u *CampaignUpdate) SetWeeklyLimit(v int) *CampaignUpdate {
	_u.mutation.ResetWeeklyLimit()
	_u.mutation.SetWeeklyLimit(v)
	return _u
}

// SetNillableWeeklyLimit sets the "weekly_limit" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableWeeklyLimit(v *int) *CampaignUpdate {
	if v != nil {
		_u.SetWeeklyLimit(*v)
	}
	return _u
}

// AddWeeklyLimit adds value to the "weekly_limit" field.
func (_u *CampaignUpdate) AddWeeklyLimit(v int) *CampaignUpdate {
	_u.mutation.AddWeeklyLimit(v)
	return _u
}

// SetSentDay sets the "sent_day" field.
func (_u *CampaignUpdate) SetSentDay(v int) *CampaignUpdate {
	_u.mutation.ResetSentDay()
	_u.mutation.SetSentDay(v)
	return _u
}

// SetNillableSentDay sets the "sent_day" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableSentDay(v *int) *CampaignUpdate {
	if v != nil {
		_u.SetSentDay(*v)
	}
	return _u
}

// AddSentDay adds value to the "sent_day" field.
func (_u *CampaignUpdate) AddSentDay(v int) *CampaignUpdate {
	_u.mutation.AddSentDay(v)
	return _u
}

// SetSentWeek sets the "sent_week" field.
func (_u *CampaignUpdate) SetSentWeek(v int) *CampaignUpdate {
	_u.mutation.ResetSentWeek()
	_u.mutation.SetSentWeek(v)
	return _u
}

// SetNillableSentWeek sets the "sent_week" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableSentWeek(v *int) *CampaignUpdate {
	if v != nil {
		_u.SetSentWeek(*v)
	}
	return _u
}

// AddSentWeek adds value to the "sent_week" field.
func (_u *CampaignUpdate) AddSentWeek(v int) *CampaignUpdate {
	_u.mutation.AddSentWeek(v)
	return _u
}

// SetLastDayResetAt sets the "last_day_reset_at" field.
func (_u *CampaignUpdate) SetLastDayResetAt(v time.Time) *CampaignUpdate {
	_u.mutation.SetLastDayResetAt(v)
	return _u
}

// SetNillableLastDayResetAt sets the "last_day_reset_at" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableLastDayResetAt(v *time.Time) *CampaignUpdate {
	if v != nil {
		_u.SetLastDayResetAt(*v)
	}
	return _u
}

// ClearLastDayResetAt clears the value of the "last_day_reset_at" field.
func (_u *CampaignUpdate) ClearLastDayResetAt() *CampaignUpdate {
	_u.mutation.ClearLastDayResetAt()
	return _u
}

// SetLastWeekResetAt sets the "last_week_reset_at" field.
func (_u *CampaignUpdate) SetLastWeekResetAt(v time.Time) *CampaignUpdate {
	_u.mutation.SetLastWeekResetAt(v)
	return _u
}

// SetNillableLastWeekResetAt sets the "last_week_reset_at" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableLastWeekResetAt(v *time.Time) *CampaignUpdate {
	if v != nil {
		_u.SetLastWeekResetAt(*v)
	}
	return _u
}

// ClearLastWeekResetAt clears the value of the "last_week_reset_at" field.
func (_u *CampaignUpdate) ClearLastWeekResetAt() *CampaignUpdate {
	_u.mutation.ClearLastWeekResetAt()
	return _u
}

// SetPauseReason sets the "pause_reason" field.
func (_u *CampaignUpdate) SetPauseReason(v string) *CampaignUpdate {
	_u.mutation.SetPauseReason(v)
	return _u
}

// SetNillablePauseReason sets the "pause_reason" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillablePauseReason(v *string) *CampaignUpdate {
	if v != nil {
		_u.SetPauseReason(*v)
	}
	return _u
}

// ClearPauseReason clears the value of the "pause_reason" field.
func (_u *CampaignUpdate) ClearPauseReason() *CampaignUpdate {
	_u.mutation.ClearPauseReason()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *CampaignUpdate) SetErrorMessage(v string) *CampaignUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableErrorMessage(v *string) *CampaignUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *CampaignUpdate) ClearErrorMessage() *CampaignUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *CampaignUpdate) SetStartedAt(v time.Time) *CampaignUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableStartedAt(v *time.Time) *CampaignUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *CampaignUpdate) ClearStartedAt() *CampaignUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *CampaignUpdate) SetCompletedAt(v time.Time) *CampaignUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableCompletedAt(v *time.Time) *CampaignUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *CampaignUpdate) ClearCompletedAt() *CampaignUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *CampaignUpdate) SetDeletedAt(v time.Time) *CampaignUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableDeletedAt(v *time.Time) *CampaignUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *CampaignUpdate) ClearDeletedAt() *CampaignUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddLeadIDs adds the "leads" edge to the Lead entity by IDs.
func (_u *CampaignUpdate) AddLeadIDs(ids ...string) *CampaignUpdate {
	_u.mutation.AddLeadIDs(ids...)
	return _u
}

// AddLeads adds the "leads" edges to the Lead entity.
func (_u *CampaignUpdate) AddLeads(v ...*Lead) *CampaignUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLeadIDs(ids...)
}

// AddStepIDs adds the "steps" edge to the LeadStep entity by IDs.
func (_u *CampaignUpdate) AddStepIDs(ids ...string) *CampaignUpdate {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the LeadStep entity.
func (_u *CampaignUpdate) AddSteps(v ...*LeadStep) *CampaignUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// Mutation returns the CampaignMutation object of the builder.
func (_u *CampaignUpdate) Mutation() *CampaignMutation {
	return _u.mutation
}

// ClearLeads clears all "leads" edges to the Lead entity.
func (_u *CampaignUpdate) ClearLeads() *CampaignUpdate {
	_u.mutation.ClearLeads()
	return _u
}

// RemoveLeadIDs removes the "leads" edge to Lead entities by IDs.
func (_u *CampaignUpdate) RemoveLeadIDs(ids ...string) *CampaignUpdate {
	_u.mutation.RemoveLeadIDs(ids...)
	return _u
}

// RemoveLeads removes "leads" edges to Lead entities.
func (_u *CampaignUpdate) RemoveLeads(v ...*Lead) *CampaignUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLeadIDs(ids...)
}

// ClearSteps clears all "steps" edges to the LeadStep entity.
func (_u *CampaignUpdate) ClearSteps() *CampaignUpdate {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to LeadStep entities by IDs.
func (_u *CampaignUpdate) RemoveStepIDs(ids ...string) *CampaignUpdate {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to LeadStep entities.
func (_u *CampaignUpdate) RemoveSteps(v ...*LeadStep) *CampaignUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CampaignUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CampaignUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CampaignUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CampaignUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CampaignUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := campaign.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Campaign.status": %w`, err)}
		}
	}
	return nil
}

func (_u *CampaignUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(campaign.Table, campaign.Columns, sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OrganizationID(); ok {
		_spec.SetField(campaign.FieldOrganizationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(campaign.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConnectedAccountID(); ok {
		_spec.SetField(campaign.FieldConnectedAccountID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(campaign.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Graph(); ok {
		_spec.SetField(campaign.FieldGraph, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScheduleStart(); ok {
		_spec.SetField(campaign.FieldScheduleStart, field.TypeString, value)
	}
	if _u.mutation.ScheduleStartCleared() {
		_spec.ClearField(campaign.FieldScheduleStart, field.TypeString)
	}
	if value, ok := _u.mutation.ScheduleEnd(); ok {
		_spec.SetField(campaign.FieldScheduleEnd, field.TypeString, value)
	}
	if _u.mutation.ScheduleEndCleared() {
		_spec.ClearField(campaign.FieldScheduleEnd, field.TypeString)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(campaign.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.DailyLimit(); ok {
		_spec.SetField(campaign.FieldDailyLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDailyLimit(); ok {
		_spec.AddField(campaign.FieldDailyLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WeeklyLimit(); ok {
		_spec.SetField(campaign.FieldWeeklyLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeeklyLimit(); ok {
		_spec.AddField(campaign.FieldWeeklyLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SentDay(); ok {
		_spec.SetField(campaign.FieldSentDay, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSentDay(); ok {
		_spec.AddField(campaign.FieldSentDay, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SentWeek(); ok {
		_spec.SetField(campaign.FieldSentWeek, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSentWeek(); ok {
		_spec.AddField(campaign.FieldSentWeek, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastDayResetAt(); ok {
		_spec.SetField(campaign.FieldLastDayResetAt, field.TypeTime, value)
	}
	if _u.mutation.LastDayResetAtCleared() {
		_spec.ClearField(campaign.FieldLastDayResetAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastWeekResetAt(); ok {
		_spec.SetField(campaign.FieldLastWeekResetAt, field.TypeTime, value)
	}
	if _u.mutation.LastWeekResetAtCleared() {
		_spec.ClearField(campaign.FieldLastWeekResetAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PauseReason(); ok {
		_spec.SetField(campaign.FieldPauseReason, field.TypeString, value)
	}
	if _u.mutation.PauseReasonCleared() {
		_spec.ClearField(campaign.FieldPauseReason, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(campaign.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(campaign.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(campaign.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(campaign.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(campaign.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(campaign.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(campaign.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(campaign.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.LeadsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLeadsIDs(); len(nodes) > 0 && !_u.mutation.LeadsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LeadsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{campaign.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CampaignUpdateOne is the builder for updating a single Campaign entity.
type CampaignUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CampaignMutation
}

// SetOrganizationID sets the "organization_id" field.
func (_u *CampaignUpdateOne) SetOrganizationID(v string) *CampaignUpdateOne {
	_u.mutation.SetOrganizationID(v)
	return _u
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableOrganizationID(v *string) *CampaignUpdateOne {
	if v != nil {
		_u.SetOrganizationID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *CampaignUpdateOne) SetName(v string) *CampaignUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableName(v *string) *CampaignUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetConnectedAccountID sets the "connected_account_id" field.
func (_u *CampaignUpdateOne) SetConnectedAccountID(v string) *CampaignUpdateOne {
	_u.mutation.SetConnectedAccountID(v)
	return _u
}

// SetNillableConnectedAccountID sets the "connected_account_id" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableConnectedAccountID(v *string) *CampaignUpdateOne {
	if v != nil {
		_u.SetConnectedAccountID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *CampaignUpdateOne) SetStatus(v campaign.Status) *CampaignUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableStatus(v *campaign.Status) *CampaignUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetGraph sets the "graph" field.
func (_u *CampaignUpdateOne) SetGraph(v string) *CampaignUpdateOne {
	_u.mutation.SetGraph(v)
	return _u
}

// SetNillableGraph sets the "graph" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableGraph(v *string) *CampaignUpdateOne {
	if v != nil {
		_u.SetGraph(*v)
	}
	return _u
}

// SetScheduleStart sets the "schedule_start" field.
func (_u *CampaignUpdateOne) SetScheduleStart(v string) *CampaignUpdateOne {
	_u.mutation.SetScheduleStart(v)
	return _u
}

// SetNillableScheduleStart sets the "schedule_start" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableScheduleStart(v *string) *CampaignUpdateOne {
	if v != nil {
		_u.SetScheduleStart(*v)
	}
	return _u
}

// ClearScheduleStart clears the value of the "schedule_start" field.
func (_u *CampaignUpdateOne) ClearScheduleStart() *CampaignUpdateOne {
	_u.mutation.ClearScheduleStart()
	return _u
}

// SetScheduleEnd sets the "schedule_end" field.
func (_u *CampaignUpdateOne) SetScheduleEnd(v string) *CampaignUpdateOne {
	_u.mutation.SetScheduleEnd(v)
	return _u
}

// SetNillableScheduleEnd sets the "schedule_end" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableScheduleEnd(v *string) *CampaignUpdateOne {
	if v != nil {
		_u.SetScheduleEnd(*v)
	}
	return _u
}

// ClearScheduleEnd clears the value of the "schedule_end" field.
func (_u *CampaignUpdateOne) ClearScheduleEnd() *CampaignUpdateOne {
	_u.mutation.ClearScheduleEnd()
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *CampaignUpdateOne) SetTimezone(v string) *CampaignUpdateOne {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableTimezone(v *string) *CampaignUpdateOne {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetDailyLimit sets the "daily_limit" field.
func (_u *CampaignUpdateOne) SetDailyLimit(v int) *CampaignUpdateOne {
	_u.mutation.ResetDailyLimit()
	_u.mutation.SetDailyLimit(v)
	return _u
}

// SetNillableDailyLimit sets the "daily_limit" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableDailyLimit(v *int) *CampaignUpdateOne {
	if v != nil {
		_u.SetDailyLimit(*v)
	}
	return _u
}

// AddDailyLimit adds value to the "daily_limit" field.
func (_u *CampaignUpdateOne) AddDailyLimit(v int) *CampaignUpdateOne {
	_u.mutation.AddDailyLimit(v)
	return _u
}

// SetWeeklyLimit sets the "weekly_limit" field.
func (_u *CampaignUpdateOne) SetWeeklyLimit(v int) *CampaignUpdateOne {
	_u.mutation.ResetWeeklyLimit()
	_u.mutation.SetWeeklyLimit(v)
	return _u
}

// SetNillableWeeklyLimit sets the "weekly_limit" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableWeeklyLimit(v *int) *CampaignUpdateOne {
	if v != nil {
		_u.SetWeeklyLimit(*v)
	}
	return _u
}

// AddWeeklyLimit adds value to the "weekly_limit" field.
func (_u *CampaignUpdateOne) AddWeeklyLimit(v int) *CampaignUpdateOne {
	_u.mutation.AddWeeklyLimit(v)
	return _u
}

// SetSentDay sets the "sent_day" field.
func (_u *CampaignUpdateOne) SetSentDay(v int) *CampaignUpdateOne {
	_u.mutation.ResetSentDay()
	_u.mutation.SetSentDay(v)
	return _u
}

// SetNillableSentDay sets the "sent_day" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableSentDay(v *int) *CampaignUpdateOne {
	if v != nil {
		_u.SetSentDay(*v)
	}
	return _u
}

// AddSentDay adds value to the "sent_day" field.
func (_u *CampaignUpdateOne) AddSentDay(v int) *CampaignUpdateOne {
	_u.mutation.AddSentDay(v)
	return _u
}

// SetSentWeek sets the "sent_week" field.
func (_u *CampaignUpdateOne) SetSentWeek(v int) *CampaignUpdateOne {
	_u.mutation.ResetSentWeek()
	_u.mutation.SetSentWeek(v)
	return _u
}

// SetNillableSentWeek sets the "sent_week" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableSentWeek(v *int) *CampaignUpdateOne {
	if v != nil {
		_u.SetSentWeek(*v)
	}
	return _u
}

// AddSentWeek adds value to the "sent_week" field.
func (_u *CampaignUpdateOne) AddSentWeek(v int) *CampaignUpdateOne {
	_u.mutation.AddSentWeek(v)
	return _u
}

// SetLastDayResetAt sets the "last_day_reset_at" field.
func (_u *CampaignUpdateOne) SetLastDayResetAt(v time.Time) *CampaignUpdateOne {
	_u.mutation.SetLastDayResetAt(v)
	return _u
}

// SetNillableLastDayResetAt sets the "last_day_reset_at" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableLastDayResetAt(v *time.Time) *CampaignUpdateOne {
	if v != nil {
		_u.SetLastDayResetAt(*v)
	}
	return _u
}

// ClearLastDayResetAt clears the value of the "last_day_reset_at" field.
func (_u *CampaignUpdateOne) ClearLastDayResetAt() *CampaignUpdateOne {
	_u.mutation.ClearLastDayResetAt()
	return _u
}

// SetLastWeekResetAt sets the "last_week_reset_at" field.
func (_u *CampaignUpdateOne) SetLastWeekResetAt(v time.Time) *CampaignUpdateOne {
	_u.mutation.SetLastWeekResetAt(v)
	return _u
}

// SetNillableLastWeekResetAt sets the "last_week_reset_at" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableLastWeekResetAt(v *time.Time) *CampaignUpdateOne {
	if v != nil {
		_u.SetLastWeekResetAt(*v)
	}
	return _u
}

// ClearLastWeekResetAt clears the value of the "last_week_reset_at" field.
func (_u *CampaignUpdateOne) ClearLastWeekResetAt() *CampaignUpdateOne {
	_u.mutation.ClearLastWeekResetAt()
	return _u
}

// SetPauseReason sets the "pause_reason" field.
func (_u *CampaignUpdateOne) SetPauseReason(v string) *CampaignUpdateOne {
	_u.mutation.SetPauseReason(v)
	return _u
}

// SetNillablePauseReason sets the "pause_reason" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillablePauseReason(v *string) *CampaignUpdateOne {
	if v != nil {
		_u.SetPauseReason(*v)
	}
	return _u
}

// ClearPauseReason clears the value of the "pause_reason" field.
func (_u *CampaignUpdateOne) ClearPauseReason() *CampaignUpdateOne {
	_u.mutation.ClearPauseReason()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *CampaignUpdateOne) SetErrorMessage(v string) *CampaignUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableErrorMessage(v *string) *CampaignUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *CampaignUpdateOne) ClearErrorMessage() *CampaignUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *CampaignUpdateOne) SetStartedAt(v time.Time) *CampaignUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableStartedAt(v *time.Time) *CampaignUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *CampaignUpdateOne) ClearStartedAt() *CampaignUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *CampaignUpdateOne) SetCompletedAt(v time.Time) *CampaignUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableCompletedAt(v *time.Time) *CampaignUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *CampaignUpdateOne) ClearCompletedAt() *CampaignUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *CampaignUpdateOne) SetDeletedAt(v time.Time) *CampaignUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableDeletedAt(v *time.Time) *CampaignUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *CampaignUpdateOne) ClearDeletedAt() *CampaignUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddLeadIDs adds the "leads" edge to the Lead entity by IDs.
func (_u *CampaignUpdateOne) AddLeadIDs(ids ...string) *CampaignUpdateOne {
	_u.mutation.AddLeadIDs(ids...)
	return _u
}

// AddLeads adds the "leads" edges to the Lead entity.
func (_u *CampaignUpdateOne) AddLeads(v ...*Lead) *CampaignUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLeadIDs(ids...)
}

// AddStepIDs adds the "steps" edge to the LeadStep entity by IDs.
func (_u *CampaignUpdateOne) AddStepIDs(ids ...string) *CampaignUpdateOne {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the LeadStep entity.
func (_u *CampaignUpdateOne) AddSteps(v ...*LeadStep) *CampaignUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// Mutation returns the CampaignMutation object of the builder.
func (_u *CampaignUpdateOne) Mutation() *CampaignMutation {
	return _u.mutation
}

// ClearLeads clears all "leads" edges to the Lead entity.
func (_u *CampaignUpdateOne) ClearLeads() *CampaignUpdateOne {
	_u.mutation.ClearLeads()
	return _u
}

// RemoveLeadIDs removes the "leads" edge to Lead entities by IDs.
func (_u *CampaignUpdateOne) RemoveLeadIDs(ids ...string) *CampaignUpdateOne {
	_u.mutation.RemoveLeadIDs(ids...)
	return _u
}

// RemoveLeads removes "leads" edges to Lead entities.
func (_u *CampaignUpdateOne) RemoveLeads(v ...*Lead) *CampaignUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLeadIDs(ids...)
}

// ClearSteps clears all "steps" edges to the LeadStep entity.
func (_u *CampaignUpdateOne) ClearSteps() *CampaignUpdateOne {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to LeadStep entities by IDs.
func (_u *CampaignUpdateOne) RemoveStepIDs(ids ...string) *CampaignUpdateOne {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to LeadStep entities.
func (_u *CampaignUpdateOne) RemoveSteps(v ...*LeadStep) *CampaignUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// Where appends a list predicates to the CampaignUpdate builder.
func (_u *CampaignUpdateOne) Where(ps ...predicate.Campaign) *CampaignUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CampaignUpdateOne) Select(field string, fields ...string) *CampaignUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Campaign entity.
func (_u *CampaignUpdateOne) Save(ctx context.Context) (*Campaign, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CampaignUpdateOne) SaveX(ctx context.Context) *Campaign {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CampaignUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CampaignUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CampaignUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := campaign.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Campaign.status": %w`, err)}
		}
	}
	return nil
}

func (_u *CampaignUpdateOne) sqlSave(ctx context.Context) (_node *Campaign, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(campaign.Table, campaign.Columns, sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Campaign.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, campaign.FieldID)
		for _, f := range fields {
			if !campaign.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != campaign.FieldID {
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
	if value, ok := _u.mutation.OrganizationID(); ok {
		_spec.SetField(campaign.FieldOrganizationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(campaign.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConnectedAccountID(); ok {
		_spec.SetField(campaign.FieldConnectedAccountID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(campaign.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Graph(); ok {
		_spec.SetField(campaign.FieldGraph, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScheduleStart(); ok {
		_spec.SetField(campaign.FieldScheduleStart, field.TypeString, value)
	}
	if _u.mutation.ScheduleStartCleared() {
		_spec.ClearField(campaign.FieldScheduleStart, field.TypeString)
	}
	if value, ok := _u.mutation.ScheduleEnd(); ok {
		_spec.SetField(campaign.FieldScheduleEnd, field.TypeString, value)
	}
	if _u.mutation.ScheduleEndCleared() {
		_spec.ClearField(campaign.FieldScheduleEnd, field.TypeString)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(campaign.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.DailyLimit(); ok {
		_spec.SetField(campaign.FieldDailyLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDailyLimit(); ok {
		_spec.AddField(campaign.FieldDailyLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WeeklyLimit(); ok {
		_spec.SetField(campaign.FieldWeeklyLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeeklyLimit(); ok {
		_spec.AddField(campaign.FieldWeeklyLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SentDay(); ok {
		_spec.SetField(campaign.FieldSentDay, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSentDay(); ok {
		_spec.AddField(campaign.FieldSentDay, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SentWeek(); ok {
		_spec.SetField(campaign.FieldSentWeek, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSentWeek(); ok {
		_spec.AddField(campaign.FieldSentWeek, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastDayResetAt(); ok {
		_spec.SetField(campaign.FieldLastDayResetAt, field.TypeTime, value)
	}
	if _u.mutation.LastDayResetAtCleared() {
		_spec.ClearField(campaign.FieldLastDayResetAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastWeekResetAt(); ok {
		_spec.SetField(campaign.FieldLastWeekResetAt, field.TypeTime, value)
	}
	if _u.mutation.LastWeekResetAtCleared() {
		_spec.ClearField(campaign.FieldLastWeekResetAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PauseReason(); ok {
		_spec.SetField(campaign.FieldPauseReason, field.TypeString, value)
	}
	if _u.mutation.PauseReasonCleared() {
		_spec.ClearField(campaign.FieldPauseReason, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(campaign.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(campaign.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(campaign.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(campaign.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(campaign.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(campaign.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(campaign.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(campaign.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.LeadsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLeadsIDs(); len(nodes) > 0 && !_u.mutation.LeadsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LeadsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Campaign{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{campaign.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
