// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/reachforge/reachforge/ent/campaign"
	"github.com/reachforge/reachforge/ent/connectedaccount"
	"github.com/reachforge/reachforge/ent/lead"
	"github.com/reachforge/reachforge/ent/leadstep"
	"github.com/reachforge/reachforge/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCampaign         = "Campaign"
	TypeConnectedAccount = "ConnectedAccount"
	TypeLead             = "Lead"
	TypeLeadStep         = "LeadStep"
)

// CampaignMutation represents an operation that mutates the Campaign nodes in the graph.
type CampaignMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	organization_id      *string
	name                 *string
	connected_account_id *string
	status               *campaign.Status
	graph                *string
	schedule_start       *string
	schedule_end         *string
	timezone             *string
	daily_limit          *int
	adddaily_limit       *int
	weekly_limit         *int
	addweekly_limit      *int
	sent_day             *int
	addsent_day          *int
	sent_week            *int
	addsent_week         *int
	last_day_reset_at    *time.Time
	last_week_reset_at   *time.Time
	pause_reason         *string
	error_message        *string
	created_at           *time.Time
	started_at           *time.Time
	completed_at         *time.Time
	deleted_at           *time.Time
	clearedFields        map[string]struct{}
	leads                map[string]struct{}
	removedleads         map[string]struct{}
	clearedleads         bool
	steps                map[string]struct{}
	removedsteps         map[string]struct{}
	clearedsteps         bool
	done                 bool
	oldValue             func(context.Context) (*Campaign, error)
	predicates           []predicate.Campaign
}

var _ ent.Mutation = (*CampaignMutation)(nil)

// campaignOption allows management of the mutation configuration using functional options.
type campaignOption func(*CampaignMutation)

// newCampaignMutation creates new mutation for the Campaign entity.
func newCampaignMutation(c config, op Op, opts ...campaignOption) *CampaignMutation {
	m := &CampaignMutation{
		config:        c,
		op:            op,
		typ:           TypeCampaign,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCampaignID sets the ID field of the mutation.
func withCampaignID(id string) campaignOption {
	return func(m *CampaignMutation) {
		var (
			err   error
			once  sync.Once
			value *Campaign
		)
		m.oldValue = func(ctx context.Context) (*Campaign, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Campaign.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCampaign sets the old Campaign of the mutation.
func withCampaign(node *Campaign) campaignOption {
	return func(m *CampaignMutation) {
		m.oldValue = func(context.Context) (*Campaign, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CampaignMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CampaignMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Campaign entities.
func (m *CampaignMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CampaignMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CampaignMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Campaign.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOrganizationID sets the "organization_id" field.
func (m *CampaignMutation) SetOrganizationID(s string) {
	m.organization_id = &s
}

// OrganizationID returns the value of the "organization_id" field in the mutation.
func (m *CampaignMutation) OrganizationID() (r string, exists bool) {
	v := m.organization_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrganizationID returns the old "organization_id" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldOrganizationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrganizationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrganizationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrganizationID: %w", err)
	}
	return oldValue.OrganizationID, nil
}

// ResetOrganizationID resets all changes to the "organization_id" field.
func (m *CampaignMutation) ResetOrganizationID() {
	m.organization_id = nil
}

// SetName sets the "name" field.
func (m *CampaignMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CampaignMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CampaignMutation) ResetName() {
	m.name = nil
}

// SetConnectedAccountID sets the "connected_account_id" field.
func (m *CampaignMutation) SetConnectedAccountID(s string) {
	m.connected_account_id = &s
}

// ConnectedAccountID returns the value of the "connected_account_id" field in the mutation.
func (m *CampaignMutation) ConnectedAccountID() (r string, exists bool) {
	v := m.connected_account_id
	if v == nil {
		return
	}
	return *v, true
}

// OldConnectedAccountID returns the old "connected_account_id" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldConnectedAccountID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConnectedAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConnectedAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConnectedAccountID: %w", err)
	}
	return oldValue.ConnectedAccountID, nil
}

// ResetConnectedAccountID resets all changes to the "connected_account_id" field.
func (m *CampaignMutation) ResetConnectedAccountID() {
	m.connected_account_id = nil
}

// SetStatus sets the "status" field.
func (m *CampaignMutation) SetStatus(c campaign.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *CampaignMutation) Status() (r campaign.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldStatus(ctx context.Context) (v campaign.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CampaignMutation) ResetStatus() {
	m.status = nil
}

// SetGraph sets the "graph" field.
func (m *CampaignMutation) SetGraph(s string) {
	m.graph = &s
}

// Graph returns the value of the "graph" field in the mutation.
func (m *CampaignMutation) Graph() (r string, exists bool) {
	v := m.graph
	if v == nil {
		return
	}
	return *v, true
}

// OldGraph returns the old "graph" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldGraph(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGraph is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGraph requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGraph: %w", err)
	}
	return oldValue.Graph, nil
}

// ResetGraph resets all changes to the "graph" field.
func (m *CampaignMutation) ResetGraph() {
	m.graph = nil
}

// SetScheduleStart sets the "schedule_start" field.
func (m *CampaignMutation) SetScheduleStart(s string) {
	m.schedule_start = &s
}

// ScheduleStart returns the value of the "schedule_start" field in the mutation.
func (m *CampaignMutation) ScheduleStart() (r string, exists bool) {
	v := m.schedule_start
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduleStart returns the old "schedule_start" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldScheduleStart(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduleStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduleStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduleStart: %w", err)
	}
	return oldValue.ScheduleStart, nil
}

// ClearScheduleStart clears the value of the "schedule_start" field.
func (m *CampaignMutation) ClearScheduleStart() {
	m.schedule_start = nil
	m.clearedFields[campaign.FieldScheduleStart] = struct{}{}
}

// ScheduleStartCleared returns if the "schedule_start" field was cleared in this mutation.
func (m *CampaignMutation) ScheduleStartCleared() bool {
	_, ok := m.clearedFields[campaign.FieldScheduleStart]
	return ok
}

// ResetScheduleStart resets all changes to the "schedule_start" field.
func (m *CampaignMutation) ResetScheduleStart() {
	m.schedule_start = nil
	delete(m.clearedFields, campaign.FieldScheduleStart)
}

// SetScheduleEnd sets the "schedule_end" field.
func (m *CampaignMutation) SetScheduleEnd(s string) {
	m.schedule_end = &s
}

// ScheduleEnd returns the value of the "schedule_end" field in the mutation.
func (m *CampaignMutation) ScheduleEnd() (r string, exists bool) {
	v := m.schedule_end
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduleEnd returns the old "schedule_end" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldScheduleEnd(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduleEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduleEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduleEnd: %w", err)
	}
	return oldValue.ScheduleEnd, nil
}

// ClearScheduleEnd clears the value of the "schedule_end" field.
func (m *CampaignMutation) ClearScheduleEnd() {
	m.schedule_end = nil
	m.clearedFields[campaign.FieldScheduleEnd] = struct{}{}
}

// ScheduleEndCleared returns if the "schedule_end" field was cleared in this mutation.
func (m *CampaignMutation) ScheduleEndCleared() bool {
	_, ok := m.clearedFields[campaign.FieldScheduleEnd]
	return ok
}

// ResetScheduleEnd resets all changes to the "schedule_end" field.
func (m *CampaignMutation) ResetScheduleEnd() {
	m.schedule_end = nil
	delete(m.clearedFields, campaign.FieldScheduleEnd)
}

// SetTimezone sets the "timezone" field.
func (m *CampaignMutation) SetTimezone(s string) {
	m.timezone = &s
}

// Timezone returns the value of the "timezone" field in the mutation.
func (m *CampaignMutation) Timezone() (r string, exists bool) {
	v := m.timezone
	if v == nil {
		return
	}
	return *v, true
}

// OldTimezone returns the old "timezone" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldTimezone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimezone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimezone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimezone: %w", err)
	}
	return oldValue.Timezone, nil
}

// ResetTimezone resets all changes to the "timezone" field.
func (m *CampaignMutation) ResetTimezone() {
	m.timezone = nil
}

// SetDailyLimit sets the "daily_limit" field.
func (m *CampaignMutation) SetDailyLimit(i int) {
	m.daily_limit = &i
	m.adddaily_limit = nil
}

// DailyLimit returns the value of the "daily_limit" field in the mutation.
func (m *CampaignMutation) DailyLimit() (r int, exists bool) {
	v := m.daily_limit
	if v == nil {
		return
	}
	return *v, true
}

// OldDailyLimit returns the old "daily_limit" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldDailyLimit(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDailyLimit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDailyLimit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDailyLimit: %w", err)
	}
	return oldValue.DailyLimit, nil
}

// AddDailyLimit adds i to the "daily_limit" field.
func (m *CampaignMutation) AddDailyLimit(i int) {
	if m.adddaily_limit != nil {
		*m.adddaily_limit += i
	} else {
		m.adddaily_limit = &i
	}
}

// AddedDailyLimit returns the value that was added to the "daily_limit" field in this mutation.
func (m *CampaignMutation) AddedDailyLimit() (r int, exists bool) {
	v := m.adddaily_limit
	if v == nil {
		return
	}
	return *v, true
}

// ResetDailyLimit resets all changes to the "daily_limit" field.
func (m *CampaignMutation) ResetDailyLimit() {
	m.daily_limit = nil
	m.adddaily_limit = nil
}

// SetWeeklyLimit sets the "weekly_limit" field.
func (m *CampaignMutation) SetWeeklyLimit(i int) {
	m.weekly_limit = &i
	m.addweekly_limit = nil
}

// WeeklyLimit returns the value of the "weekly_limit" field in the mutation.
func (m *CampaignMutation) WeeklyLimit() (r int, exists bool) {
	v := m.weekly_limit
	if v == nil {
		return
	}
	return *v, true
}

// OldWeeklyLimit returns the old "weekly_limit" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldWeeklyLimit(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeeklyLimit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeeklyLimit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeeklyLimit: %w", err)
	}
	return oldValue.WeeklyLimit, nil
}

// AddWeeklyLimit adds i to the "weekly_limit" field.
func (m *CampaignMutation) AddWeeklyLimit(i int) {
	if m.addweekly_limit != nil {
		*m.addweekly_limit += i
	} else {
		m.addweekly_limit = &i
	}
}

// AddedWeeklyLimit returns the value that was added to the "weekly_limit" field in this mutation.
func (m *CampaignMutation) AddedWeeklyLimit() (r int, exists bool) {
	v := m.addweekly_limit
	if v == nil {
		return
	}
	return *v, true
}

// ResetWeeklyLimit resets all changes to the "weekly_limit" field.
func (m *CampaignMutation) ResetWeeklyLimit() {
	m.weekly_limit = nil
	m.addweekly_limit = nil
}

// SetSentDay sets the "sent_day" field.
func (m *CampaignMutation) SetSentDay(i int) {
	m.sent_day = &i
	m.addsent_day = nil
}

// SentDay returns the value of the "sent_day" field in the mutation.
func (m *CampaignMutation) SentDay() (r int, exists bool) {
	v := m.sent_day
	if v == nil {
		return
	}
	return *v, true
}

// OldSentDay returns the old "sent_day" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldSentDay(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentDay is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentDay requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentDay: %w", err)
	}
	return oldValue.SentDay, nil
}

// AddSentDay adds i to the "sent_day" field.
func (m *CampaignMutation) AddSentDay(i int) {
	if m.addsent_day != nil {
		*m.addsent_day += i
	} else {
		m.addsent_day = &i
	}
}

// AddedSentDay returns the value that was added to the "sent_day" field in this mutation.
func (m *CampaignMutation) AddedSentDay() (r int, exists bool) {
	v := m.addsent_day
	if v == nil {
		return
	}
	return *v, true
}

// ResetSentDay resets all changes to the "sent_day" field.
func (m *CampaignMutation) ResetSentDay() {
	m.sent_day = nil
	m.addsent_day = nil
}

// SetSentWeek sets the "sent_week" field.
func (m *CampaignMutation) SetSentWeek(i int) {
	m.sent_week = &i
	m.addsent_week = nil
}

// SentWeek returns the value of the "sent_week" field in the mutation.
func (m *CampaignMutation) SentWeek() (r int, exists bool) {
	v := m.sent_week
	if v == nil {
		return
	}
	return *v, true
}

// OldSentWeek returns the old "sent_week" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldSentWeek(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentWeek is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentWeek requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentWeek: %w", err)
	}
	return oldValue.SentWeek, nil
}

// AddSentWeek adds i to the "sent_week" field.
func (m *CampaignMutation) AddSentWeek(i int) {
	if m.addsent_week != nil {
		*m.addsent_week += i
	} else {
		m.addsent_week = &i
	}
}

// AddedSentWeek returns the value that was added to the "sent_week" field in this mutation.
func (m *CampaignMutation) AddedSentWeek() (r int, exists bool) {
	v := m.addsent_week
	if v == nil {
		return
	}
	return *v, true
}

// ResetSentWeek resets all changes to the "sent_week" field.
func (m *CampaignMutation) ResetSentWeek() {
	m.sent_week = nil
	m.addsent_week = nil
}

// SetLastDayResetAt sets the "last_day_reset_at" field.
func (m *CampaignMutation) SetLastDayResetAt(t time.Time) {
	m.last_day_reset_at = &t
}

// LastDayResetAt returns the value of the "last_day_reset_at" field in the mutation.
func (m *CampaignMutation) LastDayResetAt() (r time.Time, exists bool) {
	v := m.last_day_reset_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastDayResetAt returns the old "last_day_reset_at" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldLastDayResetAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastDayResetAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastDayResetAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastDayResetAt: %w", err)
	}
	return oldValue.LastDayResetAt, nil
}

// ClearLastDayResetAt clears the value of the "last_day_reset_at" field.
func (m *CampaignMutation) ClearLastDayResetAt() {
	m.last_day_reset_at = nil
	m.clearedFields[campaign.FieldLastDayResetAt] = struct{}{}
}

// LastDayResetAtCleared returns if the "last_day_reset_at" field was cleared in this mutation.
func (m *CampaignMutation) LastDayResetAtCleared() bool {
	_, ok := m.clearedFields[campaign.FieldLastDayResetAt]
	return ok
}

// ResetLastDayResetAt resets all changes to the "last_day_reset_at" field.
func (m *CampaignMutation) ResetLastDayResetAt() {
	m.last_day_reset_at = nil
	delete(m.clearedFields, campaign.FieldLastDayResetAt)
}

// SetLastWeekResetAt sets the "last_week_reset_at" field.
func (m *CampaignMutation) SetLastWeekResetAt(t time.Time) {
	m.last_week_reset_at = &t
}

// LastWeekResetAt returns the value of the "last_week_reset_at" field in the mutation.
func (m *CampaignMutation) LastWeekResetAt() (r time.Time, exists bool) {
	v := m.last_week_reset_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastWeekResetAt returns the old "last_week_reset_at" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldLastWeekResetAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastWeekResetAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastWeekResetAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastWeekResetAt: %w", err)
	}
	return oldValue.LastWeekResetAt, nil
}

// ClearLastWeekResetAt clears the value of the "last_week_reset_at" field.
func (m *CampaignMutation) ClearLastWeekResetAt() {
	m.last_week_reset_at = nil
	m.clearedFields[campaign.FieldLastWeekResetAt] = struct{}{}
}

// LastWeekResetAtCleared returns if the "last_week_reset_at" field was cleared in this mutation.
func (m *CampaignMutation) LastWeekResetAtCleared() bool {
	_, ok := m.clearedFields[campaign.FieldLastWeekResetAt]
	return ok
}

// ResetLastWeekResetAt resets all changes to the "last_week_reset_at" field.
func (m *CampaignMutation) ResetLastWeekResetAt() {
	m.last_week_reset_at = nil
	delete(m.clearedFields, campaign.FieldLastWeekResetAt)
}

// SetPauseReason sets the "pause_reason" field.
func (m *CampaignMutation) SetPauseReason(s string) {
	m.pause_reason = &s
}

// PauseReason returns the value of the "pause_reason" field in the mutation.
func (m *CampaignMutation) PauseReason() (r string, exists bool) {
	v := m.pause_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldPauseReason returns the old "pause_reason" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldPauseReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPauseReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPauseReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPauseReason: %w", err)
	}
	return oldValue.PauseReason, nil
}

// ClearPauseReason clears the value of the "pause_reason" field.
func (m *CampaignMutation) ClearPauseReason() {
	m.pause_reason = nil
	m.clearedFields[campaign.FieldPauseReason] = struct{}{}
}

// PauseReasonCleared returns if the "pause_reason" field was cleared in this mutation.
func (m *CampaignMutation) PauseReasonCleared() bool {
	_, ok := m.clearedFields[campaign.FieldPauseReason]
	return ok
}

// ResetPauseReason resets all changes to the "pause_reason" field.
func (m *CampaignMutation) ResetPauseReason() {
	m.pause_reason = nil
	delete(m.clearedFields, campaign.FieldPauseReason)
}

// SetErrorMessage sets the "error_message" field.
func (m *CampaignMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *CampaignMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *CampaignMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[campaign.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *CampaignMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[campaign.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *CampaignMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, campaign.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *CampaignMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CampaignMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CampaignMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *CampaignMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *CampaignMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *CampaignMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[campaign.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *CampaignMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[campaign.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *CampaignMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, campaign.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *CampaignMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *CampaignMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *CampaignMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[campaign.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *CampaignMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[campaign.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *CampaignMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, campaign.FieldCompletedAt)
}

// SetDeletedAt sets the "deleted_at" field.
func (m *CampaignMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *CampaignMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *CampaignMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[campaign.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *CampaignMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[campaign.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *CampaignMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, campaign.FieldDeletedAt)
}

// AddLeadIDs adds the "leads" edge to the Lead entity by ids.
func (m *CampaignMutation) AddLeadIDs(ids ...string) {
	if m.leads == nil {
		m.leads = make(map[string]struct{})
	}
	for i := range ids {
		m.leads[ids[i]] = struct{}{}
	}
}

// ClearLeads clears the "leads" edge to the Lead entity.
func (m *CampaignMutation) ClearLeads() {
	m.clearedleads = true
}

// LeadsCleared reports if the "leads" edge to the Lead entity was cleared.
func (m *CampaignMutation) LeadsCleared() bool {
	return m.clearedleads
}

// RemoveLeadIDs removes the "leads" edge to the Lead entity by IDs.
func (m *CampaignMutation) RemoveLeadIDs(ids ...string) {
	if m.removedleads == nil {
		m.removedleads = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.leads, ids[i])
		m.removedleads[ids[i]] = struct{}{}
	}
}

// RemovedLeads returns the removed IDs of the "leads" edge to the Lead entity.
func (m *CampaignMutation) RemovedLeadsIDs() (ids []string) {
	for id := range m.removedleads {
		ids = append(ids, id)
	}
	return
}

// LeadsIDs returns the "leads" edge IDs in the mutation.
func (m *CampaignMutation) LeadsIDs() (ids []string) {
	for id := range m.leads {
		ids = append(ids, id)
	}
	return
}

// ResetLeads resets all changes to the "leads" edge.
func (m *CampaignMutation) ResetLeads() {
	m.leads = nil
	m.clearedleads = false
	m.removedleads = nil
}

// AddStepIDs adds the "steps" edge to the LeadStep entity by ids.
func (m *CampaignMutation) AddStepIDs(ids ...string) {
	if m.steps == nil {
		m.steps = make(map[string]struct{})
	}
	for i := range ids {
		m.steps[ids[i]] = struct{}{}
	}
}

// ClearSteps clears the "steps" edge to the LeadStep entity.
func (m *CampaignMutation) ClearSteps() {
	m.clearedsteps = true
}

// StepsCleared reports if the "steps" edge to the LeadStep entity was cleared.
func (m *CampaignMutation) StepsCleared() bool {
	return m.clearedsteps
}

// RemoveStepIDs removes the "steps" edge to the LeadStep entity by IDs.
func (m *CampaignMutation) RemoveStepIDs(ids ...string) {
	if m.removedsteps == nil {
		m.removedsteps = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.steps, ids[i])
		m.removedsteps[ids[i]] = struct{}{}
	}
}

// RemovedSteps returns the removed IDs of the "steps" edge to the LeadStep entity.
func (m *CampaignMutation) RemovedStepsIDs() (ids []string) {
	for id := range m.removedsteps {
		ids = append(ids, id)
	}
	return
}

// StepsIDs returns the "steps" edge IDs in the mutation.
func (m *CampaignMutation) StepsIDs() (ids []string) {
	for id := range m.steps {
		ids = append(ids, id)
	}
	return
}

// ResetSteps resets all changes to the "steps" edge.
func (m *CampaignMutation) ResetSteps() {
	m.steps = nil
	m.clearedsteps = false
	m.removedsteps = nil
}

// Where appends a list predicates to the CampaignMutation builder.
func (m *CampaignMutation) Where(ps ...predicate.Campaign) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CampaignMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CampaignMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Campaign, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CampaignMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CampaignMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Campaign).
func (m *CampaignMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CampaignMutation) Fields() []string {
	fields := make([]string, 0, 20)
	if m.organization_id != nil {
		fields = append(fields, campaign.FieldOrganizationID)
	}
	if m.name != nil {
		fields = append(fields, campaign.FieldName)
	}
	if m.connected_account_id != nil {
		fields = append(fields, campaign.FieldConnectedAccountID)
	}
	if m.status != nil {
		fields = append(fields, campaign.FieldStatus)
	}
	if m.graph != nil {
		fields = append(fields, campaign.FieldGraph)
	}
	if m.schedule_start != nil {
		fields = append(fields, campaign.FieldScheduleStart)
	}
	if m.schedule_end != nil {
		fields = append(fields, campaign.FieldScheduleEnd)
	}
	if m.timezone != nil {
		fields = append(fields, campaign.FieldTimezone)
	}
	if m.daily_limit != nil {
		fields = append(fields, campaign.FieldDailyLimit)
	}
	if m.weekly_limit != nil {
		fields = append(fields, campaign.FieldWeeklyLimit)
	}
	if m.sent_day != nil {
		fields = append(fields, campaign.FieldSentDay)
	}
	if m.sent_week != nil {
		fields = append(fields, campaign.FieldSentWeek)
	}
	if m.last_day_reset_at != nil {
		fields = append(fields, campaign.FieldLastDayResetAt)
	}
	if m.last_week_reset_at != nil {
		fields = append(fields, campaign.FieldLastWeekResetAt)
	}
	if m.pause_reason != nil {
		fields = append(fields, campaign.FieldPauseReason)
	}
	if m.error_message != nil {
		fields = append(fields, campaign.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, campaign.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, campaign.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, campaign.FieldCompletedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, campaign.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CampaignMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case campaign.FieldOrganizationID:
		return m.OrganizationID()
	case campaign.FieldName:
		return m.Name()
	case campaign.FieldConnectedAccountID:
		return m.ConnectedAccountID()
	case campaign.FieldStatus:
		return m.Status()
	case campaign.FieldGraph:
		return m.Graph()
	case campaign.FieldScheduleStart:
		return m.ScheduleStart()
	case campaign.FieldScheduleEnd:
		return m.ScheduleEnd()
	case campaign.FieldTimezone:
		return m.Timezone()
	case campaign.FieldDailyLimit:
		return m.DailyLimit()
	case campaign.FieldWeeklyLimit:
		return m.WeeklyLimit()
	case campaign.FieldSentDay:
		return m.SentDay()
	case campaign.FieldSentWeek:
		return m.SentWeek()
	case campaign.FieldLastDayResetAt:
		return m.LastDayResetAt()
	case campaign.FieldLastWeekResetAt:
		return m.LastWeekResetAt()
	case campaign.FieldPauseReason:
		return m.PauseReason()
	case campaign.FieldErrorMessage:
		return m.ErrorMessage()
	case campaign.FieldCreatedAt:
		return m.CreatedAt()
	case campaign.FieldStartedAt:
		return m.StartedAt()
	case campaign.FieldCompletedAt:
		return m.CompletedAt()
	case campaign.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CampaignMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case campaign.FieldOrganizationID:
		return m.OldOrganizationID(ctx)
	case campaign.FieldName:
		return m.OldName(ctx)
	case campaign.FieldConnectedAccountID:
		return m.OldConnectedAccountID(ctx)
	case campaign.FieldStatus:
		return m.OldStatus(ctx)
	case campaign.FieldGraph:
		return m.OldGraph(ctx)
	case campaign.FieldScheduleStart:
		return m.OldScheduleStart(ctx)
	case campaign.FieldScheduleEnd:
		return m.OldScheduleEnd(ctx)
	case campaign.FieldTimezone:
		return m.OldTimezone(ctx)
	case campaign.FieldDailyLimit:
		return m.OldDailyLimit(ctx)
	case campaign.FieldWeeklyLimit:
		return m.OldWeeklyLimit(ctx)
	case campaign.FieldSentDay:
		return m.OldSentDay(ctx)
	case campaign.FieldSentWeek:
		return m.OldSentWeek(ctx)
	case campaign.FieldLastDayResetAt:
		return m.OldLastDayResetAt(ctx)
	case campaign.FieldLastWeekResetAt:
		return m.OldLastWeekResetAt(ctx)
	case campaign.FieldPauseReason:
		return m.OldPauseReason(ctx)
	case campaign.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case campaign.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case campaign.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case campaign.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case campaign.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Campaign field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CampaignMutation) SetField(name string, value ent.Value) error {
	switch name {
	case campaign.FieldOrganizationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrganizationID(v)
		return nil
	case campaign.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case campaign.FieldConnectedAccountID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConnectedAccountID(v)
		return nil
	case campaign.FieldStatus:
		v, ok := value.(campaign.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case campaign.FieldGraph:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGraph(v)
		return nil
	case campaign.FieldScheduleStart:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduleStart(v)
		return nil
	case campaign.FieldScheduleEnd:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduleEnd(v)
		return nil
	case campaign.FieldTimezone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimezone(v)
		return nil
	case campaign.FieldDailyLimit:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDailyLimit(v)
		return nil
	case campaign.FieldWeeklyLimit:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeeklyLimit(v)
		return nil
	case campaign.FieldSentDay:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentDay(v)
		return nil
	case campaign.FieldSentWeek:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentWeek(v)
		return nil
	case campaign.FieldLastDayResetAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastDayResetAt(v)
		return nil
	case campaign.FieldLastWeekResetAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastWeekResetAt(v)
		return nil
	case campaign.FieldPauseReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPauseReason(v)
		return nil
	case campaign.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case campaign.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case campaign.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case campaign.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case campaign.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Campaign field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CampaignMutation) AddedFields() []string {
	var fields []string
	if m.adddaily_limit != nil {
		fields = append(fields, campaign.FieldDailyLimit)
	}
	if m.addweekly_limit != nil {
		fields = append(fields, campaign.FieldWeeklyLimit)
	}
	if m.addsent_day != nil {
		fields = append(fields, campaign.FieldSentDay)
	}
	if m.addsent_week != nil {
		fields = append(fields, campaign.FieldSentWeek)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CampaignMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case campaign.FieldDailyLimit:
		return m.AddedDailyLimit()
	case campaign.FieldWeeklyLimit:
		return m.AddedWeeklyLimit()
	case campaign.FieldSentDay:
		return m.AddedSentDay()
	case campaign.FieldSentWeek:
		return m.AddedSentWeek()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CampaignMutation) AddField(name string, value ent.Value) error {
	switch name {
	case campaign.FieldDailyLimit:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDailyLimit(v)
		return nil
	case campaign.FieldWeeklyLimit:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWeeklyLimit(v)
		return nil
	case campaign.FieldSentDay:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSentDay(v)
		return nil
	case campaign.FieldSentWeek:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSentWeek(v)
		return nil
	}
	return fmt.Errorf("unknown Campaign numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CampaignMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(campaign.FieldScheduleStart) {
		fields = append(fields, campaign.FieldScheduleStart)
	}
	if m.FieldCleared(campaign.FieldScheduleEnd) {
		fields = append(fields, campaign.FieldScheduleEnd)
	}
	if m.FieldCleared(campaign.FieldLastDayResetAt) {
		fields = append(fields, campaign.FieldLastDayResetAt)
	}
	if m.FieldCleared(campaign.FieldLastWeekResetAt) {
		fields = append(fields, campaign.FieldLastWeekResetAt)
	}
	if m.FieldCleared(campaign.FieldPauseReason) {
		fields = append(fields, campaign.FieldPauseReason)
	}
	if m.FieldCleared(campaign.FieldErrorMessage) {
		fields = append(fields, campaign.FieldErrorMessage)
	}
	if m.FieldCleared(campaign.FieldStartedAt) {
		fields = append(fields, campaign.FieldStartedAt)
	}
	if m.FieldCleared(campaign.FieldCompletedAt) {
		fields = append(fields, campaign.FieldCompletedAt)
	}
	if m.FieldCleared(campaign.FieldDeletedAt) {
		fields = append(fields, campaign.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CampaignMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CampaignMutation) ClearField(name string) error {
	switch name {
	case campaign.FieldScheduleStart:
		m.ClearScheduleStart()
		return nil
	case campaign.FieldScheduleEnd:
		m.ClearScheduleEnd()
		return nil
	case campaign.FieldLastDayResetAt:
		m.ClearLastDayResetAt()
		return nil
	case campaign.FieldLastWeekResetAt:
		m.ClearLastWeekResetAt()
		return nil
	case campaign.FieldPauseReason:
		m.ClearPauseReason()
		return nil
	case campaign.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case campaign.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case campaign.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case campaign.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Campaign nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CampaignMutation) ResetField(name string) error {
	switch name {
	case campaign.FieldOrganizationID:
		m.ResetOrganizationID()
		return nil
	case campaign.FieldName:
		m.ResetName()
		return nil
	case campaign.FieldConnectedAccountID:
		m.ResetConnectedAccountID()
		return nil
	case campaign.FieldStatus:
		m.ResetStatus()
		return nil
	case campaign.FieldGraph:
		m.ResetGraph()
		return nil
	case campaign.FieldScheduleStart:
		m.ResetScheduleStart()
		return nil
	case campaign.FieldScheduleEnd:
		m.ResetScheduleEnd()
		return nil
	case campaign.FieldTimezone:
		m.ResetTimezone()
		return nil
	case campaign.FieldDailyLimit:
		m.ResetDailyLimit()
		return nil
	case campaign.FieldWeeklyLimit:
		m.ResetWeeklyLimit()
		return nil
	case campaign.FieldSentDay:
		m.ResetSentDay()
		return nil
	case campaign.FieldSentWeek:
		m.ResetSentWeek()
		return nil
	case campaign.FieldLastDayResetAt:
		m.ResetLastDayResetAt()
		return nil
	case campaign.FieldLastWeekResetAt:
		m.ResetLastWeekResetAt()
		return nil
	case campaign.FieldPauseReason:
		m.ResetPauseReason()
		return nil
	case campaign.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case campaign.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case campaign.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case campaign.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case campaign.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Campaign field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CampaignMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.leads != nil {
		edges = append(edges, campaign.EdgeLeads)
	}
	if m.steps != nil {
		edges = append(edges, campaign.EdgeSteps)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CampaignMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case campaign.EdgeLeads:
		ids := make([]ent.Value, 0, len(m.leads))
		for id := range m.leads {
			ids = append(ids, id)
		}
		return ids
	case campaign.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.steps))
		for id := range m.steps {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CampaignMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedleads != nil {
		edges = append(edges, campaign.EdgeLeads)
	}
	if m.removedsteps != nil {
		edges = append(edges, campaign.EdgeSteps)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CampaignMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case campaign.EdgeLeads:
		ids := make([]ent.Value, 0, len(m.removedleads))
		for id := range m.removedleads {
			ids = append(ids, id)
		}
		return ids
	case campaign.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.removedsteps))
		for id := range m.removedsteps {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CampaignMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedleads {
		edges = append(edges, campaign.EdgeLeads)
	}
	if m.clearedsteps {
		edges = append(edges, campaign.EdgeSteps)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CampaignMutation) EdgeCleared(name string) bool {
	switch name {
	case campaign.EdgeLeads:
		return m.clearedleads
	case campaign.EdgeSteps:
		return m.clearedsteps
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CampaignMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Campaign unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CampaignMutation) ResetEdge(name string) error {
	switch name {
	case campaign.EdgeLeads:
		m.ResetLeads()
		return nil
	case campaign.EdgeSteps:
		m.ResetSteps()
		return nil
	}
	return fmt.Errorf("unknown Campaign edge %s", name)
}

// ConnectedAccountMutation represents an operation that mutates the ConnectedAccount nodes in the graph.
type ConnectedAccountMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	organization_id     *string
	provider_account_id *string
	display_name        *string
	status              *connectedaccount.Status
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*ConnectedAccount, error)
	predicates          []predicate.ConnectedAccount
}

var _ ent.Mutation = (*ConnectedAccountMutation)(nil)

// connectedaccountOption allows management of the mutation configuration using functional options.
type connectedaccountOption func(*ConnectedAccountMutation)

// newConnectedAccountMutation creates new mutation for the ConnectedAccount entity.
func newConnectedAccountMutation(c config, op Op, opts ...connectedaccountOption) *ConnectedAccountMutation {
	m := &ConnectedAccountMutation{
		config:        c,
		op:            op,
		typ:           TypeConnectedAccount,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConnectedAccountID sets the ID field of the mutation.
func withConnectedAccountID(id string) connectedaccountOption {
	return func(m *ConnectedAccountMutation) {
		var (
			err   error
			once  sync.Once
			value *ConnectedAccount
		)
		m.oldValue = func(ctx context.Context) (*ConnectedAccount, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ConnectedAccount.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConnectedAccount sets the old ConnectedAccount of the mutation.
func withConnectedAccount(node *ConnectedAccount) connectedaccountOption {
	return func(m *ConnectedAccountMutation) {
		m.oldValue = func(context.Context) (*ConnectedAccount, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConnectedAccountMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConnectedAccountMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ConnectedAccount entities.
func (m *ConnectedAccountMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConnectedAccountMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConnectedAccountMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ConnectedAccount.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOrganizationID sets the "organization_id" field.
func (m *ConnectedAccountMutation) SetOrganizationID(s string) {
	m.organization_id = &s
}

// OrganizationID returns the value of the "organization_id" field in the mutation.
func (m *ConnectedAccountMutation) OrganizationID() (r string, exists bool) {
	v := m.organization_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrganizationID returns the old "organization_id" field's value of the ConnectedAccount entity.
// If the ConnectedAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectedAccountMutation) OldOrganizationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrganizationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrganizationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrganizationID: %w", err)
	}
	return oldValue.OrganizationID, nil
}

// ResetOrganizationID resets all changes to the "organization_id" field.
func (m *ConnectedAccountMutation) ResetOrganizationID() {
	m.organization_id = nil
}

// SetProviderAccountID sets the "provider_account_id" field.
func (m *ConnectedAccountMutation) SetProviderAccountID(s string) {
	m.provider_account_id = &s
}

// ProviderAccountID returns the value of the "provider_account_id" field in the mutation.
func (m *ConnectedAccountMutation) ProviderAccountID() (r string, exists bool) {
	v := m.provider_account_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProviderAccountID returns the old "provider_account_id" field's value of the ConnectedAccount entity.
// If the ConnectedAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectedAccountMutation) OldProviderAccountID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProviderAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProviderAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProviderAccountID: %w", err)
	}
	return oldValue.ProviderAccountID, nil
}

// ResetProviderAccountID resets all changes to the "provider_account_id" field.
func (m *ConnectedAccountMutation) ResetProviderAccountID() {
	m.provider_account_id = nil
}

// SetDisplayName sets the "display_name" field.
func (m *ConnectedAccountMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *ConnectedAccountMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the ConnectedAccount entity.
// If the ConnectedAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectedAccountMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ClearDisplayName clears the value of the "display_name" field.
func (m *ConnectedAccountMutation) ClearDisplayName() {
	m.display_name = nil
	m.clearedFields[connectedaccount.FieldDisplayName] = struct{}{}
}

// DisplayNameCleared returns if the "display_name" field was cleared in this mutation.
func (m *ConnectedAccountMutation) DisplayNameCleared() bool {
	_, ok := m.clearedFields[connectedaccount.FieldDisplayName]
	return ok
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *ConnectedAccountMutation) ResetDisplayName() {
	m.display_name = nil
	delete(m.clearedFields, connectedaccount.FieldDisplayName)
}

// SetStatus sets the "status" field.
func (m *ConnectedAccountMutation) SetStatus(c connectedaccount.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *ConnectedAccountMutation) Status() (r connectedaccount.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ConnectedAccount entity.
// If the ConnectedAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectedAccountMutation) OldStatus(ctx context.Context) (v connectedaccount.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ConnectedAccountMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ConnectedAccountMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ConnectedAccountMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ConnectedAccount entity.
// If the ConnectedAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectedAccountMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ConnectedAccountMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ConnectedAccountMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ConnectedAccountMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ConnectedAccount entity.
// If the ConnectedAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectedAccountMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ConnectedAccountMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ConnectedAccountMutation builder.
func (m *ConnectedAccountMutation) Where(ps ...predicate.ConnectedAccount) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConnectedAccountMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConnectedAccountMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ConnectedAccount, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConnectedAccountMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConnectedAccountMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ConnectedAccount).
func (m *ConnectedAccountMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConnectedAccountMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.organization_id != nil {
		fields = append(fields, connectedaccount.FieldOrganizationID)
	}
	if m.provider_account_id != nil {
		fields = append(fields, connectedaccount.FieldProviderAccountID)
	}
	if m.display_name != nil {
		fields = append(fields, connectedaccount.FieldDisplayName)
	}
	if m.status != nil {
		fields = append(fields, connectedaccount.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, connectedaccount.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, connectedaccount.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConnectedAccountMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case connectedaccount.FieldOrganizationID:
		return m.OrganizationID()
	case connectedaccount.FieldProviderAccountID:
		return m.ProviderAccountID()
	case connectedaccount.FieldDisplayName:
		return m.DisplayName()
	case connectedaccount.FieldStatus:
		return m.Status()
	case connectedaccount.FieldCreatedAt:
		return m.CreatedAt()
	case connectedaccount.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConnectedAccountMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case connectedaccount.FieldOrganizationID:
		return m.OldOrganizationID(ctx)
	case connectedaccount.FieldProviderAccountID:
		return m.OldProviderAccountID(ctx)
	case connectedaccount.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case connectedaccount.FieldStatus:
		return m.OldStatus(ctx)
	case connectedaccount.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case connectedaccount.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ConnectedAccount field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConnectedAccountMutation) SetField(name string, value ent.Value) error {
	switch name {
	case connectedaccount.FieldOrganizationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrganizationID(v)
		return nil
	case connectedaccount.FieldProviderAccountID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProviderAccountID(v)
		return nil
	case connectedaccount.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case connectedaccount.FieldStatus:
		v, ok := value.(connectedaccount.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case connectedaccount.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case connectedaccount.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ConnectedAccount field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConnectedAccountMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConnectedAccountMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConnectedAccountMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ConnectedAccount numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConnectedAccountMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(connectedaccount.FieldDisplayName) {
		fields = append(fields, connectedaccount.FieldDisplayName)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConnectedAccountMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConnectedAccountMutation) ClearField(name string) error {
	switch name {
	case connectedaccount.FieldDisplayName:
		m.ClearDisplayName()
		return nil
	}
	return fmt.Errorf("unknown ConnectedAccount nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConnectedAccountMutation) ResetField(name string) error {
	switch name {
	case connectedaccount.FieldOrganizationID:
		m.ResetOrganizationID()
		return nil
	case connectedaccount.FieldProviderAccountID:
		m.ResetProviderAccountID()
		return nil
	case connectedaccount.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case connectedaccount.FieldStatus:
		m.ResetStatus()
		return nil
	case connectedaccount.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case connectedaccount.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ConnectedAccount field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConnectedAccountMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConnectedAccountMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConnectedAccountMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConnectedAccountMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConnectedAccountMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConnectedAccountMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConnectedAccountMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ConnectedAccount unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConnectedAccountMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ConnectedAccount edge %s", name)
}

// LeadMutation represents an operation that mutates the Lead nodes in the graph.
type LeadMutation struct {
	config
	op              Op
	typ             string
	id              *string
	first_name      *string
	last_name       *string
	company         *string
	profile_url     *string
	provider_id     *string
	status          *lead.Status
	error_message   *string
	created_at      *time.Time
	started_at      *time.Time
	completed_at    *time.Time
	clearedFields   map[string]struct{}
	campaign        *string
	clearedcampaign bool
	steps           map[string]struct{}
	removedsteps    map[string]struct{}
	clearedsteps    bool
	done            bool
	oldValue        func(context.Context) (*Lead, error)
	predicates      []predicate.Lead
}

var _ ent.Mutation = (*LeadMutation)(nil)

// leadOption allows management of the mutation configuration using functional options.
type leadOption func(*LeadMutation)

// newLeadMutation creates new mutation for the Lead entity.
func newLeadMutation(c config, op Op, opts ...leadOption) *LeadMutation {
	m := &LeadMutation{
		config:        c,
		op:            op,
		typ:           TypeLead,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLeadID sets the ID field of the mutation.
func withLeadID(id string) leadOption {
	return func(m *LeadMutation) {
		var (
			err   error
			once  sync.Once
			value *Lead
		)
		m.oldValue = func(ctx context.Context) (*Lead, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Lead.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLead sets the old Lead of the mutation.
func withLead(node *Lead) leadOption {
	return func(m *LeadMutation) {
		m.oldValue = func(context.Context) (*Lead, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LeadMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LeadMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Lead entities.
func (m *LeadMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LeadMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LeadMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Lead.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCampaignID sets the "campaign_id" field.
func (m *LeadMutation) SetCampaignID(s string) {
	m.campaign = &s
}

// CampaignID returns the value of the "campaign_id" field in the mutation.
func (m *LeadMutation) CampaignID() (r string, exists bool) {
	v := m.campaign
	if v == nil {
		return
	}
	return *v, true
}

// OldCampaignID returns the old "campaign_id" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldCampaignID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCampaignID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCampaignID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCampaignID: %w", err)
	}
	return oldValue.CampaignID, nil
}

// ResetCampaignID resets all changes to the "campaign_id" field.
func (m *LeadMutation) ResetCampaignID() {
	m.campaign = nil
}

// SetFirstName sets the "first_name" field.
func (m *LeadMutation) SetFirstName(s string) {
	m.first_name = &s
}

// FirstName returns the value of the "first_name" field in the mutation.
func (m *LeadMutation) FirstName() (r string, exists bool) {
	v := m.first_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstName returns the old "first_name" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldFirstName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstName: %w", err)
	}
	return oldValue.FirstName, nil
}

// ResetFirstName resets all changes to the "first_name" field.
func (m *LeadMutation) ResetFirstName() {
	m.first_name = nil
}

// SetLastName sets the "last_name" field.
func (m *LeadMutation) SetLastName(s string) {
	m.last_name = &s
}

// LastName returns the value of the "last_name" field in the mutation.
func (m *LeadMutation) LastName() (r string, exists bool) {
	v := m.last_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLastName returns the old "last_name" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldLastName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastName: %w", err)
	}
	return oldValue.LastName, nil
}

// ClearLastName clears the value of the "last_name" field.
func (m *LeadMutation) ClearLastName() {
	m.last_name = nil
	m.clearedFields[lead.FieldLastName] = struct{}{}
}

// LastNameCleared returns if the "last_name" field was cleared in this mutation.
func (m *LeadMutation) LastNameCleared() bool {
	_, ok := m.clearedFields[lead.FieldLastName]
	return ok
}

// ResetLastName resets all changes to the "last_name" field.
func (m *LeadMutation) ResetLastName() {
	m.last_name = nil
	delete(m.clearedFields, lead.FieldLastName)
}

// SetCompany sets the "company" field.
func (m *LeadMutation) SetCompany(s string) {
	m.company = &s
}

// Company returns the value of the "company" field in the mutation.
func (m *LeadMutation) Company() (r string, exists bool) {
	v := m.company
	if v == nil {
		return
	}
	return *v, true
}

// OldCompany returns the old "company" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldCompany(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompany is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompany requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompany: %w", err)
	}
	return oldValue.Company, nil
}

// ClearCompany clears the value of the "company" field.
func (m *LeadMutation) ClearCompany() {
	m.company = nil
	m.clearedFields[lead.FieldCompany] = struct{}{}
}

// CompanyCleared returns if the "company" field was cleared in this mutation.
func (m *LeadMutation) CompanyCleared() bool {
	_, ok := m.clearedFields[lead.FieldCompany]
	return ok
}

// ResetCompany resets all changes to the "company" field.
func (m *LeadMutation) ResetCompany() {
	m.company = nil
	delete(m.clearedFields, lead.FieldCompany)
}

// SetProfileURL sets the "profile_url" field.
func (m *LeadMutation) SetProfileURL(s string) {
	m.profile_url = &s
}

// ProfileURL returns the value of the "profile_url" field in the mutation.
func (m *LeadMutation) ProfileURL() (r string, exists bool) {
	v := m.profile_url
	if v == nil {
		return
	}
	return *v, true
}

// OldProfileURL returns the old "profile_url" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldProfileURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfileURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfileURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfileURL: %w", err)
	}
	return oldValue.ProfileURL, nil
}

// ResetProfileURL resets all changes to the "profile_url" field.
func (m *LeadMutation) ResetProfileURL() {
	m.profile_url = nil
}

// SetProviderID sets the "provider_id" field.
func (m *LeadMutation) SetProviderID(s string) {
	m.provider_id = &s
}

// ProviderID returns the value of the "provider_id" field in the mutation.
func (m *LeadMutation) ProviderID() (r string, exists bool) {
	v := m.provider_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProviderID returns the old "provider_id" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldProviderID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProviderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProviderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProviderID: %w", err)
	}
	return oldValue.ProviderID, nil
}

// ClearProviderID clears the value of the "provider_id" field.
func (m *LeadMutation) ClearProviderID() {
	m.provider_id = nil
	m.clearedFields[lead.FieldProviderID] = struct{}{}
}

// ProviderIDCleared returns if the "provider_id" field was cleared in this mutation.
func (m *LeadMutation) ProviderIDCleared() bool {
	_, ok := m.clearedFields[lead.FieldProviderID]
	return ok
}

// ResetProviderID resets all changes to the "provider_id" field.
func (m *LeadMutation) ResetProviderID() {
	m.provider_id = nil
	delete(m.clearedFields, lead.FieldProviderID)
}

// SetStatus sets the "status" field.
func (m *LeadMutation) SetStatus(l lead.Status) {
	m.status = &l
}

// Status returns the value of the "status" field in the mutation.
func (m *LeadMutation) Status() (r lead.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldStatus(ctx context.Context) (v lead.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *LeadMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *LeadMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LeadMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *LeadMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[lead.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *LeadMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[lead.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LeadMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, lead.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *LeadMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LeadMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LeadMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *LeadMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *LeadMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *LeadMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[lead.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *LeadMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[lead.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *LeadMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, lead.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *LeadMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *LeadMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *LeadMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[lead.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *LeadMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[lead.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *LeadMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, lead.FieldCompletedAt)
}

// ClearCampaign clears the "campaign" edge to the Campaign entity.
func (m *LeadMutation) ClearCampaign() {
	m.clearedcampaign = true
	m.clearedFields[lead.FieldCampaignID] = struct{}{}
}

// CampaignCleared reports if the "campaign" edge to the Campaign entity was cleared.
func (m *LeadMutation) CampaignCleared() bool {
	return m.clearedcampaign
}

// CampaignIDs returns the "campaign" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CampaignID instead. It exists only for internal usage by the builders.
func (m *LeadMutation) CampaignIDs() (ids []string) {
	if id := m.campaign; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCampaign resets all changes to the "campaign" edge.
func (m *LeadMutation) ResetCampaign() {
	m.campaign = nil
	m.clearedcampaign = false
}

// AddStepIDs adds the "steps" edge to the LeadStep entity by ids.
func (m *LeadMutation) AddStepIDs(ids ...string) {
	if m.steps == nil {
		m.steps = make(map[string]struct{})
	}
	for i := range ids {
		m.steps[ids[i]] = struct{}{}
	}
}

// ClearSteps clears the "steps" edge to the LeadStep entity.
func (m *LeadMutation) ClearSteps() {
	m.clearedsteps = true
}

// StepsCleared reports if the "steps" edge to the LeadStep entity was cleared.
func (m *LeadMutation) StepsCleared() bool {
	return m.clearedsteps
}

// RemoveStepIDs removes the "steps" edge to the LeadStep entity by IDs.
func (m *LeadMutation) RemoveStepIDs(ids ...string) {
	if m.removedsteps == nil {
		m.removedsteps = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.steps, ids[i])
		m.removedsteps[ids[i]] = struct{}{}
	}
}

// RemovedSteps returns the removed IDs of the "steps" edge to the LeadStep entity.
func (m *LeadMutation) RemovedStepsIDs() (ids []string) {
	for id := range m.removedsteps {
		ids = append(ids, id)
	}
	return
}

// StepsIDs returns the "steps" edge IDs in the mutation.
func (m *LeadMutation) StepsIDs() (ids []string) {
	for id := range m.steps {
		ids = append(ids, id)
	}
	return
}

// ResetSteps resets all changes to the "steps" edge.
func (m *LeadMutation) ResetSteps() {
	m.steps = nil
	m.clearedsteps = false
	m.removedsteps = nil
}

// Where appends a list predicates to the LeadMutation builder.
func (m *LeadMutation) Where(ps ...predicate.Lead) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LeadMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LeadMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Lead, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LeadMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LeadMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Lead).
func (m *LeadMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LeadMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.campaign != nil {
		fields = append(fields, lead.FieldCampaignID)
	}
	if m.first_name != nil {
		fields = append(fields, lead.FieldFirstName)
	}
	if m.last_name != nil {
		fields = append(fields, lead.FieldLastName)
	}
	if m.company != nil {
		fields = append(fields, lead.FieldCompany)
	}
	if m.profile_url != nil {
		fields = append(fields, lead.FieldProfileURL)
	}
	if m.provider_id != nil {
		fields = append(fields, lead.FieldProviderID)
	}
	if m.status != nil {
		fields = append(fields, lead.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, lead.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, lead.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, lead.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, lead.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LeadMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case lead.FieldCampaignID:
		return m.CampaignID()
	case lead.FieldFirstName:
		return m.FirstName()
	case lead.FieldLastName:
		return m.LastName()
	case lead.FieldCompany:
		return m.Company()
	case lead.FieldProfileURL:
		return m.ProfileURL()
	case lead.FieldProviderID:
		return m.ProviderID()
	case lead.FieldStatus:
		return m.Status()
	case lead.FieldErrorMessage:
		return m.ErrorMessage()
	case lead.FieldCreatedAt:
		return m.CreatedAt()
	case lead.FieldStartedAt:
		return m.StartedAt()
	case lead.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LeadMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case lead.FieldCampaignID:
		return m.OldCampaignID(ctx)
	case lead.FieldFirstName:
		return m.OldFirstName(ctx)
	case lead.FieldLastName:
		return m.OldLastName(ctx)
	case lead.FieldCompany:
		return m.OldCompany(ctx)
	case lead.FieldProfileURL:
		return m.OldProfileURL(ctx)
	case lead.FieldProviderID:
		return m.OldProviderID(ctx)
	case lead.FieldStatus:
		return m.OldStatus(ctx)
	case lead.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case lead.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case lead.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case lead.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Lead field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeadMutation) SetField(name string, value ent.Value) error {
	switch name {
	case lead.FieldCampaignID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCampaignID(v)
		return nil
	case lead.FieldFirstName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstName(v)
		return nil
	case lead.FieldLastName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastName(v)
		return nil
	case lead.FieldCompany:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompany(v)
		return nil
	case lead.FieldProfileURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfileURL(v)
		return nil
	case lead.FieldProviderID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProviderID(v)
		return nil
	case lead.FieldStatus:
		v, ok := value.(lead.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case lead.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case lead.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case lead.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case lead.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Lead field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LeadMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LeadMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeadMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Lead numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LeadMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(lead.FieldLastName) {
		fields = append(fields, lead.FieldLastName)
	}
	if m.FieldCleared(lead.FieldCompany) {
		fields = append(fields, lead.FieldCompany)
	}
	if m.FieldCleared(lead.FieldProviderID) {
		fields = append(fields, lead.FieldProviderID)
	}
	if m.FieldCleared(lead.FieldErrorMessage) {
		fields = append(fields, lead.FieldErrorMessage)
	}
	if m.FieldCleared(lead.FieldStartedAt) {
		fields = append(fields, lead.FieldStartedAt)
	}
	if m.FieldCleared(lead.FieldCompletedAt) {
		fields = append(fields, lead.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LeadMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LeadMutation) ClearField(name string) error {
	switch name {
	case lead.FieldLastName:
		m.ClearLastName()
		return nil
	case lead.FieldCompany:
		m.ClearCompany()
		return nil
	case lead.FieldProviderID:
		m.ClearProviderID()
		return nil
	case lead.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case lead.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case lead.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Lead nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LeadMutation) ResetField(name string) error {
	switch name {
	case lead.FieldCampaignID:
		m.ResetCampaignID()
		return nil
	case lead.FieldFirstName:
		m.ResetFirstName()
		return nil
	case lead.FieldLastName:
		m.ResetLastName()
		return nil
	case lead.FieldCompany:
		m.ResetCompany()
		return nil
	case lead.FieldProfileURL:
		m.ResetProfileURL()
		return nil
	case lead.FieldProviderID:
		m.ResetProviderID()
		return nil
	case lead.FieldStatus:
		m.ResetStatus()
		return nil
	case lead.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case lead.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case lead.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case lead.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Lead field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LeadMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.campaign != nil {
		edges = append(edges, lead.EdgeCampaign)
	}
	if m.steps != nil {
		edges = append(edges, lead.EdgeSteps)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LeadMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case lead.EdgeCampaign:
		if id := m.campaign; id != nil {
			return []ent.Value{*id}
		}
	case lead.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.steps))
		for id := range m.steps {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LeadMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedsteps != nil {
		edges = append(edges, lead.EdgeSteps)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LeadMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case lead.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.removedsteps))
		for id := range m.removedsteps {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LeadMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedcampaign {
		edges = append(edges, lead.EdgeCampaign)
	}
	if m.clearedsteps {
		edges = append(edges, lead.EdgeSteps)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LeadMutation) EdgeCleared(name string) bool {
	switch name {
	case lead.EdgeCampaign:
		return m.clearedcampaign
	case lead.EdgeSteps:
		return m.clearedsteps
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LeadMutation) ClearEdge(name string) error {
	switch name {
	case lead.EdgeCampaign:
		m.ClearCampaign()
		return nil
	}
	return fmt.Errorf("unknown Lead unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LeadMutation) ResetEdge(name string) error {
	switch name {
	case lead.EdgeCampaign:
		m.ResetCampaign()
		return nil
	case lead.EdgeSteps:
		m.ResetSteps()
		return nil
	}
	return fmt.Errorf("unknown Lead edge %s", name)
}

// LeadStepMutation represents an operation that mutates the LeadStep nodes in the graph.
type LeadStepMutation struct {
	config
	op              Op
	typ             string
	id              *string
	step_index      *int
	addstep_index   *int
	node_id         *string
	node_kind       *leadstep.NodeKind
	_config         *map[string]interface{}
	success         *bool
	result          *map[string]interface{}
	created_at      *time.Time
	clearedFields   map[string]struct{}
	campaign        *string
	clearedcampaign bool
	lead            *string
	clearedlead     bool
	done            bool
	oldValue        func(context.Context) (*LeadStep, error)
	predicates      []predicate.LeadStep
}

var _ ent.Mutation = (*LeadStepMutation)(nil)

// leadstepOption allows management of the mutation configuration using functional options.
type leadstepOption func(*LeadStepMutation)

// newLeadStepMutation creates new mutation for the LeadStep entity.
func newLeadStepMutation(c config, op Op, opts ...leadstepOption) *LeadStepMutation {
	m := &LeadStepMutation{
		config:        c,
		op:            op,
		typ:           TypeLeadStep,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLeadStepID sets the ID field of the mutation.
func withLeadStepID(id string) leadstepOption {
	return func(m *LeadStepMutation) {
		var (
			err   error
			once  sync.Once
			value *LeadStep
		)
		m.oldValue = func(ctx context.Context) (*LeadStep, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LeadStep.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLeadStep sets the old LeadStep of the mutation.
func withLeadStep(node *LeadStep) leadstepOption {
	return func(m *LeadStepMutation) {
		m.oldValue = func(context.Context) (*LeadStep, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LeadStepMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LeadStepMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LeadStep entities.
func (m *LeadStepMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LeadStepMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LeadStepMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LeadStep.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCampaignID sets the "campaign_id" field.
func (m *LeadStepMutation) SetCampaignID(s string) {
	m.campaign = &s
}

// CampaignID returns the value of the "campaign_id" field in the mutation.
func (m *LeadStepMutation) CampaignID() (r string, exists bool) {
	v := m.campaign
	if v == nil {
		return
	}
	return *v, true
}

// OldCampaignID returns the old "campaign_id" field's value of the LeadStep entity.
// If the LeadStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadStepMutation) OldCampaignID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCampaignID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCampaignID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCampaignID: %w", err)
	}
	return oldValue.CampaignID, nil
}

// ResetCampaignID resets all changes to the "campaign_id" field.
func (m *LeadStepMutation) ResetCampaignID() {
	m.campaign = nil
}

// SetLeadID sets the "lead_id" field.
func (m *LeadStepMutation) SetLeadID(s string) {
	m.lead = &s
}

// LeadID returns the value of the "lead_id" field in the mutation.
func (m *LeadStepMutation) LeadID() (r string, exists bool) {
	v := m.lead
	if v == nil {
		return
	}
	return *v, true
}

// OldLeadID returns the old "lead_id" field's value of the LeadStep entity.
// If the LeadStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadStepMutation) OldLeadID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeadID: %w", err)
	}
	return oldValue.LeadID, nil
}

// ResetLeadID resets all changes to the "lead_id" field.
func (m *LeadStepMutation) ResetLeadID() {
	m.lead = nil
}

// SetStepIndex sets the "step_index" field.
func (m *LeadStepMutation) SetStepIndex(i int) {
	m.step_index = &i
	m.addstep_index = nil
}

// StepIndex returns the value of the "step_index" field in the mutation.
func (m *LeadStepMutation) StepIndex() (r int, exists bool) {
	v := m.step_index
	if v == nil {
		return
	}
	return *v, true
}

// OldStepIndex returns the old "step_index" field's value of the LeadStep entity.
// If the LeadStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadStepMutation) OldStepIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepIndex: %w", err)
	}
	return oldValue.StepIndex, nil
}

// AddStepIndex adds i to the "step_index" field.
func (m *LeadStepMutation) AddStepIndex(i int) {
	if m.addstep_index != nil {
		*m.addstep_index += i
	} else {
		m.addstep_index = &i
	}
}

// AddedStepIndex returns the value that was added to the "step_index" field in this mutation.
func (m *LeadStepMutation) AddedStepIndex() (r int, exists bool) {
	v := m.addstep_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetStepIndex resets all changes to the "step_index" field.
func (m *LeadStepMutation) ResetStepIndex() {
	m.step_index = nil
	m.addstep_index = nil
}

// SetNodeID sets the "node_id" field.
func (m *LeadStepMutation) SetNodeID(s string) {
	m.node_id = &s
}

// NodeID returns the value of the "node_id" field in the mutation.
func (m *LeadStepMutation) NodeID() (r string, exists bool) {
	v := m.node_id
	if v == nil {
		return
	}
	return *v, true
}

// OldNodeID returns the old "node_id" field's value of the LeadStep entity.
// If the LeadStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadStepMutation) OldNodeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNodeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNodeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNodeID: %w", err)
	}
	return oldValue.NodeID, nil
}

// ResetNodeID resets all changes to the "node_id" field.
func (m *LeadStepMutation) ResetNodeID() {
	m.node_id = nil
}

// SetNodeKind sets the "node_kind" field.
func (m *LeadStepMutation) SetNodeKind(lk leadstep.NodeKind) {
	m.node_kind = &lk
}

// NodeKind returns the value of the "node_kind" field in the mutation.
func (m *LeadStepMutation) NodeKind() (r leadstep.NodeKind, exists bool) {
	v := m.node_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldNodeKind returns the old "node_kind" field's value of the LeadStep entity.
// If the LeadStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadStepMutation) OldNodeKind(ctx context.Context) (v leadstep.NodeKind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNodeKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNodeKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNodeKind: %w", err)
	}
	return oldValue.NodeKind, nil
}

// ResetNodeKind resets all changes to the "node_kind" field.
func (m *LeadStepMutation) ResetNodeKind() {
	m.node_kind = nil
}

// SetConfig sets the "config" field.
func (m *LeadStepMutation) SetConfig(value map[string]interface{}) {
	m._config = &value
}

// Config returns the value of the "config" field in the mutation.
func (m *LeadStepMutation) Config() (r map[string]interface{}, exists bool) {
	v := m._config
	if v == nil {
		return
	}
	return *v, true
}

// OldConfig returns the old "config" field's value of the LeadStep entity.
// If the LeadStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadStepMutation) OldConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfig: %w", err)
	}
	return oldValue.Config, nil
}

// ClearConfig clears the value of the "config" field.
func (m *LeadStepMutation) ClearConfig() {
	m._config = nil
	m.clearedFields[leadstep.FieldConfig] = struct{}{}
}

// ConfigCleared returns if the "config" field was cleared in this mutation.
func (m *LeadStepMutation) ConfigCleared() bool {
	_, ok := m.clearedFields[leadstep.FieldConfig]
	return ok
}

// ResetConfig resets all changes to the "config" field.
func (m *LeadStepMutation) ResetConfig() {
	m._config = nil
	delete(m.clearedFields, leadstep.FieldConfig)
}

// SetSuccess sets the "success" field.
func (m *LeadStepMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *LeadStepMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the LeadStep entity.
// If the LeadStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadStepMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *LeadStepMutation) ResetSuccess() {
	m.success = nil
}

// SetResult sets the "result" field.
func (m *LeadStepMutation) SetResult(value map[string]interface{}) {
	m.result = &value
}

// Result returns the value of the "result" field in the mutation.
func (m *LeadStepMutation) Result() (r map[string]interface{}, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the LeadStep entity.
// If the LeadStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadStepMutation) OldResult(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ClearResult clears the value of the "result" field.
func (m *LeadStepMutation) ClearResult() {
	m.result = nil
	m.clearedFields[leadstep.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *LeadStepMutation) ResultCleared() bool {
	_, ok := m.clearedFields[leadstep.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *LeadStepMutation) ResetResult() {
	m.result = nil
	delete(m.clearedFields, leadstep.FieldResult)
}

// SetCreatedAt sets the "created_at" field.
func (m *LeadStepMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LeadStepMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LeadStep entity.
// If the LeadStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadStepMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LeadStepMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearCampaign clears the "campaign" edge to the Campaign entity.
func (m *LeadStepMutation) ClearCampaign() {
	m.clearedcampaign = true
	m.clearedFields[leadstep.FieldCampaignID] = struct{}{}
}

// CampaignCleared reports if the "campaign" edge to the Campaign entity was cleared.
func (m *LeadStepMutation) CampaignCleared() bool {
	return m.clearedcampaign
}

// CampaignIDs returns the "campaign" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CampaignID instead. It exists only for internal usage by the builders.
func (m *LeadStepMutation) CampaignIDs() (ids []string) {
	if id := m.campaign; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCampaign resets all changes to the "campaign" edge.
func (m *LeadStepMutation) ResetCampaign() {
	m.campaign = nil
	m.clearedcampaign = false
}

// ClearLead clears the "lead" edge to the Lead entity.
func (m *LeadStepMutation) ClearLead() {
	m.clearedlead = true
	m.clearedFields[leadstep.FieldLeadID] = struct{}{}
}

// LeadCleared reports if the "lead" edge to the Lead entity was cleared.
func (m *LeadStepMutation) LeadCleared() bool {
	return m.clearedlead
}

// LeadIDs returns the "lead" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LeadID instead. It exists only for internal usage by the builders.
func (m *LeadStepMutation) LeadIDs() (ids []string) {
	if id := m.lead; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLead resets all changes to the "lead" edge.
func (m *LeadStepMutation) ResetLead() {
	m.lead = nil
	m.clearedlead = false
}

// Where appends a list predicates to the LeadStepMutation builder.
func (m *LeadStepMutation) Where(ps ...predicate.LeadStep) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LeadStepMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LeadStepMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LeadStep, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LeadStepMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LeadStepMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LeadStep).
func (m *LeadStepMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LeadStepMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.campaign != nil {
		fields = append(fields, leadstep.FieldCampaignID)
	}
	if m.lead != nil {
		fields = append(fields, leadstep.FieldLeadID)
	}
	if m.step_index != nil {
		fields = append(fields, leadstep.FieldStepIndex)
	}
	if m.node_id != nil {
		fields = append(fields, leadstep.FieldNodeID)
	}
	if m.node_kind != nil {
		fields = append(fields, leadstep.FieldNodeKind)
	}
	if m._config != nil {
		fields = append(fields, leadstep.FieldConfig)
	}
	if m.success != nil {
		fields = append(fields, leadstep.FieldSuccess)
	}
	if m.result != nil {
		fields = append(fields, leadstep.FieldResult)
	}
	if m.created_at != nil {
		fields = append(fields, leadstep.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LeadStepMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case leadstep.FieldCampaignID:
		return m.CampaignID()
	case leadstep.FieldLeadID:
		return m.LeadID()
	case leadstep.FieldStepIndex:
		return m.StepIndex()
	case leadstep.FieldNodeID:
		return m.NodeID()
	case leadstep.FieldNodeKind:
		return m.NodeKind()
	case leadstep.FieldConfig:
		return m.Config()
	case leadstep.FieldSuccess:
		return m.Success()
	case leadstep.FieldResult:
		return m.Result()
	case leadstep.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LeadStepMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case leadstep.FieldCampaignID:
		return m.OldCampaignID(ctx)
	case leadstep.FieldLeadID:
		return m.OldLeadID(ctx)
	case leadstep.FieldStepIndex:
		return m.OldStepIndex(ctx)
	case leadstep.FieldNodeID:
		return m.OldNodeID(ctx)
	case leadstep.FieldNodeKind:
		return m.OldNodeKind(ctx)
	case leadstep.FieldConfig:
		return m.OldConfig(ctx)
	case leadstep.FieldSuccess:
		return m.OldSuccess(ctx)
	case leadstep.FieldResult:
		return m.OldResult(ctx)
	case leadstep.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LeadStep field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeadStepMutation) SetField(name string, value ent.Value) error {
	switch name {
	case leadstep.FieldCampaignID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCampaignID(v)
		return nil
	case leadstep.FieldLeadID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeadID(v)
		return nil
	case leadstep.FieldStepIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepIndex(v)
		return nil
	case leadstep.FieldNodeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNodeID(v)
		return nil
	case leadstep.FieldNodeKind:
		v, ok := value.(leadstep.NodeKind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNodeKind(v)
		return nil
	case leadstep.FieldConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfig(v)
		return nil
	case leadstep.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case leadstep.FieldResult:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case leadstep.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LeadStep field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LeadStepMutation) AddedFields() []string {
	var fields []string
	if m.addstep_index != nil {
		fields = append(fields, leadstep.FieldStepIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LeadStepMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case leadstep.FieldStepIndex:
		return m.AddedStepIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeadStepMutation) AddField(name string, value ent.Value) error {
	switch name {
	case leadstep.FieldStepIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStepIndex(v)
		return nil
	}
	return fmt.Errorf("unknown LeadStep numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LeadStepMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(leadstep.FieldConfig) {
		fields = append(fields, leadstep.FieldConfig)
	}
	if m.FieldCleared(leadstep.FieldResult) {
		fields = append(fields, leadstep.FieldResult)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LeadStepMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LeadStepMutation) ClearField(name string) error {
	switch name {
	case leadstep.FieldConfig:
		m.ClearConfig()
		return nil
	case leadstep.FieldResult:
		m.ClearResult()
		return nil
	}
	return fmt.Errorf("unknown LeadStep nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LeadStepMutation) ResetField(name string) error {
	switch name {
	case leadstep.FieldCampaignID:
		m.ResetCampaignID()
		return nil
	case leadstep.FieldLeadID:
		m.ResetLeadID()
		return nil
	case leadstep.FieldStepIndex:
		m.ResetStepIndex()
		return nil
	case leadstep.FieldNodeID:
		m.ResetNodeID()
		return nil
	case leadstep.FieldNodeKind:
		m.ResetNodeKind()
		return nil
	case leadstep.FieldConfig:
		m.ResetConfig()
		return nil
	case leadstep.FieldSuccess:
		m.ResetSuccess()
		return nil
	case leadstep.FieldResult:
		m.ResetResult()
		return nil
	case leadstep.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown LeadStep field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LeadStepMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.campaign != nil {
		edges = append(edges, leadstep.EdgeCampaign)
	}
	if m.lead != nil {
		edges = append(edges, leadstep.EdgeLead)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LeadStepMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case leadstep.EdgeCampaign:
		if id := m.campaign; id != nil {
			return []ent.Value{*id}
		}
	case leadstep.EdgeLead:
		if id := m.lead; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LeadStepMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LeadStepMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LeadStepMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedcampaign {
		edges = append(edges, leadstep.EdgeCampaign)
	}
	if m.clearedlead {
		edges = append(edges, leadstep.EdgeLead)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LeadStepMutation) EdgeCleared(name string) bool {
	switch name {
	case leadstep.EdgeCampaign:
		return m.clearedcampaign
	case leadstep.EdgeLead:
		return m.clearedlead
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LeadStepMutation) ClearEdge(name string) error {
	switch name {
	case leadstep.EdgeCampaign:
		m.ClearCampaign()
		return nil
	case leadstep.EdgeLead:
		m.ClearLead()
		return nil
	}
	return fmt.Errorf("unknown LeadStep unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LeadStepMutation) ResetEdge(name string) error {
	switch name {
	case leadstep.EdgeCampaign:
		m.ResetCampaign()
		return nil
	case leadstep.EdgeLead:
		m.ResetLead()
		return nil
	}
	return fmt.Errorf("unknown LeadStep edge %s", name)
}
