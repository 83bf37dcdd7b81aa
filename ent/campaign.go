// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/reachforge/reachforge/ent/campaign"
)

// Campaign is the model entity for the Campaign schema.
type Campaign struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Owning organization
	OrganizationID string `json:"organization_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Provider account used for all outreach in this campaign
	ConnectedAccountID string `json:"connected_account_id,omitempty"`
	// Status holds the value of the "status" field.
	Status campaign.Status `json:"status,omitempty"`
	// Workflow graph snapshot (JSON). Immutable once the campaign starts.
	Graph string `json:"graph,omitempty"`
	// Window start, HH:MM
	ScheduleStart *string `json:"schedule_start,omitempty"`
	// Window end, HH:MM
	ScheduleEnd *string `json:"schedule_end,omitempty"`
	// IANA timezone for the schedule window
	Timezone string `json:"timezone,omitempty"`
	// DailyLimit holds the value of the "daily_limit" field.
	DailyLimit int `json:"daily_limit,omitempty"`
	// WeeklyLimit holds the value of the "weekly_limit" field.
	WeeklyLimit int `json:"weekly_limit,omitempty"`
	// SentDay holds the value of the "sent_day" field.
	SentDay int `json:"sent_day,omitempty"`
	// SentWeek holds the value of the "sent_week" field.
	SentWeek int `json:"sent_week,omitempty"`
	// LastDayResetAt holds the value of the "last_day_reset_at" field.
	LastDayResetAt *time.Time `json:"last_day_reset_at,omitempty"`
	// LastWeekResetAt holds the value of the "last_week_reset_at" field.
	LastWeekResetAt *time.Time `json:"last_week_reset_at,omitempty"`
	// PauseReason holds the value of the "pause_reason" field.
	PauseReason *string `json:"pause_reason,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// When the orchestrator workflow started
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Soft delete for retention policy
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CampaignQuery when eager-loading is set.
	Edges        CampaignEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CampaignEdges holds the relations/edges for other nodes in the graph.
type CampaignEdges struct {
	// Leads holds the value of the leads edge.
	Leads []*Lead `json:"leads,omitempty"`
	// Steps holds the value of the steps edge.
	Steps []*LeadStep `json:"steps,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// LeadsOrErr returns the Leads value or an error if the edge
// was not loaded in eager-loading.
func (e CampaignEdges) LeadsOrErr() ([]*Lead, error) {
	if e.loadedTypes[0] {
		return e.Leads, nil
	}
	return nil, &NotLoadedError{edge: "leads"}
}

// StepsOrErr returns the Steps value or an error if the edge
// was not loaded in eager-loading.
func (e CampaignEdges) StepsOrErr() ([]*LeadStep, error) {
	if e.loadedTypes[1] {
		return e.Steps, nil
	}
	return nil, &NotLoadedError{edge: "steps"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Campaign) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case campaign.FieldDailyLimit, campaign.FieldWeeklyLimit, campaign.FieldSentDay, campaign.FieldSentWeek:
			values[i] = new(sql.NullInt64)
		case campaign.FieldID, campaign.FieldOrganizationID, campaign.FieldName, campaign.FieldConnectedAccountID, campaign.FieldStatus, campaign.FieldGraph, campaign.FieldScheduleStart, campaign.FieldScheduleEnd, campaign.FieldTimezone, campaign.FieldPauseReason, campaign.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case campaign.FieldLastDayResetAt, campaign.FieldLastWeekResetAt, campaign.FieldCreatedAt, campaign.FieldStartedAt, campaign.FieldCompletedAt, campaign.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Campaign fields.
func (_m *Campaign) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case campaign.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case campaign.FieldOrganizationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field organization_id", values[i])
			} else if value.Valid {
				_m.OrganizationID = value.String
			}
		case campaign.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case campaign.FieldConnectedAccountID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field connected_account_id", values[i])
			} else if value.Valid {
				_m.ConnectedAccountID = value.String
			}
		case campaign.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = campaign.Status(value.String)
			}
		case campaign.FieldGraph:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field graph", values[i])
			} else if value.Valid {
				_m.Graph = value.String
			}
		case campaign.FieldScheduleStart:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field schedule_start", values[i])
			} else if value.Valid {
				_m.ScheduleStart = new(string)
				*_m.ScheduleStart = value.String
			}
		case campaign.FieldScheduleEnd:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field schedule_end", values[i])
			} else if value.Valid {
				_m.ScheduleEnd = new(string)
				*_m.ScheduleEnd = value.String
			}
		case campaign.FieldTimezone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field timezone", values[i])
			} else if value.Valid {
				_m.Timezone = value.String
			}
		case campaign.FieldDailyLimit:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field daily_limit", values[i])
			} else if value.Valid {
				_m.DailyLimit = int(value.Int64)
			}
		case campaign.FieldWeeklyLimit:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field weekly_limit", values[i])
			} else if value.Valid {
				_m.WeeklyLimit = int(value.Int64)
			}
		case campaign.FieldSentDay:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sent_day", values[i])
			} else if value.Valid {
				_m.SentDay = int(value.Int64)
			}
		case campaign.FieldSentWeek:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sent_week", values[i])
			} else if value.Valid {
				_m.SentWeek = int(value.Int64)
			}
		case campaign.FieldLastDayResetAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_day_reset_at", values[i])
			} else if value.Valid {
				_m.LastDayResetAt = new(time.Time)
				*_m.LastDayResetAt = value.Time
			}
		case campaign.FieldLastWeekResetAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_week_reset_at", values[i])
			} else if value.Valid {
				_m.LastWeekResetAt = new(time.Time)
				*_m.LastWeekResetAt = value.Time
			}
		case campaign.FieldPauseReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pause_reason", values[i])
			} else if value.Valid {
				_m.PauseReason = new(string)
				*_m.PauseReason = value.String
			}
		case campaign.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case campaign.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case campaign.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case campaign.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case campaign.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Campaign.
// This includes values selected through modifiers, order, etc.
func (_m *Campaign) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryLeads queries the "leads" edge of the Campaign entity.
func (_m *Campaign) QueryLeads() *LeadQuery {
	return NewCampaignClient(_m.config).QueryLeads(_m)
}

// QuerySteps queries the "steps" edge of the Campaign entity.
func (_m *Campaign) QuerySteps() *LeadStepQuery {
	return NewCampaignClient(_m.config).QuerySteps(_m)
}

// Update returns a builder for updating this Campaign.
// Note that you need to call Campaign.Unwrap() before calling this method if this Campaign
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Campaign) Update() *CampaignUpdateOne {
	return NewCampaignClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Campaign entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Campaign) Unwrap() *Campaign {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Campaign is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Campaign) String() string {
	var builder strings.Builder
	builder.WriteString("Campaign(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("organization_id=")
	builder.WriteString(_m.OrganizationID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("connected_account_id=")
	builder.WriteString(_m.ConnectedAccountID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("graph=")
	builder.WriteString(_m.Graph)
	builder.WriteString(", ")
	if v := _m.ScheduleStart; v != nil {
		builder.WriteString("schedule_start=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ScheduleEnd; v != nil {
		builder.WriteString("schedule_end=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("timezone=")
	builder.WriteString(_m.Timezone)
	builder.WriteString(", ")
	builder.WriteString("daily_limit=")
	builder.WriteString(fmt.Sprintf("%v", _m.DailyLimit))
	builder.WriteString(", ")
	builder.WriteString("weekly_limit=")
	builder.WriteString(fmt.Sprintf("%v", _m.WeeklyLimit))
	builder.WriteString(", ")
	builder.WriteString("sent_day=")
	builder.WriteString(fmt.Sprintf("%v", _m.SentDay))
	builder.WriteString(", ")
	builder.WriteString("sent_week=")
	builder.WriteString(fmt.Sprintf("%v", _m.SentWeek))
	builder.WriteString(", ")
	if v := _m.LastDayResetAt; v != nil {
		builder.WriteString("last_day_reset_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastWeekResetAt; v != nil {
		builder.WriteString("last_week_reset_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.PauseReason; v != nil {
		builder.WriteString("pause_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Campaigns is a parsable slice of Campaign.
type Campaigns []*Campaign
