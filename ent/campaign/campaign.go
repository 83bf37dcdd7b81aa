// Code generated by ent, DO NOT EDIT.

package campaign

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the campaign type in the database.
	Label = "campaign"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "campaign_id"
	// FieldOrganizationID holds the string denoting the organization_id field in the database.
	FieldOrganizationID = "organization_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldConnectedAccountID holds the string denoting the connected_account_id field in the database.
	FieldConnectedAccountID = "connected_account_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldGraph holds the string denoting the graph field in the database.
	FieldGraph = "graph"
	// FieldScheduleStart holds the string denoting the schedule_start field in the database.
	FieldScheduleStart = "schedule_start"
	// FieldScheduleEnd holds the string denoting the schedule_end field in the database.
	FieldScheduleEnd = "schedule_end"
	// FieldTimezone holds the string denoting the timezone field in the database.
	FieldTimezone = "timezone"
	// FieldDailyLimit holds the string denoting the daily_limit field in the database.
	FieldDailyLimit = "daily_limit"
	// FieldWeeklyLimit holds the string denoting the weekly_limit field in the database.
	FieldWeeklyLimit = "weekly_limit"
	// FieldSentDay holds the string denoting the sent_day field in the database.
	FieldSentDay = "sent_day"
	// FieldSentWeek holds the string denoting the sent_week field in the database.
	FieldSentWeek = "sent_week"
	// FieldLastDayResetAt holds the string denoting the last_day_reset_at field in the database.
	FieldLastDayResetAt = "last_day_reset_at"
	// FieldLastWeekResetAt holds the string denoting the last_week_reset_at field in the database.
	FieldLastWeekResetAt = "last_week_reset_at"
	// FieldPauseReason holds the string denoting the pause_reason field in the database.
	FieldPauseReason = "pause_reason"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// EdgeLeads holds the string denoting the leads edge name in mutations.
	EdgeLeads = "leads"
	// EdgeSteps holds the string denoting the steps edge name in mutations.
	EdgeSteps = "steps"
	// LeadFieldID holds the string denoting the ID field of the Lead.
	LeadFieldID = "lead_id"
	// LeadStepFieldID holds the string denoting the ID field of the LeadStep.
	LeadStepFieldID = "step_id"
	// Table holds the table name of the campaign in the database.
	Table = "campaigns"
	// LeadsTable is the table that holds the leads relation/edge.
	LeadsTable = "leads"
	// LeadsInverseTable is the table name for the Lead entity.
	// It exists in this package in order to avoid circular dependency with the "lead" package.
	LeadsInverseTable = "leads"
	// LeadsColumn is the table column denoting the leads relation/edge.
	LeadsColumn = "campaign_id"
	// StepsTable is the table that holds the steps relation/edge.
	StepsTable = "lead_steps"
	// StepsInverseTable is the table name for the LeadStep entity.
	// It exists in this package in order to avoid circular dependency with the "leadstep" package.
	StepsInverseTable = "lead_steps"
	// StepsColumn is the table column denoting the steps relation/edge.
	StepsColumn = "campaign_id"
)

// Columns holds all SQL columns for campaign fields.
var Columns = []string{
	FieldID,
	FieldOrganizationID,
	FieldName,
	FieldConnectedAccountID,
	FieldStatus,
	FieldGraph,
	FieldScheduleStart,
	FieldScheduleEnd,
	FieldTimezone,
	FieldDailyLimit,
	FieldWeeklyLimit,
	FieldSentDay,
	FieldSentWeek,
	FieldLastDayResetAt,
	FieldLastWeekResetAt,
	FieldPauseReason,
	FieldErrorMessage,
	FieldCreatedAt,
	FieldStartedAt,
	FieldCompletedAt,
	FieldDeletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimezone holds the default value on creation for the "timezone" field.
	DefaultTimezone string
	// DefaultDailyLimit holds the default value on creation for the "daily_limit" field.
	DefaultDailyLimit int
	// DefaultWeeklyLimit holds the default value on creation for the "weekly_limit" field.
	DefaultWeeklyLimit int
	// DefaultSentDay holds the default value on creation for the "sent_day" field.
	DefaultSentDay int
	// DefaultSentWeek holds the default value on creation for the "sent_week" field.
	DefaultSentWeek int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusDraft is the default value of the Status enum.
const DefaultStatus = StatusDraft

// Status values.
const (
	StatusDraft     Status = "draft"
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusDraft, StatusActive, StatusPaused, StatusCompleted, StatusFailed:
		return nil
	default:
		return fmt.Errorf("campaign: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Campaign queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOrganizationID orders the results by the organization_id field.
func ByOrganizationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrganizationID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByConnectedAccountID orders the results by the connected_account_id field.
func ByConnectedAccountID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConnectedAccountID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByGraph orders the results by the graph field.
func ByGraph(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGraph, opts...).ToFunc()
}

// ByScheduleStart orders the results by the schedule_start field.
func ByScheduleStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScheduleStart, opts...).ToFunc()
}

// ByScheduleEnd orders the results by the schedule_end field.
func ByScheduleEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScheduleEnd, opts...).ToFunc()
}

// ByTimezone orders the results by the timezone field.
func ByTimezone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimezone, opts...).ToFunc()
}

// ByDailyLimit orders the results by the daily_limit field.
func ByDailyLimit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDailyLimit, opts...).ToFunc()
}

// ByWeeklyLimit orders the results by the weekly_limit field.
func ByWeeklyLimit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeeklyLimit, opts...).ToFunc()
}

// BySentDay orders the results by the sent_day field.
func BySentDay(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSentDay, opts...).ToFunc()
}

// BySentWeek orders the results by the sent_week field.
func BySentWeek(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSentWeek, opts...).ToFunc()
}

// ByLastDayResetAt orders the results by the last_day_reset_at field.
func ByLastDayResetAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastDayResetAt, opts...).ToFunc()
}

// ByLastWeekResetAt orders the results by the last_week_reset_at field.
func ByLastWeekResetAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastWeekResetAt, opts...).ToFunc()
}

// ByPauseReason orders the results by the pause_reason field.
func ByPauseReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPauseReason, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByLeadsCount orders the results by leads count.
func ByLeadsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newLeadsStep(), opts...)
	}
}

// ByLeads orders the results by leads terms.
func ByLeads(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLeadsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByStepsCount orders the results by steps count.
func ByStepsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStepsStep(), opts...)
	}
}

// BySteps orders the results by steps terms.
func BySteps(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStepsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newLeadsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LeadsInverseTable, LeadFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, LeadsTable, LeadsColumn),
	)
}
func newStepsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StepsInverseTable, LeadStepFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StepsTable, StepsColumn),
	)
}
