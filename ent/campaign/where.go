// Code generated by ent, DO NOT EDIT.

package campaign

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/reachforge/reachforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Campaign {
	return predicate.Campaign(sql.FieldContainsFold(FieldID, id))
}

// OrganizationID applies equality check predicate on the "organization_id" field. It's identical to OrganizationIDEQ.
func OrganizationID(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldOrganizationID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldName, v))
}

// ConnectedAccountID applies equality check predicate on the "connected_account_id" field. It's identical to ConnectedAccountIDEQ.
func ConnectedAccountID(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldConnectedAccountID, v))
}

// Graph applies equality check predicate on the "graph" field. It's identical to GraphEQ.
func Graph(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldGraph, v))
}

// ScheduleStart applies equality check predicate on the "schedule_start" field. It's identical to ScheduleStartEQ.
func ScheduleStart(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldScheduleStart, v))
}

// ScheduleEnd applies equality check predicate on the "schedule_end" field. It's identical to ScheduleEndEQ.
func ScheduleEnd(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldScheduleEnd, v))
}

// Timezone applies equality check predicate on the "timezone" field. It's identical to TimezoneEQ.
func Timezone(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldTimezone, v))
}

// DailyLimit applies equality check predicate on the "daily_limit" field. It's identical to DailyLimitEQ.
func DailyLimit(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldDailyLimit, v))
}

// WeeklyLimit applies equality check predicate on the "weekly_limit" field. It's identical to WeeklyLimitEQ.
func WeeklyLimit(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldWeeklyLimit, v))
}

// SentDay applies equality check predicate on the "sent_day" field. It's identical to SentDayEQ.
func SentDay(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldSentDay, v))
}

// SentWeek applies equality check predicate on the "sent_week" field. It's identical to SentWeekEQ.
func SentWeek(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldSentWeek, v))
}

// LastDayResetAt applies equality check predicate on the "last_day_reset_at" field. It's identical to LastDayResetAtEQ.
func LastDayResetAt(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldLastDayResetAt, v))
}

// LastWeekResetAt applies equality check predicate on the "last_week_reset_at" field. It's identical to LastWeekResetAtEQ.
func LastWeekResetAt(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldLastWeekResetAt, v))
}

// PauseReason applies equality check predicate on the "pause_reason" field. It's identical to PauseReasonEQ.
func PauseReason(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldPauseReason, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldCompletedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldDeletedAt, v))
}

// OrganizationIDEQ applies the EQ predicate on the "organization_id" field.
func OrganizationIDEQ(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldOrganizationID, v))
}

// OrganizationIDNEQ applies the NEQ predicate on the "organization_id" field.
func OrganizationIDNEQ(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldOrganizationID, v))
}

// OrganizationIDIn applies the In predicate on the "organization_id" field.
func OrganizationIDIn(vs ...string) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldOrganizationID, vs...))
}

// OrganizationIDNotIn applies the NotIn predicate on the "organization_id" field.
func OrganizationIDNotIn(vs ...string) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldOrganizationID, vs...))
}

// OrganizationIDGT applies the GT predicate on the "organization_id" field.
func OrganizationIDGT(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldOrganizationID, v))
}

// OrganizationIDGTE applies the GTE predicate on the "organization_id" field.
func OrganizationIDGTE(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldOrganizationID, v))
}

// OrganizationIDLT applies the LT predicate on the "organization_id" field.
func OrganizationIDLT(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldOrganizationID, v))
}

// OrganizationIDLTE applies the LTE predicate on the "organization_id" field.
func OrganizationIDLTE(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldOrganizationID, v))
}

// OrganizationIDContains applies the Contains predicate on the "organization_id" field.
func OrganizationIDContains(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldContains(FieldOrganizationID, v))
}

// OrganizationIDHasPrefix applies the HasPrefix predicate on the "organization_id" field.
func OrganizationIDHasPrefix(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldHasPrefix(FieldOrganizationID, v))
}

// OrganizationIDHasSuffix applies the HasSuffix predicate on the "organization_id" field.
func OrganizationIDHasSuffix(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldHasSuffix(FieldOrganizationID, v))
}

// OrganizationIDEqualFold applies the EqualFold predicate on the "organization_id" field.
func OrganizationIDEqualFold(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEqualFold(FieldOrganizationID, v))
}

// OrganizationIDContainsFold applies the ContainsFold predicate on the "organization_id" field.
func OrganizationIDContainsFold(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldContainsFold(FieldOrganizationID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldContainsFold(FieldName, v))
}

// ConnectedAccountIDEQ applies the EQ predicate on the "connected_account_id" field.
func ConnectedAccountIDEQ(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldConnectedAccountID, v))
}

// ConnectedAccountIDNEQ applies the NEQ predicate on the "connected_account_id" field.
func ConnectedAccountIDNEQ(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldConnectedAccountID, v))
}

// ConnectedAccountIDIn applies the In predicate on the "connected_account_id" field.
func ConnectedAccountIDIn(vs ...string) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldConnectedAccountID, vs...))
}

// ConnectedAccountIDNotIn applies the NotIn predicate on the "connected_account_id" field.
func ConnectedAccountIDNotIn(vs ...string) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldConnectedAccountID, vs...))
}

// ConnectedAccountIDGT applies the GT predicate on the "connected_account_id" field.
func ConnectedAccountIDGT(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldConnectedAccountID, v))
}

// ConnectedAccountIDGTE applies the GTE predicate on the "connected_account_id" field.
func ConnectedAccountIDGTE(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldConnectedAccountID, v))
}

// ConnectedAccountIDLT applies the LT predicate on the "connected_account_id" field.
func ConnectedAccountIDLT(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldConnectedAccountID, v))
}

// ConnectedAccountIDLTE applies the LTE predicate on the "connected_account_id" field.
func ConnectedAccountIDLTE(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldConnectedAccountID, v))
}

// ConnectedAccountIDContains applies the Contains predicate on the "connected_account_id" field.
func ConnectedAccountIDContains(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldContains(FieldConnectedAccountID, v))
}

// ConnectedAccountIDHasPrefix applies the HasPrefix predicate on the "connected_account_id" field.
func ConnectedAccountIDHasPrefix(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldHasPrefix(FieldConnectedAccountID, v))
}

// ConnectedAccountIDHasSuffix applies the HasSuffix predicate on the "connected_account_id" field.
func ConnectedAccountIDHasSuffix(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldHasSuffix(FieldConnectedAccountID, v))
}

// ConnectedAccountIDEqualFold applies the EqualFold predicate on the "connected_account_id" field.
func ConnectedAccountIDEqualFold(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEqualFold(FieldConnectedAccountID, v))
}

// ConnectedAccountIDContainsFold applies the ContainsFold predicate on the "connected_account_id" field.
func ConnectedAccountIDContainsFold(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldContainsFold(FieldConnectedAccountID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldStatus, vs...))
}

// GraphEQ applies the EQ predicate on the "graph" field.
func GraphEQ(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldGraph, v))
}

// GraphNEQ applies the NEQ predicate on the "graph" field.
func GraphNEQ(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldGraph, v))
}

// GraphIn applies the In predicate on the "graph" field.
func GraphIn(vs ...string) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldGraph, vs...))
}

// GraphNotIn applies the NotIn predicate on the "graph" field.
func GraphNotIn(vs ...string) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldGraph, vs...))
}

// GraphGT applies the GT predicate on the "graph" field.
func GraphGT(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldGraph, v))
}

// GraphGTE applies the GTE predicate on the "graph" field.
func GraphGTE(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldGraph, v))
}

// GraphLT applies the LT predicate on the "graph" field.
func GraphLT(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldGraph, v))
}

// GraphLTE applies the LTE predicate on the "graph" field.
func GraphLTE(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldGraph, v))
}

// GraphContains applies the Contains predicate on the "graph" field.
func GraphContains(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldContains(FieldGraph, v))
}

// GraphHasPrefix applies the HasPrefix predicate on the "graph" field.
func GraphHasPrefix(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldHasPrefix(FieldGraph, v))
}

// GraphHasSuffix applies the HasSuffix predicate on the "graph" field.
func GraphHasSuffix(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldHasSuffix(FieldGraph, v))
}

// GraphEqualFold applies the EqualFold predicate on the "graph" field.
func GraphEqualFold(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEqualFold(FieldGraph, v))
}

// GraphContainsFold applies the ContainsFold predicate on the "graph" field.
func GraphContainsFold(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldContainsFold(FieldGraph, v))
}

// ScheduleStartEQ applies the EQ predicate on the "schedule_start" field.
func ScheduleStartEQ(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldScheduleStart, v))
}

// ScheduleStartNEQ applies the NEQ predicate on the "schedule_start" field.
func ScheduleStartNEQ(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldScheduleStart, v))
}

// ScheduleStartIn applies the In predicate on the "schedule_start" field.
func ScheduleStartIn(vs ...string) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldScheduleStart, vs...))
}

// ScheduleStartNotIn applies the NotIn predicate on the "schedule_start" field.
func ScheduleStartNotIn(vs ...string) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldScheduleStart, vs...))
}

// ScheduleStartGT applies the GT predicate on the "schedule_start" field.
func ScheduleStartGT(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldScheduleStart, v))
}

// ScheduleStartGTE applies the GTE predicate on the "schedule_start" field.
func ScheduleStartGTE(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldScheduleStart, v))
}

// ScheduleStartLT applies the LT predicate on the "schedule_start" field.
func ScheduleStartLT(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldScheduleStart, v))
}

// ScheduleStartLTE applies the LTE predicate on the "schedule_start" field.
func ScheduleStartLTE(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldScheduleStart, v))
}

// ScheduleStartContains applies the Contains predicate on the "schedule_start" field.
func ScheduleStartContains(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldContains(FieldScheduleStart, v))
}

// ScheduleStartHasPrefix applies the HasPrefix predicate on the "schedule_start" field.
func ScheduleStartHasPrefix(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldHasPrefix(FieldScheduleStart, v))
}

// ScheduleStartHasSuffix applies the HasSuffix predicate on the "schedule_start" field.
func ScheduleStartHasSuffix(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldHasSuffix(FieldScheduleStart, v))
}

// ScheduleStartIsNil applies the IsNil predicate on the "schedule_start" field.
func ScheduleStartIsNil() predicate.Campaign {
	return predicate.Campaign(sql.FieldIsNull(FieldScheduleStart))
}

// ScheduleStartNotNil applies the NotNil predicate on the "schedule_start" field.
func ScheduleStartNotNil() predicate.Campaign {
	return predicate.Campaign(sql.FieldNotNull(FieldScheduleStart))
}

// ScheduleStartEqualFold applies the EqualFold predicate on the "schedule_start" field.
func ScheduleStartEqualFold(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEqualFold(FieldScheduleStart, v))
}

// ScheduleStartContainsFold applies the ContainsFold predicate on the "schedule_start" field.
func ScheduleStartContainsFold(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldContainsFold(FieldScheduleStart, v))
}

// ScheduleEndEQ applies the EQ predicate on the "schedule_end" field.
func ScheduleEndEQ(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldScheduleEnd, v))
}

// ScheduleEndNEQ applies the NEQ predicate on the "schedule_end" field.
func ScheduleEndNEQ(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldScheduleEnd, v))
}

// ScheduleEndIn applies the In predicate on the "schedule_end" field.
func ScheduleEndIn(vs ...string) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldScheduleEnd, vs...))
}

// ScheduleEndNotIn applies the NotIn predicate on the "schedule_end" field.
func ScheduleEndNotIn(vs ...string) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldScheduleEnd, vs...))
}

// ScheduleEndGT applies the GT predicate on the "schedule_end" field.
func ScheduleEndGT(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldScheduleEnd, v))
}

// ScheduleEndGTE applies the GTE predicate on the "schedule_end" field.
func ScheduleEndGTE(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldScheduleEnd, v))
}

// ScheduleEndLT applies the LT predicate on the "schedule_end" field.
func ScheduleEndLT(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldScheduleEnd, v))
}

// ScheduleEndLTE applies the LTE predicate on the "schedule_end" field.
func ScheduleEndLTE(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldScheduleEnd, v))
}

// ScheduleEndContains applies the Contains predicate on the "schedule_end" field.
func ScheduleEndContains(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldContains(FieldScheduleEnd, v))
}

// ScheduleEndHasPrefix applies the HasPrefix predicate on the "schedule_end" field.
func ScheduleEndHasPrefix(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldHasPrefix(FieldScheduleEnd, v))
}

// ScheduleEndHasSuffix applies the HasSuffix predicate on the "schedule_end" field.
func ScheduleEndHasSuffix(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldHasSuffix(FieldScheduleEnd, v))
}

// ScheduleEndIsNil applies the IsNil predicate on the "schedule_end" field.
func ScheduleEndIsNil() predicate.Campaign {
	return predicate.Campaign(sql.FieldIsNull(FieldScheduleEnd))
}

// ScheduleEndNotNil applies the NotNil predicate on the "schedule_end" field.
func ScheduleEndNotNil() predicate.Campaign {
	return predicate.Campaign(sql.FieldNotNull(FieldScheduleEnd))
}

// ScheduleEndEqualFold applies the EqualFold predicate on the "schedule_end" field.
func ScheduleEndEqualFold(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEqualFold(FieldScheduleEnd, v))
}

// ScheduleEndContainsFold applies the ContainsFold predicate on the "schedule_end" field.
func ScheduleEndContainsFold(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldContainsFold(FieldScheduleEnd, v))
}

// TimezoneEQ applies the EQ predicate on the "timezone" field.
func TimezoneEQ(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldTimezone, v))
}

// TimezoneNEQ applies the NEQ predicate on the "timezone" field.
func TimezoneNEQ(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldTimezone, v))
}

// TimezoneIn applies the In predicate on the "timezone" field.
func TimezoneIn(vs ...string) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldTimezone, vs...))
}

// TimezoneNotIn applies the NotIn predicate on the "timezone" field.
func TimezoneNotIn(vs ...string) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldTimezone, vs...))
}

// TimezoneGT applies the GT predicate on the "timezone" field.
func TimezoneGT(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldTimezone, v))
}

// TimezoneGTE applies the GTE predicate on the "timezone" field.
func TimezoneGTE(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldTimezone, v))
}

// TimezoneLT applies the LT predicate on the "timezone" field.
func TimezoneLT(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldTimezone, v))
}

// TimezoneLTE applies the LTE predicate on the "timezone" field.
func TimezoneLTE(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldTimezone, v))
}

// TimezoneContains applies the Contains predicate on the "timezone" field.
func TimezoneContains(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldContains(FieldTimezone, v))
}

// TimezoneHasPrefix applies the HasPrefix predicate on the "timezone" field.
func TimezoneHasPrefix(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldHasPrefix(FieldTimezone, v))
}

// TimezoneHasSuffix applies the HasSuffix predicate on the "timezone" field.
func TimezoneHasSuffix(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldHasSuffix(FieldTimezone, v))
}

// TimezoneEqualFold applies the EqualFold predicate on the "timezone" field.
func TimezoneEqualFold(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEqualFold(FieldTimezone, v))
}

// TimezoneContainsFold applies the ContainsFold predicate on the "timezone" field.
func TimezoneContainsFold(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldContainsFold(FieldTimezone, v))
}

// DailyLimitEQ applies the EQ predicate on the "daily_limit" field.
func DailyLimitEQ(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldDailyLimit, v))
}

// DailyLimitNEQ applies the NEQ predicate on the "daily_limit" field.
func DailyLimitNEQ(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldDailyLimit, v))
}

// DailyLimitIn applies the In predicate on the "daily_limit" field.
func DailyLimitIn(vs ...int) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldDailyLimit, vs...))
}

// DailyLimitNotIn applies the NotIn predicate on the "daily_limit" field.
func DailyLimitNotIn(vs ...int) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldDailyLimit, vs...))
}

// DailyLimitGT applies the GT predicate on the "daily_limit" field.
func DailyLimitGT(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldDailyLimit, v))
}

// DailyLimitGTE applies the GTE predicate on the "daily_limit" field.
func DailyLimitGTE(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldDailyLimit, v))
}

// DailyLimitLT applies the LT predicate on the "daily_limit" field.
func DailyLimitLT(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldDailyLimit, v))
}

// DailyLimitLTE applies the LTE predicate on the "daily_limit" field.
func DailyLimitLTE(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldDailyLimit, v))
}

// WeeklyLimitEQ applies the EQ predicate on the "weekly_limit" field.
func WeeklyLimitEQ(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldWeeklyLimit, v))
}

// WeeklyLimitNEQ applies the NEQ predicate on the "weekly_limit" field.
func WeeklyLimitNEQ(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldWeeklyLimit, v))
}

// WeeklyLimitIn applies the In predicate on the "weekly_limit" field.
func WeeklyLimitIn(vs ...int) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldWeeklyLimit, vs...))
}

// WeeklyLimitNotIn applies the NotIn predicate on the "weekly_limit" field.
func WeeklyLimitNotIn(vs ...int) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldWeeklyLimit, vs...))
}

// WeeklyLimitGT applies the GT predicate on the "weekly_limit" field.
func WeeklyLimitGT(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldWeeklyLimit, v))
}

// WeeklyLimitGTE applies the GTE predicate on the "weekly_limit" field.
func WeeklyLimitGTE(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldWeeklyLimit, v))
}

// WeeklyLimitLT applies the LT predicate on the "weekly_limit" field.
func WeeklyLimitLT(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldWeeklyLimit, v))
}

// WeeklyLimitLTE applies the LTE predicate on the "weekly_limit" field.
func WeeklyLimitLTE(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldWeeklyLimit, v))
}

// SentDayEQ applies the EQ predicate on the "sent_day" field.
func SentDayEQ(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldSentDay, v))
}

// SentDayNEQ applies the NEQ predicate on the "sent_day" field.
func SentDayNEQ(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldSentDay, v))
}

// SentDayIn applies the In predicate on the "sent_day" field.
func SentDayIn(vs ...int) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldSentDay, vs...))
}

// SentDayNotIn applies the NotIn predicate on the "sent_day" field.
func SentDayNotIn(vs ...int) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldSentDay, vs...))
}

// SentDayGT applies the GT predicate on the "sent_day" field.
func SentDayGT(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldSentDay, v))
}

// SentDayGTE applies the GTE predicate on the "sent_day" field.
func SentDayGTE(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldSentDay, v))
}

// SentDayLT applies the LT predicate on the "sent_day" field.
func SentDayLT(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldSentDay, v))
}

// SentDayLTE applies the LTE predicate on the "sent_day" field.
func SentDayLTE(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldSentDay, v))
}

// SentWeekEQ applies the EQ predicate on the "sent_week" field.
func SentWeekEQ(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldSentWeek, v))
}

// SentWeekNEQ applies the NEQ predicate on the "sent_week" field.
func SentWeekNEQ(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldSentWeek, v))
}

// SentWeekIn applies the In predicate on the "sent_week" field.
func SentWeekIn(vs ...int) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldSentWeek, vs...))
}

// SentWeekNotIn applies the NotIn predicate on the "sent_week" field.
func SentWeekNotIn(vs ...int) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldSentWeek, vs...))
}

// SentWeekGT applies the GT predicate on the "sent_week" field.
func SentWeekGT(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldSentWeek, v))
}

// SentWeekGTE applies the GTE predicate on the "sent_week" field.
func SentWeekGTE(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldSentWeek, v))
}

// SentWeekLT applies the LT predicate on the "sent_week" field.
func SentWeekLT(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldSentWeek, v))
}

// SentWeekLTE applies the LTE predicate on the "sent_week" field.
func SentWeekLTE(v int) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldSentWeek, v))
}

// LastDayResetAtEQ applies the EQ predicate on the "last_day_reset_at" field.
func LastDayResetAtEQ(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldLastDayResetAt, v))
}

// LastDayResetAtNEQ applies the NEQ predicate on the "last_day_reset_at" field.
func LastDayResetAtNEQ(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldLastDayResetAt, v))
}

// LastDayResetAtIn applies the In predicate on the "last_day_reset_at" field.
func LastDayResetAtIn(vs ...time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldLastDayResetAt, vs...))
}

// LastDayResetAtNotIn applies the NotIn predicate on the "last_day_reset_at" field.
func LastDayResetAtNotIn(vs ...time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldLastDayResetAt, vs...))
}

// LastDayResetAtGT applies the GT predicate on the "last_day_reset_at" field.
func LastDayResetAtGT(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldLastDayResetAt, v))
}

// LastDayResetAtGTE applies the GTE predicate on the "last_day_reset_at" field.
func LastDayResetAtGTE(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldLastDayResetAt, v))
}

// LastDayResetAtLT applies the LT predicate on the "last_day_reset_at" field.
func LastDayResetAtLT(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldLastDayResetAt, v))
}

// LastDayResetAtLTE applies the LTE predicate on the "last_day_reset_at" field.
func LastDayResetAtLTE(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldLastDayResetAt, v))
}

// LastDayResetAtIsNil applies the IsNil predicate on the "last_day_reset_at" field.
func LastDayResetAtIsNil() predicate.Campaign {
	return predicate.Campaign(sql.FieldIsNull(FieldLastDayResetAt))
}

// LastDayResetAtNotNil applies the NotNil predicate on the "last_day_reset_at" field.
func LastDayResetAtNotNil() predicate.Campaign {
	return predicate.Campaign(sql.FieldNotNull(FieldLastDayResetAt))
}

// LastWeekResetAtEQ applies the EQ predicate on the "last_week_reset_at" field.
func LastWeekResetAtEQ(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldLastWeekResetAt, v))
}

// LastWeekResetAtNEQ applies the NEQ predicate on the "last_week_reset_at" field.
func LastWeekResetAtNEQ(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldLastWeekResetAt, v))
}

// LastWeekResetAtIn applies the In predicate on the "last_week_reset_at" field.
func LastWeekResetAtIn(vs ...time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldLastWeekResetAt, vs...))
}

// LastWeekResetAtNotIn applies the NotIn predicate on the "last_week_reset_at" field.
func LastWeekResetAtNotIn(vs ...time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldLastWeekResetAt, vs...))
}

// LastWeekResetAtGT applies the GT predicate on the "last_week_reset_at" field.
func LastWeekResetAtGT(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldLastWeekResetAt, v))
}

// LastWeekResetAtGTE applies the GTE predicate on the "last_week_reset_at" field.
func LastWeekResetAtGTE(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldLastWeekResetAt, v))
}

// LastWeekResetAtLT applies the LT predicate on the "last_week_reset_at" field.
func LastWeekResetAtLT(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldLastWeekResetAt, v))
}

// LastWeekResetAtLTE applies the LTE predicate on the "last_week_reset_at" field.
func LastWeekResetAtLTE(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldLastWeekResetAt, v))
}

// LastWeekResetAtIsNil applies the IsNil predicate on the "last_week_reset_at" field.
func LastWeekResetAtIsNil() predicate.Campaign {
	return predicate.Campaign(sql.FieldIsNull(FieldLastWeekResetAt))
}

// LastWeekResetAtNotNil applies the NotNil predicate on the "last_week_reset_at" field.
func LastWeekResetAtNotNil() predicate.Campaign {
	return predicate.Campaign(sql.FieldNotNull(FieldLastWeekResetAt))
}

// PauseReasonEQ applies the EQ predicate on the "pause_reason" field.
func PauseReasonEQ(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldPauseReason, v))
}

// PauseReasonNEQ applies the NEQ predicate on the "pause_reason" field.
func PauseReasonNEQ(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldPauseReason, v))
}

// PauseReasonIn applies the In predicate on the "pause_reason" field.
func PauseReasonIn(vs ...string) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldPauseReason, vs...))
}

// PauseReasonNotIn applies the NotIn predicate on the "pause_reason" field.
func PauseReasonNotIn(vs ...string) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldPauseReason, vs...))
}

// PauseReasonGT applies the GT predicate on the "pause_reason" field.
func PauseReasonGT(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldPauseReason, v))
}

// PauseReasonGTE applies the GTE predicate on the "pause_reason" field.
func PauseReasonGTE(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldPauseReason, v))
}

// PauseReasonLT applies the LT predicate on the "pause_reason" field.
func PauseReasonLT(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldPauseReason, v))
}

// PauseReasonLTE applies the LTE predicate on the "pause_reason" field.
func PauseReasonLTE(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldPauseReason, v))
}

// PauseReasonContains applies the Contains predicate on the "pause_reason" field.
func PauseReasonContains(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldContains(FieldPauseReason, v))
}

// PauseReasonHasPrefix applies the HasPrefix predicate on the "pause_reason" field.
func PauseReasonHasPrefix(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldHasPrefix(FieldPauseReason, v))
}

// PauseReasonHasSuffix applies the HasSuffix predicate on the "pause_reason" field.
func PauseReasonHasSuffix(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldHasSuffix(FieldPauseReason, v))
}

// PauseReasonIsNil applies the IsNil predicate on the "pause_reason" field.
func PauseReasonIsNil() predicate.Campaign {
	return predicate.Campaign(sql.FieldIsNull(FieldPauseReason))
}

// PauseReasonNotNil applies the NotNil predicate on the "pause_reason" field.
func PauseReasonNotNil() predicate.Campaign {
	return predicate.Campaign(sql.FieldNotNull(FieldPauseReason))
}

// PauseReasonEqualFold applies the EqualFold predicate on the "pause_reason" field.
func PauseReasonEqualFold(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEqualFold(FieldPauseReason, v))
}

// PauseReasonContainsFold applies the ContainsFold predicate on the "pause_reason" field.
func PauseReasonContainsFold(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldContainsFold(FieldPauseReason, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Campaign {
	return predicate.Campaign(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Campaign {
	return predicate.Campaign(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Campaign {
	return predicate.Campaign(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Campaign {
	return predicate.Campaign(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Campaign {
	return predicate.Campaign(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Campaign {
	return predicate.Campaign(sql.FieldNotNull(FieldCompletedAt))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Campaign {
	return predicate.Campaign(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Campaign {
	return predicate.Campaign(sql.FieldNotNull(FieldDeletedAt))
}

// HasLeads applies the HasEdge predicate on the "leads" edge.
func HasLeads() predicate.Campaign {
	return predicate.Campaign(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, LeadsTable, LeadsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLeadsWith applies the HasEdge predicate on the "leads" edge with a given conditions (other predicates).
func HasLeadsWith(preds ...predicate.Lead) predicate.Campaign {
	return predicate.Campaign(func(s *sql.Selector) {
		step := newLeadsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSteps applies the HasEdge predicate on the "steps" edge.
func HasSteps() predicate.Campaign {
	return predicate.Campaign(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StepsTable, StepsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStepsWith applies the HasEdge predicate on the "steps" edge with a given conditions (other predicates).
func HasStepsWith(preds ...predicate.LeadStep) predicate.Campaign {
	return predicate.Campaign(func(s *sql.Selector) {
		step := newStepsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Campaign) predicate.Campaign {
	return predicate.Campaign(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Campaign) predicate.Campaign {
	return predicate.Campaign(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Campaign) predicate.Campaign {
	return predicate.Campaign(sql.NotPredicates(p))
}
