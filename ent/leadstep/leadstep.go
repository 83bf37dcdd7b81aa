// Code generated by ent, DO NOT EDIT.

package leadstep

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the leadstep type in the database.
	Label = "lead_step"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "step_id"
	// FieldCampaignID holds the string denoting the campaign_id field in the database.
	FieldCampaignID = "campaign_id"
	// FieldLeadID holds the string denoting the lead_id field in the database.
	FieldLeadID = "lead_id"
	// FieldStepIndex holds the string denoting the step_index field in the database.
	FieldStepIndex = "step_index"
	// FieldNodeID holds the string denoting the node_id field in the database.
	FieldNodeID = "node_id"
	// FieldNodeKind holds the string denoting the node_kind field in the database.
	FieldNodeKind = "node_kind"
	// FieldConfig holds the string denoting the config field in the database.
	FieldConfig = "config"
	// FieldSuccess holds the string denoting the success field in the database.
	FieldSuccess = "success"
	// FieldResult holds the string denoting the result field in the database.
	FieldResult = "result"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeCampaign holds the string denoting the campaign edge name in mutations.
	EdgeCampaign = "campaign"
	// EdgeLead holds the string denoting the lead edge name in mutations.
	EdgeLead = "lead"
	// CampaignFieldID holds the string denoting the ID field of the Campaign.
	CampaignFieldID = "campaign_id"
	// LeadFieldID holds the string denoting the ID field of the Lead.
	LeadFieldID = "lead_id"
	// Table holds the table name of the leadstep in the database.
	Table = "lead_steps"
	// CampaignTable is the table that holds the campaign relation/edge.
	CampaignTable = "lead_steps"
	// CampaignInverseTable is the table name for the Campaign entity.
	// It exists in this package in order to avoid circular dependency with the "campaign" package.
	CampaignInverseTable = "campaigns"
	// CampaignColumn is the table column denoting the campaign relation/edge.
	CampaignColumn = "campaign_id"
	// LeadTable is the table that holds the lead relation/edge.
	LeadTable = "lead_steps"
	// LeadInverseTable is the table name for the Lead entity.
	// It exists in this package in order to avoid circular dependency with the "lead" package.
	LeadInverseTable = "leads"
	// LeadColumn is the table column denoting the lead relation/edge.
	LeadColumn = "lead_id"
)

// Columns holds all SQL columns for leadstep fields.
var Columns = []string{
	FieldID,
	FieldCampaignID,
	FieldLeadID,
	FieldStepIndex,
	FieldNodeID,
	FieldNodeKind,
	FieldConfig,
	FieldSuccess,
	FieldResult,
	FieldCreatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// NodeKind defines the type for the "node_kind" enum field.
type NodeKind string

// NodeKind values.
const (
	NodeKindProfileVisit          NodeKind = "profileVisit"
	NodeKindLikePost              NodeKind = "likePost"
	NodeKindCommentPost           NodeKind = "commentPost"
	NodeKindSendConnectionRequest NodeKind = "sendConnectionRequest"
	NodeKindSendFollowup          NodeKind = "sendFollowup"
	NodeKindSendInmail            NodeKind = "sendInmail"
	NodeKindWithdrawRequest       NodeKind = "withdrawRequest"
	NodeKindWebhook               NodeKind = "webhook"
)

func (nk NodeKind) String() string {
	return string(nk)
}

// NodeKindValidator is a validator for the "node_kind" field enum values. It is called by the builders before save.
func NodeKindValidator(nk NodeKind) error {
	switch nk {
	case NodeKindProfileVisit, NodeKindLikePost, NodeKindCommentPost, NodeKindSendConnectionRequest, NodeKindSendFollowup, NodeKindSendInmail, NodeKindWithdrawRequest, NodeKindWebhook:
		return nil
	default:
		return fmt.Errorf("leadstep: invalid enum value for node_kind field: %q", nk)
	}
}

// OrderOption defines the ordering options for the LeadStep queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCampaignID orders the results by the campaign_id field.
func ByCampaignID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCampaignID, opts...).ToFunc()
}

// ByLeadID orders the results by the lead_id field.
func ByLeadID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeadID, opts...).ToFunc()
}

// ByStepIndex orders the results by the step_index field.
func ByStepIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepIndex, opts...).ToFunc()
}

// ByNodeID orders the results by the node_id field.
func ByNodeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNodeID, opts...).ToFunc()
}

// ByNodeKind orders the results by the node_kind field.
func ByNodeKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNodeKind, opts...).ToFunc()
}

// BySuccess orders the results by the success field.
func BySuccess(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuccess, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByCampaignField orders the results by campaign field.
func ByCampaignField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCampaignStep(), sql.OrderByField(field, opts...))
	}
}

// ByLeadField orders the results by lead field.
func ByLeadField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLeadStep(), sql.OrderByField(field, opts...))
	}
}
func newCampaignStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CampaignInverseTable, CampaignFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CampaignTable, CampaignColumn),
	)
}
func newLeadStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LeadInverseTable, LeadFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, LeadTable, LeadColumn),
	)
}
