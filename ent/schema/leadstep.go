package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LeadStep holds the schema definition for the LeadStep entity — the step
// ledger. One row per (campaign, lead, step_index); immutable once written.
// A second write for the same key is a no-op, which makes every node
// execution idempotent across workflow replays.
type LeadStep struct {
	ent.Schema
}

// Fields of the LeadStep.
func (LeadStep) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("step_id").
			Unique().
			Immutable(),
		field.String("campaign_id").
			Immutable(),
		field.String("lead_id").
			Immutable(),
		field.Int("step_index").
			Immutable().
			Comment("Visit order within the lead's walk, 0-based"),
		field.String("node_id").
			Immutable().
			Comment("Graph node that produced this step"),
		field.Enum("node_kind").
			Values(
				"profileVisit",
				"likePost",
				"commentPost",
				"sendConnectionRequest",
				"sendFollowup",
				"sendInmail",
				"withdrawRequest",
				"webhook",
			).
			Immutable(),
		field.JSON("config", map[string]interface{}{}).
			Optional().
			Immutable().
			Comment("Node config snapshot at execution time"),
		field.Bool("success").
			Immutable(),
		field.JSON("result", map[string]interface{}{}).
			Optional().
			Immutable().
			Comment("Result payload: provider ids, error code, poll status, ..."),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the LeadStep.
func (LeadStep) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("campaign", Campaign.Type).
			Ref("steps").
			Field("campaign_id").
			Unique().
			Required().
			Immutable(),
		edge.From("lead", Lead.Type).
			Ref("steps").
			Field("lead_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the LeadStep.
func (LeadStep) Indexes() []ent.Index {
	return []ent.Index{
		// The idempotency key.
		index.Fields("campaign_id", "lead_id", "step_index").
			Unique(),
		index.Fields("lead_id", "step_index"),
		index.Fields("campaign_id", "created_at"),
	}
}
