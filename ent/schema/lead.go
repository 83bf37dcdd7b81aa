package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Lead holds the schema definition for the Lead entity.
// Created during import; status is mutated only by the lead workflow.
type Lead struct {
	ent.Schema
}

// Fields of the Lead.
func (Lead) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("lead_id").
			Unique().
			Immutable(),
		field.String("campaign_id").
			Immutable(),
		field.String("first_name"),
		field.String("last_name").
			Optional(),
		field.String("company").
			Optional(),
		field.String("profile_url").
			Comment("Public profile URL as imported"),
		field.String("provider_id").
			Optional().
			Nillable().
			Comment("Provider URN, filled after the first profile visit"),
		field.Enum("status").
			Values("pending", "processing", "completed", "failed").
			Default("pending"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Lead.
func (Lead) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("campaign", Campaign.Type).
			Ref("leads").
			Field("campaign_id").
			Unique().
			Required().
			Immutable(),
		edge.To("steps", LeadStep.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Lead.
func (Lead) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("campaign_id", "status"),
		// Re-importing the same list must not duplicate leads.
		index.Fields("campaign_id", "profile_url").
			Unique(),
	}
}
