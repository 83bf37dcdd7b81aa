package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Campaign holds the schema definition for the Campaign entity.
// A campaign binds a lead list to a workflow graph and carries the
// per-campaign quota counters and the business-hours schedule window.
type Campaign struct {
	ent.Schema
}

// Fields of the Campaign.
func (Campaign) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("campaign_id").
			Unique().
			Immutable(),
		field.String("organization_id").
			Comment("Owning organization"),
		field.String("name"),
		field.String("connected_account_id").
			Comment("Provider account used for all outreach in this campaign"),
		field.Enum("status").
			Values("draft", "active", "paused", "completed", "failed").
			Default("draft"),
		field.Text("graph").
			Comment("Workflow graph snapshot (JSON). Immutable once the campaign starts."),

		// Schedule window. Both nil means 24/7.
		field.String("schedule_start").
			Optional().
			Nillable().
			Comment("Window start, HH:MM"),
		field.String("schedule_end").
			Optional().
			Nillable().
			Comment("Window end, HH:MM"),
		field.String("timezone").
			Default("UTC").
			Comment("IANA timezone for the schedule window"),

		// Connection-request quota.
		field.Int("daily_limit").
			Default(20),
		field.Int("weekly_limit").
			Default(100),
		field.Int("sent_day").
			Default(0),
		field.Int("sent_week").
			Default(0),
		field.Time("last_day_reset_at").
			Optional().
			Nillable(),
		field.Time("last_week_reset_at").
			Optional().
			Nillable(),

		field.String("pause_reason").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When the orchestrator workflow started"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Soft delete for retention policy"),
	}
}

// Edges of the Campaign.
func (Campaign) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("leads", Lead.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("steps", LeadStep.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Campaign.
func (Campaign) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("organization_id"),
		index.Fields("status", "created_at"),

		// Partial index for soft deletes
		index.Fields("deleted_at").
			Annotations(entsql.IndexWhere("deleted_at IS NOT NULL")),
	}
}
