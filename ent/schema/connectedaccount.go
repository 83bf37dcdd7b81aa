package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ConnectedAccount holds the schema definition for the ConnectedAccount
// entity — the provider account a campaign sends from. The engine only ever
// reads these rows; account onboarding writes them.
type ConnectedAccount struct {
	ent.Schema
}

// Fields of the ConnectedAccount.
func (ConnectedAccount) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("account_id").
			Unique().
			Immutable(),
		field.String("organization_id").
			Immutable(),
		field.String("provider_account_id").
			Comment("Opaque handle the aggregator assigned to this account"),
		field.String("display_name").
			Optional(),
		field.Enum("status").
			Values("pending", "connected", "error").
			Default("pending"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the ConnectedAccount.
func (ConnectedAccount) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("organization_id"),
		index.Fields("provider_account_id"),
	}
}
