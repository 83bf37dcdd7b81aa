// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CampaignsColumns holds the columns for the "campaigns" table.
	CampaignsColumns = []*schema.Column{
		{Name: "campaign_id", Type: field.TypeString, Unique: true},
		{Name: "organization_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "connected_account_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "active", "paused", "completed", "failed"}, Default: "draft"},
		{Name: "graph", Type: field.TypeString, Size: 2147483647},
		{Name: "schedule_start", Type: field.TypeString, Nullable: true},
		{Name: "schedule_end", Type: field.TypeString, Nullable: true},
		{Name: "timezone", Type: field.TypeString, Default: "UTC"},
		{Name: "daily_limit", Type: field.TypeInt, Default: 20},
		{Name: "weekly_limit", Type: field.TypeInt, Default: 100},
		{Name: "sent_day", Type: field.TypeInt, Default: 0},
		{Name: "sent_week", Type: field.TypeInt, Default: 0},
		{Name: "last_day_reset_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_week_reset_at", Type: field.TypeTime, Nullable: true},
		{Name: "pause_reason", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// CampaignsTable holds the schema information for the "campaigns" table.
	CampaignsTable = &schema.Table{
		Name:       "campaigns",
		Columns:    CampaignsColumns,
		PrimaryKey: []*schema.Column{CampaignsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "campaign_status",
				Unique:  false,
				Columns: []*schema.Column{CampaignsColumns[4]},
			},
			{
				Name:    "campaign_organization_id",
				Unique:  false,
				Columns: []*schema.Column{CampaignsColumns[1]},
			},
			{
				Name:    "campaign_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{CampaignsColumns[4], CampaignsColumns[17]},
			},
			{
				Name:    "campaign_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{CampaignsColumns[20]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// ConnectedAccountsColumns holds the columns for the "connected_accounts" table.
	ConnectedAccountsColumns = []*schema.Column{
		{Name: "account_id", Type: field.TypeString, Unique: true},
		{Name: "organization_id", Type: field.TypeString},
		{Name: "provider_account_id", Type: field.TypeString},
		{Name: "display_name", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "connected", "error"}, Default: "pending"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ConnectedAccountsTable holds the schema information for the "connected_accounts" table.
	ConnectedAccountsTable = &schema.Table{
		Name:       "connected_accounts",
		Columns:    ConnectedAccountsColumns,
		PrimaryKey: []*schema.Column{ConnectedAccountsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "connectedaccount_organization_id",
				Unique:  false,
				Columns: []*schema.Column{ConnectedAccountsColumns[1]},
			},
			{
				Name:    "connectedaccount_provider_account_id",
				Unique:  false,
				Columns: []*schema.Column{ConnectedAccountsColumns[2]},
			},
		},
	}
	// LeadsColumns holds the columns for the "leads" table.
	LeadsColumns = []*schema.Column{
		{Name: "lead_id", Type: field.TypeString, Unique: true},
		{Name: "first_name", Type: field.TypeString},
		{Name: "last_name", Type: field.TypeString, Nullable: true},
		{Name: "company", Type: field.TypeString, Nullable: true},
		{Name: "profile_url", Type: field.TypeString},
		{Name: "provider_id", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "completed", "failed"}, Default: "pending"},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "campaign_id", Type: field.TypeString},
	}
	// LeadsTable holds the schema information for the "leads" table.
	LeadsTable = &schema.Table{
		Name:       "leads",
		Columns:    LeadsColumns,
		PrimaryKey: []*schema.Column{LeadsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "leads_campaigns_leads",
				Columns:    []*schema.Column{LeadsColumns[11]},
				RefColumns: []*schema.Column{CampaignsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "lead_campaign_id_status",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[11], LeadsColumns[6]},
			},
			{
				Name:    "lead_campaign_id_profile_url",
				Unique:  true,
				Columns: []*schema.Column{LeadsColumns[11], LeadsColumns[4]},
			},
		},
	}
	// LeadStepsColumns holds the columns for the "lead_steps" table.
	LeadStepsColumns = []*schema.Column{
		{Name: "step_id", Type: field.TypeString, Unique: true},
		{Name: "step_index", Type: field.TypeInt},
		{Name: "node_id", Type: field.TypeString},
		{Name: "node_kind", Type: field.TypeEnum, Enums: []string{"profileVisit", "likePost", "commentPost", "sendConnectionRequest", "sendFollowup", "sendInmail", "withdrawRequest", "webhook"}},
		{Name: "config", Type: field.TypeJSON, Nullable: true},
		{Name: "success", Type: field.TypeBool},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "campaign_id", Type: field.TypeString},
		{Name: "lead_id", Type: field.TypeString},
	}
	// LeadStepsTable holds the schema information for the "lead_steps" table.
	LeadStepsTable = &schema.Table{
		Name:       "lead_steps",
		Columns:    LeadStepsColumns,
		PrimaryKey: []*schema.Column{LeadStepsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "lead_steps_campaigns_steps",
				Columns:    []*schema.Column{LeadStepsColumns[8]},
				RefColumns: []*schema.Column{CampaignsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "lead_steps_leads_steps",
				Columns:    []*schema.Column{LeadStepsColumns[9]},
				RefColumns: []*schema.Column{LeadsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "leadstep_campaign_id_lead_id_step_index",
				Unique:  true,
				Columns: []*schema.Column{LeadStepsColumns[8], LeadStepsColumns[9], LeadStepsColumns[1]},
			},
			{
				Name:    "leadstep_lead_id_step_index",
				Unique:  false,
				Columns: []*schema.Column{LeadStepsColumns[9], LeadStepsColumns[1]},
			},
			{
				Name:    "leadstep_campaign_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{LeadStepsColumns[8], LeadStepsColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CampaignsTable,
		ConnectedAccountsTable,
		LeadsTable,
		LeadStepsTable,
	}
)

func init() {
	LeadsTable.ForeignKeys[0].RefTable = CampaignsTable
	LeadStepsTable.ForeignKeys[0].RefTable = CampaignsTable
	LeadStepsTable.ForeignKeys[1].RefTable = LeadsTable
}
