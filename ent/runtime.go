// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/reachforge/reachforge/ent/campaign"
	"github.com/reachforge/reachforge/ent/connectedaccount"
	"github.com/reachforge/reachforge/ent/lead"
	"github.com/reachforge/reachforge/ent/leadstep"
	"github.com/reachforge/reachforge/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	campaignFields := schema.Campaign{}.Fields()
	_ = campaignFields
	// campaignDescTimezone is the schema descriptor for timezone field.
	campaignDescTimezone := campaignFields[8].Descriptor()
	// campaign.DefaultTimezone holds the default value on creation for the timezone field.
	campaign.DefaultTimezone = campaignDescTimezone.Default.(string)
	// campaignDescDailyLimit is the schema descriptor for daily_limit field.
	campaignDescDailyLimit := campaignFields[9].Descriptor()
	// campaign.DefaultDailyLimit holds the default value on creation for the daily_limit field.
	campaign.DefaultDailyLimit = campaignDescDailyLimit.Default.(int)
	// campaignDescWeeklyLimit is the schema descriptor for weekly_limit field.
	campaignDescWeeklyLimit := campaignFields[10].Descriptor()
	// campaign.DefaultWeeklyLimit holds the default value on creation for the weekly_limit field.
	campaign.DefaultWeeklyLimit = campaignDescWeeklyLimit.Default.(int)
	// campaignDescSentDay is the schema descriptor for sent_day field.
	campaignDescSentDay := campaignFields[11].Descriptor()
	// campaign.DefaultSentDay holds the default value on creation for the sent_day field.
	campaign.DefaultSentDay = campaignDescSentDay.Default.(int)
	// campaignDescSentWeek is the schema descriptor for sent_week field.
	campaignDescSentWeek := campaignFields[12].Descriptor()
	// campaign.DefaultSentWeek holds the default value on creation for the sent_week field.
	campaign.DefaultSentWeek = campaignDescSentWeek.Default.(int)
	// campaignDescCreatedAt is the schema descriptor for created_at field.
	campaignDescCreatedAt := campaignFields[17].Descriptor()
	// campaign.DefaultCreatedAt holds the default value on creation for the created_at field.
	campaign.DefaultCreatedAt = campaignDescCreatedAt.Default.(func() time.Time)
	connectedaccountFields := schema.ConnectedAccount{}.Fields()
	_ = connectedaccountFields
	// connectedaccountDescCreatedAt is the schema descriptor for created_at field.
	connectedaccountDescCreatedAt := connectedaccountFields[5].Descriptor()
	// connectedaccount.DefaultCreatedAt holds the default value on creation for the created_at field.
	connectedaccount.DefaultCreatedAt = connectedaccountDescCreatedAt.Default.(func() time.Time)
	// connectedaccountDescUpdatedAt is the schema descriptor for updated_at field.
	connectedaccountDescUpdatedAt := connectedaccountFields[6].Descriptor()
	// connectedaccount.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	connectedaccount.DefaultUpdatedAt = connectedaccountDescUpdatedAt.Default.(func() time.Time)
	// connectedaccount.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	connectedaccount.UpdateDefaultUpdatedAt = connectedaccountDescUpdatedAt.UpdateDefault.(func() time.Time)
	leadFields := schema.Lead{}.Fields()
	_ = leadFields
	// leadDescCreatedAt is the schema descriptor for created_at field.
	leadDescCreatedAt := leadFields[9].Descriptor()
	// lead.DefaultCreatedAt holds the default value on creation for the created_at field.
	lead.DefaultCreatedAt = leadDescCreatedAt.Default.(func() time.Time)
	leadstepFields := schema.LeadStep{}.Fields()
	_ = leadstepFields
	// leadstepDescCreatedAt is the schema descriptor for created_at field.
	leadstepDescCreatedAt := leadstepFields[9].Descriptor()
	// leadstep.DefaultCreatedAt holds the default value on creation for the created_at field.
	leadstep.DefaultCreatedAt = leadstepDescCreatedAt.Default.(func() time.Time)
}
