package slack

import (
	"fmt"

	goslack "github.com/slack-go/slack"
)

const maxBlockTextLength = 2900

var eventEmoji = map[string]string{
	"started":   ":rocket:",
	"paused":    ":pause_button:",
	"resumed":   ":arrow_forward:",
	"completed": ":white_check_mark:",
	"failed":    ":x:",
	"stopped":   ":no_entry_sign:",
}

var eventLabel = map[string]string{
	"started":   "Campaign Started",
	"paused":    "Campaign Paused",
	"resumed":   "Campaign Resumed",
	"completed": "Campaign Completed",
	"failed":    "Campaign Failed",
	"stopped":   "Campaign Stopped",
}

func campaignURL(campaignID, dashboardURL string) string {
	return fmt.Sprintf("%s/campaigns/%s", dashboardURL, campaignID)
}

// BuildCampaignEventMessage creates Block Kit blocks for a campaign
// lifecycle notification.
func BuildCampaignEventMessage(input CampaignEventInput, dashboardURL string) []goslack.Block {
	emoji := eventEmoji[input.Event]
	if emoji == "" {
		emoji = ":bell:"
	}
	label := eventLabel[input.Event]
	if label == "" {
		label = "Campaign " + input.Event
	}

	headerText := fmt.Sprintf("%s *%s* — %s", emoji, label, input.CampaignName)
	blocks := []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, headerText, false, false),
			nil, nil,
		),
	}

	if input.Reason != "" {
		blocks = append(blocks, goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, truncateForSlack("Reason: "+input.Reason), false, false),
			nil, nil,
		))
	}

	if input.TotalLeads > 0 {
		stats := fmt.Sprintf("Leads: %d total, %d processed, %d succeeded, %d failed",
			input.TotalLeads, input.Processed, input.Success, input.Fail)
		blocks = append(blocks, goslack.NewContextBlock("",
			goslack.NewTextBlockObject(goslack.MarkdownType, stats, false, false)))
	}

	if dashboardURL != "" {
		link := fmt.Sprintf("<%s|View in Dashboard>", campaignURL(input.CampaignID, dashboardURL))
		blocks = append(blocks, goslack.NewContextBlock("",
			goslack.NewTextBlockObject(goslack.MarkdownType, link, false, false)))
	}

	return blocks
}

func truncateForSlack(s string) string {
	if len(s) <= maxBlockTextLength {
		return s
	}
	return s[:maxBlockTextLength] + "…"
}
