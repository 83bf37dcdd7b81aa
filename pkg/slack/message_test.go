package slack

import (
	"strings"
	"testing"

	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sectionText(t *testing.T, b goslack.Block) string {
	t.Helper()
	section, ok := b.(*goslack.SectionBlock)
	require.True(t, ok, "expected section block")
	return section.Text.Text
}

func TestBuildCampaignEventMessage(t *testing.T) {
	t.Run("completed with stats and dashboard link", func(t *testing.T) {
		blocks := BuildCampaignEventMessage(CampaignEventInput{
			CampaignID:   "c-1",
			CampaignName: "Q3 founders",
			Event:        "completed",
			TotalLeads:   100,
			Processed:    100,
			Success:      88,
			Fail:         12,
		}, "https://app.example.com")

		require.Len(t, blocks, 3)
		header := sectionText(t, blocks[0])
		assert.Contains(t, header, "Campaign Completed")
		assert.Contains(t, header, "Q3 founders")

		stats, ok := blocks[1].(*goslack.ContextBlock)
		require.True(t, ok)
		assert.Contains(t, stats.ContextElements.Elements[0].(*goslack.TextBlockObject).Text, "88 succeeded")

		link, ok := blocks[2].(*goslack.ContextBlock)
		require.True(t, ok)
		assert.Contains(t, link.ContextElements.Elements[0].(*goslack.TextBlockObject).Text, "/campaigns/c-1")
	})

	t.Run("paused with reason", func(t *testing.T) {
		blocks := BuildCampaignEventMessage(CampaignEventInput{
			CampaignID:   "c-2",
			CampaignName: "outbound",
			Event:        "paused",
			Reason:       "account auth failure",
		}, "")

		require.Len(t, blocks, 2)
		assert.Contains(t, sectionText(t, blocks[0]), "Campaign Paused")
		assert.Contains(t, sectionText(t, blocks[1]), "account auth failure")
	})

	t.Run("unknown event still renders", func(t *testing.T) {
		blocks := BuildCampaignEventMessage(CampaignEventInput{
			CampaignID:   "c-3",
			CampaignName: "x",
			Event:        "archived",
		}, "")
		require.Len(t, blocks, 1)
		assert.Contains(t, sectionText(t, blocks[0]), "Campaign archived")
	})

	t.Run("long reason truncated", func(t *testing.T) {
		blocks := BuildCampaignEventMessage(CampaignEventInput{
			CampaignID:   "c-4",
			CampaignName: "x",
			Event:        "failed",
			Reason:       strings.Repeat("e", 4000),
		}, "")
		require.Len(t, blocks, 2)
		assert.LessOrEqual(t, len(sectionText(t, blocks[1])), maxBlockTextLength+len("…"))
	})
}
