package models

// LeadImport is a single row of a lead list upload.
type LeadImport struct {
	FirstName  string `json:"first_name" binding:"required"`
	LastName   string `json:"last_name,omitempty"`
	Company    string `json:"company,omitempty"`
	ProfileURL string `json:"profile_url" binding:"required"`
}

// ImportLeadsRequest is the payload for importing leads into a campaign.
type ImportLeadsRequest struct {
	Leads []LeadImport `json:"leads" binding:"required"`
}

// ImportLeadsResult reports how an import went. Rows whose profile URL
// already exists in the campaign are counted as skipped.
type ImportLeadsResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}
