package models

// CreateAccountRequest registers a provider account for an organization.
type CreateAccountRequest struct {
	AccountID         string `json:"account_id,omitempty"`
	OrganizationID    string `json:"organization_id" binding:"required"`
	ProviderAccountID string `json:"provider_account_id" binding:"required"`
	DisplayName       string `json:"display_name,omitempty"`
}
