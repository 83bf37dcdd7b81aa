package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/reachforge/reachforge/ent"
	"github.com/reachforge/reachforge/ent/connectedaccount"
	"github.com/reachforge/reachforge/pkg/models"
)

// AccountService manages the provider accounts campaigns send from.
type AccountService struct {
	client *ent.Client
}

// NewAccountService creates a new AccountService
func NewAccountService(client *ent.Client) *AccountService {
	return &AccountService{client: client}
}

// CreateAccount registers a provider account in pending state.
func (s *AccountService) CreateAccount(httpCtx context.Context, req models.CreateAccountRequest) (*ent.ConnectedAccount, error) {
	if req.OrganizationID == "" {
		return nil, NewValidationError("organization_id", "required")
	}
	if req.ProviderAccountID == "" {
		return nil, NewValidationError("provider_account_id", "required")
	}

	accountID := req.AccountID
	if accountID == "" {
		accountID = uuid.New().String()
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	acct, err := s.client.ConnectedAccount.Create().
		SetID(accountID).
		SetOrganizationID(req.OrganizationID).
		SetProviderAccountID(req.ProviderAccountID).
		SetDisplayName(req.DisplayName).
		SetStatus(connectedaccount.StatusPending).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return acct, nil
}

// GetAccount retrieves an account by ID
func (s *AccountService) GetAccount(ctx context.Context, accountID string) (*ent.ConnectedAccount, error) {
	acct, err := s.client.ConnectedAccount.Get(ctx, accountID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return acct, nil
}

// ListAccounts returns an organization's accounts, oldest first.
func (s *AccountService) ListAccounts(ctx context.Context, organizationID string) ([]*ent.ConnectedAccount, error) {
	accounts, err := s.client.ConnectedAccount.Query().
		Where(connectedaccount.OrganizationIDEQ(organizationID)).
		Order(ent.Asc(connectedaccount.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// MarkConnected records the account as usable for outreach.
func (s *AccountService) MarkConnected(ctx context.Context, accountID string) error {
	return s.setStatus(ctx, accountID, connectedaccount.StatusConnected)
}

// MarkError records the account as broken (expired session, revoked access).
// Campaigns on this account pause until it is reconnected.
func (s *AccountService) MarkError(ctx context.Context, accountID string) error {
	return s.setStatus(ctx, accountID, connectedaccount.StatusError)
}

func (s *AccountService) setStatus(_ context.Context, accountID string, status connectedaccount.Status) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.ConnectedAccount.UpdateOneID(accountID).
		SetStatus(status).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update account status: %w", err)
	}
	return nil
}
