package provider

import (
	"errors"
	"fmt"
)

// ErrorCode is the typed code carried in the aggregator's error body.
type ErrorCode string

// Error codes the classifier knows about. The wire value is the string
// itself; anything unknown falls through to the transient verdict.
const (
	CodeInvalidRecipient             ErrorCode = "InvalidRecipient"
	CodeNoConnectionWithRecipient    ErrorCode = "NoConnectionWithRecipient"
	CodeBlockedRecipient             ErrorCode = "BlockedRecipient"
	CodeUserUnreachable              ErrorCode = "UserUnreachable"
	CodeUnprocessableEntity          ErrorCode = "UnprocessableEntity"
	CodePaymentError                 ErrorCode = "PaymentError"
	CodeInvalidMessage               ErrorCode = "InvalidMessage"
	CodeInvalidPost                  ErrorCode = "InvalidPost"
	CodeInsufficientCredits          ErrorCode = "InsufficientCredits"
	CodeUnauthorized                 ErrorCode = "Unauthorized"
	CodeSenderRejected               ErrorCode = "SenderRejected"
	CodeRecipientRejected            ErrorCode = "RecipientRejected"
	CodeIPRejectedByServer           ErrorCode = "IpRejectedByServer"
	CodeInvalidHeaders               ErrorCode = "InvalidHeaders"
	CodeSendAsDenied                 ErrorCode = "SendAsDenied"
	CodeLimitTooHigh                 ErrorCode = "LimitTooHigh"
	CodeRealtimeClientNotInitialized ErrorCode = "RealtimeClientNotInitialized"
	CodeInvalidAccount               ErrorCode = "InvalidAccount"

	CodeActionAlreadyPerformed  ErrorCode = "ActionAlreadyPerformed"
	CodeAlreadyConnected        ErrorCode = "AlreadyConnected"
	CodeAlreadyInvitedRecently  ErrorCode = "AlreadyInvitedRecently"
	CodeCannotResendYet         ErrorCode = "CannotResendYet"
	CodeCannotResendWithin24hrs ErrorCode = "CannotResendWithin24hrs"
	CodeLimitExceeded           ErrorCode = "LimitExceeded"

	CodeAccountConfigurationError ErrorCode = "AccountConfigurationError"
	CodeProviderUnreachable       ErrorCode = "ProviderUnreachable"
)

// Error is the one typed error the adapter surfaces. Everything downstream
// of the adapter handles verdicts, never the raw HTTP shape.
type Error struct {
	HTTPStatus int
	Code       ErrorCode
	Detail     string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("provider: %s (HTTP %d): %s", e.Code, e.HTTPStatus, e.Detail)
	}
	return fmt.Sprintf("provider: %s (HTTP %d)", e.Code, e.HTTPStatus)
}

// AsProviderError unwraps a provider error from an error chain.
func AsProviderError(err error) (*Error, bool) {
	var perr *Error
	if errors.As(err, &perr) {
		return perr, true
	}
	return nil, false
}
