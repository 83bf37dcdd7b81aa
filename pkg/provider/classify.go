package provider

import "net/http"

// Verdict is the engine-facing classification of a provider failure. The
// classifier is the only place the raw (status, code) pair is inspected;
// the interpreter switches on verdicts.
type Verdict string

// Verdicts and the engine response they imply.
const (
	// VerdictTransient — let the runtime retry per the activity retry policy.
	VerdictTransient Verdict = "transient"
	// VerdictPermanent — mark the lead failed and stop the walk.
	VerdictPermanent Verdict = "permanent"
	// VerdictAlreadyDone — the action was performed before; treat as success.
	VerdictAlreadyDone Verdict = "already_done"
	// VerdictAlreadyInvited — skip the send and poll as if just sent.
	VerdictAlreadyInvited Verdict = "already_invited"
	// VerdictWait24h — record a skip; the step succeeds with a 24h hint.
	VerdictWait24h Verdict = "wait_24h"
	// VerdictQuotaExhausted — sleep until the quota gate opens, then retry.
	VerdictQuotaExhausted Verdict = "quota_exhausted"
	// VerdictAuthFailure — pause the campaign, fail the lead.
	VerdictAuthFailure Verdict = "auth_failure"
)

// permanentCodes are fatal for the lead only when paired with HTTP 422.
var permanentCodes = map[ErrorCode]bool{
	CodeInvalidRecipient:             true,
	CodeNoConnectionWithRecipient:    true,
	CodeBlockedRecipient:             true,
	CodeUserUnreachable:              true,
	CodeUnprocessableEntity:          true,
	CodePaymentError:                 true,
	CodeInvalidMessage:               true,
	CodeInvalidPost:                  true,
	CodeInsufficientCredits:          true,
	CodeUnauthorized:                 true,
	CodeSenderRejected:               true,
	CodeRecipientRejected:            true,
	CodeIPRejectedByServer:           true,
	CodeInvalidHeaders:               true,
	CodeSendAsDenied:                 true,
	CodeLimitTooHigh:                 true,
	CodeRealtimeClientNotInitialized: true,
	CodeInvalidAccount:               true,
}

// Classify maps a provider error to its verdict. A nil or non-provider error
// classifies as transient: the runtime's retry policy is the right tool for
// network hiccups and anything the taxonomy does not name.
func Classify(err error) Verdict {
	perr, ok := AsProviderError(err)
	if !ok {
		return VerdictTransient
	}

	switch perr.Code {
	case CodeActionAlreadyPerformed, CodeAlreadyConnected:
		return VerdictAlreadyDone
	case CodeAlreadyInvitedRecently:
		return VerdictAlreadyInvited
	case CodeCannotResendYet, CodeCannotResendWithin24hrs:
		return VerdictWait24h
	case CodeLimitExceeded:
		return VerdictQuotaExhausted
	}

	// 422 + a fatal code wins over the code-based auth rule: the provider is
	// telling us this recipient (not our account) is the problem.
	if perr.HTTPStatus == http.StatusUnprocessableEntity && permanentCodes[perr.Code] {
		return VerdictPermanent
	}

	switch perr.HTTPStatus {
	case http.StatusUnauthorized, http.StatusForbidden:
		return VerdictAuthFailure
	case http.StatusTooManyRequests:
		return VerdictQuotaExhausted
	}
	switch perr.Code {
	case CodeUnauthorized, CodeAccountConfigurationError, CodeProviderUnreachable:
		return VerdictAuthFailure
	}

	return VerdictTransient
}
