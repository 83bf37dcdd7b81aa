package provider

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		status int
		code   ErrorCode
		want   Verdict
	}{
		{"422 invalid recipient", 422, CodeInvalidRecipient, VerdictPermanent},
		{"422 blocked recipient", 422, CodeBlockedRecipient, VerdictPermanent},
		{"422 insufficient credits", 422, CodeInsufficientCredits, VerdictPermanent},
		{"422 unauthorized code is permanent", 422, CodeUnauthorized, VerdictPermanent},
		{"422 unknown code is transient", 422, "SomethingNew", VerdictTransient},

		{"already performed", 422, CodeActionAlreadyPerformed, VerdictAlreadyDone},
		{"already connected", 400, CodeAlreadyConnected, VerdictAlreadyDone},
		{"already invited recently", 400, CodeAlreadyInvitedRecently, VerdictAlreadyInvited},
		{"cannot resend yet", 400, CodeCannotResendYet, VerdictWait24h},
		{"cannot resend within 24h", 400, CodeCannotResendWithin24hrs, VerdictWait24h},

		{"limit exceeded", 400, CodeLimitExceeded, VerdictQuotaExhausted},
		{"HTTP 429", 429, "", VerdictQuotaExhausted},

		{"HTTP 401", 401, "", VerdictAuthFailure},
		{"HTTP 403", 403, "", VerdictAuthFailure},
		{"unauthorized code without 422", 500, CodeUnauthorized, VerdictAuthFailure},
		{"account configuration error", 400, CodeAccountConfigurationError, VerdictAuthFailure},
		{"provider unreachable", 502, CodeProviderUnreachable, VerdictAuthFailure},

		{"plain 500", 500, "", VerdictTransient},
		{"plain 400", 400, "", VerdictTransient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &Error{HTTPStatus: tt.status, Code: tt.code, Detail: "x"}
			assert.Equal(t, tt.want, Classify(err))
		})
	}
}

func TestClassify_NonProviderError(t *testing.T) {
	assert.Equal(t, VerdictTransient, Classify(errors.New("connection reset")))
	assert.Equal(t, VerdictTransient, Classify(nil))
}

func TestClassify_WrappedError(t *testing.T) {
	inner := &Error{HTTPStatus: 422, Code: CodeInvalidRecipient}
	wrapped := fmt.Errorf("visit profile: %w", inner)
	assert.Equal(t, VerdictPermanent, Classify(wrapped))
}
