package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/camertanev/FraudDetect-Z/internal/client/models"
)

func TestFormatClaimLine(t *testing.T) {
	unverified := models.Claim{ID: "1-0xabc", PolicyNumber: "POL-1", Provider: "acme", PublicAmountHint: 15000}
	assert.Equal(t, "1-0xabc | POL-1 | acme | 15000 | unverified", formatClaimLine(unverified))

	verified := unverified
	verified.IsVerified = true
	verified.DecryptedValue = 14999
	assert.Equal(t, "1-0xabc | POL-1 | acme | 14999 | verified", formatClaimLine(verified))
}
