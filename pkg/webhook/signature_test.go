package webhook_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dealinsight-dev/deal-insight/pkg/webhook"
)

func TestVerify(t *testing.T) {
	secret := "test-secret"
	payload := []byte(`{"deal_id":"d1","type":"meeting"}`)

	sig := webhook.Sign(secret, payload)

	assert.True(t, webhook.Verify(secret, payload, sig))
	assert.True(t, webhook.Verify(secret, payload, sig[len("sha256="):]), "prefix should be optional")
}

func TestVerifyRejectsTamperedPayload(t *testing.T) {
	secret := "test-secret"
	sig := webhook.Sign(secret, []byte(`{"deal_id":"d1"}`))

	assert.False(t, webhook.Verify(secret, []byte(`{"deal_id":"d2"}`), sig))
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	payload := []byte(`{"deal_id":"d1"}`)
	sig := webhook.Sign("secret-a", payload)

	assert.False(t, webhook.Verify("secret-b", payload, sig))
}

func TestVerifyRejectsEmptyInputs(t *testing.T) {
	payload := []byte(`{}`)

	assert.False(t, webhook.Verify("", payload, webhook.Sign("s", payload)))
	assert.False(t, webhook.Verify("s", payload, ""))
}
