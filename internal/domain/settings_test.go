package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExplorerURL(t *testing.T) {
	settings := &Settings{
		ExplorerTemplates: map[string]string{
			"TRC20": "https://tronscan.org/#/transaction/{txid}",
		},
	}

	assert.Equal(t,
		"https://tronscan.org/#/transaction/abc123",
		settings.ExplorerURL("TRC20", "abc123"))

	assert.Empty(t, settings.ExplorerURL("TRC20", ""))
	assert.Empty(t, settings.ExplorerURL("ERC20", "abc123"))
}

func TestOrderStatusHelpers(t *testing.T) {
	for _, status := range []OrderStatus{
		StatusPendingDeposit, StatusDetecting, StatusConfirming,
		StatusPayoutProcessing, StatusCompleted, StatusHold, StatusRejected,
	} {
		assert.True(t, ValidStatus(status), "status %s", status)
	}
	assert.False(t, ValidStatus("unknown"))
	assert.False(t, ValidStatus(""))

	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusRejected.Terminal())
	assert.False(t, StatusHold.Terminal())
	assert.False(t, StatusPendingDeposit.Terminal())
}
