package domain

import "strings"

type DepositMode string

const (
	DepositModeFixed DepositMode = "fixed"
	DepositModePool  DepositMode = "pool"
)

// Settings is the process-wide configuration operators edit at runtime. It is
// stored as key/value rows and loaded into this struct with explicit defaults
// on every order creation and customer read.
type Settings struct {
	DepositMode       DepositMode
	FallbackToFixed   bool
	FixedAddresses    map[string]string
	ExplorerTemplates map[string]string
}

func DefaultSettings() *Settings {
	return &Settings{
		DepositMode:       DepositModeFixed,
		FallbackToFixed:   true,
		FixedAddresses:    map[string]string{},
		ExplorerTemplates: map[string]string{},
	}
}

// ExplorerURL substitutes the txid into the network's explorer template.
// Returns "" when either the txid or the template is absent.
func (s *Settings) ExplorerURL(network, txid string) string {
	if txid == "" {
		return ""
	}
	template := s.ExplorerTemplates[network]
	if template == "" {
		return ""
	}
	return strings.ReplaceAll(template, "{txid}", txid)
}
