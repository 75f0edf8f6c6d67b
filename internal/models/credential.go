package models

import "time"

const (
	CredentialName        = "LEV Holdings Digital Identity"
	CredentialSymbol      = "LEVID"
	CredentialDescription = "Verified digital identity credential issued by LEV Holdings"
	CredentialIssuer      = "LEV Holdings"
	CredentialCategory    = "identity"

	DefaultCreatorAddress = "LEVHo1dings1dentity1Verification1Platform"
	PlaceholderNote       = "This is a demo NFT. Real minting requires Solana private key configuration."
)

// Credential is the NFT-shaped identity credential handed back to the wallet.
// Real is false for placeholder credentials that were never written on chain.
type Credential struct {
	Success         bool                  `json:"success"`
	Mint            string                `json:"mint"`
	Name            string                `json:"name"`
	Symbol          string                `json:"symbol"`
	Description     string                `json:"description"`
	Image           string                `json:"image"`
	AnimationURL    *string               `json:"animation_url"`
	ExternalURL     string                `json:"external_url"`
	Attributes      []CredentialAttribute `json:"attributes"`
	Properties      CredentialProperties  `json:"properties"`
	ComplianceScore int                   `json:"complianceScore"`
	IssuedAt        time.Time             `json:"issuedAt"`
	Network         string                `json:"network"`
	Real            bool                  `json:"real"`
	Demo            bool                  `json:"demo,omitempty"`
	Note            string                `json:"note,omitempty"`
}

type CredentialAttribute struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}

type CredentialProperties struct {
	Files    []CredentialFile    `json:"files"`
	Category string              `json:"category"`
	Creators []CredentialCreator `json:"creators"`
}

type CredentialFile struct {
	URI  string `json:"uri"`
	Type string `json:"type"`
}

type CredentialCreator struct {
	Address  string `json:"address"`
	Verified bool   `json:"verified"`
	Share    int    `json:"share"`
}
