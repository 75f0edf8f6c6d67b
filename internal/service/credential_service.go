package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/tatyana-ilieva/lev-holdings/internal/apperrors"
	"github.com/tatyana-ilieva/lev-holdings/internal/clock"
	"github.com/tatyana-ilieva/lev-holdings/internal/metrics"
	"github.com/tatyana-ilieva/lev-holdings/internal/minter"
	"github.com/tatyana-ilieva/lev-holdings/internal/models"
	"github.com/tatyana-ilieva/lev-holdings/internal/models/dto"
)

const (
	placeholderMintAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghjkmnpqrstuvwxyz123456789"
	placeholderMintLength   = 44

	defaultAttributeScore = "965"
	verificationLevel     = "Enterprise KYC"
	credentialImageType   = "image/png"
	credentialImageURL    = "https://api.dicebear.com/7.x/shapes/svg?seed=%s&backgroundColor=8b5cf6,ec4899&size=400"

	notFoundMessage    = "No verified credential found for this wallet address"
	notFoundSuggestion = "Complete KYC verification to obtain a digital identity credential"
)

// Minter reserves an on-chain mint for a credential.
type Minter interface {
	Mint(ctx context.Context, walletAddress string) (*minter.MintResult, error)
}

// CredentialRegistry remembers issued credentials so they can be looked up.
type CredentialRegistry interface {
	Record(ctx context.Context, walletID string, credential *models.Credential) error
	Find(ctx context.Context, walletID string) (*models.Credential, error)
}

type CredentialService struct {
	// Minter is optional; without it every credential is a placeholder.
	Minter    Minter
	Publisher Publisher
	// Registry is optional; without it Lookup always reports not found.
	Registry    CredentialRegistry
	Clock       clock.Clock
	Random      RandomSource
	MintDelay   time.Duration
	ExternalURL string
	Network     string
}

func NewCredentialService(m Minter, publisher Publisher, registry CredentialRegistry, clk clock.Clock, rnd RandomSource, mintDelay time.Duration, externalURL, network string) *CredentialService {
	return &CredentialService{
		Minter:      m,
		Publisher:   publisher,
		Registry:    registry,
		Clock:       clk,
		Random:      rnd,
		MintDelay:   mintDelay,
		ExternalURL: externalURL,
		Network:     network,
	}
}

// Issue synthesizes a credential for walletID. It never fails: a minter
// error degrades to a placeholder credential and downstream failures are logged.
// Two calls for the same wallet produce two distinct credentials.
func (s *CredentialService) Issue(ctx context.Context, walletID string, payload *models.VerificationPayload) *models.Credential {
	start := time.Now()
	log := logrus.WithField("wallet", walletID)

	credential := s.baseCredential(walletID, payload)

	minted := false
	if s.Minter != nil {
		result, err := s.Minter.Mint(ctx, walletID)
		if err != nil {
			log.Errorf("Error minting credential, falling back to placeholder: %s", err.Error())
		} else {
			credential.Mint = result.Mint
			credential.Network = result.Network
			credential.Real = true
			credential.Properties.Creators[0].Address = result.Creator
			minted = true
		}
	}

	if !minted {
		credential.Mint = s.placeholderMint()
		credential.Demo = true
		credential.Note = models.PlaceholderNote
		sleepContext(ctx, s.MintDelay)
	}

	kind := credentialKind(credential.Real)
	metrics.MintDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	metrics.CredentialsIssuedTotal.WithLabelValues(kind).Inc()

	if s.Registry != nil {
		if err := s.Registry.Record(ctx, walletID, credential); err != nil {
			log.Errorf("Error recording credential: %s", err.Error())
		}
	}
	s.publishIssued(ctx, walletID, credential)

	log.WithFields(logrus.Fields{"mint": credential.Mint, "real": credential.Real}).Info("Credential issued")
	return credential
}

// Lookup reports the wallet's credential. found is false when no registry
// is configured or it has nothing for the wallet.
func (s *CredentialService) Lookup(ctx context.Context, walletID string) (lookup *dto.CredentialLookup, found bool, err error) {
	walletID = strings.TrimSpace(walletID)
	if walletID == "" {
		return nil, false, apperrors.InvalidArgument("wallet address required")
	}

	notFound := &dto.CredentialLookup{
		Verified:      false,
		WalletAddress: walletID,
		Message:       notFoundMessage,
		Suggestion:    notFoundSuggestion,
	}
	if s.Registry == nil {
		return notFound, false, nil
	}

	credential, err := s.Registry.Find(ctx, walletID)
	if err != nil {
		return nil, false, apperrors.Internal("looking up credential for %s: %v", walletID, err)
	}
	if credential == nil {
		return notFound, false, nil
	}

	issuedAt := credential.IssuedAt
	return &dto.CredentialLookup{
		Verified:          true,
		WalletAddress:     walletID,
		CredentialID:      credential.Mint,
		IssuedAt:          &issuedAt,
		ComplianceScore:   credential.ComplianceScore,
		Status:            "active",
		Issuer:            models.CredentialIssuer,
		VerificationLevel: verificationLevel,
		Attributes: &dto.CredentialAttributes{
			Country:            attributeValue(credential.Attributes, "Country"),
			AgeVerified:        attributeValue(credential.Attributes, "Age Verified") == "Yes",
			DocumentType:       "government_id",
			LivenessCheck:      true,
			AMLScreening:       true,
			VerificationMethod: "sumsub",
		},
	}, true, nil
}

func (s *CredentialService) baseCredential(walletID string, payload *models.VerificationPayload) *models.Credential {
	now := s.Clock.Now().UTC()
	image := CredentialImage(walletID)

	score := 0
	if payload != nil {
		score = payload.ComplianceScore
	}
	if score == 0 {
		score = complianceScoreFloor + s.Random.IntN(complianceScoreSpread)
	}

	return &models.Credential{
		Success:     true,
		Name:        models.CredentialName,
		Symbol:      models.CredentialSymbol,
		Description: models.CredentialDescription,
		Image:       image,
		ExternalURL: s.ExternalURL,
		Attributes:  CredentialAttributes(payload, now),
		Properties: models.CredentialProperties{
			Files:    []models.CredentialFile{{URI: image, Type: credentialImageType}},
			Category: models.CredentialCategory,
			Creators: []models.CredentialCreator{{Address: models.DefaultCreatorAddress, Verified: true, Share: 100}},
		},
		ComplianceScore: score,
		IssuedAt:        now,
		Network:         s.Network,
	}
}

func (s *CredentialService) placeholderMint() string {
	var b strings.Builder
	b.Grow(placeholderMintLength)
	for i := 0; i < placeholderMintLength; i++ {
		b.WriteByte(placeholderMintAlphabet[s.Random.IntN(len(placeholderMintAlphabet))])
	}
	return b.String()
}

func (s *CredentialService) publishIssued(ctx context.Context, walletID string, credential *models.Credential) {
	event := models.CredentialIssuedEvent{
		EventID:         uuid.NewString(),
		WalletID:        walletID,
		Mint:            credential.Mint,
		ComplianceScore: credential.ComplianceScore,
		Network:         credential.Network,
		Real:            credential.Real,
		IssuedAt:        credential.IssuedAt,
	}
	if err := s.Publisher.Publish(ctx, models.CredentialIssuedTopic, event); err != nil {
		logrus.WithField("wallet", walletID).Errorf("Error publishing credential issued: %s", err.Error())
	}
}

// CredentialImage is the generated artwork URL, seeded by the wallet's first eight characters.
func CredentialImage(walletID string) string {
	seed := walletID
	if len(seed) > 8 {
		seed = seed[:8]
	}
	return fmt.Sprintf(credentialImageURL, seed)
}

// CredentialAttributes lists the credential's traits. Country and age are
// included only when the payload carries them.
func CredentialAttributes(payload *models.VerificationPayload, issuedAt time.Time) []models.CredentialAttribute {
	score := defaultAttributeScore
	if payload != nil && payload.ComplianceScore != 0 {
		score = strconv.Itoa(payload.ComplianceScore)
	}

	attributes := []models.CredentialAttribute{
		{TraitType: "Verification Level", Value: verificationLevel},
		{TraitType: "Issuer", Value: models.CredentialIssuer},
		{TraitType: "Compliance Score", Value: score},
		{TraitType: "Issue Date", Value: issuedAt.Format(time.DateOnly)},
		{TraitType: "Verification Method", Value: "Sumsub KYC"},
		{TraitType: "Blockchain", Value: "Solana"},
		{TraitType: "Status", Value: "Active"},
	}

	if payload == nil {
		return attributes
	}
	if payload.Country != "" {
		attributes = append(attributes, models.CredentialAttribute{TraitType: "Country", Value: payload.Country})
	}
	if payload.AgeVerified {
		attributes = append(attributes, models.CredentialAttribute{TraitType: "Age Verified", Value: "Yes"})
	}
	return attributes
}

func attributeValue(attributes []models.CredentialAttribute, traitType string) string {
	for _, a := range attributes {
		if a.TraitType == traitType {
			return a.Value
		}
	}
	return ""
}

func credentialKind(real bool) string {
	if real {
		return "real"
	}
	return "placeholder"
}
