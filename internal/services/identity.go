package services

import (
	"context"

	"github.com/lagunaro/loansim-backend/internal/logger"
	"github.com/lagunaro/loansim-backend/internal/normalization"
	"github.com/lagunaro/loansim-backend/internal/sessions"
)

type IdentityService interface {
	Identify(ctx context.Context, token, rawName, rawID string) error
	Current(ctx context.Context, token string) (name string, nationalID string, err error)
}

type identityService struct {
	log      *logger.Logger
	sessions sessions.Store
}

func NewIdentityService(log *logger.Logger, sessionStore sessions.Store) IdentityService {
	serviceLog := log.With("service", "IdentityService")
	return &identityService{log: serviceLog, sessions: sessionStore}
}

// Identify establishes the session identity. Both fields must be non-empty
// after trimming; otherwise nothing is written, not even the valid half.
func (is *identityService) Identify(ctx context.Context, token, rawName, rawID string) error {
	name := normalization.NormalizeName(rawName)
	nationalID := normalization.NormalizeID(rawID)
	if name == "" || nationalID == "" {
		return ErrIncompleteIdentity
	}

	if err := is.sessions.Set(ctx, token, sessions.KeyFullName, name); err != nil {
		return err
	}
	if err := is.sessions.Set(ctx, token, sessions.KeyNationalID, nationalID); err != nil {
		return err
	}

	is.log.Info("Session identified", "session_id", token, "national_id", nationalID)
	return nil
}

// Current reads the session identity. ErrNotIdentified when either half is
// missing.
func (is *identityService) Current(ctx context.Context, token string) (string, string, error) {
	name, err := is.sessions.Get(ctx, token, sessions.KeyFullName)
	if err != nil {
		return "", "", err
	}
	nationalID, err := is.sessions.Get(ctx, token, sessions.KeyNationalID)
	if err != nil {
		return "", "", err
	}
	if name == "" || nationalID == "" {
		return "", "", ErrNotIdentified
	}
	return name, nationalID, nil
}
