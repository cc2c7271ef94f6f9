package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	identitymetrics "minibank/internal/identity/metrics"
	"minibank/internal/identity/models"
	"minibank/internal/sentinel"
	dErrors "minibank/pkg/domain-errors"
)

// RegistryService orchestrates identity registration and lookup.
// It is the only writer of the identity set.
type RegistryService struct {
	identities IdentityStore
	logger     *slog.Logger
	metrics    *identitymetrics.Metrics
}

func NewRegistryService(identities IdentityStore, opts ...Option) *RegistryService {
	cfg := &serviceConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return &RegistryService{
		identities: identities,
		logger:     cfg.logger,
		metrics:    cfg.metrics,
	}
}

// Register creates a new identity. The national identifier must not already be
// registered; the match is exact-string, no trimming or case folding is applied
// to it. Only the surrounding free-text fields are trimmed.
func (s *RegistryService) Register(ctx context.Context, fullName string, birthDate time.Time, nationalID, address string) (*models.Identity, error) {
	fullName = strings.TrimSpace(fullName)
	address = strings.TrimSpace(address)

	ident, err := models.NewIdentity(fullName, birthDate, nationalID, address, time.Now())
	if err != nil {
		return nil, err
	}

	if err := s.identities.CreateIfNationalIDAvailable(ctx, ident); err != nil {
		if errors.Is(err, sentinel.ErrAlreadyUsed) {
			s.incrementDuplicateRejected()
			return nil, dErrors.New(dErrors.CodeConflict, "national identifier already registered")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to register identity")
	}

	s.incrementRegistered()
	s.log(ctx, "identity registered", "identity_id", ident.ID.String())
	return ident, nil
}

// FindByNationalID retrieves a registered identity by its national identifier.
func (s *RegistryService) FindByNationalID(ctx context.Context, nationalID string) (*models.Identity, error) {
	if nationalID == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "national identifier is required")
	}
	ident, err := s.identities.FindByNationalID(ctx, nationalID)
	if err != nil {
		return nil, wrapIdentityErr(err, "failed to look up identity")
	}
	return ident, nil
}

// Count returns the number of registered identities.
func (s *RegistryService) Count(ctx context.Context) (int, error) {
	n, err := s.identities.Count(ctx)
	if err != nil {
		return 0, wrapIdentityErr(err, "failed to count identities")
	}
	return n, nil
}

func (s *RegistryService) log(ctx context.Context, msg string, args ...any) {
	if s.logger != nil {
		s.logger.InfoContext(ctx, msg, args...)
	}
}

func (s *RegistryService) incrementRegistered() {
	if s.metrics != nil {
		s.metrics.IncrementRegistered()
	}
}

func (s *RegistryService) incrementDuplicateRejected() {
	if s.metrics != nil {
		s.metrics.IncrementDuplicateRejected()
	}
}
