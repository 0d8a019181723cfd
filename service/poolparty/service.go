package poolparty

import (
	"context"
	"errors"
	"fmt"
	"github.com/QuangTung97/poolparty/model"
	"github.com/QuangTung97/poolparty/pkg/cacheclient"
	"github.com/QuangTung97/poolparty/pkg/memtable"
	"github.com/QuangTung97/poolparty/pkg/otellib"
	"github.com/QuangTung97/poolparty/repository"
	"github.com/QuangTung97/poolparty/service/campaign"
	"github.com/QuangTung97/poolparty/service/registry"
	"github.com/ethereum/go-ethereum/common"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
	"time"
)

//go:generate otelwrap --out service_wrappers.go . IService
//go:generate moq -out repository_mocks_test.go -pkg poolparty ../../repository Provider Campaign Participant RegistryConfig Event
//go:generate moq -out cacheclient_mocks_test.go -pkg poolparty ../../pkg/cacheclient CacheClient CachePipeline

// IService exposes the registry and every campaign operation, each mutation is one transaction
type IService interface {
	InitRegistry(ctx context.Context, conf model.RegistryConfig) error
	GetRegistryConfig(ctx context.Context) (model.RegistryConfig, error)
	UpdateRegistry(ctx context.Context, caller common.Address, update RegistryUpdate) error
	CreateCampaign(ctx context.Context, name string) (int64, error)
	LookupByName(ctx context.Context, name string) (int64, error)

	Contribute(ctx context.Context, campaignID int64, identity common.Address, amount decimal.Decimal) error
	Withdraw(ctx context.Context, campaignID int64, identity common.Address) error
	SetAuthorizedConfigurer(ctx context.Context, campaignID int64, identity common.Address) error
	RequestConfigurerVerification(ctx context.Context, campaignID int64, valueSent decimal.Decimal) (string, error)
	ConfirmConfigurer(ctx context.Context, campaignID int64, requestID string, identity common.Address) error
	Configure(ctx context.Context, campaignID int64, caller common.Address, params campaign.ConfigureParams) error
	CompleteConfiguration(ctx context.Context, campaignID int64, caller common.Address) error
	EjectParticipant(
		ctx context.Context, campaignID int64, caller common.Address, identity common.Address, reason string,
	) error
	ReleaseFundsToSale(ctx context.Context, campaignID int64, caller common.Address, valueSent decimal.Decimal) error
	ClaimTokensFromSale(ctx context.Context, campaignID int64, caller common.Address) error
	ClaimRefundFromSale(ctx context.Context, campaignID int64, caller common.Address) error
	ClaimTokens(ctx context.Context, campaignID int64, identity common.Address) error
	ClaimRefund(ctx context.Context, campaignID int64, identity common.Address) error
	SettleOwnerFee(ctx context.Context, campaignID int64) error

	GetCampaign(ctx context.Context, campaignID int64) (CampaignView, error)
	ContributionsDue(ctx context.Context, campaignID int64, identity common.Address) (campaign.ContributionsDue, error)
	ListParticipants(ctx context.Context, campaignID int64) ([]model.Participant, error)
	ListEvents(ctx context.Context, campaignID int64, fromSeq uint32, limit uint64) ([]model.Event, error)
}

// ErrRegistryAlreadyInitialized ...
var ErrRegistryAlreadyInitialized = errors.New("registry already initialized")

// ErrUnpersistedEffects when an operation already moved funds but its campaign state could not be saved
var ErrUnpersistedEffects = errors.New("campaign operation applied but not persisted")

var errConcurrentChange = errors.New("campaign changed concurrently")

// persistAttempts bounds the retries of saving an operation that already took effect
const persistAttempts = 3

// Repositories used by the service
type Repositories struct {
	Campaign       repository.Campaign
	Participant    repository.Participant
	RegistryConfig repository.RegistryConfig
	Event          repository.Event
}

// NewRepositories ...
func NewRepositories() Repositories {
	return Repositories{
		Campaign:       repository.NewCampaign(),
		Participant:    repository.NewParticipant(),
		RegistryConfig: repository.NewRegistryConfig(),
		Event:          repository.NewEvent(),
	}
}

// Service ...
type Service struct {
	provider        repository.Provider
	campaignRepo    repository.Campaign
	participantRepo repository.Participant
	registryRepo    repository.RegistryConfig
	eventRepo       repository.Event

	engine    *campaign.Engine
	nameIndex *memtable.NameIndex
	cache     cacheclient.CacheClient
	viewTTL   uint32
	metrics   *Metrics
}

var _ IService = &Service{}

type serviceOptions struct {
	nameIndex *memtable.NameIndex
	cache     cacheclient.CacheClient
	viewTTL   uint32
	metrics   *Metrics
}

// Option ...
type Option func(opts *serviceOptions)

// WithNameIndex caches name lookups in process memory
func WithNameIndex(index *memtable.NameIndex) Option {
	return func(opts *serviceOptions) {
		opts.nameIndex = index
	}
}

// WithViewCache caches campaign views in memcached, ttl in seconds
func WithViewCache(client cacheclient.CacheClient, ttl uint32) Option {
	return func(opts *serviceOptions) {
		opts.cache = client
		opts.viewTTL = ttl
	}
}

// WithMetrics ...
func WithMetrics(m *Metrics) Option {
	return func(opts *serviceOptions) {
		opts.metrics = m
	}
}

// NewService ...
func NewService(
	provider repository.Provider, repos Repositories, engine *campaign.Engine, options ...Option,
) *Service {
	opts := serviceOptions{}
	for _, fn := range options {
		fn(&opts)
	}
	if opts.metrics == nil {
		opts.metrics = NewMetrics(prometheus.NewRegistry())
	}

	tracer := otel.GetTracerProvider().Tracer("poolparty")
	return &Service{
		provider:        provider,
		campaignRepo:    repository.NewCampaignWrapper(repos.Campaign, tracer, "repo::"),
		participantRepo: repository.NewParticipantWrapper(repos.Participant, tracer, "repo::"),
		registryRepo:    repository.NewRegistryConfigWrapper(repos.RegistryConfig, tracer, "repo::"),
		eventRepo:       repository.NewEventWrapper(repos.Event, tracer, "repo::"),

		engine:    engine,
		nameIndex: opts.nameIndex,
		cache:     opts.cache,
		viewTTL:   opts.viewTTL,
		metrics:   opts.metrics,
	}
}

func (s *Service) observe(op string, start time.Time, err error) {
	s.metrics.observe(op, err, time.Since(start))
}

func (s *Service) getRegistryConfig(ctx context.Context) (model.RegistryConfig, error) {
	conf, err := s.registryRepo.GetRegistryConfig(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return model.RegistryConfig{}, registry.ErrRegistryNotInitialized
	}
	return conf, err
}

func (s *Service) load(ctx context.Context, state model.Campaign) (*campaign.Campaign, error) {
	participants, err := s.participantRepo.ListParticipants(ctx, state.ID)
	if err != nil {
		return nil, err
	}
	return campaign.Load(state, participants)
}

func (s *Service) lockAndLoad(ctx context.Context, campaignID int64) (*campaign.Campaign, error) {
	state, err := s.campaignRepo.LockCampaign(ctx, campaignID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, registry.ErrCampaignNotFound
	}
	if err != nil {
		return nil, err
	}
	return s.load(ctx, state)
}

func (s *Service) readAndLoad(ctx context.Context, campaignID int64) (*campaign.Campaign, error) {
	ctx = s.provider.Readonly(ctx)
	state, err := s.campaignRepo.GetCampaign(ctx, campaignID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, registry.ErrCampaignNotFound
	}
	if err != nil {
		return nil, err
	}
	return s.load(ctx, state)
}

func (s *Service) persist(ctx context.Context, c *campaign.Campaign) error {
	if err := s.campaignRepo.UpdateCampaign(ctx, c.State()); err != nil {
		return err
	}
	if err := s.participantRepo.UpsertParticipants(ctx, c.DirtyParticipants()); err != nil {
		return err
	}
	return s.eventRepo.InsertEvents(ctx, c.PendingEvents())
}

// mutate runs fn on the locked campaign and persists the changes in the same transaction
func (s *Service) mutate(
	ctx context.Context, op string, campaignID int64,
	fn func(ctx context.Context, c *campaign.Campaign) error,
) (err error) {
	start := time.Now()
	defer func() { s.observe(op, start, err) }()

	ctx = otellib.WithCampaign(ctx, campaignID)

	var before, after model.CampaignStatus
	var applied *campaign.Campaign
	var baseSeq uint32
	err = s.provider.Transact(ctx, func(ctx context.Context) error {
		c, err := s.lockAndLoad(ctx, campaignID)
		if err != nil {
			return err
		}
		before = c.State().Status
		baseSeq = c.State().EventSeq

		if err := fn(ctx, c); err != nil {
			return err
		}
		applied = c
		after = c.State().Status
		return s.persist(ctx, c)
	})
	if err != nil && applied != nil {
		err = s.persistApplied(ctx, applied, baseSeq, err)
	}
	if err != nil {
		return err
	}
	// changes are kept until a commit succeeds, a retry persists them again
	applied.ClearChanges()

	if before != after {
		s.metrics.transition(before, after)
	}
	s.invalidateView(ctx, campaignID)
	return nil
}

// persistApplied saves a campaign whose operation succeeded on the collaborators while the first commit failed.
// Running the operation again would repeat its transfers, so only the persistence is retried.
func (s *Service) persistApplied(ctx context.Context, c *campaign.Campaign, baseSeq uint32, cause error) error {
	logger := otellib.Extract(ctx)
	state := c.State()

	for attempt := 1; attempt <= persistAttempts; attempt++ {
		err := s.provider.Transact(ctx, func(ctx context.Context) error {
			current, err := s.campaignRepo.LockCampaign(ctx, state.ID)
			if err != nil {
				return err
			}
			if current.EventSeq == state.EventSeq && current.EventSeq != baseSeq {
				// the first commit went through
				return nil
			}
			if current.EventSeq != baseSeq {
				return errConcurrentChange
			}
			return s.persist(ctx, c)
		})
		if err == nil {
			logger.Warn("Campaign persisted after retry", zap.Int("attempt", attempt), zap.Error(cause))
			return nil
		}
		logger.Error("Persist applied campaign",
			zap.Int("attempt", attempt),
			zap.Uint32("eventSeq", state.EventSeq),
			zap.Error(err),
		)
		if errors.Is(err, errConcurrentChange) {
			break
		}
	}
	logger.Error("Campaign effects not persisted, reconcile from the event log",
		zap.Uint32("fromSeq", baseSeq+1),
		zap.Uint32("toSeq", state.EventSeq),
		zap.Error(cause),
	)
	return fmt.Errorf("%w: %v", ErrUnpersistedEffects, cause)
}

func (s *Service) invalidateView(ctx context.Context, campaignID int64) {
	if s.cache == nil {
		return
	}
	pipe := s.cache.Pipeline()
	defer pipe.Finish()

	if err := pipe.Delete(cacheclient.CampaignViewKey(campaignID))(); err != nil {
		otellib.Extract(ctx).Error("Delete campaign view", zap.Error(err))
	}
}
