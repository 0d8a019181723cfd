package poolparty

import (
	"errors"
	"github.com/QuangTung97/poolparty/model"
	"github.com/QuangTung97/poolparty/repository"
	"github.com/QuangTung97/poolparty/service/campaign"
	"github.com/QuangTung97/poolparty/service/registry"
	"github.com/prometheus/client_golang/prometheus"
	"time"
)

// Metrics of service operations
type Metrics struct {
	operations  *prometheus.CounterVec
	durations   *prometheus.HistogramVec
	transitions *prometheus.CounterVec
	cacheResult *prometheus.CounterVec
}

// NewMetrics registers the collectors in reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "poolparty",
			Name:      "operation_total",
			Help:      "Number of service operations by result",
		}, []string{"operation", "result"}),

		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "poolparty",
			Name:      "operation_duration_seconds",
			Help:      "Duration of service operations",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),

		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "poolparty",
			Name:      "campaign_transition_total",
			Help:      "Number of campaign status transitions",
		}, []string{"from", "to"}),

		cacheResult: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "poolparty",
			Name:      "view_cache_total",
			Help:      "Campaign view cache lookups by result",
		}, []string{"result"}),
	}
	reg.MustRegister(m.operations, m.durations, m.transitions, m.cacheResult)
	return m
}

var resultLabels = []struct {
	err   error
	label string
}{
	{err: campaign.ErrBelowMinimum, label: "below_minimum"},
	{err: campaign.ErrWrongState, label: "wrong_state"},
	{err: campaign.ErrZeroBalance, label: "zero_balance"},
	{err: campaign.ErrNotFound, label: "not_found"},
	{err: campaign.ErrInvalidArgument, label: "invalid_argument"},
	{err: campaign.ErrInsufficientDiscount, label: "insufficient_discount"},
	{err: campaign.ErrInsufficientValue, label: "insufficient_value"},
	{err: campaign.ErrAlreadyClaimed, label: "already_claimed"},
	{err: campaign.ErrUnauthorized, label: "unauthorized"},
	{err: campaign.ErrConfigurerAlreadySet, label: "configurer_already_set"},
	{err: campaign.ErrAlreadyReleased, label: "already_released"},
	{err: campaign.ErrNothingPending, label: "nothing_pending"},
	{err: ErrUnpersistedEffects, label: "unpersisted_effects"},
	{err: registry.ErrDuplicateName, label: "duplicate_name"},
	{err: registry.ErrEmptyName, label: "empty_name"},
	{err: registry.ErrUnauthorized, label: "unauthorized"},
	{err: registry.ErrInvalidArgument, label: "invalid_argument"},
	{err: registry.ErrCampaignNotFound, label: "campaign_not_found"},
	{err: registry.ErrRegistryNotInitialized, label: "registry_not_initialized"},
	{err: repository.ErrNotFound, label: "not_found"},
}

func resultLabel(err error) string {
	if err == nil {
		return "ok"
	}
	for _, e := range resultLabels {
		if errors.Is(err, e.err) {
			return e.label
		}
	}
	return "error"
}

func (m *Metrics) observe(op string, err error, d time.Duration) {
	m.operations.WithLabelValues(op, resultLabel(err)).Inc()
	m.durations.WithLabelValues(op).Observe(d.Seconds())
}

func (m *Metrics) transition(from, to model.CampaignStatus) {
	m.transitions.WithLabelValues(from.String(), to.String()).Inc()
}

func (m *Metrics) cacheLookup(result string) {
	m.cacheResult.WithLabelValues(result).Inc()
}
