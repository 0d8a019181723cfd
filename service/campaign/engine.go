package campaign

import (
	"context"
	"github.com/QuangTung97/poolparty/pkg/otellib"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"time"
)

// Engine drives campaigns through their lifecycle using the external collaborators
type Engine struct {
	sale     SaleAdapter
	tokens   TokenLedger
	payments Payments
	oracle   Oracle

	timer        Timer
	newRequestID func() string
}

type engineOptions struct {
	timer        Timer
	newRequestID func() string
}

// EngineOption ...
type EngineOption func(opts *engineOptions)

// WithTimer ...
func WithTimer(timer Timer) EngineOption {
	return func(opts *engineOptions) {
		opts.timer = timer
	}
}

// WithRequestIDGenerator replaces uuid for oracle request ids
func WithRequestIDGenerator(fn func() string) EngineOption {
	return func(opts *engineOptions) {
		opts.newRequestID = fn
	}
}

// NewEngine ...
func NewEngine(
	sale SaleAdapter, tokens TokenLedger, payments Payments, oracle Oracle,
	options ...EngineOption,
) *Engine {
	opts := engineOptions{
		timer:        realTimer{},
		newRequestID: uuid.NewString,
	}
	for _, fn := range options {
		fn(&opts)
	}

	return &Engine{
		sale:     sale,
		tokens:   tokens,
		payments: payments,
		oracle:   oracle,

		timer:        opts.timer,
		newRequestID: opts.newRequestID,
	}
}

// Now ...
func (e *Engine) Now() time.Time {
	return e.timer.Now()
}

// run executes fn atomically, on error the campaign is restored to its previous state
func (e *Engine) run(ctx context.Context, c *Campaign, op string, fn func(now time.Time) error) error {
	now := e.timer.Now()
	before := c.state.Status

	ctx = otellib.WithFields(ctx, zap.String("op", op), zap.String("campaign.name", c.state.Name))

	c.begin()
	if err := fn(now); err != nil {
		c.rollback()
		otellib.Extract(ctx).Warn("Campaign operation rejected", zap.Error(err))
		return err
	}
	c.state.UpdatedAt = now
	c.commit()

	if after := c.state.Status; after != before {
		otellib.Extract(ctx).Info("Campaign status changed",
			zap.Stringer("from", before),
			zap.Stringer("to", after),
		)
	}
	return nil
}
