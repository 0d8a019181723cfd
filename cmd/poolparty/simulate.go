package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/QuangTung97/poolparty/config"
	"github.com/QuangTung97/poolparty/model"
	"github.com/QuangTung97/poolparty/pkg/otellib"
	"github.com/QuangTung97/poolparty/pkg/sandbox"
	"github.com/QuangTung97/poolparty/service/campaign"
	"github.com/QuangTung97/poolparty/service/registry"
	"github.com/ethereum/go-ethereum/common"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"math/big"
	"net/http"
	"os"
	"os/signal"
	"time"
)

var (
	simulationOwner      = common.HexToAddress("0x00000000000000000000000000000000000000a1")
	simulationConfigurer = common.HexToAddress("0x00000000000000000000000000000000000000c1")
	simulationSale       = common.HexToAddress("0x00000000000000000000000000000000000005a1")
	simulationToken      = common.HexToAddress("0x00000000000000000000000000000000000007a1")
)

func participantAddress(i int) common.Address {
	return common.BigToAddress(big.NewInt(int64(0x1000 + i)))
}

// virtualTimer lets the simulation skip the due diligence period
type virtualTimer struct {
	current time.Time
}

func (t *virtualTimer) Now() time.Time {
	return t.current
}

type simulateFlags struct {
	participants int
	amount       string
	buyAction    string
	claimAction  string
	refund       bool
	serve        bool
}

type simulation struct {
	flags simulateFlags

	timer    *virtualTimer
	payments *sandbox.Payments
	tokens   *sandbox.TokenLedger
	sale     *sandbox.CustomSale
	oracle   *sandbox.Oracle
	engine   *campaign.Engine
	registry *registry.Registry

	steps    *prometheus.CounterVec
	balances *prometheus.GaugeVec
}

func newSimulation(flags simulateFlags, reg prometheus.Registerer) *simulation {
	timer := &virtualTimer{current: time.Now().UTC()}
	payments := sandbox.NewPayments()
	tokens := sandbox.NewTokenLedger()
	sale := sandbox.NewCustomSale(simulationSale, simulationToken, decimal.New(5, -2), payments, tokens)
	oracle := sandbox.NewOracle()

	s := &simulation{
		flags: flags,

		timer:    timer,
		payments: payments,
		tokens:   tokens,
		sale:     sale,
		oracle:   oracle,
		engine:   campaign.NewEngine(sale, tokens, payments, oracle, campaign.WithTimer(timer)),
		registry: registry.New(registry.DefaultConfig(simulationOwner), timer.Now),

		steps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "poolparty",
			Subsystem: "simulation",
			Name:      "step_total",
			Help:      "Simulation steps by result",
		}, []string{"step", "result"}),

		balances: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "poolparty",
			Subsystem: "simulation",
			Name:      "balance",
			Help:      "Final base asset and token balances",
		}, []string{"holder", "asset"}),
	}
	reg.MustRegister(s.steps, s.balances)
	return s
}

func (s *simulation) step(ctx context.Context, name string, fn func() error) error {
	err := fn()
	result := "ok"
	if err != nil {
		result = "error"
		otellib.Extract(ctx).Error("Simulation step failed", zap.String("step", name), zap.Error(err))
	}
	s.steps.WithLabelValues(name, result).Inc()
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func (s *simulation) params() (campaign.ConfigureParams, error) {
	buy, err := model.ParseSaleAction(s.flags.buyAction)
	if err != nil {
		return campaign.ConfigureParams{}, err
	}
	if s.flags.refund && buy == model.NamedAction(sandbox.ActionBuy) {
		buy = model.NamedAction(sandbox.ActionBuyWithIntentToRefund)
	}
	claim, err := model.ParseSaleAction(s.flags.claimAction)
	if err != nil {
		return campaign.ConfigureParams{}, err
	}
	return campaign.ConfigureParams{
		Destination:     simulationSale,
		TokenLedgerRef:  simulationToken,
		BuyAction:       buy,
		ClaimAction:     claim,
		RefundAction:    model.NamedAction(sandbox.ActionRefund),
		PublicPrice:     decimal.New(5, -2),
		GroupPrice:      decimal.New(4, -2),
		SubsidyRequired: true,
	}, nil
}

// run drives one campaign from creation to the last claim
func (s *simulation) run(ctx context.Context) (*campaign.Campaign, error) {
	amount, err := decimal.NewFromString(s.flags.amount)
	if err != nil {
		return nil, err
	}
	params, err := s.params()
	if err != nil {
		return nil, err
	}

	id, err := s.registry.CreateCampaign("simulation")
	if err != nil {
		return nil, err
	}
	c, err := s.registry.Campaign(id)
	if err != nil {
		return nil, err
	}
	escrow := c.State().EscrowAddress

	for i := 0; i < s.flags.participants; i++ {
		addr := participantAddress(i)
		err := s.step(ctx, "contribute", func() error {
			s.payments.Fund(escrow, amount)
			return s.engine.Contribute(ctx, c, addr, amount)
		})
		if err != nil {
			return nil, err
		}
	}
	if c.State().Status != model.CampaignStatusWatermarkReached {
		return nil, fmt.Errorf("watermark %s not reached with %s", c.State().Watermark, c.State().TotalContributions)
	}

	var requestID string
	err = s.step(ctx, "request_configurer", func() error {
		requestID, err = s.engine.RequestConfigurerVerification(ctx, c, c.State().OracleFee)
		return err
	})
	if err != nil {
		return nil, err
	}

	steps := []struct {
		name string
		fn   func() error
	}{
		{name: "confirm_configurer", fn: func() error {
			return s.engine.ConfirmConfigurer(ctx, c, requestID, simulationConfigurer)
		}},
		{name: "configure", fn: func() error {
			return s.engine.Configure(ctx, c, simulationConfigurer, params)
		}},
		{name: "complete_configuration", fn: func() error {
			return s.engine.CompleteConfiguration(ctx, c, simulationConfigurer)
		}},
		{name: "release", fn: func() error {
			s.timer.current = s.timer.current.Add(c.State().DueDiligenceDuration())

			value := campaign.RequiredReleaseValue(c.State())
			s.payments.Fund(escrow, value)
			return s.engine.ReleaseFundsToSale(ctx, c, simulationConfigurer, value)
		}},
	}
	for _, st := range steps {
		if err := s.step(ctx, st.name, st.fn); err != nil {
			return nil, err
		}
	}

	switch {
	case s.flags.refund:
		err = s.step(ctx, "claim_refund_from_sale", func() error {
			return s.engine.ClaimRefundFromSale(ctx, c, simulationConfigurer)
		})
	case c.State().Status == model.CampaignStatusInReview:
		err = s.step(ctx, "claim_tokens_from_sale", func() error {
			return s.engine.ClaimTokensFromSale(ctx, c, simulationConfigurer)
		})
	}
	if err != nil {
		return nil, err
	}

	for i := 0; i < s.flags.participants; i++ {
		addr := participantAddress(i)
		if c.State().Status == model.CampaignStatusClaim {
			if err := s.step(ctx, "claim_tokens", func() error { return s.engine.ClaimTokens(ctx, c, addr) }); err != nil {
				return nil, err
			}
		}
		if err := s.step(ctx, "claim_refund", func() error { return s.engine.ClaimRefund(ctx, c, addr) }); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (s *simulation) report(ctx context.Context, c *campaign.Campaign) error {
	state := c.State()
	fmt.Println("STATUS:", state.Status)
	fmt.Println("TOTAL TOKENS RECEIVED:", state.TotalTokensReceived)
	fmt.Println("RESIDUE SNAPSHOT:", state.ResidueSnapshot)
	fmt.Println("FEE PAID:", state.FeePaid)
	fmt.Println("PENDING OWNER FEE:", state.PendingOwnerFee)
	fmt.Println("SUBSIDY PAID:", state.SubsidyPaid)

	for i := 0; i < s.flags.participants; i++ {
		addr := participantAddress(i)
		balance, err := s.tokens.BalanceOf(ctx, simulationToken, addr)
		if err != nil {
			return err
		}
		paid := s.payments.BalanceOf(addr)
		fmt.Printf("PARTICIPANT %s: tokens=%s refund=%s\n", addr.Hex(), balance, paid)

		s.balances.WithLabelValues(addr.Hex(), "token").Set(balance.InexactFloat64())
		s.balances.WithLabelValues(addr.Hex(), "base").Set(paid.InexactFloat64())
	}

	escrowTokens, err := s.tokens.BalanceOf(ctx, simulationToken, state.EscrowAddress)
	if err != nil {
		return err
	}
	escrowBase := s.payments.BalanceOf(state.EscrowAddress)
	fmt.Println("ESCROW LEFT:", escrowBase, "TOKENS LEFT:", escrowTokens)
	fmt.Println("OWNER FEES:", s.payments.BalanceOf(state.OwnerFeeRecipient))

	s.balances.WithLabelValues("escrow", "base").Set(escrowBase.InexactFloat64())
	s.balances.WithLabelValues("escrow", "token").Set(escrowTokens.InexactFloat64())
	return nil
}

// serveMetrics blocks until interrupted
func serveMetrics(logger *zap.Logger, addr string, gatherer prometheus.Gatherer) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	done := make(chan error, 1)
	go func() {
		err := httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			done <- err
			return
		}
		done <- nil
	}()
	logger.Info("Serving simulation metrics", zap.String("addr", addr))

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)

	select {
	case err := <-done:
		return err
	case <-stop:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		return err
	}
	logger.Info("Shutdown HTTP server successfully")
	return <-done
}

func simulateCommand() *cobra.Command {
	flags := simulateFlags{}
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "run a campaign end to end on the in-memory sandbox",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := config.Load()
			logger := config.NewLogger(conf.Log)
			defer func() { _ = logger.Sync() }()

			reg := prometheus.NewRegistry()
			s := newSimulation(flags, reg)

			ctx := otellib.ToContext(context.Background(), logger)
			c, err := s.run(ctx)
			if err != nil {
				return err
			}
			if err := s.report(ctx, c); err != nil {
				return err
			}

			if !flags.serve || !conf.Metrics.Enabled {
				return nil
			}
			return serveMetrics(logger, conf.Metrics.ListenString(), reg)
		},
	}

	cmd.Flags().IntVar(&flags.participants, "participants", 5, "number of participants")
	cmd.Flags().StringVar(&flags.amount, "amount", "3", "contribution of every participant")
	cmd.Flags().StringVar(&flags.buyAction, "buy", sandbox.ActionBuy, "buy action, none sends the value")
	cmd.Flags().StringVar(&flags.claimAction, "claim", "none", "claim action, auto pulls at release")
	cmd.Flags().BoolVar(&flags.refund, "refund", false, "pull a refund from the sale instead of the tokens")
	cmd.Flags().BoolVar(&flags.serve, "serve-metrics", false, "serve /metrics on metrics.host:port after the run, unless metrics.enabled is false")
	return cmd
}
