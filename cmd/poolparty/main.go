package main

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/QuangTung97/poolparty/config"
	"github.com/QuangTung97/poolparty/pkg/cacheclient"
	"github.com/QuangTung97/poolparty/pkg/memtable"
	"github.com/QuangTung97/poolparty/pkg/otellib"
	"github.com/QuangTung97/poolparty/pkg/sandbox"
	"github.com/QuangTung97/poolparty/repository"
	"github.com/QuangTung97/poolparty/service/campaign"
	"github.com/QuangTung97/poolparty/service/poolparty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
	"os"

	_ "github.com/go-sql-driver/mysql"
)

type app struct {
	conf     config.Config
	logger   *zap.Logger
	service  poolparty.IService
	shutdown func()
}

// newApp connects to mysql and memcached, the engine collaborators are the in-memory rails
func newApp() *app {
	conf := config.Load()
	logger := config.NewLogger(conf.Log)

	tracerProvider, shutdown := otellib.InitOtel("poolparty", "local", conf.Jaeger)
	otel.SetTracerProvider(tracerProvider)

	db := conf.MySQL.MustConnect()
	provider := repository.NewProvider(db)

	payments := sandbox.NewPayments()
	tokens := sandbox.NewTokenLedger()
	engine := campaign.NewEngine(sandbox.NewMarket(), tokens, payments, sandbox.NewOracle())

	options := []poolparty.Option{
		poolparty.WithNameIndex(memtable.New(conf.Cache.NameIndexSize)),
		poolparty.WithMetrics(poolparty.NewMetrics(prometheus.DefaultRegisterer)),
	}
	closeCache := func() {}
	if conf.Cache.Enabled {
		client := cacheclient.New(conf.Memcache.Addr(), conf.Memcache.Conns(),
			cacheclient.WithRetryDuration(conf.Memcache.RetryDuration()))
		options = append(options, poolparty.WithViewCache(client, conf.Cache.ViewTTL))
		closeCache = func() { _ = client.Close() }
	}

	svc := poolparty.NewService(provider, poolparty.NewRepositories(), engine, options...)
	tracer := tracerProvider.Tracer("poolparty")

	return &app{
		conf:    conf,
		logger:  logger,
		service: poolparty.NewIServiceWrapper(svc, tracer, "service::"),
		shutdown: func() {
			closeCache()
			_ = db.Close()
			shutdown()
			_ = logger.Sync()
		},
	}
}

func (a *app) context() context.Context {
	return otellib.ToContext(context.Background(), a.logger)
}

// withApp runs fn with a connected app, errors are logged and returned to cobra
func withApp(fn func(ctx context.Context, a *app, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a := newApp()
		defer a.shutdown()

		ctx := a.context()
		err := fn(ctx, a, args)
		if err != nil {
			otellib.Extract(ctx).Error("Command failed", zap.String("command", cmd.CommandPath()), zap.Error(err))
		}
		return err
	}
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:           "poolparty",
		Short:         "pooled token sale escrow",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(
		registryCommand(),
		campaignCommand(),
		simulateCommand(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Println("[ERROR]", err)
		os.Exit(1)
	}
}
