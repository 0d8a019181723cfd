package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/QuangTung97/poolparty/config"
	"github.com/QuangTung97/poolparty/pkg/cacheclient"
	"github.com/QuangTung97/poolparty/pkg/memtable"
	"github.com/QuangTung97/poolparty/pkg/sandbox"
	"github.com/QuangTung97/poolparty/repository"
	"github.com/QuangTung97/poolparty/service/campaign"
	"github.com/QuangTung97/poolparty/service/poolparty"
	"github.com/QuangTung97/poolparty/service/registry"
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"math/big"
	"sort"
	"sync"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

func main() {
	rootCmd := cobra.Command{
		Use: "bench",
	}
	rootCmd.AddCommand(
		benchContributeCommand(),
		benchReadCommand(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
	}
}

type benchParams struct {
	numThreads  int
	numElements int
}

func newBenchService(conf config.Config) *poolparty.Service {
	db := conf.MySQL.MustConnect()
	provider := repository.NewProvider(db)

	options := []poolparty.Option{
		poolparty.WithNameIndex(memtable.New(conf.Cache.NameIndexSize)),
	}
	if conf.Cache.Enabled {
		fmt.Println("MEMCACHE ADDR:", conf.Memcache.Addr())
		client := cacheclient.New(conf.Memcache.Addr(), conf.Memcache.Conns(),
			cacheclient.WithRetryDuration(conf.Memcache.RetryDuration()))
		options = append(options, poolparty.WithViewCache(client, conf.Cache.ViewTTL))
	}

	engine := campaign.NewEngine(sandbox.NewMarket(), sandbox.NewTokenLedger(), sandbox.NewPayments(), sandbox.NewOracle())
	return poolparty.NewService(provider, poolparty.NewRepositories(), engine, options...)
}

// prepareCampaign creates a fresh campaign, initializing the registry with a watermark nobody reaches
func prepareCampaign(ctx context.Context, svc *poolparty.Service) int64 {
	owner := common.BigToAddress(big.NewInt(1))
	conf := registry.DefaultConfig(owner)
	conf.Watermark = decimal.New(1, 12)

	err := svc.InitRegistry(ctx, conf)
	if err != nil && !errors.Is(err, poolparty.ErrRegistryAlreadyInitialized) {
		panic(err)
	}

	id, err := svc.CreateCampaign(ctx, "bench-"+uuid.NewString())
	if err != nil {
		panic(err)
	}
	fmt.Println("CAMPAIGN ID:", id)
	return id
}

func runBench(params benchParams, fn func(threadIndex int, i int) error) {
	numThreads := params.numThreads
	numElements := params.numElements

	durations := make([][]time.Duration, numThreads)

	totalStart := time.Now()

	var wg sync.WaitGroup
	wg.Add(numThreads)
	for th := 0; th < numThreads; th++ {
		threadIndex := th
		go func() {
			defer wg.Done()

			for i := 0; i < numElements; i++ {
				start := time.Now()
				err := fn(threadIndex, i)
				if err != nil {
					fmt.Println(err)
				}
				durations[threadIndex] = append(durations[threadIndex], time.Since(start))
			}
		}()
	}
	wg.Wait()
	fmt.Println("TOTAL TIME", time.Since(totalStart))

	history := make([]time.Duration, 0, numThreads*numElements)

	total := time.Duration(0)
	for _, bucket := range durations {
		for _, d := range bucket {
			total += d
			history = append(history, d)
		}
	}
	numHistory := numElements * numThreads
	if numHistory == 0 {
		return
	}
	avg := total / time.Duration(numHistory)

	sort.Slice(history, func(i, j int) bool {
		return history[i] < history[j]
	})

	p50Index := numHistory * 50 / 100
	p90Index := numHistory * 90 / 100
	p95Index := numHistory * 95 / 100
	p99Index := numHistory * 99 / 100
	p999Index := numHistory * 999 / 1000

	fmt.Println("P50:", history[p50Index])
	fmt.Println("P90:", history[p90Index])
	fmt.Println("P95:", history[p95Index])
	fmt.Println("P99:", history[p99Index])
	fmt.Println("P999:", history[p999Index])
	fmt.Println("MAX:", history[numHistory-1])
	fmt.Println("HISTORY LEN:", len(history))

	fmt.Println("AVG:", avg)
}

func benchContribute(params benchParams) {
	conf := config.Load()
	svc := newBenchService(conf)

	ctx := context.Background()
	campaignID := prepareCampaign(ctx, svc)

	amount := decimal.New(1, -1)
	runBench(params, func(threadIndex int, i int) error {
		identity := common.BigToAddress(big.NewInt(int64(0x10000 + threadIndex)))
		return svc.Contribute(ctx, campaignID, identity, amount)
	})

	view, err := svc.GetCampaign(ctx, campaignID)
	if err != nil {
		panic(err)
	}
	fmt.Println("TOTAL CONTRIBUTIONS:", view.TotalContributions)
	fmt.Println("PARTICIPANTS:", view.ParticipantCount)
}

func benchRead(params benchParams) {
	conf := config.Load()
	fmt.Println("CACHE ENABLED:", conf.Cache.Enabled)
	svc := newBenchService(conf)

	ctx := context.Background()
	campaignID := prepareCampaign(ctx, svc)

	runBench(params, func(threadIndex int, i int) error {
		_, err := svc.GetCampaign(ctx, campaignID)
		return err
	})
}

func addBenchFlags(cmd *cobra.Command, params *benchParams) {
	cmd.Flags().IntVar(&params.numThreads, "threads", 50, "number of concurrent threads")
	cmd.Flags().IntVar(&params.numElements, "elements", 200, "number of calls per thread")
}

func benchContributeCommand() *cobra.Command {
	params := benchParams{}
	cmd := &cobra.Command{
		Use:   "contribute",
		Short: "benchmark concurrent contributions to one campaign",
		Run: func(cmd *cobra.Command, args []string) {
			benchContribute(params)
		},
	}
	addBenchFlags(cmd, &params)
	return cmd
}

func benchReadCommand() *cobra.Command {
	params := benchParams{}
	cmd := &cobra.Command{
		Use:   "read",
		Short: "benchmark campaign views, with memcached when cache.enabled",
		Run: func(cmd *cobra.Command, args []string) {
			benchRead(params)
		},
	}
	addBenchFlags(cmd, &params)
	return cmd
}
