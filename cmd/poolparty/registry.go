package main

import (
	"context"
	"fmt"
	"github.com/QuangTung97/poolparty/config"
	"github.com/QuangTung97/poolparty/service/poolparty"
	"github.com/QuangTung97/poolparty/service/registry"
	"github.com/spf13/cobra"
	"time"
)

func registryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "registry",
		Short: "manage the registry defaults",
	}
	cmd.AddCommand(
		registryInitCommand(),
		registryShowCommand(),
		registrySetCommand(),
	)
	return cmd
}

func registryInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "write the registry defaults from config.yml",
		Args:  cobra.NoArgs,
		RunE: withApp(func(ctx context.Context, a *app, _ []string) error {
			conf, err := a.conf.Registry.ToModel(registry.DefaultConfig)
			if err != nil {
				return err
			}
			if err := a.service.InitRegistry(ctx, conf); err != nil {
				return err
			}
			fmt.Println("Registry initialized, owner:", conf.Owner.Hex())
			return nil
		}),
	}
}

func registryShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "print the registry defaults",
		Args:  cobra.NoArgs,
		RunE: withApp(func(ctx context.Context, a *app, _ []string) error {
			conf, err := a.service.GetRegistryConfig(ctx)
			if err != nil {
				return err
			}
			fmt.Println("OWNER:", conf.Owner.Hex())
			fmt.Println("OWNER ADDRESS:", conf.OwnerAddress.Hex())
			fmt.Println("FEE PERCENT:", conf.FeePercent)
			fmt.Println("WITHDRAWAL FEE:", conf.WithdrawalFee)
			fmt.Println("DISCOUNT PERCENT:", conf.DiscountPercent)
			fmt.Println("WATERMARK:", conf.Watermark)
			fmt.Println("DUE DILIGENCE:", time.Duration(conf.DueDiligenceSeconds)*time.Second)
			fmt.Println("MIN CONTRIBUTION:", conf.MinContribution)
			fmt.Println("ORACLE FEE:", conf.OracleFee)
			return nil
		}),
	}
}

func registrySetCommand() *cobra.Command {
	var caller string
	cmd := &cobra.Command{
		Use:   "set <setting> <value>",
		Short: "change one default, campaigns already created are unaffected",
		Long: "Settings: fee-percent, withdrawal-fee, discount-percent, watermark, min-contribution,\n" +
			"oracle-fee, due-diligence-seconds, owner-address",
		Args: cobra.ExactArgs(2),
		RunE: withApp(func(ctx context.Context, a *app, args []string) error {
			callerAddr, err := config.ParseAddress(caller)
			if err != nil {
				return err
			}
			update, err := poolparty.ParseRegistryUpdate(args[0], args[1])
			if err != nil {
				return err
			}
			return a.service.UpdateRegistry(ctx, callerAddr, update)
		}),
	}
	cmd.Flags().StringVar(&caller, "caller", "", "address of the registry owner")
	_ = cmd.MarkFlagRequired("caller")
	return cmd
}
