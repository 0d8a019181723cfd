package main

import (
	"context"
	"fmt"
	"github.com/QuangTung97/poolparty/config"
	"github.com/QuangTung97/poolparty/model"
	"github.com/QuangTung97/poolparty/service/campaign"
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"strconv"
)

func parseCampaignID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid campaign id %q", s)
	}
	return id, nil
}

// campaignArgs parses "<campaign-id> <address>"
func campaignArgs(args []string) (int64, common.Address, error) {
	id, err := parseCampaignID(args[0])
	if err != nil {
		return 0, common.Address{}, err
	}
	addr, err := config.ParseAddress(args[1])
	if err != nil {
		return 0, common.Address{}, err
	}
	return id, addr, nil
}

func campaignCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "campaign",
		Short: "create and operate campaigns",
	}
	cmd.AddCommand(
		campaignCreateCommand(),
		campaignShowCommand(),
		campaignLookupCommand(),
		campaignEventsCommand(),
		campaignParticipantsCommand(),
		campaignDueCommand(),
		campaignContributeCommand(),
		campaignWithdrawCommand(),
		campaignSetConfigurerCommand(),
		campaignConfigureCommand(),
		campaignCompleteCommand(),
		campaignSettleFeeCommand(),
	)
	return cmd
}

func campaignCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "create a campaign with the current registry defaults",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(ctx context.Context, a *app, args []string) error {
			id, err := a.service.CreateCampaign(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Println("CAMPAIGN ID:", id)
			return nil
		}),
	}
}

func campaignShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <campaign-id>",
		Short: "print the campaign view",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(ctx context.Context, a *app, args []string) error {
			id, err := parseCampaignID(args[0])
			if err != nil {
				return err
			}
			view, err := a.service.GetCampaign(ctx, id)
			if err != nil {
				return err
			}
			return printJSON(view)
		}),
	}
}

func campaignLookupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <name>",
		Short: "find the campaign id by name",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(ctx context.Context, a *app, args []string) error {
			id, err := a.service.LookupByName(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Println("CAMPAIGN ID:", id)
			return nil
		}),
	}
}

func campaignEventsCommand() *cobra.Command {
	var fromSeq uint32
	var limit uint64
	cmd := &cobra.Command{
		Use:   "events <campaign-id>",
		Short: "list the audit events of a campaign",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(ctx context.Context, a *app, args []string) error {
			id, err := parseCampaignID(args[0])
			if err != nil {
				return err
			}
			events, err := a.service.ListEvents(ctx, id, fromSeq, limit)
			if err != nil {
				return err
			}
			for _, e := range events {
				fmt.Printf("%d\t%s\t%s\t%s\t%s\t%s\n",
					e.Seq, e.CreatedAt.Format("2006-01-02T15:04:05Z07:00"), e.Type, e.Address.Hex(), e.Amount, e.Reason)
			}
			return nil
		}),
	}
	cmd.Flags().Uint32Var(&fromSeq, "from", 1, "first sequence number")
	cmd.Flags().Uint64Var(&limit, "limit", 100, "max number of events")
	return cmd
}

func campaignParticipantsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "participants <campaign-id>",
		Short: "list the active participants",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(ctx context.Context, a *app, args []string) error {
			id, err := parseCampaignID(args[0])
			if err != nil {
				return err
			}
			participants, err := a.service.ListParticipants(ctx, id)
			if err != nil {
				return err
			}
			for _, p := range participants {
				fmt.Printf("%d\t%s\t%s\t%s\n", p.ListIndex, p.Address.Hex(), p.Balance, p.ContributionPercent)
			}
			return nil
		}),
	}
}

func campaignDueCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "due <campaign-id> <address>",
		Short: "print the refund and tokens due to a participant",
		Args:  cobra.ExactArgs(2),
		RunE: withApp(func(ctx context.Context, a *app, args []string) error {
			id, addr, err := campaignArgs(args)
			if err != nil {
				return err
			}
			due, err := a.service.ContributionsDue(ctx, id, addr)
			if err != nil {
				return err
			}
			fmt.Println("REFUND DUE:", due.RefundDue)
			fmt.Println("TOKENS DUE:", due.TokensDue)
			return nil
		}),
	}
}

func campaignContributeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "contribute <campaign-id> <address> <amount>",
		Short: "record a contribution",
		Args:  cobra.ExactArgs(3),
		RunE: withApp(func(ctx context.Context, a *app, args []string) error {
			id, addr, err := campaignArgs(args)
			if err != nil {
				return err
			}
			amount, err := decimal.NewFromString(args[2])
			if err != nil {
				return err
			}
			return a.service.Contribute(ctx, id, addr, amount)
		}),
	}
}

func campaignSettleFeeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "settle-fee <campaign-id>",
		Short: "pay the owner fee deferred by a failed transfer",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(ctx context.Context, a *app, args []string) error {
			id, err := parseCampaignID(args[0])
			if err != nil {
				return err
			}
			return a.service.SettleOwnerFee(ctx, id)
		}),
	}
}

func campaignWithdrawCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "withdraw <campaign-id> <address>",
		Short: "withdraw the whole balance of a participant",
		Args:  cobra.ExactArgs(2),
		RunE: withApp(func(ctx context.Context, a *app, args []string) error {
			id, addr, err := campaignArgs(args)
			if err != nil {
				return err
			}
			return a.service.Withdraw(ctx, id, addr)
		}),
	}
}

func campaignSetConfigurerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-configurer <campaign-id> <address>",
		Short: "authorize the configurer without the oracle",
		Args:  cobra.ExactArgs(2),
		RunE: withApp(func(ctx context.Context, a *app, args []string) error {
			id, addr, err := campaignArgs(args)
			if err != nil {
				return err
			}
			return a.service.SetAuthorizedConfigurer(ctx, id, addr)
		}),
	}
}

type configureFlags struct {
	destination  string
	token        string
	buyAction    string
	claimAction  string
	refundAction string
	publicPrice  string
	groupPrice   string
	subsidy      bool
}

func (f configureFlags) params() (campaign.ConfigureParams, error) {
	destination, err := config.ParseAddress(f.destination)
	if err != nil {
		return campaign.ConfigureParams{}, err
	}
	token, err := config.ParseAddress(f.token)
	if err != nil {
		return campaign.ConfigureParams{}, err
	}

	params := campaign.ConfigureParams{
		Destination:     destination,
		TokenLedgerRef:  token,
		SubsidyRequired: f.subsidy,
	}
	if params.BuyAction, err = model.ParseSaleAction(f.buyAction); err != nil {
		return campaign.ConfigureParams{}, err
	}
	if params.ClaimAction, err = model.ParseSaleAction(f.claimAction); err != nil {
		return campaign.ConfigureParams{}, err
	}
	if params.RefundAction, err = model.ParseSaleAction(f.refundAction); err != nil {
		return campaign.ConfigureParams{}, err
	}

	params.PublicPrice, err = decimal.NewFromString(f.publicPrice)
	if err != nil {
		return campaign.ConfigureParams{}, err
	}
	params.GroupPrice, err = decimal.NewFromString(f.groupPrice)
	if err != nil {
		return campaign.ConfigureParams{}, err
	}
	return params, nil
}

func campaignConfigureCommand() *cobra.Command {
	var flags configureFlags
	cmd := &cobra.Command{
		Use:   "configure <campaign-id> <caller>",
		Short: "set the sale parameters",
		Args:  cobra.ExactArgs(2),
		RunE: withApp(func(ctx context.Context, a *app, args []string) error {
			id, caller, err := campaignArgs(args)
			if err != nil {
				return err
			}
			params, err := flags.params()
			if err != nil {
				return err
			}
			return a.service.Configure(ctx, id, caller, params)
		}),
	}

	cmd.Flags().StringVar(&flags.destination, "destination", "", "sale address")
	cmd.Flags().StringVar(&flags.token, "token", "", "token ledger address")
	cmd.Flags().StringVar(&flags.buyAction, "buy", "none", "buy action, none sends the value")
	cmd.Flags().StringVar(&flags.claimAction, "claim", "none", "claim action, auto pulls at release")
	cmd.Flags().StringVar(&flags.refundAction, "refund", "none", "refund action")
	cmd.Flags().StringVar(&flags.publicPrice, "public-price", "", "public token price")
	cmd.Flags().StringVar(&flags.groupPrice, "group-price", "", "discounted group token price")
	cmd.Flags().BoolVar(&flags.subsidy, "subsidy", false, "the configurer pays the subsidy at release")
	return cmd
}

func campaignCompleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "complete <campaign-id> <caller>",
		Short: "complete the configuration and start the due diligence",
		Args:  cobra.ExactArgs(2),
		RunE: withApp(func(ctx context.Context, a *app, args []string) error {
			id, caller, err := campaignArgs(args)
			if err != nil {
				return err
			}
			return a.service.CompleteConfiguration(ctx, id, caller)
		}),
	}
}
