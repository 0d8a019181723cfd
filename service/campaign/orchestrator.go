package campaign

import (
	"context"
	"fmt"
	"github.com/QuangTung97/poolparty/model"
	"github.com/QuangTung97/poolparty/pkg/otellib"
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"time"
)

// ReleaseFundsToSale forwards the pool plus subsidy to the sale and pays the fee to the owner
func (e *Engine) ReleaseFundsToSale(
	ctx context.Context, c *Campaign, caller common.Address, valueSent decimal.Decimal,
) error {
	return e.run(ctx, c, "ReleaseFundsToSale", func(now time.Time) error {
		if err := c.checkConfigurer(caller); err != nil {
			return err
		}
		c.refreshDeadline(now)

		if c.state.FundsReleased {
			return ErrAlreadyReleased
		}
		if c.state.Status != model.CampaignStatusInReview {
			return ErrWrongState
		}

		fee := ComputeFee(c.state)
		subsidy := decimal.Zero
		if c.state.SubsidyRequired {
			subsidy = ComputeSubsidy(c.state)
		}
		if !valueSent.Equal(fee.Add(subsidy)) {
			return ErrInsufficientValue
		}

		c.lockContributions()

		amount := c.state.TotalContributions.Add(subsidy)
		c.state.FundsReleased = true
		c.state.SubsidyPaid = subsidy
		c.state.FeePaid = fee
		c.state.EscrowBalance = c.state.EscrowBalance.Sub(c.state.TotalContributions)

		baseline, err := e.tokens.BalanceOf(ctx, c.state.TokenLedgerRef, c.state.EscrowAddress)
		if err != nil {
			return fmt.Errorf("token balance: %w", err)
		}
		c.state.TokenBaseline = baseline

		c.addEvent(now, model.Event{
			Type:    model.EventTypeFundsReleased,
			Address: c.state.Destination,
			Amount:  amount,
		})

		returned, err := e.buy(ctx, c, amount)
		if err != nil {
			return err
		}
		c.state.EscrowBalance = c.state.EscrowBalance.Add(returned)

		// the sale holds the funds from here on, nothing below may fail the release
		e.payOwnerFee(ctx, c, now, fee)
		c.state.ResidueSnapshot = c.state.EscrowBalance

		if !c.state.ClaimAction.IsAuto() {
			return nil
		}
		if err := e.pullTokens(ctx, c, now); err != nil {
			otellib.Extract(ctx).Warn("Auto claim failed, campaign stays in review", zap.Error(err))
		}
		return nil
	})
}

func (e *Engine) buy(ctx context.Context, c *Campaign, amount decimal.Decimal) (decimal.Decimal, error) {
	action := c.state.BuyAction
	if action.IsNamed() {
		returned, err := e.sale.Call(ctx, c.state.EscrowAddress, c.state.Destination, action.Name, amount)
		if err != nil {
			return decimal.Zero, fmt.Errorf("sale %s: %w", action.Name, err)
		}
		return nonNegative(returned), nil
	}

	if err := e.sale.Send(ctx, c.state.EscrowAddress, c.state.Destination, amount); err != nil {
		return decimal.Zero, fmt.Errorf("sale send: %w", err)
	}
	return decimal.Zero, nil
}

// pullTokens measures the tokens received since the buy, moving to Claim when there are any
func (e *Engine) pullTokens(ctx context.Context, c *Campaign, now time.Time) error {
	balance, err := e.tokens.BalanceOf(ctx, c.state.TokenLedgerRef, c.state.EscrowAddress)
	if err != nil {
		return fmt.Errorf("token balance: %w", err)
	}

	delta := balance.Sub(c.state.TokenBaseline)
	if !delta.IsPositive() {
		return nil
	}

	c.state.TotalTokensReceived = delta
	c.state.ResidueSnapshot = c.state.EscrowBalance
	c.addEvent(now, model.Event{
		Type:   model.EventTypeTokensPulled,
		Amount: delta,
	})
	c.setStatus(now, model.CampaignStatusClaim)
	return nil
}

// ClaimTokensFromSale invokes the claim action and checks for received tokens, safe to retry
func (e *Engine) ClaimTokensFromSale(ctx context.Context, c *Campaign, caller common.Address) error {
	return e.run(ctx, c, "ClaimTokensFromSale", func(now time.Time) error {
		if err := c.checkConfigurer(caller); err != nil {
			return err
		}
		if c.state.Status == model.CampaignStatusClaim {
			return ErrAlreadyClaimed
		}
		if c.state.Status != model.CampaignStatusInReview || !c.state.FundsReleased {
			return ErrWrongState
		}

		action := c.state.ClaimAction
		if action.IsNamed() {
			returned, err := e.sale.Call(ctx, c.state.EscrowAddress, c.state.Destination, action.Name, decimal.Zero)
			if err != nil {
				return fmt.Errorf("sale %s: %w", action.Name, err)
			}
			c.state.EscrowBalance = c.state.EscrowBalance.Add(nonNegative(returned))

			// keep what the claim returned, the token pull is retried by the next call
			if err := e.pullTokens(ctx, c, now); err != nil {
				otellib.Extract(ctx).Warn("Token pull failed after claim", zap.Error(err))
			}
			return nil
		}
		return e.pullTokens(ctx, c, now)
	})
}

// ClaimRefundFromSale asks the sale for a refund, the escrow balance becomes the residue to distribute
func (e *Engine) ClaimRefundFromSale(ctx context.Context, c *Campaign, caller common.Address) error {
	return e.run(ctx, c, "ClaimRefundFromSale", func(now time.Time) error {
		if err := c.checkConfigurer(caller); err != nil {
			return err
		}
		if c.state.Status == model.CampaignStatusRefunding {
			return ErrAlreadyClaimed
		}
		if c.state.Status != model.CampaignStatusInReview || !c.state.FundsReleased {
			return ErrWrongState
		}

		returned := decimal.Zero
		action := c.state.RefundAction
		if action.IsNamed() {
			value, err := e.sale.Call(ctx, c.state.EscrowAddress, c.state.Destination, action.Name, decimal.Zero)
			if err != nil {
				return fmt.Errorf("sale %s: %w", action.Name, err)
			}
			returned = nonNegative(value)
		}

		c.state.EscrowBalance = c.state.EscrowBalance.Add(returned)
		c.state.ResidueSnapshot = c.state.EscrowBalance
		c.addEvent(now, model.Event{
			Type:   model.EventTypeRefundPulled,
			Amount: returned,
		})
		c.setStatus(now, model.CampaignStatusRefunding)
		return nil
	})
}

func (c *Campaign) getClaimant(identity common.Address) (model.Participant, error) {
	p, ok := c.ledger.Get(identity)
	if !ok || !p.Active {
		return model.Participant{}, ErrNotFound
	}
	return p, nil
}

// ClaimTokens transfers the token entitlement of identity
func (e *Engine) ClaimTokens(ctx context.Context, c *Campaign, identity common.Address) error {
	return e.run(ctx, c, "ClaimTokens", func(now time.Time) error {
		if c.state.Status != model.CampaignStatusClaim {
			return ErrWrongState
		}
		p, err := c.getClaimant(identity)
		if err != nil {
			return err
		}
		if p.TokensClaimed {
			return ErrAlreadyClaimed
		}

		due := ComputeTokensDue(c.state, p)
		c.state.TokensDistributed = c.state.TokensDistributed.Add(due)
		_, _ = c.ledger.Update(identity, func(p *model.Participant) {
			p.TokensDue = due
			p.TokensClaimed = true
			c.settle(p)
		})
		c.addEvent(now, model.Event{
			Type:    model.EventTypeTokensClaimed,
			Address: identity,
			Amount:  due,
		})

		if !due.IsPositive() {
			return nil
		}
		err = e.tokens.Transfer(ctx, c.state.TokenLedgerRef, c.state.EscrowAddress, identity, due)
		if err != nil {
			return fmt.Errorf("token transfer: %w", err)
		}
		return nil
	})
}

// ClaimRefund pays the residue share of identity
func (e *Engine) ClaimRefund(ctx context.Context, c *Campaign, identity common.Address) error {
	return e.run(ctx, c, "ClaimRefund", func(now time.Time) error {
		switch c.state.Status {
		case model.CampaignStatusClaim, model.CampaignStatusRefunding:
		default:
			return ErrWrongState
		}
		p, err := c.getClaimant(identity)
		if err != nil {
			return err
		}
		if p.RefundClaimed {
			return ErrAlreadyClaimed
		}

		share := ComputeResidueShare(c.state, p)
		c.state.ResidueDistributed = c.state.ResidueDistributed.Add(share)
		c.state.EscrowBalance = c.state.EscrowBalance.Sub(share)
		_, _ = c.ledger.Update(identity, func(p *model.Participant) {
			p.RefundAmount = share
			p.RefundClaimed = true
			c.settle(p)
		})
		c.addEvent(now, model.Event{
			Type:    model.EventTypeRefundClaimed,
			Address: identity,
			Amount:  share,
		})

		return e.pay(ctx, c, identity, share)
	})
}
