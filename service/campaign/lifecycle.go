package campaign

import (
	"context"
	"database/sql"
	"fmt"
	"github.com/QuangTung97/poolparty/model"
	"github.com/QuangTung97/poolparty/pkg/otellib"
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"time"
)

// ConfigureParams are the sale parameters set by the authorized configurer
type ConfigureParams struct {
	Destination     common.Address
	TokenLedgerRef  common.Address
	BuyAction       model.SaleAction
	ClaimAction     model.SaleAction
	RefundAction    model.SaleAction
	PublicPrice     decimal.Decimal
	GroupPrice      decimal.Decimal
	SubsidyRequired bool
}

func isZeroAddress(addr common.Address) bool {
	return addr == common.Address{}
}

func validAction(action model.SaleAction, allowAuto bool) bool {
	switch action.Kind {
	case model.SaleActionNone:
		return true
	case model.SaleActionAuto:
		return allowAuto
	case model.SaleActionNamed:
		return action.Name != "" && !model.IsSentinelName(action.Name)
	default:
		return false
	}
}

func (p ConfigureParams) validate() error {
	if isZeroAddress(p.Destination) || isZeroAddress(p.TokenLedgerRef) {
		return ErrInvalidArgument
	}
	if !validAction(p.BuyAction, false) || !validAction(p.ClaimAction, true) || !validAction(p.RefundAction, false) {
		return ErrInvalidArgument
	}
	if !p.PublicPrice.IsPositive() || !p.GroupPrice.IsPositive() {
		return ErrInvalidArgument
	}
	if !IsExactAmount(p.PublicPrice) || !IsExactAmount(p.GroupPrice) {
		return ErrInvalidArgument
	}
	return nil
}

func (c *Campaign) checkConfigurer(caller common.Address) error {
	configurer := c.state.AuthorizedConfigurer
	if isZeroAddress(configurer) || caller != configurer {
		return ErrUnauthorized
	}
	return nil
}

// Contribute adds amount to the balance of identity
func (e *Engine) Contribute(ctx context.Context, c *Campaign, identity common.Address, amount decimal.Decimal) error {
	return e.run(ctx, c, "Contribute", func(now time.Time) error {
		c.refreshDeadline(now)

		if isZeroAddress(identity) {
			return ErrInvalidArgument
		}
		if amount.LessThan(c.state.MinContribution) || !amount.IsPositive() {
			return ErrBelowMinimum
		}
		if !IsExactAmount(amount) {
			return ErrInvalidArgument
		}

		switch c.state.Status {
		case model.CampaignStatusOpen, model.CampaignStatusWatermarkReached, model.CampaignStatusDueDiligence:
		default:
			return ErrWrongState
		}

		c.ledger.Add(identity, amount)
		c.state.TotalContributions = c.state.TotalContributions.Add(amount)
		c.state.EscrowBalance = c.state.EscrowBalance.Add(amount)
		c.addEvent(now, model.Event{
			Type:    model.EventTypeContributed,
			Address: identity,
			Amount:  amount,
		})

		c.refreshWatermark(now)
		return nil
	})
}

// Withdraw returns the whole balance of identity minus the withdrawal fee
func (e *Engine) Withdraw(ctx context.Context, c *Campaign, identity common.Address) error {
	return e.run(ctx, c, "Withdraw", func(now time.Time) error {
		p, ok := c.ledger.Get(identity)
		if !ok || !p.Active || p.Balance.IsZero() {
			return ErrZeroBalance
		}

		switch c.state.Status {
		case model.CampaignStatusOpen, model.CampaignStatusWatermarkReached, model.CampaignStatusDueDiligence:
		default:
			return ErrWrongState
		}

		balance, err := c.removeParticipant(identity)
		if err != nil {
			return err
		}

		fee := minDecimal(c.state.WithdrawalFee, balance)
		payout := balance.Sub(fee)

		c.addEvent(now, model.Event{
			Type:    model.EventTypeWithdrawn,
			Address: identity,
			Amount:  payout,
		})
		c.refreshWatermark(now)
		c.refreshDeadline(now)

		if err := e.pay(ctx, c, identity, payout); err != nil {
			return err
		}
		// the payout is done, a failing fee transfer must not undo it
		e.payOwnerFee(ctx, c, now, fee)
		return nil
	})
}

func (c *Campaign) removeParticipant(identity common.Address) (decimal.Decimal, error) {
	removed, err := c.ledger.Remove(identity)
	if err != nil {
		return decimal.Zero, ErrNotFound
	}
	c.state.TotalContributions = c.state.TotalContributions.Sub(removed.Balance)
	c.state.EscrowBalance = c.state.EscrowBalance.Sub(removed.Balance)
	return removed.Balance, nil
}

func (e *Engine) pay(ctx context.Context, c *Campaign, to common.Address, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return nil
	}
	if err := e.payments.Transfer(ctx, c.state.EscrowAddress, to, amount); err != nil {
		return fmt.Errorf("payments transfer: %w", err)
	}
	return nil
}

// payOwnerFee never fails, a fee that can not be transferred accrues in PendingOwnerFee
func (e *Engine) payOwnerFee(ctx context.Context, c *Campaign, now time.Time, fee decimal.Decimal) {
	err := e.pay(ctx, c, c.state.OwnerFeeRecipient, fee)
	if err == nil {
		return
	}

	c.state.PendingOwnerFee = c.state.PendingOwnerFee.Add(fee)
	c.addEvent(now, model.Event{
		Type:    model.EventTypeOwnerFeeDeferred,
		Address: c.state.OwnerFeeRecipient,
		Amount:  fee,
	})
	otellib.Extract(ctx).Warn("Owner fee deferred",
		zap.String("fee", fee.String()),
		zap.String("pending", c.state.PendingOwnerFee.String()),
		zap.Error(err),
	)
}

// SettleOwnerFee pays the accrued owner fee, safe to retry
func (e *Engine) SettleOwnerFee(ctx context.Context, c *Campaign) error {
	return e.run(ctx, c, "SettleOwnerFee", func(now time.Time) error {
		pending := c.state.PendingOwnerFee
		if !pending.IsPositive() {
			return ErrNothingPending
		}

		c.state.PendingOwnerFee = decimal.Zero
		c.addEvent(now, model.Event{
			Type:    model.EventTypeOwnerFeeSettled,
			Address: c.state.OwnerFeeRecipient,
			Amount:  pending,
		})
		return e.pay(ctx, c, c.state.OwnerFeeRecipient, pending)
	})
}

// SetAuthorizedConfigurer assigns the configurer directly, bypassing the oracle
func (e *Engine) SetAuthorizedConfigurer(ctx context.Context, c *Campaign, identity common.Address) error {
	return e.run(ctx, c, "SetAuthorizedConfigurer", func(now time.Time) error {
		if !isZeroAddress(c.state.AuthorizedConfigurer) {
			return ErrConfigurerAlreadySet
		}
		if c.state.Status != model.CampaignStatusWatermarkReached {
			return ErrWrongState
		}
		if isZeroAddress(identity) {
			return ErrInvalidArgument
		}
		c.assignConfigurer(now, identity)
		return nil
	})
}

func (c *Campaign) assignConfigurer(now time.Time, identity common.Address) {
	c.state.AuthorizedConfigurer = identity
	c.state.OracleRequestID = ""
	c.addEvent(now, model.Event{
		Type:    model.EventTypeConfigurerSet,
		Address: identity,
	})
}

// RequestConfigurerVerification pays the oracle fee and asks the oracle for the configurer identity
func (e *Engine) RequestConfigurerVerification(
	ctx context.Context, c *Campaign, valueSent decimal.Decimal,
) (string, error) {
	var requestID string
	err := e.run(ctx, c, "RequestConfigurerVerification", func(now time.Time) error {
		if !isZeroAddress(c.state.AuthorizedConfigurer) {
			return ErrConfigurerAlreadySet
		}
		if c.state.Status != model.CampaignStatusWatermarkReached {
			return ErrWrongState
		}
		if c.state.OracleRequestID != "" {
			return ErrWrongState
		}
		if !valueSent.Equal(c.state.OracleFee) {
			return ErrInsufficientValue
		}

		requestID = e.newRequestID()
		c.state.OracleRequestID = requestID
		c.addEvent(now, model.Event{
			Type:   model.EventTypeOracleRequested,
			Amount: valueSent,
			Reason: requestID,
		})

		if err := e.oracle.RequestConfigurer(ctx, c.state.Name, requestID, valueSent); err != nil {
			return fmt.Errorf("oracle request: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return requestID, nil
}

// ConfirmConfigurer completes a pending oracle request
func (e *Engine) ConfirmConfigurer(ctx context.Context, c *Campaign, requestID string, identity common.Address) error {
	return e.run(ctx, c, "ConfirmConfigurer", func(now time.Time) error {
		if !isZeroAddress(c.state.AuthorizedConfigurer) {
			return ErrConfigurerAlreadySet
		}
		if c.state.Status != model.CampaignStatusWatermarkReached {
			return ErrWrongState
		}
		if requestID == "" || c.state.OracleRequestID != requestID {
			return ErrNotFound
		}
		if isZeroAddress(identity) {
			return ErrInvalidArgument
		}
		c.assignConfigurer(now, identity)
		return nil
	})
}

// Configure sets the sale parameters, can be repeated until the configuration is completed
func (e *Engine) Configure(ctx context.Context, c *Campaign, caller common.Address, params ConfigureParams) error {
	return e.run(ctx, c, "Configure", func(now time.Time) error {
		if err := c.checkConfigurer(caller); err != nil {
			return err
		}
		if c.state.Status != model.CampaignStatusWatermarkReached {
			return ErrWrongState
		}
		if err := params.validate(); err != nil {
			return err
		}

		c.state.Destination = params.Destination
		c.state.TokenLedgerRef = params.TokenLedgerRef
		c.state.BuyAction = params.BuyAction
		c.state.ClaimAction = params.ClaimAction
		c.state.RefundAction = params.RefundAction
		c.state.PublicPrice = params.PublicPrice
		c.state.GroupPrice = params.GroupPrice
		c.state.SubsidyRequired = params.SubsidyRequired
		c.state.Configured = true

		c.addEvent(now, model.Event{
			Type:    model.EventTypeConfigured,
			Address: params.Destination,
		})
		return nil
	})
}

// CompleteConfiguration locks contribution percents and starts the due diligence timer
func (e *Engine) CompleteConfiguration(ctx context.Context, c *Campaign, caller common.Address) error {
	return e.run(ctx, c, "CompleteConfiguration", func(now time.Time) error {
		if err := c.checkConfigurer(caller); err != nil {
			return err
		}
		if c.state.Status != model.CampaignStatusWatermarkReached || !c.state.Configured {
			return ErrWrongState
		}

		discount := ActualDiscountPercent(c.state.PublicPrice, c.state.GroupPrice)
		if discount.LessThan(c.state.ExpectedDiscountPercent) {
			return ErrInsufficientDiscount
		}
		c.state.ActualDiscountPercent = discount

		c.lockContributions()
		c.state.DueDiligenceDeadline = sql.NullTime{
			Valid: true,
			Time:  now.Add(c.state.DueDiligenceDuration()),
		}
		c.setStatus(now, model.CampaignStatusDueDiligence)
		return nil
	})
}

// EjectParticipant removes a participant after the due diligence deadline, paying back the full balance
func (e *Engine) EjectParticipant(
	ctx context.Context, c *Campaign, caller common.Address, identity common.Address, reason string,
) error {
	return e.run(ctx, c, "EjectParticipant", func(now time.Time) error {
		if err := c.checkConfigurer(caller); err != nil {
			return err
		}
		if c.state.Status != model.CampaignStatusDueDiligence || !c.deadlinePassed(now) {
			return ErrWrongState
		}

		p, ok := c.ledger.Get(identity)
		if !ok || !p.Active {
			return ErrNotFound
		}

		balance, err := c.removeParticipant(identity)
		if err != nil {
			return err
		}
		_, _ = c.ledger.Update(identity, func(p *model.Participant) {
			p.EjectReason = reason
		})

		c.addEvent(now, model.Event{
			Type:    model.EventTypeEjected,
			Address: identity,
			Amount:  balance,
			Reason:  reason,
		})
		c.refreshDeadline(now)

		return e.pay(ctx, c, identity, balance)
	})
}
