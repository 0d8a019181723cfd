package registry

import (
	"github.com/QuangTung97/poolparty/model"
	"github.com/QuangTung97/poolparty/service/campaign"
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

const (
	// MaxFeePercent ...
	MaxFeePercent = 50

	// MaxDiscountPercent ...
	MaxDiscountPercent = 100
)

// DefaultConfig returns the defaults of a freshly deployed registry
func DefaultConfig(owner common.Address) model.RegistryConfig {
	return model.RegistryConfig{
		ID:                  model.RegistryConfigID,
		Owner:               owner,
		OwnerAddress:        owner,
		FeePercent:          decimal.NewFromInt(4),
		WithdrawalFee:       decimal.Zero,
		DiscountPercent:     decimal.NewFromInt(15),
		Watermark:           decimal.NewFromInt(15),
		DueDiligenceSeconds: 3600,
		MinContribution:     decimal.New(1, -2),
		OracleFee:           decimal.New(5, -3),
	}
}

// Settings guards the global defaults, every setter is restricted to the registry owner
type Settings struct {
	conf model.RegistryConfig
}

// NewSettings ...
func NewSettings(conf model.RegistryConfig) *Settings {
	return &Settings{conf: conf}
}

// Config returns the current defaults by value
func (s *Settings) Config() model.RegistryConfig {
	return s.conf
}

func (s *Settings) checkOwner(caller common.Address) error {
	if caller != s.conf.Owner {
		return ErrUnauthorized
	}
	return nil
}

func (s *Settings) setAmount(caller common.Address, amount decimal.Decimal, dest *decimal.Decimal) error {
	if err := s.checkOwner(caller); err != nil {
		return err
	}
	if amount.IsNegative() || !campaign.IsExactAmount(amount) {
		return ErrInvalidArgument
	}
	*dest = amount
	return nil
}

func (s *Settings) setPercent(caller common.Address, p decimal.Decimal, limit int64, dest *decimal.Decimal) error {
	if err := s.checkOwner(caller); err != nil {
		return err
	}
	if p.IsNegative() || p.GreaterThan(decimal.NewFromInt(limit)) || !campaign.IsExactAmount(p) {
		return ErrInvalidArgument
	}
	*dest = p
	return nil
}

// SetFeePercent fails above MaxFeePercent
func (s *Settings) SetFeePercent(caller common.Address, p decimal.Decimal) error {
	return s.setPercent(caller, p, MaxFeePercent, &s.conf.FeePercent)
}

// SetWithdrawalFee ...
func (s *Settings) SetWithdrawalFee(caller common.Address, amount decimal.Decimal) error {
	return s.setAmount(caller, amount, &s.conf.WithdrawalFee)
}

// SetDiscountPercent fails above MaxDiscountPercent
func (s *Settings) SetDiscountPercent(caller common.Address, p decimal.Decimal) error {
	return s.setPercent(caller, p, MaxDiscountPercent, &s.conf.DiscountPercent)
}

// SetWatermark ...
func (s *Settings) SetWatermark(caller common.Address, amount decimal.Decimal) error {
	return s.setAmount(caller, amount, &s.conf.Watermark)
}

// SetMinContribution ...
func (s *Settings) SetMinContribution(caller common.Address, amount decimal.Decimal) error {
	return s.setAmount(caller, amount, &s.conf.MinContribution)
}

// SetOracleFee ...
func (s *Settings) SetOracleFee(caller common.Address, amount decimal.Decimal) error {
	return s.setAmount(caller, amount, &s.conf.OracleFee)
}

// SetDueDiligenceDuration ...
func (s *Settings) SetDueDiligenceDuration(caller common.Address, seconds int64) error {
	if err := s.checkOwner(caller); err != nil {
		return err
	}
	if seconds < 0 {
		return ErrInvalidArgument
	}
	s.conf.DueDiligenceSeconds = seconds
	return nil
}

// SetOwnerAddress changes the fee recipient of campaigns created afterwards
func (s *Settings) SetOwnerAddress(caller common.Address, addr common.Address) error {
	if err := s.checkOwner(caller); err != nil {
		return err
	}
	if addr == (common.Address{}) {
		return ErrInvalidArgument
	}
	s.conf.OwnerAddress = addr
	return nil
}
