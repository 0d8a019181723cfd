package config

import (
	"errors"
	"fmt"
	"github.com/QuangTung97/poolparty/model"
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// RegistryConfig holds the defaults written by registry init
type RegistryConfig struct {
	Owner               string `mapstructure:"owner"`
	OwnerAddress        string `mapstructure:"owner_address"`
	FeePercent          string `mapstructure:"fee_percent"`
	WithdrawalFee       string `mapstructure:"withdrawal_fee"`
	DiscountPercent     string `mapstructure:"discount_percent"`
	Watermark           string `mapstructure:"watermark"`
	DueDiligenceSeconds int64  `mapstructure:"due_diligence_seconds"`
	MinContribution     string `mapstructure:"min_contribution"`
	OracleFee           string `mapstructure:"oracle_fee"`
}

// ErrInvalidAddress ...
var ErrInvalidAddress = errors.New("invalid address")

// ParseAddress parses a 0x prefixed hex address
func ParseAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	return common.HexToAddress(s), nil
}

func parseDecimal(field string, s string, dest *decimal.Decimal) error {
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("registry.%s: %w", field, err)
	}
	*dest = d
	return nil
}

// ToModel overrides the values of defaults that are set in the config
func (c RegistryConfig) ToModel(defaults func(owner common.Address) model.RegistryConfig) (model.RegistryConfig, error) {
	owner, err := ParseAddress(c.Owner)
	if err != nil {
		return model.RegistryConfig{}, fmt.Errorf("registry.owner: %w", err)
	}

	result := defaults(owner)
	if c.OwnerAddress != "" {
		result.OwnerAddress, err = ParseAddress(c.OwnerAddress)
		if err != nil {
			return model.RegistryConfig{}, fmt.Errorf("registry.owner_address: %w", err)
		}
	}

	fields := []struct {
		name  string
		value string
		dest  *decimal.Decimal
	}{
		{name: "fee_percent", value: c.FeePercent, dest: &result.FeePercent},
		{name: "withdrawal_fee", value: c.WithdrawalFee, dest: &result.WithdrawalFee},
		{name: "discount_percent", value: c.DiscountPercent, dest: &result.DiscountPercent},
		{name: "watermark", value: c.Watermark, dest: &result.Watermark},
		{name: "min_contribution", value: c.MinContribution, dest: &result.MinContribution},
		{name: "oracle_fee", value: c.OracleFee, dest: &result.OracleFee},
	}
	for _, f := range fields {
		if err := parseDecimal(f.name, f.value, f.dest); err != nil {
			return model.RegistryConfig{}, err
		}
	}

	if c.DueDiligenceSeconds > 0 {
		result.DueDiligenceSeconds = c.DueDiligenceSeconds
	}
	return result, nil
}
