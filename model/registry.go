package model

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// RegistryConfigID is the id of the single registry config row
const RegistryConfigID = 1

// RegistryConfig holds the registry owner and the defaults snapshotted into every new campaign
type RegistryConfig struct {
	ID    int64          `db:"id"`
	Owner common.Address `db:"owner"`

	// OwnerAddress receives the fees of new campaigns
	OwnerAddress common.Address `db:"owner_address"`

	FeePercent          decimal.Decimal `db:"fee_percent"`
	WithdrawalFee       decimal.Decimal `db:"withdrawal_fee"`
	DiscountPercent     decimal.Decimal `db:"discount_percent"`
	Watermark           decimal.Decimal `db:"watermark"`
	DueDiligenceSeconds int64           `db:"due_diligence_seconds"`
	MinContribution     decimal.Decimal `db:"min_contribution"`
	OracleFee           decimal.Decimal `db:"oracle_fee"`
}
