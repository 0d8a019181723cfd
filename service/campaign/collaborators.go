package campaign

import (
	"context"
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"time"
)

//go:generate moq -out campaign_mocks_test.go . SaleAdapter TokenLedger Payments Oracle

// SaleAdapter is the external token sale
type SaleAdapter interface {
	// Call invokes a named action sending value from the escrow, returns the value sent back
	Call(
		ctx context.Context, from common.Address, destination common.Address, action string, value decimal.Decimal,
	) (decimal.Decimal, error)

	// Send is a plain value transfer
	Send(ctx context.Context, from common.Address, destination common.Address, value decimal.Decimal) error
}

// TokenLedger is the fungible asset ledger of the purchased token
type TokenLedger interface {
	BalanceOf(ctx context.Context, token common.Address, holder common.Address) (decimal.Decimal, error)
	Transfer(ctx context.Context, token common.Address, from common.Address, to common.Address, amount decimal.Decimal) error
}

// Payments moves the base asset out of the escrow
type Payments interface {
	Transfer(ctx context.Context, from common.Address, to common.Address, amount decimal.Decimal) error
}

// Oracle confirms the configurer identity asynchronously
type Oracle interface {
	RequestConfigurer(ctx context.Context, campaignName string, requestID string, fee decimal.Decimal) error
}

// Timer ...
type Timer interface {
	Now() time.Time
}

type realTimer struct {
}

func (realTimer) Now() time.Time {
	return time.Now()
}
