package model

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// Participant is the contribution record of one contributor in a campaign
type Participant struct {
	CampaignID int64          `db:"campaign_id"`
	Address    common.Address `db:"address"`

	Balance             decimal.Decimal `db:"balance"`
	LockedBalance       decimal.Decimal `db:"locked_balance"`
	ContributionPercent decimal.Decimal `db:"contribution_percent"`
	TokensDue           decimal.Decimal `db:"tokens_due"`
	RefundAmount        decimal.Decimal `db:"refund_amount"`

	// ListIndex is -1 when the participant is not active
	ListIndex     int    `db:"list_index"`
	Active        bool   `db:"active"`
	TokensClaimed bool   `db:"tokens_claimed"`
	RefundClaimed bool   `db:"refund_claimed"`
	EjectReason   string `db:"eject_reason"`
}

