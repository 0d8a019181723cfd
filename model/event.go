package model

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"time"
)

// Event is one entry of the campaign audit trail
type Event struct {
	ID         uint64    `db:"id"`
	CampaignID int64     `db:"campaign_id"`
	Seq        uint32    `db:"seq"`
	Type       EventType `db:"type"`

	Address    common.Address  `db:"address"`
	Amount     decimal.Decimal `db:"amount"`
	Reason     string          `db:"reason"`
	FromStatus CampaignStatus  `db:"from_status"`
	ToStatus   CampaignStatus  `db:"to_status"`

	CreatedAt time.Time `db:"created_at"`
}

// EventType ...
type EventType int

const (
	// EventTypeCreated ...
	EventTypeCreated EventType = 1

	// EventTypeContributed ...
	EventTypeContributed EventType = 2

	// EventTypeWithdrawn ...
	EventTypeWithdrawn EventType = 3

	// EventTypeEjected ...
	EventTypeEjected EventType = 4

	// EventTypeStatusChanged ...
	EventTypeStatusChanged EventType = 5

	// EventTypeConfigurerSet ...
	EventTypeConfigurerSet EventType = 6

	// EventTypeConfigured ...
	EventTypeConfigured EventType = 7

	// EventTypeFundsReleased ...
	EventTypeFundsReleased EventType = 8

	// EventTypeTokensPulled ...
	EventTypeTokensPulled EventType = 9

	// EventTypeRefundPulled ...
	EventTypeRefundPulled EventType = 10

	// EventTypeTokensClaimed ...
	EventTypeTokensClaimed EventType = 11

	// EventTypeRefundClaimed ...
	EventTypeRefundClaimed EventType = 12

	// EventTypeOracleRequested ...
	EventTypeOracleRequested EventType = 13

	// EventTypeOwnerFeeDeferred when the owner fee stays in escrow
	EventTypeOwnerFeeDeferred EventType = 14

	// EventTypeOwnerFeeSettled when the deferred owner fee is paid
	EventTypeOwnerFeeSettled EventType = 15
)

var eventTypeNames = map[EventType]string{
	EventTypeCreated:         "Created",
	EventTypeContributed:     "Contributed",
	EventTypeWithdrawn:       "Withdrawn",
	EventTypeEjected:         "Ejected",
	EventTypeStatusChanged:   "StatusChanged",
	EventTypeConfigurerSet:   "ConfigurerSet",
	EventTypeConfigured:      "Configured",
	EventTypeFundsReleased:   "FundsReleased",
	EventTypeTokensPulled:    "TokensPulled",
	EventTypeRefundPulled:    "RefundPulled",
	EventTypeTokensClaimed:   "TokensClaimed",
	EventTypeRefundClaimed:   "RefundClaimed",
	EventTypeOracleRequested: "OracleRequested",

	EventTypeOwnerFeeDeferred: "OwnerFeeDeferred",
	EventTypeOwnerFeeSettled:  "OwnerFeeSettled",
}

func (t EventType) String() string {
	name, ok := eventTypeNames[t]
	if !ok {
		return "Unknown"
	}
	return name
}
