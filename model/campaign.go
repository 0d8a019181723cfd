package model

import (
	"database/sql"
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"time"
)

// Campaign is the persisted state of one pooled purchase
type Campaign struct {
	ID            int64          `db:"id"`
	Name          string         `db:"name"`
	NameHash      uint32         `db:"name_hash"`
	Status        CampaignStatus `db:"status"`
	EscrowAddress common.Address `db:"escrow_address"`

	TotalContributions decimal.Decimal `db:"total_contributions"`
	EscrowBalance      decimal.Decimal `db:"escrow_balance"`
	Watermark          decimal.Decimal `db:"watermark"`
	MinContribution    decimal.Decimal `db:"min_contribution"`

	Configured      bool            `db:"configured"`
	Destination     common.Address  `db:"destination"`
	TokenLedgerRef  common.Address  `db:"token_ledger_ref"`
	BuyAction       SaleAction      `db:"buy_action"`
	ClaimAction     SaleAction      `db:"claim_action"`
	RefundAction    SaleAction      `db:"refund_action"`
	PublicPrice     decimal.Decimal `db:"public_price"`
	GroupPrice      decimal.Decimal `db:"group_price"`
	SubsidyRequired bool            `db:"subsidy_required"`

	FeePercent              decimal.Decimal `db:"fee_percent"`
	WithdrawalFee           decimal.Decimal `db:"withdrawal_fee"`
	ExpectedDiscountPercent decimal.Decimal `db:"expected_discount_percent"`
	ActualDiscountPercent   decimal.Decimal `db:"actual_discount_percent"`
	OracleFee               decimal.Decimal `db:"oracle_fee"`
	OwnerFeeRecipient       common.Address  `db:"owner_fee_recipient"`

	AuthorizedConfigurer common.Address `db:"authorized_configurer"`
	OracleRequestID      string         `db:"oracle_request_id"`

	DueDiligenceSeconds  int64        `db:"due_diligence_seconds"`
	DueDiligenceDeadline sql.NullTime `db:"due_diligence_deadline"`

	FundsReleased       bool            `db:"funds_released"`
	SubsidyPaid         decimal.Decimal `db:"subsidy_paid"`
	FeePaid             decimal.Decimal `db:"fee_paid"`

	// PendingOwnerFee is held in escrow after a failed fee transfer, paid by SettleOwnerFee
	PendingOwnerFee decimal.Decimal `db:"pending_owner_fee"`

	TokenBaseline       decimal.Decimal `db:"token_baseline"`
	TotalTokensReceived decimal.Decimal `db:"total_tokens_received"`
	TokensDistributed   decimal.Decimal `db:"tokens_distributed"`
	ResidueSnapshot     decimal.Decimal `db:"residue_snapshot"`
	ResidueDistributed  decimal.Decimal `db:"residue_distributed"`

	EventSeq uint32 `db:"event_seq"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// DueDiligenceDuration ...
func (c Campaign) DueDiligenceDuration() time.Duration {
	return time.Duration(c.DueDiligenceSeconds) * time.Second
}

// CampaignStatus ...
type CampaignStatus int

const (
	// CampaignStatusOpen accepts contributions, watermark not reached
	CampaignStatusOpen CampaignStatus = 1

	// CampaignStatusWatermarkReached ...
	CampaignStatusWatermarkReached CampaignStatus = 2

	// CampaignStatusDueDiligence after configuration is completed, until the deadline
	CampaignStatusDueDiligence CampaignStatus = 3

	// CampaignStatusInReview ...
	CampaignStatusInReview CampaignStatus = 4

	// CampaignStatusClaim tokens were received and can be claimed
	CampaignStatusClaim CampaignStatus = 5

	// CampaignStatusRefunding the sale refunded and the residue can be claimed
	CampaignStatusRefunding CampaignStatus = 6
)

var campaignStatusNames = map[CampaignStatus]string{
	CampaignStatusOpen:             "Open",
	CampaignStatusWatermarkReached: "WatermarkReached",
	CampaignStatusDueDiligence:     "DueDiligence",
	CampaignStatusInReview:         "InReview",
	CampaignStatusClaim:            "Claim",
	CampaignStatusRefunding:        "Refunding",
}

func (s CampaignStatus) String() string {
	name, ok := campaignStatusNames[s]
	if !ok {
		return "Unknown"
	}
	return name
}
