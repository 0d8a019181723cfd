package poolparty

import (
	"encoding/json"
	"github.com/QuangTung97/poolparty/model"
	"github.com/QuangTung97/poolparty/service/campaign"
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"time"
)

// CampaignView is the read model of a campaign, cached in memcached as json
type CampaignView struct {
	ID            int64          `json:"id"`
	Name          string         `json:"name"`
	Status        string         `json:"status"`
	EscrowAddress common.Address `json:"escrowAddress"`

	TotalContributions decimal.Decimal `json:"totalContributions"`
	EscrowBalance      decimal.Decimal `json:"escrowBalance"`
	Watermark          decimal.Decimal `json:"watermark"`
	MinContribution    decimal.Decimal `json:"minContribution"`
	ParticipantCount   int             `json:"participantCount"`

	Configured      bool            `json:"configured"`
	Destination     common.Address  `json:"destination"`
	TokenLedgerRef  common.Address  `json:"tokenLedgerRef"`
	BuyAction       string          `json:"buyAction"`
	ClaimAction     string          `json:"claimAction"`
	RefundAction    string          `json:"refundAction"`
	PublicPrice     decimal.Decimal `json:"publicPrice"`
	GroupPrice      decimal.Decimal `json:"groupPrice"`
	SubsidyRequired bool            `json:"subsidyRequired"`

	FeePercent              decimal.Decimal `json:"feePercent"`
	ExpectedDiscountPercent decimal.Decimal `json:"expectedDiscountPercent"`
	ActualDiscountPercent   decimal.Decimal `json:"actualDiscountPercent"`
	Fee                     decimal.Decimal `json:"fee"`
	Subsidy                 decimal.Decimal `json:"subsidy"`
	PendingOwnerFee         decimal.Decimal `json:"pendingOwnerFee"`

	AuthorizedConfigurer common.Address `json:"authorizedConfigurer"`
	DueDiligenceDeadline *time.Time     `json:"dueDiligenceDeadline,omitempty"`

	FundsReleased       bool            `json:"fundsReleased"`
	TotalTokensReceived decimal.Decimal `json:"totalTokensReceived"`
	TokensDistributed   decimal.Decimal `json:"tokensDistributed"`
	ResidueSnapshot     decimal.Decimal `json:"residueSnapshot"`
	ResidueDistributed  decimal.Decimal `json:"residueDistributed"`

	UpdatedAt time.Time `json:"updatedAt"`
}

// NewCampaignView ...
func NewCampaignView(c *campaign.Campaign) CampaignView {
	s := c.State()

	var deadline *time.Time
	if s.DueDiligenceDeadline.Valid {
		t := s.DueDiligenceDeadline.Time
		deadline = &t
	}

	return CampaignView{
		ID:            s.ID,
		Name:          s.Name,
		Status:        s.Status.String(),
		EscrowAddress: s.EscrowAddress,

		TotalContributions: s.TotalContributions,
		EscrowBalance:      s.EscrowBalance,
		Watermark:          s.Watermark,
		MinContribution:    s.MinContribution,
		ParticipantCount:   c.ParticipantCount(),

		Configured:      s.Configured,
		Destination:     s.Destination,
		TokenLedgerRef:  s.TokenLedgerRef,
		BuyAction:       actionText(s.Configured, s.BuyAction),
		ClaimAction:     actionText(s.Configured, s.ClaimAction),
		RefundAction:    actionText(s.Configured, s.RefundAction),
		PublicPrice:     s.PublicPrice,
		GroupPrice:      s.GroupPrice,
		SubsidyRequired: s.SubsidyRequired,

		FeePercent:              s.FeePercent,
		ExpectedDiscountPercent: s.ExpectedDiscountPercent,
		ActualDiscountPercent:   s.ActualDiscountPercent,
		Fee:                     c.Fee(),
		Subsidy:                 c.Subsidy(),
		PendingOwnerFee:         s.PendingOwnerFee,

		AuthorizedConfigurer: s.AuthorizedConfigurer,
		DueDiligenceDeadline: deadline,

		FundsReleased:       s.FundsReleased,
		TotalTokensReceived: s.TotalTokensReceived,
		TokensDistributed:   s.TokensDistributed,
		ResidueSnapshot:     s.ResidueSnapshot,
		ResidueDistributed:  s.ResidueDistributed,

		UpdatedAt: s.UpdatedAt,
	}
}

func actionText(configured bool, a model.SaleAction) string {
	if !configured {
		return ""
	}
	return a.String()
}

func encodeView(v CampaignView) ([]byte, error) {
	return json.Marshal(v)
}

func decodeView(data []byte) (CampaignView, error) {
	var v CampaignView
	err := json.Unmarshal(data, &v)
	return v, err
}
