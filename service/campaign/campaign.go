package campaign

import (
	"github.com/QuangTung97/poolparty/model"
	"github.com/QuangTung97/poolparty/pkg/ledger"
	"github.com/QuangTung97/poolparty/pkg/util"
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"time"
)

// Campaign is one pooled purchase loaded in memory, it is not safe for concurrent use
type Campaign struct {
	state  model.Campaign
	ledger *ledger.Ledger
	events []model.Event

	saved       model.Campaign
	savedEvents int
}

// New creates a campaign in Open status with defaults snapshotted from the registry config
func New(id int64, name string, conf model.RegistryConfig, now time.Time) *Campaign {
	c := &Campaign{
		state: model.Campaign{
			ID:            id,
			Name:          name,
			NameHash:      util.HashName(name),
			Status:        model.CampaignStatusOpen,
			EscrowAddress: util.EscrowAddress(name),

			TotalContributions: decimal.Zero,
			EscrowBalance:      decimal.Zero,
			Watermark:          conf.Watermark,
			MinContribution:    conf.MinContribution,

			FeePercent:              conf.FeePercent,
			WithdrawalFee:           conf.WithdrawalFee,
			ExpectedDiscountPercent: conf.DiscountPercent,
			OracleFee:               conf.OracleFee,
			OwnerFeeRecipient:       conf.OwnerAddress,

			DueDiligenceSeconds: conf.DueDiligenceSeconds,

			CreatedAt: now,
			UpdatedAt: now,
		},
		ledger: ledger.New(id),
	}
	c.addEvent(now, model.Event{Type: model.EventTypeCreated, ToStatus: model.CampaignStatusOpen})
	return c
}

// Load restores a persisted campaign
func Load(state model.Campaign, participants []model.Participant) (*Campaign, error) {
	l, err := ledger.Load(state.ID, participants)
	if err != nil {
		return nil, err
	}
	return &Campaign{
		state:  state,
		ledger: l,
	}, nil
}

// State ...
func (c *Campaign) State() model.Campaign {
	return c.state
}

// Participant ...
func (c *Campaign) Participant(addr common.Address) (model.Participant, bool) {
	return c.ledger.Get(addr)
}

// Participants returns the active participants in list order
func (c *Campaign) Participants() []model.Participant {
	return c.ledger.Active()
}

// ParticipantCount ...
func (c *Campaign) ParticipantCount() int {
	return c.ledger.Count()
}

// ContributionsDue ...
func (c *Campaign) ContributionsDue(addr common.Address) (ContributionsDue, error) {
	p, ok := c.ledger.Get(addr)
	if !ok {
		return ContributionsDue{}, ErrNotFound
	}
	return ComputeContributionsDue(c.state, p), nil
}

// Subsidy ...
func (c *Campaign) Subsidy() decimal.Decimal {
	return ComputeSubsidy(c.state)
}

// Fee ...
func (c *Campaign) Fee() decimal.Decimal {
	return ComputeFee(c.state)
}

// DirtyParticipants returns participants changed since the last ClearChanges
func (c *Campaign) DirtyParticipants() []model.Participant {
	return c.ledger.Dirty()
}

// PendingEvents returns events produced since the last ClearChanges
func (c *Campaign) PendingEvents() []model.Event {
	return c.events
}

// ClearChanges is called after the changes are persisted
func (c *Campaign) ClearChanges() {
	c.ledger.ClearDirty()
	c.events = nil
}

func (c *Campaign) begin() {
	c.saved = c.state
	c.savedEvents = len(c.events)
	c.ledger.Begin()
}

func (c *Campaign) commit() {
	c.ledger.Commit()
}

func (c *Campaign) rollback() {
	c.state = c.saved
	c.events = c.events[:c.savedEvents]
	c.ledger.Rollback()
}

func (c *Campaign) addEvent(now time.Time, e model.Event) {
	c.state.EventSeq++
	e.CampaignID = c.state.ID
	e.Seq = c.state.EventSeq
	e.CreatedAt = now
	c.events = append(c.events, e)
}

func (c *Campaign) setStatus(now time.Time, to model.CampaignStatus) {
	from := c.state.Status
	if from == to {
		return
	}
	c.state.Status = to
	c.addEvent(now, model.Event{
		Type:       model.EventTypeStatusChanged,
		FromStatus: from,
		ToStatus:   to,
	})
}

// refreshDeadline moves DueDiligence to InReview once the deadline passed
func (c *Campaign) refreshDeadline(now time.Time) {
	if c.state.Status != model.CampaignStatusDueDiligence {
		return
	}
	if !c.deadlinePassed(now) {
		return
	}
	c.setStatus(now, model.CampaignStatusInReview)
}

func (c *Campaign) deadlinePassed(now time.Time) bool {
	deadline := c.state.DueDiligenceDeadline
	return deadline.Valid && !now.Before(deadline.Time)
}

func (c *Campaign) refreshWatermark(now time.Time) {
	switch c.state.Status {
	case model.CampaignStatusOpen:
		if c.state.TotalContributions.GreaterThanOrEqual(c.state.Watermark) {
			c.setStatus(now, model.CampaignStatusWatermarkReached)
		}
	case model.CampaignStatusWatermarkReached:
		if c.state.TotalContributions.LessThan(c.state.Watermark) {
			c.setStatus(now, model.CampaignStatusOpen)
		}
	default:
	}
}

// lockContributions captures balances and percents of every participant
func (c *Campaign) lockContributions() {
	total := c.state.TotalContributions
	c.ledger.UpdateAll(func(p *model.Participant) {
		if !p.Active {
			p.LockedBalance = decimal.Zero
			p.ContributionPercent = decimal.Zero
			return
		}
		p.LockedBalance = p.Balance
		p.ContributionPercent = ContributionPercent(p.Balance, total)
	})
}

// settle zeroes the balance of a participant who obtained everything payable
func (c *Campaign) settle(p *model.Participant) {
	done := false
	switch c.state.Status {
	case model.CampaignStatusClaim:
		done = p.TokensClaimed && p.RefundClaimed
	case model.CampaignStatusRefunding:
		done = p.RefundClaimed
	default:
	}
	if !done || p.Balance.IsZero() {
		return
	}
	c.state.TotalContributions = c.state.TotalContributions.Sub(p.Balance)
	p.Balance = decimal.Zero
}
