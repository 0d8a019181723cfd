package repository

import (
	"context"
	"github.com/QuangTung97/poolparty/model"
)

// Participant ...
type Participant interface {
	ListParticipants(ctx context.Context, campaignID int64) ([]model.Participant, error)
	UpsertParticipants(ctx context.Context, participants []model.Participant) error
}

type participantImpl struct {
}

// NewParticipant ...
func NewParticipant() Participant {
	return &participantImpl{}
}

// ListParticipants returns active and inactive records, ordered by address
func (p *participantImpl) ListParticipants(ctx context.Context, campaignID int64) ([]model.Participant, error) {
	query := `
SELECT campaign_id, address, balance, locked_balance, contribution_percent,
	tokens_due, refund_amount, list_index, active,
	tokens_claimed, refund_claimed, eject_reason
FROM participant
WHERE campaign_id = ?
ORDER BY address
`
	var result []model.Participant
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, campaignID)
	return result, mapError(err)
}

// UpsertParticipants ...
func (p *participantImpl) UpsertParticipants(ctx context.Context, participants []model.Participant) error {
	if len(participants) == 0 {
		return nil
	}

	query := `
INSERT INTO participant (
	campaign_id, address, balance, locked_balance, contribution_percent,
	tokens_due, refund_amount, list_index, active,
	tokens_claimed, refund_claimed, eject_reason
) VALUES (
	:campaign_id, :address, :balance, :locked_balance, :contribution_percent,
	:tokens_due, :refund_amount, :list_index, :active,
	:tokens_claimed, :refund_claimed, :eject_reason
) AS NEW
ON DUPLICATE KEY UPDATE
	balance = NEW.balance,
	locked_balance = NEW.locked_balance,
	contribution_percent = NEW.contribution_percent,
	tokens_due = NEW.tokens_due,
	refund_amount = NEW.refund_amount,
	list_index = NEW.list_index,
	active = NEW.active,
	tokens_claimed = NEW.tokens_claimed,
	refund_claimed = NEW.refund_claimed,
	eject_reason = NEW.eject_reason
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, participants)
	return mapError(err)
}
