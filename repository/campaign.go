package repository

import (
	"context"
	"fmt"
	"github.com/QuangTung97/poolparty/model"
)

// Campaign ...
type Campaign interface {
	InsertCampaign(ctx context.Context, campaign model.Campaign) (int64, error)
	FindCampaignByName(ctx context.Context, nameHash uint32, name string) (model.Campaign, error)
	GetCampaign(ctx context.Context, campaignID int64) (model.Campaign, error)
	LockCampaign(ctx context.Context, campaignID int64) (model.Campaign, error)
	UpdateCampaign(ctx context.Context, campaign model.Campaign) error
}

type campaignImpl struct {
}

// NewCampaign ...
func NewCampaign() Campaign {
	return &campaignImpl{}
}

const campaignColumns = `
	id, name, name_hash, status, escrow_address,
	total_contributions, escrow_balance, watermark, min_contribution,
	configured, destination, token_ledger_ref,
	buy_action, claim_action, refund_action,
	public_price, group_price, subsidy_required,
	fee_percent, withdrawal_fee, expected_discount_percent, actual_discount_percent,
	oracle_fee, owner_fee_recipient,
	authorized_configurer, oracle_request_id,
	due_diligence_seconds, due_diligence_deadline,
	funds_released, subsidy_paid, fee_paid, pending_owner_fee, token_baseline,
	total_tokens_received, tokens_distributed, residue_snapshot, residue_distributed,
	event_seq, created_at, updated_at`

// InsertCampaign returns the generated id, ErrDuplicateKey when the name already exists
func (c *campaignImpl) InsertCampaign(ctx context.Context, campaign model.Campaign) (int64, error) {
	query := `
INSERT INTO campaign (
	name, name_hash, status, escrow_address,
	total_contributions, escrow_balance, watermark, min_contribution,
	configured, destination, token_ledger_ref,
	buy_action, claim_action, refund_action,
	public_price, group_price, subsidy_required,
	fee_percent, withdrawal_fee, expected_discount_percent, actual_discount_percent,
	oracle_fee, owner_fee_recipient,
	authorized_configurer, oracle_request_id,
	due_diligence_seconds, due_diligence_deadline,
	funds_released, subsidy_paid, fee_paid, pending_owner_fee, token_baseline,
	total_tokens_received, tokens_distributed, residue_snapshot, residue_distributed,
	event_seq, created_at, updated_at
) VALUES (
	:name, :name_hash, :status, :escrow_address,
	:total_contributions, :escrow_balance, :watermark, :min_contribution,
	:configured, :destination, :token_ledger_ref,
	:buy_action, :claim_action, :refund_action,
	:public_price, :group_price, :subsidy_required,
	:fee_percent, :withdrawal_fee, :expected_discount_percent, :actual_discount_percent,
	:oracle_fee, :owner_fee_recipient,
	:authorized_configurer, :oracle_request_id,
	:due_diligence_seconds, :due_diligence_deadline,
	:funds_released, :subsidy_paid, :fee_paid, :pending_owner_fee, :token_baseline,
	:total_tokens_received, :tokens_distributed, :residue_snapshot, :residue_distributed,
	:event_seq, :created_at, :updated_at
)
`
	result, err := GetTx(ctx).NamedExecContext(ctx, query, campaign)
	if err != nil {
		return 0, mapError(err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("campaign last insert id: %w", err)
	}
	return id, nil
}

// FindCampaignByName returns ErrNotFound when no campaign has that name
func (c *campaignImpl) FindCampaignByName(
	ctx context.Context, nameHash uint32, name string,
) (model.Campaign, error) {
	query := `SELECT` + campaignColumns + `
FROM campaign WHERE name_hash = ? AND name = ?`

	var result model.Campaign
	err := GetReadonly(ctx).GetContext(ctx, &result, query, nameHash, name)
	return result, mapError(err)
}

// GetCampaign ...
func (c *campaignImpl) GetCampaign(ctx context.Context, campaignID int64) (model.Campaign, error) {
	query := `SELECT` + campaignColumns + `
FROM campaign WHERE id = ?`

	var result model.Campaign
	err := GetReadonly(ctx).GetContext(ctx, &result, query, campaignID)
	return result, mapError(err)
}

// LockCampaign selects the campaign row FOR UPDATE
func (c *campaignImpl) LockCampaign(ctx context.Context, campaignID int64) (model.Campaign, error) {
	query := `SELECT` + campaignColumns + `
FROM campaign WHERE id = ? FOR UPDATE`

	var result model.Campaign
	err := GetTx(ctx).GetContext(ctx, &result, query, campaignID)
	return result, mapError(err)
}

// UpdateCampaign writes every mutable column, the name and escrow address never change
func (c *campaignImpl) UpdateCampaign(ctx context.Context, campaign model.Campaign) error {
	query := `
UPDATE campaign SET
	status = :status,
	total_contributions = :total_contributions,
	escrow_balance = :escrow_balance,
	watermark = :watermark,
	min_contribution = :min_contribution,

	configured = :configured,
	destination = :destination,
	token_ledger_ref = :token_ledger_ref,
	buy_action = :buy_action,
	claim_action = :claim_action,
	refund_action = :refund_action,
	public_price = :public_price,
	group_price = :group_price,
	subsidy_required = :subsidy_required,

	fee_percent = :fee_percent,
	withdrawal_fee = :withdrawal_fee,
	expected_discount_percent = :expected_discount_percent,
	actual_discount_percent = :actual_discount_percent,
	oracle_fee = :oracle_fee,
	owner_fee_recipient = :owner_fee_recipient,

	authorized_configurer = :authorized_configurer,
	oracle_request_id = :oracle_request_id,

	due_diligence_seconds = :due_diligence_seconds,
	due_diligence_deadline = :due_diligence_deadline,

	funds_released = :funds_released,
	subsidy_paid = :subsidy_paid,
	fee_paid = :fee_paid,
	pending_owner_fee = :pending_owner_fee,
	token_baseline = :token_baseline,
	total_tokens_received = :total_tokens_received,
	tokens_distributed = :tokens_distributed,
	residue_snapshot = :residue_snapshot,
	residue_distributed = :residue_distributed,

	event_seq = :event_seq,
	updated_at = :updated_at
WHERE id = :id
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, campaign)
	return mapError(err)
}
