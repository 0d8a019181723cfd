package repository

import (
	"context"
	"github.com/QuangTung97/poolparty/model"
)

// RegistryConfig ...
type RegistryConfig interface {
	GetRegistryConfig(ctx context.Context) (model.RegistryConfig, error)
	UpsertRegistryConfig(ctx context.Context, conf model.RegistryConfig) error
}

type registryConfigImpl struct {
}

// NewRegistryConfig ...
func NewRegistryConfig() RegistryConfig {
	return &registryConfigImpl{}
}

// GetRegistryConfig returns ErrNotFound when the registry is not initialized
func (r *registryConfigImpl) GetRegistryConfig(ctx context.Context) (model.RegistryConfig, error) {
	query := `
SELECT id, owner, owner_address, fee_percent, withdrawal_fee, discount_percent,
	watermark, due_diligence_seconds, min_contribution, oracle_fee
FROM registry_config WHERE id = ?
`
	var result model.RegistryConfig
	err := GetReadonly(ctx).GetContext(ctx, &result, query, model.RegistryConfigID)
	return result, mapError(err)
}

// UpsertRegistryConfig ...
func (r *registryConfigImpl) UpsertRegistryConfig(ctx context.Context, conf model.RegistryConfig) error {
	conf.ID = model.RegistryConfigID

	query := `
INSERT INTO registry_config (
	id, owner, owner_address, fee_percent, withdrawal_fee, discount_percent,
	watermark, due_diligence_seconds, min_contribution, oracle_fee
) VALUES (
	:id, :owner, :owner_address, :fee_percent, :withdrawal_fee, :discount_percent,
	:watermark, :due_diligence_seconds, :min_contribution, :oracle_fee
) AS NEW
ON DUPLICATE KEY UPDATE
	owner = NEW.owner,
	owner_address = NEW.owner_address,
	fee_percent = NEW.fee_percent,
	withdrawal_fee = NEW.withdrawal_fee,
	discount_percent = NEW.discount_percent,
	watermark = NEW.watermark,
	due_diligence_seconds = NEW.due_diligence_seconds,
	min_contribution = NEW.min_contribution,
	oracle_fee = NEW.oracle_fee
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, conf)
	return mapError(err)
}
