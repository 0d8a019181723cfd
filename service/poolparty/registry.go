package poolparty

import (
	"context"
	"errors"
	"fmt"
	"github.com/QuangTung97/poolparty/model"
	"github.com/QuangTung97/poolparty/pkg/util"
	"github.com/QuangTung97/poolparty/repository"
	"github.com/QuangTung97/poolparty/service/campaign"
	"github.com/QuangTung97/poolparty/service/registry"
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"time"
)

// RegistrySetting names one owner settable default
type RegistrySetting int

const (
	// RegistrySettingFeePercent ...
	RegistrySettingFeePercent RegistrySetting = iota + 1
	// RegistrySettingWithdrawalFee ...
	RegistrySettingWithdrawalFee
	// RegistrySettingDiscountPercent ...
	RegistrySettingDiscountPercent
	// RegistrySettingWatermark ...
	RegistrySettingWatermark
	// RegistrySettingMinContribution ...
	RegistrySettingMinContribution
	// RegistrySettingOracleFee ...
	RegistrySettingOracleFee
	// RegistrySettingDueDiligenceDuration ...
	RegistrySettingDueDiligenceDuration
	// RegistrySettingOwnerAddress ...
	RegistrySettingOwnerAddress
)

var registrySettingNames = map[string]RegistrySetting{
	"fee-percent":           RegistrySettingFeePercent,
	"withdrawal-fee":        RegistrySettingWithdrawalFee,
	"discount-percent":      RegistrySettingDiscountPercent,
	"watermark":             RegistrySettingWatermark,
	"min-contribution":      RegistrySettingMinContribution,
	"oracle-fee":            RegistrySettingOracleFee,
	"due-diligence-seconds": RegistrySettingDueDiligenceDuration,
	"owner-address":         RegistrySettingOwnerAddress,
}

// ErrUnknownSetting ...
var ErrUnknownSetting = errors.New("unknown registry setting")

// ParseRegistryUpdate builds an update from the setting name and its text value
func ParseRegistryUpdate(name string, value string) (RegistryUpdate, error) {
	setting, ok := registrySettingNames[name]
	if !ok {
		return RegistryUpdate{}, fmt.Errorf("%w: %q", ErrUnknownSetting, name)
	}

	update := RegistryUpdate{Setting: setting}
	switch setting {
	case RegistrySettingOwnerAddress:
		if !common.IsHexAddress(value) {
			return RegistryUpdate{}, registry.ErrInvalidArgument
		}
		update.Address = common.HexToAddress(value)

	case RegistrySettingDueDiligenceDuration:
		d, err := decimal.NewFromString(value)
		if err != nil || !d.IsInteger() {
			return RegistryUpdate{}, registry.ErrInvalidArgument
		}
		update.Seconds = d.IntPart()

	default:
		d, err := decimal.NewFromString(value)
		if err != nil {
			return RegistryUpdate{}, registry.ErrInvalidArgument
		}
		update.Amount = d
	}
	return update, nil
}

// RegistryUpdate changes one default, only the field matching Setting is read
type RegistryUpdate struct {
	Setting RegistrySetting
	Amount  decimal.Decimal
	Seconds int64
	Address common.Address
}

func (u RegistryUpdate) apply(settings *registry.Settings, caller common.Address) error {
	switch u.Setting {
	case RegistrySettingFeePercent:
		return settings.SetFeePercent(caller, u.Amount)
	case RegistrySettingWithdrawalFee:
		return settings.SetWithdrawalFee(caller, u.Amount)
	case RegistrySettingDiscountPercent:
		return settings.SetDiscountPercent(caller, u.Amount)
	case RegistrySettingWatermark:
		return settings.SetWatermark(caller, u.Amount)
	case RegistrySettingMinContribution:
		return settings.SetMinContribution(caller, u.Amount)
	case RegistrySettingOracleFee:
		return settings.SetOracleFee(caller, u.Amount)
	case RegistrySettingDueDiligenceDuration:
		return settings.SetDueDiligenceDuration(caller, u.Seconds)
	case RegistrySettingOwnerAddress:
		return settings.SetOwnerAddress(caller, u.Address)
	default:
		return ErrUnknownSetting
	}
}

// InitRegistry writes the registry defaults once
func (s *Service) InitRegistry(ctx context.Context, conf model.RegistryConfig) (err error) {
	defer func(start time.Time) { s.observe("InitRegistry", start, err) }(time.Now())

	if conf.Owner == (common.Address{}) || conf.OwnerAddress == (common.Address{}) {
		return registry.ErrInvalidArgument
	}
	return s.provider.Transact(ctx, func(ctx context.Context) error {
		_, err := s.registryRepo.GetRegistryConfig(ctx)
		if err == nil {
			return ErrRegistryAlreadyInitialized
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		return s.registryRepo.UpsertRegistryConfig(ctx, conf)
	})
}

// GetRegistryConfig ...
func (s *Service) GetRegistryConfig(ctx context.Context) (model.RegistryConfig, error) {
	return s.getRegistryConfig(s.provider.Readonly(ctx))
}

// UpdateRegistry applies one owner restricted setter, campaigns already created keep their snapshot
func (s *Service) UpdateRegistry(ctx context.Context, caller common.Address, update RegistryUpdate) (err error) {
	defer func(start time.Time) { s.observe("UpdateRegistry", start, err) }(time.Now())

	return s.provider.Transact(ctx, func(ctx context.Context) error {
		conf, err := s.getRegistryConfig(ctx)
		if err != nil {
			return err
		}

		settings := registry.NewSettings(conf)
		if err := update.apply(settings, caller); err != nil {
			return err
		}
		return s.registryRepo.UpsertRegistryConfig(ctx, settings.Config())
	})
}

// CreateCampaign snapshots the current registry defaults into a new campaign
func (s *Service) CreateCampaign(ctx context.Context, name string) (campaignID int64, err error) {
	defer func(start time.Time) { s.observe("CreateCampaign", start, err) }(time.Now())

	if err := registry.ValidateName(name); err != nil {
		return 0, err
	}

	err = s.provider.Transact(ctx, func(ctx context.Context) error {
		conf, err := s.getRegistryConfig(ctx)
		if err != nil {
			return err
		}

		c := campaign.New(0, name, conf, s.engine.Now())
		id, err := s.campaignRepo.InsertCampaign(ctx, c.State())
		if errors.Is(err, repository.ErrDuplicateKey) {
			return registry.ErrDuplicateName
		}
		if err != nil {
			return err
		}

		events := c.PendingEvents()
		for i := range events {
			events[i].CampaignID = id
		}
		if err := s.eventRepo.InsertEvents(ctx, events); err != nil {
			return err
		}

		campaignID = id
		return nil
	})
	if err != nil {
		return 0, err
	}

	if s.nameIndex != nil {
		s.nameIndex.Set(name, campaignID)
	}
	return campaignID, nil
}

// LookupByName returns registry.ErrCampaignNotFound for unknown names
func (s *Service) LookupByName(ctx context.Context, name string) (int64, error) {
	if s.nameIndex != nil {
		if id, ok := s.nameIndex.Get(name); ok {
			return id, nil
		}
	}

	state, err := s.campaignRepo.FindCampaignByName(s.provider.Readonly(ctx), util.HashName(name), name)
	if errors.Is(err, repository.ErrNotFound) {
		return 0, registry.ErrCampaignNotFound
	}
	if err != nil {
		return 0, err
	}

	if s.nameIndex != nil {
		s.nameIndex.Set(name, state.ID)
	}
	return state.ID, nil
}
