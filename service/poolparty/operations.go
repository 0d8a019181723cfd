package poolparty

import (
	"context"
	"github.com/QuangTung97/poolparty/model"
	"github.com/QuangTung97/poolparty/pkg/cacheclient"
	"github.com/QuangTung97/poolparty/pkg/otellib"
	"github.com/QuangTung97/poolparty/service/campaign"
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Contribute ...
func (s *Service) Contribute(
	ctx context.Context, campaignID int64, identity common.Address, amount decimal.Decimal,
) error {
	return s.mutate(ctx, "Contribute", campaignID, func(ctx context.Context, c *campaign.Campaign) error {
		return s.engine.Contribute(ctx, c, identity, amount)
	})
}

// Withdraw ...
func (s *Service) Withdraw(ctx context.Context, campaignID int64, identity common.Address) error {
	return s.mutate(ctx, "Withdraw", campaignID, func(ctx context.Context, c *campaign.Campaign) error {
		return s.engine.Withdraw(ctx, c, identity)
	})
}

// SetAuthorizedConfigurer ...
func (s *Service) SetAuthorizedConfigurer(ctx context.Context, campaignID int64, identity common.Address) error {
	return s.mutate(ctx, "SetAuthorizedConfigurer", campaignID, func(ctx context.Context, c *campaign.Campaign) error {
		return s.engine.SetAuthorizedConfigurer(ctx, c, identity)
	})
}

// RequestConfigurerVerification returns the oracle request id
func (s *Service) RequestConfigurerVerification(
	ctx context.Context, campaignID int64, valueSent decimal.Decimal,
) (string, error) {
	var requestID string
	err := s.mutate(ctx, "RequestConfigurerVerification", campaignID,
		func(ctx context.Context, c *campaign.Campaign) error {
			var err error
			requestID, err = s.engine.RequestConfigurerVerification(ctx, c, valueSent)
			return err
		},
	)
	return requestID, err
}

// ConfirmConfigurer ...
func (s *Service) ConfirmConfigurer(
	ctx context.Context, campaignID int64, requestID string, identity common.Address,
) error {
	return s.mutate(ctx, "ConfirmConfigurer", campaignID, func(ctx context.Context, c *campaign.Campaign) error {
		return s.engine.ConfirmConfigurer(ctx, c, requestID, identity)
	})
}

// Configure ...
func (s *Service) Configure(
	ctx context.Context, campaignID int64, caller common.Address, params campaign.ConfigureParams,
) error {
	return s.mutate(ctx, "Configure", campaignID, func(ctx context.Context, c *campaign.Campaign) error {
		return s.engine.Configure(ctx, c, caller, params)
	})
}

// CompleteConfiguration ...
func (s *Service) CompleteConfiguration(ctx context.Context, campaignID int64, caller common.Address) error {
	return s.mutate(ctx, "CompleteConfiguration", campaignID, func(ctx context.Context, c *campaign.Campaign) error {
		return s.engine.CompleteConfiguration(ctx, c, caller)
	})
}

// EjectParticipant ...
func (s *Service) EjectParticipant(
	ctx context.Context, campaignID int64, caller common.Address, identity common.Address, reason string,
) error {
	return s.mutate(ctx, "EjectParticipant", campaignID, func(ctx context.Context, c *campaign.Campaign) error {
		return s.engine.EjectParticipant(ctx, c, caller, identity, reason)
	})
}

// ReleaseFundsToSale ...
func (s *Service) ReleaseFundsToSale(
	ctx context.Context, campaignID int64, caller common.Address, valueSent decimal.Decimal,
) error {
	return s.mutate(ctx, "ReleaseFundsToSale", campaignID, func(ctx context.Context, c *campaign.Campaign) error {
		return s.engine.ReleaseFundsToSale(ctx, c, caller, valueSent)
	})
}

// ClaimTokensFromSale ...
func (s *Service) ClaimTokensFromSale(ctx context.Context, campaignID int64, caller common.Address) error {
	return s.mutate(ctx, "ClaimTokensFromSale", campaignID, func(ctx context.Context, c *campaign.Campaign) error {
		return s.engine.ClaimTokensFromSale(ctx, c, caller)
	})
}

// ClaimRefundFromSale ...
func (s *Service) ClaimRefundFromSale(ctx context.Context, campaignID int64, caller common.Address) error {
	return s.mutate(ctx, "ClaimRefundFromSale", campaignID, func(ctx context.Context, c *campaign.Campaign) error {
		return s.engine.ClaimRefundFromSale(ctx, c, caller)
	})
}

// ClaimTokens ...
func (s *Service) ClaimTokens(ctx context.Context, campaignID int64, identity common.Address) error {
	return s.mutate(ctx, "ClaimTokens", campaignID, func(ctx context.Context, c *campaign.Campaign) error {
		return s.engine.ClaimTokens(ctx, c, identity)
	})
}

// ClaimRefund ...
func (s *Service) ClaimRefund(ctx context.Context, campaignID int64, identity common.Address) error {
	return s.mutate(ctx, "ClaimRefund", campaignID, func(ctx context.Context, c *campaign.Campaign) error {
		return s.engine.ClaimRefund(ctx, c, identity)
	})
}

// SettleOwnerFee pays the owner fee deferred by a failed transfer
func (s *Service) SettleOwnerFee(ctx context.Context, campaignID int64) error {
	return s.mutate(ctx, "SettleOwnerFee", campaignID, func(ctx context.Context, c *campaign.Campaign) error {
		return s.engine.SettleOwnerFee(ctx, c)
	})
}

// GetCampaign reads the view through the memcached lease, falling back to the database
func (s *Service) GetCampaign(ctx context.Context, campaignID int64) (CampaignView, error) {
	ctx = otellib.WithCampaign(ctx, campaignID)
	if s.cache == nil {
		return s.loadView(ctx, campaignID)
	}

	pipe := s.cache.Pipeline()
	defer pipe.Finish()

	key := cacheclient.CampaignViewKey(campaignID)
	output, err := pipe.LeaseGet(key)()
	if err != nil {
		s.metrics.cacheLookup("error")
		otellib.Extract(ctx).Warn("Lease get campaign view", zap.Error(err))
		return s.loadView(ctx, campaignID)
	}

	switch output.Type {
	case cacheclient.LeaseGetTypeOK:
		view, err := decodeView(output.Data)
		if err == nil {
			s.metrics.cacheLookup("hit")
			return view, nil
		}
		s.metrics.cacheLookup("corrupted")
		return s.loadView(ctx, campaignID)

	case cacheclient.LeaseGetTypeGranted:
		s.metrics.cacheLookup("miss")
		view, err := s.loadView(ctx, campaignID)
		if err != nil {
			return CampaignView{}, err
		}
		data, err := encodeView(view)
		if err != nil {
			return view, nil
		}
		if err := pipe.LeaseSet(key, data, output.LeaseID, s.viewTTL)(); err != nil {
			otellib.Extract(ctx).Warn("Lease set campaign view", zap.Error(err))
		}
		return view, nil

	default:
		s.metrics.cacheLookup("rejected")
		return s.loadView(ctx, campaignID)
	}
}

func (s *Service) loadView(ctx context.Context, campaignID int64) (CampaignView, error) {
	c, err := s.readAndLoad(ctx, campaignID)
	if err != nil {
		return CampaignView{}, err
	}
	return NewCampaignView(c), nil
}

// ContributionsDue returns the refund and tokens currently due to identity
func (s *Service) ContributionsDue(
	ctx context.Context, campaignID int64, identity common.Address,
) (campaign.ContributionsDue, error) {
	c, err := s.readAndLoad(ctx, campaignID)
	if err != nil {
		return campaign.ContributionsDue{}, err
	}
	return c.ContributionsDue(identity)
}

// ListParticipants returns the active participants in list order
func (s *Service) ListParticipants(ctx context.Context, campaignID int64) ([]model.Participant, error) {
	c, err := s.readAndLoad(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	return c.Participants(), nil
}

// ListEvents ...
func (s *Service) ListEvents(
	ctx context.Context, campaignID int64, fromSeq uint32, limit uint64,
) ([]model.Event, error) {
	return s.eventRepo.ListEvents(s.provider.Readonly(ctx), campaignID, fromSeq, limit)
}
