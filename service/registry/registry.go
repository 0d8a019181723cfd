package registry

import (
	"github.com/QuangTung97/poolparty/model"
	"github.com/QuangTung97/poolparty/service/campaign"
	"strings"
	"time"
)

// ValidateName ...
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	return nil
}

// Registry is the in memory campaign factory
type Registry struct {
	settings *Settings
	now      func() time.Time

	campaigns []*campaign.Campaign
	byName    map[string]int64
}

// New ...
func New(conf model.RegistryConfig, now func() time.Time) *Registry {
	return &Registry{
		settings: NewSettings(conf),
		now:      now,
		byName:   map[string]int64{},
	}
}

// Settings ...
func (r *Registry) Settings() *Settings {
	return r.settings
}

// CreateCampaign snapshots the current defaults into a new campaign
func (r *Registry) CreateCampaign(name string) (int64, error) {
	if err := ValidateName(name); err != nil {
		return 0, err
	}
	if _, existed := r.byName[name]; existed {
		return 0, ErrDuplicateName
	}

	id := int64(len(r.campaigns) + 1)
	r.campaigns = append(r.campaigns, campaign.New(id, name, r.settings.Config(), r.now()))
	r.byName[name] = id
	return id, nil
}

// LookupByName ...
func (r *Registry) LookupByName(name string) (int64, bool) {
	id, ok := r.byName[name]
	return id, ok
}

// Campaign ...
func (r *Registry) Campaign(id int64) (*campaign.Campaign, error) {
	if id <= 0 || id > int64(len(r.campaigns)) {
		return nil, ErrCampaignNotFound
	}
	return r.campaigns[id-1], nil
}

// Count ...
func (r *Registry) Count() int {
	return len(r.campaigns)
}
