package registry

import "errors"

var (
	// ErrDuplicateName ...
	ErrDuplicateName = errors.New("campaign name already registered")

	// ErrEmptyName ...
	ErrEmptyName = errors.New("campaign name is empty")

	// ErrUnauthorized when the caller is not the registry owner
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidArgument ...
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrCampaignNotFound ...
	ErrCampaignNotFound = errors.New("campaign not found")

	// ErrRegistryNotInitialized ...
	ErrRegistryNotInitialized = errors.New("registry not initialized")
)
