package cacheclient

import (
	"fmt"
	"github.com/QuangTung97/go-memcache/memcache"
	"time"
)

// LeaseGetType ...
type LeaseGetType int

const (
	// LeaseGetTypeOK when the view is cached
	LeaseGetTypeOK LeaseGetType = 1

	// LeaseGetTypeGranted when the view is missing and this caller must fill it
	LeaseGetTypeGranted LeaseGetType = 2

	// LeaseGetTypeRejected when the view is missing and another caller is filling it
	LeaseGetTypeRejected LeaseGetType = 3
)

// LeaseGetOutput ...
type LeaseGetOutput struct {
	Type    LeaseGetType
	Data    []byte
	LeaseID uint64
}

// CacheClient for remote cache (like memcached)
type CacheClient interface {
	// Pipeline can NOT be shared between goroutines
	Pipeline() CachePipeline
}

// CachePipeline groups cache operations into one round trip, results are read through the returned funcs
type CachePipeline interface {
	LeaseGet(key string) func() (LeaseGetOutput, error)
	LeaseSet(key string, value []byte, leaseID uint64, ttl uint32) func() error
	Delete(key string) func() error
	Finish()
}

// CampaignViewKey is the cache key of the serialized view of a campaign
func CampaignViewKey(campaignID int64) string {
	return fmt.Sprintf("poolparty:campaign:%d", campaignID)
}

// leaseSeconds is how long a granted lease blocks other fillers
const leaseSeconds = 5

type clientOptions struct {
	retryDuration time.Duration
}

// Option configures the memcached client
type Option func(opts *clientOptions)

// WithRetryDuration sets the wait between reconnects
func WithRetryDuration(d time.Duration) Option {
	return func(opts *clientOptions) {
		opts.retryDuration = d
	}
}

// Client implements CacheClient with memcached meta commands
type Client struct {
	mc *memcache.Client
}

var _ CacheClient = &Client{}

// New panics when the address can not be parsed
func New(addr string, numConns int, options ...Option) *Client {
	opts := clientOptions{
		retryDuration: 10 * time.Second,
	}
	for _, o := range options {
		o(&opts)
	}

	mc, err := memcache.New(addr, numConns, memcache.WithRetryDuration(opts.retryDuration))
	if err != nil {
		panic(err)
	}
	return &Client{mc: mc}
}

// Close ...
func (c *Client) Close() error {
	return c.mc.Close()
}

// Pipeline ...
func (c *Client) Pipeline() CachePipeline {
	return &pipeline{pipe: c.mc.Pipeline()}
}

type pipeline struct {
	pipe *memcache.Pipeline
}

func (p *pipeline) LeaseGet(key string) func() (LeaseGetOutput, error) {
	fn := p.pipe.MGet(key, memcache.MGetOptions{
		N:   leaseSeconds,
		CAS: true,
	})
	return func() (LeaseGetOutput, error) {
		resp, err := fn()
		if err != nil {
			return LeaseGetOutput{}, err
		}

		switch {
		case resp.Type != memcache.MGetResponseTypeVA:
			return LeaseGetOutput{Type: LeaseGetTypeRejected}, nil

		case resp.Flags&memcache.MGetFlagZ != 0:
			// the lease was already handed out
			return LeaseGetOutput{Type: LeaseGetTypeRejected}, nil

		case resp.Flags&memcache.MGetFlagW != 0:
			return LeaseGetOutput{Type: LeaseGetTypeGranted, LeaseID: resp.CAS}, nil

		default:
			return LeaseGetOutput{Type: LeaseGetTypeOK, Data: resp.Data}, nil
		}
	}
}

// LeaseSet is a no-op on the server when a Delete happened after the lease was granted
func (p *pipeline) LeaseSet(key string, value []byte, leaseID uint64, ttl uint32) func() error {
	fn := p.pipe.MSet(key, value, memcache.MSetOptions{
		CAS: leaseID,
		TTL: ttl,
	})
	return func() error {
		_, err := fn()
		return err
	}
}

func (p *pipeline) Delete(key string) func() error {
	fn := p.pipe.MDel(key, memcache.MDelOptions{})
	return func() error {
		_, err := fn()
		return err
	}
}

func (p *pipeline) Finish() {
	p.pipe.Finish()
}
