package sandbox

import (
	"context"
	"errors"
	"fmt"
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"sync"
)

// ErrInsufficientFunds ...
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrInsufficientTokens ...
var ErrInsufficientTokens = errors.New("insufficient tokens")

// ErrUnknownAction ...
var ErrUnknownAction = errors.New("unknown sale action")

// ErrNothingToRefund ...
var ErrNothingToRefund = errors.New("nothing to refund")

// ErrDuplicateRequest ...
var ErrDuplicateRequest = errors.New("duplicate oracle request")

// Payments is the base asset rail, every address holds a balance
type Payments struct {
	mu       sync.Mutex
	balances map[common.Address]decimal.Decimal
}

// NewPayments ...
func NewPayments() *Payments {
	return &Payments{
		balances: map[common.Address]decimal.Decimal{},
	}
}

// Fund credits an address from outside the rail
func (p *Payments) Fund(addr common.Address, amount decimal.Decimal) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.balances[addr] = p.balances[addr].Add(amount)
}

// BalanceOf ...
func (p *Payments) BalanceOf(addr common.Address) decimal.Decimal {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.balances[addr]
}

// Transfer ...
func (p *Payments) Transfer(_ context.Context, from, to common.Address, amount decimal.Decimal) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.transferLocked(from, to, amount)
}

func (p *Payments) transferLocked(from, to common.Address, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("negative transfer %s", amount)
	}
	if p.balances[from].LessThan(amount) {
		return fmt.Errorf("%w: %s has %s, needs %s", ErrInsufficientFunds, from.Hex(), p.balances[from], amount)
	}
	p.balances[from] = p.balances[from].Sub(amount)
	p.balances[to] = p.balances[to].Add(amount)
	return nil
}

type tokenHolder struct {
	token  common.Address
	holder common.Address
}

// TokenLedger holds the balances of every token, like a set of generic tokens
type TokenLedger struct {
	mu       sync.Mutex
	balances map[tokenHolder]decimal.Decimal
}

// NewTokenLedger ...
func NewTokenLedger() *TokenLedger {
	return &TokenLedger{
		balances: map[tokenHolder]decimal.Decimal{},
	}
}

// Mint ...
func (l *TokenLedger) Mint(token, to common.Address, amount decimal.Decimal) {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := tokenHolder{token: token, holder: to}
	l.balances[key] = l.balances[key].Add(amount)
}

// BalanceOf ...
func (l *TokenLedger) BalanceOf(_ context.Context, token, holder common.Address) (decimal.Decimal, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.balances[tokenHolder{token: token, holder: holder}], nil
}

// Transfer ...
func (l *TokenLedger) Transfer(_ context.Context, token, from, to common.Address, amount decimal.Decimal) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	fromKey := tokenHolder{token: token, holder: from}
	if l.balances[fromKey].LessThan(amount) {
		return fmt.Errorf("%w: %s has %s, needs %s", ErrInsufficientTokens, from.Hex(), l.balances[fromKey], amount)
	}
	toKey := tokenHolder{token: token, holder: to}
	l.balances[fromKey] = l.balances[fromKey].Sub(amount)
	l.balances[toKey] = l.balances[toKey].Add(amount)
	return nil
}

// OracleRequest ...
type OracleRequest struct {
	CampaignName string
	RequestID    string
	Fee          decimal.Decimal
}

// Oracle records verification requests, answers are delivered by the caller
type Oracle struct {
	mu       sync.Mutex
	requests []OracleRequest
	ids      map[string]struct{}
}

// NewOracle ...
func NewOracle() *Oracle {
	return &Oracle{
		ids: map[string]struct{}{},
	}
}

// RequestConfigurer ...
func (o *Oracle) RequestConfigurer(_ context.Context, campaignName, requestID string, fee decimal.Decimal) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if _, existed := o.ids[requestID]; existed {
		return ErrDuplicateRequest
	}
	o.ids[requestID] = struct{}{}
	o.requests = append(o.requests, OracleRequest{
		CampaignName: campaignName,
		RequestID:    requestID,
		Fee:          fee,
	})
	return nil
}

// Requests returns a copy of the received requests
func (o *Oracle) Requests() []OracleRequest {
	o.mu.Lock()
	defer o.mu.Unlock()

	result := make([]OracleRequest, len(o.requests))
	copy(result, o.requests)
	return result
}
