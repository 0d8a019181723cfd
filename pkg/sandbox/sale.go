package sandbox

import (
	"context"
	"fmt"
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"sync"
)

// Sale action names understood by CustomSale
const (
	ActionBuy                   = "buy()"
	ActionBuyWithIntentToRefund = "buyWithIntentToRefund()"
	ActionClaim                 = "claim()"
	ActionClaimToken            = "claimToken()"
	ActionRefund                = "refund()"
	ActionClaimRefund           = "claimRefund()"
)

const tokenPlaces = 18

// CustomSale is a token sale selling at a fixed price, tokens are minted on the token ledger
type CustomSale struct {
	address common.Address
	token   common.Address
	price   decimal.Decimal

	payments *Payments
	tokens   *TokenLedger

	mu         sync.Mutex
	pending    map[common.Address]decimal.Decimal
	refundable map[common.Address]decimal.Decimal
}

// NewCustomSale ...
func NewCustomSale(
	address common.Address, token common.Address, price decimal.Decimal,
	payments *Payments, tokens *TokenLedger,
) *CustomSale {
	return &CustomSale{
		address: address,
		token:   token,
		price:   price,

		payments: payments,
		tokens:   tokens,

		pending:    map[common.Address]decimal.Decimal{},
		refundable: map[common.Address]decimal.Decimal{},
	}
}

// Address ...
func (s *CustomSale) Address() common.Address {
	return s.address
}

// Token ...
func (s *CustomSale) Token() common.Address {
	return s.token
}

func (s *CustomSale) tokensFor(value decimal.Decimal) decimal.Decimal {
	q, _ := value.QuoRem(s.price, tokenPlaces)
	return q
}

func (s *CustomSale) checkDestination(destination common.Address) error {
	if destination != s.address {
		return fmt.Errorf("%w: no sale at %s", ErrUnknownAction, destination.Hex())
	}
	return nil
}

// Call invokes a named action with value paid by from, it returns the value refunded to from
func (s *CustomSale) Call(
	_ context.Context, from, destination common.Address, action string, value decimal.Decimal,
) (decimal.Decimal, error) {
	if err := s.checkDestination(destination); err != nil {
		return decimal.Zero, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch action {
	case ActionBuy:
		if err := s.payments.Transfer(context.Background(), from, s.address, value); err != nil {
			return decimal.Zero, err
		}
		s.tokens.Mint(s.token, from, s.tokensFor(value))
		return decimal.Zero, nil

	case ActionBuyWithIntentToRefund:
		if err := s.payments.Transfer(context.Background(), from, s.address, value); err != nil {
			return decimal.Zero, err
		}
		s.refundable[from] = s.refundable[from].Add(value)
		return decimal.Zero, nil

	case ActionClaim, ActionClaimToken:
		amount := s.pending[from]
		if amount.IsPositive() {
			s.tokens.Mint(s.token, from, amount)
			delete(s.pending, from)
			delete(s.refundable, from)
		}
		return decimal.Zero, nil

	case ActionRefund, ActionClaimRefund:
		amount := s.refundable[from]
		if !amount.IsPositive() {
			return decimal.Zero, ErrNothingToRefund
		}
		if err := s.payments.Transfer(context.Background(), s.address, from, amount); err != nil {
			return decimal.Zero, err
		}
		delete(s.refundable, from)
		return amount, nil

	default:
		return decimal.Zero, fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
}

// Send is a plain value transfer, the purchased tokens are delivered by a later claim
func (s *CustomSale) Send(_ context.Context, from, destination common.Address, value decimal.Decimal) error {
	if err := s.checkDestination(destination); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.payments.Transfer(context.Background(), from, s.address, value); err != nil {
		return err
	}
	s.pending[from] = s.pending[from].Add(s.tokensFor(value))
	s.refundable[from] = s.refundable[from].Add(value)
	return nil
}

// Pending returns the tokens bought but not claimed yet
func (s *CustomSale) Pending(buyer common.Address) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.pending[buyer]
}

// Market routes calls to the sale deployed at the destination
type Market struct {
	mu    sync.RWMutex
	sales map[common.Address]*CustomSale
}

// NewMarket ...
func NewMarket(sales ...*CustomSale) *Market {
	m := &Market{
		sales: map[common.Address]*CustomSale{},
	}
	for _, sale := range sales {
		m.Deploy(sale)
	}
	return m
}

// Deploy ...
func (m *Market) Deploy(sale *CustomSale) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sales[sale.Address()] = sale
}

func (m *Market) getSale(destination common.Address) (*CustomSale, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sale, ok := m.sales[destination]
	if !ok {
		return nil, fmt.Errorf("%w: no sale at %s", ErrUnknownAction, destination.Hex())
	}
	return sale, nil
}

// Call ...
func (m *Market) Call(
	ctx context.Context, from, destination common.Address, action string, value decimal.Decimal,
) (decimal.Decimal, error) {
	sale, err := m.getSale(destination)
	if err != nil {
		return decimal.Zero, err
	}
	return sale.Call(ctx, from, destination, action, value)
}

// Send ...
func (m *Market) Send(ctx context.Context, from, destination common.Address, value decimal.Decimal) error {
	sale, err := m.getSale(destination)
	if err != nil {
		return err
	}
	return sale.Send(ctx, from, destination, value)
}
