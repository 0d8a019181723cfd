package model

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
)

// SaleActionKind ...
type SaleActionKind int

const (
	// SaleActionNone skips the call (plain transfer for buy)
	SaleActionNone SaleActionKind = 1

	// SaleActionAuto means the sale delivers without a call, only for claim
	SaleActionAuto SaleActionKind = 2

	// SaleActionNamed invokes Name on the sale adapter
	SaleActionNamed SaleActionKind = 3
)

const (
	saleActionNoneText    = "none"
	saleActionLegacyNone  = "N/A"
	saleActionAutoText    = "auto"
	saleActionInvalidText = ""
)

// ErrEmptySaleAction ...
var ErrEmptySaleAction = errors.New("empty sale action")

// SaleAction identifies an action on the external sale adapter
type SaleAction struct {
	Kind SaleActionKind
	Name string
}

// NoAction ...
func NoAction() SaleAction {
	return SaleAction{Kind: SaleActionNone}
}

// AutoAction ...
func AutoAction() SaleAction {
	return SaleAction{Kind: SaleActionAuto}
}

// NamedAction ...
func NamedAction(name string) SaleAction {
	return SaleAction{Kind: SaleActionNamed, Name: name}
}

// ParseSaleAction parses "none", "N/A", "auto" or an action name
func ParseSaleAction(s string) (SaleAction, error) {
	s = strings.TrimSpace(s)
	switch s {
	case saleActionInvalidText:
		return SaleAction{}, ErrEmptySaleAction
	case saleActionNoneText, saleActionLegacyNone:
		return NoAction(), nil
	case saleActionAutoText:
		return AutoAction(), nil
	default:
		return NamedAction(s), nil
	}
}

// IsSentinelName reports whether name would be read back as a sentinel
func IsSentinelName(name string) bool {
	switch strings.TrimSpace(name) {
	case saleActionNoneText, saleActionLegacyNone, saleActionAutoText:
		return true
	default:
		return false
	}
}

// IsNone ...
func (a SaleAction) IsNone() bool {
	return a.Kind == SaleActionNone
}

// IsAuto ...
func (a SaleAction) IsAuto() bool {
	return a.Kind == SaleActionAuto
}

// IsNamed ...
func (a SaleAction) IsNamed() bool {
	return a.Kind == SaleActionNamed
}

func (a SaleAction) String() string {
	switch a.Kind {
	case SaleActionNone:
		return saleActionNoneText
	case SaleActionAuto:
		return saleActionAutoText
	case SaleActionNamed:
		return a.Name
	default:
		return saleActionInvalidText
	}
}

// Value implements driver.Valuer
func (a SaleAction) Value() (driver.Value, error) {
	return a.String(), nil
}

// Scan implements sql.Scanner
func (a *SaleAction) Scan(src interface{}) error {
	var s string
	switch v := src.(type) {
	case nil:
		*a = SaleAction{}
		return nil
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("can not scan %T into SaleAction", src)
	}

	if s == saleActionInvalidText {
		*a = SaleAction{}
		return nil
	}
	action, err := ParseSaleAction(s)
	if err != nil {
		return err
	}
	*a = action
	return nil
}
