package domain

import "github.com/shopspring/decimal"

// AmountScale is the number of decimal places stored for rates and quantities.
const AmountScale = 2

// FitsScale reports whether d is representable with AmountScale decimal
// places. Trailing zeros beyond the scale are allowed.
func FitsScale(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(AmountScale))
}

type WageType string

const (
	WageHourly WageType = "hourly"
	WageDaily  WageType = "daily"
)

func (t WageType) Valid() bool {
	return t == WageHourly || t == WageDaily
}

type RunStatus string

const (
	RunOpen   RunStatus = "open"
	RunClosed RunStatus = "closed"
)

type PaymentType string

const (
	PaymentBankTransfer PaymentType = "bank_transfer"
	PaymentCheck        PaymentType = "check"
	PaymentCash         PaymentType = "cash"
	PaymentDeferred     PaymentType = "deferred"
)

func (p PaymentType) Valid() bool {
	switch p {
	case PaymentBankTransfer, PaymentCheck, PaymentCash, PaymentDeferred:
		return true
	}
	return false
}

// Wage is the pay term of an employee: HourlyWage or DailyWage.
type Wage interface {
	Type() WageType
	Amount() decimal.Decimal
	wage()
}

type HourlyWage struct {
	Rate decimal.Decimal
}

func (HourlyWage) Type() WageType            { return WageHourly }
func (w HourlyWage) Amount() decimal.Decimal { return w.Rate }
func (HourlyWage) wage()                     {}

type DailyWage struct {
	Rate decimal.Decimal
}

func (DailyWage) Type() WageType            { return WageDaily }
func (w DailyWage) Amount() decimal.Decimal { return w.Rate }
func (DailyWage) wage()                     {}

// Quantity is the reported work of an entry: Hours or Days.
type Quantity interface {
	Type() WageType
	Amount() decimal.Decimal
	quantity()
}

type Hours struct {
	Value decimal.Decimal
}

func (Hours) Type() WageType            { return WageHourly }
func (h Hours) Amount() decimal.Decimal { return h.Value }
func (Hours) quantity()                 {}

type Days struct {
	Value decimal.Decimal
}

func (Days) Type() WageType            { return WageDaily }
func (d Days) Amount() decimal.Decimal { return d.Value }
func (Days) quantity()                 {}
