package domain

import "time"

// Billing entities live in the relational store and are consumed read-only;
// bulk load and schema bootstrap happen outside this module.

type Customer struct {
	CustomerID string
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	Address    string
}

type Account struct {
	AccountID   string
	CustomerID  string
	Balance     float64
	Type        string
	Status      string
	CreatedDate time.Time
}

type Plan struct {
	PlanID      string
	Name        string
	MonthlyFee  float64
	DataLimitGB *int // nil means unlimited
	Shareable   bool
}

type Contract struct {
	ContractID string
	StartDate  time.Time
	EndDate    time.Time
	Status     string
	AccountID  string
	PlanID     string
}

type Device struct {
	DeviceID  string
	AccountID string
	IMEI      string
	Model     string
}

type Invoice struct {
	InvoiceID string
	AccountID string
	Date      time.Time
	DueDate   time.Time
	Amount    float64
	Status    string
}

const (
	ContractActive   = "active"
	ContractExpired  = "expired"
	ContractCanceled = "canceled"

	AccountActive = "active"

	InvoicePaid     = "paid"
	InvoiceUnpaid   = "unpaid"
	InvoiceOverdue  = "overdue"
	InvoiceCanceled = "canceled"
)
