package domain

import "context"

// BillingReporter is the read-only report surface over the relational store.
// Every method runs single-shot: it acquires its own connection, executes one
// query and releases the connection on return, error included.
type BillingReporter interface {
	ActiveCustomers(ctx context.Context) ([]ActiveCustomerRow, error)
	TopActiveAccounts(ctx context.Context) ([]ActiveAccountRow, error)
	UnderfundedContracts(ctx context.Context) ([]UnderfundedContractRow, error)
	DeviceContractSummary(ctx context.Context) ([]DeviceContractSummaryRow, error)
	InvoicePaymentSummary(ctx context.Context) ([]InvoiceSummaryRow, error)
}

// ListingReporter is the read-only report surface over the document store.
type ListingReporter interface {
	TopAustralianTwoBedrooms(ctx context.Context) ([]MonthlyPriceRow, error)
	MidrangeUSEntireHomes(ctx context.Context) ([]MidrangeListingRow, error)
	SurplusBedListings(ctx context.Context) ([]SurplusBedRow, error)
	LargePetFriendlyListings(ctx context.Context) ([]AmenityCountRow, error)
	RatingByGovernmentArea(ctx context.Context) ([]AreaRatingRow, error)
	LargeCapacitySummary(ctx context.Context) ([]PropertyTypeSummaryRow, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
