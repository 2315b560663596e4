package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"telco_reports/internal/adapters/observability"
	"telco_reports/internal/domain"
)

// Reports run strictly one at a time; there is no retry, timeout or
// recovery policy. The cache is read-through with TTL and optional: pass nil
// to disable it (the CLI always does).

func errStatus(err error) string {
	if err == nil {
		return "ok"
	}
	var ce *domain.ConnectionError
	if errors.As(err, &ce) {
		return "connection_error"
	}
	var qe *domain.QueryError
	if errors.As(err, &qe) {
		return "query_error"
	}
	return "error"
}

func run[T any](ctx context.Context, module, report string, cache domain.Cache, ttl time.Duration, fetch func(context.Context) ([]T, error)) ([]T, error) {
	key := fmt.Sprintf("report:%s:%s", module, report)
	if cache != nil {
		var rows []T
		if ok, _ := cache.Get(ctx, key, &rows); ok {
			return rows, nil
		}
	}

	start := time.Now()
	rows, err := fetch(ctx)
	observability.ObserveReport(module, report, errStatus(err), time.Since(start), len(rows))
	if err != nil {
		return nil, err
	}

	if cache != nil {
		_ = cache.Set(ctx, key, rows, int(ttl.Seconds()))
	}
	return rows, nil
}

// ---- billing ----

type BillingReports struct {
	repo     domain.BillingReporter
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewBillingReports(r domain.BillingReporter, c domain.Cache, ttl time.Duration) *BillingReports {
	return &BillingReports{repo: r, cache: c, cacheTTL: ttl}
}

// BillingReportNames lists every billing report, in the order `all` runs them.
var BillingReportNames = []string{
	"active-customers",
	"top-active-accounts",
	"underfunded-contracts",
	"device-contract-summary",
	"invoice-payment-summary",
}

func (s *BillingReports) ActiveCustomers(ctx context.Context) ([]domain.ActiveCustomerRow, error) {
	return run(ctx, "billing", "active_customers", s.cache, s.cacheTTL, s.repo.ActiveCustomers)
}

func (s *BillingReports) TopActiveAccounts(ctx context.Context) ([]domain.ActiveAccountRow, error) {
	return run(ctx, "billing", "top_active_accounts", s.cache, s.cacheTTL, s.repo.TopActiveAccounts)
}

func (s *BillingReports) UnderfundedContracts(ctx context.Context) ([]domain.UnderfundedContractRow, error) {
	return run(ctx, "billing", "underfunded_contracts", s.cache, s.cacheTTL, s.repo.UnderfundedContracts)
}

func (s *BillingReports) DeviceContractSummary(ctx context.Context) ([]domain.DeviceContractSummaryRow, error) {
	return run(ctx, "billing", "device_contract_summary", s.cache, s.cacheTTL, s.repo.DeviceContractSummary)
}

func (s *BillingReports) InvoicePaymentSummary(ctx context.Context) ([]domain.InvoiceSummaryRow, error) {
	return run(ctx, "billing", "invoice_payment_summary", s.cache, s.cacheTTL, s.repo.InvoicePaymentSummary)
}

// Fetch returns the rows for one report by CLI/API name.
func (s *BillingReports) Fetch(ctx context.Context, name string) (any, error) {
	switch name {
	case "active-customers":
		return s.ActiveCustomers(ctx)
	case "top-active-accounts":
		return s.TopActiveAccounts(ctx)
	case "underfunded-contracts":
		return s.UnderfundedContracts(ctx)
	case "device-contract-summary":
		return s.DeviceContractSummary(ctx)
	case "invoice-payment-summary":
		return s.InvoicePaymentSummary(ctx)
	default:
		return nil, fmt.Errorf("unknown billing report %q", name)
	}
}

// Render fetches one report by name and writes its human-readable form to w.
func (s *BillingReports) Render(ctx context.Context, name string, w io.Writer) error {
	switch name {
	case "active-customers":
		rows, err := s.ActiveCustomers(ctx)
		if err != nil {
			return err
		}
		renderActiveCustomers(w, rows)
	case "top-active-accounts":
		rows, err := s.TopActiveAccounts(ctx)
		if err != nil {
			return err
		}
		renderActiveAccounts(w, rows)
	case "underfunded-contracts":
		rows, err := s.UnderfundedContracts(ctx)
		if err != nil {
			return err
		}
		renderUnderfundedContracts(w, rows)
	case "device-contract-summary":
		rows, err := s.DeviceContractSummary(ctx)
		if err != nil {
			return err
		}
		renderDeviceContractSummary(w, rows)
	case "invoice-payment-summary":
		rows, err := s.InvoicePaymentSummary(ctx)
		if err != nil {
			return err
		}
		renderInvoiceSummary(w, rows)
	default:
		return fmt.Errorf("unknown billing report %q", name)
	}
	return nil
}

// ---- listings ----

type ListingReports struct {
	repo     domain.ListingReporter
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewListingReports(r domain.ListingReporter, c domain.Cache, ttl time.Duration) *ListingReports {
	return &ListingReports{repo: r, cache: c, cacheTTL: ttl}
}

var ListingReportNames = []string{
	"top-australian-two-bedrooms",
	"midrange-us-entire-homes",
	"surplus-bed-listings",
	"large-pet-friendly-listings",
	"rating-by-government-area",
	"large-capacity-summary",
}

func (s *ListingReports) TopAustralianTwoBedrooms(ctx context.Context) ([]domain.MonthlyPriceRow, error) {
	return run(ctx, "listings", "top_australian_two_bedrooms", s.cache, s.cacheTTL, s.repo.TopAustralianTwoBedrooms)
}

func (s *ListingReports) MidrangeUSEntireHomes(ctx context.Context) ([]domain.MidrangeListingRow, error) {
	return run(ctx, "listings", "midrange_us_entire_homes", s.cache, s.cacheTTL, s.repo.MidrangeUSEntireHomes)
}

func (s *ListingReports) SurplusBedListings(ctx context.Context) ([]domain.SurplusBedRow, error) {
	return run(ctx, "listings", "surplus_bed_listings", s.cache, s.cacheTTL, s.repo.SurplusBedListings)
}

func (s *ListingReports) LargePetFriendlyListings(ctx context.Context) ([]domain.AmenityCountRow, error) {
	return run(ctx, "listings", "large_pet_friendly_listings", s.cache, s.cacheTTL, s.repo.LargePetFriendlyListings)
}

func (s *ListingReports) RatingByGovernmentArea(ctx context.Context) ([]domain.AreaRatingRow, error) {
	return run(ctx, "listings", "rating_by_government_area", s.cache, s.cacheTTL, s.repo.RatingByGovernmentArea)
}

func (s *ListingReports) LargeCapacitySummary(ctx context.Context) ([]domain.PropertyTypeSummaryRow, error) {
	return run(ctx, "listings", "large_capacity_summary", s.cache, s.cacheTTL, s.repo.LargeCapacitySummary)
}

func (s *ListingReports) Fetch(ctx context.Context, name string) (any, error) {
	switch name {
	case "top-australian-two-bedrooms":
		return s.TopAustralianTwoBedrooms(ctx)
	case "midrange-us-entire-homes":
		return s.MidrangeUSEntireHomes(ctx)
	case "surplus-bed-listings":
		return s.SurplusBedListings(ctx)
	case "large-pet-friendly-listings":
		return s.LargePetFriendlyListings(ctx)
	case "rating-by-government-area":
		return s.RatingByGovernmentArea(ctx)
	case "large-capacity-summary":
		return s.LargeCapacitySummary(ctx)
	default:
		return nil, fmt.Errorf("unknown listing report %q", name)
	}
}

func (s *ListingReports) Render(ctx context.Context, name string, w io.Writer) error {
	switch name {
	case "top-australian-two-bedrooms":
		rows, err := s.TopAustralianTwoBedrooms(ctx)
		if err != nil {
			return err
		}
		renderMonthlyPrices(w, rows)
	case "midrange-us-entire-homes":
		rows, err := s.MidrangeUSEntireHomes(ctx)
		if err != nil {
			return err
		}
		renderMidrangeListings(w, rows)
	case "surplus-bed-listings":
		rows, err := s.SurplusBedListings(ctx)
		if err != nil {
			return err
		}
		renderSurplusBeds(w, rows)
	case "large-pet-friendly-listings":
		rows, err := s.LargePetFriendlyListings(ctx)
		if err != nil {
			return err
		}
		renderAmenityCounts(w, rows)
	case "rating-by-government-area":
		rows, err := s.RatingByGovernmentArea(ctx)
		if err != nil {
			return err
		}
		renderAreaRatings(w, rows)
	case "large-capacity-summary":
		rows, err := s.LargeCapacitySummary(ctx)
		if err != nil {
			return err
		}
		renderPropertyTypeSummaries(w, rows)
	default:
		return fmt.Errorf("unknown listing report %q", name)
	}
	return nil
}
