package app_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"telco_reports/internal/app"
	"telco_reports/internal/domain"
)

// ---- fakes ----

type fakeBilling struct {
	customers   []domain.ActiveCustomerRow
	accounts    []domain.ActiveAccountRow
	underfunded []domain.UnderfundedContractRow
	devices     []domain.DeviceContractSummaryRow
	invoices    []domain.InvoiceSummaryRow
	err         error
	calls       int
}

func (f *fakeBilling) ActiveCustomers(ctx context.Context) ([]domain.ActiveCustomerRow, error) {
	f.calls++
	return f.customers, f.err
}
func (f *fakeBilling) TopActiveAccounts(ctx context.Context) ([]domain.ActiveAccountRow, error) {
	f.calls++
	return f.accounts, f.err
}
func (f *fakeBilling) UnderfundedContracts(ctx context.Context) ([]domain.UnderfundedContractRow, error) {
	f.calls++
	return f.underfunded, f.err
}
func (f *fakeBilling) DeviceContractSummary(ctx context.Context) ([]domain.DeviceContractSummaryRow, error) {
	f.calls++
	return f.devices, f.err
}
func (f *fakeBilling) InvoicePaymentSummary(ctx context.Context) ([]domain.InvoiceSummaryRow, error) {
	f.calls++
	return f.invoices, f.err
}

type fakeListings struct {
	monthly  []domain.MonthlyPriceRow
	midrange []domain.MidrangeListingRow
	surplus  []domain.SurplusBedRow
	amenity  []domain.AmenityCountRow
	ratings  []domain.AreaRatingRow
	summary  []domain.PropertyTypeSummaryRow
	err      error
}

func (f *fakeListings) TopAustralianTwoBedrooms(ctx context.Context) ([]domain.MonthlyPriceRow, error) {
	return f.monthly, f.err
}
func (f *fakeListings) MidrangeUSEntireHomes(ctx context.Context) ([]domain.MidrangeListingRow, error) {
	return f.midrange, f.err
}
func (f *fakeListings) SurplusBedListings(ctx context.Context) ([]domain.SurplusBedRow, error) {
	return f.surplus, f.err
}
func (f *fakeListings) LargePetFriendlyListings(ctx context.Context) ([]domain.AmenityCountRow, error) {
	return f.amenity, f.err
}
func (f *fakeListings) RatingByGovernmentArea(ctx context.Context) ([]domain.AreaRatingRow, error) {
	return f.ratings, f.err
}
func (f *fakeListings) LargeCapacitySummary(ctx context.Context) ([]domain.PropertyTypeSummaryRow, error) {
	return f.summary, f.err
}

type fakeCache struct{ store map[string][]byte }

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}
func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string][]byte{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.store[key] = b
	return nil
}
func (c *fakeCache) Del(ctx context.Context, key string) error {
	delete(c.store, key)
	return nil
}

// ---- tests ----

func TestTopActiveAccounts_CacheMissThenHit(t *testing.T) {
	repo := &fakeBilling{accounts: []domain.ActiveAccountRow{
		{CustomerID: "C001", AccountID: "A001", AccountStatus: "active", Balance: 310.40},
	}}
	cache := &fakeCache{}
	svc := app.NewBillingReports(repo, cache, 10*time.Minute)

	rows, err := svc.TopActiveAccounts(context.Background())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(rows) != 1 || rows[0].AccountID != "A001" {
		t.Fatalf("unexpected rows: %+v", rows)
	}

	// Mutate repo to prove the second read comes from cache.
	repo.accounts[0].AccountID = "SHOULD NOT SEE THIS"

	rows2, err := svc.TopActiveAccounts(context.Background())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if rows2[0].AccountID != "A001" {
		t.Fatalf("expected cached row, got %+v", rows2[0])
	}
	if repo.calls != 1 {
		t.Fatalf("expected a single repo call, got %d", repo.calls)
	}
}

func TestBillingReports_NilCache(t *testing.T) {
	repo := &fakeBilling{underfunded: []domain.UnderfundedContractRow{
		{PlanName: "Basic", MonthlyFee: 35.99, ContractStatus: "active", Balance: 20.50},
	}}
	svc := app.NewBillingReports(repo, nil, 0)

	for i := 0; i < 2; i++ {
		rows, err := svc.UnderfundedContracts(context.Background())
		if err != nil {
			t.Fatalf("err: %v", err)
		}
		if len(rows) != 1 || rows[0].Balance >= rows[0].MonthlyFee {
			t.Fatalf("unexpected rows: %+v", rows)
		}
	}
	if repo.calls != 2 {
		t.Fatalf("nil cache must hit the repo every time, got %d calls", repo.calls)
	}
}

func TestBillingReports_ErrorNotCached(t *testing.T) {
	repo := &fakeBilling{err: &domain.ConnectionError{Store: "mysql", Err: errors.New("dial tcp: refused")}}
	cache := &fakeCache{}
	svc := app.NewBillingReports(repo, cache, time.Minute)

	if _, err := svc.ActiveCustomers(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if len(cache.store) != 0 {
		t.Fatalf("a failed report must not be cached: %v", cache.store)
	}
}

func TestBillingFetch_AllNamesDispatch(t *testing.T) {
	svc := app.NewBillingReports(&fakeBilling{}, nil, 0)
	for _, name := range app.BillingReportNames {
		if _, err := svc.Fetch(context.Background(), name); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
	}
	if _, err := svc.Fetch(context.Background(), "nope"); err == nil {
		t.Fatal("expected unknown-report error")
	}
}

func TestListingFetch_AllNamesDispatch(t *testing.T) {
	svc := app.NewListingReports(&fakeListings{}, nil, 0)
	for _, name := range app.ListingReportNames {
		if _, err := svc.Fetch(context.Background(), name); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
	}
	if _, err := svc.Fetch(context.Background(), "nope"); err == nil {
		t.Fatal("expected unknown-report error")
	}
}

func TestListingReports_ErrorsPropagate(t *testing.T) {
	qerr := &domain.QueryError{Store: "mongodb", Report: "rating_by_government_area", Err: errors.New("unknown operator")}
	svc := app.NewListingReports(&fakeListings{err: qerr}, nil, 0)

	_, err := svc.RatingByGovernmentArea(context.Background())
	var got *domain.QueryError
	if !errors.As(err, &got) {
		t.Fatalf("expected QueryError, got %v", err)
	}
}

func TestRender_UnderfundedContracts(t *testing.T) {
	repo := &fakeBilling{underfunded: []domain.UnderfundedContractRow{
		{PlanName: "Family Share", MonthlyFee: 50.99, ContractStatus: "active", Balance: 41.00},
		{PlanName: "Basic", MonthlyFee: 35.99, ContractStatus: "active", Balance: 20.50},
	}}
	svc := app.NewBillingReports(repo, nil, 0)

	var buf bytes.Buffer
	if err := svc.Render(context.Background(), "underfunded-contracts", &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"PlanName", "Family Share", "35.99", "(2 rows)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRender_PropertyTypeSummary(t *testing.T) {
	svc := app.NewListingReports(&fakeListings{summary: []domain.PropertyTypeSummaryRow{
		{PropertyType: "Villa", AvgPrice: 812.50, AvgCleaningFee: 104.33, ListingCount: 3},
	}}, nil, 0)

	var buf bytes.Buffer
	if err := svc.Render(context.Background(), "large-capacity-summary", &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"PropertyType", "Villa", "812.50", "104.33", "(1 rows)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRender_UnknownReport(t *testing.T) {
	bsvc := app.NewBillingReports(&fakeBilling{}, nil, 0)
	if err := bsvc.Render(context.Background(), "nope", &bytes.Buffer{}); err == nil {
		t.Fatal("expected unknown-report error")
	}
	lsvc := app.NewListingReports(&fakeListings{}, nil, 0)
	if err := lsvc.Render(context.Background(), "nope", &bytes.Buffer{}); err == nil {
		t.Fatal("expected unknown-report error")
	}
}
