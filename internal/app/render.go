package app

import (
	"fmt"
	"io"

	"telco_reports/internal/domain"
)

// Human-readable renderings. Column layout is cosmetic; only field selection,
// filter semantics, ordering and limits are a compatibility surface.

func renderActiveCustomers(w io.Writer, rows []domain.ActiveCustomerRow) {
	fmt.Fprintf(w, "%-12s %-20s %-20s %s\n", "CustomerID", "FirstName", "LastName", "Email")
	for _, r := range rows {
		fmt.Fprintf(w, "%-12s %-20s %-20s %s\n", r.CustomerID, r.FirstName, r.LastName, r.Email)
	}
	fmt.Fprintf(w, "(%d rows)\n", len(rows))
}

func renderActiveAccounts(w io.Writer, rows []domain.ActiveAccountRow) {
	fmt.Fprintf(w, "%-12s %-16s %-16s %-28s %-11s %-12s %-8s %s\n",
		"CustomerID", "FirstName", "LastName", "Email", "AccountID", "Type", "Status", "Balance")
	for _, r := range rows {
		fmt.Fprintf(w, "%-12s %-16s %-16s %-28s %-11s %-12s %-8s %.2f\n",
			r.CustomerID, r.FirstName, r.LastName, r.Email, r.AccountID, r.AccountType, r.AccountStatus, r.Balance)
	}
	fmt.Fprintf(w, "(%d rows)\n", len(rows))
}

func renderUnderfundedContracts(w io.Writer, rows []domain.UnderfundedContractRow) {
	fmt.Fprintf(w, "%-20s %-12s %-10s %s\n", "PlanName", "MonthlyFee", "Status", "Balance")
	for _, r := range rows {
		fmt.Fprintf(w, "%-20s %-12.2f %-10s %.2f\n", r.PlanName, r.MonthlyFee, r.ContractStatus, r.Balance)
	}
	fmt.Fprintf(w, "(%d rows)\n", len(rows))
}

func renderDeviceContractSummary(w io.Writer, rows []domain.DeviceContractSummaryRow) {
	fmt.Fprintf(w, "%-12s %-16s %-16s %-11s %-10s %s\n",
		"CustomerID", "FirstName", "LastName", "AccountID", "Devices", "ActiveContracts")
	for _, r := range rows {
		fmt.Fprintf(w, "%-12s %-16s %-16s %-11s %-10d %d\n",
			r.CustomerID, r.FirstName, r.LastName, r.AccountID, r.DeviceCount, r.ActiveContracts)
	}
	fmt.Fprintf(w, "(%d rows)\n", len(rows))
}

func renderInvoiceSummary(w io.Writer, rows []domain.InvoiceSummaryRow) {
	fmt.Fprintf(w, "%-11s %-14s %-12s %-14s %s\n",
		"AccountID", "TotalInvoiced", "TotalPaid", "TotalUnpaid", "OverdueCount")
	for _, r := range rows {
		fmt.Fprintf(w, "%-11s $%-13.2f $%-11.2f $%-13.2f %d\n",
			r.AccountID, r.TotalAmount, r.TotalPaid, r.TotalUnpaid, r.OverdueCount)
	}
	fmt.Fprintf(w, "(%d rows)\n", len(rows))
}

// priceText shows a stored text price as a clean amount when it parses and
// verbatim when it does not (unparseable prices are display-only here; the
// pipelines already excluded them from numeric filters).
func priceText(p string) string {
	if f, ok := domain.CoerceFloat(p); ok {
		return fmt.Sprintf("%.2f", f)
	}
	return p
}

func renderMonthlyPrices(w io.Writer, rows []domain.MonthlyPriceRow) {
	fmt.Fprintf(w, "%-10s %-44s %-13s %s\n", "ID", "Name", "MonthlyPrice", "PropertyType")
	for _, r := range rows {
		fmt.Fprintf(w, "%-10s %-44s %-13.2f %s\n", r.ID, r.Name, r.MonthlyPrice, r.PropertyType)
	}
	fmt.Fprintf(w, "(%d rows)\n", len(rows))
}

func renderMidrangeListings(w io.Writer, rows []domain.MidrangeListingRow) {
	fmt.Fprintf(w, "%-10s %-44s %-10s %-9s %s\n", "ID", "Name", "Price", "Bedrooms", "Reviews")
	for _, r := range rows {
		fmt.Fprintf(w, "%-10s %-44s %-10s %-9d %d\n", r.ID, r.Name, priceText(r.Price), r.Bedrooms, r.NumberOfReviews)
	}
	fmt.Fprintf(w, "(%d rows)\n", len(rows))
}

func renderSurplusBeds(w io.Writer, rows []domain.SurplusBedRow) {
	fmt.Fprintf(w, "%-10s %-44s %-6s %-9s %s\n", "ID", "Name", "Beds", "Bedrooms", "Accommodates")
	for _, r := range rows {
		fmt.Fprintf(w, "%-10s %-44s %-6d %-9d %d\n", r.ID, r.Name, r.Beds, r.Bedrooms, r.Accommodates)
	}
	fmt.Fprintf(w, "(%d rows)\n", len(rows))
}

func renderAmenityCounts(w io.Writer, rows []domain.AmenityCountRow) {
	fmt.Fprintf(w, "%-10s %-44s %-10s %s\n", "ID", "Name", "Price", "Amenities")
	for _, r := range rows {
		fmt.Fprintf(w, "%-10s %-44s %-10s %d\n", r.ID, r.Name, priceText(r.Price), r.AmenityCount)
	}
	fmt.Fprintf(w, "(%d rows)\n", len(rows))
}

func renderAreaRatings(w io.Writer, rows []domain.AreaRatingRow) {
	fmt.Fprintf(w, "%-40s %s\n", "GovernmentArea", "AvgRating")
	for _, r := range rows {
		fmt.Fprintf(w, "%-40s %.2f\n", r.GovernmentArea, r.AvgRating)
	}
	fmt.Fprintf(w, "(%d rows)\n", len(rows))
}

func renderPropertyTypeSummaries(w io.Writer, rows []domain.PropertyTypeSummaryRow) {
	fmt.Fprintf(w, "%-20s %-10s %-15s %s\n", "PropertyType", "AvgPrice", "AvgCleaningFee", "Listings")
	for _, r := range rows {
		fmt.Fprintf(w, "%-20s %-10.2f %-15.2f %d\n", r.PropertyType, r.AvgPrice, r.AvgCleaningFee, r.ListingCount)
	}
	fmt.Fprintf(w, "(%d rows)\n", len(rows))
}
