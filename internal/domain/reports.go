package domain

// Row types returned by the billing reports. Column selection, filter semantics,
// ordering and limits are the compatibility surface; rendering is not.

type ActiveCustomerRow struct {
	CustomerID string
	FirstName  string
	LastName   string
	Email      string
}

type ActiveAccountRow struct {
	CustomerID    string
	FirstName     string
	LastName      string
	Email         string
	AccountID     string
	AccountType   string
	AccountStatus string
	Balance       float64
}

type UnderfundedContractRow struct {
	PlanName       string
	MonthlyFee     float64
	ContractStatus string
	Balance        float64
}

type DeviceContractSummaryRow struct {
	CustomerID      string
	FirstName       string
	LastName        string
	AccountID       string
	DeviceCount     int
	ActiveContracts int
}

type InvoiceSummaryRow struct {
	AccountID    string
	TotalAmount  float64
	TotalPaid    float64
	TotalUnpaid  float64
	OverdueCount int
}

// Row types returned by the listing reports. The bson tags follow the field
// names the pipelines project.

type MonthlyPriceRow struct {
	ID           string  `bson:"_id"`
	Name         string  `bson:"name"`
	MonthlyPrice float64 `bson:"monthly_price"`
	PropertyType string  `bson:"property_type"`
}

type MidrangeListingRow struct {
	ID              string `bson:"_id"`
	Name            string `bson:"name"`
	Price           string `bson:"price"`
	Bedrooms        int32  `bson:"bedrooms"`
	NumberOfReviews int32  `bson:"number_of_reviews"`
}

type SurplusBedRow struct {
	ID           string  `bson:"_id"`
	Name         string  `bson:"name"`
	Beds         int32   `bson:"beds"`
	Bedrooms     int32   `bson:"bedrooms"`
	Accommodates int32   `bson:"accommodates"`
	MonthlyPrice float64 `bson:"monthly_price"`
}

type AmenityCountRow struct {
	ID           string `bson:"_id"`
	Name         string `bson:"name"`
	Price        string `bson:"price"`
	AmenityCount int32  `bson:"amenity_count"`
}

type AreaRatingRow struct {
	GovernmentArea string  `bson:"government_area"`
	AvgRating      float64 `bson:"avg_rating"`
}

type PropertyTypeSummaryRow struct {
	PropertyType   string  `bson:"property_type"`
	AvgPrice       float64 `bson:"avg_price"`
	AvgCleaningFee float64 `bson:"avg_cleaning_fee"`
	ListingCount   int32   `bson:"listing_count"`
}
