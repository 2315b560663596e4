package domain

// Listing models the subset of a listingsAndReviews document the reports touch.
// The collection is schema-less; price and minimum_nights are stored as text and
// cleaning_fee may be absent, so the seed model keeps them loose on purpose.
type Listing struct {
	ID              string         `bson:"_id"`
	Name            string         `bson:"name"`
	PropertyType    string         `bson:"property_type"`
	RoomType        string         `bson:"room_type"`
	Price           string         `bson:"price"`
	MonthlyPrice    *float64       `bson:"monthly_price,omitempty"`
	CleaningFee     *float64       `bson:"cleaning_fee,omitempty"`
	MinimumNights   string         `bson:"minimum_nights"`
	Bedrooms        int32          `bson:"bedrooms"`
	Beds            int32          `bson:"beds"`
	Accommodates    int32          `bson:"accommodates"`
	Amenities       []string       `bson:"amenities"`
	NumberOfReviews int32          `bson:"number_of_reviews"`
	Address         ListingAddress `bson:"address"`
	ReviewScores    ReviewScores   `bson:"review_scores"`
	Host            ListingHost    `bson:"host"`
}

type ListingAddress struct {
	Country        string `bson:"country"`
	CountryCode    string `bson:"country_code"`
	GovernmentArea string `bson:"government_area"`
}

type ReviewScores struct {
	Rating int32 `bson:"review_scores_rating"`
}

type ListingHost struct {
	ResponseRate int32 `bson:"host_response_rate"`
}
