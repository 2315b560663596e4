package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"telco_reports/internal/domain"
)

type Repo struct{ col *mongo.Collection }

func New(client *mongo.Client, database, collection string) *Repo {
	return &Repo{col: client.Database(database).Collection(collection)}
}

// classify mirrors the relational side: the server answered with an error ->
// QueryError; we never reached it -> ConnectionError.
func classify(report string, err error) error {
	var se mongo.ServerError
	if errors.As(err, &se) {
		return &domain.QueryError{Store: "mongodb", Report: report, Err: err}
	}
	return &domain.ConnectionError{Store: "mongodb", Err: err}
}

func (r *Repo) TopAustralianTwoBedrooms(ctx context.Context) ([]domain.MonthlyPriceRow, error) {
	opts := options.Find().
		SetProjection(topAustralianProjection).
		SetSort(bson.D{{Key: "monthly_price", Value: -1}}).
		SetLimit(3)
	cur, err := r.col.Find(ctx, topAustralianFilter, opts)
	if err != nil {
		return nil, classify("top_australian_two_bedrooms", err)
	}
	defer cur.Close(ctx)

	var out []domain.MonthlyPriceRow
	if err := cur.All(ctx, &out); err != nil {
		return nil, classify("top_australian_two_bedrooms", err)
	}
	return out, nil
}

func (r *Repo) MidrangeUSEntireHomes(ctx context.Context) ([]domain.MidrangeListingRow, error) {
	cur, err := r.col.Aggregate(ctx, midrangeUSPipeline)
	if err != nil {
		return nil, classify("midrange_us_entire_homes", err)
	}
	defer cur.Close(ctx)

	var out []domain.MidrangeListingRow
	if err := cur.All(ctx, &out); err != nil {
		return nil, classify("midrange_us_entire_homes", err)
	}
	return out, nil
}

func (r *Repo) SurplusBedListings(ctx context.Context) ([]domain.SurplusBedRow, error) {
	opts := options.Find().
		SetProjection(surplusBedProjection).
		SetSort(bson.D{{Key: "monthly_price", Value: -1}}).
		SetLimit(5)
	cur, err := r.col.Find(ctx, surplusBedFilter, opts)
	if err != nil {
		return nil, classify("surplus_bed_listings", err)
	}
	defer cur.Close(ctx)

	var out []domain.SurplusBedRow
	if err := cur.All(ctx, &out); err != nil {
		return nil, classify("surplus_bed_listings", err)
	}
	return out, nil
}

func (r *Repo) LargePetFriendlyListings(ctx context.Context) ([]domain.AmenityCountRow, error) {
	cur, err := r.col.Aggregate(ctx, largePetFriendlyPipeline)
	if err != nil {
		return nil, classify("large_pet_friendly_listings", err)
	}
	defer cur.Close(ctx)

	var out []domain.AmenityCountRow
	if err := cur.All(ctx, &out); err != nil {
		return nil, classify("large_pet_friendly_listings", err)
	}
	return out, nil
}

func (r *Repo) RatingByGovernmentArea(ctx context.Context) ([]domain.AreaRatingRow, error) {
	cur, err := r.col.Aggregate(ctx, areaRatingPipeline)
	if err != nil {
		return nil, classify("rating_by_government_area", err)
	}
	defer cur.Close(ctx)

	var out []domain.AreaRatingRow
	if err := cur.All(ctx, &out); err != nil {
		return nil, classify("rating_by_government_area", err)
	}
	return out, nil
}

func (r *Repo) LargeCapacitySummary(ctx context.Context) ([]domain.PropertyTypeSummaryRow, error) {
	cur, err := r.col.Aggregate(ctx, largeCapacityPipeline)
	if err != nil {
		return nil, classify("large_capacity_summary", err)
	}
	defer cur.Close(ctx)

	var out []domain.PropertyTypeSummaryRow
	if err := cur.All(ctx, &out); err != nil {
		return nil, classify("large_capacity_summary", err)
	}
	return out, nil
}
