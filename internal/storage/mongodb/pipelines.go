package mongodb

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// -----------------------------------------------------------------------------
// REPORT FILTERS & PIPELINES
// price and minimum_nights are stored as text in the collection, so every
// numeric comparison against them converts first. Conversion yields null on
// unparseable or missing input, and the $match that follows cannot be
// satisfied by null, so a bad document drops out instead of killing the run.
// -----------------------------------------------------------------------------

func toDouble(expr any) bson.M {
	return bson.M{"$convert": bson.M{"input": expr, "to": "double", "onError": nil, "onNull": nil}}
}

func toInt(expr any) bson.M {
	return bson.M{"$convert": bson.M{"input": expr, "to": "int", "onError": nil, "onNull": nil}}
}

// Top 3 Australian two-bedroom listings by monthly price.
var (
	topAustralianFilter = bson.M{
		"address.country": "Australia",
		"bedrooms":        2,
		"monthly_price":   bson.M{"$exists": true},
	}
	topAustralianProjection = bson.M{
		"_id":           1,
		"name":          1,
		"monthly_price": 1,
		"property_type": 1,
	}
)

// US entire homes, 3-night minimum, nightly price 700..1000 inclusive.
// Category filters first, then coercion, then the numeric range.
var midrangeUSPipeline = mongo.Pipeline{
	{{Key: "$match", Value: bson.M{
		"address.country_code": "US",
		"room_type":            "Entire home/apt",
	}}},
	{{Key: "$addFields", Value: bson.M{
		"min_nights_num": toInt("$minimum_nights"),
		"price_num":      toDouble("$price"),
	}}},
	{{Key: "$match", Value: bson.M{
		"min_nights_num": 3,
		"price_num":      bson.M{"$gte": 700, "$lte": 1000},
	}}},
	{{Key: "$sort", Value: bson.D{{Key: "price_num", Value: 1}}}},
	{{Key: "$project", Value: bson.M{
		"_id":               1,
		"name":              1,
		"price":             1,
		"bedrooms":          1,
		"number_of_reviews": 1,
	}}},
}

// Listings with more beds than bedrooms, or more beds than they accommodate.
// The comparison is field-to-field, hence $expr.
var (
	surplusBedFilter = bson.M{
		"monthly_price": bson.M{"$exists": true},
		"$expr": bson.M{"$or": bson.A{
			bson.M{"$gt": bson.A{"$beds", "$bedrooms"}},
			bson.M{"$gt": bson.A{"$beds", "$accommodates"}},
		}},
	}
	surplusBedProjection = bson.M{
		"_id":           1,
		"name":          1,
		"beds":          1,
		"bedrooms":      1,
		"accommodates":  1,
		"monthly_price": 1, // kept for the sort
	}
)

var requiredAmenities = bson.A{"Wifi", "Kitchen", "Pets allowed"}

// Six-plus-bedroom listings carrying the full required amenity set.
var largePetFriendlyPipeline = mongo.Pipeline{
	{{Key: "$match", Value: bson.M{
		"bedrooms":  bson.M{"$gte": 6},
		"amenities": bson.M{"$all": requiredAmenities},
	}}},
	{{Key: "$addFields", Value: bson.M{"price_num": toDouble("$price")}}},
	{{Key: "$sort", Value: bson.D{{Key: "price_num", Value: 1}}}},
	{{Key: "$project", Value: bson.M{
		"_id":           1,
		"name":          1,
		"price":         1,
		"amenity_count": bson.M{"$size": "$amenities"},
	}}},
}

// Mean review rating per government area, over quality-filtered listings only.
var areaRatingPipeline = mongo.Pipeline{
	{{Key: "$match", Value: bson.M{
		"number_of_reviews":                  bson.M{"$gte": 10},
		"review_scores.review_scores_rating": bson.M{"$gte": 80},
		"host.host_response_rate":            bson.M{"$gte": 90},
	}}},
	{{Key: "$group", Value: bson.M{
		"_id":        "$address.government_area",
		"avg_rating": bson.M{"$avg": "$review_scores.review_scores_rating"},
	}}},
	{{Key: "$project", Value: bson.M{
		"_id":             0,
		"government_area": "$_id",
		"avg_rating":      bson.M{"$round": bson.A{"$avg_rating", 2}},
	}}},
	{{Key: "$sort", Value: bson.D{{Key: "government_area", Value: 1}}}},
	{{Key: "$limit", Value: 5}},
}

// Price / cleaning-fee summary per property type for 15+ guest listings.
// Missing or null cleaning_fee counts as 0.0, it is not excluded.
var largeCapacityPipeline = mongo.Pipeline{
	{{Key: "$match", Value: bson.M{"accommodates": bson.M{"$gte": 15}}}},
	{{Key: "$addFields", Value: bson.M{
		"price_num":        toDouble("$price"),
		"cleaning_fee_num": toDouble(bson.M{"$ifNull": bson.A{"$cleaning_fee", 0.0}}),
	}}},
	{{Key: "$group", Value: bson.M{
		"_id":              "$property_type",
		"avg_price":        bson.M{"$avg": "$price_num"},
		"avg_cleaning_fee": bson.M{"$avg": "$cleaning_fee_num"},
		"listing_count":    bson.M{"$sum": 1},
	}}},
	{{Key: "$sort", Value: bson.D{{Key: "avg_price", Value: -1}}}},
	{{Key: "$limit", Value: 5}},
	{{Key: "$project", Value: bson.M{
		"_id":              0,
		"property_type":    "$_id",
		"avg_price":        bson.M{"$round": bson.A{"$avg_price", 2}},
		"avg_cleaning_fee": bson.M{"$round": bson.A{"$avg_cleaning_fee", 2}},
		"listing_count":    1,
	}}},
}
