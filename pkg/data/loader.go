package data

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

const dateLayout = "2006-01-02"

// LoadCSV reads the listings dataset into a Table. Numeric columns are
// coerced to floats, so an empty cell surfaces as NaN; last_review is
// parsed as a date and anything unparseable counts as "never reviewed".
// A required column missing from the file is an error.
func LoadCSV(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	df := dataframe.ReadCSV(f, dataframe.WithTypes(map[string]series.Type{
		"id":                             series.Float,
		"host_id":                        series.Float,
		"latitude":                       series.Float,
		"longitude":                      series.Float,
		"price":                          series.Float,
		"minimum_nights":                 series.Float,
		"number_of_reviews":              series.Float,
		"reviews_per_month":              series.Float,
		"calculated_host_listings_count": series.Float,
		"availability_365":               series.Float,
		"name":                           series.String,
		"host_name":                      series.String,
		"neighbourhood_group":            series.String,
		"neighbourhood":                  series.String,
		"room_type":                      series.String,
		"last_review":                    series.String,
	}))
	if df.Err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, df.Err)
	}

	var colErr error
	fcol := func(name string) []float64 {
		s := df.Col(name)
		if s.Err != nil {
			if colErr == nil {
				colErr = fmt.Errorf("column %s: %w", name, s.Err)
			}
			return nil
		}
		return s.Float()
	}
	scol := func(name string) []string {
		s := df.Col(name)
		if s.Err != nil {
			if colErr == nil {
				colErr = fmt.Errorf("column %s: %w", name, s.Err)
			}
			return nil
		}
		return s.Records()
	}

	ids := fcol("id")
	names := scol("name")
	hostIDs := fcol("host_id")
	hostNames := scol("host_name")
	groups := scol("neighbourhood_group")
	hoods := scol("neighbourhood")
	lats := fcol("latitude")
	lons := fcol("longitude")
	roomTypes := scol("room_type")
	prices := fcol("price")
	minNights := fcol("minimum_nights")
	numReviews := fcol("number_of_reviews")
	lastReviews := scol("last_review")
	reviewsPM := fcol("reviews_per_month")
	hostCounts := fcol("calculated_host_listings_count")
	avail := fcol("availability_365")
	if colErr != nil {
		return nil, colErr
	}

	t := make(Table, 0, df.Nrow())
	for i := 0; i < df.Nrow(); i++ {
		l := Listing{
			ID:                 asInt(ids[i]),
			Name:               names[i],
			HostID:             asInt(hostIDs[i]),
			HostName:           hostNames[i],
			NeighbourhoodGroup: groups[i],
			Neighbourhood:      hoods[i],
			Latitude:           lats[i],
			Longitude:          lons[i],
			RoomType:           roomTypes[i],
			Price:              prices[i],
			MinimumNights:      asInt(minNights[i]),
			NumberOfReviews:    asInt(numReviews[i]),
			ReviewsPerMonth:    reviewsPM[i],
			HostListingsCount:  asInt(hostCounts[i]),
			Availability365:    asInt(avail[i]),
		}
		if ts, err := time.Parse(dateLayout, lastReviews[i]); err == nil {
			l.LastReview = &ts
		}
		t = append(t, l)
	}
	return t, nil
}

func asInt(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	return int(v)
}
