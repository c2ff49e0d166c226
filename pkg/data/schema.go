package data

// Columns lists the raw CSV columns in file order.
var Columns = []string{
	"id", "name", "host_id", "host_name", "neighbourhood_group",
	"neighbourhood", "latitude", "longitude", "room_type", "price",
	"minimum_nights", "number_of_reviews", "last_review",
	"reviews_per_month", "calculated_host_listings_count", "availability_365",
}

// NumericColumn pairs a column name with its values in row order.
type NumericColumn struct {
	Name   string
	Values []float64
}

// NumericColumns extracts the numeric columns of interest for the summary
// report, including the derived price_zscore.
func (t Table) NumericColumns() []NumericColumn {
	cols := []struct {
		name string
		get  func(Listing) float64
	}{
		{"id", func(l Listing) float64 { return float64(l.ID) }},
		{"host_id", func(l Listing) float64 { return float64(l.HostID) }},
		{"latitude", func(l Listing) float64 { return l.Latitude }},
		{"longitude", func(l Listing) float64 { return l.Longitude }},
		{"price", func(l Listing) float64 { return l.Price }},
		{"minimum_nights", func(l Listing) float64 { return float64(l.MinimumNights) }},
		{"number_of_reviews", func(l Listing) float64 { return float64(l.NumberOfReviews) }},
		{"reviews_per_month", func(l Listing) float64 { return l.ReviewsPerMonth }},
		{"calculated_host_listings_count", func(l Listing) float64 { return float64(l.HostListingsCount) }},
		{"availability_365", func(l Listing) float64 { return float64(l.Availability365) }},
		{"price_zscore", func(l Listing) float64 { return l.PriceZScore }},
	}
	out := make([]NumericColumn, len(cols))
	for i, c := range cols {
		vals := make([]float64, len(t))
		for j, l := range t {
			vals[j] = c.get(l)
		}
		out[i] = NumericColumn{Name: c.name, Values: vals}
	}
	return out
}
