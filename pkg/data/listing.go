package data

import (
	"sort"
	"time"
)

// Listing is one row of the AB_NYC_2019 dataset.
type Listing struct {
	ID                 int
	Name               string
	HostID             int
	HostName           string
	NeighbourhoodGroup string
	Neighbourhood      string
	Latitude           float64
	Longitude          float64
	RoomType           string
	Price              float64
	MinimumNights      int
	NumberOfReviews    int
	LastReview         *time.Time // nil means the listing has never been reviewed
	ReviewsPerMonth    float64    // NaN until the missing-value pass zero-fills it
	HostListingsCount  int
	Availability365    int

	// Derived columns, populated by the feature stage.
	PriceZScore float64
	PriceBin    string
}

// price_bin levels.
const (
	BinLow    = "low"
	BinMedium = "medium"
	BinHigh   = "high"
)

// Table is an ordered collection of listings. Pipeline stages treat a
// Table as immutable and return a fresh snapshot.
type Table []Listing

// Prices returns the price column in row order.
func (t Table) Prices() []float64 {
	out := make([]float64, len(t))
	for i, l := range t {
		out[i] = l.Price
	}
	return out
}

// PricesByGroup splits the price column by neighbourhood group. Group
// names come back sorted so chart and test output is stable.
func (t Table) PricesByGroup() ([]string, [][]float64) {
	byGroup := make(map[string][]float64)
	for _, l := range t {
		byGroup[l.NeighbourhoodGroup] = append(byGroup[l.NeighbourhoodGroup], l.Price)
	}
	names := make([]string, 0, len(byGroup))
	for g := range byGroup {
		names = append(names, g)
	}
	sort.Strings(names)
	prices := make([][]float64, len(names))
	for i, g := range names {
		prices[i] = byGroup[g]
	}
	return names, prices
}

// MeanPriceByGroupRoom aggregates mean price per neighbourhood group and
// room type. means is indexed [roomType][group]; a combination with no
// listings yields 0.
func (t Table) MeanPriceByGroupRoom() (groups, roomTypes []string, means [][]float64) {
	type key struct{ group, room string }
	sums := make(map[key]float64)
	counts := make(map[key]int)
	groupSet := make(map[string]struct{})
	roomSet := make(map[string]struct{})
	for _, l := range t {
		k := key{l.NeighbourhoodGroup, l.RoomType}
		sums[k] += l.Price
		counts[k]++
		groupSet[l.NeighbourhoodGroup] = struct{}{}
		roomSet[l.RoomType] = struct{}{}
	}
	for g := range groupSet {
		groups = append(groups, g)
	}
	for r := range roomSet {
		roomTypes = append(roomTypes, r)
	}
	sort.Strings(groups)
	sort.Strings(roomTypes)

	means = make([][]float64, len(roomTypes))
	for j, rt := range roomTypes {
		means[j] = make([]float64, len(groups))
		for i, g := range groups {
			k := key{g, rt}
			if c := counts[k]; c > 0 {
				means[j][i] = sums[k] / float64(c)
			}
		}
	}
	return groups, roomTypes, means
}
