package dataprep

import (
	"math"
	"testing"

	"github.com/Ricardojnf33/project1-airbnb-nyc/pkg/data"
)

func listing(group, room string, price, rpm float64) data.Listing {
	return data.Listing{
		NeighbourhoodGroup: group,
		RoomType:           room,
		Price:              price,
		ReviewsPerMonth:    rpm,
	}
}

func TestCleanMissingDropsRequiredCategoricals(t *testing.T) {
	nan := math.NaN()
	in := data.Table{
		listing("Brooklyn", "Private room", 80, 1.2),
		listing("", "Private room", 90, 0.5),
		listing("Manhattan", "NaN", 100, nan),
		listing("Queens", "Entire home/apt", 120, nan),
		listing("NA", "Shared room", 60, 2.0),
	}
	out, err := CleanMissing(in)
	if err != nil {
		t.Fatalf("CleanMissing: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d rows, want 2", len(out))
	}
	for _, l := range out {
		if isMissing(l.NeighbourhoodGroup) || isMissing(l.RoomType) {
			t.Errorf("row %+v still has a missing required categorical", l)
		}
		if math.IsNaN(l.ReviewsPerMonth) {
			t.Errorf("row %+v still has NaN reviews_per_month", l)
		}
	}
}

func TestCleanMissingZeroFillsReviews(t *testing.T) {
	in := data.Table{
		listing("Bronx", "Private room", 55, math.NaN()),
		listing("Bronx", "Private room", 65, 3.5),
	}
	out, err := CleanMissing(in)
	if err != nil {
		t.Fatalf("CleanMissing: %v", err)
	}
	if out[0].ReviewsPerMonth != 0 {
		t.Errorf("missing reviews_per_month = %v, want exactly 0", out[0].ReviewsPerMonth)
	}
	if out[1].ReviewsPerMonth != 3.5 {
		t.Errorf("present reviews_per_month changed: %v", out[1].ReviewsPerMonth)
	}
}

func TestCleanMissingLeavesNamesAlone(t *testing.T) {
	in := data.Table{{
		Name:               "",
		HostName:           "NA",
		NeighbourhoodGroup: "Manhattan",
		RoomType:           "Entire home/apt",
		Price:              150,
		ReviewsPerMonth:    1,
	}}
	out, err := CleanMissing(in)
	if err != nil {
		t.Fatalf("CleanMissing: %v", err)
	}
	if len(out) != 1 || out[0].Name != "" || out[0].HostName != "NA" {
		t.Error("name and host_name must be left untouched")
	}
}
