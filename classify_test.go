package happyhourd

import "testing"

func TestHasDrinkSpecials(t *testing.T) {
	tests := []struct {
		name string
		v    *Venue
		want bool
	}{
		{"deal text term", &Venue{DealText: "$5 house cocktails all night"}, true},
		{"case folded", &Venue{DealText: "HALF PRICE DRAFT Beer"}, true},
		{"tag list fallback", &Venue{DealText: "great vibes", Drinks: []string{"house red"}}, true},
		{"food only text", &Venue{DealText: "$3 tacos"}, false},
		{"empty", &Venue{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasDrinkSpecials(tt.v); got != tt.want {
				t.Errorf("HasDrinkSpecials = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHasFoodSpecials(t *testing.T) {
	tests := []struct {
		name string
		v    *Venue
		want bool
	}{
		{"deal text term", &Venue{DealText: "$3 tacos and half-off wings"}, true},
		{"case folded", &Venue{DealText: "Free NACHOS with any order"}, true},
		{"tag list fallback", &Venue{DealText: "cheap pours", Food: []string{"dumplings"}}, true},
		{"drinks only text", &Venue{DealText: "$4 well drinks"}, false},
		{"empty", &Venue{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasFoodSpecials(tt.v); got != tt.want {
				t.Errorf("HasFoodSpecials = %v, want %v", got, tt.want)
			}
		})
	}
}

// The classifiers are independent: a venue can be both, either, or
// neither.
func TestClassifierIndependence(t *testing.T) {
	both := &Venue{DealText: "$5 margaritas and $3 tacos"}
	if !HasDrinkSpecials(both) || !HasFoodSpecials(both) {
		t.Error("expected both classifiers to match")
	}

	neither := &Venue{DealText: "live music every night"}
	if HasDrinkSpecials(neither) || HasFoodSpecials(neither) {
		t.Error("expected neither classifier to match")
	}
}
