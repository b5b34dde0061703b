package commission

var tiers = []Tier{
	{
		ID:          "bronze",
		Name:        "Bronze",
		Price:       "$350",
		Description: "Perfect for smaller spaces or gifts",
		Features: []string{
			`Up to 12" x 16" canvas`,
			"Single subject or simple composition",
			"2 revision rounds",
			"Digital preview before shipping",
			"Certificate of authenticity",
		},
		DeliveryTime: "2-3 weeks",
	},
	{
		ID:          "silver",
		Name:        "Silver",
		Price:       "$750",
		Description: "Our most popular choice",
		Features: []string{
			`Up to 24" x 36" canvas`,
			"Complex compositions welcome",
			"4 revision rounds",
			"Progress updates throughout",
			"Premium packaging & shipping",
			"Certificate of authenticity",
		},
		DeliveryTime: "3-4 weeks",
		Popular:      true,
	},
	{
		ID:          "gold",
		Name:        "Gold",
		Price:       "$1,500+",
		Description: "Statement pieces & large installations",
		Features: []string{
			`Up to 48" x 60" or custom size`,
			"Multi-panel or installation work",
			"Unlimited revisions",
			"In-person consultation available",
			"White glove delivery & installation",
			"Lifetime authenticity guarantee",
		},
		DeliveryTime: "4-8 weeks",
	},
}

// Tiers returns the fixed commission offerings.
func Tiers() []Tier {
	out := make([]Tier, len(tiers))
	copy(out, tiers)
	return out
}

// TierByID looks up a tier by its id.
func TierByID(id string) (Tier, bool) {
	for _, t := range tiers {
		if t.ID == id {
			return t, true
		}
	}
	return Tier{}, false
}
