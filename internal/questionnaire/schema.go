package questionnaire

// The questionnaire schema: one OptionSet per fixed-choice question, each
// holding the exact label text a submission must carry. Labels double as the
// wire and storage representation, so changing one is a schema change.

// PlatformOthers marks the free-form escape hatch in the platform question;
// when selected, other_platform_name carries the write-in value.
const PlatformOthers = "Others"

// OptionSet is a closed set of answer labels for a fixed-choice question.
type OptionSet struct {
	labels  []string
	members map[string]struct{}
}

func newOptionSet(labels ...string) OptionSet {
	members := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		members[l] = struct{}{}
	}
	return OptionSet{labels: labels, members: members}
}

// Contains reports whether label is exactly one of the set's options.
// Matching is case-sensitive with no normalization.
func (s OptionSet) Contains(label string) bool {
	_, ok := s.members[label]
	return ok
}

// Labels returns the options in questionnaire order.
func (s OptionSet) Labels() []string {
	out := make([]string, len(s.labels))
	copy(out, s.labels)
	return out
}

// Len returns the number of options in the set.
func (s OptionSet) Len() int {
	return len(s.labels)
}

var (
	AgeGroups = newOptionSet(
		"Below 20",
		"20–30",
		"31–40",
		"41–50",
		"Above 50",
	)

	HouseholdTypes = newOptionSet(
		"Nuclear family",
		"Joint family",
		"Living alone",
	)

	// Platforms is the recommended vocabulary for platforms_used; the
	// validator does not enforce membership because of PlatformOthers.
	Platforms = newOptionSet(
		"Zepto",
		"Blinkit",
		"Swiggy Instamart",
		"BigBasket Now",
		PlatformOthers,
	)

	UsageFrequencies = newOptionSet(
		"Daily",
		"2–3 times a week",
		"Once a week",
		"Occasionally",
		"Rarely",
	)

	OrderValues = newOptionSet(
		"Below ₹300",
		"₹300–₹600",
		"₹600–₹1000",
		"Above ₹1000",
	)

	TimeSavedBrackets = newOptionSet(
		"Less than 15 minutes",
		"15–30 minutes",
		"30–60 minutes",
		"More than 1 hour",
	)

	// ProductCategories is the recommended vocabulary for product_categories;
	// like Platforms it is deliberately not enforced.
	ProductCategories = newOptionSet(
		"Groceries & staples",
		"Dairy & bakery",
		"Snacks & beverages",
		"Personal care items",
		"Emergency / last-minute items",
		"Electronics & accessories",
		"Household essentials",
		"Stationery & office supplies",
		"Medicines & health products",
		"Pet supplies",
	)

	PurchaseFrequencyChanges = newOptionSet(
		"Increasing significantly",
		"Increasing slightly",
		"No change",
		"Reducing",
	)

	AgreementLevels = newOptionSet(
		"Strongly agree",
		"Agree",
		"Neutral",
		"Disagree",
		"Strongly disagree",
	)

	PriceComparisons = newOptionSet(
		"Much higher",
		"Slightly higher",
		"Almost the same",
		"Slightly lower",
		"Much lower",
	)

	LocalShopsImpacts = newOptionSet(
		"Yes, significantly",
		"Yes, to some extent",
		"No change",
		"Increased visits to local shops",
	)

	ImportanceLevels = newOptionSet(
		"Very Important",
		"Important",
		"Neutral",
		"Not Important",
	)

	SatisfactionLevels = newOptionSet(
		"Very satisfied",
		"Satisfied",
		"Neutral",
		"Dissatisfied",
		"Very dissatisfied",
	)

	FutureUsageIntents = newOptionSet(
		"Yes",
		"No",
		"Not sure",
	)
)

// Bounds for the 1-5 price sensitivity rating.
const (
	PriceSensitivityMin = 1
	PriceSensitivityMax = 5
)
