package classifier

import "regexp"

// Category names. Declaration order doubles as the tie-break order for
// classification, so it is kept as an explicit slice rather than map keys.
const (
	CategoryTransport   = "transport"
	CategoryEnergy      = "energy"
	CategoryWaste       = "waste"
	CategoryWater       = "water"
	CategoryConsumption = "consumption"
	CategoryFood        = "food"
	CategoryOther       = "other"
)

// Categories lists every matchable category in tie-break order.
// CategoryOther is the fallback and never matched directly.
var Categories = []string{
	CategoryTransport,
	CategoryEnergy,
	CategoryWaste,
	CategoryWater,
	CategoryConsumption,
	CategoryFood,
}

// categoryRule holds the classification signals for one category. Keywords
// are matched as plain substrings against lower-cased text and score 1 each;
// patterns encode more specific phrasing and score 2 each.
type categoryRule struct {
	category string
	keywords []string
	patterns []*regexp.Regexp
}

var rules = []categoryRule{
	{
		category: CategoryTransport,
		keywords: []string{
			"bus", "train", "subway", "metro", "public transport", "walk", "walking",
			"bike", "bicycle", "cycling", "carpool", "rideshare", "electric car",
			"hybrid", "scooter", "skateboard", "work from home", "remote work",
			"telecommute", "no driving", "stayed home",
		},
		patterns: compilePatterns(
			`took.*bus`, `rode.*bike`, `walked.*work`, `carpooled.*with`,
			`used.*public.*transport`, `avoided.*driving`, `no.*car.*today`,
		),
	},
	{
		category: CategoryEnergy,
		keywords: []string{
			"lights", "electricity", "power", "solar", "energy", "LED", "efficient",
			"thermostat", "heating", "cooling", "unplug", "battery", "renewable",
			"turned off", "switched off", "energy saving", "power strip",
		},
		patterns: compilePatterns(
			`turned.*off.*lights`, `unplugged.*devices`, `used.*solar`,
			`lowered.*thermostat`, `energy.*efficient`, `saved.*electricity`,
		),
	},
	{
		category: CategoryWaste,
		keywords: []string{
			"recycle", "recycling", "compost", "composting", "reuse", "reusable",
			"bag", "bottle", "container", "plastic", "paper", "glass", "metal",
			"trash", "garbage", "waste", "reduce", "minimal packaging",
		},
		patterns: compilePatterns(
			`recycled.*bottles`, `composted.*food`, `reusable.*bag`,
			`avoided.*plastic`, `brought.*own.*bag`, `no.*disposable`,
		),
	},
	{
		category: CategoryWater,
		keywords: []string{
			"water", "shower", "tap", "faucet", "leak", "rain", "collected",
			"conservation", "efficient", "low flow", "drought", "watering",
		},
		patterns: compilePatterns(
			`shorter.*shower`, `fixed.*leak`, `collected.*rainwater`,
			`watered.*garden.*with.*greywater`, `turned.*off.*tap`,
		),
	},
	{
		category: CategoryConsumption,
		keywords: []string{
			"local", "organic", "sustainable", "eco-friendly", "green product",
			"second-hand", "thrift", "used", "repair", "fix", "vintage",
			"handmade", "artisan", "fair trade", "ethical",
		},
		patterns: compilePatterns(
			`bought.*local`, `purchased.*organic`, `thrift.*shopping`,
			`repaired.*instead.*buying`, `second.*hand.*store`,
		),
	},
	{
		category: CategoryFood,
		keywords: []string{
			"vegetarian", "vegan", "plant-based", "meatless", "local food",
			"farmers market", "homegrown", "garden", "grew", "organic food",
			"seasonal", "no meat", "plant protein", "vegetables", "fruits",
		},
		patterns: compilePatterns(
			`ate.*vegetarian`, `cooked.*plant.*based`, `meatless.*monday`,
			`farmers.*market`, `grew.*own.*vegetables`, `no.*meat.*today`,
		),
	},
}

// descriptions maps each category to its human-readable name.
var descriptions = map[string]string{
	CategoryTransport:   "Transportation & Mobility",
	CategoryEnergy:      "Energy Conservation",
	CategoryWaste:       "Waste Reduction & Recycling",
	CategoryWater:       "Water Conservation",
	CategoryConsumption: "Sustainable Consumption",
	CategoryFood:        "Food & Diet",
	CategoryOther:       "Other Environmental Actions",
}

// missingCategoryHints is the per-category message used when a category has
// never been logged.
var missingCategoryHints = map[string]string{
	CategoryTransport:   "Try logging transportation habits like taking public transit or walking.",
	CategoryEnergy:      "Consider tracking energy conservation actions like turning off lights.",
	CategoryWaste:       "Think about waste reduction habits like using reusable bags or recycling.",
	CategoryWater:       "Try water conservation habits like shorter showers or fixing leaks.",
	CategoryConsumption: "Consider sustainable consumption choices like buying local or second-hand.",
	CategoryFood:        "Explore food-related habits like eating plant-based meals or shopping at farmers markets.",
}

// onboardingHints is returned when no habits have been logged yet.
var onboardingHints = []string{
	"Start logging your green habits to get personalized suggestions!",
	"Try focusing on transportation choices like walking or public transit.",
	"Consider energy conservation habits like turning off lights.",
}

func compilePatterns(exprs ...string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		patterns = append(patterns, regexp.MustCompile(expr))
	}
	return patterns
}
