package suggest

// Difficulty tiers, in progression order.
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// Synthetic suggestion categories that live outside the classifier's set.
const (
	CategoryChallenge = "challenge"
	CategorySeasonal  = "seasonal"
)

// catalog holds the per-category, per-tier suggestion texts.
var catalog = map[string]map[string][]string{
	"transport": {
		DifficultyBeginner: {
			"Walk or bike for trips under 1 mile instead of driving",
			"Try carpooling with a colleague or friend once this week",
			"Use public transportation for at least one trip today",
			"Combine multiple errands into one trip to reduce driving",
			"Work from home one day this week if possible",
		},
		DifficultyIntermediate: {
			"Plan a car-free day and use only walking, biking, or public transport",
			"Join or organize a carpool group for your regular commute",
			"Try an electric scooter or bike-share program",
			"Walk or bike to nearby restaurants instead of driving",
			"Use video calls instead of traveling for short meetings",
		},
		DifficultyAdvanced: {
			"Go car-free for an entire week and explore alternative transportation",
			"Calculate your transportation carbon footprint and set reduction goals",
			"Advocate for better bike lanes or public transport in your community",
			"Consider switching to an electric or hybrid vehicle",
			"Plan a local vacation that doesn't require flying",
		},
	},
	"energy": {
		DifficultyBeginner: {
			"Turn off lights when leaving a room",
			"Unplug devices and chargers when not in use",
			"Set your thermostat 2 degrees lower in winter",
			"Use a programmable thermostat to optimize heating/cooling",
			"Switch to LED light bulbs in your most-used rooms",
		},
		DifficultyIntermediate: {
			"Air dry your clothes instead of using the dryer",
			"Use a power strip to easily turn off multiple devices at once",
			"Seal air leaks around windows and doors",
			"Use ceiling fans to reduce air conditioning needs",
			"Only run dishwashers and washing machines with full loads",
		},
		DifficultyAdvanced: {
			"Install a smart thermostat to optimize energy usage",
			"Consider switching to renewable energy from your utility provider",
			"Install solar panels or explore community solar options",
			"Conduct a home energy audit to identify efficiency improvements",
			"Upgrade to energy-efficient appliances when replacing old ones",
		},
	},
	"waste": {
		DifficultyBeginner: {
			"Bring a reusable bag when grocery shopping",
			"Start recycling paper, plastic, and glass containers",
			"Use a reusable water bottle instead of buying bottled water",
			"Repurpose glass jars for food storage",
			"Donate items you no longer need instead of throwing them away",
		},
		DifficultyIntermediate: {
			"Start composting food scraps and yard waste",
			"Buy products with minimal or recyclable packaging",
			"Use both sides of paper before recycling it",
			"Repair items instead of immediately replacing them",
			"Organize a clothing swap with friends or neighbors",
		},
		DifficultyAdvanced: {
			"Aim for zero waste by refusing, reducing, reusing, and recycling",
			"Make your own cleaning products from natural ingredients",
			"Start vermicomposting (composting with worms)",
			"Buy only what you need and choose quality over quantity",
			"Participate in or organize community cleanup events",
		},
	},
	"water": {
		DifficultyBeginner: {
			"Take shorter showers (aim for 5 minutes or less)",
			"Turn off the tap while brushing teeth or washing dishes",
			"Fix any leaky faucets or running toilets promptly",
			"Only run the washing machine with full loads",
			"Use a dishwasher instead of hand washing when possible",
		},
		DifficultyIntermediate: {
			"Install low-flow showerheads and faucet aerators",
			"Collect rainwater for watering plants and garden",
			"Use drought-resistant plants in your landscaping",
			"Take navy showers (water on to wet, off to soap, on to rinse)",
			"Reuse greywater from showers for watering plants",
		},
		DifficultyAdvanced: {
			"Install a greywater recycling system for your home",
			"Use permeable paving materials to reduce runoff",
			"Create a rain garden to manage stormwater naturally",
			"Install a smart irrigation system that adjusts to weather",
			"Advocate for water conservation policies in your community",
		},
	},
	"consumption": {
		DifficultyBeginner: {
			"Buy one item from a local farmer's market or local business",
			"Choose products made from recycled materials",
			"Buy only what you need and avoid impulse purchases",
			"Look for the Energy Star label when buying appliances",
			"Choose quality items that will last longer over cheap alternatives",
		},
		DifficultyIntermediate: {
			"Shop at thrift stores or consignment shops for clothing",
			"Buy organic or sustainably produced food when possible",
			"Support businesses with strong environmental commitments",
			"Choose digital receipts and bills instead of paper",
			"Research a company's sustainability practices before purchasing",
		},
		DifficultyAdvanced: {
			"Adopt a minimalist lifestyle and buy only essentials",
			"Invest in renewable energy or sustainable companies",
			"Support local and regenerative agriculture practices",
			"Choose products with closed-loop or circular design",
			"Advocate for sustainable business practices in your community",
		},
	},
	"food": {
		DifficultyBeginner: {
			"Have one plant-based meal today",
			"Buy one locally grown fruit or vegetable",
			"Reduce food waste by meal planning for the week",
			"Start or expand an herb garden (even on a windowsill)",
			"Choose organic options for the 'dirty dozen' produce items",
		},
		DifficultyIntermediate: {
			"Try 'Meatless Monday' or have several plant-based meals this week",
			"Compost food scraps to reduce waste and create fertilizer",
			"Shop at a farmer's market for seasonal, local produce",
			"Grow your own vegetables in a garden or containers",
			"Preserve seasonal produce by freezing, canning, or dehydrating",
		},
		DifficultyAdvanced: {
			"Adopt a predominantly plant-based diet",
			"Source most of your food from local and organic producers",
			"Practice regenerative eating by supporting sustainable farming",
			"Participate in community supported agriculture (CSA)",
			"Teach others about sustainable food choices and preparation",
		},
	},
}

// catalogCategories lists catalog keys in the classifier's declaration
// order, so selection over map data stays deterministic.
var catalogCategories = []string{"transport", "energy", "waste", "water", "consumption", "food"}

// starterCategories seed the very first suggestions for an empty log.
var starterCategories = []string{"transport", "energy", "waste", "food"}

// seasonalCatalog holds contextual suggestions per season.
var seasonalCatalog = map[string][]string{
	"spring": {
		"Start a vegetable garden with spring crops like lettuce and peas",
		"Use a rain barrel to collect water for gardening",
		"Walk or bike more as the weather gets warmer",
		"Spring clean by donating items you no longer need",
	},
	"summer": {
		"Use fans instead of air conditioning when possible",
		"Hang dry clothes outside in the sunshine",
		"Eat more fresh, local produce that's in season",
		"Take advantage of longer days to walk or bike more",
	},
	"fall": {
		"Compost fallen leaves and plant matter",
		"Preserve seasonal produce by canning or freezing",
		"Adjust your thermostat as temperatures cool down",
		"Buy local apples, squash, and other fall crops",
	},
	"winter": {
		"Lower your thermostat and wear warmer clothes indoors",
		"Use draft stoppers to keep warm air in",
		"Plan meals using preserved foods from summer and fall",
		"Consider indoor composting if outdoor composting isn't possible",
	},
}

// challenges are multi-day commitments offered to engaged users.
var challenges = []string{
	"Zero Waste Week: Try to produce no landfill waste for 7 days",
	"Car-Free Week: Use only walking, biking, and public transport",
	"Energy Diet: Reduce your electricity usage by 20% this month",
	"Local Food Challenge: Eat only locally sourced food for a week",
	"Plant-Based Week: Eat only plant-based meals for 7 days",
	"Repair Week: Fix or repurpose items instead of buying new ones",
	"Water Conservation Challenge: Reduce water usage by 25% this month",
	"Plastic-Free Week: Avoid single-use plastics for 7 days",
}

// explanationKeywords map suggestion text back to a category for Explain.
var explanationKeywords = map[string][]string{
	"transport":   {"walk", "bike", "bus", "train", "drive", "car", "transport", "commute"},
	"energy":      {"energy", "electricity", "power", "lights", "thermostat", "heating", "cooling"},
	"waste":       {"waste", "recycle", "compost", "reuse", "bag", "plastic", "trash"},
	"water":       {"water", "shower", "tap", "leak", "rain", "irrigation"},
	"consumption": {"buy", "purchase", "local", "organic", "sustainable", "shop"},
	"food":        {"food", "eat", "plant", "meat", "vegetarian", "vegan", "organic", "local"},
}

// explanations are the canned rationales returned by Explain.
var explanations = map[string]string{
	"transport":   "Transportation is one of the largest sources of greenhouse gas emissions. Choosing sustainable transport options like walking, biking, or public transit significantly reduces your carbon footprint.",
	"energy":      "Energy consumption in homes accounts for a significant portion of carbon emissions. Reducing energy use and switching to renewable sources helps combat climate change.",
	"waste":       "Waste reduction through reuse, recycling, and composting helps conserve natural resources and reduces pollution from landfills and incineration.",
	"water":       "Water conservation helps protect this precious resource and reduces energy consumption required for water processing and heating.",
	"consumption": "Conscious consumption choices support sustainable businesses and reduce the environmental impact of manufacturing and transportation.",
	"food":        "Food production has major environmental impacts. Plant-based and local foods typically require less water, land, and energy while producing fewer emissions.",
}

const fallbackExplanation = "This habit helps reduce your environmental impact and contributes to a more sustainable lifestyle."
