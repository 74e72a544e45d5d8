package classify

// Sectors lists the fourteen curated policy sectors the classifier can
// reassign a generic category into (glossary: "Policy sector").
var Sectors = []string{
	"Governance & Administration",
	"Economic Policy",
	"Technology Policy",
	"Healthcare Policy",
	"Environmental Policy",
	"Education Policy",
	"Agricultural Policy",
	"Energy Policy",
	"Defense & Security",
	"Constitutional & Legal",
	"Foreign Policy",
	"Science & Technology Policy",
	"Social Welfare Policy",
	"Urban Development Policy",
}

// sectorKeywords drives sector-specificity scoring and reassignment (spec
// §4.7). Expressed as data so adding a sector never touches the scoring
// code.
var sectorKeywords = map[string][]string{
	"Governance & Administration": {"cabinet", "parliament", "lok sabha", "rajya sabha", "civil service", "bureaucracy", "governance"},
	"Economic Policy":             {"budget", "fiscal", "gdp", "inflation", "rbi", "tax", "gst", "monetary policy", "economic survey"},
	"Technology Policy":           {"data protection", "digital", "internet", "trai", "meity", "telecom", "cybersecurity", "ai regulation"},
	"Healthcare Policy":           {"health ministry", "healthcare", "medical", "vaccine", "hospital", "who", "public health"},
	"Environmental Policy":        {"climate", "environment", "pollution", "forest", "emissions", "renewable", "sustainability"},
	"Education Policy":            {"education ministry", "school", "university", "ugc", "nep", "curriculum", "student"},
	"Agricultural Policy":         {"farmer", "agriculture", "msp", "crop", "irrigation", "farm bill", "mandi"},
	"Energy Policy":               {"energy ministry", "power grid", "coal", "renewable energy", "solar", "electricity", "oil and gas"},
	"Defense & Security":          {"defense ministry", "army", "navy", "air force", "border", "security forces", "terrorism"},
	"Constitutional & Legal":      {"supreme court", "high court", "judiciary", "constitution", "fundamental rights", "verdict", "writ petition"},
	"Foreign Policy":              {"ministry of external affairs", "diplomacy", "bilateral", "foreign policy", "embassy", "united nations"},
	"Science & Technology Policy": {"isro", "space mission", "research funding", "scientific", "technology transfer", "innovation policy"},
	"Social Welfare Policy":       {"welfare scheme", "social security", "pension", "poverty", "reservation", "subsidy", "rural development"},
	"Urban Development Policy":    {"urban development", "smart city", "municipal", "housing policy", "infrastructure", "metro rail"},
}
