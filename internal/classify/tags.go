package classify

// AssignTags applies the tag-assignment rule table (spec §4.7): a personal-
// finance short-circuit, then a policy-context gate, then a rule-table
// scan with a default fallback, deduplicated and capped at four tags.
func AssignTags(in Input, s Score) []string {
	t := in.text()

	if anyHit(t, personalFinanceIndicators) {
		return []string{"Personal Finance"}
	}
	if !anyHit(t, policyContextIndicators) {
		return []string{"General News"}
	}

	var tags []string
	for _, rule := range tagRules {
		if anyHit(t, rule.keywords) {
			tags = append(tags, rule.tag)
		}
	}
	if len(tags) == 0 {
		tags = append(tags, "Policy Development")
	}

	return dedupeCap(tags, 4)
}

// dedupeCap removes duplicate tags, preserving first occurrence, and caps
// the result at max entries.
func dedupeCap(tags []string, max int) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
		if len(out) == max {
			break
		}
	}
	return out
}
