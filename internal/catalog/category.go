package catalog

import "regexp"

type categoryRule struct {
	pattern *regexp.Regexp
	label   string
}

// categoryRules is an ordered decision list evaluated top to bottom; the
// first matching rule wins. The order is part of the observable contract
// (a description matching both "bumper" and "bracket" is a Bumper), so do
// not reorder.
var categoryRules = []categoryRule{
	{regexp.MustCompile(`(?i)\bbumper\b`), "Bumpers"},
	{regexp.MustCompile(`(?i)\b(headlamp|headlight|taillight|tail lamp|lamp|light)\b`), "Lamps"},
	{regexp.MustCompile(`(?i)\b(glass|windshield|door glass|back glass)\b`), "Glass"},
	{regexp.MustCompile(`(?i)\bclip\b|\bretainer\b`), "Clips"},
	{regexp.MustCompile(`(?i)\bbracket\b`), "Brackets"},
	{regexp.MustCompile(`(?i)\b(panel|fender|hood|door|quarter|decklid|tailgate|liftgate)\b`), "Panels"},
	{regexp.MustCompile(`(?i)\b(seat|trim|interior|dash|console)\b`), "Interior"},
	{regexp.MustCompile(`(?i)\b(wire|sensor|module|harness|relay|switch)\b`), "Electrical"},
	{regexp.MustCompile(`(?i)\b(engine|radiator|condenser|compressor|mechanical|pump|transmission)\b`), "Mechanical"},
}

// InferCategory returns a category label for a part description, or false
// when the description is empty or matches no rule. Only used when the
// source row supplies no explicit category.
func InferCategory(desc string) (string, bool) {
	if desc == "" {
		return "", false
	}
	for _, rule := range categoryRules {
		if rule.pattern.MatchString(desc) {
			return rule.label, true
		}
	}
	return "", false
}
