package netlist

import "regexp"

// Splits a KiCad pin label into its alias tokens. Runs of parentheses,
// slashes, whitespace, and commas all delimit.
var pinTokenRE = regexp.MustCompile(`[^()/\s,]+`)

// UnnamedPin is the placeholder KiCad uses for pins without a name
const UnnamedPin = "~"

// splitPinTokens tokenizes a raw pin name or pin number field. Applied to
// a name like "A/B" it yields the alias set; applied to a number field
// like "1,3" it splits a gang pin into its physical numbers.
func splitPinTokens(raw string) []string {
	return pinTokenRE.FindAllString(raw, -1)
}

// canonicalPinName resolves the unnamed-pin placeholder to a synthetic
// P<number> name; every other name passes through untouched.
func canonicalPinName(name, number string) string {
	if name == UnnamedPin {
		return "P" + number
	}
	return name
}
