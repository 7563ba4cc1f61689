package domain

import "strings"

var basinCodes = []string{"AL", "EP", "CP", "WP", "IO", "SH", "SL"}

// ordinalWords are spelled-out storm sequence numbers used as placeholder
// names before a storm is christened.
var ordinalWords = map[string]bool{
	"ONE": true, "TWO": true, "THREE": true, "FOUR": true, "FIVE": true,
	"SIX": true, "SEVEN": true, "EIGHT": true, "NINE": true, "TEN": true,
	"ELEVEN": true, "TWELVE": true, "THIRTEEN": true, "FOURTEEN": true,
	"FIFTEEN": true, "SIXTEEN": true, "SEVENTEEN": true, "EIGHTEEN": true,
	"NINETEEN": true, "TWENTY": true,
}

// InferStormName guesses a storm's name from raw advisory text by majority
// vote over the name tokens of every line. Basin codes, digit-bearing tokens,
// and spelled-out ordinals are excluded; "INVEST" loses to any real name.
// When multiple names survive, a shared basin-suffix-stripped form wins, else
// the last candidate seen. This is a documented heuristic: advisory files mix
// placeholder and final names and there is no authoritative name field.
func InferStormName(raw []byte) string {
	var order []string
	seen := map[string]bool{}

	for _, line := range strings.Split(string(raw), "\n") {
		tokens := strings.Fields(strings.TrimSpace(line))
		if len(tokens) <= fieldStormName {
			continue
		}
		cand := strings.ToUpper(strings.TrimRight(tokens[fieldStormName], ","))
		if cand == "" || seen[cand] {
			continue
		}
		seen[cand] = true
		order = append(order, cand)
	}

	names := order[:0:0]
	for _, cand := range order {
		if isBasinCode(cand) || containsDigit(cand) || ordinalWords[cand] {
			continue
		}
		names = append(names, cand)
	}

	switch {
	case len(names) == 0:
		return "Disturbance"
	case len(names) == 1 && names[0] == "INVEST":
		return "Invest"
	}

	// A real name outranks the INVEST placeholder.
	kept := names[:0:0]
	for _, n := range names {
		if n != "INVEST" {
			kept = append(kept, n)
		}
	}
	if len(kept) == 1 {
		return titleCase(kept[0])
	}

	// Multiple candidates: if stripping a trailing basin code collapses them
	// to one form, use it; otherwise take the last candidate encountered.
	cleaned := map[string]bool{}
	var form string
	for _, n := range kept {
		c := stripBasinSuffix(n)
		cleaned[c] = true
		form = c
	}
	if len(cleaned) == 1 {
		return titleCase(form)
	}
	return titleCase(kept[len(kept)-1])
}

func stripBasinSuffix(name string) string {
	for _, code := range basinCodes {
		if strings.HasSuffix(name, code) {
			base := strings.TrimSpace(strings.TrimSuffix(name, code))
			if base != "" && isAlpha(base) {
				return base
			}
		}
	}
	return name
}

func isBasinCode(s string) bool {
	for _, code := range basinCodes {
		if s == code {
			return true
		}
	}
	return false
}

func containsDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}

func isAlpha(s string) bool {
	for _, r := range s {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return s != ""
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
