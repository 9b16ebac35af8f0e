package lint

import (
	"sort"
	"strings"

	"github.com/yaklabco/goswiftlint/pkg/swast"
)

// DisabledRegion is a source range in which violations and edits are
// suppressed for a set of rules. A nil rule set applies to all rules.
// Regions for the same rule scope never overlap; they are derived once per
// text version and shared by the collector and the correction engine.
type DisabledRegion struct {
	// Start is the byte offset where suppression begins (inclusive).
	Start int

	// End is the byte offset where suppression ends (exclusive).
	End int

	// Rules lists the rule identifiers this region applies to.
	// Nil means the region applies to every rule.
	Rules []string
}

// Covers returns true if the region suppresses the given rule at offset.
func (r DisabledRegion) Covers(ruleID string, offset int) bool {
	if offset < r.Start || offset >= r.End {
		return false
	}
	if r.Rules == nil {
		return true
	}
	for _, id := range r.Rules {
		if id == ruleID {
			return true
		}
	}
	return false
}

// Suppressed returns true if any region suppresses ruleID at offset.
func Suppressed(regions []DisabledRegion, ruleID string, offset int) bool {
	for _, r := range regions {
		if r.Covers(ruleID, offset) {
			return true
		}
	}
	return false
}

// SuppressedRange returns true if any region for ruleID intersects
// [start, end).
func SuppressedRange(regions []DisabledRegion, ruleID string, start, end int) bool {
	for _, r := range regions {
		if r.Start >= end || start >= r.End {
			continue
		}
		if r.Rules == nil {
			return true
		}
		for _, id := range r.Rules {
			if id == ruleID {
				return true
			}
		}
	}
	return false
}

// directivePrefixes are the comment markers recognized as suppression
// directives. The legacy swiftlint prefix is accepted for source
// compatibility.
var directivePrefixes = []string{"goswiftlint:", "swiftlint:"}

// ComputeDisabledRegions scans the file's trivia in document order for
// inline disable/enable directives and returns the resulting suppression
// regions. A directive with no rule names (or the name "all") applies to
// every rule. A disable left open at end of file extends to end of file.
// Mismatched enables are ignored, never fatal.
func ComputeDisabledRegions(file *swast.FileSnapshot) []DisabledRegion {
	if file == nil {
		return nil
	}

	var regions []DisabledRegion

	// Open per-rule regions and the wildcard region, keyed by rule ID.
	open := make(map[string]int)
	openAll := -1

	closeAll := func(at int) {
		if openAll >= 0 {
			regions = append(regions, DisabledRegion{Start: openAll, End: at})
			openAll = -1
		}
		for id, start := range open {
			regions = append(regions, DisabledRegion{Start: start, End: at, Rules: []string{id}})
			delete(open, id)
		}
	}

	forEachComment(file, func(offset int, text string) {
		action, rules, ok := parseDirective(text)
		if !ok {
			return
		}

		switch action {
		case "disable":
			if rules == nil {
				if openAll < 0 {
					openAll = offset
				}
				return
			}
			for _, id := range rules {
				if _, already := open[id]; !already {
					open[id] = offset
				}
			}
		case "enable":
			if rules == nil {
				closeAll(offset)
				return
			}
			for _, id := range rules {
				if start, found := open[id]; found {
					regions = append(regions, DisabledRegion{
						Start: start,
						End:   offset,
						Rules: []string{id},
					})
					delete(open, id)
				}
			}
		}
	})

	closeAll(len(file.Content))

	sort.Slice(regions, func(i, j int) bool {
		if regions[i].Start != regions[j].Start {
			return regions[i].Start < regions[j].Start
		}
		return regions[i].End < regions[j].End
	})

	return regions
}

// forEachComment visits every comment trivia piece with its absolute offset.
func forEachComment(file *swast.FileSnapshot, fn func(offset int, text string)) {
	for _, tok := range file.Tokens {
		offset := tok.Offset
		for _, p := range tok.Leading {
			if p.IsComment() {
				fn(offset, p.Text)
			}
			offset += len(p.Text)
		}
		offset += len(tok.Text)
		for _, p := range tok.Trailing {
			if p.IsComment() {
				fn(offset, p.Text)
			}
			offset += len(p.Text)
		}
	}
}

// parseDirective recognizes "prefix:disable [rules|all]" and
// "prefix:enable [rules|all]" inside a comment. Returns the action, the
// named rules (nil for all), and whether the comment is a directive at all.
// Malformed directives are reported as non-directives.
func parseDirective(comment string) (action string, rules []string, ok bool) {
	text := strings.TrimSpace(comment)
	text = strings.TrimPrefix(text, "///")
	text = strings.TrimPrefix(text, "//")
	if strings.HasPrefix(text, "/*") {
		text = strings.TrimPrefix(text, "/*")
		text = strings.TrimSuffix(text, "*/")
	}
	text = strings.TrimSpace(text)

	var rest string
	for _, prefix := range directivePrefixes {
		if strings.HasPrefix(text, prefix) {
			rest = text[len(prefix):]
			break
		}
	}
	if rest == "" {
		return "", nil, false
	}

	fields := strings.FieldsFunc(rest, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ','
	})
	if len(fields) == 0 {
		return "", nil, false
	}

	action = fields[0]
	if action != "disable" && action != "enable" {
		return "", nil, false
	}

	names := fields[1:]
	if len(names) == 0 || (len(names) == 1 && names[0] == "all") {
		return action, nil, true
	}
	return action, names, true
}
