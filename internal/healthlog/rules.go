package healthlog

import (
	"regexp"
	"strconv"
	"strings"
)

// Each log convention is its own rule function returning an optional match.
// The parsers compose them in a fixed fallback order so a drifting log
// convention breaks exactly one rule, not the whole pass.

var (
	// Totals line: a bolded "Daily totals"/"Running total" label followed on
	// the same logical line by a calorie figure and, optionally, gram figures.
	totalsCaloriesRe = regexp.MustCompile(`(?i)\*\*(?:Daily totals|Running total)[^*]*\*\*[:\s]*~?([\d,]+)\s*cal.*?~?([\d.]+)g\s*protein`)
	totalsFatRe      = regexp.MustCompile(`(?i)\*\*(?:Daily totals|Running total)[^*]*\*\*.*?~?([\d.]+)g\s*fat`)
	totalsCarbsRe    = regexp.MustCompile(`(?i)\*\*(?:Daily totals|Running total)[^*]*\*\*.*?~?([\d.]+)g\s*carb`)

	// Section headings: "## Lunch" or "## Evening Snacks (~4:30 PM)".
	sectionSplitRe = regexp.MustCompile(`(?m)^## `)
	headingTimeRe  = regexp.MustCompile(`^.*?\(~?([\d:]+\s*(?:AM|PM|am|pm)?)\)`)
	headingNameRe  = regexp.MustCompile(`^(\w[\w\s&]*)`)

	// Meal items: "- **name** — 250cal, ..." or a sub-bullet carrying the
	// figures on the next line.
	itemRe       = regexp.MustCompile(`^\s*-\s+\*\*(.+?)\*\*`)
	inlineCalRe  = regexp.MustCompile(`[—-]+\s*~?([\d,]+)\s*cal`)
	subBulletRe  = regexp.MustCompile(`^\s+-\s+~?([\d,]+)\s*cal`)
	proteinRe    = regexp.MustCompile(`([\d.]+)g\s*protein`)
	fatRe        = regexp.MustCompile(`([\d.]+)g\s*fat`)
	carbRe       = regexp.MustCompile(`([\d.]+)g\s*carb`)

	// Workout lines: "1. Pectoral Fly (Life Fitness) — 70 lbs, 4×10".
	exerciseRe = regexp.MustCompile(`^\s*\d+\.\s+(.+?)\s*(?:\(.*?\))?\s*[—-]+\s*(\d+)\s*(?:lbs?|pounds?)`)
	setsRepsRe = regexp.MustCompile(`(\d+)\s*[×x]\s*(\d+)`)
	varRepsRe  = regexp.MustCompile(`(\d+)?\s*sets?\s*\(([^)]+)\)`)
)

// parseCalorieFigure parses a calorie figure, stripping thousands separators.
// The "~" approximation marker is handled by the regexes themselves.
func parseCalorieFigure(s string) int {
	n, err := strconv.Atoi(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return 0
	}
	return n
}

// parseGramFigure parses a gram figure, truncating fractional values.
func parseGramFigure(s string) int {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return int(f)
}

// matchTotalsLine extracts the explicit totals from the document. Fields the
// line does not carry stay zero for the caller to backfill.
func matchTotalsLine(content string) (calories, protein, fat, carbs int) {
	if m := totalsCaloriesRe.FindStringSubmatch(content); m != nil {
		calories = parseCalorieFigure(m[1])
		protein = parseGramFigure(m[2])
	}
	if m := totalsFatRe.FindStringSubmatch(content); m != nil {
		fat = parseGramFigure(m[1])
	}
	if m := totalsCarbsRe.FindStringSubmatch(content); m != nil {
		carbs = parseGramFigure(m[1])
	}
	return calories, protein, fat, carbs
}

// matchHeadingLabel derives a section's time label from its heading: a
// parenthesized clock time wins, else the heading's leading word run.
// ok is false when neither matches, in which case the previous section's
// label carries over.
func matchHeadingLabel(section string) (label string, ok bool) {
	if m := headingTimeRe.FindStringSubmatch(section); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	if m := headingNameRe.FindStringSubmatch(section); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}

// matchItem recognizes a dash-bullet with a bolded item name.
func matchItem(line string) (name string, ok bool) {
	m := itemRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// matchInlineCalories finds a calorie figure on the item's own line,
// introduced by a dash-like separator (Format A).
func matchInlineCalories(line string) (int, bool) {
	m := inlineCalRe.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	return parseCalorieFigure(m[1]), true
}

// matchSubBulletCalories finds a nested sub-bullet that starts with a
// calorie figure (Format B).
func matchSubBulletCalories(line string) (int, bool) {
	m := subBulletRe.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	return parseCalorieFigure(m[1]), true
}

// matchGrams extracts one macro gram figure from a line; absent means zero.
func matchGrams(line string, re *regexp.Regexp) int {
	m := re.FindStringSubmatch(line)
	if m == nil {
		return 0
	}
	return parseGramFigure(m[1])
}

// matchExercise recognizes a numbered workout line: exercise name, optional
// parenthesized equipment, a dash-like separator, then a weight with unit.
func matchExercise(line string) (name string, weight int, ok bool) {
	m := exerciseRe.FindStringSubmatch(line)
	if m == nil {
		return "", 0, false
	}
	w, err := strconv.Atoi(m[2])
	if err != nil {
		return "", 0, false
	}
	return strings.TrimSpace(m[1]), w, true
}

// matchSetsReps extracts an "N×M" or "N x M" figure.
func matchSetsReps(line string) (sets int, reps string, ok bool) {
	m := setsRepsRe.FindStringSubmatch(line)
	if m == nil {
		return 0, "", false
	}
	sets, _ = strconv.Atoi(m[1])
	return sets, m[2], true
}

// matchVariableReps extracts a "N sets (a, b, c)" clause. The rep list is
// returned with internal spaces stripped; sets is zero when the clause
// carries no leading count.
func matchVariableReps(line string) (sets int, reps string, ok bool) {
	m := varRepsRe.FindStringSubmatch(line)
	if m == nil {
		return 0, "", false
	}
	if m[1] != "" {
		sets, _ = strconv.Atoi(m[1])
	}
	return sets, strings.ReplaceAll(m[2], " ", ""), true
}
