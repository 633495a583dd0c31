// Package healthlog extracts structured meal and workout records from the
// free-form daily markdown logs. The logs are human-written and loosely
// formatted, so extraction is heuristic: unrecognized content is skipped,
// never an error.
package healthlog

import (
	"strings"

	"github.com/julianstephens/healthdash/internal/models"
)

// ParseFood extracts meal entries and the day's macro totals from the log
// body. Totals come from an explicit totals line when present; any field the
// line leaves at zero is backfilled from the meal sums, provided at least
// one meal parsed.
func ParseFood(content string) ([]models.MealEntry, models.MacroTotals) {
	var totals models.MacroTotals
	totals.Calories, totals.Protein, totals.Fat, totals.Carbs = matchTotalsLine(content)

	var meals []models.MealEntry
	currentTime := ""

	// The split's first element is the preamble before any heading; items
	// there are scanned like any section, with an empty time label.
	for _, section := range sectionSplitRe.Split(content, -1) {
		if label, ok := matchHeadingLabel(section); ok {
			currentTime = label
		}

		lines := strings.Split(section, "\n")
		for i := 0; i < len(lines); i++ {
			name, ok := matchItem(lines[i])
			if !ok {
				continue
			}

			// Format A: figures inline on the item's own line.
			figureLine := lines[i]
			cal, ok := matchInlineCalories(lines[i])
			if !ok {
				// Format B: figures on a nested sub-bullet, which is
				// consumed so it is not re-scanned as its own item.
				if i+1 >= len(lines) {
					continue
				}
				sub, subOK := matchSubBulletCalories(lines[i+1])
				if !subOK {
					// No calorie figure anywhere nearby: not a food item
					// (e.g. "- **Ice water**").
					continue
				}
				figureLine = lines[i+1]
				cal = sub
				i++
			}

			meals = append(meals, models.MealEntry{
				Time:     currentTime,
				Name:     name,
				Calories: cal,
				Protein:  matchGrams(figureLine, proteinRe),
				Fat:      matchGrams(figureLine, fatRe),
				Carbs:    matchGrams(figureLine, carbRe),
			})
		}
	}

	if len(meals) > 0 {
		var sum models.MacroTotals
		for _, m := range meals {
			sum = sum.Add(models.MacroTotals{Calories: m.Calories, Protein: m.Protein, Fat: m.Fat, Carbs: m.Carbs})
		}
		if totals.Calories == 0 {
			totals.Calories = sum.Calories
		}
		if totals.Protein == 0 {
			totals.Protein = sum.Protein
		}
		if totals.Fat == 0 {
			totals.Fat = sum.Fat
		}
		if totals.Carbs == 0 {
			totals.Carbs = sum.Carbs
		}
	}

	return meals, totals
}
