package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/healthdash/internal/models"
)

const dayListWidth = 16

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.state == StateJump && m.form != nil {
		return m.form.View()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("healthdash"))
	b.WriteString("\n\n")

	if len(m.days) == 0 {
		b.WriteString(dimStyle.Render("  Dataset is empty. Run 'healthdash update' to record a day."))
		b.WriteString("\n\n")
		b.WriteString(m.help.View(m.keys))
		return b.String()
	}

	list := m.viewDayList()
	detail := m.viewDetail(m.days[m.cursor])
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list, detail))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(dimStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) viewDayList() string {
	// Keep the cursor inside a window sized to the terminal height.
	window := m.height - 8
	if window < 5 {
		window = 5
	}
	start := 0
	if m.cursor >= window {
		start = m.cursor - window + 1
	}
	end := start + window
	if end > len(m.days) {
		end = len(m.days)
	}

	var lines []string
	for i := start; i < end; i++ {
		date := m.days[i].Date
		if i == m.cursor {
			lines = append(lines, selectedDayStyle.Render(date))
		} else {
			lines = append(lines, dayStyle.Render(date))
		}
	}

	return lipgloss.NewStyle().Width(dayListWidth).Render(strings.Join(lines, "\n"))
}

func (m Model) viewDetail(day models.DayRecord) string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Macros"))
	b.WriteString(fmt.Sprintf("\n%d cal, %dg protein, %dg fat, %dg carbs\n\n",
		day.Calories, day.Protein, day.Fat, day.Carbs))

	b.WriteString(sectionStyle.Render("Fitness"))
	b.WriteString(fmt.Sprintf("\n%d steps, %d cal burned, %d active min, %d min sleep\n",
		day.Steps, day.CaloriesBurned, day.ActiveMinutes, day.SleepMinutes))
	if day.RestingHR != nil {
		b.WriteString(fmt.Sprintf("resting HR %d bpm\n", *day.RestingHR))
	}
	if day.Weight != nil {
		b.WriteString(fmt.Sprintf("weight %.1f lbs\n", *day.Weight))
	}
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render(fmt.Sprintf("Meals (%d)", len(day.Meals))))
	b.WriteString("\n")
	if len(day.Meals) == 0 {
		b.WriteString(dimStyle.Render("none recorded"))
		b.WriteString("\n")
	}
	for _, meal := range day.Meals {
		label := meal.Time
		if label == "" {
			label = "—"
		}
		b.WriteString(fmt.Sprintf("%-12s %s — %d cal", label, meal.Name, meal.Calories))
		if meal.Protein > 0 || meal.Fat > 0 || meal.Carbs > 0 {
			b.WriteString(fmt.Sprintf(", %dg P / %dg F / %dg C", meal.Protein, meal.Fat, meal.Carbs))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render(fmt.Sprintf("Workouts (%d)", len(day.Workouts))))
	b.WriteString("\n")
	if len(day.Workouts) == 0 {
		b.WriteString(dimStyle.Render("none recorded"))
		b.WriteString("\n")
	}
	for _, w := range day.Workouts {
		b.WriteString(fmt.Sprintf("%s — %d lbs, %d sets of %s\n", w.Name, w.Weight, w.Sets, w.Reps))
	}

	return detailStyle.Render(b.String())
}
