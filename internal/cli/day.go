package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/healthdash/internal/models"
)

type DayCmd struct {
	Date string `arg:"" optional:"" help:"Date to show (YYYY-MM-DD). Defaults to yesterday."`
}

var (
	dayTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	daySectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	dayDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

func (c *DayCmd) Run(ctx *Context) error {
	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	days, err := ctx.Store.Days()
	if err != nil {
		return err
	}

	var day *models.DayRecord
	for i := range days {
		if days[i].Date == date {
			day = &days[i]
			break
		}
	}
	if day == nil {
		return fmt.Errorf("no record for %s", date)
	}

	fmt.Println(dayTitleStyle.Render(date))
	fmt.Println()

	fmt.Println(daySectionStyle.Render("Macros"))
	fmt.Printf("  %d cal, %dg protein, %dg fat, %dg carbs\n\n",
		day.Calories, day.Protein, day.Fat, day.Carbs)

	fmt.Println(daySectionStyle.Render("Fitness"))
	fmt.Printf("  %d steps, %d cal burned, %d active min, %s sleep\n",
		day.Steps, day.CaloriesBurned, day.ActiveMinutes, formatSleep(day.SleepMinutes))
	if day.RestingHR != nil {
		fmt.Printf("  resting HR %d bpm\n", *day.RestingHR)
	}
	if day.Weight != nil {
		fmt.Printf("  weight %.1f lbs\n", *day.Weight)
	}
	fmt.Println()

	fmt.Println(daySectionStyle.Render(fmt.Sprintf("Meals (%d)", len(day.Meals))))
	if len(day.Meals) == 0 {
		fmt.Println(dayDimStyle.Render("  none recorded"))
	}
	for _, m := range day.Meals {
		label := m.Time
		if label == "" {
			label = "—"
		}
		fmt.Printf("  %-12s %-30s %4d cal  %dg P / %dg F / %dg C\n",
			label, m.Name, m.Calories, m.Protein, m.Fat, m.Carbs)
	}
	fmt.Println()

	fmt.Println(daySectionStyle.Render(fmt.Sprintf("Workouts (%d)", len(day.Workouts))))
	if len(day.Workouts) == 0 {
		fmt.Println(dayDimStyle.Render("  none recorded"))
	}
	for _, w := range day.Workouts {
		fmt.Printf("  %-30s %d lbs, %d sets of %s\n", w.Name, w.Weight, w.Sets, w.Reps)
	}

	return nil
}

func formatSleep(minutes int) string {
	if minutes == 0 {
		return "no"
	}
	return strings.TrimSpace(fmt.Sprintf("%dh %02dm", minutes/60, minutes%60))
}
