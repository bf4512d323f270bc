package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/jgirmay/forgelog/internal/logbook/models"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	typeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

var todayDetailed bool

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show all events logged today",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		events, err := current.query.SelectToday(cmd.Context())
		if err != nil {
			return err
		}
		if len(events) == 0 {
			fmt.Println("No events logged today.")
			return nil
		}
		for _, event := range events {
			fmt.Println(renderEvent(event, todayDetailed))
		}
		return nil
	},
}

func init() {
	todayCmd.Flags().BoolVarP(&todayDetailed, "detailed", "d", false, "show full details and notes for each event")
	rootCmd.AddCommand(todayCmd)
}

func renderEvent(event models.Event, detailed bool) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s %s",
		dimStyle.Render(event.Timestamp.Format("15:04")),
		typeStyle.Render(fmt.Sprintf("[%s]", event.Type)),
		titleStyle.Render(event.Title),
	))

	for _, m := range event.Metrics {
		unit := ""
		if m.Unit != nil {
			unit = " " + *m.Unit
		}
		b.WriteString(fmt.Sprintf("\n    %s: %g%s", m.Name, m.Value, unit))
	}

	if len(event.EventTags) > 0 {
		names := make([]string, 0, len(event.EventTags))
		for _, et := range event.EventTags {
			if et.Tag != nil {
				names = append(names, "#"+et.Tag.Name)
			}
		}
		if len(names) > 0 {
			b.WriteString("\n    " + dimStyle.Render(strings.Join(names, " ")))
		}
	}

	if detailed && event.Notes != nil {
		b.WriteString("\n    " + dimStyle.Render(*event.Notes))
	}

	return b.String()
}
