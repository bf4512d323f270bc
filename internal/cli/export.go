package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jgirmay/forgelog/internal/logbook/models"
)

var (
	exportRange string
	exportDays  int
	exportOut   string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export events for a time range as JSON",
	Long: `Export all events in a time range as a versioned JSON document for
downstream consumers (reporting, summarization). Use --range for a
symbolic window or --days for an explicit trailing day count.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			events []models.Event
			label  string
			err    error
		)
		if cmd.Flags().Changed("days") {
			events, err = current.query.SelectDays(cmd.Context(), exportDays)
			label = fmt.Sprintf("last_%d_days", exportDays)
		} else {
			events, err = current.query.SelectRange(cmd.Context(), exportRange)
			label = exportRange
		}
		if err != nil {
			return err
		}

		out, err := current.formatter.Format(events, &label)
		if err != nil {
			return err
		}

		if exportOut != "" {
			if err := os.WriteFile(exportOut, out, 0o644); err != nil {
				return fmt.Errorf("writing export file: %w", err)
			}
			fmt.Printf("Wrote %d events to %s\n", len(events), exportOut)
			return nil
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportRange, "range", "r", "today", "time range: today, week, month, year")
	exportCmd.Flags().IntVar(&exportDays, "days", 0, "explicit trailing day count (overrides --range)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "write the document to a file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}
