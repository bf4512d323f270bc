package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jgirmay/forgelog/internal/logbook/models"
)

var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "Create and inspect goals",
}

var (
	goalMetric string
	goalTarget float64
	goalPeriod string
)

var goalsAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Add a new goal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		goal, err := current.goals.Add(
			cmd.Context(),
			args[0],
			goalMetric,
			goalTarget,
			models.GoalPeriod(goalPeriod),
		)
		if err != nil {
			return err
		}
		fmt.Printf("Added goal %q: %s %g per %s (id %d)\n",
			goal.Name, goal.MetricName, goal.TargetValue, goal.Period, goal.ID)
		return nil
	},
}

var goalsStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show progress for each active goal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		statuses, err := current.goals.Status(cmd.Context())
		if err != nil {
			return err
		}
		if len(statuses) == 0 {
			fmt.Println("No active goals.")
			return nil
		}
		for _, s := range statuses {
			fmt.Printf("%s (%s, %s): %g / %g (%.0f%%)\n",
				s.Goal.Name, s.Goal.MetricName, s.Goal.Period,
				s.Current, s.Goal.TargetValue, s.Fraction*100)
		}
		return nil
	},
}

func init() {
	goalsAddCmd.Flags().StringVarP(&goalMetric, "metric", "m", "", "metric name (e.g. study, guitar_scale, pushups)")
	goalsAddCmd.Flags().Float64VarP(&goalTarget, "target", "t", 0, "numeric target for the goal")
	goalsAddCmd.Flags().StringVarP(&goalPeriod, "period", "p", "weekly", "goal period: daily, weekly, monthly")
	_ = goalsAddCmd.MarkFlagRequired("metric")
	_ = goalsAddCmd.MarkFlagRequired("target")

	goalsCmd.AddCommand(goalsAddCmd, goalsStatusCmd)
	rootCmd.AddCommand(goalsCmd)
}
