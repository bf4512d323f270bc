package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jgirmay/forgelog/internal/logbook/models"
	"github.com/jgirmay/forgelog/internal/logbook/services"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Log events: workouts, guitar practice, study sessions, notes, activities",
}

var (
	workoutDips    int
	workoutPlanks  int
	workoutPushups int
	workoutPullups int
	workoutRows    int
	workoutSitups  int
	workoutSquats  int
	workoutNotes   string
)

var logWorkoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Log a workout",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		req := services.WorkoutRequest{
			Dips:    intFlag(cmd, "dips", workoutDips),
			Planks:  intFlag(cmd, "planks", workoutPlanks),
			Pushups: intFlag(cmd, "pushups", workoutPushups),
			Pullups: intFlag(cmd, "pullups", workoutPullups),
			Rows:    intFlag(cmd, "rows", workoutRows),
			Situps:  intFlag(cmd, "situps", workoutSitups),
			Squats:  intFlag(cmd, "squats", workoutSquats),
			Notes:   stringFlag(cmd, "notes", workoutNotes),
		}
		event, err := current.logger.Log(cmd.Context(), req)
		if err != nil {
			return err
		}
		fmt.Printf("Logged workout event:\n%s with id %d\n", event.Title, event.ID)
		return nil
	},
}

var (
	guitarMinutes float64
	guitarFocus   string
	guitarNotes   string
)

var logGuitarCmd = &cobra.Command{
	Use:   "guitar",
	Short: "Log a guitar practice session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		req := services.GuitarRequest{
			Focus:   models.GuitarFocus(guitarFocus),
			Minutes: floatFlag(cmd, "minutes", guitarMinutes),
			Notes:   stringFlag(cmd, "notes", guitarNotes),
		}
		event, err := current.logger.Log(cmd.Context(), req)
		if err != nil {
			return err
		}
		fmt.Printf("Logged guitar event:\n%s with id %d\n", event.Title, event.ID)
		return nil
	},
}

var (
	studyMinutes float64
	studyTopic   string
	studyNotes   string
)

var logStudyCmd = &cobra.Command{
	Use:   "study",
	Short: "Log a study session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		req := services.StudyRequest{
			Minutes: floatFlag(cmd, "minutes", studyMinutes),
			Topic:   stringFlag(cmd, "topic", studyTopic),
			Notes:   stringFlag(cmd, "notes", studyNotes),
		}
		event, err := current.logger.Log(cmd.Context(), req)
		if err != nil {
			return err
		}
		fmt.Printf("Logged study event:\n%s with id %d\n", event.Title, event.ID)
		return nil
	},
}

var (
	activityMinutes float64
	activityNotes   string
)

var logActivityCmd = &cobra.Command{
	Use:   "activity NAME",
	Short: "Log an activity not covered by the other subcommands",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := services.ActivityRequest{
			Name:    args[0],
			Minutes: floatFlag(cmd, "minutes", activityMinutes),
			Notes:   stringFlag(cmd, "notes", activityNotes),
		}
		event, err := current.logger.Log(cmd.Context(), req)
		if err != nil {
			return err
		}
		fmt.Printf("Logged activity event:\n%s with id %d\n", event.Title, event.ID)
		return nil
	},
}

var noteNotes string

var logNoteCmd = &cobra.Command{
	Use:   "note TEXT",
	Short: "Capture a free-form note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := services.NoteRequest{
			Text:  args[0],
			Notes: stringFlag(cmd, "notes", noteNotes),
		}
		event, err := current.logger.Log(cmd.Context(), req)
		if err != nil {
			return err
		}
		fmt.Printf("Logged note event:\n%s with id %d\n", event.Title, event.ID)
		return nil
	},
}

func init() {
	logWorkoutCmd.Flags().IntVar(&workoutDips, "dips", 0, "number of dips")
	logWorkoutCmd.Flags().IntVar(&workoutPlanks, "planks", 0, "plank hold in seconds")
	logWorkoutCmd.Flags().IntVar(&workoutPushups, "pushups", 0, "number of pushups")
	logWorkoutCmd.Flags().IntVar(&workoutPullups, "pullups", 0, "number of pullups")
	logWorkoutCmd.Flags().IntVar(&workoutRows, "rows", 0, "number of rows")
	logWorkoutCmd.Flags().IntVar(&workoutSitups, "situps", 0, "number of situps")
	logWorkoutCmd.Flags().IntVar(&workoutSquats, "squats", 0, "number of squats")
	logWorkoutCmd.Flags().StringVarP(&workoutNotes, "notes", "n", "", "notes about the workout")

	logGuitarCmd.Flags().Float64VarP(&guitarMinutes, "minutes", "m", 0, "practice duration in minutes")
	logGuitarCmd.Flags().StringVarP(&guitarFocus, "focus", "f", "", "focus area: course, scale, song, writing, theory")
	logGuitarCmd.Flags().StringVarP(&guitarNotes, "notes", "n", "", "notes about the practice")
	_ = logGuitarCmd.MarkFlagRequired("focus")

	logStudyCmd.Flags().Float64VarP(&studyMinutes, "minutes", "m", 0, "study duration in minutes")
	logStudyCmd.Flags().StringVarP(&studyTopic, "topic", "t", "", "topic or subject studied")
	logStudyCmd.Flags().StringVarP(&studyNotes, "notes", "n", "", "notes about the session")

	logActivityCmd.Flags().Float64VarP(&activityMinutes, "minutes", "m", 0, "activity duration in minutes")
	logActivityCmd.Flags().StringVarP(&activityNotes, "notes", "n", "", "notes about the activity")

	logNoteCmd.Flags().StringVarP(&noteNotes, "notes", "n", "", "additional notes")

	logCmd.AddCommand(logWorkoutCmd, logGuitarCmd, logStudyCmd, logActivityCmd, logNoteCmd)
	rootCmd.AddCommand(logCmd)
}

// intFlag returns the flag value only when the user supplied it, so an
// unset counter stays distinguishable from an explicit zero.
func intFlag(cmd *cobra.Command, name string, value int) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &value
}

func floatFlag(cmd *cobra.Command, name string, value float64) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &value
}

func stringFlag(cmd *cobra.Command, name string, value string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &value
}
