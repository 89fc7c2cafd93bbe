package cli

import (
	"github.com/spf13/cobra"

	"github.com/abdisalam/hoopup-cli/internal/app"
)

var (
	// Create command flags
	createLocation string
	createDate     string
	createStart    string
	createEnd      string
	createNote     string
)

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:   "create [flags]",
	Short: "Create a new session",
	Long: `Create a new session at a location and time. Location, date, start
time and end time are required; the note is optional.

Examples:
  # Create a session
  hoopup create --location "Court A" --date 2024-06-01 --start 18:00 --end 19:00

  # Create a session with a note
  hoopup create --location "Court A" --date 2024-06-01 --start 18:00 --end 19:00 --note "Bring a white shirt"`,
	RunE: runCreate,
}

// runCreate fills the creation form and submits it
func runCreate(cmd *cobra.Command, args []string) error {
	a, fb, err := newApp()
	if err != nil {
		return err
	}

	a.SetForm(app.SessionFields{
		LocationName: createLocation,
		Date:         createDate,
		StartTime:    createStart,
		EndTime:      createEnd,
		Note:         createNote,
	})
	a.CreateSession(cmd.Context())
	return fb.Result()
}

func init() {
	rootCmd.AddCommand(createCmd)

	createCmd.Flags().StringVar(&createLocation, "location", "", "Location name")
	createCmd.Flags().StringVar(&createDate, "date", "", "Date (YYYY-MM-DD)")
	createCmd.Flags().StringVar(&createStart, "start", "", "Start time (HH:MM)")
	createCmd.Flags().StringVar(&createEnd, "end", "", "End time (HH:MM)")
	createCmd.Flags().StringVar(&createNote, "note", "", "Optional note")
}
