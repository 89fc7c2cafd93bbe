package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Edit command flags
	editLocation string
	editDate     string
	editStart    string
	editEnd      string
	editNote     string
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit SESSION_ID [flags]",
	Short: "Edit a session you created",
	Long: `Edit a session's fields. The draft starts from the session's current
values; only the flags you pass are changed. Only the creator may save an
edit, which the server enforces.

Examples:
  # Move a session to a new time
  hoopup edit 4f1c9a --start 19:00 --end 20:00

  # Change the location and note
  hoopup edit 4f1c9a --location "Court B" --note "Moved because of rain"`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

// runEdit loads the session, seeds the edit draft, applies the flag
// overrides, and saves.
func runEdit(cmd *cobra.Command, args []string) error {
	a, fb, err := newApp()
	if err != nil {
		return err
	}
	if !a.Identity().IsAuthenticated() {
		return fmt.Errorf("not logged in")
	}

	a.Refresh(cmd.Context())
	if err := fb.Result(); err != nil {
		return err
	}

	target, ok := a.FindSession(args[0])
	if !ok {
		return fmt.Errorf("session %s not found", args[0])
	}

	a.StartEditing(target)
	draft := a.Draft()
	if cmd.Flags().Changed("location") {
		draft.LocationName = editLocation
	}
	if cmd.Flags().Changed("date") {
		draft.Date = editDate
	}
	if cmd.Flags().Changed("start") {
		draft.StartTime = editStart
	}
	if cmd.Flags().Changed("end") {
		draft.EndTime = editEnd
	}
	if cmd.Flags().Changed("note") {
		draft.Note = editNote
	}

	a.SaveEdit(cmd.Context())
	return fb.Result()
}

func init() {
	rootCmd.AddCommand(editCmd)

	editCmd.Flags().StringVar(&editLocation, "location", "", "Location name")
	editCmd.Flags().StringVar(&editDate, "date", "", "Date (YYYY-MM-DD)")
	editCmd.Flags().StringVar(&editStart, "start", "", "Start time (HH:MM)")
	editCmd.Flags().StringVar(&editEnd, "end", "", "End time (HH:MM)")
	editCmd.Flags().StringVar(&editNote, "note", "", "Note")
}
