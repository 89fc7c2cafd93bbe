package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abdisalam/hoopup-cli/internal/app"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List upcoming sessions",
	Long: `List all sessions known to the server, in server order.
Sessions you are attending are marked with *, sessions you created with (creator).

Examples:
  # List sessions as a table
  hoopup list

  # List sessions as JSON
  hoopup list -j`,
	RunE: runList,
}

// runList fetches the session list and renders it
func runList(cmd *cobra.Command, args []string) error {
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

	sessions := a.Sessions()
	if jsonOutput {
		printJSON(sessions)
		return nil
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions yet. Be the first to post one!")
		return nil
	}

	username := a.Identity().Username
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tLOCATION\tDATE\tTIME\tGOING\tNOTE")
	for _, s := range sessions {
		marker := ""
		if app.IsAttending(s, username) {
			marker = " *"
		}
		if app.IsCreator(s, username) {
			marker += " (creator)"
		}
		fmt.Fprintf(w, "%s\t%s%s\t%s\t%s-%s\t%d\t%s\n",
			s.ID, s.LocationName, marker, s.Date, s.StartTime, s.EndTime, len(s.Attendees), s.Note)
	}
	return w.Flush()
}

func init() {
	rootCmd.AddCommand(listCmd)
}
