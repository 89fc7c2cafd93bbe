package cli

import (
	"github.com/spf13/cobra"
)

// joinCmd represents the join command
var joinCmd = &cobra.Command{
	Use:   "join SESSION_ID",
	Short: "Join a session",
	Long: `Join a session's attendee roster. Joining a session you are already
attending is accepted by the server and leaves the roster unchanged.

Example:
  hoopup join 4f1c9a`,
	Args: cobra.ExactArgs(1),
	RunE: runJoin,
}

// leaveCmd represents the leave command
var leaveCmd = &cobra.Command{
	Use:   "leave SESSION_ID",
	Short: "Leave a session",
	Long: `Leave a session's attendee roster.

Example:
  hoopup leave 4f1c9a`,
	Args: cobra.ExactArgs(1),
	RunE: runLeave,
}

func runJoin(cmd *cobra.Command, args []string) error {
	a, fb, err := newApp()
	if err != nil {
		return err
	}

	a.JoinSession(cmd.Context(), args[0])
	return fb.Result()
}

func runLeave(cmd *cobra.Command, args []string) error {
	a, fb, err := newApp()
	if err != nil {
		return err
	}

	a.LeaveSession(cmd.Context(), args[0])
	return fb.Result()
}

func init() {
	rootCmd.AddCommand(joinCmd)
	rootCmd.AddCommand(leaveCmd)
}
