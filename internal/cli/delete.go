package cli

import (
	"github.com/spf13/cobra"
)

var deleteYes bool

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete SESSION_ID [flags]",
	Short: "Delete a session you created",
	Long: `Delete a session. You will be asked to confirm unless --yes is passed.
Only the creator may delete a session, which the server enforces.

Examples:
  # Delete with confirmation prompt
  hoopup delete 4f1c9a

  # Delete without prompting
  hoopup delete 4f1c9a --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	a, fb, err := newApp()
	if err != nil {
		return err
	}

	if deleteYes {
		a.SetConfirm(func(string) bool { return true })
	}

	a.DeleteSession(cmd.Context(), args[0])
	return fb.Result()
}

func init() {
	rootCmd.AddCommand(deleteCmd)

	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip the confirmation prompt")
}
