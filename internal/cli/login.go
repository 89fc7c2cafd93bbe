package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newLoginCmd creates and returns a new login command
func newLoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate with the HoopUp server",
		Long: `Login to the HoopUp server to obtain an authentication token.
On success the token is stored in your credentials file and reused by
subsequent commands until you log out.

Example:
  hoopup login --username jordan23 --password secret`,
		RunE: runLogin,
	}

	cmd.Flags().String("username", "", "Username for authentication")
	cmd.Flags().String("password", "", "Password for authentication")
	cmd.MarkFlagRequired("username")
	cmd.MarkFlagRequired("password")
	return cmd
}

// runLogin handles the login command execution
func runLogin(cmd *cobra.Command, args []string) error {
	username, _ := cmd.Flags().GetString("username")
	password, _ := cmd.Flags().GetString("password")

	a, fb, err := newApp()
	if err != nil {
		return err
	}

	a.Login(cmd.Context(), username, password)
	return fb.Result()
}

// newRegisterCmd creates and returns a new register command
func newRegisterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new HoopUp account",
		Long: `Register a new account with the HoopUp server. After a successful
registration, log in with the same credentials.

Example:
  hoopup register --username jordan23 --email jordan@example.com --password secret`,
		RunE: runRegister,
	}

	cmd.Flags().String("username", "", "Username for the new account")
	cmd.Flags().String("email", "", "Email address for the new account")
	cmd.Flags().String("password", "", "Password for the new account")
	cmd.MarkFlagRequired("username")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

// runRegister handles the register command execution
func runRegister(cmd *cobra.Command, args []string) error {
	username, _ := cmd.Flags().GetString("username")
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")

	a, fb, err := newApp()
	if err != nil {
		return err
	}

	a.Register(cmd.Context(), username, email, password)
	return fb.Result()
}

// newLogoutCmd creates and returns a new logout command
func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and discard the stored token",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, fb, err := newApp()
			if err != nil {
				return err
			}

			a.Logout()
			return fb.Result()
		},
	}
}

// newWhoamiCmd creates and returns a new whoami command
func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current authenticated user",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, err := newApp()
			if err != nil {
				return err
			}

			identity := a.Identity()
			if !identity.IsAuthenticated() {
				return fmt.Errorf("not logged in")
			}

			expiry := tokenExpiry(identity.Token)
			if jsonOutput {
				kv := map[string]string{
					"username": identity.Username,
				}
				if expiry != "" {
					kv["token_expires_at"] = expiry
				}
				printJSON(kv)
				return nil
			}

			fmt.Printf("Logged in as %s\n", identity.Username)
			if expiry != "" {
				fmt.Printf("Token expires at: %s\n", expiry)
			}
			return nil
		},
	}
}
