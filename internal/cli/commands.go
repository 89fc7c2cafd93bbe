// Package cli implements the hoopup command line interface. Commands are
// thin wrappers that drive the engine in internal/app; every outcome is
// reported through the console feedback sink.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/abdisalam/hoopup-cli/internal/api"
	"github.com/abdisalam/hoopup-cli/internal/app"
	"github.com/abdisalam/hoopup-cli/internal/common/logtrace"
	"github.com/abdisalam/hoopup-cli/internal/credstore"
)

var (
	// Global flags
	jsonOutput bool
	configFile string
)

// ErrAlreadyHandled marks an error that was already reported to the user
// through the feedback sink; Execute exits non-zero without printing again.
var ErrAlreadyHandled = errors.New("already handled")

var okLabel = color.New(color.FgGreen)
var errorLabel = color.New(color.FgRed)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hoopup [command] [flags]",
	Short: "HoopUp CLI - schedule and join pickup sessions",
	Long: `HoopUp CLI is a client for the HoopUp session service.
It lets you register, log in, and create, join, leave, edit, and delete
scheduled sessions at a location and time.

Examples:
  # Configure the server once
  hoopup config --server localhost:8080

  # Create an account and log in
  hoopup register --username jordan23 --email jordan@example.com --password secret
  hoopup login --username jordan23 --password secret

  # Work with sessions
  hoopup list
  hoopup create --location "Court A" --date 2024-06-01 --start 18:00 --end 19:00
  hoopup join SESSION_ID`,
	PersistentPreRun: preRunHandlePersistents,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "", "", "Path to configuration file to override default")
	rootCmd.PersistentFlags().BoolVarP(&jsonOutput, "json", "j", false, "Output in JSON format")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newRegisterCmd())
	rootCmd.AddCommand(newLogoutCmd())
	rootCmd.AddCommand(newWhoamiCmd())
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SilenceErrors = true // Prevent Cobra from printing the error
	rootCmd.SilenceUsage = true  // Prevent Cobra from printing usage on error

	err := rootCmd.Execute()
	if err != nil {
		if errors.Is(err, ErrAlreadyHandled) {
			os.Exit(1)
		}
		if jsonOutput {
			kv := map[string]string{
				"error": err.Error(),
			}
			printJSON(kv)
		} else {
			errorLabel.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// preRunHandlePersistents loads the configuration before command execution.
// The config and version commands run without one.
func preRunHandlePersistents(cmd *cobra.Command, args []string) {
	isConfig := false
	c := cmd
	for c != nil {
		if c.Name() == "config" || c.Name() == "version" {
			isConfig = true
			break
		}
		c = c.Parent()
	}

	if !isConfig {
		if err := LoadConfig(configFile); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				fmt.Println("HoopUp config file not found. Configure the server with \"hoopup config --server <host:port>\" first.")
				os.Exit(1)
			} else {
				fmt.Printf("%s\n", err.Error())
				os.Exit(1)
			}
		}
	}
}

// newApp builds the engine with its real collaborators: the HTTP gateway,
// the file-backed credential store, and the console feedback sink. Any
// persisted identity is restored before the command runs.
func newApp() (*app.App, *consoleFeedback, error) {
	cfg := GetConfig()
	if cfg == nil || cfg.ServerURL == "" {
		return nil, nil, errors.New("no server configured. Run \"hoopup config --server <host:port>\" first")
	}

	credPath, err := credstore.DefaultPath()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to locate credentials: %w", err)
	}

	fb := &consoleFeedback{}
	a := app.New(app.Options{
		Gateway:     api.NewClient(cfg.GetServerURL()),
		Credentials: credstore.NewFileStore(credPath),
		Feedback:    fb,
		Confirm:     terminalConfirm,
		Logger:      logtrace.Component("cli"),
	})
	a.Restore()
	return a, fb, nil
}

// newVersionCmd creates and returns a new version command
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of hoopup-cli",
		Run: func(cmd *cobra.Command, args []string) {
			configPath, err := GetDefaultConfigPath()
			if err != nil {
				configPath = "unknown"
			}

			if jsonOutput {
				kv := map[string]string{
					"version":     getCLIVersion(),
					"config_file": configPath,
				}
				printJSON(kv)
			} else {
				cmd.Printf("hoopup CLI %s\n", getCLIVersion())
				cmd.Printf("Config file: %s\n", configPath)
			}
		},
	}
}

// printJSON prints the given map as JSON to stdout
func printJSON(data interface{}) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(jsonData))
}

// getCLIVersion returns the current CLI version
func getCLIVersion() string {
	return "v0.1.0"
}
