package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/rcliao/inkwell/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Settings management",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the current settings",
		Run:   runConfigShow,
	}

	setCmd := &cobra.Command{
		Use:   "set [key] [value]",
		Short: "Change a setting",
		Long:  fmt.Sprintf("Change a setting and save the file.\n\nKeys: %v", config.Keys()),
		Args:  cobra.ExactArgs(2),
		Run:   runConfigSet,
	}

	configCmd.AddCommand(showCmd, setCmd)
	RootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) {
	s := loadSettings()
	if textOutput() {
		if err := toml.NewEncoder(cmd.OutOrStdout()).Encode(s); err != nil {
			exitErr("config show", err)
		}
		return
	}
	printJSON(cmd.OutOrStdout(), s)
}

func runConfigSet(cmd *cobra.Command, args []string) {
	s := loadSettings()
	if err := s.Set(args[0], args[1]); err != nil {
		exitErr("config set", err)
	}
	path := config.DefaultPath()
	if err := config.Save(path, s); err != nil {
		exitErr("config set", err)
	}
	logger.Debug("saved settings", "path", path)
	printJSON(cmd.OutOrStdout(), s)
}
