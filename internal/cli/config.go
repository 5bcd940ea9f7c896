package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/forcelayout/pkg/config"
)

// configCommand creates the config command with init and show subcommands.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}
	cmd.AddCommand(c.configInitCommand())
	cmd.AddCommand(c.configShowCommand())
	return cmd
}

func (c *CLI) configInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a config file with the default values",
		Long: `Write a config file with the default values.

Without a path the file is written to ` + config.ConfigFile() + `.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.ConfigFile()
			if len(args) == 1 {
				path = args[0]
			}
			return c.runConfigInit(path, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func (c *CLI) runConfigInit(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := config.Write(f, config.Default()); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	c.Logger.Debug("wrote default config", "path", path)

	printSuccess("Config written")
	printFile(path)
	return nil
}

func (c *CLI) configShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long: `Print the effective configuration after applying the config file and
FORCELAYOUT_* environment variables.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			printConfig(cfg)
			return nil
		},
	}
}

func printConfig(cfg *config.Config) {
	fmt.Println(StyleTitle.Render("simulation"))
	printKeyValue("stiffness", fmt.Sprint(cfg.Simulation.Stiffness))
	printKeyValue("charge", fmt.Sprint(cfg.Simulation.Charge))
	printKeyValue("min_movement", fmt.Sprint(cfg.Simulation.MinMovement))
	printKeyValue("step_delay", cfg.Simulation.StepDelay().String())
	printKeyValue("max_steps", fmt.Sprint(cfg.Simulation.MaxSteps))
	printKeyValue("workers", workersLabel(cfg.Simulation.Workers))
	printKeyValue("window", fmt.Sprint(cfg.Simulation.Window))
	printNewline()
	fmt.Println(StyleTitle.Render("layout"))
	printKeyValue("width", fmt.Sprint(cfg.Layout.Width))
	printKeyValue("height", fmt.Sprint(cfg.Layout.Height))
	printKeyValue("seed", fmt.Sprint(cfg.Layout.Seed))
}

func workersLabel(n int) string {
	if n == 0 {
		return "unbounded"
	}
	return fmt.Sprint(n)
}
