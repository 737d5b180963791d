package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/AbdulRehmanAnsari35/cli-todo2/internal/config"
	"github.com/AbdulRehmanAnsari35/cli-todo2/internal/ops"
	"github.com/AbdulRehmanAnsari35/cli-todo2/internal/task"
)

var Version = "dev"

// Execute wires the command tree and runs it.
func Execute() {
	var configPath string
	var dataDir string

	rootCmd := &cobra.Command{
		Use:     "todo",
		Short:   "Single-user task tracker with due dates, priorities, tags and recurrence",
		Version: Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath, dataDir)
			if err != nil {
				return err
			}
			store, err := openStore(cfg)
			if err != nil {
				return err
			}
			return NewHandler(store, cfg).RunREPL(os.Stdin, os.Stdout)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default <data-dir>/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "override the data directory")

	rootCmd.AddCommand(backupCmd(&configPath, &dataDir))
	rootCmd.AddCommand(restoreCmd(&configPath, &dataDir))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func backupCmd(configPath, dataDir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Archive the data directory to a tar.gz file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath, *dataDir)
			if err != nil {
				return err
			}
			out, _ := cmd.Flags().GetString("out")
			if out == "" {
				out = ops.DefaultArchivePath(cfg.DataDir, time.Now())
			}
			if err := ops.BackupDataDir(cfg.DataDir, out); err != nil {
				return err
			}
			fmt.Println("backup:", out)
			return nil
		},
	}
	cmd.Flags().StringP("out", "o", "", "archive path (default <data-dir>/backups/todo-<ts>.tar.gz)")
	return cmd
}

func restoreCmd(configPath, dataDir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restore <archive>",
		Short: "Unpack a backup archive into the data directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath, *dataDir)
			if err != nil {
				return err
			}
			if err := ops.RestoreDataDir(args[0], cfg.DataDir); err != nil {
				return err
			}
			fmt.Println("restored into:", cfg.DataDir)
			return nil
		},
	}
	return cmd
}

func loadConfig(configPath, dataDir string) (config.Config, error) {
	if configPath == "" {
		base := dataDir
		if base == "" {
			base = config.Default().DataDir
		}
		configPath = filepath.Join(base, "config.yaml")
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config %s: %w", configPath, err)
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	return cfg, nil
}

func openStore(cfg config.Config) (*task.Store, error) {
	repo, err := task.NewFileRepo(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	return task.NewStore(repo), nil
}
