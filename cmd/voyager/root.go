package main

import (
	"github.com/spf13/cobra"

	"github.com/voyagerhq/voyager/internal/policy"
	"github.com/voyagerhq/voyager/internal/sqlite"
	"github.com/voyagerhq/voyager/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	seedDir   string
	jsonMode  bool
	userID    string
	role      string
}

var flags rootFlags

// Global store state, initialized by PersistentPreRunE for commands that
// need it.
var (
	backend *sqlite.Backend
	exec    *sqlite.Executor
)

var rootCmd = &cobra.Command{
	Use:   "voyager",
	Short: "Voyager tracks visited countries and travel vibes",
	Long: `Voyager is the storage core of a travel-tracking application. It
manages country reference data, curated vibes, per-user visits and vibe
selections, and derived travel statistics.`,
	SilenceUsage:       true,
	PersistentPreRunE:  openStore,
	PersistentPostRunE: closeStore,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: .voyager)")
	rootCmd.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "data directory (default: .voyager-db)")
	rootCmd.PersistentFlags().StringVar(&flags.seedDir, "seed-dir", "", "seed feed directory (default: <config-dir>/seeds)")
	rootCmd.PersistentFlags().BoolVar(&flags.jsonMode, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().StringVar(&flags.userID, "user", "", "acting user id (authenticated subject)")
	rootCmd.PersistentFlags().StringVar(&flags.role, "role", "", "acting role: anonymous, authenticated, or service")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(countryCmd)
	rootCmd.AddCommand(visitCmd)
	rootCmd.AddCommand(vibeCmd)
	rootCmd.AddCommand(statsCmd)
}

// storeless commands run without attaching the backend.
var storeless = map[string]bool{
	"version": true,
	"init":    true,
	"help":    true,
}

// openStore attaches the backend and builds the executor for commands
// that operate on data.
func openStore(cmd *cobra.Command, args []string) error {
	if storeless[cmd.Name()] || cmd.Name() == "voyager" {
		return nil
	}
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	backend = sqlite.NewBackend()
	if err := backend.Attach(cfg); err != nil {
		return err
	}
	exec = sqlite.NewExecutor(backend, policy.Default())
	return nil
}

// closeStore detaches the backend if it was opened.
func closeStore(cmd *cobra.Command, args []string) error {
	if backend == nil {
		return nil
	}
	err := backend.Detach()
	backend = nil
	exec = nil
	return err
}

// subject builds the acting subject from the --user and --role flags.
// With a user id and no role, the subject is authenticated; with
// neither, it is anonymous.
func subject() types.Subject {
	switch flags.role {
	case string(types.RoleService):
		return types.Service()
	case string(types.RoleAnonymous):
		return types.Anonymous()
	case string(types.RoleAuthenticated):
		return types.Subject{ID: flags.userID, Role: types.RoleAuthenticated}
	}
	if flags.userID != "" {
		return types.Subject{ID: flags.userID, Role: types.RoleAuthenticated}
	}
	return types.Anonymous()
}
