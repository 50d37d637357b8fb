package main

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/easygit/easygit/internal/app"
	"github.com/easygit/easygit/internal/config"
	"github.com/easygit/easygit/internal/git"
	"github.com/easygit/easygit/internal/watcher"
)

// Build-time variables injected via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func init() {
	// A TUI spends most of its time waiting on git subprocesses, fsnotify
	// and terminal input; two OS threads cover the actual Go work. Respect
	// an explicit GOMAXPROCS override.
	if os.Getenv("GOMAXPROCS") == "" {
		maxProcs := 2
		if n := runtime.NumCPU(); n < maxProcs {
			maxProcs = n
		}
		runtime.GOMAXPROCS(maxProcs)
	}

	// Keep RSS low when several instances share a machine.
	debug.SetMemoryLimit(50 * 1024 * 1024) // 50 MiB
}

func main() {
	if err := buildRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func buildRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "easygit",
		Short: "An interactive terminal dashboard for git",
		Long: `easygit is a keyboard-first terminal dashboard over a git working tree.

It continuously refreshes branches, commits, stashes and working-tree
changes, and lets you checkout, branch, stage, commit, push and pull
without leaving the dashboard.`,
		RunE:          runApp,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"easygit %s\n  commit:  %s\n  built:   %s\n  go:      %s\n  os/arch: %s/%s\n",
		version, commit, date, runtime.Version(), runtime.GOOS, runtime.GOARCH,
	))

	rootCmd.AddCommand(buildVersionCmd())
	rootCmd.AddCommand(buildCompletionCmd())

	rootCmd.Flags().StringP("path", "p", ".", "Path to the git repository")

	return rootCmd
}

// buildVersionCmd creates the `easygit version` subcommand supporting --json.
func buildVersionCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(_ *cobra.Command, _ []string) error {
			info := map[string]string{
				"version": version,
				"commit":  commit,
				"date":    date,
				"go":      runtime.Version(),
				"os":      runtime.GOOS,
				"arch":    runtime.GOARCH,
			}
			if jsonOutput {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			}
			fmt.Printf("easygit %s\n", version)
			fmt.Printf("  commit:  %s\n", commit)
			fmt.Printf("  built:   %s\n", date)
			fmt.Printf("  go:      %s\n", runtime.Version())
			fmt.Printf("  os/arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output version info as JSON")

	return cmd
}

// buildCompletionCmd creates the `easygit completion` subcommand.
func buildCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for easygit.

Examples:
  # Bash (add to ~/.bashrc)
  easygit completion bash > /etc/bash_completion.d/easygit

  # Zsh (add to ~/.zshrc before compinit)
  easygit completion zsh > "${fpath[1]}/_easygit"

  # Fish
  easygit completion fish > ~/.config/fish/completions/easygit.fish`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			default:
				return fmt.Errorf("unsupported shell: %s", args[0])
			}
		},
	}
}

func runApp(cmd *cobra.Command, _ []string) error {
	repoPath, _ := cmd.Flags().GetString("path")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	cliSvc, err := git.NewCLIService(repoPath)
	if err != nil {
		return fmt.Errorf("opening repository: %w", err)
	}

	// Short TTL cache to deduplicate git calls within a single refresh cycle.
	gitSvc := git.NewCachedService(cliSvc, 500*time.Millisecond)

	model := app.New(gitSvc, cfg)

	p := tea.NewProgram(model, tea.WithAltScreen())

	// Watch .git internals so a git operation in another terminal refreshes
	// the dashboard before the next poll tick.
	if watchCh, stop, watchErr := watcher.Watch(cliSvc.GitDir(), 500*time.Millisecond); watchErr == nil {
		defer stop()
		go func() {
			for range watchCh {
				p.Send(app.RefreshMsg{})
			}
		}()
	}

	_, err = p.Run()
	return err
}
