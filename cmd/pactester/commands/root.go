// Package commands implements the CLI for the pactester tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.trai.ch/pactester/internal/build"
	"go.trai.ch/pactester/internal/core/domain"
)

const (
	flagWPADURL      = "wpad-url"
	flagWPADFile     = "wpad-file"
	flagCheckDNS     = "check-dns"
	flagNoCache      = "no-cache"
	flagPurgeCache   = "purge-cache"
	flagCacheDir     = "cache-dir"
	flagCacheExpires = "cache-expires"
	flagVerbose      = "verbose"
	flagDebug        = "debug"
)

// CLI represents the command line interface for pactester.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, args domain.CLIArgs) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:           "pactester [flags] hostname [hostname...]",
		Short:         "Check which proxy a PAC/WPAD file returns for the given hostnames",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE:          c.run,
	}

	flags := rootCmd.Flags()
	flags.StringP(flagWPADURL, "u", "", "Get the WPAD file from an HTTP server at `URL`")
	flags.StringP(flagWPADFile, "f", "", "Path to the WPAD `FILE`")
	flags.BoolP(flagCheckDNS, "d", false, "Check the DNS resolution of the FQDN")
	flags.BoolP(flagNoCache, "n", false, "Do not use cached files")
	flags.BoolP(flagPurgeCache, "p", false, "Clear the cache directory")
	flags.StringP(flagCacheDir, "c", "", "Use a custom cache `DIR`")
	flags.IntP(flagCacheExpires, "e", 0, "Cache expiration time in `SECONDS`")
	flags.BoolP(flagVerbose, "v", false, "Enable verbose logging output")
	flags.Bool(flagDebug, false, "Enable debug logging output")
	rootCmd.MarkFlagsMutuallyExclusive(flagWPADURL, flagWPADFile)

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	// -v is taken by --verbose, so the version flag gets no shorthand.
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c.rootCmd = rootCmd
	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func (c *CLI) run(cmd *cobra.Command, hostnames []string) error {
	flags := cmd.Flags()

	args := domain.CLIArgs{
		Hostnames:    hostnames,
		PACURL:       changed(flags, flagWPADURL, flags.GetString),
		PACFile:      changed(flags, flagWPADFile, flags.GetString),
		CheckDNS:     changed(flags, flagCheckDNS, flags.GetBool),
		NoCache:      changed(flags, flagNoCache, flags.GetBool),
		CacheDir:     changed(flags, flagCacheDir, flags.GetString),
		CacheExpires: changed(flags, flagCacheExpires, flags.GetInt),
	}
	args.PurgeCache, _ = flags.GetBool(flagPurgeCache)
	args.Verbose, _ = flags.GetBool(flagVerbose)
	args.Debug, _ = flags.GetBool(flagDebug)

	return c.app.Run(cmd.Context(), args)
}

// changed returns the flag value only when the user set it.
func changed[T any](flags *pflag.FlagSet, name string, get func(string) (T, error)) *T {
	if !flags.Changed(name) {
		return nil
	}
	v, err := get(name)
	if err != nil {
		return nil
	}
	return &v
}
