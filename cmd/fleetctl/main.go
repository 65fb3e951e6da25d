package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := buildRoot(command{connect: connectFleet, out: os.Stdout})
	if err := root.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type GlobalFlags struct {
	EnvFile string
}

type SweepFlags struct {
	ServerID string
}

type DueFlags struct {
	Limit int
}

func buildRoot(c command) *cobra.Command {
	globalFlags := &GlobalFlags{}
	c.envFile = &globalFlags.EnvFile

	root := &cobra.Command{
		Use:   "fleetctl",
		Short: "Run fleet health checks and renewals from the command line",
		Long: `fleetctl runs the same operations as the fleet service against the
configured database, without going through the HTTP API.

Examples:
  fleetctl probe 6f1c...          # test SSH connectivity of a server
  fleetctl check 2a9e...          # check one service
  fleetctl renew 9b7d...          # execute a renewal now
  fleetctl sweep                  # probe and check every server`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&globalFlags.EnvFile, "env-file", "./.env", "path to the .env file")

	root.AddCommand(
		createProbeCommand(c),
		createCheckCommand(c),
		createCheckServerCommand(c),
		createRenewCommand(c),
		createTestCommand(c),
		createDueCommand(c, &DueFlags{}),
		createSweepCommand(c, &SweepFlags{}),
		createSummaryCommand(c),
	)
	return root
}

func createProbeCommand(c command) *cobra.Command {
	return &cobra.Command{
		Use:   "probe <server-id>",
		Short: "Test SSH connectivity and record the server's connection status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.Probe(cmd.Context(), args[0])
		},
	}
}

func createCheckCommand(c command) *cobra.Command {
	return &cobra.Command{
		Use:   "check <service-id>",
		Short: "Check one service and record its status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.Check(cmd.Context(), args[0])
		},
	}
}

func createCheckServerCommand(c command) *cobra.Command {
	return &cobra.Command{
		Use:   "check-server <server-id>",
		Short: "Check every service of a server in sequence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.CheckServer(cmd.Context(), args[0])
		},
	}
}

func createRenewCommand(c command) *cobra.Command {
	return &cobra.Command{
		Use:   "renew <renewal-id>",
		Short: "Execute a renewal now and record the outcome",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.Renew(cmd.Context(), args[0])
		},
	}
}

func createTestCommand(c command) *cobra.Command {
	return &cobra.Command{
		Use:   "test <renewal-id>",
		Short: "Run a renewal script once without recording anything",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.Test(cmd.Context(), args[0])
		},
	}
}

func createDueCommand(c command, flags *DueFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "due",
		Short: "Execute every renewal whose next execution time has passed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.Due(cmd.Context(), *flags)
		},
	}
	cmd.Flags().IntVar(&flags.Limit, "limit", 100, "maximum number of renewals to execute")
	return cmd
}

func createSweepCommand(c command, flags *SweepFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Probe and check every server, or one server with --server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.Sweep(cmd.Context(), *flags)
		},
	}
	cmd.Flags().StringVar(&flags.ServerID, "server", "", "only sweep this server")
	return cmd
}

func createSummaryCommand(c command) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print fleet status counts and overdue renewals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.Summary(cmd.Context())
		},
	}
}
