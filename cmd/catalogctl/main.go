// Command catalogctl runs maintenance tasks against the catalog database:
// schema migrations, seeding the built-in entity types and purging expired
// one-time codes. Tasks are meant to be run by hand or from an external
// scheduler.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "catalogctl",
		Short:         "Maintenance tasks for the Central Ring catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newMigrateCmd(),
		newSeedCmd(),
		newCleanupOTPCmd(),
		newVersionCmd(),
	)
	return root
}
