package cli

import (
	"github.com/spf13/cobra"

	"github.com/wheelhouse-py/wheelhouse/pkg/store"
)

// listCommand creates the list command showing the contents of the store.
func (c *CLI) listCommand() *cobra.Command {
	var storeDir string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List installed wheels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := store.New(storeDir)
			if err != nil {
				return err
			}
			filenames, err := st.List()
			if err != nil {
				return err
			}
			if len(filenames) == 0 {
				printInfo("Store is empty")
				printDetail("Directory: %s", st.Dir())
				return nil
			}
			for _, fn := range filenames {
				printFile(fn)
			}
			printDetail("%d wheel(s) in %s", len(filenames), st.Dir())
			return nil
		},
	}

	cmd.Flags().StringVar(&storeDir, "store-dir", "", "artifact store directory (default: wheels/ next to the binary)")
	return cmd
}
