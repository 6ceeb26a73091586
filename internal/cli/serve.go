package cli

import (
	"github.com/spf13/cobra"

	"github.com/wheelhouse-py/wheelhouse/internal/server"
	"github.com/wheelhouse-py/wheelhouse/pkg/store"
)

// serveCommand creates the serve command, exposing the store as a PEP 503
// simple index for other installers.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		storeDir string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the store as a simple package index",
		Long: `Serve exposes the artifact store over HTTP using the PEP 503 simple
repository layout, so another wheelhouse (or pip) can install from it:

  wheelhouse serve --addr :8080
  wheelhouse install foo==1.0 --index-url http://localhost:8080/simple/ --files-url http://localhost:8080`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := store.New(storeDir)
			if err != nil {
				return err
			}
			printInfo("Serving %s on %s", st.Dir(), addr)
			printNextStep("Install from it", "wheelhouse install PKG==VER --index-url http://"+hostFor(addr)+"/simple/ --files-url http://"+hostFor(addr))
			return server.New(st, c.Logger).ListenAndServe(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&storeDir, "store-dir", "", "artifact store directory (default: wheels/ next to the binary)")
	return cmd
}

// hostFor makes a bare ":port" address printable as a URL host.
func hostFor(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
