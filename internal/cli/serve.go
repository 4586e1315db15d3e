package cli

import (
	"github.com/spf13/cobra"

	"php-ls/internal/lsp"
)

func newServeCommand(a *app) *cobra.Command {
	var address string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the language server",
		Long: `Run the language server. The protocol is spoken over stdin and stdout
unless --tcp names an address to listen on.

Logs go to stderr or to the file named by log.file in the config file.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.serve(address)
		},
	}

	cmd.Flags().StringVar(&address, "tcp", "", "listen on this address instead of stdio (e.g. localhost:7777)")

	return cmd
}

func (a *app) serve(address string) error {
	if a.info.Version != "" {
		lsp.Version = a.info.Version
	}

	server, err := lsp.NewServer(a.config())
	if err != nil {
		return err
	}

	if address != "" {
		return server.RunTCP(address)
	}
	return server.Run()
}
