package cli

import (
	"github.com/spf13/cobra"

	"php-ls/internal/document"
	"php-ls/internal/logging"
	"php-ls/pkg/phrase"
)

func newTreeCommand(a *app) *cobra.Command {
	var depth int

	cmd := &cobra.Command{
		Use:   "tree [file]",
		Short: "Print the syntax tree the formatter works on",
		Long: `Print the phrase tree of a PHP file, or of stdin when no file is given.
Each line shows a phrase type or a token type with its text.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			return a.runTree(cmd, path, depth)
		},
	}

	cmd.Flags().IntVar(&depth, "depth", -1, "maximum depth to print, negative for no limit")

	return cmd
}

func (a *app) runTree(cmd *cobra.Command, path string, depth int) error {
	logger := logging.FromContext(cmd.Context())

	in, err := readInput(cmd.InOrStdin(), path)
	if err != nil {
		return err
	}

	manager, err := document.NewManager(a.config().Files.Extensions...)
	if err != nil {
		return err
	}
	defer manager.Close()

	doc, err := manager.Parse(in.uri, in.content)
	if err != nil {
		return err
	}

	for _, e := range doc.ParseResult.Errors {
		logger.Warn(e.Message, logging.FieldPath, in.name, "line", e.Line+1, "column", e.Column+1)
	}

	return phrase.Dump(cmd.OutOrStdout(), doc.Root(), doc.Content, depth)
}
