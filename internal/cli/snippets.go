package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/codepad/internal/logging"
	"github.com/iw2rmb/codepad/runner"
	"github.com/iw2rmb/codepad/snippet"
)

const timeLayout = "2006-01-02 15:04"

func newSnippetsCommand(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "snippets",
		Aliases: []string{"snippet"},
		Short:   "Manage saved snippets",
		Long: `List, print and delete snippets saved from the editor. Snippets are stored
as YAML files in the configured snippets directory.`,
	}

	cmd.AddCommand(newSnippetsListCommand(g))
	cmd.AddCommand(newSnippetsShowCommand(g))
	cmd.AddCommand(newSnippetsDeleteCommand(g))

	return cmd
}

func newSnippetsListCommand(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List snippets, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store := snippet.NewFileStore(g.cfg.Snippets.Dir)
			items, err := store.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(items) == 0 {
				logging.Default().Info("no snippets saved", logging.FieldPath, store.Dir())
				return nil
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), snippetTable(items))
			return err
		},
	}
}

func snippetTable(items []snippet.Snippet) string {
	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("ID", "TITLE", "LANGUAGE", "UPDATED").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})

	for _, s := range items {
		lang := s.Language
		if l, ok := runner.Lookup(lang); ok {
			lang = l.Name
		}
		t.Row(s.ID, s.Title, lang, s.UpdatedAt.Local().Format(timeLayout))
	}
	return t.String()
}

func newSnippetsShowCommand(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print a snippet's code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := snippet.NewFileStore(g.cfg.Snippets.Dir).Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			logging.Default().Debug("snippet", logging.FieldTitle, s.Title, logging.FieldLanguage, s.Language)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), s.Content)
			return err
		},
	}
}

func newSnippetsDeleteCommand(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a snippet",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := snippet.NewFileStore(g.cfg.Snippets.Dir).Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			logging.Default().Info("snippet deleted", logging.FieldSnippetID, args[0])
			return nil
		},
	}
}
