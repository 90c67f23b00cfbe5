package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"FrontendMastery/internal/landing"
	"FrontendMastery/internal/web/components"
)

func renderCmd() *cobra.Command {
	var (
		dark     bool
		menuOpen bool
		out      string
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write the landing page as static HTML",
		RunE: func(cmd *cobra.Command, args []string) error {
			var w io.Writer = cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("create %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}
			page := components.Page(components.Props{
				State: landing.State{Dark: dark, MenuOpen: menuOpen},
			})
			if err := page.Render(w); err != nil {
				return fmt.Errorf("render page: %w", err)
			}
			log.Debug("page_rendered", "dark", dark, "menu_open", menuOpen, "out", out)
			return nil
		},
	}
	cmd.Flags().BoolVar(&dark, "dark", false, "render in dark mode")
	cmd.Flags().BoolVar(&menuOpen, "menu-open", false, "render with the mobile menu open")
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default stdout)")
	return cmd
}
