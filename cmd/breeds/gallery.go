package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/breedview/breeds/internal/breed"
	"github.com/breedview/breeds/internal/gallery"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list [term]",
		Short: "List breeds and sub-breeds",
		Long:  "List every breed and sub-breed, optionally narrowed to entries containing term.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, done, err := services(cmd, opts)
			if err != nil {
				return err
			}
			defer done()

			list := svc.Gateway.AllBreeds(cmd.Context())
			if len(list) == 0 {
				return fmt.Errorf("breed catalog unavailable")
			}
			term := ""
			if len(args) == 1 {
				term = args[0]
			}
			for _, opt := range breed.Filter(breed.Options(list), term) {
				fmt.Fprintln(cmd.OutOrStdout(), opt)
			}
			return nil
		},
	}
}

func newSearchCmd(opts *rootOptions) *cobra.Command {
	var liked bool

	cmd := &cobra.Command{
		Use:   "search <breed> [- sub-breed]",
		Short: "Show images of a breed",
		Long: `Show images of a breed or sub-breed, for example:

  breeds search bulldog
  breeds search bulldog - french

When the breed has no images the random gallery is shown instead.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, done, err := services(cmd, opts)
			if err != nil {
				return err
			}
			defer done()

			filter := gallery.FilterAll
			if liked {
				filter = gallery.FilterLiked
			}
			g := svc.Gallery(filter)

			req, ok := g.Select(strings.Join(args, " "))
			if !ok {
				return fmt.Errorf("nothing to search for")
			}
			g.RunSearch(cmd.Context(), req)

			view := g.View()
			if len(view.Images) == 0 && filter == gallery.FilterAll {
				fmt.Fprintf(cmd.ErrOrStderr(), "No images for %q, showing random dogs\n", req.Query.String())
				g.RefreshRandom(cmd.Context())
				view = g.View()
			}
			if view.Empty() {
				fmt.Fprintln(cmd.OutOrStdout(), view.EmptyMessage())
				return nil
			}
			renderItems(cmd.OutOrStdout(), view.Items(), g.IsLiked)
			return nil
		},
	}
	cmd.Flags().BoolVar(&liked, "liked", false, "only show liked images")
	return cmd
}

func newRandomCmd(opts *rootOptions) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Show random dog images",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, done, err := services(cmd, opts)
			if err != nil {
				return err
			}
			defer done()

			n := count
			if n <= 0 {
				n = svc.Config.RandomCount
			}
			images := svc.Gateway.RandomImages(cmd.Context(), n)
			if len(images) == 0 {
				return fmt.Errorf("no random images fetched")
			}
			items := make([]breed.Item, len(images))
			for i, src := range images {
				items[i] = breed.NewItem(src)
			}
			renderItems(cmd.OutOrStdout(), items, svc.Favorites.IsLiked)
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 0, "number of images (default from config)")
	return cmd
}

// renderItems prints items as a table of liked marker, breed and URL.
func renderItems(w io.Writer, items []breed.Item, isLiked func(string) bool) {
	var (
		accent = lipgloss.Color("208")

		headerStyle = lipgloss.NewStyle().Foreground(accent).Bold(true)
		cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	)

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return cellStyle
		}).
		Headers("#", "♥", "BREED", "IMAGE")

	for i, item := range items {
		mark := ""
		if isLiked(item.Src) {
			mark = "♥"
		}
		name := item.Name
		if name == "" {
			name = "-"
		}
		t.Row(strconv.Itoa(i+1), mark, name, item.Src)
	}
	fmt.Fprintln(w, t.Render())
}
