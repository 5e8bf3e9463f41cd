package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/breedview/breeds/internal/breed"
)

func newLikedCmd(opts *rootOptions) *cobra.Command {
	var download bool

	cmd := &cobra.Command{
		Use:   "liked",
		Short: "List liked images",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, done, err := services(cmd, opts)
			if err != nil {
				return err
			}
			defer done()

			liked := svc.Favorites.List()
			if len(liked) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No liked breeds found")
				return nil
			}
			items := make([]breed.Item, len(liked))
			for i, src := range liked {
				items[i] = breed.NewItem(src)
			}

			if !download {
				renderItems(cmd.OutOrStdout(), items, svc.Favorites.IsLiked)
				return nil
			}

			result := svc.Downloader.DownloadAll(cmd.Context(), items)
			for _, path := range result.Saved {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			if len(result.Failed) > 0 {
				return fmt.Errorf("%d of %d downloads failed", len(result.Failed), len(items))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&download, "download", false, "download every liked image")
	return cmd
}

func newLikeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "like <url>...",
		Short: "Like images",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, done, err := services(cmd, opts)
			if err != nil {
				return err
			}
			defer done()

			for _, src := range args {
				if err := svc.Favorites.Add(src); err != nil {
					return fmt.Errorf("like %s: %w", src, err)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d liked\n", svc.Favorites.Len())
			return nil
		},
	}
}

func newUnlikeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "unlike <url>...",
		Short: "Remove images from your likes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, done, err := services(cmd, opts)
			if err != nil {
				return err
			}
			defer done()

			for _, src := range args {
				if err := svc.Favorites.Remove(src); err != nil {
					return fmt.Errorf("unlike %s: %w", src, err)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d liked\n", svc.Favorites.Len())
			return nil
		},
	}
}

func newDownloadCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "download <url>",
		Short: "Download one image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, done, err := services(cmd, opts)
			if err != nil {
				return err
			}
			defer done()

			path, err := svc.Downloader.Download(cmd.Context(), breed.NewItem(args[0]))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}
