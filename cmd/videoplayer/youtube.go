package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/varoOP/videoplayer/internal/youtube"
)

var youtubeCmd = &cobra.Command{
	Use:   "youtube",
	Short: "YouTube helpers",
}

var youtubeExtractCmd = &cobra.Command{
	Use:   "extract URL...",
	Short: "Print the video id of each YouTube link",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		missing := 0
		for _, raw := range args {
			id, ok := youtube.ExtractVideoID(raw)
			if !ok {
				fmt.Fprintf(os.Stderr, "no video id found in %q\n", raw)
				missing++
				continue
			}
			fmt.Println(id)
		}

		if missing > 0 {
			return fmt.Errorf("%d of %d links had no video id", missing, len(args))
		}
		return nil
	},
}

func init() {
	youtubeCmd.AddCommand(youtubeExtractCmd)
	rootCmd.AddCommand(youtubeCmd)
}
