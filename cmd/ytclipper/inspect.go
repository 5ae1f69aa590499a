package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ytclipper/ytclipper/internal/clipboard"
	"github.com/ytclipper/ytclipper/internal/share"
	"github.com/ytclipper/ytclipper/internal/timecode"
	"github.com/ytclipper/ytclipper/internal/youtube"
)

func newInspectCmd(cb clipboard.Reader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show how inputs are interpreted",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "video [url-or-id]",
		Short: "Extract the video ID from a URL",
		Long:  "Extract the video ID from a URL. Without an argument the clipboard is read.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input string
			if len(args) == 1 {
				input = args[0]
			} else {
				text, err := cb.Read()
				if err != nil {
					return err
				}
				input = text
			}

			id := youtube.ExtractID(input)
			if id == "" {
				return fmt.Errorf("no video ID found in %q", input)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", id, youtube.WatchURL(id))
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "time <text>",
		Short: "Parse a time such as 1:02:03 into seconds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := timecode.ParseDuration(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", s, timecode.FormatDuration(s))
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "link <share-link>",
		Short: "Decode a clip share link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := share.ParseURL(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !sc.Valid {
				fmt.Fprintln(out, "Invalid clip parameters")
				return nil
			}
			fmt.Fprintf(out, "video:\t%s\ntitle:\t%s\nrange:\t%s\n",
				sc.VideoID, sc.Title, timecode.FormatRange(sc.Start, sc.End))
			return nil
		},
	})
	return cmd
}
