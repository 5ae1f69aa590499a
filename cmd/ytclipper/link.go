package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ytclipper/ytclipper/internal/clipboard"
	"github.com/ytclipper/ytclipper/internal/clips"
	"github.com/ytclipper/ytclipper/internal/config"
	"github.com/ytclipper/ytclipper/internal/share"
	"github.com/ytclipper/ytclipper/internal/timecode"
)

type linkOptions struct {
	video string
	start string
	end   string
	title string
	base  string
	copy  bool
}

func newLinkCmd(envFile *string, cb clipboard.Writer) *cobra.Command {
	opts := linkOptions{}

	cmd := &cobra.Command{
		Use:   "link",
		Short: "Print the share link for a clip",
		Long: `Builds the same /clip link the web app produces, without starting a server.
Times accept h:mm:ss, m:ss or plain seconds.`,
		Example: `  ytclipper link --video https://youtu.be/dQw4w9WgXcQ --start 0:43 --end 1:05 --title "Chorus"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.base == "" {
				cfg, err := config.Load(*envFile)
				if err != nil {
					return fmt.Errorf("failed to load config: %w", err)
				}
				opts.base = cfg.LocalURL()
			}
			return runLink(cmd, opts, cb)
		},
	}

	cmd.Flags().StringVar(&opts.video, "video", "", "YouTube URL or 11-character video ID")
	cmd.Flags().StringVar(&opts.start, "start", clips.DefaultStartText, "clip start")
	cmd.Flags().StringVar(&opts.end, "end", clips.DefaultEndText, "clip end")
	cmd.Flags().StringVar(&opts.title, "title", clips.DefaultTitle(1), "clip title")
	cmd.Flags().StringVar(&opts.base, "base", "", "base URL of the clip page (defaults to the public URL, else the listen address)")
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "also copy the link to the clipboard")
	_ = cmd.MarkFlagRequired("video")

	return cmd
}

func runLink(cmd *cobra.Command, opts linkOptions, cb clipboard.Writer) error {
	f := clips.Form{Video: opts.video, Start: opts.start, End: opts.end, Title: opts.title}

	videoID := f.VideoID()
	if videoID == "" {
		return errors.New(clips.VideoErrorMessage)
	}
	if !f.ValidRange() {
		return fmt.Errorf("%w: %s", clips.ErrInvalidRange,
			timecode.FormatRange(f.StartSeconds(), f.EndSeconds()))
	}

	c := clips.Clip{Title: f.Title, Start: f.StartSeconds(), End: f.EndSeconds()}
	link := share.AbsoluteLink(opts.base, videoID, c)
	fmt.Fprintln(cmd.OutOrStdout(), link)

	if opts.copy {
		fmt.Fprintln(cmd.ErrOrStderr(), clipboard.Notification(cb.Write(link)))
	}
	return nil
}
