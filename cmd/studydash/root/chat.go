package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"studydash/voice"
)

func newChatCmd() *cobra.Command {
	var mode string
	var speak bool
	var ttsBinary string

	cmd := &cobra.Command{
		Use:   "chat <prompt>",
		Short: "Ask the assistant",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt := strings.Join(args, " ")
			ctx := context.Background()

			fmt.Fprintln(cmd.OutOrStdout(), keyStyle.Render("You: ")+prompt)
			reply := gateway().Ask(ctx, prompt, mode)
			fmt.Fprintln(cmd.OutOrStdout(), headingStyle.Render("StudyDash ("+mode+"): ")+reply)

			if speak {
				speaker := &voice.CommandSpeaker{Binary: ttsBinary}
				if err := speaker.Speak(ctx, reply, mode); err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), mutedStyle.Render("speech unavailable: "+err.Error()))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "friend", "assistant persona: friend, teacher, gym, mentor")
	cmd.Flags().BoolVar(&speak, "speak", false, "speak the reply aloud")
	cmd.Flags().StringVar(&ttsBinary, "tts", "", "TTS binary (default espeak)")
	return cmd
}

func newListenCmd() *cobra.Command {
	var mode string
	var sttBinary string
	var ttsBinary string

	cmd := &cobra.Command{
		Use:   "listen",
		Short: "Capture one spoken prompt and answer it",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			recognizer := &voice.CommandRecognizer{Binary: sttBinary}
			transcript, err := recognizer.Listen(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), keyStyle.Render("You: ")+transcript)

			speaker := &voice.CommandSpeaker{Binary: ttsBinary}

			// Quick local commands, handled without a server round trip.
			switch voice.DetectCommand(transcript) {
			case voice.CommandWake:
				fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render("Woke by voice"))
				_ = speaker.Speak(ctx, "StudyDash online.", mode)
				return nil
			case voice.CommandChapterDone:
				view, err := gateway().ChapterDone(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s chapters done: %d\n",
					goodStyle.Render("✓ Marked chapter done,"), view.DoneChapters)
				_ = speaker.Speak(ctx, "Good job!", mode)
				return nil
			}

			reply := gateway().Ask(ctx, transcript, mode)
			fmt.Fprintln(cmd.OutOrStdout(), headingStyle.Render("StudyDash ("+mode+"): ")+reply)
			if err := speaker.Speak(ctx, reply, mode); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), mutedStyle.Render("speech unavailable: "+err.Error()))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "friend", "assistant persona: friend, teacher, gym, mentor")
	cmd.Flags().StringVar(&sttBinary, "stt", "", "STT binary printing a transcript to stdout")
	cmd.Flags().StringVar(&ttsBinary, "tts", "", "TTS binary (default espeak)")
	return cmd
}
