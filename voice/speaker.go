package voice

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Speaker synthesizes text aloud. Calls block until playback finishes;
// starting a second utterance while one is playing is the caller's race to
// lose, nothing here cancels the first.
type Speaker interface {
	Speak(ctx context.Context, text, mode string) error
}

// Recognizer captures one utterance from the microphone and returns its
// transcript.
type Recognizer interface {
	Listen(ctx context.Context) (string, error)
}

// CommandSpeaker drives an espeak-compatible TTS binary. Rate and pitch are
// scaled onto espeak's scales (175 wpm neutral, pitch 0-99 with 50 neutral).
type CommandSpeaker struct {
	Binary string // defaults to "espeak"
}

func (s *CommandSpeaker) binary() string {
	if s.Binary == "" {
		return "espeak"
	}
	return s.Binary
}

func (s *CommandSpeaker) Speak(ctx context.Context, text, mode string) error {
	p := ProsodyFor(mode)

	voice := "en"
	if LangHint(text) == "hi-IN" {
		voice = "hi"
	}

	args := []string{
		"-v", voice,
		"-s", fmt.Sprintf("%d", int(175*p.Rate)),
		"-p", fmt.Sprintf("%d", int(50*p.Pitch)),
		text,
	}

	cmd := exec.CommandContext(ctx, s.binary(), args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("speak: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// CommandRecognizer shells out to an STT binary that records one utterance
// and prints the transcript to stdout.
type CommandRecognizer struct {
	Binary string
	Args   []string
}

func (r *CommandRecognizer) Listen(ctx context.Context) (string, error) {
	if r.Binary == "" {
		return "", fmt.Errorf("listen: no recognizer binary configured")
	}
	cmd := exec.CommandContext(ctx, r.Binary, r.Args...)
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("listen: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}
