// Package voice adapts spoken input and output for the dashboard: per-mode
// prosody for synthesized replies, a language hint from the text itself, and
// the quick voice commands the original dashboard recognized locally.
package voice

import (
	"regexp"
	"unicode"
)

// Prosody is the speech rate/pitch pair applied to a synthesized reply.
// 1.0 is the engine's neutral value on both axes.
type Prosody struct {
	Rate  float64
	Pitch float64
}

var modeProsody = map[string]Prosody{
	"friend":  {Rate: 1.03, Pitch: 1.05},
	"teacher": {Rate: 0.95, Pitch: 0.95},
	"gym":     {Rate: 1.10, Pitch: 1.15},
	"mentor":  {Rate: 0.92, Pitch: 0.90},
}

// ProsodyFor maps a mode to its voice parameters, falling back to friend
// for anything unrecognized, same as the system-prompt mapping.
func ProsodyFor(mode string) Prosody {
	if p, ok := modeProsody[mode]; ok {
		return p
	}
	return modeProsody["friend"]
}

// LangHint picks the synthesis language from the text: Devanagari means
// Hindi, everything else defaults to Indian English.
func LangHint(text string) string {
	for _, r := range text {
		if unicode.Is(unicode.Devanagari, r) {
			return "hi-IN"
		}
	}
	return "en-IN"
}

// Command is a locally handled voice command, detected before anything is
// sent to the server.
type Command int

const (
	CommandNone Command = iota
	CommandWake
	CommandChapterDone
)

var (
	wakePattern        = regexp.MustCompile(`(?i)\barise\b`)
	chapterDonePattern = regexp.MustCompile(`(?i)done|complete|khatam|ho gaya`)
)

// DetectCommand checks a transcript for the wake word or a chapter-done
// phrase. Wake wins when both match.
func DetectCommand(transcript string) Command {
	if wakePattern.MatchString(transcript) {
		return CommandWake
	}
	if chapterDonePattern.MatchString(transcript) {
		return CommandChapterDone
	}
	return CommandNone
}
