package llm

// Assistant personas. The mode picks both the system instruction sent
// upstream and the voice prosody used when the reply is spoken.
const (
	ModeFriend  = "friend"
	ModeTeacher = "teacher"
	ModeGym     = "gym"
	ModeMentor  = "mentor"
)

var stylePrompts = map[string]string{
	ModeFriend:  "You are a friendly, casual assistant. Be supportive and short with some emojis.",
	ModeTeacher: "You are a clear and patient teacher. Explain step-by-step with examples.",
	ModeGym:     "You are an energetic gym trainer. Use motivational tone and specifics about exercises.",
	ModeMentor:  "You are a wise mentor. Give balanced, reflective guidance and next steps.",
}

// SystemPromptFor maps a mode to its system instruction. Unrecognized or
// empty modes fall back to friend rather than erroring.
func SystemPromptFor(mode string) string {
	if p, ok := stylePrompts[mode]; ok {
		return p
	}
	return stylePrompts[ModeFriend]
}
