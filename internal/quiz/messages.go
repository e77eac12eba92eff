package quiz

// Message codes name every user-facing phrase the bot can emit. The transport
// layer resolves them to localized text through the locale bundle, so the core
// never embeds human-readable strings.
const (
	MsgWelcome         = "welcome"
	MsgCongrats        = "congrats"
	MsgAskLanguage     = "ask_language"
	MsgLanguageChanged = "language_changed"
	MsgRight           = "right"
	MsgWrong           = "wrong"
	MsgCleared         = "cleared"
	MsgStats           = "stats"
	MsgAskQuestion     = "ask_question"
	MsgAskFirstOption  = "ask_first_option"
	MsgAskMoreOptions  = "ask_more_options"
	MsgNeedMoreOptions = "need_more_options"
	MsgAskCorrect      = "ask_correct"
	MsgNotAnOption     = "not_an_option"
	MsgQuestionSaved   = "question_saved"
)

// MessageCodes lists every code the core can produce. Used at startup to
// verify that each configured language covers the full set.
func MessageCodes() []string {
	return []string{
		MsgWelcome,
		MsgCongrats,
		MsgAskLanguage,
		MsgLanguageChanged,
		MsgRight,
		MsgWrong,
		MsgCleared,
		MsgStats,
		MsgAskQuestion,
		MsgAskFirstOption,
		MsgAskMoreOptions,
		MsgNeedMoreOptions,
		MsgAskCorrect,
		MsgNotAnOption,
		MsgQuestionSaved,
	}
}
