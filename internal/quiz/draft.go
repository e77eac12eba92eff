package quiz

import "strings"

type draftStage int

const (
	stageText draftStage = iota
	stageOptions
	stageCorrect
)

// Draft accumulates a new question across the multi-turn authoring dialog:
// first the prompt, then options one per message until the done keyword,
// finally the correct answer.
type Draft struct {
	stage    draftStage
	language string

	text    string
	options []string
}

// NewDraft starts an authoring dialog for the given language.
func NewDraft(language string) *Draft {
	return &Draft{stage: stageText, language: language}
}

// Step feeds one user reply into the draft. done reports whether the reply
// matched the configured done keyword. It returns the message code to send
// next, plus the finished question once the dialog completes.
func (d *Draft) Step(reply string, done bool) (string, *Question) {
	reply = strings.TrimSpace(reply)

	switch d.stage {
	case stageText:
		if reply == "" {
			return MsgAskQuestion, nil
		}
		d.text = reply
		d.stage = stageOptions
		return MsgAskFirstOption, nil

	case stageOptions:
		if done {
			if len(d.options) < 2 {
				return MsgNeedMoreOptions, nil
			}
			d.stage = stageCorrect
			return MsgAskCorrect, nil
		}
		if reply == "" || d.hasOption(reply) {
			return MsgAskMoreOptions, nil
		}
		d.options = append(d.options, reply)
		return MsgAskMoreOptions, nil

	default:
		if !d.hasOption(reply) {
			return MsgNotAnOption, nil
		}
		q := &Question{
			Text:     d.text,
			Answers:  d.options,
			Correct:  reply,
			Language: d.language,
		}
		return MsgQuestionSaved, q
	}
}

// Options exposes the collected options so the transport can offer them as
// keyboard buttons when asking for the correct answer.
func (d *Draft) Options() []string {
	return d.options
}

func (d *Draft) hasOption(s string) bool {
	for _, o := range d.options {
		if o == s {
			return true
		}
	}
	return false
}
