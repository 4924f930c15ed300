package constant

// Action identifies a button on a delivered flashcard notification.
type Action string

const (
	// ActionAcknowledgeEasy means the user knew the answer right away.
	ActionAcknowledgeEasy Action = "acknowledge-easy"
	// ActionAcknowledgeUnsure means the user hesitated on the answer.
	ActionAcknowledgeUnsure Action = "acknowledge-unsure"
	// ActionReviewAgain asks to see the card again later.
	ActionReviewAgain Action = "review-again"
	// ActionStopInterval halts the countdown and clears every pending notification.
	ActionStopInterval Action = "stop-interval"
)

// CategoryFlashcardActions is the notification category carrying the four
// flashcard action buttons. Every scheduled card notification is tagged with it.
const CategoryFlashcardActions = "flashcard-actions"

// CategoryActions lists the actions registered under CategoryFlashcardActions.
func CategoryActions() []Action {
	return []Action{
		ActionAcknowledgeEasy,
		ActionAcknowledgeUnsure,
		ActionReviewAgain,
		ActionStopInterval,
	}
}

func (a Action) String() string {
	return string(a)
}
