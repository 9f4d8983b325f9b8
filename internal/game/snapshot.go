package game

import "fmt"

// Snapshot is a read-only view of the machine for rendering.
type Snapshot struct {
	Phase        Phase
	Settings     Settings
	SessionID    string
	TableFactor  int
	QuestionText string
	// Display is the typed answer while awaiting input, otherwise the feedback message.
	Display  string
	Answer   AnswerState
	Button   ButtonState
	Progress string
	Index    int
	Correct  int
	Total    int
	Attempts []Attempt
}

// Score formats the correct count over the total.
func (s Snapshot) Score() string {
	return fmt.Sprintf("%d/%d", s.Correct, s.Total)
}

func feedbackMessage(state AnswerState, answer int) string {
	switch state {
	case AnswerCorrect:
		return fmt.Sprintf("Correct, it's %d!", answer)
	case AnswerWrong:
		return fmt.Sprintf("Oops - it's %d.", answer)
	default:
		return ""
	}
}
