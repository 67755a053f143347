package session

import "time"

// Summary holds the figures shown on the home and history screens.
type Summary struct {
	Duration        time.Duration
	QuestionsServed int
	Correct         int
	Accuracy        float64
	MasteredCount   int
	TotalConcepts   int
	LearningDone    int
	LearningTotal   int
}

// BuildSummary computes the learner's current progress figures.
func (l *Learner) BuildSummary() Summary {
	served := l.Practice.History.Len()
	correct := l.Practice.History.CorrectCount()

	var accuracy float64
	if served > 0 {
		accuracy = float64(correct) / float64(served)
	}

	graph := l.Practice.Store.Graph()
	return Summary{
		Duration:        time.Since(l.startedAt),
		QuestionsServed: served,
		Correct:         correct,
		Accuracy:        accuracy,
		MasteredCount:   l.Practice.Store.MasteredCount(),
		TotalConcepts:   graph.Len(),
		LearningDone:    l.Learning.CompletedMain(),
		LearningTotal:   len(l.Learning.Course().MainFrames()),
	}
}
