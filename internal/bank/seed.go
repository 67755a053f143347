package bank

import (
	"github.com/abhisek/bloompath/internal/bloom"
	"github.com/abhisek/bloompath/internal/conceptgraph"
)

// seedQuestions is the built-in biology bank matching the default concept
// graph. Declaration order is the stable selection order.
var seedQuestions = []Question{
	{
		ID:            "Q1.1",
		Text:          "Which of the following is considered a sign of life?",
		Options:       []string{"Being silent", "Molecular movement", "Being inanimate", "Staying still"},
		CorrectAnswer: "Molecular movement",
		BloomLevel:    bloom.Remembering,
		ConceptTag:    "Unicellular organisms",
	},
	{
		ID:            "Q1.0",
		Text:          "Which of the following is *not* a living thing?",
		Options:       []string{"Dog", "Man", "Rock", "Cow"},
		CorrectAnswer: "Rock",
		BloomLevel:    bloom.Prerequisite,
		ConceptTag:    "Living organisms",
	},
	{
		ID:            "Q1.2",
		Text:          "Why is visible movement not always a reliable sign of life?",
		Options:       []string{"Only large organisms show movement", "Some living beings are too small", "Some life processes occur at molecular levels", "Movement is not needed at all"},
		CorrectAnswer: "Some life processes occur at molecular levels",
		BloomLevel:    bloom.Understanding,
		ConceptTag:    "Movement in living organisms",
	},
	{
		ID:            "Q1.3",
		Text:          "A leafless tree stands still during winter. Which observation best supports that it is still alive?",
		Options:       []string{"It is green in color", "It produces flowers immediately", "It continues cellular activities internally", "It sheds leaves every day"},
		CorrectAnswer: "It continues cellular activities internally",
		BloomLevel:    bloom.Applying,
		ConceptTag:    "Living organisms",
	},
	{
		ID:            "Q2.1",
		Text:          "Which life process helps organisms break down food to release energy?",
		Options:       []string{"Excretion", "Nutrition", "Respiration", "Diffusion"},
		CorrectAnswer: "Respiration",
		BloomLevel:    bloom.Remembering,
		ConceptTag:    "Metabolism",
	},
	{
		ID:            "Q2.0",
		Text:          "What do living beings use to obtain energy?",
		Options:       []string{"Dust", "Heat", "Food", "Water"},
		CorrectAnswer: "Food",
		BloomLevel:    bloom.Prerequisite,
		ConceptTag:    "Metabolism",
	},
	{
		ID:            "Q2.2",
		Text:          "Why do organisms need to constantly carry out life processes?",
		Options:       []string{"To sleep better", "To prevent breakdown of body structures", "To show movement", "To make noise"},
		CorrectAnswer: "To prevent breakdown of body structures",
		BloomLevel:    bloom.Understanding,
		ConceptTag:    "Life processes",
	},
	{
		ID:            "Q2.3",
		Text:          "Which of these best explains the interdependence of respiration and nutrition?",
		Options:       []string{"Respiration provides energy for making food", "Nutrition provides food which is broken down by respiration to release energy", "Nutrition and respiration are unrelated", "Respiration eliminates waste from food"},
		CorrectAnswer: "Nutrition provides food which is broken down by respiration to release energy",
		BloomLevel:    bloom.Analyzing,
		ConceptTag:    "Metabolism",
	},
	{
		ID:            "Q3.1",
		Text:          "What do unicellular organisms use for gas exchange?",
		Options:       []string{"Blood vessels", "Heart", "Entire body surface", "Alveoli"},
		CorrectAnswer: "Entire body surface",
		BloomLevel:    bloom.Remembering,
		ConceptTag:    "Metabolism in unicellular organisms",
	},
	{
		ID:            "Q3.2",
		Text:          "Why do multicellular organisms require specialized transport systems?",
		Options:       []string{"They cannot breathe", "Their body is large and complex", "They have more blood", "They do not grow"},
		CorrectAnswer: "Their body is large and complex",
		BloomLevel:    bloom.Understanding,
		ConceptTag:    "Metabolism in multicellular organisms",
	},
	{
		ID:            "Q3.3",
		Text:          "An amoeba absorbs oxygen directly through its surface, but a frog has lungs. Why is this difference important?",
		Options:       []string{"Frogs don't need oxygen", "Amoeba has lungs too", "Multicellular organisms need systems to reach internal cells", "Frogs live in water"},
		CorrectAnswer: "Multicellular organisms need systems to reach internal cells",
		BloomLevel:    bloom.Applying,
		ConceptTag:    "Metabolism in unicellular organisms",
	},
}

// defaultBank is validated against the default graph at init.
var defaultBank = func() *Bank {
	b, err := New(seedQuestions, conceptgraph.Default())
	if err != nil {
		panic(err)
	}
	return b
}()

// Default returns the built-in question bank.
func Default() *Bank {
	return defaultBank
}
