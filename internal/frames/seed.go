package frames

// defaultFrames is the built-in introduction to living organisms, used
// when no workbook is supplied. Main frames teach, remedial frames
// reteach after a wrong answer.
var defaultFrames = []Frame{
	{
		Name:     "main_frame_1",
		Heading:  "Living organisms",
		Content:  "Look around you. Some things grow, move, and respond to their surroundings. These are living organisms. A dog runs when called, a plant bends toward light, and you are reading this frame.",
		KeyFocus: "Living organisms grow, move, respond, and reproduce.",
		Question: "Which of the following is a living organism?",
		Source:   SourceMain,
		Options: []Option{
			{Answer: "A tree", Result: "Correct", NextStep: "main_frame_2", Feedback: "Yes! Trees grow, take in nutrients, and reproduce."},
			{Answer: "A rock", Result: "Wrong", NextStep: "remedial_frame_1", Feedback: "A rock never grows or responds. Let's revisit."},
		},
	},
	{
		Name:     "main_frame_2",
		Heading:  "One cell or many",
		Content:  "Every living organism is built from cells. Some, like amoeba and bacteria, are a single cell doing everything. Others, like humans and mango trees, are made of millions of cells working together.",
		KeyFocus: "Unicellular: one cell. Multicellular: many cells.",
		Question: "An amoeba is made of how many cells?",
		Source:   SourceMain,
		Options: []Option{
			{Answer: "Exactly one", Result: "Correct", NextStep: "main_frame_3", Feedback: "Right, amoeba is unicellular."},
			{Answer: "Millions", Result: "Wrong", NextStep: "remedial_frame_2", Feedback: "Not quite. Amoeba is a single cell."},
		},
	},
	{
		Name:     "main_frame_3",
		Heading:  "Life processes",
		Content:  "What makes something alive? Living organisms carry out life processes: they move, respire, sense, grow, reproduce, excrete, and take in nutrition. Together these processes keep an organism alive.",
		KeyFocus: "Movement, respiration, sensitivity, growth, reproduction, excretion, nutrition.",
		Question: "Which of these is a life process?",
		Source:   SourceMain,
		Options: []Option{
			{Answer: "Respiration", Result: "Correct", NextStep: "main_frame_4", Feedback: "Respiration releases energy from food."},
			{Answer: "Rusting", Result: "Wrong", NextStep: "remedial_frame_3", Feedback: "Rusting happens to metal, not organisms."},
		},
	},
	{
		Name:     "main_frame_4",
		Heading:  "Metabolism",
		Content:  "All the chemical reactions inside an organism, building up molecules and breaking them down for energy, are together called metabolism. In a unicellular organism one cell runs all of it; in a multicellular organism different organs share the work.",
		KeyFocus: "Metabolism is the sum of all chemical reactions in an organism.",
		Question: "What do we call all the chemical reactions inside an organism?",
		Source:   SourceMain,
		Options: []Option{
			{Answer: "Metabolism", Result: "Correct", NextStep: "complete", Feedback: "That completes the introduction. Time to practice!"},
			{Answer: "Digestion", Result: "Wrong", NextStep: "remedial_frame_3", Feedback: "Digestion is only one part of it."},
		},
	},
	{
		Name:    "remedial_frame_1",
		Heading: "Review: living or not?",
		Content: "Ask four questions about anything: does it grow, does it need food, does it respond, can it reproduce? A rock fails all four. A tree passes all four, even though it doesn't walk around.",
		Notes:   "Movement is not the only sign of life.",
		Source:  SourceRemedial,
	},
	{
		Name:    "remedial_frame_2",
		Heading: "Review: unicellular organisms",
		Content: "Unicellular means made of one cell. That single cell eats, moves, and reproduces on its own. Amoeba, paramecium, and most bacteria live this way.",
		Source:  SourceRemedial,
	},
	{
		Name:    "remedial_frame_3",
		Heading: "Review: life processes",
		Content: "Life processes are activities an organism must do to stay alive: take in nutrition, respire to release energy, excrete waste, sense and respond, move, grow, and reproduce. Chemical changes in non-living things, like rusting, are not life processes.",
		Source:  SourceRemedial,
	},
}

var defaultCourse = func() *Course {
	c, err := NewCourse(defaultFrames)
	if err != nil {
		panic("frames: invalid built-in course: " + err.Error())
	}
	return c
}()

// Default returns the built-in course.
func Default() *Course {
	return defaultCourse
}
