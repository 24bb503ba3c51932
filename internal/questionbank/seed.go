package questionbank

// seedQuestions is the built-in catalog. Defined once at process start
// and never mutated.
var seedQuestions = []Question{
	{
		ID:          "m-1",
		Category:    CategoryMath,
		Difficulty:  1,
		Prompt:      "What is 18 + 27?",
		Choices:     []string{"35", "45", "46", "55"},
		AnswerIndex: 1,
	},
	{
		ID:          "m-2",
		Category:    CategoryMath,
		Difficulty:  1,
		Prompt:      "What is 9 x 7?",
		Choices:     []string{"54", "56", "63", "72"},
		AnswerIndex: 2,
	},
	{
		ID:          "m-3",
		Category:    CategoryMath,
		Difficulty:  2,
		Prompt:      "Solve: 3x + 5 = 26",
		Choices:     []string{"x = 5", "x = 6", "x = 7", "x = 8"},
		AnswerIndex: 1,
	},
	{
		ID:          "m-4",
		Category:    CategoryMath,
		Difficulty:  2,
		Prompt:      "If a shirt is $40 and is discounted by 25%, what is the sale price?",
		Choices:     []string{"$10", "$20", "$30", "$35"},
		AnswerIndex: 2,
	},
	{
		ID:          "m-5",
		Category:    CategoryMath,
		Difficulty:  3,
		Prompt:      "Solve: 2(x - 4) = 3x + 1",
		Choices:     []string{"x = -9", "x = -7", "x = 7", "x = 9"},
		AnswerIndex: 1,
	},
	{
		ID:          "m-6",
		Category:    CategoryMath,
		Difficulty:  4,
		Prompt:      "If f(x) = 2x^2 - 3x + 1, what is f(3)?",
		Choices:     []string{"4", "10", "12", "16"},
		AnswerIndex: 1,
	},
	{
		ID:         "l-1",
		Category:   CategoryLogic,
		Difficulty: 1,
		Prompt:     "If all blips are blops, and some blops are blats, which must be true?",
		Choices: []string{
			"Some blips are blats",
			"All blops are blips",
			"Some blats are blops",
			"No blats are blops",
		},
		AnswerIndex: 2,
	},
	{
		ID:          "l-2",
		Category:    CategoryLogic,
		Difficulty:  2,
		Prompt:      "A test has 10 questions. You get 2 points for each correct answer and -1 for each wrong answer. If you score 11 points, how many did you get correct?",
		Choices:     []string{"4", "5", "6", "7"},
		AnswerIndex: 2,
	},
	{
		ID:          "l-3",
		Category:    CategoryLogic,
		Difficulty:  3,
		Prompt:      "Three friends (A, B, C) sit in a row. A is not next to C. B is not on an end. Who is in the middle?",
		Choices:     []string{"A", "B", "C", "Cannot be determined"},
		AnswerIndex: 1,
	},
	{
		ID:         "r-1",
		Category:   CategoryReading,
		Difficulty: 1,
		Prompt:     `Passage: "A routine can feel restrictive, but it often frees attention for creative work." The author suggests routines primarily...`,
		Choices: []string{
			"prevent creativity",
			"free mental bandwidth",
			"cause boredom",
			"replace hard work",
		},
		AnswerIndex: 1,
	},
	{
		ID:         "r-2",
		Category:   CategoryReading,
		Difficulty: 2,
		Prompt:     `Passage: "When incentives reward speed over accuracy, errors become predictable." The passage implies that errors are...`,
		Choices: []string{
			"always random",
			"caused by incentives",
			"unavoidable",
			"mostly harmless",
		},
		AnswerIndex: 1,
	},
	{
		ID:         "r-3",
		Category:   CategoryReading,
		Difficulty: 3,
		Prompt:     `Passage: "Distraction is not a lack of willpower alone; it is often a mismatch between environment and intention." The author would most likely agree that...`,
		Choices: []string{
			"willpower is irrelevant",
			"changing environment can help focus",
			"intention is unnecessary",
			"distraction is a personal failure",
		},
		AnswerIndex: 1,
	},
	{
		ID:          "m-7",
		Category:    CategoryMath,
		Difficulty:  3,
		Prompt:      "If 4a - 7 = 9, what is a?",
		Choices:     []string{"1", "2", "3", "4"},
		AnswerIndex: 2,
	},
	{
		ID:          "m-8",
		Category:    CategoryMath,
		Difficulty:  4,
		Prompt:      "What is the slope of the line passing through (2, 5) and (6, 13)?",
		Choices:     []string{"1", "2", "3", "4"},
		AnswerIndex: 1,
	},
	{
		ID:          "l-4",
		Category:    CategoryLogic,
		Difficulty:  4,
		Prompt:      "If today is not Monday, and tomorrow is not Tuesday, what day could today be?",
		Choices:     []string{"Sunday", "Monday", "Tuesday", "Wednesday"},
		AnswerIndex: 0,
	},
	{
		ID:          "r-4",
		Category:    CategoryReading,
		Difficulty:  4,
		Prompt:      `Passage: "A strategy that works in calm conditions may fail under stress, revealing not weakness but incomplete testing." The author's tone is best described as...`,
		Choices:     []string{"sarcastic", "cautionary", "celebratory", "dismissive"},
		AnswerIndex: 1,
	},
}
