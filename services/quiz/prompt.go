package quiz

const (
	QUIZ_GENERATION_PROMPT = `You are a quiz generator for a study application. Based on the study material below, generate exactly %d multiple-choice questions.

Requirements for every question:
1. Exactly 4 answer options, all plausible but clearly distinct from each other
2. "answer" must be the exact text of the correct option
3. A short "explanation" of why the answer is correct
4. A short "category" label naming the topic the question covers

Respond with ONLY a JSON object matching this schema, no prose before or after:
%s

Study material:
%s`

	IMAGE_GENERATION_PROMPT = `You are a quiz generator for a study application. The attached image contains study material. Generate exactly %d multiple-choice questions from its content.

Requirements for every question:
1. Exactly 4 answer options, all plausible but clearly distinct from each other
2. "answer" must be the exact text of the correct option
3. A short "explanation" of why the answer is correct
4. A short "category" label naming the topic the question covers

Submit the questions with the submit_quiz_questions tool.`
)
