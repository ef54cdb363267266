package intelligence

// adviceSystemPrompt frames the model as a consultant reviewing a workload.
const adviceSystemPrompt = `You are a freelance business consultant reviewing a freelancer's current workload.
Give exactly 3 concise, actionable pieces of advice.
Focus on prioritising urgent projects and meeting deadlines.

Output ONLY a JSON object of the form:
{"advice": ["...", "...", "..."]}

Rules:
1. Refer to projects by the names given; never invent projects.
2. Each piece of advice is a single sentence.
3. Do not add commentary outside the JSON object.`

// adviceLanguageNote is appended when a reply language is configured.
const adviceLanguageNote = "\nWrite the advice in %s."

// extractSystemPrompt asks for a bare array of task objects.
const extractSystemPrompt = `You extract a to-do list from free text written by a freelancer.
Return ONLY a JSON array of objects with the fields:
- title: short task title (string)
- dueDate: due date formatted YYYY-MM-DD, or "" when the text gives none

Assume the year %d when the text omits it.
Do not explain anything. Do not wrap the array in an object.`
