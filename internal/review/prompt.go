package review

const promptTemplate = `
You are a senior software engineer reviewing a code change.
Analyze the following changes and provide a structured review:
`

// BuildPrompt embeds diff verbatim in the fixed review instructions.
func BuildPrompt(diff string) string {
	return promptTemplate + diff + "\n"
}
