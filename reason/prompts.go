package reason

import "fmt"

// answerMarker separates model reasoning from the answer proper; anything
// before the last occurrence is discarded.
const answerMarker = "Final Answer:"

const groundedPromptTemplate = `You are an expert insurance analyst. Your task is to provide a clear and concise answer to the user's question based ONLY on the provided policy context. Do not show your reasoning steps.

Policy Context:
%s

User Query: %s

Final Answer:`

const reformatPromptTemplate = `Based on the following key information: %q

Provide a direct and concise answer to the user's question: %q`

// groundedPrompt asks the model to answer from the assembled context.
func groundedPrompt(contextText, question string) string {
	return fmt.Sprintf(groundedPromptTemplate, contextText, question)
}

// reformatPrompt asks the model only to phrase an already-derived tool
// result as an answer.
func reformatPrompt(result, question string) string {
	return fmt.Sprintf(reformatPromptTemplate, result, question)
}
