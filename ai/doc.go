// Package ai defines the boundary to external AI capabilities: text
// embedding and generative completion. Implementations live in
// subpackages (openai for OpenAI-compatible services, mock for tests).
package ai
