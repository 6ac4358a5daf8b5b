package solver

import (
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/rafael/mathsolver/internal/models"
)

// responseShape is the JSON shape the model is asked to produce. It is
// spelled out in the system prompt verbatim; downstream consumers parse
// exactly these fields.
const responseShape = `{
  "steps": [
    {
      "step": 1,
      "description": "Clear explanation of this step",
      "formula": "Mathematical formula used (if applicable)",
      "result": "Result of this step (if applicable)"
    }
  ],
  "explanation": "Overall explanation of the solution approach",
  "concepts": ["concept1", "concept2"],
  "finalAnswer": "The final answer",
  "confidence": 95
}`

// buildMessages constructs the chat message list for a solve request,
// branching on presence of image data. With an image the problem text is
// optional supplementary context; without one it is the problem itself.
func buildMessages(req models.SolveRequest) []openai.ChatCompletionMessage {
	if req.ImageData != "" {
		system := fmt.Sprintf(
			"You are an expert mathematics tutor specializing in %s. Analyze the mathematical problem in the image and provide a detailed step-by-step solution.\n\nRespond with JSON in this format:\n%s",
			req.Category, responseShape)

		return []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: system,
			},
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type: openai.ChatMessagePartTypeText,
						Text: fmt.Sprintf("Please solve this %s problem with difficulty level %d/5. If there's additional text context: %s",
							req.Category, req.Difficulty, req.ProblemText),
					},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL: ImageDataURL(req.ImageData),
						},
					},
				},
			},
		}
	}

	system := fmt.Sprintf(
		"You are an expert mathematics tutor specializing in %s. Provide detailed step-by-step solutions with clear explanations.\n\nRespond with JSON in this format:\n%s",
		req.Category, responseShape)

	return []openai.ChatCompletionMessage{
		{
			Role:    openai.ChatMessageRoleSystem,
			Content: system,
		},
		{
			Role: openai.ChatMessageRoleUser,
			Content: fmt.Sprintf("Solve this %s problem (difficulty %d/5): %s",
				req.Category, req.Difficulty, req.ProblemText),
		},
	}
}

// ImageDataURL wraps raw base64 image bytes in a data URI as expected by
// vision-capable chat endpoints. The same URI is stored on the Problem.
func ImageDataURL(imageData string) string {
	return "data:image/jpeg;base64," + imageData
}
