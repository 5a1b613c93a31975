package usecase

import (
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/Oluwafemi-Adelekan/chowpal-demo/internal/domain"
	"github.com/Oluwafemi-Adelekan/chowpal-demo/internal/domain/entity"
)

// historyWindow bounds how many prior turns are sent to the completion
// service, oldest-of-the-kept-window first.
const historyWindow = 10

// imageOnlyPrompt stands in for the text of an image-only turn.
const imageOnlyPrompt = "What is in this image?"

const systemPromptFormat = `You are Chowpal, the official AI food assistant for Chowdeck in Lagos, Nigeria.

**DATA SOURCE:**
You have access to the following MENU ITEMS:
%s

And the following SPONSORED ITEMS (Ads):
%s

**CORE INSTRUCTIONS:**
1. **Food Recommendations**:
    - Suggest items explicitly from the MENU ITEMS list.
    - If suggesting specific items, you MUST append a JSON array of their IDs at the VERY end of your response like this: ` + "` ||| [102, 114, 901]`" + `
    - Do not invent items.

2. **Sponsored Ads (IMPORTANT)**:
    - You are encouraged to suggest *relevant* SPONSORED ITEMS alongside organic results.
    - Do NOT force them. If the user asks for "Water", suggesting "Coca-Cola Zero" is relevant. If they ask for "Pizza", "Hot Sauce" is relevant.
    - Verify relevance before suggesting.
    - These items are internally marked as sponsored, you just need to include their IDs in the list.

3. **Multimodal (Images)**:
    - The user may send an image of food. Identify it and suggest matching items from the menu.

4. **Tone**:
    - Friendly, helpful, Nigerian-aware.

**RESPONSE FORMAT REMINDER:**
[Your helpful text response with markdown formatting] ||| [Array of Item IDs]
`

// buildSystemPrompt serializes the catalog snapshot into the system
// instruction block. Organic and sponsored items are listed separately
// so the model can weigh them differently.
func buildSystemPrompt(catalog domain.CatalogRepository) (string, error) {
	menuJSON, err := sonic.Marshal(catalog.MenuItems())
	if err != nil {
		return "", fmt.Errorf("failed to serialize menu items: %w", err)
	}

	sponsoredJSON, err := sonic.Marshal(catalog.SponsoredItems())
	if err != nil {
		return "", fmt.Errorf("failed to serialize sponsored items: %w", err)
	}

	return fmt.Sprintf(systemPromptFormat, menuJSON, sponsoredJSON), nil
}

// buildMessages assembles the completion request: system instructions,
// the truncated history window in original order, then the current turn
// (multimodal when an image is attached).
func buildMessages(systemPrompt string, req *domain.ChatRequest) []entity.PromptMessage {
	history := req.History
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}

	messages := make([]entity.PromptMessage, 0, len(history)+2)
	messages = append(messages, entity.PromptMessage{
		Role: entity.RoleSystem,
		Text: systemPrompt,
	})

	for _, turn := range history {
		role := entity.RoleAssistant
		if turn.Sender == entity.SenderUser {
			role = entity.RoleUser
		}
		messages = append(messages, entity.PromptMessage{
			Role: role,
			Text: turn.Text,
		})
	}

	current := entity.PromptMessage{
		Role: entity.RoleUser,
		Text: req.Message,
	}
	if req.Image != "" {
		current.ImageURL = req.Image
		if current.Text == "" {
			current.Text = imageOnlyPrompt
		}
	}

	return append(messages, current)
}
