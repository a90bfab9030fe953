package agent

import "google.golang.org/genai"

const model = "gemini-2.5-pro"

// newFacilitator creates the expert in charge of the conversation, with the
// other experts exposed to it as callable functions.
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			The user is an analyst looking at a leaderboard of Polymarket accounts ranked by
			realized trading profit. He wants to understand the figures, compare accounts, or
			get context about them.

			Learn about the experts' skills from the Tools and ask them questions. They are at
			your service and 100% dedicated to you, they keep context of your previous questions.

			Devise a plan of questions to ask each expert and come up with the best response to
			the user's request. Never invent figures: everything numeric must come from the
			Accountant.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAccountant creates the expert that carries the computed leaderboard.
// It is the only source of truth for figures in the conversation.
func NewAccountant(leaderboard string) *Expert {
	return &Expert{
		Name: "Accountant",
		Description: `This is the Accountant. He computed the leaderboard and knows each account's
		volumes, average prices, cost basis, realized profit and ROI. Ask the Accountant
		whenever you need a figure.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an accountant. You computed the report below from a ledger of Polymarket
				buy/sell transactions using FIFO cost basis matching: each sell is matched against
				the oldest unconsumed buy lots, realized profit is the sum of
				(sell price - lot price) x matched quantity, and ROI is realized profit over sell
				proceeds. Sells exceeding the bought lots are unmatched and earn nothing. Accounts
				that only sold are not in the report.

				Answer questions strictly from this report, and say so when a figure is not in it.

` + leaderboard}}},
		},
	}
}

// NewResearcher creates the expert with Google Search grounding, for
// context about the ranked accounts and the markets they traded.
func NewResearcher() *Expert {
	return &Expert{
		Name: "Researcher",
		Description: `This is the Researcher. He can search the web for anything public about
		wallet addresses, Polymarket markets, or prediction market news. Ask the Researcher
		whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a researcher specialized in crypto and prediction markets. You leverage
			Google Search to ground your assertions in a solid truth, and you know how to
			relate what you find to the user's request.
				`}}},
		},
	}
}
