package view

// User-facing messages.
const (
	MsgFetchGamesFailed        = "Failed to fetch games. Please try again."
	MsgFetchAchievementsFailed = "Failed to fetch achievements. Please try again."
	MsgSearchFailed            = "Failed to search achievements. Please try again."
	MsgSaveFailed              = "An error occurred. Please try again."
	MsgDeleteGameFailed        = "Failed to delete game. Please try again."
	MsgDeleteAchievementFailed = "Failed to delete achievement. Please try again."

	PromptDeleteGame        = "Are you sure you want to delete this game?"
	PromptDeleteAchievement = "Are you sure you want to delete this achievement?"

	ChatGreeting = "Hello! I'm your gaming assistant. Ask me anything about games, strategies, or tips!"
	ChatNotSure  = "I'm not sure how to respond to that. Could you try asking something else?"
	ChatOffline  = "Sorry, I'm having trouble connecting to the server. Please try again later."
)
