package commands

// User-facing fulfillment texts shared by the order operations. The wording
// is part of the conversational contract with the NLU frontend's dialogue
// flows and must not drift.
const (
	// MsgOrderNotFound answers any order operation for a session without an
	// in-progress cart.
	MsgOrderNotFound = "I'm having trouble finding your order. Please place a new order."

	// MsgItemsQuantitiesMismatch asks for clarification when the item and
	// quantity lists do not pair up.
	MsgItemsQuantitiesMismatch = "Please specify both food items and quantities clearly."

	// MsgOrderProcessingFailed is the generic apology for persistence
	// failures.
	MsgOrderProcessingFailed = "Sorry, there was an error processing your order. Please try again."
)
