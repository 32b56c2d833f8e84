package domain

// DialogueState represents user's current interaction state
type DialogueState string

const (
	StateIdle             DialogueState = "idle"
	StateAwaitingPassword DialogueState = "awaiting_password"
	StateAwaitingBuy      DialogueState = "awaiting_buy"
	StateAwaitingSell     DialogueState = "awaiting_sell"
)

// StateData holds temporary data for user's current dialogue step
type StateData struct {
	State DialogueState
	Code  string  // currency being edited
	Buy   float64 // buy rate collected before asking for sell
}
