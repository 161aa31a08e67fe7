package request

// AnswerRequest is the request body for answering the current card
type AnswerRequest struct {
	SelectedID string `json:"selected_id"`
}
