package dto

// ChatRequest carries a single user message plus optional prior context text.
type ChatRequest struct {
	Message string `json:"message"`
	Context string `json:"context"`
}

// ChatResponse returns the generated reply.
type ChatResponse struct {
	Response string `json:"response"`
}
