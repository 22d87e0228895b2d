package model

// PredictRequest is the body accepted by the predict endpoint. A missing
// text field is treated as the empty string.
type PredictRequest struct {
	Text string `json:"text" example:"Scientists discover new planet similar to Earth"`
}

// Prediction is Verity's output type: a FAKE/REAL label with the
// probability of that label, rounded to three decimal places.
type Prediction struct {
	Label       string  `json:"label" example:"REAL"`
	Probability float64 `json:"probability" example:"0.959"`
	InputText   string  `json:"input_text" example:"Scientists discover new planet similar to Earth"`
}

// ErrorResponse is returned with every non-2xx API response.
type ErrorResponse struct {
	Error string `json:"error" example:"invalid request body"`
}
