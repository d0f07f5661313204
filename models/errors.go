package models

// ErrorDetail is one entry of a validation error response. Loc is the path of
// the offending value, starting at "body".
type ErrorDetail struct {
	Type string   `json:"type"`
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
}

type ValidationErrorResponse struct {
	Detail []ErrorDetail `json:"detail"`
}

// DetailResponse is the body of routing errors such as 404 and 405.
type DetailResponse struct {
	Detail string `json:"detail"`
}
