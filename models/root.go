package models

type RootResponse struct {
	Message string `json:"message"`
}
