package models

type SendMessageRequestBody struct {
	Content string `json:"content"`
}
