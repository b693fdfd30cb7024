package handler

import "github.com/danstoll/Northpass-PP-sub000/internal/interfaces/http/dto"

// APIResponse is a generic response wrapper with a typed data field
type APIResponse[T any] struct {
	Success bool           `json:"success"`
	Data    T              `json:"data,omitempty"`
	Error   *dto.ErrorInfo `json:"error,omitempty"`
	Meta    *dto.Meta      `json:"meta,omitempty"`
}

// ErrorResponse is the error envelope returned by every endpoint
type ErrorResponse struct {
	Success bool           `json:"success" example:"false"`
	Error   *dto.ErrorInfo `json:"error,omitempty"`
}

// CountData carries a bare count in a response
type CountData struct {
	Count int `json:"count"`
}
