package dto

import (
	"net/http"
	"time"
)

type BaseResponse struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func NewBaseResponse(code int, message string, data interface{}) *BaseResponse {
	return &BaseResponse{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

func NewBadRequestResponse(message string) *BaseResponse {
	return NewBaseResponse(http.StatusBadRequest, message, nil)
}

func NewSuccessResponse(message string, data interface{}) *BaseResponse {
	return NewBaseResponse(http.StatusOK, message, data)
}

// EngineRelay is the engine's answer as received, before any decoding.
type EngineRelay struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// MarketForm is the payload of the market selector and quick-list buttons.
type MarketForm struct {
	Market Market `form:"market" json:"market" validate:"required,oneof=US India"`
}

// ScanForm is the payload of the scanner view's submit button.
type ScanForm struct {
	Symbols string `form:"symbols" json:"symbols"`
}

// EngineHealth is the last result of the scan engine reachability probe.
type EngineHealth struct {
	Checked   bool      `json:"checked"`
	Reachable bool      `json:"reachable"`
	CheckedAt time.Time `json:"checked_at,omitempty"`
	Error     string    `json:"error,omitempty"`
}
