// Package entity defines the data structures shared by the web layer.
package entity

// Msg is the envelope every API response uses. Data is always a JSON
// object, empty when there is nothing to return.
type Msg struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}
