package models

// DarkModeRequest is the JSON body of PUT /account/dark-mode.
type DarkModeRequest struct {
	// AccountID is sent by the page script as a string.
	AccountID string `json:"accountId"`
	DarkMode  bool   `json:"darkMode"`
}

// DarkModeResponse is the JSON reply of PUT /account/dark-mode.
type DarkModeResponse struct {
	Success bool `json:"success"`
}
