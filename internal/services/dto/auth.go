package dto

import "workreg_backend/internal/models"

// MeResponse is the current-user snapshot polled by the client on every
// navigation. Access carries the gate verdict so route guards do not have
// to re-derive it.
type MeResponse struct {
	User   *models.User `json:"user"`
	Access string       `json:"access"`
}
