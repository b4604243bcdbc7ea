package app

import (
	"clima/internal/preferences"
	"clima/internal/presenter"
	"clima/internal/types"
	"clima/internal/weather"
)

type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusError   Status = "error"
)

// State is the session owned by the controller. Location, Snapshot and Model
// are replaced wholesale on every successful fetch and survive failures.
type State struct {
	Status      Status                  `json:"status"`
	Location    *types.Location         `json:"location,omitempty"`
	Snapshot    *weather.Snapshot       `json:"-"`
	Model       *presenter.RenderModel  `json:"model,omitempty"`
	Preferences preferences.Preferences `json:"preferences"`
	Language    string                  `json:"language"`
	LastError   string                  `json:"lastError,omitempty"`
}
