// Package view holds render surfaces for the dashboard controller.
package view

import (
	"sync"

	"clima/internal/notify"
	"clima/internal/presenter"
)

// Screen is what a Memory view currently shows
type Screen struct {
	Location     string                  `json:"location"`
	Current      *presenter.CurrentBlock `json:"current,omitempty"`
	Hourly       []presenter.HourlyEntry `json:"hourly"`
	Weekly       []presenter.WeeklyEntry `json:"weekly"`
	Theme        *presenter.ThemeBlock   `json:"theme,omitempty"`
	Title        string                  `json:"title"`
	Favicon      string                  `json:"favicon,omitempty"`
	Notification *notify.Notification    `json:"notification,omitempty"`
	Loading      bool                    `json:"loading"`
	DarkMode     bool                    `json:"darkMode"`
}

// Memory keeps the last value of every render call so it can be served over
// HTTP. It is safe for concurrent use.
type Memory struct {
	mu     sync.RWMutex
	screen Screen
}

func NewMemory() *Memory {
	return &Memory{}
}

// Screen returns a copy of what is currently shown
func (m *Memory) Screen() Screen {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s := m.screen
	s.Hourly = append([]presenter.HourlyEntry(nil), m.screen.Hourly...)
	s.Weekly = append([]presenter.WeeklyEntry(nil), m.screen.Weekly...)
	return s
}

func (m *Memory) RenderCurrent(location string, current presenter.CurrentBlock) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.screen.Location = location
	m.screen.Current = &current
}

func (m *Memory) RenderHourly(entries []presenter.HourlyEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.screen.Hourly = entries
}

func (m *Memory) RenderWeekly(entries []presenter.WeeklyEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.screen.Weekly = entries
}

func (m *Memory) SetTheme(theme presenter.ThemeBlock) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.screen.Theme = &theme
}

func (m *Memory) SetTitle(title, favicon string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.screen.Title = title
	if favicon != "" {
		m.screen.Favicon = favicon
	}
}

func (m *Memory) ShowNotification(n notify.Notification) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.screen.Notification = &n
}

func (m *Memory) ClearNotification() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.screen.Notification = nil
}

func (m *Memory) SetLoading(loading bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.screen.Loading = loading
}

func (m *Memory) SetDarkMode(dark bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.screen.DarkMode = dark
}
