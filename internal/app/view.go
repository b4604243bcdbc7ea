package app

import (
	"clima/internal/notify"
	"clima/internal/presenter"
)

// View is the render surface the controller drives. Implementations bind
// these calls to whatever the user sees; the controller never reads back.
type View interface {
	RenderCurrent(location string, current presenter.CurrentBlock)
	RenderHourly(entries []presenter.HourlyEntry)
	RenderWeekly(entries []presenter.WeeklyEntry)
	SetTheme(theme presenter.ThemeBlock)
	SetTitle(title, favicon string)
	ShowNotification(n notify.Notification)
	ClearNotification()
	SetLoading(loading bool)
	SetDarkMode(dark bool)
}
