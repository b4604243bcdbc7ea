// Package app sequences location resolution, forecast fetching and
// presentation, and owns the dashboard's session state.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"clima/internal/config"
	"clima/internal/i18n"
	"clima/internal/location"
	"clima/internal/notify"
	"clima/internal/preferences"
	"clima/internal/presenter"
	"clima/internal/types"
	"clima/internal/weather"
)

var ErrEmptyCity = fmt.Errorf("%w: empty city name", location.ErrCityNotFound)

// Controller runs one resolve→fetch→present cycle per user action. State
// writes are serialized; network calls run unlocked, so with overlapping
// actions the last response to arrive wins.
type Controller struct {
	mu    sync.Mutex
	state State

	locations     location.Service
	forecasts     weather.Service
	store         preferences.Store
	notifications *notify.Center
	view          View

	appName        string
	configuredLang string
	localeEnv      func() string
	logger         *slog.Logger
}

func NewController(
	cfg *config.Config,
	locations location.Service,
	forecasts weather.Service,
	store preferences.Store,
	view View,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		state:          State{Status: StatusIdle, Language: i18n.Portuguese},
		locations:      locations,
		forecasts:      forecasts,
		store:          store,
		notifications:  notify.NewCenter(view, cfg.App.NotificationTTL, logger),
		view:           view,
		appName:        cfg.App.Name,
		configuredLang: cfg.App.Language,
		localeEnv:      environmentLocale,
		logger:         logger.With("component", "app-controller"),
	}
}

// environmentLocale follows the POSIX precedence of locale variables
func environmentLocale() string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}

// Start loads preferences, picks the language and shows the favorite city,
// or the device location when there is none.
func (c *Controller) Start(ctx context.Context) error {
	prefs, err := c.store.Load(ctx)
	if err != nil {
		c.logger.Warn("failed to load preferences, using defaults", "error", err)
		prefs = preferences.Preferences{}
	}

	lang := c.configuredLang
	if lang == "" {
		lang = i18n.DetectLanguage(c.localeEnv())
	}
	lang = i18n.Normalize(lang)

	c.mu.Lock()
	c.state.Preferences = prefs
	c.state.Language = lang
	c.mu.Unlock()

	c.applyDarkMode(prefs.DarkMode)
	c.view.SetTitle(presenter.LoadingTitle(c.stringsFor(lang)), "")

	c.logger.Info("starting dashboard",
		"language", lang,
		"dark_mode", prefs.DarkMode,
		"favorite_city", prefs.FavoriteCity,
	)

	if prefs.FavoriteCity != "" {
		return c.SearchCity(ctx, prefs.FavoriteCity)
	}
	return c.UseDeviceLocation(ctx)
}

// SearchCity geocodes city and shows its forecast. The typed query becomes
// the favorite once the forecast is displayed.
func (c *Controller) SearchCity(ctx context.Context, city string) error {
	city = strings.TrimSpace(city)
	lang := c.language()
	text := c.stringsFor(lang)

	if city == "" {
		return c.fail(text.CityError, ErrEmptyCity)
	}

	c.beginLoading()
	defer c.endLoading()

	loc, err := c.locations.ResolveByName(ctx, city, lang)
	if err != nil {
		return c.fail(text.CityError, err)
	}

	return c.fetchAndApply(ctx, loc, lang, city)
}

// UseDeviceLocation shows the forecast for the device position. When the
// position is unavailable or denied, one error notification is shown and the
// fallback location is used instead.
func (c *Controller) UseDeviceLocation(ctx context.Context) error {
	lang := c.language()
	text := c.stringsFor(lang)

	c.beginLoading()
	defer c.endLoading()

	loc, err := c.locations.ResolveByDevice(ctx, lang)
	if err != nil {
		message := text.LocationError
		if errors.Is(err, location.ErrGeolocationUnavailable) {
			message = text.GeolocationUnsupported
		}
		c.logger.Warn("device location failed, using fallback", "error", err)
		c.notifications.Notify(message, notify.SeverityError)
		loc = c.locations.Fallback()
	}

	return c.fetchAndApply(ctx, loc, lang, "")
}

// SearchCoordinates shows the forecast for explicit coordinates. Invalid
// coordinates are reported without any network call.
func (c *Controller) SearchCoordinates(ctx context.Context, latitude, longitude float64) error {
	lang := c.language()

	loc, err := c.locations.ResolveByCoordinates(latitude, longitude)
	if err != nil {
		return c.fail(c.stringsFor(lang).CoordinatesError, err)
	}

	c.beginLoading()
	defer c.endLoading()

	return c.fetchAndApply(ctx, loc, lang, "")
}

// Refresh re-fetches the forecast for the location on display, or resolves
// the device location when nothing has been shown yet.
func (c *Controller) Refresh(ctx context.Context) error {
	c.mu.Lock()
	current := c.state.Location
	c.mu.Unlock()

	if current == nil {
		return c.UseDeviceLocation(ctx)
	}

	lang := c.language()
	c.beginLoading()
	defer c.endLoading()

	return c.fetchAndApply(ctx, *current, lang, "")
}

// ToggleDarkMode flips and persists the dark-mode preference
func (c *Controller) ToggleDarkMode(ctx context.Context) (bool, error) {
	c.mu.Lock()
	dark := !c.state.Preferences.DarkMode
	c.mu.Unlock()

	return dark, c.SetDarkMode(ctx, dark)
}

func (c *Controller) SetDarkMode(ctx context.Context, dark bool) error {
	c.mu.Lock()
	c.state.Preferences.DarkMode = dark
	prefs := c.state.Preferences
	c.mu.Unlock()

	c.applyDarkMode(dark)

	if err := c.store.Save(ctx, prefs); err != nil {
		c.logger.Error("failed to save preferences", "error", err)
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}

// SetLanguage switches the UI language and re-renders the current snapshot,
// if any, without fetching. It returns the normalized tag.
func (c *Controller) SetLanguage(tag string) string {
	lang := i18n.Normalize(tag)
	text := c.stringsFor(lang)

	c.mu.Lock()
	c.state.Language = lang
	var model *presenter.RenderModel
	if c.state.Snapshot != nil && c.state.Location != nil {
		m := presenter.Present(c.state.Snapshot, *c.state.Location, text, lang)
		model = &m
		c.state.Model = model
	}
	c.mu.Unlock()

	if model != nil {
		c.render(*model)
	} else {
		c.view.SetTitle(presenter.LoadingTitle(text), "")
	}

	c.logger.Debug("language changed", "language", lang)
	return lang
}

// State returns a copy of the session state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Strings returns the UI strings for the active language
func (c *Controller) Strings() i18n.StringTable {
	return c.stringsFor(c.language())
}

// Notification returns the visible notification, if any
func (c *Controller) Notification() (notify.Notification, bool) {
	return c.notifications.Current()
}

func (c *Controller) fetchAndApply(ctx context.Context, loc types.Location, lang, favorite string) error {
	text := c.stringsFor(lang)

	snapshot, err := c.forecasts.Fetch(ctx, loc)
	if err != nil {
		return c.fail(text.APIError, err)
	}

	model := presenter.Present(snapshot, loc, text, lang)

	c.mu.Lock()
	c.state.Status = StatusReady
	c.state.Location = &loc
	c.state.Snapshot = snapshot
	c.state.Model = &model
	c.state.LastError = ""
	if favorite != "" {
		c.state.Preferences.FavoriteCity = favorite
	}
	prefs := c.state.Preferences
	c.mu.Unlock()

	c.render(model)

	if favorite != "" {
		// a failed write only costs the favorite on next start
		if err := c.store.Save(ctx, prefs); err != nil {
			c.logger.Warn("failed to save favorite city", "city", favorite, "error", err)
		}
	}

	c.logger.Info("forecast displayed",
		"location", model.Location,
		"coordinates", loc.Coordinates.String(),
		"temperature", model.Current.Temperature,
		"theme", model.Theme.Theme,
	)
	c.notifications.Notify(text.Updated, notify.SeveritySuccess)
	return nil
}

func (c *Controller) render(model presenter.RenderModel) {
	c.view.RenderCurrent(model.Location, model.Current)
	c.view.RenderHourly(model.Hourly)
	c.view.RenderWeekly(model.Weekly)
	c.view.SetTheme(model.Theme)
	c.view.SetTitle(model.Theme.Title, model.Theme.Favicon)
}

// fail records err, notifies message and returns err unchanged
func (c *Controller) fail(message string, err error) error {
	c.mu.Lock()
	c.state.Status = StatusError
	c.state.LastError = err.Error()
	c.mu.Unlock()

	c.logger.Error("dashboard update failed", "error", err)
	c.notifications.Notify(message, notify.SeverityError)
	return err
}

func (c *Controller) beginLoading() {
	c.mu.Lock()
	c.state.Status = StatusLoading
	c.mu.Unlock()
	c.view.SetLoading(true)
}

// endLoading is deferred by every cycle so the indicator is never left on
func (c *Controller) endLoading() {
	c.view.SetLoading(false)
}

func (c *Controller) applyDarkMode(dark bool) {
	c.notifications.SetDarkMode(dark)
	c.view.SetDarkMode(dark)
}

func (c *Controller) language() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Language
}

func (c *Controller) stringsFor(lang string) i18n.StringTable {
	text := i18n.StringsFor(lang)
	if c.appName != "" {
		text.AppName = c.appName
	}
	return text
}
