package handlers

import (
	"net/http"

	"resiosctl/database"
	"resiosctl/i18n"
	"resiosctl/logger"
	"resiosctl/models"
)

type localeSetting struct {
	Locale    string   `json:"locale"`
	Supported []string `json:"supported,omitempty"`
}

// GetLocaleSettingHandler returns the language used for validation messages.
func GetLocaleSettingHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, localeSetting{
		Locale:    i18n.NewPrinter(storedLocale()).Language(),
		Supported: i18n.Supported(),
	})
}

// SetLocaleSettingHandler stores the preferred locale. An empty locale clears
// the setting so the configured default applies again.
func SetLocaleSettingHandler(w http.ResponseWriter, r *http.Request) {
	var req localeSetting
	if err := decodeJSON(r, &req); err != nil {
		logger.Error("SetLocaleSettingHandler: Error decoding request body: %v", err)
		writeError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	value := ""
	if req.Locale != "" {
		value = i18n.NewPrinter(req.Locale).Language()
	}
	if err := database.SetSetting(models.LocaleKey, value); err != nil {
		logger.Error("SetLocaleSettingHandler: Error saving locale setting: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to save locale setting")
		return
	}
	writeJSON(w, http.StatusOK, localeSetting{Locale: i18n.NewPrinter(storedLocale()).Language()})
}
