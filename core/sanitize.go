package core

import (
	"strings"

	"resiosctl/models"
)

// SanitizeRoute normalizes a route built from a form before it is submitted.
// The input is not modified; the returned route always has a SmartShield and
// never carries the transient SmartShieldEnabled toggle.
func SanitizeRoute(in models.Route) models.Route {
	out := in

	if !out.UseHost {
		out.Host = ""
	}
	if !out.UsePathPrefix {
		out.PathPrefix = ""
	}

	out.Name = strings.TrimSpace(out.Name)

	shield := models.SmartShieldPolicy{}
	if in.SmartShield != nil {
		shield = *in.SmartShield
	}
	if in.SmartShieldEnabled != nil {
		shield.Enabled = *in.SmartShieldEnabled
	}
	out.SmartShield = &shield
	out.SmartShieldEnabled = nil

	return out
}
