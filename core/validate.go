package core

import (
	"errors"
	"regexp"
	"sort"
	"strings"
	"sync"

	"resiosctl/i18n"
	"resiosctl/models"

	"github.com/go-playground/validator/v10"
)

// Messages resolves a message key to display text.
type Messages interface {
	Message(key string) string
}

// Struct-level validation tags reported for models.Route.
const (
	tagServAppPort        = "servapp_port"
	tagProxyProtocol      = "proxy_protocol"
	tagHostRequired       = "host_required"
	tagHostShape          = "host_shape"
	tagHostProtocol       = "host_protocol"
	tagPathPrefixRequired = "path_prefix_required"
	tagPathPrefixSlash    = "path_prefix_slash"
	tagLocatorRequired    = "locator_required"
)

var (
	servAppTargetRe = regexp.MustCompile(`:[0-9]+$`)
	proxyTargetRe   = regexp.MustCompile(`^https?://`)
	hostProtocolRe  = regexp.MustCompile(`:.*?[a-zA-Z]+`)
)

// fieldOrder fixes the order in which schema messages are reported.
var fieldOrder = map[string]int{
	"Name":       0,
	"Mode":       1,
	"Target":     2,
	"Host":       3,
	"PathPrefix": 4,
	"UseHost":    5,
}

var tagMessages = map[string]string{
	tagServAppPort:        i18n.KeyTargetNoPort,
	tagProxyProtocol:      i18n.KeyTargetWrongProtocol,
	tagHostRequired:       i18n.KeyHostRequired,
	tagHostShape:          i18n.KeyHostInvalid,
	tagHostProtocol:       i18n.KeyHostIsProtocol,
	tagPathPrefixRequired: i18n.KeyPathPrefixRequired,
	tagPathPrefixSlash:    i18n.KeyPathPrefixInvalid,
	tagLocatorRequired:    i18n.KeyLocatorRequired,
}

var requiredMessages = map[string]string{
	"Name":   i18n.KeyNameRequired,
	"Mode":   i18n.KeyModeRequired,
	"Target": i18n.KeyTargetRequired,
}

var (
	routeValidateOnce sync.Once
	routeValidate     *validator.Validate
)

func routeValidator() *validator.Validate {
	routeValidateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterStructValidation(validateRouteLocators, models.Route{})
		routeValidate = v
	})
	return routeValidate
}

// validateRouteLocators checks the rules that depend on more than one field.
func validateRouteLocators(sl validator.StructLevel) {
	r := sl.Current().Interface().(models.Route)

	if r.Target != "" {
		switch r.Mode {
		case models.ModeServApp:
			if !servAppTargetRe.MatchString(r.Target) {
				sl.ReportError(r.Target, "Target", "Target", tagServAppPort, "")
			}
		case models.ModeProxy:
			if !proxyTargetRe.MatchString(r.Target) {
				sl.ReportError(r.Target, "Target", "Target", tagProxyProtocol, "")
			}
		}
	}

	if r.UseHost {
		switch {
		case r.Host == "":
			sl.ReportError(r.Host, "Host", "Host", tagHostRequired, "")
		case !strings.ContainsAny(r.Host, ".:"):
			sl.ReportError(r.Host, "Host", "Host", tagHostShape, "")
		case hostProtocolRe.MatchString(r.Host):
			sl.ReportError(r.Host, "Host", "Host", tagHostProtocol, "")
		}
	}

	if r.UsePathPrefix {
		switch {
		case r.PathPrefix == "":
			sl.ReportError(r.PathPrefix, "PathPrefix", "PathPrefix", tagPathPrefixRequired, "")
		case !strings.HasPrefix(r.PathPrefix, "/"):
			sl.ReportError(r.PathPrefix, "PathPrefix", "PathPrefix", tagPathPrefixSlash, "")
		}
	} else if !r.UseHost {
		sl.ReportError(r.UseHost, "UseHost", "UseHost", tagLocatorRequired, "")
	}
}

func defaultMessages(msgs Messages) Messages {
	if msgs == nil {
		return i18n.NewPrinter("en")
	}
	return msgs
}

// ValidateRouteSchema runs the field rules on route and returns at most one
// message per field, ordered Name, Mode, Target, Host, PathPrefix, UseHost.
func ValidateRouteSchema(route models.Route, msgs Messages) []string {
	msgs = defaultMessages(msgs)

	err := routeValidator().Struct(route)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	type fieldMessage struct {
		order int
		key   string
	}
	byField := make(map[string]fieldMessage, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if _, dup := byField[field]; dup {
			continue
		}
		key, ok := tagMessages[fe.Tag()]
		if fe.Tag() == "required" {
			key, ok = requiredMessages[field]
		}
		if !ok {
			key = fe.Error()
		}
		order, known := fieldOrder[field]
		if !known {
			order = len(fieldOrder)
		}
		byField[field] = fieldMessage{order: order, key: key}
	}

	collected := make([]fieldMessage, 0, len(byField))
	for _, fm := range byField {
		collected = append(collected, fm)
	}
	sort.SliceStable(collected, func(i, j int) bool {
		if collected[i].order != collected[j].order {
			return collected[i].order < collected[j].order
		}
		return collected[i].key < collected[j].key
	})

	out := make([]string, 0, len(collected))
	for _, fm := range collected {
		out = append(out, msgs.Message(fm.key))
	}
	return out
}

// ValidateRoute checks a candidate route against the schema and against the
// names already present in routes. Every rule is evaluated: schema messages
// come first, the name-collision message last. An empty result means valid.
func ValidateRoute(route models.Route, routes models.RouteCollection, msgs Messages) []string {
	msgs = defaultMessages(msgs)

	errs := ValidateRouteSchema(route, msgs)
	if routes.HasName(route.Name) {
		errs = append(errs, msgs.Message(i18n.KeyNameAlreadyExists))
	}
	if errs == nil {
		return []string{}
	}
	return errs
}
