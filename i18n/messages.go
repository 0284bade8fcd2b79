// Package i18n holds the console's translated validation messages.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys, shared with the web console's translation files.
const (
	KeyNameRequired        = "global.name.validation"
	KeyModeRequired        = "global.mode.validation"
	KeyTargetRequired      = "global.target.validation"
	KeyTargetNoPort        = "mgmt.config.containerPicker.targetTypeValidation.noPort"
	KeyTargetWrongProtocol = "mgmt.config.containerPicker.targetTypeValidation.wrongProtocol"
	KeyHostRequired        = "mgmt.urls.edit.hostInput.HostRequired"
	KeyHostInvalid         = "mgmt.urls.edit.hostInput.HostValidation"
	KeyHostIsProtocol      = "mgmt.urls.edit.hostInput.HostValidation.caseIsProtocol"
	KeyPathPrefixRequired  = "mgmt.urls.edit.pathPrefixInput.pathPrefixRequired"
	KeyPathPrefixInvalid   = "mgmt.urls.edit.pathPrefixInput.pathPrefixValidation"
	KeyLocatorRequired     = "mgmt.urls.edit.pathPrefixInput.pathPrefixSource"
	KeyNameAlreadyExists   = "mgmt.urls.edit.nameValidation"
	KeyHostnamePointsTo    = "newInstall.hostnamePointsToInfo"
	KeyNoPortsAvailable    = "mgmt.urls.edit.noPortsAvailable"
)

var english = map[string]string{
	KeyNameRequired:        "Name is required",
	KeyModeRequired:        "Mode is required",
	KeyTargetRequired:      "Target is required",
	KeyTargetNoPort:        "Invalid Target, must have a port",
	KeyTargetWrongProtocol: "Invalid Target, must start with http:// or https://",
	KeyHostRequired:        "Host is required",
	KeyHostInvalid:         "Host must be a domain name (example.com) or an address with a port (1.2.3.4:8080)",
	KeyHostIsProtocol:      "Host must not contain a protocol such as http://",
	KeyPathPrefixRequired:  "Path Prefix is required",
	KeyPathPrefixInvalid:   "Path Prefix must start with /",
	KeyLocatorRequired:     "Source must be at least a Host or a Path Prefix",
	KeyNameAlreadyExists:   "Name already exists",
	KeyHostnamePointsTo:    "This hostname is pointing to {hostIp}, check that it is your server IP!",
	KeyNoPortsAvailable:    "No more ports available, please clean up your URLs",
}

var german = map[string]string{
	KeyNameRequired:        "Name ist erforderlich",
	KeyModeRequired:        "Modus ist erforderlich",
	KeyTargetRequired:      "Ziel ist erforderlich",
	KeyTargetNoPort:        "Ungültiges Ziel, ein Port muss angegeben werden",
	KeyTargetWrongProtocol: "Ungültiges Ziel, muss mit http:// oder https:// beginnen",
	KeyHostRequired:        "Host ist erforderlich",
	KeyHostInvalid:         "Host muss ein Domainname (example.com) oder eine Adresse mit Port (1.2.3.4:8080) sein",
	KeyHostIsProtocol:      "Host darf kein Protokoll wie http:// enthalten",
	KeyPathPrefixRequired:  "Pfadpräfix ist erforderlich",
	KeyPathPrefixInvalid:   "Pfadpräfix muss mit / beginnen",
	KeyLocatorRequired:     "Quelle muss mindestens ein Host oder ein Pfadpräfix sein",
	KeyNameAlreadyExists:   "Name existiert bereits",
	KeyHostnamePointsTo:    "Dieser Hostname zeigt auf {hostIp}, prüfe ob das die IP deines Servers ist!",
	KeyNoPortsAvailable:    "Keine freien Ports mehr, bitte räume deine URLs auf",
}

var supported = []language.Tag{language.English, language.German}

var (
	matcher = language.NewMatcher(supported)
	cat     = buildCatalog()
)

func buildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, msg := range english {
		_ = b.SetString(language.English, key, msg)
	}
	for key, msg := range german {
		_ = b.SetString(language.German, key, msg)
	}
	return b
}

// Printer resolves message keys for one language.
type Printer struct {
	tag language.Tag
	p   *message.Printer
}

// NewPrinter returns a Printer for the closest supported language to locale
// ("de", "de-CH", "en-US", ...). Unknown or empty locales get English.
func NewPrinter(locale string) *Printer {
	tag := language.English
	if locale != "" {
		if parsed, err := language.Parse(locale); err == nil {
			_, idx, conf := matcher.Match(parsed)
			if conf != language.No {
				tag = supported[idx]
			}
		}
	}
	return &Printer{tag: tag, p: message.NewPrinter(tag, message.Catalog(cat))}
}

// NewPrinterAccept picks the language from an Accept-Language header value.
func NewPrinterAccept(header string) *Printer {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return NewPrinter("")
	}
	tag := language.English
	if _, idx, conf := matcher.Match(tags...); conf != language.No {
		tag = supported[idx]
	}
	return &Printer{tag: tag, p: message.NewPrinter(tag, message.Catalog(cat))}
}

// Message returns the translation of key, or the key itself when unknown.
func (p *Printer) Message(key string) string {
	return p.p.Sprintf(key)
}

// Messagef resolves key and fills its {name} placeholders from vars.
func (p *Printer) Messagef(key string, vars map[string]string) string {
	msg := p.Message(key)
	for name, value := range vars {
		msg = strings.ReplaceAll(msg, "{"+name+"}", value)
	}
	return msg
}

// Language returns the BCP 47 tag in use.
func (p *Printer) Language() string {
	return p.tag.String()
}

// Supported lists the available languages.
func Supported() []string {
	out := make([]string, 0, len(supported))
	for _, t := range supported {
		out = append(out, t.String())
	}
	return out
}
