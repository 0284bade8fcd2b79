package models

// Menu node types.
const (
	MenuTypeGroup = "group"
	MenuTypeItem  = "item"
)

// MenuNode is an entry of the console navigation tree. Title is an i18n key.
type MenuNode struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Type        string     `json:"type"`
	URL         string     `json:"url,omitempty"`
	Icon        string     `json:"icon,omitempty"`
	Breadcrumbs *bool      `json:"breadcrumbs,omitempty"`
	AdminOnly   bool       `json:"adminOnly,omitempty"`
	External    bool       `json:"external,omitempty"`
	Target      bool       `json:"target,omitempty"`
	Children    []MenuNode `json:"children,omitempty"`
}

// PageRoute is an entry of the console's browser routing table.
type PageRoute struct {
	Path     string `json:"path"`
	Page     string `json:"page,omitempty"`
	Private  bool   `json:"private"`
	Redirect string `json:"redirect,omitempty"`
}
