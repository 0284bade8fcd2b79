package core

import "resiosctl/models"

func boolPtr(b bool) *bool { return &b }

// MenuGroups returns the console navigation tree. Every call builds a new tree.
func MenuGroups() []models.MenuNode {
	return []models.MenuNode{
		{
			ID:    "group-dashboard",
			Title: "menu-items.navigation",
			Type:  models.MenuTypeGroup,
			Children: []models.MenuNode{
				{ID: "home", Title: "menu-items.navigation.home", Type: models.MenuTypeItem, URL: "/resios-ui/", Icon: "HomeOutlined", Breadcrumbs: boolPtr(false)},
				{ID: "dashboard", Title: "menu-items.navigation.monitoringTitle", Type: models.MenuTypeItem, URL: "/resios-ui/monitoring", Icon: "DashboardOutlined", Breadcrumbs: boolPtr(false), AdminOnly: true},
				{ID: "market", Title: "menu-items.navigation.marketTitle", Type: models.MenuTypeItem, URL: "/resios-ui/market-listing", Icon: "AppstoreAddOutlined", Breadcrumbs: boolPtr(false)},
			},
		},
		{
			ID:    "management",
			Title: "menu-items.managementTitle",
			Type:  models.MenuTypeGroup,
			Children: []models.MenuNode{
				{ID: "servapps", Title: "menu-items.management.servApps", Type: models.MenuTypeItem, URL: "/resios-ui/servapps", Icon: "AppstoreOutlined", AdminOnly: true},
				{ID: "url", Title: "menu-items.management.urls", Type: models.MenuTypeItem, URL: "/resios-ui/config-url", Icon: "NodeExpandOutlined"},
				{ID: "users", Title: "menu-items.management.usersTitle", Type: models.MenuTypeItem, URL: "/resios-ui/config-users", Icon: "ProfileOutlined", AdminOnly: true},
				{ID: "openid", Title: "menu-items.management.openId", Type: models.MenuTypeItem, URL: "/resios-ui/openid-manage", Icon: "PicLeftOutlined", AdminOnly: true},
				{ID: "cron", Title: "menu-items.management.schedulerTitle", Type: models.MenuTypeItem, URL: "/resios-ui/cron", Icon: "ClockCircleOutlined", AdminOnly: true},
				{ID: "config", Title: "menu-items.management.configurationTitle", Type: models.MenuTypeItem, URL: "/resios-ui/config-general", Icon: "SettingOutlined"},
			},
		},
		{
			ID:    "support",
			Title: "menu-items.support",
			Type:  models.MenuTypeGroup,
			Children: []models.MenuNode{
				{ID: "discord", Title: "aseracorp.menu-items.support.helpDiscussion", Type: models.MenuTypeItem, URL: "https://github.com/aseracorp/resiOS/discussions", Icon: "MessageOutlined", External: true, Target: true},
				{ID: "github", Title: "menu-items.support.github", Type: models.MenuTypeItem, URL: "https://github.com/aseracorp/resiOS", Icon: "GithubOutlined", External: true, Target: true},
				{ID: "documentation", Title: "menu-items.support.docsTitle", Type: models.MenuTypeItem, URL: "https://cosmos-cloud.io/doc", Icon: "QuestionOutlined", External: true, Target: true},
				{ID: "bug", Title: "menu-items.support.bugReportTitle", Type: models.MenuTypeItem, URL: "https://github.com/aseracorp/resiOS/issues", Icon: "BugOutlined", External: true, Target: true},
			},
		},
	}
}

// VisibleMenu returns the menu as seen by a user. Admin-only entries are
// dropped for non-admins, and so are groups left without children.
func VisibleMenu(isAdmin bool) []models.MenuNode {
	return filterMenu(MenuGroups(), isAdmin)
}

func filterMenu(nodes []models.MenuNode, isAdmin bool) []models.MenuNode {
	out := make([]models.MenuNode, 0, len(nodes))
	for _, n := range nodes {
		if n.AdminOnly && !isAdmin {
			continue
		}
		if n.Type == models.MenuTypeGroup {
			n.Children = filterMenu(n.Children, isAdmin)
			if len(n.Children) == 0 {
				continue
			}
		}
		out = append(out, n)
	}
	return out
}
