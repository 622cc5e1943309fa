package types

const (
	PreferenceWallpaper   = "wallpaper"
	PreferenceSidebarOpen = "sidebar_open"
)
