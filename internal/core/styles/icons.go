package styles

var (
	IconCursor = "▸"
	IconCheck  = "✓"
	IconCross  = "✗"
	IconDot    = "•"
	IconSun    = "☀"
	IconMoon   = "☾"
)
