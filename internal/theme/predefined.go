package theme

const (
	LightName = "light"
	DarkName  = "dark"
)

func GetPredefinedThemes() map[string]*Theme {
	return map[string]*Theme{
		LightName: LightTheme(),
		DarkName:  DarkTheme(),
	}
}

func GetThemeNames() []string {
	return []string{
		LightName,
		DarkName,
	}
}

func DarkTheme() *Theme {
	return &Theme{
		Name: DarkName,

		// semantic
		Primary:   "#BB9AF7",
		Secondary: "#7AA2F7",
		Success:   "#9ECE6A",
		Error:     "#F7768E",
		Warning:   "#E0AF68",
		Info:      "#7DCFFF",

		// text
		TextPrimary:   "#C0CAF5",
		TextSecondary: "#9AA5CE",
		TextMuted:     "#565F89",

		// background
		BgPrimary:   "#1A1B26",
		BgSecondary: "#24283B",

		// rating
		RatingHigh: "#9ECE6A",
		RatingMid:  "#E0AF68",
		RatingLow:  "#F7768E",

		// chart
		ChartBar:   "#7AA2F7",
		ChartPoint: "#BB9AF7",
		ChartAxis:  "#3B4261",

		// UI element
		BorderColor:   "#BB9AF7",
		SelectedBg:    "#BB9AF7",
		SelectedFg:    "#1A1B26",
		HeaderBg:      "#BB9AF7",
		HeaderFg:      "#1A1B26",
		Separator:     "#3B4261",
		HelpText:      "#565F89",
		SubtitleText:  "#565F89",
		TableSelected: "55",
	}
}

func LightTheme() *Theme {
	return &Theme{
		Name: LightName,

		// semantic
		Primary:   "#5B3CC4",
		Secondary: "#2563EB",
		Success:   "#059669",
		Error:     "#DC2626",
		Warning:   "#D97706",
		Info:      "#0284C7",

		// text
		TextPrimary:   "#1F2937",
		TextSecondary: "#6B7280",
		TextMuted:     "#9CA3AF",

		// background
		BgPrimary:   "#FFFFFF",
		BgSecondary: "#F3F4F6",

		// rating
		RatingHigh: "#059669",
		RatingMid:  "#D97706",
		RatingLow:  "#DC2626",

		// chart
		ChartBar:   "#2563EB",
		ChartPoint: "#5B3CC4",
		ChartAxis:  "#D1D5DB",

		// UI element
		BorderColor:   "#5B3CC4",
		SelectedBg:    "#5B3CC4",
		SelectedFg:    "#FFFFFF",
		HeaderBg:      "#5B3CC4",
		HeaderFg:      "#FFFFFF",
		Separator:     "#D1D5DB",
		HelpText:      "#6B7280",
		SubtitleText:  "#9CA3AF",
		TableSelected: "57",
	}
}
