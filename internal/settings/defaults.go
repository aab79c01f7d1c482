package settings

const (
	// NewsThanks2023 is the only news item marked as displayed.
	NewsThanks2023 = "thanks-2023"

	// SchemeVersion is the settings layout version understood by the extension.
	SchemeVersion = 2
)

// DefaultTheme returns the theme written by Default.
func DefaultTheme() Theme {
	return Theme{
		Brightness:                 50,
		Contrast:                   50,
		DarkColorScheme:            "Default",
		DarkSchemeBackgroundColor:  "#181a1b",
		DarkSchemeTextColor:        "#e8e6e3",
		Engine:                     EngineDynamicTheme,
		FontFamily:                 "Helvetica Neue",
		Grayscale:                  0,
		ImmediateModify:            false,
		LightColorScheme:           "Default",
		LightSchemeBackgroundColor: "#dcdad7",
		LightSchemeTextColor:       "#181a1b",
		Mode:                       ModeDark,
		ScrollbarColor:             "",
		SelectionColor:             "auto",
		Sepia:                      0,
		StyleSystemControls:        false,
		Stylesheet:                 "",
		TextStroke:                 0,
		UseFont:                    false,
	}
}

// Default builds the settings record injected into the extension storage.
// Every call returns a new value; nothing is shared between records.
func Default() Record {
	return Record{
		Automation: Automation{
			Behavior: BehaviorOnOff,
			Enabled:  false,
			Mode:     AutomationNone,
		},
		ChangeBrowserTheme:      false,
		CustomThemes:            []CustomSiteConfig{},
		DetectDarkTheme:         false,
		DisabledFor:             []string{},
		DisplayedNews:           []string{NewsThanks2023},
		EnableContextMenus:      false,
		EnableForPDF:            true,
		EnableForProtectedPages: false,
		Enabled:                 true,
		EnabledByDefault:        true,
		EnabledFor:              []string{},
		FetchNews:               true,
		Location: Location{
			Latitude:  nil,
			Longitude: nil,
		},
		Presets:          []Preset{},
		PreviewNewDesign: false,
		SchemeVersion:    SchemeVersion,
		SyncSettings:     true,
		SyncSitesFixes:   false,
		Theme:            DefaultTheme(),
		Time: TimeSettings{
			Activation:   "18:00",
			Deactivation: "9:00",
		},
	}
}
