// Package settings defines the Dark Reader settings record written by the injector.
package settings

// ThemeEngine selects how the extension renders a dark page.
type ThemeEngine string

// Theme engines.
const (
	EngineCSSFilter    ThemeEngine = "cssFilter"
	EngineSVGFilter    ThemeEngine = "svgFilter"
	EngineStaticTheme  ThemeEngine = "staticTheme"
	EngineDynamicTheme ThemeEngine = "dynamicTheme"
)

// AutomationMode selects what switches the extension on and off automatically.
type AutomationMode string

// Automation modes. The empty mode disables automation.
const (
	AutomationNone     AutomationMode = ""
	AutomationTime     AutomationMode = "time"
	AutomationSystem   AutomationMode = "system"
	AutomationLocation AutomationMode = "location"
)

// AutomationBehavior is what the automation toggles.
type AutomationBehavior string

// Automation behaviors.
const (
	BehaviorOnOff  AutomationBehavior = "OnOff"
	BehaviorScheme AutomationBehavior = "Scheme"
)

// Theme modes.
const (
	ModeLight = 0
	ModeDark  = 1
)

// Record is the full settings object stored by the extension.
// Field order follows the stored key order.
type Record struct {
	Automation              Automation         `json:"automation"              toml:"automation"`
	ChangeBrowserTheme      bool               `json:"changeBrowserTheme"      toml:"changeBrowserTheme"`
	CustomThemes            []CustomSiteConfig `json:"customThemes"            toml:"customThemes"`
	DetectDarkTheme         bool               `json:"detectDarkTheme"         toml:"detectDarkTheme"`
	DisabledFor             []string           `json:"disabledFor"             toml:"disabledFor"`
	DisplayedNews           []string           `json:"displayedNews"           toml:"displayedNews"`
	EnableContextMenus      bool               `json:"enableContextMenus"      toml:"enableContextMenus"`
	EnableForPDF            bool               `json:"enableForPDF"            toml:"enableForPDF"`
	EnableForProtectedPages bool               `json:"enableForProtectedPages" toml:"enableForProtectedPages"`
	Enabled                 bool               `json:"enabled"                 toml:"enabled"`
	EnabledByDefault        bool               `json:"enabledByDefault"        toml:"enabledByDefault"`
	EnabledFor              []string           `json:"enabledFor"              toml:"enabledFor"`
	FetchNews               bool               `json:"fetchNews"               toml:"fetchNews"`
	Location                Location           `json:"location"                toml:"location"`
	Presets                 []Preset           `json:"presets"                 toml:"presets"`
	PreviewNewDesign        bool               `json:"previewNewDesign"        toml:"previewNewDesign"`
	SchemeVersion           int                `json:"schemeVersion"           toml:"schemeVersion"`
	SyncSettings            bool               `json:"syncSettings"            toml:"syncSettings"`
	SyncSitesFixes          bool               `json:"syncSitesFixes"          toml:"syncSitesFixes"`
	Theme                   Theme              `json:"theme"                   toml:"theme"`
	Time                    TimeSettings       `json:"time"                    toml:"time"`
}

// Automation controls automatic switching.
type Automation struct {
	Behavior AutomationBehavior `json:"behavior" toml:"behavior"`
	Enabled  bool               `json:"enabled"  toml:"enabled"`
	Mode     AutomationMode     `json:"mode"     toml:"mode"`
}

// Location is used by location based automation. Unknown coordinates are null.
type Location struct {
	Latitude  *float64 `json:"latitude"  toml:"latitude,omitempty"`
	Longitude *float64 `json:"longitude" toml:"longitude,omitempty"`
}

// TimeSettings holds the activation window for time based automation.
type TimeSettings struct {
	Activation   string `json:"activation"   toml:"activation"`
	Deactivation string `json:"deactivation" toml:"deactivation"`
}

// Theme is the set of filter and colour options applied to pages.
type Theme struct {
	Brightness                 int         `json:"brightness"                 toml:"brightness"`
	Contrast                   int         `json:"contrast"                   toml:"contrast"`
	DarkColorScheme            string      `json:"darkColorScheme"            toml:"darkColorScheme"`
	DarkSchemeBackgroundColor  string      `json:"darkSchemeBackgroundColor"  toml:"darkSchemeBackgroundColor"`
	DarkSchemeTextColor        string      `json:"darkSchemeTextColor"        toml:"darkSchemeTextColor"`
	Engine                     ThemeEngine `json:"engine"                     toml:"engine"`
	FontFamily                 string      `json:"fontFamily"                 toml:"fontFamily"`
	Grayscale                  int         `json:"grayscale"                  toml:"grayscale"`
	ImmediateModify            bool        `json:"immediateModify"            toml:"immediateModify"`
	LightColorScheme           string      `json:"lightColorScheme"           toml:"lightColorScheme"`
	LightSchemeBackgroundColor string      `json:"lightSchemeBackgroundColor" toml:"lightSchemeBackgroundColor"`
	LightSchemeTextColor       string      `json:"lightSchemeTextColor"       toml:"lightSchemeTextColor"`
	Mode                       int         `json:"mode"                       toml:"mode"`
	ScrollbarColor             string      `json:"scrollbarColor"             toml:"scrollbarColor"`
	SelectionColor             string      `json:"selectionColor"             toml:"selectionColor"`
	Sepia                      int         `json:"sepia"                      toml:"sepia"`
	StyleSystemControls        bool        `json:"styleSystemControls"        toml:"styleSystemControls"`
	Stylesheet                 string      `json:"stylesheet"                 toml:"stylesheet"`
	TextStroke                 int         `json:"textStroke"                 toml:"textStroke"`
	UseFont                    bool        `json:"useFont"                    toml:"useFont"`
}

// CustomSiteConfig overrides the theme for a list of URL patterns.
type CustomSiteConfig struct {
	URL     []string `json:"url"               toml:"url"`
	Theme   Theme    `json:"theme"             toml:"theme"`
	BuiltIn bool     `json:"builtIn,omitempty" toml:"builtIn,omitempty"`
}

// Preset is a named theme the user can apply to sites.
type Preset struct {
	ID    string   `json:"id"    toml:"id"`
	Name  string   `json:"name"  toml:"name"`
	URLs  []string `json:"urls"  toml:"urls"`
	Theme Theme    `json:"theme" toml:"theme"`
}
