package converter

// Configuration is the validated input of a conversion
type Configuration struct {
	// SplitIDs references registry entries. Order is the segment order of
	// the run; the same id may appear more than once.
	SplitIDs []string `json:"splitIds"`

	// Ordered is written to AutoSplitterSettings/Ordered
	Ordered bool `json:"ordered"`

	// EndTriggeringAutosplit is written to AutoSplitterSettings/AutosplitEndRuns
	EndTriggeringAutosplit bool `json:"endTriggeringAutosplit"`

	CategoryName string `json:"categoryName" validate:"required"`
	GameName     string `json:"gameName" validate:"required"`

	Variables Variables `json:"variables"`
}

// Variables holds optional run metadata. Empty strings mean absent.
type Variables struct {
	Platform string `json:"platform,omitempty"`
	Patch    string `json:"patch,omitempty"`
	// Glitch is a free-form glitch category label such as "All Glitches".
	// It only affects the suggested file name.
	Glitch string `json:"glitch,omitempty"`
}

// rawConfiguration mirrors Configuration with pointers where presence matters
type rawConfiguration struct {
	SplitIDs               []string   `json:"splitIds" validate:"required"`
	Ordered                *bool      `json:"ordered" validate:"required"`
	EndTriggeringAutosplit *bool      `json:"endTriggeringAutosplit" validate:"required"`
	CategoryName           string     `json:"categoryName" validate:"required"`
	GameName               string     `json:"gameName" validate:"required"`
	Variables              *Variables `json:"variables"`
}
