package entities

// PrototypeToken is the default on-map representation of an actor
type PrototypeToken struct {
	Bar1      TokenBar   `json:"bar1" yaml:"bar1"`
	Bar2      TokenBar   `json:"bar2" yaml:"bar2"`
	DimSight  int        `json:"dimSight" yaml:"dimSight"`
	Vision    bool       `json:"vision" yaml:"vision"`
	ActorLink bool       `json:"actorLink" yaml:"actorLink"`
	Flags     TokenFlags `json:"flags" yaml:"flags"`
}

// TokenBar maps a display bar to an attribute path on the actor
type TokenBar struct {
	Attribute string `json:"attribute" yaml:"attribute"`
}

type TokenFlags struct {
	Barbrawl *BarbrawlFlags `json:"barbrawl,omitempty" yaml:"barbrawl,omitempty"`
}

// BarbrawlFlags is the configuration consumed by the Bar Brawl add-on
type BarbrawlFlags struct {
	ResourceBars map[string]*ResourceBar `json:"resourceBars" yaml:"resourceBars"`
}

// BarVisibility values understood by Bar Brawl
type BarVisibility int

const (
	BarVisibilityNone   BarVisibility = 0
	BarVisibilityHover  BarVisibility = 40
	BarVisibilityAlways BarVisibility = 50
)

// ResourceBar is one stacked health bar drawn on a token
type ResourceBar struct {
	ID              string        `json:"id" yaml:"id"`
	Attribute       string        `json:"attribute" yaml:"attribute"`
	Label           string        `json:"label" yaml:"label"`
	MinColor        string        `json:"mincolor" yaml:"mincolor"`
	MaxColor        string        `json:"maxcolor" yaml:"maxcolor"`
	Position        string        `json:"position" yaml:"position"`
	Order           int           `json:"order" yaml:"order"`
	OwnerVisibility BarVisibility `json:"ownerVisibility" yaml:"ownerVisibility"`
	OtherVisibility BarVisibility `json:"otherVisibility" yaml:"otherVisibility"`
	HideFull        bool          `json:"hideFull" yaml:"hideFull"`
	HideEmpty       bool          `json:"hideEmpty" yaml:"hideEmpty"`
}
