package book

// NodeType classifies how a spread connects character storylines.
type NodeType string

const (
	NodeSolo     NodeType = "solo"
	NodeMeeting  NodeType = "meeting"
	NodeMirrored NodeType = "mirrored"
	NodeResonant NodeType = "resonant"
)

// NodeTypes lists every valid node type, in display order.
var NodeTypes = []NodeType{NodeSolo, NodeMeeting, NodeMirrored, NodeResonant}

// Valid reports whether t is one of the enumerated node types.
func (t NodeType) Valid() bool {
	switch t {
	case NodeSolo, NodeMeeting, NodeMirrored, NodeResonant:
		return true
	}
	return false
}

// DisplayName returns the human-readable name used by story rendering.
func (t NodeType) DisplayName() string {
	switch t {
	case NodeSolo:
		return "Solo"
	case NodeMeeting:
		return "Meeting Node"
	case NodeMirrored:
		return "Mirrored Node"
	case NodeResonant:
		return "Resonant Node"
	}
	return string(t)
}

// RequiredSoloSpreads are the 1-indexed story positions that must be
// character-specific (no joint pages).
var RequiredSoloSpreads = []int{1, 11, 12}

// ExpectedSpreads is the number of spreads in a complete story.
const ExpectedSpreads = 12

// Character is one loaded character document. Immutable after load.
type Character struct {
	ID         string     `yaml:"id" validate:"required"`
	Attributes Attributes `yaml:"attributes"`
	Story      []string   `yaml:"story"`

	// File is the filename the character was loaded from.
	File string `yaml:"-"`
}

// Attributes holds the descriptive fields of a character.
type Attributes struct {
	Name              string   `yaml:"name"`
	Age               int      `yaml:"age"`
	Gender            string   `yaml:"gender"`
	Traits            []string `yaml:"traits"`
	Hobbies           []string `yaml:"hobbies"`
	VisualDescription []string `yaml:"visual_description"`
}

// Name returns the display name, falling back to the upper-cased code.
func (c *Character) Name() string {
	if c.Attributes.Name != "" {
		return c.Attributes.Name
	}
	return "Unknown"
}

// Page is one loaded page/spread document. The raw map is kept alongside
// the typed fields because several consistency checks care about key
// presence, not just zero values.
type Page struct {
	File         string         `mapstructure:"-"`
	NodeType     string         `mapstructure:"node_type"`
	Spread       int            `mapstructure:"spread"`
	Beat         string         `mapstructure:"beat"`
	Description  string         `mapstructure:"description"`
	Visual       string         `mapstructure:"visual"`
	Text         string         `mapstructure:"text"`
	Scenes       []Scene        `mapstructure:"scenes"`
	Location     string         `mapstructure:"location"`
	SharedAction string         `mapstructure:"shared_action"`
	MeetingData  map[string]any `mapstructure:"meeting_data"`
	MirroredData map[string]any `mapstructure:"mirrored_data"`
	ResonantData map[string]any `mapstructure:"resonant_data"`

	raw map[string]any
}

// Has reports whether the underlying document contains the given key,
// regardless of its value.
func (p *Page) Has(key string) bool {
	_, ok := p.raw[key]
	return ok
}

// HasScenes reports whether the page uses the scene-based layout.
func (p *Page) HasScenes() bool {
	return len(p.Scenes) > 0
}

// Scene is one half of a two-page spread in the scene-based layout.
type Scene struct {
	Page       string `mapstructure:"page"`
	PageNumber int    `mapstructure:"page_number"`
	Focus      string `mapstructure:"focus"`
	Visual     string `mapstructure:"visual"`
	Text       string `mapstructure:"text"`

	raw map[string]any
}

// Has reports whether the scene entry contains the given key.
func (s *Scene) Has(key string) bool {
	_, ok := s.raw[key]
	return ok
}

// World is the optional global metadata document.
type World struct {
	Name         string        `mapstructure:"name"`
	VisualStyle  []string      `mapstructure:"visual_style"`
	Interactions []Interaction `mapstructure:"-"`
}

// Interaction links a group of characters through one or more spread nodes.
type Interaction struct {
	Characters []string          `mapstructure:"characters"`
	Nodes      []InteractionNode `mapstructure:"nodes"`
}

// InteractionNode places an interaction at a specific spread.
type InteractionNode struct {
	Spread   int    `mapstructure:"spread"`
	Type     string `mapstructure:"type"`
	PageFile string `mapstructure:"page_file"`
}
