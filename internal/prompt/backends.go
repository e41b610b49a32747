package prompt

import (
	"os"
	"sort"
)

// Backend describes one image-generation backend the prompts are written
// for. The toolkit never calls a backend itself; the env var list exists
// so the prompt command can pre-flight missing keys before the user pastes
// a prompt into an external pipeline.
type Backend struct {
	Name       string
	EnvVars    []string
	Deprecated bool
}

// Backends maps backend identifiers to their configuration.
var Backends = map[string]Backend{
	"openai": {
		Name:    "OpenAI gpt-image-1",
		EnvVars: []string{"OPENAI_API_KEY"},
	},
	"replicate": {
		Name:       "Replicate IPAdapter Style SDXL (DEPRECATED)",
		EnvVars:    []string{"REPLICATE_API_TOKEN"},
		Deprecated: true,
	},
	"ideogram": {
		Name:       "Ideogram v3 (DEPRECATED)",
		EnvVars:    []string{"IDEOGRAM_API_KEY", "IDEOGRAM_API_URL"},
		Deprecated: true,
	},
	"prompt": {
		Name: "Prompt Only (Testing)",
	},
}

// BackendNames returns the backend identifiers in sorted order.
func BackendNames() []string {
	names := make([]string, 0, len(Backends))
	for name := range Backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MissingKeys returns the environment variables a backend requires that
// are not currently set.
func MissingKeys(backend Backend) []string {
	var missing []string
	for _, key := range backend.EnvVars {
		if os.Getenv(key) == "" {
			missing = append(missing, key)
		}
	}
	return missing
}
