package config

// Scriptfile represents the structure of the cbuild.yaml script.
type Scriptfile struct {
	Version   string                `yaml:"version"`
	Compiler  string                `yaml:"compiler"`
	Extension string                `yaml:"extension"`
	Default   string                `yaml:"default"`
	Libraries map[string]LibraryDTO `yaml:"libraries"`
	Targets   []TargetDTO           `yaml:"targets"`
}

// TargetDTO represents a target definition in the script.
type TargetDTO struct {
	Name        string    `yaml:"name"`
	Output      string    `yaml:"output"`
	Description string    `yaml:"description"`
	Systems     []string  `yaml:"systems"`
	Sources     []string  `yaml:"sources"`
	CFlags      string    `yaml:"cflags"`
	When        []WhenDTO `yaml:"when"`
	Libraries   []UseDTO  `yaml:"libraries"`
}

// LibraryDTO represents a library definition in the script.
type LibraryDTO struct {
	Include []string  `yaml:"include"`
	LibDirs []string  `yaml:"libdirs"`
	Link    string    `yaml:"link"`
	When    []WhenDTO `yaml:"when"`
}

// WhenDTO is a conditional block applied when every given selector matches.
type WhenDTO struct {
	Mode    string   `yaml:"mode"`
	OS      string   `yaml:"os"`
	Sources []string `yaml:"sources"`
	CFlags  string   `yaml:"cflags"`
	Include []string `yaml:"include"`
	LibDirs []string `yaml:"libdirs"`
	Link    string   `yaml:"link"`
}

// UseDTO binds a declared library to a target.
type UseDTO struct {
	Use string `yaml:"use"`
	Dir string `yaml:"dir"`
}
