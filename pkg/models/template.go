package models

// Template is a single scaffold template entry in the catalog.
type Template struct {
	Alias       string `yaml:"alias" json:"alias"`
	Repo        string `yaml:"repo" json:"repo"`
	Description string `yaml:"description" json:"description"`
	IsDefault   bool   `yaml:"is_default" json:"is_default"`
}

// Label returns the one-line form used in selection menus.
func (t Template) Label() string {
	label := t.Alias + " - " + t.Description
	if t.IsDefault {
		label += " [default]"
	}
	return label
}
