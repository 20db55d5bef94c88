package config

import (
	_ "embed"
)

//go:embed defaults/guess.yaml
var defaultLayoutYAML []byte

// DefaultLayout returns the built-in layout.
func DefaultLayout() Layout {
	return Layout{
		Title: "Devine le nombre",
		Elements: map[string]Element{
			"guess_input": {ID: "tentative", Placeholder: "1 - 20", CharLimit: 8, Numeric: true},
			"submit":      {ID: "boutonDeviner", Label: "Deviner"},
			"restart":     {ID: "boutonRejouer", Label: "Rejouer"},
			"output":      {ID: "resultat", Width: 64},
		},
		Theme: Theme{
			Neutral: "",
			Warning: "#FFA500",
			Low:     "#ADD8E6",
			High:    "#F08080",
			Win:     "#90EE90",
		},
	}
}

// GetDefaultYAML returns the embedded default layout YAML.
func GetDefaultYAML() []byte {
	return defaultLayoutYAML
}
