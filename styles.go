package unitfmt

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed styles.yaml
var stylesYAML []byte

type styleDef struct {
	Flag              string `yaml:"flag"`
	Ratio             bool   `yaml:"ratio"`
	SingleDenominator bool   `yaml:"single_denominator"`
	Product           string `yaml:"product"`
	Division          string `yaml:"division"`
	Power             string `yaml:"power"`
	Parentheses       string `yaml:"parentheses"`
	Exponent          string `yaml:"exponent"`
}

func loadStyles(data []byte) (*Registry, error) {
	var doc struct {
		Styles []styleDef `yaml:"styles"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	reg := NewRegistry()
	for _, d := range doc.Styles {
		st := Style{
			AsRatio:           d.Ratio,
			SingleDenominator: d.SingleDenominator,
			ProductFmt:        d.Product,
			DivisionFmt:       d.Division,
			PowerFmt:          d.Power,
			ParenthesesFmt:    d.Parentheses,
			Sort:              true,
		}
		switch d.Exponent {
		case "", "plain":
			st.Exponent = FormatExponent
		case "pretty":
			st.Exponent = PrettyExponent
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownRenderer, d.Exponent)
		}
		if err := reg.Register(d.Flag, st); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	reg, err := loadStyles(stylesYAML)
	if err != nil {
		panic("unitfmt: embedded styles: " + err.Error())
	}
	return reg
})

// DefaultRegistry returns the registry of built-in named styles. Treat
// it as read-only; register custom flags on a registry of your own.
func DefaultRegistry() *Registry {
	return defaultRegistry()
}
