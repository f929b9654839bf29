package main

import (
	"fmt"
	"strings"

	"github.com/gogpu/gg"
	"github.com/spf13/viper"

	"github.com/gogpu/graticule/grid"
	"github.com/gogpu/graticule/render"
)

// styleConfig overrides parts of a level style. Unset fields keep the
// default.
type styleConfig struct {
	DrawLines  *bool    `mapstructure:"draw_lines"`
	LineColor  string   `mapstructure:"line_color"`
	LineWidth  *float64 `mapstructure:"line_width"`
	LineStyle  string   `mapstructure:"line_style"`
	DrawLabels *bool    `mapstructure:"draw_labels"`
	LabelColor string   `mapstructure:"label_color"`
	LabelSize  *float64 `mapstructure:"label_size"`
	LabelBold  *bool    `mapstructure:"label_bold"`
}

// styleKeys lists the styleConfig keys that can be set from the environment.
var styleKeys = []string{
	"draw_lines", "line_color", "line_width", "line_style",
	"draw_labels", "label_color", "label_size", "label_bold",
}

type config struct {
	Levels map[string]styleConfig `mapstructure:"levels"`
}

// loadStyles applies the level overrides of a YAML, TOML or JSON file to
// styles. Single values can also come from the environment, e.g.
// GRATICULE_LEVELS_2_LINE_COLOR.
func loadStyles(path string, styles *render.Styles) error {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	v.SetEnvPrefix("GRATICULE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Unmarshal only sees environment keys that are bound.
	for level := range grid.NumLevels {
		for _, key := range styleKeys {
			if err := v.BindEnv(fmt.Sprintf("levels.%d.%s", level, key)); err != nil {
				return fmt.Errorf("bind env: %w", err)
			}
		}
	}

	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	for name, sc := range cfg.Levels {
		level, err := grid.ParseLevel(name)
		if err != nil {
			return err
		}
		st, err := sc.apply(styles.For(level))
		if err != nil {
			return fmt.Errorf("level %v: %w", level, err)
		}
		if err := styles.Set(name, st); err != nil {
			return err
		}
	}
	return nil
}

func (sc styleConfig) apply(st render.Style) (render.Style, error) {
	if sc.DrawLines != nil {
		st.DrawLines = *sc.DrawLines
	}
	if sc.LineColor != "" {
		st.LineColor = gg.Hex(sc.LineColor)
	}
	if sc.LineWidth != nil {
		st.LineWidth = *sc.LineWidth
	}
	if sc.LineStyle != "" {
		ls, err := parseLineStyle(sc.LineStyle)
		if err != nil {
			return st, err
		}
		st.LineStyle = ls
	}
	if sc.DrawLabels != nil {
		st.DrawLabels = *sc.DrawLabels
	}
	if sc.LabelColor != "" {
		st.LabelColor = gg.Hex(sc.LabelColor)
	}
	if sc.LabelSize != nil {
		st.LabelSize = *sc.LabelSize
	}
	if sc.LabelBold != nil {
		st.LabelBold = *sc.LabelBold
	}
	return st, nil
}

func parseLineStyle(s string) (render.LineStyle, error) {
	for _, ls := range []render.LineStyle{render.Solid, render.Dashed, render.Dotted} {
		if strings.EqualFold(s, ls.String()) {
			return ls, nil
		}
	}
	return 0, fmt.Errorf("%w: line style %q", render.ErrInvalidStyle, s)
}
