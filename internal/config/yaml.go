package config

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/esimov/decor"
	"github.com/esimov/decor/utils"
)

func (m *Margin) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var v float32
		if err := value.Decode(&v); err != nil {
			return errors.Wrapf(err, "line %d: margin must be a number or a mapping", value.Line)
		}
		*m = Margin{Left: v, Right: v, Top: v, Bottom: v}
		return nil
	case yaml.MappingNode:
		type plain Margin
		p := plain(*m)
		if err := value.Decode(&p); err != nil {
			return err
		}
		*m = Margin(p)
		return nil
	default:
		return errors.Errorf("line %d: margin must be a number or a mapping", value.Line)
	}
}

func (c *Corners) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var v float32
		if err := value.Decode(&v); err != nil {
			return errors.Wrapf(err, "line %d: corner radius must be a number or a mapping", value.Line)
		}
		*c = Corners{NW: v, NE: v, SE: v, SW: v}
		return nil
	case yaml.MappingNode:
		type plain Corners
		p := plain(*c)
		if err := value.Decode(&p); err != nil {
			return err
		}
		*c = Corners(p)
		return nil
	default:
		return errors.Errorf("line %d: corner radius must be a number or a mapping", value.Line)
	}
}

func (l *Length) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return errors.Errorf("line %d: expected a number or \"inf\"", value.Line)
	}
	switch strings.ToLower(strings.TrimSpace(value.Value)) {
	case "inf", "+inf", ".inf", "max":
		*l = Length(decor.Unbounded)
		return nil
	case "-inf", "-.inf":
		*l = Length(-decor.Unbounded)
		return nil
	}
	v, err := strconv.ParseFloat(value.Value, 32)
	if err != nil || math.IsNaN(v) {
		return errors.Errorf("line %d: invalid length %q", value.Line, value.Value)
	}
	*l = Length(v)
	return nil
}

func (l Length) MarshalYAML() (any, error) {
	switch {
	case l >= Length(decor.Unbounded):
		return "inf", nil
	case l <= Length(-decor.Unbounded):
		return "-inf", nil
	}
	return float32(l), nil
}

func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return errors.Errorf("line %d: color must be a hex string", value.Line)
	}
	col, err := utils.HexToRGBA(value.Value)
	if err != nil {
		return errors.Wrapf(err, "line %d", value.Line)
	}
	*c = Color(col)
	return nil
}

func (c Color) MarshalYAML() (any, error) {
	return utils.RGBAToHex(color.NRGBA(c)), nil
}
