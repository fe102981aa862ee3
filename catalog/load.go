package catalog

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/hupe1980/unitgo/dimension"
	"github.com/hupe1980/unitgo/quantity"
	"github.com/hupe1980/unitgo/ratio"
)

// Encoding is the syntax of a unit file.
type Encoding int

const (
	TOML Encoding = iota
	YAML
)

func (e Encoding) String() string {
	switch e {
	case TOML:
		return "toml"
	case YAML:
		return "yaml"
	default:
		return "unknown"
	}
}

type unitFile struct {
	Units []unitDef `toml:"units" yaml:"units"`
}

type unitDef struct {
	Name      string         `toml:"name" yaml:"name"`
	Symbol    string         `toml:"symbol" yaml:"symbol"`
	Unicode   string         `toml:"unicode" yaml:"unicode"`
	Num       int64          `toml:"num" yaml:"num"`
	Den       int64          `toml:"den" yaml:"den"`
	Dimension map[string]int `toml:"dimension" yaml:"dimension"`
	Offset    float64        `toml:"offset" yaml:"offset"`
	Of        string         `toml:"of" yaml:"of"`
}

// LoadFile registers the units in path. The encoding follows the file
// extension: .toml, .yaml or .yml.
func (r *Registry) LoadFile(path string) error {
	var enc Encoding
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		enc = TOML
	case ".yaml", ".yml":
		enc = YAML
	default:
		return errors.Wrapf(ErrFormat, "unsupported unit file extension %q", filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "open unit file %s", path)
	}
	defer f.Close()

	return errors.Wrapf(r.Load(f, enc), "load %s", path)
}

// Load registers every unit read from rd. Either all units are registered or
// none are.
func (r *Registry) Load(rd io.Reader, enc Encoding) error {
	var f unitFile
	switch enc {
	case TOML:
		if _, err := toml.NewDecoder(rd).Decode(&f); err != nil {
			return errors.Wrapf(ErrFormat, "decode toml: %v", err)
		}
	case YAML:
		if err := yaml.NewDecoder(rd).Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return errors.Wrapf(ErrFormat, "decode yaml: %v", err)
		}
	default:
		return errors.Wrapf(ErrFormat, "encoding %s", enc)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.frozen {
		return errors.Wrap(ErrFrozen, "load")
	}

	stage := r.cloneLocked()
	for i, d := range f.Units {
		e, err := stage.entryOf(d)
		if err != nil {
			return errors.Wrapf(err, "unit %d (%q)", i, d.Name)
		}
		if err := stage.register(e); err != nil {
			return errors.Wrapf(err, "unit %d (%q)", i, d.Name)
		}
	}

	r.entries, r.names, r.symbols, r.units = stage.entries, stage.names, stage.symbols, stage.units
	return nil
}

// entryOf builds an entry from its file form. The caller holds the lock on
// the staging registry, so it reads the maps directly.
func (r *Registry) entryOf(d unitDef) (Entry, error) {
	num, den := d.Num, d.Den
	if num == 0 {
		num = 1
	}
	if den == 0 {
		den = 1
	}
	scale, err := ratio.New(num, den)
	if err != nil {
		return Entry{}, errors.Wrapf(ErrFormat, "scale: %v", err)
	}

	dim, err := parseDimension(d.Dimension)
	if err != nil {
		return Entry{}, err
	}

	if d.Of != "" {
		i, ok := r.symbols[d.Of]
		if !ok {
			i, ok = r.names[strings.ToLower(d.Of)]
		}
		if !ok {
			return Entry{}, errors.Wrapf(ErrUnknownUnit, "of %q", d.Of)
		}
		base := r.entries[i].Unit
		if base.IsAffine() {
			return Entry{}, errors.Wrapf(ErrFormat, "cannot derive from affine unit %q", d.Of)
		}
		if d.Dimension != nil && dim != base.Dimension() {
			return Entry{}, errors.Wrapf(ErrFormat, "dimension %s contradicts %q (%s)", dim, d.Of, base.Dimension())
		}
		if scale, err = base.Scale().Mul(scale); err != nil {
			return Entry{}, errors.Wrapf(ErrFormat, "scale of %q: %v", d.Of, err)
		}
		dim = base.Dimension()
	}

	var u quantity.Unit
	if d.Offset != 0 {
		u = quantity.NewAffineUnit(scale, dim, d.Offset)
	} else {
		u = quantity.NewUnit(scale, dim)
	}
	return Entry{Name: d.Name, Symbol: d.Symbol, UnicodeSymbol: d.Unicode, Unit: u}, nil
}

func parseDimension(m map[string]int) (dimension.Dimension, error) {
	exps := make(map[dimension.Base]int, len(m))
	for k, v := range m {
		b, err := dimension.ParseBase(k)
		if err != nil {
			return dimension.Scalar, errors.Wrapf(ErrFormat, "dimension: %v", err)
		}
		exps[b] += v
	}
	d, err := dimension.New(exps)
	if err != nil {
		return dimension.Scalar, errors.Wrapf(ErrFormat, "dimension: %v", err)
	}
	return d, nil
}
