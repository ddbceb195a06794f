package zoning

import (
	"io"
	"os"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Overrides is the shape of an optional YAML file that adjusts the built-in
// tables. Only the keys present in the file are replaced.
type Overrides struct {
	Districts map[string]District       `yaml:"districts"`
	Markets   map[string]MarketProfile  `yaml:"markets"`
	Utilities map[string]UtilityService `yaml:"utilities"`
}

// ApplyOverridesFile loads a YAML override file and merges it into the
// built-in tables. A missing file is not an error. Must be called during
// startup, before any analysis runs; the tables are treated as immutable
// afterwards.
func ApplyOverridesFile(path string) error {
	if path == "" {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return eris.Wrapf(err, "zoning: open overrides %s", path)
	}
	defer f.Close()
	return ApplyOverrides(f)
}

// ApplyOverrides reads YAML overrides and merges them into the tables after
// validating each entry.
func ApplyOverrides(r io.Reader) error {
	var o Overrides
	if err := yaml.NewDecoder(r).Decode(&o); err != nil {
		return eris.Wrap(err, "zoning: decode overrides")
	}

	for code, d := range o.Districts {
		d.Code = code
		if err := validateDistrict(d); err != nil {
			return eris.Wrapf(err, "zoning: override district %s", code)
		}
		districts[code] = d
	}
	for zip, m := range o.Markets {
		if m.Multiplier < 0 {
			return eris.Errorf("zoning: override market %s: multiplier must be >= 0", zip)
		}
		markets[zip] = m
	}
	for zip, u := range o.Utilities {
		utilities[zip] = u
	}

	if len(o.Districts)+len(o.Markets)+len(o.Utilities) > 0 {
		zap.L().Info("zoning: overrides applied",
			zap.Int("districts", len(o.Districts)),
			zap.Int("markets", len(o.Markets)),
			zap.Int("utilities", len(o.Utilities)),
		)
	}
	return nil
}

func validateDistrict(d District) error {
	if d.MinLotSize <= 0 || d.MinLotWidth <= 0 ||
		d.FrontSetback <= 0 || d.SideSetback <= 0 || d.RearSetback <= 0 ||
		d.MaxHeight <= 0 {
		return eris.New("all dimensional fields must be positive")
	}
	if d.MaxImperviousCover <= 0 || d.MaxImperviousCover > 1 {
		return eris.New("max impervious cover must be in (0, 1]")
	}
	return nil
}
