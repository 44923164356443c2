package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/luizmugnaicomex-art/landedcost"
	"github.com/pelletier/go-toml"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// decodeFile decodes a TOML, YAML or JSON file into v, depending on its extension.
func decodeFile(path string, v any) error {
	ext := strings.ToLower(filepath.Ext(path))

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("error accessing file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, not a file", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading file: %w", err)
	}

	switch ext {
	case ".toml":
		if err := toml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("error parsing TOML file %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("error parsing YAML file %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("error parsing JSON file %s: %w", path, err)
		}
	default:
		return fmt.Errorf("unsupported file format %q for %s", ext, path)
	}
	return nil
}

// catalogFile is the on-disk form of a warehouse catalog:
//
//	[[schedules]]
//	name = "port-terminal"
//	percentOfCIF = 0.003
//	minimumFeeBRL = 500.0
type catalogFile struct {
	Schedules []struct {
		Name          string          `json:"name" yaml:"name" toml:"name"`
		PercentOfCIF  decimal.Decimal `json:"percentOfCIF" yaml:"percentOfCIF" toml:"percentOfCIF"`
		MinimumFeeBRL decimal.Decimal `json:"minimumFeeBRL" yaml:"minimumFeeBRL" toml:"minimumFeeBRL"`
	} `json:"schedules" yaml:"schedules" toml:"schedules"`
}

// LoadCatalog reads a warehouse catalog from a .toml, .yaml, .yml or .json file.
func LoadCatalog(path string) (landedcost.Catalog, error) {
	var f catalogFile
	if err := decodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("cannot load warehouse catalog: %w", err)
	}
	catalog := make(landedcost.Catalog, 0, len(f.Schedules))
	for _, s := range f.Schedules {
		catalog = append(catalog, landedcost.WarehouseFeeSchedule{
			Name:          s.Name,
			PercentOfCIF:  s.PercentOfCIF,
			MinimumFeeBRL: s.MinimumFeeBRL,
		})
	}
	if len(catalog) == 0 {
		return nil, fmt.Errorf("warehouse catalog %s has no schedule", path)
	}
	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("invalid warehouse catalog %s: %w", path, err)
	}
	return catalog, nil
}

// LoadRatePaths reads JSONPath expressions locating the rates in a saved rate document. Paths
// missing from the file keep their landedcost.DefaultRatePaths value.
func LoadRatePaths(path string) (landedcost.RatePaths, error) {
	var p landedcost.RatePaths
	if err := decodeFile(path, &p); err != nil {
		return p, fmt.Errorf("cannot load rate paths: %w", err)
	}
	def := landedcost.DefaultRatePaths
	type field struct {
		dst *string
		def string
	}
	for _, f := range []field{
		{&p.Date, def.Date},
		{&p.USDCompra, def.USDCompra},
		{&p.USDVenda, def.USDVenda},
		{&p.EURCompra, def.EURCompra},
		{&p.EURVenda, def.EURVenda},
		{&p.CNY, def.CNY},
	} {
		if *f.dst == "" {
			*f.dst = f.def
		}
	}
	return p, nil
}
