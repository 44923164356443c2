package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/luizmugnaicomex-art/landedcost"
	"github.com/spf13/viper"
)

func TestRead_Defaults(t *testing.T) {
	c, err := read(viper.New())
	if err != nil {
		t.Fatalf("read() error = %v", err)
	}
	if !c.DemurrageDailyRateUSD.Equal(landedcost.DefaultDemurrageDailyRateUSD) {
		t.Errorf("DemurrageDailyRateUSD = %s", c.DemurrageDailyRateUSD)
	}
	if c.ReportFormat != FormatMarkdown || c.LogLevel != "warn" || c.RatesFile != "" {
		t.Errorf("read() = %+v", c)
	}
}

func TestRead_Environment(t *testing.T) {
	t.Setenv("LCC_RATES_FILE", "/tmp/rates.json")
	t.Setenv("LCC_CATALOG_FILE", "catalog.toml")
	t.Setenv("LCC_DEMURRAGE_DAILY_RATE_USD", "175.50")
	t.Setenv("LCC_REPORT_FORMAT", "JSON")
	c, err := read(viper.New())
	if err != nil {
		t.Fatalf("read() error = %v", err)
	}
	if c.RatesFile != "/tmp/rates.json" || c.CatalogFile != "catalog.toml" || c.ReportFormat != FormatJSON {
		t.Errorf("read() = %+v", c)
	}
	if c.DemurrageDailyRateUSD.String() != "175.5" {
		t.Errorf("DemurrageDailyRateUSD = %s, want 175.5", c.DemurrageDailyRateUSD)
	}
}

func TestRead_Invalid(t *testing.T) {
	tests := []struct{ key, value, wantErr string }{
		{"LCC_DEMURRAGE_DAILY_RATE_USD", "a lot", "LCC_DEMURRAGE_DAILY_RATE_USD"},
		{"LCC_DEMURRAGE_DAILY_RATE_USD", "-1", "is negative"},
		{"LCC_REPORT_FORMAT", "pdf", `unknown report format "pdf"`},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := read(viper.New())
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("read() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCatalog(t *testing.T) {
	files := map[string]string{
		"catalog.toml": `
[[schedules]]
name = "santos"
percentOfCIF = 0.0035
minimumFeeBRL = 520.0

[[schedules]]
name = "itajai"
percentOfCIF = 0.0028
minimumFeeBRL = 480.0
`,
		"catalog.yaml": `
schedules:
  - name: santos
    percentOfCIF: 0.0035
    minimumFeeBRL: 520
  - name: itajai
    percentOfCIF: 0.0028
    minimumFeeBRL: 480
`,
		"catalog.json": `{"schedules":[
  {"name":"santos","percentOfCIF":0.0035,"minimumFeeBRL":520},
  {"name":"itajai","percentOfCIF":0.0028,"minimumFeeBRL":480}
]}`,
	}
	want := []string{"santos 0.0035 520", "itajai 0.0028 480"}
	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			c, err := LoadCatalog(writeFile(t, name, content))
			if err != nil {
				t.Fatalf("LoadCatalog() error = %v", err)
			}
			var got []string
			for _, s := range c {
				got = append(got, s.Name+" "+s.PercentOfCIF.String()+" "+s.MinimumFeeBRL.String())
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("LoadCatalog() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadCatalog_ExactValues(t *testing.T) {
	const percent = "0.00123456789012345678901"
	files := map[string]string{
		"catalog.yaml": "schedules:\n  - name: santos\n    percentOfCIF: " + percent + "\n    minimumFeeBRL: 520.10\n",
		"catalog.json": `{"schedules":[{"name":"santos","percentOfCIF":` + percent + `,"minimumFeeBRL":520.10}]}`,
	}
	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			c, err := LoadCatalog(writeFile(t, name, content))
			if err != nil {
				t.Fatalf("LoadCatalog() error = %v", err)
			}
			if got := c[0].PercentOfCIF.String(); got != percent {
				t.Errorf("PercentOfCIF = %s, want %s", got, percent)
			}
			if got := c[0].MinimumFeeBRL.String(); got != "520.1" {
				t.Errorf("MinimumFeeBRL = %s, want 520.1", got)
			}
		})
	}
}

func TestLoadCatalog_Errors(t *testing.T) {
	tests := []struct {
		name, file, content, wantErr string
	}{
		{"unknown extension", "catalog.ini", "", "unsupported file format"},
		{"empty", "catalog.json", `{"schedules":[]}`, "has no schedule"},
		{"duplicated", "catalog.yml", "schedules:\n  - name: a\n  - name: A\n", "defined twice"},
		{"bad toml", "catalog.toml", "schedules = [", "error parsing TOML"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCatalog(writeFile(t, tt.file, tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("LoadCatalog() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
	if _, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("LoadCatalog() of a missing file should fail")
	}
}

func TestLoadRatePaths(t *testing.T) {
	path := writeFile(t, "paths.yaml", `
date: $.fetchedAt
usdVenda: $.quotes[0].sell
`)
	got, err := LoadRatePaths(path)
	if err != nil {
		t.Fatalf("LoadRatePaths() error = %v", err)
	}
	want := landedcost.DefaultRatePaths
	want.Date = "$.fetchedAt"
	want.USDVenda = "$.quotes[0].sell"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LoadRatePaths() mismatch (-want +got):\n%s", diff)
	}
}
