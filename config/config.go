// Package config — .sheetpo.yaml configuration file support.
//
// The file is optional. Without it sheetpo runs its fixed pipeline: read
// the workbook beside the project root and write catalogs under output/.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the default config file name.
const FileName = ".sheetpo.yaml"

// Defaults.
const (
	DefaultWorkbook        = "翻译内容 - 精简.xlsx"
	DefaultOutputDir       = "output"
	DefaultPOTDir          = "pot"
	DefaultLocale          = "en-US"
	DefaultPageSize        = 150
	DefaultMsgSheet        = "Msg"
	DefaultTranslationsDir = "en-US"
	DefaultExportFile      = "翻译导出20170828.xlsx"
)

// Config is the .sheetpo.yaml structure. Relative paths are resolved
// against the project root.
type Config struct {
	// Workbook is the source spreadsheet.
	Workbook string `yaml:"workbook,omitempty"`
	// OutputDir receives generated catalogs and the exported workbook.
	OutputDir string `yaml:"output_dir,omitempty"`
	// POTDir is the template subdirectory of OutputDir.
	POTDir string `yaml:"pot_dir,omitempty"`
	// Locale is the seed translation subdirectory of OutputDir.
	Locale string `yaml:"locale,omitempty"`
	// PageSize is the target number of rows per catalog file.
	PageSize int `yaml:"page_size,omitempty"`
	// MsgSheet names the sheet holding `name = "text"` declarations.
	MsgSheet string `yaml:"msg_sheet,omitempty"`
	// TranslationsDir holds translated .po files for export.
	TranslationsDir string `yaml:"translations_dir,omitempty"`
	// ExportFile is the workbook written by export, inside OutputDir.
	ExportFile string `yaml:"export_file,omitempty"`

	root string
}

// Default returns the built-in configuration for rootDir.
func Default(rootDir string) *Config {
	c := &Config{root: rootDir}
	c.applyDefaults()
	return c
}

// Load reads FileName from rootDir. A missing file yields Default.
func Load(rootDir string) (*Config, error) {
	path := filepath.Join(rootDir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(rootDir), nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	c.root = rootDir
	c.applyDefaults()

	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.Workbook == "" {
		c.Workbook = DefaultWorkbook
	}
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	if c.POTDir == "" {
		c.POTDir = DefaultPOTDir
	}
	if c.Locale == "" {
		c.Locale = DefaultLocale
	}
	if c.PageSize == 0 {
		c.PageSize = DefaultPageSize
	}
	if c.MsgSheet == "" {
		c.MsgSheet = DefaultMsgSheet
	}
	if c.TranslationsDir == "" {
		c.TranslationsDir = DefaultTranslationsDir
	}
	if c.ExportFile == "" {
		c.ExportFile = DefaultExportFile
	}
}

func (c *Config) validate() error {
	if c.PageSize < 0 {
		return fmt.Errorf("page_size must be positive, got %d", c.PageSize)
	}
	for field, v := range map[string]string{"pot_dir": c.POTDir, "locale": c.Locale} {
		if filepath.IsAbs(v) || strings.Contains(v, "..") {
			return fmt.Errorf("%s must be a plain subdirectory name, got %q", field, v)
		}
	}
	if filepath.Ext(c.ExportFile) != ".xlsx" {
		return fmt.Errorf("export_file must end in .xlsx, got %q", c.ExportFile)
	}
	return nil
}

func (c *Config) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.root, p)
}

// WorkbookPath returns the absolute-or-root-relative workbook path.
func (c *Config) WorkbookPath() string {
	return c.resolve(c.Workbook)
}

// OutputPath returns the output directory.
func (c *Config) OutputPath() string {
	return c.resolve(c.OutputDir)
}

// LocalePath returns the directory holding generated seed translations.
func (c *Config) LocalePath() string {
	return filepath.Join(c.OutputPath(), c.Locale)
}

// TranslationsPath returns the directory export reads .po files from.
func (c *Config) TranslationsPath() string {
	return c.resolve(c.TranslationsDir)
}

// ExportPath returns the workbook file export writes.
func (c *Config) ExportPath() string {
	return filepath.Join(c.OutputPath(), c.ExportFile)
}
