// Package config loads and persists user configuration for the terminal
// client and the level service, following the XDG base directory spec.
package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"

	"github.com/katalvlaran/tilepaint/core"
)

var cfgFile = "tilepaint/config.json"

// InvalidConfig reports a configuration value the client cannot work with.
type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

// ConfigColors holds terminal color codes (0-255) for every board element.
type ConfigColors struct {
	Green        int `json:"green"`
	Blue         int `json:"blue"`
	Red          int `json:"red"`
	Yellow       int `json:"yellow"`
	Purple       int `json:"purple"`
	EmptyCell    int `json:"empty"`
	Wall         int `json:"wall"`
	DotFG        int `json:"dot_fg"`
	CursorFG     int `json:"cursor_fg"`
	CursorBG     int `json:"cursor_bg"`
	SelectedBG   int `json:"selected_bg"`
	GoalBannerFG int `json:"goal_banner_fg"`
}

// ConfigSymbols holds the runes used for cells that have no color of their
// own.
type ConfigSymbols struct {
	EmptyCell rune `json:"empty"`
	Wall      rune `json:"wall"`
	Cursor    rune `json:"cursor"`
}

// Theme bundles the visual options of the terminal client.
type Theme struct {
	DrawCursorBackground bool          `json:"draw_cursor_bg"`
	FullWidthCells       bool          `json:"fullwidth_cells"`
	ShowDots             bool          `json:"show_dots"`
	Colors               ConfigColors  `json:"colors"`
	Symbols              ConfigSymbols `json:"symbols"`
}

// ServerConfig holds the level service settings.
type ServerConfig struct {
	Addr       string `json:"addr"`
	LevelsPath string `json:"levels_path"`
}

// GeneratorConfig holds the defaults the client uses when asked to generate
// a board without explicit dimensions.
type GeneratorConfig struct {
	Rows             int    `json:"rows"`
	Cols             int    `json:"cols"`
	Goal             string `json:"goal"`
	TargetDifficulty int    `json:"target_difficulty"`
}

type Config struct {
	Theme     Theme           `json:"theme"`
	Server    ServerConfig    `json:"server"`
	Generator GeneratorConfig `json:"generator"`
}

// InitConfig returns the default configuration overlaid with whatever the
// user's config file provides, after validation.
func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		readCfgFile(absPath, &config)
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	for _, r := range []rune{c.Theme.Symbols.EmptyCell, c.Theme.Symbols.Wall, c.Theme.Symbols.Cursor} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	for _, code := range []int{
		c.Theme.Colors.Green, c.Theme.Colors.Blue, c.Theme.Colors.Red,
		c.Theme.Colors.Yellow, c.Theme.Colors.Purple, c.Theme.Colors.EmptyCell,
		c.Theme.Colors.Wall, c.Theme.Colors.DotFG, c.Theme.Colors.CursorFG,
		c.Theme.Colors.CursorBG, c.Theme.Colors.SelectedBG, c.Theme.Colors.GoalBannerFG,
	} {
		if code < 0 || code > 255 {
			return &InvalidConfig{fmt.Sprintf("terminal color %d outside 0-255", code)}
		}
	}
	if !core.Color(c.Generator.Goal).Valid() {
		return &InvalidConfig{fmt.Sprintf("unknown goal color %q", c.Generator.Goal)}
	}
	return nil
}

func (c *Config) Save() {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		panic(err)
	}
	saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		panic(err)
	}
	err = os.WriteFile(filePath, jsonData, perm)
	if err != nil {
		panic(err)
	}
}

func readCfgFile(filePath string, a interface{}) {
	configReader, err := os.ReadFile(filePath)
	if err == nil {
		err = json.Unmarshal(configReader, &a)
		if err != nil {
			panic(err)
		}
	}
}
