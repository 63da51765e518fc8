package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawCursorBackground: true,
		FullWidthCells:       true,
		ShowDots:             true,
		Colors: ConfigColors{
			Green:        34,
			Blue:         27,
			Red:          160,
			Yellow:       220,
			Purple:       129,
			EmptyCell:    238,
			Wall:         245,
			DotFG:        231,
			CursorFG:     16,
			CursorBG:     252,
			SelectedBG:   250,
			GoalBannerFG: 250,
		},
		Symbols: ConfigSymbols{
			EmptyCell: '·',
			Wall:      '▓',
			Cursor:    '▣',
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Server: ServerConfig{
			Addr:       ":8080",
			LevelsPath: "levels/levels.json",
		},
		Generator: GeneratorConfig{
			Rows:             5,
			Cols:             5,
			Goal:             "G",
			TargetDifficulty: 0,
		},
	}
}
