package charts

const (
	TemplateDark  = "plotly_dark"
	TemplateLight = "plotly_white"
)

// ThemeColors - общие цвета интерфейса для выбранной темы
type ThemeColors struct {
	Dark           bool   `json:"dark"`
	BaseBG         string `json:"base_bg"`
	TextColor      string `json:"text_color"`
	HeaderBG       string `json:"header_bg"`
	BorderColor    string `json:"border_color"`
	LowDevColor    string `json:"low_dev_color"`
	HighDevColor   string `json:"high_dev_color"`
	PlotlyTemplate string `json:"plotly_template"`
}

func Colors(dark bool) ThemeColors {
	if dark {
		return ThemeColors{
			Dark:           true,
			BaseBG:         "#1c1c1e",
			TextColor:      "#e0e0e0",
			HeaderBG:       "#333333",
			BorderColor:    "#444444",
			LowDevColor:    "#77b6ff",
			HighDevColor:   "#ff8080",
			PlotlyTemplate: TemplateDark,
		}
	}
	return ThemeColors{
		BaseBG:         "#ffffff",
		TextColor:      "#1d1d1f",
		HeaderBG:       "#f8f8f8",
		BorderColor:    "#e0e0e0",
		LowDevColor:    "#005fcc",
		HighDevColor:   "#d92121",
		PlotlyTemplate: TemplateLight,
	}
}

func Template(dark bool) string {
	return Colors(dark).PlotlyTemplate
}

var (
	qualitativeSafe = []string{
		"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728",
		"#9467bd", "#8c564b", "#e377c2", "#7f7f7f",
	}
	highContrast = []string{
		"#000000", "#e69f00", "#56b4e9", "#009e73",
		"#f0e442", "#0072b2", "#d55e00", "#cc79a7",
	}
)

const (
	scaleSequential = "Viridis"
	scaleDiverging  = "RdBu"
)

// palette возвращает первые n цветов, циклически повторяя палитру
func palette(colors []string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = colors[i%len(colors)]
	}
	return out
}
