package display

import (
	"fmt"
	"strings"

	"github.com/napolitain/solver-craft/internal/solver/craft"
)

// Lang selects the language of action labels
type Lang string

const (
	English  Lang = "en"
	Japanese Lang = "ja"
)

// ParseLang validates a language flag
func ParseLang(s string) (Lang, error) {
	switch Lang(strings.ToLower(s)) {
	case "", English:
		return English, nil
	case Japanese:
		return Japanese, nil
	default:
		return English, fmt.Errorf("unsupported language %q (want en or ja)", s)
	}
}

var englishLabels = map[craft.Action]string{
	craft.CannotAction:     "(finish)",
	craft.BasicTouch:       "Basic Touch",
	craft.StandardTouch:    "Standard Touch",
	craft.PrudentTouch:     "Prudent Touch",
	craft.FocusedTouch:     "Focused Touch",
	craft.PreparatoryTouch: "Preparatory Touch",
	craft.ByregotsBlessing: "Byregot's Blessing",
	craft.MastersMend:      "Master's Mend",
	craft.Observe:          "Observe",
	craft.WasteNot:         "Waste Not",
	craft.WasteNot2:        "Waste Not II",
	craft.GreatStrides:     "Great Strides",
	craft.Innovation:       "Innovation",
	craft.Manipulation:     "Manipulation",
}

var japaneseLabels = map[craft.Action]string{
	craft.CannotAction:     "(終了)",
	craft.BasicTouch:       "加工",
	craft.StandardTouch:    "中級加工",
	craft.PrudentTouch:     "倹約加工",
	craft.FocusedTouch:     "注視加工",
	craft.PreparatoryTouch: "下地加工",
	craft.ByregotsBlessing: "ビエルゴの祝福",
	craft.MastersMend:      "マスターズメンド",
	craft.Observe:          "経過観察",
	craft.WasteNot:         "倹約",
	craft.WasteNot2:        "長期倹約",
	craft.GreatStrides:     "グレートストライド",
	craft.Innovation:       "イノベーション",
	craft.Manipulation:     "マニピュレーション",
}

// ActionLabel returns the display name of an action
func ActionLabel(a craft.Action, lang Lang) string {
	labels := englishLabels
	if lang == Japanese {
		labels = japaneseLabels
	}
	if label, ok := labels[a]; ok {
		return label
	}
	return a.String()
}
