package editor

import (
	"reflect"

	"github.com/inkwell-text/inkwell/inline"
)

const (
	defaultPopupMaxVisible = 6
	defaultPopupMaxWidth   = 40
)

// Config configures the field Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// Placeholder is shown dimmed while the buffer is empty.
	Placeholder string

	// Triggers is forwarded to buffer.Options; each trigger's OnKeyword
	// still fires, independent of the popup.
	Triggers []inline.Trigger

	// MaxMatchLength is forwarded to buffer.Options.
	MaxMatchLength int

	Style  Style
	KeyMap KeyMap

	// Suggest supplies popup rows; nil disables the popup.
	Suggest         SuggestFunc
	PopupKeyMap     PopupKeyMap
	PopupMaxVisible int
	PopupMaxWidth   int

	// Clipboard enables copy/cut/paste; nil disables them.
	Clipboard Clipboard

	// OnChange fires after every effective buffer change.
	OnChange func(ChangeEvent)

	// OnFinish is forwarded to buffer.Options.
	OnFinish func()
}

func normalizeConfig(cfg Config) Config {
	if reflect.DeepEqual(cfg.KeyMap, KeyMap{}) {
		cfg.KeyMap = DefaultKeyMap()
	}
	if reflect.DeepEqual(cfg.PopupKeyMap, PopupKeyMap{}) {
		cfg.PopupKeyMap = DefaultPopupKeyMap()
	}
	if reflect.DeepEqual(cfg.Style, (Style{})) {
		cfg.Style = DefaultStyle()
	}
	if cfg.PopupMaxVisible <= 0 {
		cfg.PopupMaxVisible = defaultPopupMaxVisible
	}
	if cfg.PopupMaxWidth <= 0 {
		cfg.PopupMaxWidth = defaultPopupMaxWidth
	}
	return cfg
}
