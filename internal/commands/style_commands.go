package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bethropolis/stylo/internal/logger"
	"github.com/bethropolis/stylo/internal/plugin"
	"github.com/bethropolis/stylo/internal/style"
)

// RegisterStyleCommands registers :font, :size, :color and :text.
func RegisterStyleCommands(api plugin.EditorAPI) {
	register(api, "font", func(args []string) error {
		if len(args) == 0 {
			api.SetStatusMessage("Font: %s (available: %s)", api.GetState().FontFamily, strings.Join(style.FontFamilies, ", "))
			return nil
		}
		return api.SetFontFamily(strings.Join(args, " "))
	})

	register(api, "size", func(args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("usage: size <%d-%d>", style.MinFontSize, style.MaxFontSize)
		}
		target, err := strconv.Atoi(strings.TrimSuffix(args[0], "px"))
		if err != nil {
			return fmt.Errorf("invalid size %q: %w", args[0], err)
		}
		_, err = StepSizeTo(api, target)
		return err
	})

	register(api, "color", func(args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("usage: color <#rrggbb>")
		}
		return api.SetColor(args[0])
	})

	// The text is taken verbatim so runs of blanks survive.
	if err := api.RegisterRawCommand("text", api.SetText); err != nil {
		logger.Warnf("Failed to register ':text' command: %v", err)
	}
}

// StepSizeTo walks the font size toward target one step at a time, the way
// repeated stepper presses would, so each step is its own history entry.
// The target is clamped to the valid range; it returns the number of steps
// taken and the first edit error.
func StepSizeTo(api plugin.EditorAPI, target int) (int, error) {
	target = style.ClampFontSize(target)
	steps := 0
	for {
		size := api.GetState().FontSize
		var err error
		switch {
		case target-size >= style.FontSizeStep:
			err = api.IncreaseFontSize()
		case size-target >= style.FontSizeStep:
			err = api.DecreaseFontSize()
		default:
			return steps, nil
		}
		if err != nil {
			return steps, err
		}
		steps++
		if api.GetState().FontSize == size {
			return steps, nil // Clamped; no further progress possible
		}
	}
}

// RegisterHistoryCommands registers :undo, :redo and :history.
func RegisterHistoryCommands(api plugin.EditorAPI) {
	register(api, "undo", func(args []string) error {
		n, err := count(args)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if !api.Undo() {
				api.SetStatusMessage("Already at oldest change")
				break
			}
		}
		return nil
	})

	register(api, "redo", func(args []string) error {
		n, err := count(args)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if !api.Redo() {
				api.SetStatusMessage("Already at newest change")
				break
			}
		}
		return nil
	})

	register(api, "history", func(args []string) error {
		cursor, length := api.HistoryInfo()
		api.SetStatusMessage("History: entry %d of %d, %d undo, %d redo",
			cursor+1, length, cursor, length-cursor-1)
		return nil
	})
}

// count parses an optional repeat count argument.
func count(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid count %q", args[0])
	}
	return n, nil
}

// RegisterClipboardCommands registers :copy and :paste for the label text.
func RegisterClipboardCommands(api plugin.EditorAPI) {
	register(api, "copy", func(args []string) error {
		text := api.GetState().Text
		if err := api.CopyToClipboard(text); err != nil {
			return fmt.Errorf("copy failed: %w", err)
		}
		api.SetStatusMessage("Copied %q", text)
		return nil
	})

	register(api, "paste", func(args []string) error {
		text, err := api.PasteFromClipboard()
		if err != nil {
			return fmt.Errorf("paste failed: %w", err)
		}
		if text == "" {
			api.SetStatusMessage("Clipboard empty")
			return nil
		}
		return api.SetText(text)
	})
}
