package commands

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/sandeepkv93/focusdeck/internal/model"
)

type Type string

const (
	TypeAdd      Type = "add"
	TypeFocus    Type = "focus"
	TypeTimer    Type = "timer"
	TypeBMI      Type = "bmi"
	TypeTheme    Type = "theme"
	TypeColor    Type = "color"
	TypePlay     Type = "play"
	TypePause    Type = "pause"
	TypeNext     Type = "next"
	TypePrev     Type = "prev"
	TypePlaylist Type = "playlist"
	TypeVolume   Type = "volume"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeInvalidState    ErrorCode = "invalid_state"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func invalid(format string, args ...any) error {
	return &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

type AddArgs struct {
	Title    string
	Category model.Category
	Priority model.Priority
}

type FocusArgs struct {
	Text string
}

type TimerOp string

const (
	TimerStartCustom   TimerOp = "custom"
	TimerStartPomodoro TimerOp = "pomodoro"
	TimerPause         TimerOp = "pause"
	TimerReset         TimerOp = "reset"
)

type TimerArgs struct {
	Op      TimerOp
	Minutes int
}

type BMIArgs struct {
	Height float64
	Weight float64
}

type ThemeArgs struct {
	Theme model.Theme
}

type ColorArgs struct {
	Color string
}

type MusicOp string

const (
	MusicPlay  MusicOp = "play"
	MusicPause MusicOp = "pause"
	MusicNext  MusicOp = "next"
	MusicPrev  MusicOp = "prev"
)

type MusicArgs struct {
	Op MusicOp
}

type PlaylistArgs struct {
	Playlist model.Playlist
}

// VolumeArgs holds a percentage in 0..100.
type VolumeArgs struct {
	Percent int
}

type Command struct {
	Type     Type
	Raw      string
	Add      *AddArgs
	Focus    *FocusArgs
	Timer    *TimerArgs
	BMI      *BMIArgs
	Theme    *ThemeArgs
	Color    *ColorArgs
	Music    *MusicArgs
	Playlist *PlaylistArgs
	Volume   *VolumeArgs
}

// Names lists the palette commands in help order.
func Names() []Type {
	return []Type{TypeAdd, TypeFocus, TypeTimer, TypeBMI, TypeTheme, TypeColor, TypePlay, TypePause, TypeNext, TypePrev, TypePlaylist, TypeVolume}
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, args)
	case TypeFocus:
		return parseFocus(input, args)
	case TypeTimer:
		return parseTimer(input, args)
	case TypeBMI:
		return parseBMI(input, args)
	case TypeTheme:
		return parseTheme(input, args)
	case TypeColor:
		return parseColor(input, args)
	case TypePlay, TypePause, TypeNext, TypePrev:
		if len(args) > 0 {
			return Command{}, invalid("%s takes no arguments", head)
		}
		return Command{Type: Type(head), Raw: input, Music: &MusicArgs{Op: MusicOp(head)}}, nil
	case TypePlaylist:
		return parsePlaylist(input, args)
	case TypeVolume:
		return parseVolume(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

// parseAdd reads #today/#inbox and !low/!medium/!high markers anywhere in
// the arguments; the remaining words form the title.
func parseAdd(raw string, args []string) (Command, error) {
	out := AddArgs{Category: model.CategoryInbox}
	words := make([]string, 0, len(args))
	for _, arg := range args {
		lower := strings.ToLower(arg)
		switch {
		case lower == "#today":
			out.Category = model.CategoryToday
		case lower == "#inbox":
			out.Category = model.CategoryInbox
		case strings.HasPrefix(lower, "!") && len(lower) > 1:
			p := model.Priority(strings.TrimPrefix(lower, "!"))
			if p == model.PriorityNone || !p.IsValid() {
				return Command{}, invalid("unknown priority %q (want !low, !medium or !high)", arg)
			}
			out.Priority = p
		default:
			words = append(words, arg)
		}
	}
	out.Title = strings.TrimSpace(strings.Join(words, " "))
	if out.Title == "" {
		return Command{}, invalid("add requires a title")
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &out}, nil
}

func parseFocus(raw string, args []string) (Command, error) {
	text := strings.TrimSpace(strings.Join(args, " "))
	if err := model.ValidateFocus(text); err != nil {
		return Command{}, invalid("%v", err)
	}
	return Command{Type: TypeFocus, Raw: raw, Focus: &FocusArgs{Text: text}}, nil
}

func parseTimer(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, invalid("timer requires minutes, pomodoro, pause or reset")
	}
	arg := strings.ToLower(args[0])
	switch TimerOp(arg) {
	case TimerStartPomodoro, TimerPause, TimerReset:
		return Command{Type: TypeTimer, Raw: raw, Timer: &TimerArgs{Op: TimerOp(arg)}}, nil
	}
	minutes, err := strconv.Atoi(arg)
	if err != nil {
		return Command{}, invalid("timer: %q is not a number of minutes", args[0])
	}
	if err := model.ValidateCustomMinutes(minutes); err != nil {
		return Command{}, invalid("%v", err)
	}
	return Command{Type: TypeTimer, Raw: raw, Timer: &TimerArgs{Op: TimerStartCustom, Minutes: minutes}}, nil
}

func parseBMI(raw string, args []string) (Command, error) {
	if len(args) != 2 {
		return Command{}, invalid("bmi requires height (cm) and weight (kg)")
	}
	height, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return Command{}, invalid("bmi: height %q is not a number", args[0])
	}
	weight, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return Command{}, invalid("bmi: weight %q is not a number", args[1])
	}
	if err := model.ValidateBMIInput(height, weight); err != nil {
		return Command{}, invalid("%v", err)
	}
	return Command{Type: TypeBMI, Raw: raw, BMI: &BMIArgs{Height: height, Weight: weight}}, nil
}

func parseTheme(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, invalid("theme requires light, dark or gradient")
	}
	theme := model.Theme(strings.ToLower(args[0]))
	if !theme.IsValid() {
		return Command{}, invalid("unknown theme %q", args[0])
	}
	return Command{Type: TypeTheme, Raw: raw, Theme: &ThemeArgs{Theme: theme}}, nil
}

func parseColor(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, invalid("color requires one of %s", strings.Join(model.TimerColors, ", "))
	}
	color := strings.ToLower(args[0])
	if !slices.Contains(model.TimerColors, color) {
		return Command{}, invalid("unknown color %q", args[0])
	}
	return Command{Type: TypeColor, Raw: raw, Color: &ColorArgs{Color: color}}, nil
}

func parsePlaylist(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, invalid("playlist requires lofi or nature")
	}
	p := model.Playlist(strings.ToLower(args[0]))
	if !p.IsValid() {
		return Command{}, invalid("unknown playlist %q", args[0])
	}
	return Command{Type: TypePlaylist, Raw: raw, Playlist: &PlaylistArgs{Playlist: p}}, nil
}

func parseVolume(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, invalid("volume requires a value from 0 to 100")
	}
	pct, err := strconv.Atoi(strings.TrimSuffix(args[0], "%"))
	if err != nil || pct < 0 || pct > 100 {
		return Command{}, invalid("volume must be 0-100, got %q", args[0])
	}
	return Command{Type: TypeVolume, Raw: raw, Volume: &VolumeArgs{Percent: pct}}, nil
}
