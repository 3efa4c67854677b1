package update

import (
	"fmt"
	"math"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/focusdeck/internal/model"
	"github.com/sandeepkv93/focusdeck/internal/store"
	"github.com/sandeepkv93/focusdeck/internal/views"
)

const volumeStep = 0.1

func (m Model) handleMusicKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	music := m.snap.State.Music
	tracks := model.TracksFor(music.Playlist)

	switch msg.String() {
	case " ":
		playing := !music.IsPlaying
		m.dispatch(store.SetMusic{Patch: store.MusicPatch{IsPlaying: store.Ptr(playing)}})
		if playing {
			m.Status = StatusBar{Text: "playing"}
		} else {
			m.Status = StatusBar{Text: "paused"}
		}
	case "n":
		m.playTrack(m.rt.NextTrack(music))
	case "b":
		m.playTrack(model.PreviousTrack(music.Playlist, music.CurrentTrack))
	case "j", "down":
		m.Music.Cursor = clamp(m.Music.Cursor+1, 0, max(len(tracks)-1, 0))
	case "k", "up":
		m.Music.Cursor = clamp(m.Music.Cursor-1, 0, max(len(tracks)-1, 0))
	case "enter":
		if m.Music.Cursor < len(tracks) {
			m.playTrack(tracks[m.Music.Cursor])
		}
	case "l":
		next := model.PlaylistNature
		if music.Playlist == model.PlaylistNature {
			next = model.PlaylistLofi
		}
		first := model.FirstTrack(next)
		m.dispatch(store.SetMusic{Patch: store.MusicPatch{Playlist: store.Ptr(next), CurrentTrack: store.Ptr(first.ID)}})
		m.Music.Cursor = 0
		m.Status = StatusBar{Text: "playlist: " + next.Label()}
	case "s":
		m.rt.SetShuffle(!m.snap.Shuffle)
		m.applySnapshot(m.rt.Snapshot())
		m.Status = StatusBar{Text: "shuffle " + onOff(m.snap.Shuffle)}
	case "r":
		m.rt.SetRepeat(!m.snap.Repeat)
		m.applySnapshot(m.rt.Snapshot())
		m.Status = StatusBar{Text: "repeat " + onOff(m.snap.Repeat)}
	case "+", "=":
		m.setVolume(music.Volume + volumeStep)
	case "-":
		m.setVolume(music.Volume - volumeStep)
	}
	return m, nil
}

func (m *Model) playTrack(t model.Track) {
	if t.ID == "" {
		return
	}
	m.dispatch(store.SetMusic{Patch: store.MusicPatch{CurrentTrack: store.Ptr(t.ID), IsPlaying: store.Ptr(true)}})
	m.Status = StatusBar{Text: fmt.Sprintf("now playing: %s - %s", t.Title, t.Artist)}
}

func (m *Model) setVolume(v float64) {
	v = model.ClampVolume(math.Round(v*10) / 10)
	m.dispatch(store.SetMusic{Patch: store.MusicPatch{Volume: store.Ptr(v)}})
	m.Status = StatusBar{Text: fmt.Sprintf("volume %d%%", int(math.Round(v*100)))}
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func (m Model) renderMusicView() string {
	music := m.snap.State.Music
	track := m.snap.Track
	return views.RenderMusicPanel(views.MusicPanelData{
		Theme:        string(m.snap.State.BackgroundTheme),
		Playlist:     music.Playlist.Label(),
		Title:        track.Title,
		Artist:       track.Artist,
		Elapsed:      formatDuration(m.snap.Position),
		Duration:     formatDuration(track.Duration),
		ProgressView: m.musicProgress.ViewAs(fraction(m.snap.Position, track.Duration)),
		Playing:      music.IsPlaying,
		Shuffle:      m.snap.Shuffle,
		Repeat:       m.snap.Repeat,
		VolumePct:    int(math.Round(music.Volume * 100)),
		TrackTable:   m.trackTable.View(),
	})
}
