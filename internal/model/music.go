package model

import (
	"errors"
	"math/rand"
)

var ErrInvalidPlaylist = errors.New("model: invalid playlist")

const DefaultVolume = 0.7

type Playlist string

const (
	PlaylistLofi   Playlist = "lofi"
	PlaylistNature Playlist = "nature"
)

func (p Playlist) IsValid() bool {
	switch p {
	case PlaylistLofi, PlaylistNature:
		return true
	default:
		return false
	}
}

func (p Playlist) Label() string {
	switch p {
	case PlaylistLofi:
		return "Lo-Fi Beats"
	case PlaylistNature:
		return "Nature Sounds"
	default:
		return string(p)
	}
}

type MusicState struct {
	IsPlaying    bool
	CurrentTrack string
	Volume       float64
	Playlist     Playlist
}

type Track struct {
	ID       string
	Title    string
	Artist   string
	Duration int
	Playlist Playlist
}

var catalog = []Track{
	{ID: "lofi-1", Title: "Midnight Study", Artist: "Lo-Fi Beats", Duration: 180, Playlist: PlaylistLofi},
	{ID: "lofi-2", Title: "Coffee Shop Vibes", Artist: "Chill Hip Hop", Duration: 165, Playlist: PlaylistLofi},
	{ID: "lofi-3", Title: "Rainy Day Focus", Artist: "Study Beats", Duration: 200, Playlist: PlaylistLofi},
	{ID: "lofi-4", Title: "Peaceful Moments", Artist: "Ambient Lofi", Duration: 190, Playlist: PlaylistLofi},
	{ID: "nature-1", Title: "Forest Rain", Artist: "Nature Sounds", Duration: 300, Playlist: PlaylistNature},
	{ID: "nature-2", Title: "Ocean Waves", Artist: "Ambient Nature", Duration: 280, Playlist: PlaylistNature},
	{ID: "nature-3", Title: "Mountain Stream", Artist: "Water Sounds", Duration: 320, Playlist: PlaylistNature},
	{ID: "nature-4", Title: "Thunderstorm", Artist: "Rain Sounds", Duration: 240, Playlist: PlaylistNature},
}

func TracksFor(p Playlist) []Track {
	out := make([]Track, 0, 4)
	for _, t := range catalog {
		if t.Playlist == p {
			out = append(out, t)
		}
	}
	return out
}

func FindTrack(id string) (Track, bool) {
	for _, t := range catalog {
		if t.ID == id {
			return t, true
		}
	}
	return Track{}, false
}

// FirstTrack is the track a playlist switch lands on.
func FirstTrack(p Playlist) Track {
	tracks := TracksFor(p)
	if len(tracks) == 0 {
		return Track{}
	}
	return tracks[0]
}

// NextTrack wraps to the start of the playlist. With rnd set it picks a
// random track instead, which may be the current one.
func NextTrack(p Playlist, current string, rnd *rand.Rand) Track {
	tracks := TracksFor(p)
	if len(tracks) == 0 {
		return Track{}
	}
	if rnd != nil {
		return tracks[rnd.Intn(len(tracks))]
	}
	idx := trackIndex(tracks, current)
	return tracks[(idx+1)%len(tracks)]
}

func PreviousTrack(p Playlist, current string) Track {
	tracks := TracksFor(p)
	if len(tracks) == 0 {
		return Track{}
	}
	idx := trackIndex(tracks, current)
	if idx <= 0 {
		return tracks[len(tracks)-1]
	}
	return tracks[idx-1]
}

func trackIndex(tracks []Track, id string) int {
	for i, t := range tracks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func ClampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
