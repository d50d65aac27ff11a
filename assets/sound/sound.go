// Package sound loads the game's audio cues.
package sound

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const SampleRate = 44100

// Dir is the asset directory scanned for cues.
const Dir = "audio"

// Names of the cues the game plays.
const (
	Shoot  = "shoot"
	Impact = "impact"
	Music  = "music"
)

// Cue is a decoded sound ready to play.
type Cue struct {
	name   string
	player *audio.Player
}

// Play restarts the cue from the beginning.
func (c *Cue) Play() {
	if c == nil || c.player == nil {
		return
	}
	if err := c.player.Rewind(); err != nil {
		log.Warn("audio rewind failed", "cue", c.name, "err", err)
		return
	}
	c.player.Play()
}

// Stop pauses the cue.
func (c *Cue) Stop() {
	if c == nil || c.player == nil {
		return
	}
	c.player.Pause()
}

// Load decodes every wav, ogg or mp3 file under audio/ and keys it by file
// stem. Broken files are logged and left out; the music cue loops forever.
func Load(ctx *audio.Context, fsys fs.FS) map[string]*Cue {
	cues := make(map[string]*Cue)
	if ctx == nil || fsys == nil {
		return cues
	}
	files, err := cueFiles(fsys)
	if err != nil {
		log.Warn("audio directory unavailable", "err", err)
		return cues
	}
	for name, file := range files {
		c, err := load(ctx, fsys, name, file, name == Music)
		if err != nil {
			log.Warn("audio cue unavailable", "cue", name, "err", err)
			continue
		}
		cues[name] = c
	}
	return cues
}

// cueFiles maps each playable stem in audio/ to its file. When two files
// share a stem the first in directory order wins.
func cueFiles(fsys fs.FS) (map[string]string, error) {
	entries, err := fs.ReadDir(fsys, Dir)
	if err != nil {
		return nil, fmt.Errorf("sound: read %s: %w", Dir, err)
	}
	files := make(map[string]string, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(path.Ext(e.Name()))
		if _, ok := decoders[ext]; !ok {
			continue
		}
		name := strings.TrimSuffix(e.Name(), path.Ext(e.Name()))
		file := path.Join(Dir, e.Name())
		if prev, ok := files[name]; ok {
			log.Debug("duplicate audio cue", "cue", name, "kept", prev, "skipped", file)
			continue
		}
		files[name] = file
	}
	return files, nil
}

type stream interface {
	io.ReadSeeker
	Length() int64
}

type decoder func(sampleRate int, r io.Reader) (stream, error)

var decoders = map[string]decoder{
	".wav": func(rate int, r io.Reader) (stream, error) { return wav.DecodeWithSampleRate(rate, r) },
	".ogg": func(rate int, r io.Reader) (stream, error) { return vorbis.DecodeWithSampleRate(rate, r) },
	".mp3": func(rate int, r io.Reader) (stream, error) { return mp3.DecodeWithSampleRate(rate, r) },
}

func load(ctx *audio.Context, fsys fs.FS, name, file string, loop bool) (*Cue, error) {
	b, err := fs.ReadFile(fsys, file)
	if err != nil {
		return nil, fmt.Errorf("sound: read %s: %w", file, err)
	}
	decode := decoders[strings.ToLower(path.Ext(file))]
	if decode == nil {
		return nil, fmt.Errorf("sound: unsupported format %q", file)
	}
	s, err := decode(ctx.SampleRate(), bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("sound: decode %q: %w", file, err)
	}

	var src io.Reader = s
	if loop {
		src = audio.NewInfiniteLoop(s, s.Length())
	}
	p, err := ctx.NewPlayer(src)
	if err != nil {
		return nil, fmt.Errorf("sound: player %q: %w", file, err)
	}
	return &Cue{name: name, player: p}, nil
}
