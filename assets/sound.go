package assets

import (
	"encoding/binary"
	"errors"
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/pong/prefabs"
)

const sampleRate = 44100

var (
	audioContext     *audio.Context
	audioContextOnce sync.Once
)

func audioCtx() *audio.Context {
	audioContextOnce.Do(func() {
		audioContext = audio.NewContext(sampleRate)
	})
	return audioContext
}

// Tone renders a sine tone as 16-bit little-endian stereo PCM, the format
// audio.Context.NewPlayerFromBytes expects. The last quarter fades out so
// the tone doesn't click.
func Tone(freq float64, d time.Duration) []byte {
	n := int(d.Seconds() * sampleRate)
	if n <= 0 || freq <= 0 {
		return nil
	}
	fade := n / 4
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		amp := 1.0
		if left := n - i; left < fade {
			amp = float64(left) / float64(fade)
		}
		s := int16(amp * math.MaxInt16 * 0.8 * math.Sin(2*math.Pi*freq*float64(i)/sampleRate))
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(s))
	}
	return buf
}

// cue is the part of *audio.Player that Sounds drives.
type cue interface {
	SetPosition(offset time.Duration) error
	Play()
	Close() error
}

// Sounds maps a bounce event name ("wall", "side", "paddle") to its player.
type Sounds map[string]cue

// NewSounds builds one player per audio spec. Specs with no tone are skipped.
func NewSounds(specs []prefabs.AudioSpec) Sounds {
	sounds := make(Sounds, len(specs))
	for _, spec := range specs {
		pcm := Tone(spec.Frequency, time.Duration(spec.DurationMs)*time.Millisecond)
		if pcm == nil {
			log.Printf("assets: skipping silent %q cue", spec.Event)
			continue
		}
		p := audioCtx().NewPlayerFromBytes(pcm)
		p.SetVolume(spec.Volume)
		sounds[spec.Event] = p
	}
	return sounds
}

// Play restarts the named cue. Unknown names are ignored.
func (s Sounds) Play(event string) {
	p := s[event]
	if p == nil {
		return
	}
	if err := p.SetPosition(0); err != nil {
		log.Printf("assets: rewind %q: %v", event, err)
		return
	}
	p.Play()
}

// Close releases every player. Sounds is empty afterwards.
func (s Sounds) Close() error {
	var errs []error
	for event, p := range s {
		if err := p.Close(); err != nil {
			errs = append(errs, fmt.Errorf("assets: close %q: %w", event, err))
		}
		delete(s, event)
	}
	return errors.Join(errs...)
}
