package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

// Note frequencies in Hz.
const (
	noteC4 = 261.63
	noteE4 = 329.63
	noteG4 = 392.00
	noteA4 = 440.00
	noteC5 = 523.25
	noteE5 = 659.25
	noteG5 = 783.99
)

// Tone returns a sine note of the given length that fades out linearly.
// Returns nil when freq cannot be produced at rate.
func Tone(rate beep.SampleRate, freq float64, d time.Duration, gain float64) beep.Streamer {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil
	}
	return fade(beep.Take(rate.N(d), sine), rate.N(d), gain)
}

// fade scales s from gain down to silence over total samples.
func fade(s beep.Streamer, total int, gain float64) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := s.Stream(samples)
		for i := 0; i < n; i++ {
			v := gain * (1 - float64(pos)/float64(total))
			if v < 0 {
				v = 0
			}
			samples[i][0] *= v
			samples[i][1] *= v
			pos++
		}
		return n, ok
	})
}

func sequence(rate beep.SampleRate, step time.Duration, gain float64, freqs ...float64) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		if t := Tone(rate, f, step, gain); t != nil {
			notes = append(notes, t)
		}
	}
	return beep.Seq(notes...)
}

// MenuLoop returns an endless arpeggio.
func MenuLoop(rate beep.SampleRate) beep.Streamer {
	return beep.Iterate(func() beep.Streamer {
		return sequence(rate, 180*time.Millisecond, 0.25,
			noteC4, noteE4, noteG4, noteC5, noteA4, noteE4, noteG4, noteE4)
	})
}

// HitSound is a short rising blip.
func HitSound(rate beep.SampleRate) beep.Streamer {
	return sequence(rate, 40*time.Millisecond, 0.4, noteC5, noteG5)
}

// MissSound is a low buzz.
func MissSound(rate beep.SampleRate) beep.Streamer {
	return Tone(rate, 110, 150*time.Millisecond, 0.5)
}

// GameOverSound is a falling phrase.
func GameOverSound(rate beep.SampleRate) beep.Streamer {
	return sequence(rate, 220*time.Millisecond, 0.35, noteE5, noteC5, noteA4, noteE4)
}
