package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

const testRate = beep.SampleRate(44100)

// drain reads s to the end, up to limit samples, and returns the count and
// peak amplitude.
func drain(s beep.Streamer, limit int) (int, float64) {
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			break
		}
	}
	return total, peak
}

func TestToneLengthAndFade(t *testing.T) {
	d := 100 * time.Millisecond
	tone := Tone(testRate, 440, d, 0.5)
	if tone == nil {
		t.Fatal("Tone() returned nil")
	}
	n, peak := drain(tone, testRate.N(time.Second))
	if n != testRate.N(d) {
		t.Errorf("tone has %d samples, want %d", n, testRate.N(d))
	}
	if peak <= 0 || peak > 0.5 {
		t.Errorf("peak = %v, want (0, 0.5]", peak)
	}
}

func TestToneRejectsUnplayableFrequency(t *testing.T) {
	if Tone(testRate, float64(testRate), time.Millisecond, 1) != nil {
		t.Error("Tone() above Nyquist should return nil")
	}
}

func TestEffectsAreFinite(t *testing.T) {
	tests := []struct {
		name string
		s    beep.Streamer
		want time.Duration
	}{
		{"hit", HitSound(testRate), 80 * time.Millisecond},
		{"miss", MissSound(testRate), 150 * time.Millisecond},
		{"game over", GameOverSound(testRate), 880 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, peak := drain(tt.s, testRate.N(10*time.Second))
			if n != testRate.N(tt.want) && math.Abs(float64(n-testRate.N(tt.want))) > 4 {
				t.Errorf("%d samples, want about %d", n, testRate.N(tt.want))
			}
			if peak == 0 {
				t.Error("sound is silent")
			}
		})
	}
}

func TestMenuLoopNeverEnds(t *testing.T) {
	limit := testRate.N(5 * time.Second)
	n, peak := drain(MenuLoop(testRate), limit)
	if n < limit {
		t.Errorf("menu loop ended after %d samples", n)
	}
	if peak == 0 {
		t.Error("menu loop is silent")
	}
}

func TestNopSatisfiesSounds(t *testing.T) {
	var n Nop
	n.PlayMenu()
	n.StopMenu()
	n.Hit()
	n.Miss()
	n.GameOver()
	n.Close()
}
