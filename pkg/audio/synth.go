package audio

import (
	"math"
	"math/rand"
)

const sampleRate = 44100

// Waveform types
const (
	waveSine = iota
	waveSquare
	waveNoise
)

// oscillator generates raw mono samples at unity gain.
func oscillator(waveType int, freq float64, samples int) []float64 {
	buf := make([]float64, samples)
	phase := 0.0
	phaseInc := freq / sampleRate

	for i := range buf {
		switch waveType {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			if phase < 0.5 {
				buf[i] = 1.0
			} else {
				buf[i] = -1.0
			}
		case waveNoise:
			buf[i] = rand.Float64()*2 - 1
		}
		phase += phaseInc
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// applyEnvelope shapes the buffer with a linear attack and release.
func applyEnvelope(buf []float64, attackSec, releaseSec float64) {
	total := len(buf)
	attack := int(attackSec * sampleRate)
	release := int(releaseSec * sampleRate)

	releaseStart := total - release
	if releaseStart < attack {
		releaseStart = attack
	}

	for i := range buf {
		vol := 1.0
		if i < attack && attack > 0 {
			vol = float64(i) / float64(attack)
		} else if i >= releaseStart && release > 0 {
			vol = float64(total-i) / float64(release)
		}
		buf[i] *= vol
	}
}

// scale multiplies the buffer in place.
func scale(buf []float64, gain float64) {
	for i := range buf {
		buf[i] *= gain
	}
}

// concat appends b to a.
func concat(a, b []float64) []float64 {
	out := make([]float64, len(a)+len(b))
	copy(out, a)
	copy(out[len(a):], b)
	return out
}

func durationToSamples(seconds float64) int {
	return int(seconds * sampleRate)
}

// tone is one enveloped note.
func tone(waveType int, freq, seconds float64) []float64 {
	buf := oscillator(waveType, freq, durationToSamples(seconds))
	applyEnvelope(buf, 0.005, seconds/3)
	return buf
}

// --- Cue generators (unity gain) ---

// generateBoostSound is a quick rising two-note chirp.
func generateBoostSound() []float64 {
	buf := concat(tone(waveSquare, 660, 0.07), tone(waveSquare, 880, 0.12))
	scale(buf, 0.35)
	return buf
}

// generateCrashSound is a short noise burst with a hard decay.
func generateCrashSound() []float64 {
	buf := oscillator(waveNoise, 0, durationToSamples(0.25))
	applyEnvelope(buf, 0.002, 0.2)
	scale(buf, 0.5)
	return buf
}

// generateFinishSound is a three-note jingle.
func generateFinishSound() []float64 {
	buf := concat(tone(waveSine, 523.25, 0.12), tone(waveSine, 659.25, 0.12))
	buf = concat(buf, tone(waveSine, 783.99, 0.25))
	scale(buf, 0.45)
	return buf
}
