package audio

import "math"

// lfsrNoise is a 16-bit Fibonacci linear-feedback shift register used as the
// noise source for the snare and hi-hat voices. It is pure per-instance
// state (never package-global or math/rand-backed) so that two voices
// constructed identically and driven with the same call sequence reproduce
// bit-identical noise, per the determinism requirement in SPEC_FULL.md §4.7.
type lfsrNoise struct {
	state uint32
}

func newLFSRNoise(seed uint32) *lfsrNoise {
	return &lfsrNoise{state: seed}
}

func (n *lfsrNoise) next() float64 {
	bit := (n.state ^ (n.state >> 2) ^ (n.state >> 3) ^ (n.state >> 5)) & 1
	n.state = (n.state >> 1) | (bit << 15)
	return float64(n.state)/32768 - 1
}

// onePole is a single one-pole IIR section, reused for the snare/hihat
// noise-shaping filters.
type onePole struct {
	coef  float64
	state float64
}

func (p *onePole) step(x float64) float64 {
	p.state += p.coef * (x - p.state)
	return p.state
}

// ----- Kick ----- //

// Kick is a sine-core one-shot with a pitch envelope layered on top of the
// amplitude envelope, matching the original 808-style two-envelope kick
// (SPEC_FULL.md §12).
type Kick struct {
	sr float64

	phase float64

	ampEnv, ampDecay     float64
	pitchEnv, pitchDecay float64

	baseFreq    float64
	pitchAmount float64

	active bool
}

func newKick(sr float64) *Kick {
	k := &Kick{sr: sr, baseFreq: 55, pitchAmount: 65}
	k.setDecay(0.45)
	return k
}

func (k *Kick) setDecay(decay float64) {
	decay = clamp(decay, 0, 1)
	ampMs := 50 + decay*450
	pitchMs := 10 + decay*40
	k.ampDecay = math.Pow(0.001, 1/(ampMs/1000*k.sr))
	k.pitchDecay = math.Pow(0.001, 1/(pitchMs/1000*k.sr))
}

func (k *Kick) trigger() {
	k.phase = 0
	k.ampEnv = 1
	k.pitchEnv = 1
	k.active = true
}

func (k *Kick) renderSample() float64 {
	if !k.active {
		return 0
	}
	freq := k.baseFreq + k.pitchEnv*k.pitchAmount
	out := math.Sin(k.phase * 2 * math.Pi)
	k.phase += freq / k.sr
	k.phase -= math.Floor(k.phase)

	out *= k.ampEnv
	k.ampEnv *= k.ampDecay
	k.pitchEnv *= k.pitchDecay
	if k.ampEnv < 0.001 {
		k.active = false
	}
	return math.Tanh(out * 1.5)
}

// ----- Snare ----- //

// Snare mixes a tonal triangle body with filtered LFSR noise, matching the
// original tone/noise blend (SPEC_FULL.md §12).
type Snare struct {
	sr float64

	tonePhase float64
	toneFreq  float64
	toneEnv   float64
	toneDecay float64

	noise      *lfsrNoise
	noiseEnv   float64
	noiseDecay float64
	noiseHP    onePole
	noiseLP    onePole

	toneMix float64

	active bool
}

func newSnare(sr float64) *Snare {
	s := &Snare{
		sr:       sr,
		toneFreq: 180,
		noise:    newLFSRNoise(0xACE1),
		toneMix:  0.4,
		noiseHP:  onePole{coef: 0.95},
		noiseLP:  onePole{coef: 0.3},
	}
	s.setDecay(0.3)
	return s
}

func (s *Snare) setDecay(decay float64) {
	decay = clamp(decay, 0, 1)
	toneMs := 30 + decay*100
	noiseMs := 50 + decay*200
	s.toneDecay = math.Pow(0.001, 1/(toneMs/1000*s.sr))
	s.noiseDecay = math.Pow(0.001, 1/(noiseMs/1000*s.sr))
}

func (s *Snare) trigger() {
	s.tonePhase = 0
	s.toneEnv = 1
	s.noiseEnv = 1
	s.active = true
}

func (s *Snare) renderSample() float64 {
	if !s.active {
		return 0
	}
	toneFreq := s.toneFreq * (1 + s.toneEnv*0.5)
	// Triangle starting at 0 and rising, like sin would, so the trigger
	// sample does not click.
	tone := 1 - 4*math.Abs(math.Mod(s.tonePhase+0.25, 1)-0.5)
	s.tonePhase += toneFreq / s.sr
	s.tonePhase -= math.Floor(s.tonePhase)

	noise := s.noise.next()
	s.noiseHP.state = s.noiseHP.coef * (s.noiseHP.state + noise - s.noiseLP.state)
	filtered := s.noiseLP.step(s.noiseHP.state)

	toneOut := tone * s.toneEnv * s.toneMix
	noiseOut := filtered * s.noiseEnv * (1 - s.toneMix*0.5)
	out := toneOut + noiseOut

	s.toneEnv *= s.toneDecay
	s.noiseEnv *= s.noiseDecay
	if s.toneEnv < 0.001 && s.noiseEnv < 0.001 {
		s.active = false
	}
	return math.Tanh(out*2) * 0.7
}

// ----- Hi-hat ----- //

var hihatRatios = [6]float64{1.0, 1.4471, 1.6170, 1.9265, 2.5028, 2.6637}

// hihat is the shared metallic-noise engine behind both the closed and
// open hi-hat voices: six detuned square oscillators at inharmonic ratios
// plus LFSR noise through a recursive bandpass.
type hihat struct {
	sr float64

	noise  *lfsrNoise
	phases [6]float64
	freqs  [6]float64

	bp1, bp2   float64
	bpCutoff   float64
	bpQ        float64

	env     float64
	decay   float64
	active  bool
	choking bool
	chokeRate float64
}

func newHihat(sr, base float64, seed uint32, decay, bpCutoff, bpQ, chokeRate float64) *hihat {
	h := &hihat{sr: sr, noise: newLFSRNoise(seed), decay: decay, bpCutoff: bpCutoff, bpQ: bpQ, chokeRate: chokeRate}
	for i, ratio := range hihatRatios {
		h.freqs[i] = base * ratio
	}
	return h
}

func (h *hihat) trigger() {
	h.env = 1
	h.active = true
	h.choking = false
}

func (h *hihat) choke() {
	if h.active {
		h.choking = true
	}
}

func (h *hihat) renderSample() float64 {
	if !h.active {
		return 0
	}
	oscMix := 0.0
	for i := range h.phases {
		if h.phases[i] < 0.5 {
			oscMix++
		} else {
			oscMix--
		}
		h.phases[i] += h.freqs[i] / h.sr
		h.phases[i] -= math.Floor(h.phases[i])
	}
	oscMix /= 6

	mixed := oscMix + h.noise.next()*0.3

	h.bp1 += h.bpCutoff * (mixed - h.bp1 - h.bpQ*h.bp2)
	h.bp2 += h.bpCutoff * h.bp1
	out := h.bp1 * h.env

	if h.choking {
		h.env *= h.chokeRate
	} else {
		h.env *= h.decay
	}
	if h.env < 0.001 {
		h.active = false
	}
	return out * 0.5
}

// ClosedHihat and OpenHihat are distinct instances of the same engine with
// different decay/choke characteristics; triggering the closed hat chokes
// any ringing open hat (SPEC_FULL.md §12).
type ClosedHihat struct{ *hihat }
type OpenHihat struct{ *hihat }

func newClosedHihat(sr float64) *ClosedHihat {
	return &ClosedHihat{newHihat(sr, 400, 0xBEEF, 0.9985, 0.4, 0.7, 0)}
}

func newOpenHihat(sr float64) *OpenHihat {
	return &OpenHihat{newHihat(sr, 400, 0xCAFE, 0.9998, 0.35, 0.6, 0.99)}
}

// ----- Drum kit ----- //

// DrumKit owns the four drum voices and the closed/open hi-hat choke rule.
type DrumKit struct {
	Kick        *Kick
	Snare       *Snare
	ClosedHihat *ClosedHihat
	OpenHihat   *OpenHihat
}

func newDrumKit(sr float64) *DrumKit {
	return &DrumKit{
		Kick:        newKick(sr),
		Snare:       newSnare(sr),
		ClosedHihat: newClosedHihat(sr),
		OpenHihat:   newOpenHihat(sr),
	}
}

// trigger fires the voices named by a DrumStep, applying the chokes rule.
func (d *DrumKit) trigger(step DrumStep) {
	if step.Kick {
		d.Kick.trigger()
	}
	if step.Snare {
		d.Snare.trigger()
	}
	if step.ClosedHH {
		d.OpenHihat.choke()
		d.ClosedHihat.trigger()
	}
	if step.OpenHH {
		d.OpenHihat.trigger()
	}
}
