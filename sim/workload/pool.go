package workload

import (
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"
)

// SamplePool pre-draws a fixed number of samples and hands them out in order.
// Drawing past the provisioned size logs a warning and replaces the pool with
// a fresh batch of the same size, instead of failing.
type SamplePool struct {
	name    string
	sampler Sampler
	values  []float64
	next    int

	// Regenerations counts how many times the pool was exhausted and redrawn.
	Regenerations int
}

// NewSamplePool draws size samples up front. size must be positive.
func NewSamplePool(name string, sampler Sampler, size int) *SamplePool {
	p := &SamplePool{name: name, sampler: sampler, values: make([]float64, size)}
	p.fill()
	return p
}

func (p *SamplePool) fill() {
	for i := range p.values {
		p.values[i] = p.sampler.Sample()
	}
	p.next = 0
}

// Next returns the next provisioned sample.
func (p *SamplePool) Next() float64 {
	if p.next >= len(p.values) {
		logrus.Warnf("%s pool: draws exceed provisioned size %d; resampling", p.name, len(p.values))
		p.Regenerations++
		p.fill()
	}
	v := p.values[p.next]
	p.next++
	return v
}

// Size returns the number of samples provisioned per batch.
func (p *SamplePool) Size() int {
	return len(p.values)
}

// Remaining returns how many samples are left before the next regeneration.
func (p *SamplePool) Remaining() int {
	return len(p.values) - p.next
}

// EmpiricalMean returns the mean of the current batch.
func (p *SamplePool) EmpiricalMean() float64 {
	return stat.Mean(p.values, nil)
}
