package bullettime

import (
	"testing"
	"time"
)

type testClass int

const (
	testNormal testClass = iota
	testHalf
	testSlow
)

func (c testClass) Factor() float64 {
	switch c {
	case testHalf:
		return 0.5
	case testSlow:
		return 0.1
	}
	return 1
}

const frame = 100 * time.Millisecond

func TestDefaultIsRealTime(t *testing.T) {
	bt := New[DefaultClass]()
	bt.Tick(frame)
	if bt.Delta() != frame {
		t.Errorf("Delta = %v, want %v", bt.Delta(), frame)
	}
}

func TestEffects(t *testing.T) {
	tests := []struct {
		name    string
		base    testClass
		effects []testClass
		want    time.Duration
	}{
		{"base only", testNormal, nil, frame},
		{"slow base", testHalf, nil, frame / 2},
		{"one effect", testNormal, []testClass{testHalf}, frame / 2},
		{"slowest wins", testNormal, []testClass{testHalf, testSlow}, frame / 10},
		{"effect overrides base even when faster", testSlow, []testClass{testHalf}, frame / 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bt := New[testClass]()
			bt.SetBase(tt.base)
			for _, c := range tt.effects {
				bt.AddEffect(c, 10)
			}
			bt.Tick(frame)
			if bt.Delta() != tt.want {
				t.Errorf("Delta = %v, want %v", bt.Delta(), tt.want)
			}
		})
	}
}

func TestEffectExpiresInRealTime(t *testing.T) {
	bt := New[testClass]()
	bt.AddEffect(testSlow, 0.25)

	bt.Tick(frame)
	bt.Tick(frame)
	if bt.Active() != 1 {
		t.Fatalf("effect expired early after 0.2s")
	}
	if bt.Delta() != frame/10 {
		t.Errorf("Delta = %v, want %v", bt.Delta(), frame/10)
	}

	bt.Tick(frame)
	if bt.Active() != 0 {
		t.Fatalf("effect still active after 0.3s")
	}
	if bt.Delta() != frame {
		t.Errorf("Delta after expiry = %v, want %v", bt.Delta(), frame)
	}
}

func TestClearEffects(t *testing.T) {
	bt := New[testClass]()
	bt.AddEffect(testSlow, 5)
	bt.ClearEffects()
	bt.Tick(frame)
	if bt.Delta() != frame {
		t.Errorf("Delta = %v, want %v", bt.Delta(), frame)
	}
}

func TestFixed(t *testing.T) {
	bt := Fixed[DefaultClass](time.Second / 60)
	if bt.DeltaSecs() <= 0 {
		t.Fatal("Fixed delta should be positive")
	}
}
