package mortgage

import (
	"errors"
	"math"
	"testing"
)

func TestPeriodicRate(t *testing.T) {
	tests := []struct {
		name            string
		quotedRate      float64
		paymentsPerYear int
		expected        float64
	}{
		{
			name:            "Semi-annual payments recover the semi-annual rate",
			quotedRate:      0.05,
			paymentsPerYear: 2,
			expected:        0.025,
		},
		{
			name:            "Monthly at 5 percent",
			quotedRate:      0.05,
			paymentsPerYear: 12,
			expected:        0.0041239, // (1.025)^(1/6) - 1
		},
		{
			name:            "Bi-weekly at 5 percent",
			quotedRate:      0.05,
			paymentsPerYear: 26,
			expected:        0.0019012, // (1.025)^(1/13) - 1
		},
		{
			name:            "Zero rate",
			quotedRate:      0,
			paymentsPerYear: 12,
			expected:        0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate, err := PeriodicRate(tt.quotedRate, tt.paymentsPerYear)
			if err != nil {
				t.Fatalf("PeriodicRate() error = %v", err)
			}
			if math.Abs(rate-tt.expected) > 1e-6 {
				t.Errorf("PeriodicRate() = %.7f, expected %.7f", rate, tt.expected)
			}
		})
	}
}

func TestPeriodicRateCompoundingEquivalence(t *testing.T) {
	// The periodic rate compounded paymentsPerYear times must reproduce
	// the annual growth of the quoted rate compounded semi-annually.
	quoted := 0.065
	annualGrowth := math.Pow(1+quoted/2, 2)

	for _, m := range []int{1, 2, 4, 12, 24, 26, 52} {
		rate, err := PeriodicRate(quoted, m)
		if err != nil {
			t.Fatalf("PeriodicRate(%v, %d) error = %v", quoted, m, err)
		}
		recompounded := math.Pow(1+rate, float64(m))
		if math.Abs(recompounded-annualGrowth) > 1e-12 {
			t.Errorf("compounding %d times gives annual growth %.12f, expected %.12f",
				m, recompounded, annualGrowth)
		}
	}
}

func TestPeriodicRateErrors(t *testing.T) {
	tests := []struct {
		name            string
		quotedRate      float64
		paymentsPerYear int
		wantErr         error
	}{
		{
			name:            "Negative rate",
			quotedRate:      -0.01,
			paymentsPerYear: 12,
			wantErr:         ErrInvalidRate,
		},
		{
			name:            "Zero payments per year",
			quotedRate:      0.05,
			paymentsPerYear: 0,
			wantErr:         ErrInvalidFrequency,
		},
		{
			name:            "Negative payments per year",
			quotedRate:      0.05,
			paymentsPerYear: -12,
			wantErr:         ErrInvalidFrequency,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PeriodicRate(tt.quotedRate, tt.paymentsPerYear)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("PeriodicRate() error = %v, expected %v", err, tt.wantErr)
			}
		})
	}
}
