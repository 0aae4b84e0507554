package peaks

import (
	"errors"
	"math"
	"math/rand"
	"reflect"
	"testing"
)

func bins(found []Peak) []int {
	out := make([]int, len(found))
	for i, p := range found {
		out[i] = p.Bin
	}
	return out
}

func TestLocalMaxima(t *testing.T) {
	tests := []struct {
		name string
		in   []float32
		want []int
	}{
		{name: "empty", in: nil, want: nil},
		{name: "short", in: []float32{0, 5}, want: nil},
		{name: "single", in: []float32{0, 2, 0}, want: []int{1}},
		{name: "edges ignored", in: []float32{9, 1, 2, 1, 9}, want: []int{2}},
		{name: "two", in: []float32{0, 64, 0, 16, 0}, want: []int{1, 3}},
		{name: "odd plateau", in: []float32{0, 3, 3, 3, 0}, want: []int{2}},
		{name: "even plateau lower middle", in: []float32{0, 3, 3, 3, 3, 0}, want: []int{2}},
		{name: "plateau into edge", in: []float32{0, 3, 3}, want: nil},
		{name: "shoulder", in: []float32{0, 3, 3, 5, 0}, want: []int{3}},
		{name: "flat", in: []float32{1, 1, 1, 1}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := localMaxima(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("localMaxima(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFindHeightIsExclusive(t *testing.T) {
	x := []float32{0, 1, 0, 2, 0, 3, 0}

	found, err := Find(x, 2, 0)
	if err != nil {
		t.Fatalf("Find error: %v", err)
	}
	if got := bins(found); !reflect.DeepEqual(got, []int{5}) {
		t.Fatalf("Find bins=%v want [5] (height 2 is not above 2)", got)
	}
}

func TestFindDistanceKeepsTaller(t *testing.T) {
	x := []float32{0, 5, 0, 9, 0, 4, 0, 0, 7, 0}

	found, err := Find(x, 0, 3)
	if err != nil {
		t.Fatalf("Find error: %v", err)
	}
	// 9@3 removes 5@1 and 4@5; 7@8 is 5 bins away.
	if got := bins(found); !reflect.DeepEqual(got, []int{3, 8}) {
		t.Fatalf("Find bins=%v want [3 8]", got)
	}
}

func TestFindDistanceTieKeepsLowerBin(t *testing.T) {
	x := []float32{0, 6, 0, 6, 0, 0}

	found, err := Find(x, 0, 3)
	if err != nil {
		t.Fatalf("Find error: %v", err)
	}
	if got := bins(found); !reflect.DeepEqual(got, []int{1}) {
		t.Fatalf("Find bins=%v want [1]", got)
	}
}

func TestFindDistanceOneIsNoConstraint(t *testing.T) {
	x := []float32{0, 2, 0, 3, 0, 1, 0}

	for _, d := range []int{0, 1} {
		found, err := Find(x, 0, d)
		if err != nil {
			t.Fatalf("Find error: %v", err)
		}
		if got := bins(found); !reflect.DeepEqual(got, []int{1, 3, 5}) {
			t.Fatalf("distance %d: bins=%v want [1 3 5]", d, got)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		n           int
		minHeight   float32
		minDistance int
		wantErr     bool
	}{
		{name: "ok", n: 8, minHeight: 0.01, minDistance: 1},
		{name: "zero height", n: 8, minHeight: 0, minDistance: 0},
		{name: "negative height", n: 8, minHeight: -1, minDistance: 1, wantErr: true},
		{name: "nan height", n: 8, minHeight: float32(math.NaN()), minDistance: 1, wantErr: true},
		{name: "negative distance", n: 8, minHeight: 0, minDistance: -1, wantErr: true},
		{name: "distance equals length", n: 8, minHeight: 0, minDistance: 8, wantErr: true},
		{name: "distance just below length", n: 8, minHeight: 0, minDistance: 7},
		{name: "empty input any distance", n: 0, minHeight: 0, minDistance: 5},
		{name: "unit distance on single bin", n: 1, minHeight: 0, minDistance: 1},
		{name: "distance two on two bins", n: 2, minHeight: 0, minDistance: 2, wantErr: true},
		{name: "inf height", n: 8, minHeight: float32(math.Inf(1)), minDistance: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.n, tt.minHeight, tt.minDistance)
			if tt.wantErr != (err != nil) {
				t.Fatalf("Validate() err=%v, wantErr=%v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidParameter) {
				t.Fatalf("Validate() err=%v does not wrap ErrInvalidParameter", err)
			}
		})
	}
}

func TestFindInvalidParameters(t *testing.T) {
	if _, err := Find([]float32{0, 1, 0}, -0.5, 1); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got %v", err)
	}
}

func TestRank(t *testing.T) {
	found := []Peak{{Bin: 1, Height: 4}, {Bin: 3, Height: 9}, {Bin: 5, Height: 4}, {Bin: 7, Height: 20}}

	got := Rank(found, 6)
	want := []Peak{{Bin: 3, Height: 9}, {Bin: 1, Height: 4}, {Bin: 5, Height: 4}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Rank()=%v want %v", got, want)
	}

	if found[0].Bin != 1 || found[3].Bin != 7 {
		t.Fatalf("Rank modified its input: %v", found)
	}
}

func TestRankAllBeyondLimit(t *testing.T) {
	got := Rank([]Peak{{Bin: 4, Height: 1}, {Bin: 6, Height: 2}}, 4)
	if len(got) != 0 {
		t.Fatalf("Rank()=%v want empty", got)
	}
}

func TestEncode(t *testing.T) {
	got := Encode([]int{1, 3})
	want := []float32{1, 1, 3, 3}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Encode()=%v want %v", got, want)
	}

	empty := Encode(nil)
	if empty == nil || len(empty) != 0 {
		t.Fatalf("Encode(nil)=%#v want empty non-nil slice", empty)
	}
}

func TestDetect(t *testing.T) {
	x := []float32{0, 64, 0, 16, 0}

	res, err := Detect(x, 0.01, 1, 4)
	if err != nil {
		t.Fatalf("Detect error: %v", err)
	}
	if !reflect.DeepEqual(res.Bins, []int{1, 3}) || !reflect.DeepEqual(res.Heights, []float32{64, 16}) {
		t.Fatalf("Detect()=%+v", res)
	}
	if res.MaxBin != 1 {
		t.Fatalf("MaxBin=%d want 1", res.MaxBin)
	}
	if !reflect.DeepEqual(res.Pairs(), []float32{1, 1, 3, 3}) {
		t.Fatalf("Pairs()=%v", res.Pairs())
	}

	top := res.Top(1)
	if top.Len() != 1 || top.Bins[0] != 1 || top.Heights[0] != 64 {
		t.Fatalf("Top(1)=%+v", top)
	}
	if res.Top(0).Len() != 2 || res.Top(5).Len() != 2 {
		t.Fatal("Top with n<=0 or n>=Len should return all peaks")
	}
}

func TestDetectEmptyInput(t *testing.T) {
	res, err := Detect(nil, 0, 0, 0)
	if err != nil {
		t.Fatalf("Detect error: %v", err)
	}
	if res.Len() != 0 || res.MaxBin != -1 {
		t.Fatalf("Detect(nil)=%+v", res)
	}
}

func TestDetectProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for iter := 0; iter < 200; iter++ {
		n := 8 + rng.Intn(120)
		x := make([]float32, n)
		for i := range x {
			x[i] = float32(rng.Float64() * 10)
		}
		minHeight := float32(rng.Float64() * 6)
		minDistance := rng.Intn(6)
		limit := rng.Intn(n + 1)

		res, err := Detect(x, minHeight, minDistance, limit)
		if err != nil {
			t.Fatalf("iter %d: Detect error: %v", iter, err)
		}

		for k, b := range res.Bins {
			if b >= limit {
				t.Fatalf("iter %d: bin %d not below limit %d", iter, b, limit)
			}
			if res.Heights[k] <= minHeight {
				t.Fatalf("iter %d: height %v not above %v", iter, res.Heights[k], minHeight)
			}
			if x[b] != res.Heights[k] {
				t.Fatalf("iter %d: height mismatch at bin %d", iter, b)
			}
			if k > 0 && res.Heights[k] > res.Heights[k-1] {
				t.Fatalf("iter %d: heights not non-increasing: %v", iter, res.Heights)
			}
			for j := 0; j < k; j++ {
				d := b - res.Bins[j]
				if d < 0 {
					d = -d
				}
				if d < minDistance {
					t.Fatalf("iter %d: bins %d and %d closer than %d", iter, b, res.Bins[j], minDistance)
				}
			}
		}

		again, _ := Detect(x, minHeight, minDistance, limit)
		if !reflect.DeepEqual(res, again) {
			t.Fatalf("iter %d: Detect not deterministic", iter)
		}
	}
}
