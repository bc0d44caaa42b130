package fixed

import "testing"

func TestIdentityRoundTrip(t *testing.T) {
	id := Identity()
	f := id.ToFloat4x4()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want := float32(0)
			if i == j {
				want = 1
			}
			if f[i][j] != want {
				t.Errorf("identity[%d][%d] = %v, want %v", i, j, f[i][j], want)
			}
		}
	}
}

func TestColumnSwapStorage(t *testing.T) {
	var m Matrix
	m.Set(0, 0, 5, 0)
	// logical column 0 is stored at column lane(0) = 1.
	if m.Int[0][1] != 5 {
		t.Errorf("Set(0,0) did not land in storage column 1, got Int[0]=%v", m.Int[0])
	}
	if got, _ := m.Get(0, 0); got != 5 {
		t.Errorf("Get(0,0) = %d, want 5", got)
	}
}

func TestFromFloatRoundTrip(t *testing.T) {
	f := [4][4]float32{
		{1.5, 0, 0, 0},
		{0, -2.25, 0, 0},
		{0, 0, 1, 0},
		{10, 20, 30, 1},
	}
	m := FromFloat4x4(f)
	got := m.ToFloat4x4()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			diff := got[i][j] - f[i][j]
			if diff < -0.001 || diff > 0.001 {
				t.Errorf("[%d][%d] = %v, want %v", i, j, got[i][j], f[i][j])
			}
		}
	}
}

func TestMulIdentity(t *testing.T) {
	id := Identity()
	other := FromFloat4x4([4][4]float32{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	})
	got := Mul(id, other).ToFloat4x4()
	want := other.ToFloat4x4()
	if got != want {
		t.Errorf("identity * M = %v, want %v", got, want)
	}
}

func TestParseMatrixBigEndian(t *testing.T) {
	data := make([]byte, 64)
	// Integer lane for logical (0,0) lives in storage column 1.
	data[0*8+1*2] = 0x00
	data[0*8+1*2+1] = 0x07
	m := ParseMatrix(data)
	if got, _ := m.Get(0, 0); got != 7 {
		t.Errorf("Get(0,0) = %d, want 7", got)
	}
}
