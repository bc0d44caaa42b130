package fixed

import "encoding/binary"

// Matrix is a 4x4 matrix of 16.16 signed fixed-point values, stored as the
// N64 RSP stores it in RDRAM: two parallel 4x4 arrays (an integer half and a
// fractional half) with the column-swap convention — storage column j holds
// logical column j^1. Get/Set hide the swap; Int/Frac keep the raw storage
// layout for code that needs to patch individual lanes the way
// insertMatrix does.
type Matrix struct {
	Int  [4][4]int16
	Frac [4][4]uint16
}

// Identity returns the 16.16 identity matrix.
func Identity() Matrix {
	var m Matrix
	for i := 0; i < 4; i++ {
		m.Int[i][i^1] = 1
	}
	return m
}

// lane converts a logical column index to its storage column index.
func lane(j int) int { return j ^ 1 }

// Get returns the logical element (i, j) as a 16.16 fixed value split into
// its integer and fractional parts.
func (m Matrix) Get(i, j int) (intPart int16, fracPart uint16) {
	c := lane(j)
	return m.Int[i][c], m.Frac[i][c]
}

// Set writes the logical element (i, j).
func (m *Matrix) Set(i, j int, intPart int16, fracPart uint16) {
	c := lane(j)
	m.Int[i][c] = intPart
	m.Frac[i][c] = fracPart
}

// GetFloat returns the logical element (i, j) as a float32.
func (m Matrix) GetFloat(i, j int) float32 {
	ip, fp := m.Get(i, j)
	return float32(ip) + float32(fp)/65536.0
}

// ToFloat4x4 converts the fixed matrix to a row-major float32 matrix.
func (m Matrix) ToFloat4x4() [4][4]float32 {
	var out [4][4]float32
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = m.GetFloat(i, j)
		}
	}
	return out
}

// FromFloat4x4 builds a Matrix from a row-major float32 matrix, truncating
// toward zero on the fractional lane (matching the RSP microcode's behavior
// when baking a floating-point matrix back to 16.16).
func FromFloat4x4(f [4][4]float32) Matrix {
	var m Matrix
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			v := f[i][j]
			ip := int16(v)
			frac := v - float32(ip)
			if frac < 0 {
				frac += 1
				ip--
			}
			m.Set(i, j, ip, uint16(frac*65536.0))
		}
	}
	return m
}

// ParseMatrix decodes the 64-byte big-endian on-disk matrix struct described
// in the external interface: the first 32 bytes are 16 big-endian int16
// integer lanes in storage (column-swapped) order, the next 32 bytes are the
// matching big-endian uint16 fractional lanes.
func ParseMatrix(data []byte) Matrix {
	var m Matrix
	for i := 0; i < 4; i++ {
		for c := 0; c < 4; c++ {
			off := (i*4 + c) * 2
			m.Int[i][c] = int16(binary.BigEndian.Uint16(data[off : off+2]))
		}
	}
	base := 32
	for i := 0; i < 4; i++ {
		for c := 0; c < 4; c++ {
			off := base + (i*4+c)*2
			m.Frac[i][c] = binary.BigEndian.Uint16(data[off : off+2])
		}
	}
	return m
}

// Mul multiplies two 16.16 matrices via a float32 intermediate, matching the
// precision the hardware's float-based HLE reimplementation uses for
// multiply-load matrix commands.
func Mul(a, b Matrix) Matrix {
	af := a.ToFloat4x4()
	bf := b.ToFloat4x4()
	var rf [4][4]float32
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += af[i][k] * bf[k][j]
			}
			rf[i][j] = sum
		}
	}
	return FromFloat4x4(rf)
}
