package hashidx

import "testing"

const benchSalt = "i am the salt of the earth"

func benchData() []uint64 {
	var x uint64
	data := make([]uint64, 0, 100)
	for i := uint64(0); i < 100; i++ {
		x = x*13 + i
		data = append(data, x)
	}
	return data
}

func BenchmarkCustomCreation(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = NewBuilder().Salt(benchSalt).Length(20).MustBuild()
	}
}

func BenchmarkDefaultCreation(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = New()
	}
}

func BenchmarkEncode(b *testing.B) {
	data := benchData()
	h := NewBuilder().Salt(benchSalt).Length(20).MustBuild()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = h.Encode(data)
	}
}

func BenchmarkDecode(b *testing.B) {
	data := benchData()
	h := NewBuilder().Salt(benchSalt).Length(20).MustBuild()
	hash := h.Encode(data)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := h.Decode(hash); err != nil {
			b.Fatal(err)
		}
	}
}
