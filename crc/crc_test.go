package crc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/temoto/sdl3ev/helpers"
)

func TestReference(t *testing.T) {
	t.Parallel()
	for _, c := range []struct{ in, expect byte }{
		{0x00, 0x00},
		{0x55, 0x86},
		{0xaa, 0x9f},
		{0xff, 0x19},
	} {
		assert.Equal(t, c.expect, reference93(0, c.in), "%02x", c.in)
		assert.Equal(t, c.expect, CRC8_p93_next(0, c.in), "%02x", c.in)
	}
	assert.Equal(t, byte(0x74), CRC8_p93_2(0x80, 0x00))
}

func TestTable(t *testing.T) {
	t.Parallel()
	for crc := 0; crc < 256; crc++ {
		for data := 0; data < 256; data += 17 {
			assert.Equal(t, reference93(byte(crc), byte(data)), CRC8_p93_next(byte(crc), byte(data)))
		}
	}
}

func TestN(t *testing.T) {
	t.Parallel()
	rnd := helpers.RandUnix()
	b := make([]byte, 129)
	rnd.Read(b)
	var expect byte
	for _, x := range b {
		expect = reference93(expect, x)
	}
	assert.Equal(t, expect, CRC8_p93_n(0, b))
	assert.Equal(t, CRC8_p93_2(b[0], b[1]), CRC8_p93_n(0, b[:2]))
	assert.Equal(t, byte(0x2a), CRC8_p93_n(0x2a, nil))
}
