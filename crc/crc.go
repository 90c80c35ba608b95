// Package crc is CRC-8 with polynomial 0x93, used to check journal entries.
package crc

const Poly93 byte = 0x93

var table93 = func() (t [256]byte) {
	for i := range t {
		t[i] = reference93(0, byte(i))
	}
	return
}()

func reference93(crc, data byte) byte {
	crc ^= data
	for i := 0; i < 8; i++ {
		if crc&0x80 != 0 {
			crc = crc<<1 ^ Poly93
		} else {
			crc <<= 1
		}
	}
	return crc
}

func CRC8_p93_next(crc, data byte) byte { return table93[crc^data] }

func CRC8_p93_2(b1, b2 byte) byte { return CRC8_p93_next(CRC8_p93_next(0, b1), b2) }

func CRC8_p93_n(crc byte, data []byte) byte {
	for _, b := range data {
		crc = table93[crc^b]
	}
	return crc
}
