package evdev

import (
	"github.com/temoto/sdl3ev/event"
)

const scancodeMask = 1 << 30

type key struct {
	scancode uint32
	sym      uint32 // 0 means scancode|scancodeMask
	mod      event.Keymod
}

// Linux input-event-codes.h KEY_* to SDL scancode and keycode, US layout.
var keymap = map[uint16]key{
	1:   {41, 0x1b, 0},
	2:   {30, '1', 0},
	3:   {31, '2', 0},
	4:   {32, '3', 0},
	5:   {33, '4', 0},
	6:   {34, '5', 0},
	7:   {35, '6', 0},
	8:   {36, '7', 0},
	9:   {37, '8', 0},
	10:  {38, '9', 0},
	11:  {39, '0', 0},
	12:  {45, '-', 0},
	13:  {46, '=', 0},
	14:  {42, 0x08, 0},
	15:  {43, 0x09, 0},
	16:  {20, 'q', 0},
	17:  {26, 'w', 0},
	18:  {8, 'e', 0},
	19:  {21, 'r', 0},
	20:  {23, 't', 0},
	21:  {28, 'y', 0},
	22:  {24, 'u', 0},
	23:  {12, 'i', 0},
	24:  {18, 'o', 0},
	25:  {19, 'p', 0},
	26:  {47, '[', 0},
	27:  {48, ']', 0},
	28:  {40, 0x0d, 0},
	29:  {224, 0, event.KmodLCtrl},
	30:  {4, 'a', 0},
	31:  {22, 's', 0},
	32:  {7, 'd', 0},
	33:  {9, 'f', 0},
	34:  {10, 'g', 0},
	35:  {11, 'h', 0},
	36:  {13, 'j', 0},
	37:  {14, 'k', 0},
	38:  {15, 'l', 0},
	39:  {51, ';', 0},
	40:  {52, '\'', 0},
	41:  {53, '`', 0},
	42:  {225, 0, event.KmodLShift},
	43:  {49, '\\', 0},
	44:  {29, 'z', 0},
	45:  {27, 'x', 0},
	46:  {6, 'c', 0},
	47:  {25, 'v', 0},
	48:  {5, 'b', 0},
	49:  {17, 'n', 0},
	50:  {16, 'm', 0},
	51:  {54, ',', 0},
	52:  {55, '.', 0},
	53:  {56, '/', 0},
	54:  {229, 0, event.KmodRShift},
	56:  {226, 0, event.KmodLAlt},
	57:  {44, ' ', 0},
	58:  {57, 0, 0},
	59:  {58, 0, 0},
	60:  {59, 0, 0},
	61:  {60, 0, 0},
	62:  {61, 0, 0},
	63:  {62, 0, 0},
	64:  {63, 0, 0},
	65:  {64, 0, 0},
	66:  {65, 0, 0},
	67:  {66, 0, 0},
	68:  {67, 0, 0},
	87:  {68, 0, 0},
	88:  {69, 0, 0},
	97:  {228, 0, event.KmodRCtrl},
	100: {230, 0, event.KmodRAlt},
	102: {74, 0, 0},
	103: {82, 0, 0},
	104: {75, 0, 0},
	105: {80, 0, 0},
	106: {79, 0, 0},
	107: {77, 0, 0},
	108: {81, 0, 0},
	109: {78, 0, 0},
	110: {73, 0, 0},
	111: {76, 0x7f, 0},
	125: {227, 0, event.KmodLGui},
	126: {231, 0, event.KmodRGui},
}

const capsScancode = 57

// lookup returns SDL scancode and keycode, unknown codes map to scancode 0 and keycode 0.
func lookup(code uint16) key {
	k, ok := keymap[code]
	if !ok {
		return key{}
	}
	if k.sym == 0 {
		k.sym = k.scancode | scancodeMask
	}
	return k
}
