// Package event mirrors SDL3 SDL_Event memory layout.
//
// Buffer is the raw 128 byte union. Each variant type (KeyboardEvent,
// DropEvent, ...) has Decode/Encode at the fixed offsets of the native ABI.
// Decode picks the variant by tag. Pointers are Handle values and are never
// dereferenced here; string fields go through Memory.
package event
