// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gbahl

package rom

import "fmt"

// ROM address space. Offsets up to MaxOffset cover banks 0x08 through 0x0D.
const (
	BankBase  = 0x08000000
	MaxOffset = 0x05FFFFFF
)

// PointerKind classifies a decoded ROM pointer.
type PointerKind uint8

// Pointer kinds. The zero value is PointerZero.
const (
	PointerZero PointerKind = iota
	PointerInvalid
	PointerValid
)

// String returns the kind name.
func (k PointerKind) String() string {
	switch k {
	case PointerZero:
		return "zero"
	case PointerInvalid:
		return "invalid"
	case PointerValid:
		return "valid"
	}
	return fmt.Sprintf("PointerKind(%d)", uint8(k))
}

// Pointer is an immutable ROM pointer: null, invalid, or a valid logical offset.
// The zero value is the null pointer.
type Pointer struct {
	kind   PointerKind
	offset uint32
	raw    uint32 // kept for invalid pointers so they can be reported
}

// ZeroPointer is the null pointer (raw value 0).
var ZeroPointer = Pointer{}

// DecodePointer classifies a raw 4-byte pointer value.
func DecodePointer(raw uint32) Pointer {
	switch {
	case raw == 0:
		return ZeroPointer
	case raw >= BankBase && raw <= BankBase+MaxOffset:
		return Pointer{kind: PointerValid, offset: raw - BankBase, raw: raw}
	}
	return Pointer{kind: PointerInvalid, raw: raw}
}

// NewPointer returns the valid pointer to offset, or ErrInvalidPointer if
// offset is outside [0, MaxOffset].
func NewPointer(offset int64) (Pointer, error) {
	if offset < 0 || offset > MaxOffset {
		return Pointer{kind: PointerInvalid}, fmt.Errorf("%w: offset 0x%X outside 0..0x%X", ErrInvalidPointer, offset, MaxOffset)
	}

	// #nosec G115 -- offset bounded by MaxOffset above.
	o := uint32(offset)
	return Pointer{kind: PointerValid, offset: o, raw: o + BankBase}, nil
}

// Kind returns the pointer classification.
func (p Pointer) Kind() PointerKind { return p.kind }

// IsValid reports whether p points into the ROM.
func (p Pointer) IsValid() bool { return p.kind == PointerValid }

// IsZero reports whether p is the null pointer.
func (p Pointer) IsZero() bool { return p.kind == PointerZero }

// Offset returns the logical offset of a valid pointer and -1 otherwise.
func (p Pointer) Offset() int64 {
	if p.kind != PointerValid {
		return -1
	}
	return int64(p.offset)
}

// Raw encodes p to its 4-byte wire value. Invalid pointers must never be
// persisted and return ErrInvalidPointer.
func (p Pointer) Raw() (uint32, error) {
	switch p.kind {
	case PointerZero:
		return 0, nil
	case PointerValid:
		return p.offset + BankBase, nil
	}
	return 0, fmt.Errorf("%w: raw value 0x%08X", ErrInvalidPointer, p.raw)
}

// Bank returns the memory bank (high byte of the raw value) of a valid pointer, 0 otherwise.
func (p Pointer) Bank() byte {
	if p.kind != PointerValid {
		return 0
	}
	return byte((p.offset + BankBase) >> 24)
}

// String formats p as a 6-digit hex offset, "null" or "invalid(raw)".
func (p Pointer) String() string {
	switch p.kind {
	case PointerZero:
		return "null"
	case PointerValid:
		return fmt.Sprintf("0x%06X", p.offset)
	}
	return fmt.Sprintf("invalid(0x%08X)", p.raw)
}
