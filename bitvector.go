package lz78

import "github.com/pkg/errors"

// BitVector is a fixed-length array of bits, LSB-first within each byte.
type BitVector struct {
	length uint32 // Declared number of bits.
	vector []byte // Backing store, length/8+1 bytes.
}

// NewBitVector returns a zero-filled vector of length bits.
// The store holds one byte more than the bits need when length is a multiple of 8,
// so a legacy final flush can always write one byte past the last full byte.
func NewBitVector(length uint32) *BitVector {
	return &BitVector{
		length: length,
		vector: make([]byte, length/8+1),
	}
}

// Len returns the declared number of bits.
func (v *BitVector) Len() uint32 {
	return v.length
}

// Bytes returns the backing store. Raw block transfers read and write it directly.
func (v *BitVector) Bytes() []byte {
	return v.vector
}

// Bit returns the bit at i as 0 or 1.
func (v *BitVector) Bit(i uint32) (uint8, error) {
	if err := v.check(i); err != nil {
		return 0, err
	}

	return (v.vector[i/8] >> (i % 8)) & 1, nil
}

// Set turns bit i on.
func (v *BitVector) Set(i uint32) error {
	if err := v.check(i); err != nil {
		return err
	}

	v.vector[i/8] |= 1 << (i % 8)

	return nil
}

// Clear turns bit i off.
func (v *BitVector) Clear(i uint32) error {
	if err := v.check(i); err != nil {
		return err
	}

	v.vector[i/8] &^= 1 << (i % 8)

	return nil
}

// SetAll turns every byte of the store to 0xFF.
func (v *BitVector) SetAll() {
	for i := range v.vector {
		v.vector[i] = 0xFF
	}
}

func (v *BitVector) check(i uint32) error {
	if i >= v.length {
		return errors.Wrapf(ErrBitIndex, "index=%d length=%d", i, v.length)
	}

	return nil
}
