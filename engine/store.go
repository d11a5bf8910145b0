package engine

import (
	"fmt"
	"math/big"

	"github.com/ezrec/analytical/mill"
)

const (
	STORE_SIZE = 1000 // Addresses in the store.
)

// Store is the engine's memory of numbers.
type Store struct {
	Data []*big.Int
}

// NewStore creates a store of STORE_SIZE zeroed addresses.
func NewStore() (st *Store) {
	st = &Store{}
	st.Reset()
	return
}

// Reset zeros every address.
func (st *Store) Reset() {
	if len(st.Data) != STORE_SIZE {
		st.Data = make([]*big.Int, STORE_SIZE)
	}
	for n := range st.Data {
		st.Data[n] = new(big.Int)
	}
}

// Get returns a copy of the value at an address.
func (st *Store) Get(addr int) (value *big.Int, err error) {
	if addr < 0 || addr >= len(st.Data) {
		err = fmt.Errorf("%w: %d", ErrAddressRange, addr)
		return
	}

	value = new(big.Int).Set(st.Data[addr])
	return
}

// Put sets the value at an address. The value must fit a mill axis.
func (st *Store) Put(addr int, value *big.Int) (err error) {
	if addr < 0 || addr >= len(st.Data) {
		err = fmt.Errorf("%w: %d", ErrAddressRange, addr)
		return
	}
	if value.Cmp(mill.Min()) < 0 || value.Cmp(mill.Max()) >= 0 {
		err = fmt.Errorf("%w: %v", ErrValueRange, value)
		return
	}

	st.Data[addr] = new(big.Int).Set(value)
	return
}
