// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package address base58check addresses derived from public keys
package address

import (
	"bytes"
	"encoding/hex"
	"errors"

	"github.com/33cn/rps/common"
	"github.com/decred/base58"
	lru "github.com/hashicorp/golang-lru"
)

var addressCache *lru.Cache
var checkAddressCache *lru.Cache

// errors
var (
	ErrDecodeBase58  = errors.New("ErrDecodeBase58")
	ErrAddressLength = errors.New("ErrAddressLength")
	ErrCheckSum      = errors.New("ErrCheckSum")
)

func init() {
	addressCache, _ = lru.New(10240)
	checkAddressCache, _ = lru.New(10240)
}

//PubKeyToAddr address string of a public key, cached
func PubKeyToAddr(in []byte) string {
	if value, ok := addressCache.Get(string(in)); ok {
		return value.(string)
	}
	addr := PubKeyToAddress(in).String()
	addressCache.Add(string(in), addr)
	return addr
}

//PubKeyToAddress public key -> address
func PubKeyToAddress(in []byte) *Address {
	a := new(Address)
	a.Pubkey = common.CopyBytes(in)
	a.Version = 0
	a.Hash160 = common.Rimp160AfterSha256(in)
	return a
}

//CheckAddress check base58 encoding and checksum
func CheckAddress(addr string) (e error) {
	if value, ok := checkAddressCache.Get(addr); ok {
		if value == nil {
			return nil
		}
		return value.(error)
	}
	_, e = NewAddrFromString(addr)
	checkAddressCache.Add(addr, e)
	return e
}

//NewAddrFromString parse an address
func NewAddrFromString(hs string) (*Address, error) {
	dec := base58.Decode(hs)
	if len(dec) == 0 {
		return nil, ErrDecodeBase58
	}
	if len(dec) != 25 {
		return nil, errors.New(ErrAddressLength.Error() + " " + hex.EncodeToString(dec))
	}
	sh := common.Sha2Sum(dec[0:21])
	if !bytes.Equal(sh[:4], dec[21:25]) {
		return nil, ErrCheckSum
	}
	a := new(Address)
	a.Version = dec[0]
	copy(a.Hash160[:], dec[1:21])
	a.Checksum = make([]byte, 4)
	copy(a.Checksum, dec[21:25])
	a.Enc58str = hs
	return a, nil
}

//Address address
type Address struct {
	Version  byte
	Hash160  [20]byte
	Checksum []byte
	Pubkey   []byte
	Enc58str string
}

func (a *Address) String() string {
	if a.Enc58str == "" {
		var ad [25]byte
		ad[0] = a.Version
		copy(ad[1:21], a.Hash160[:])
		if a.Checksum == nil {
			sh := common.Sha2Sum(ad[0:21])
			a.Checksum = make([]byte, 4)
			copy(a.Checksum, sh[:4])
		}
		copy(ad[21:25], a.Checksum[:])
		a.Enc58str = base58.Encode(ad[:])
	}
	return a.Enc58str
}
