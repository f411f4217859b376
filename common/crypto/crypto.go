// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package crypto signing interfaces and the driver registry
package crypto

import (
	"fmt"
	"sync"
)

//PrivKey private key
type PrivKey interface {
	Bytes() []byte
	Sign(msg []byte) Signature
	PubKey() PubKey
	Equals(PrivKey) bool
}

//Signature signature
type Signature interface {
	Bytes() []byte
	IsZero() bool
	String() string
	Equals(Signature) bool
}

//PubKey public key
type PubKey interface {
	Bytes() []byte
	KeyString() string
	VerifyBytes(msg []byte, sig Signature) bool
	Equals(PubKey) bool
}

//Crypto a signature scheme
type Crypto interface {
	GenKey() (PrivKey, error)
	SignatureFromBytes([]byte) (Signature, error)
	PrivKeyFromBytes([]byte) (PrivKey, error)
	PubKeyFromBytes([]byte) (PubKey, error)
}

var (
	drivers     = make(map[string]Crypto)
	driversType = make(map[string]int32)
	driverMutex sync.Mutex
)

//Register register a driver under name and signature type ty
func Register(name string, ty int32, driver Crypto) {
	driverMutex.Lock()
	defer driverMutex.Unlock()
	if driver == nil {
		panic("crypto: Register driver is nil")
	}
	if _, dup := drivers[name]; dup {
		panic("crypto: Register called twice for driver " + name)
	}
	drivers[name] = driver
	driversType[name] = ty
}

//GetName name of signature type ty
func GetName(ty int32) string {
	driverMutex.Lock()
	defer driverMutex.Unlock()
	for name, t := range driversType {
		if t == ty {
			return name
		}
	}
	return "unknown"
}

//GetType signature type of name, 0 if unknown
func GetType(name string) int32 {
	driverMutex.Lock()
	defer driverMutex.Unlock()
	return driversType[name]
}

//New load a registered driver
func New(name string) (Crypto, error) {
	driverMutex.Lock()
	defer driverMutex.Unlock()
	c, ok := drivers[name]
	if !ok {
		return nil, fmt.Errorf("unknown driver %q", name)
	}
	return c, nil
}

//Load load a registered driver by signature type
func Load(ty int32) (Crypto, error) {
	return New(GetName(ty))
}
