// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package secp256k1 secp256k1 signature driver
package secp256k1

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/33cn/rps/common"
	"github.com/33cn/rps/common/crypto"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
)

//const
const (
	Name = "secp256k1"
	ID   = int32(1)
)

func init() {
	crypto.Register(Name, ID, &Driver{})
}

//Driver driver
type Driver struct{}

//GenKey create private key
func (d Driver) GenKey() (crypto.PrivKey, error) {
	priv, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, err
	}
	privKeyBytes := [32]byte{}
	copy(privKeyBytes[:], priv.Serialize())
	return PrivKeySecp256k1(privKeyBytes), nil
}

//PrivKeyFromBytes 32 raw bytes -> private key
func (d Driver) PrivKeyFromBytes(b []byte) (privKey crypto.PrivKey, err error) {
	if len(b) != 32 {
		return nil, errors.New("invalid priv key byte")
	}
	privKeyBytes := new([32]byte)
	priv, _ := btcec.PrivKeyFromBytes(b)
	copy(privKeyBytes[:], priv.Serialize())
	return PrivKeySecp256k1(*privKeyBytes), nil
}

//PubKeyFromBytes 33 compressed bytes -> public key
func (d Driver) PubKeyFromBytes(b []byte) (pubKey crypto.PubKey, err error) {
	if len(b) != 33 {
		return nil, errors.New("invalid pub key byte")
	}
	if _, err := btcec.ParsePubKey(b); err != nil {
		return nil, err
	}
	pubKeyBytes := new([33]byte)
	copy(pubKeyBytes[:], b)
	return PubKeySecp256k1(*pubKeyBytes), nil
}

//SignatureFromBytes DER bytes -> signature
func (d Driver) SignatureFromBytes(b []byte) (sig crypto.Signature, err error) {
	return SignatureSecp256k1(b), nil
}

//PrivKeySecp256k1 PrivKey
type PrivKeySecp256k1 [32]byte

//Bytes raw bytes
func (privKey PrivKeySecp256k1) Bytes() []byte {
	s := make([]byte, 32)
	copy(s, privKey[:])
	return s
}

//Sign DER signature over sha256(msg)
func (privKey PrivKeySecp256k1) Sign(msg []byte) crypto.Signature {
	priv, _ := btcec.PrivKeyFromBytes(privKey[:])
	sig := ecdsa.Sign(priv, common.Sha256(msg))
	return SignatureSecp256k1(sig.Serialize())
}

//PubKey compressed public key
func (privKey PrivKeySecp256k1) PubKey() crypto.PubKey {
	_, pub := btcec.PrivKeyFromBytes(privKey[:])
	var pubSecp256k1 PubKeySecp256k1
	copy(pubSecp256k1[:], pub.SerializeCompressed())
	return pubSecp256k1
}

//Equals Equals
func (privKey PrivKeySecp256k1) Equals(other crypto.PrivKey) bool {
	if otherSecp, ok := other.(PrivKeySecp256k1); ok {
		return bytes.Equal(privKey[:], otherSecp[:])
	}
	return false
}

func (privKey PrivKeySecp256k1) String() string {
	return "PrivKeySecp256k1{*****}"
}

//PubKeySecp256k1 compressed pubkey, prefixed with 0x02 or 0x03
type PubKeySecp256k1 [33]byte

//Bytes raw bytes
func (pubKey PubKeySecp256k1) Bytes() []byte {
	s := make([]byte, 33)
	copy(s, pubKey[:])
	return s
}

//VerifyBytes verify a DER signature over sha256(msg)
func (pubKey PubKeySecp256k1) VerifyBytes(msg []byte, sig crypto.Signature) bool {
	sigSecp256k1, ok := sig.(SignatureSecp256k1)
	if !ok {
		return false
	}
	pub, err := btcec.ParsePubKey(pubKey[:])
	if err != nil {
		return false
	}
	sig2, err := ecdsa.ParseDERSignature(sigSecp256k1[:])
	if err != nil {
		return false
	}
	return sig2.Verify(common.Sha256(msg), pub)
}

func (pubKey PubKeySecp256k1) String() string {
	return fmt.Sprintf("PubKeySecp256k1{%X}", pubKey[:])
}

//KeyString hex string, used for map keying
func (pubKey PubKeySecp256k1) KeyString() string {
	return fmt.Sprintf("%X", pubKey[:])
}

//Equals Equals
func (pubKey PubKeySecp256k1) Equals(other crypto.PubKey) bool {
	if otherSecp, ok := other.(PubKeySecp256k1); ok {
		return bytes.Equal(pubKey[:], otherSecp[:])
	}
	return false
}

//SignatureSecp256k1 DER signature
type SignatureSecp256k1 []byte

//Bytes raw bytes
func (sig SignatureSecp256k1) Bytes() []byte {
	s := make([]byte, len(sig))
	copy(s, sig[:])
	return s
}

//IsZero empty signature
func (sig SignatureSecp256k1) IsZero() bool { return len(sig) == 0 }

func (sig SignatureSecp256k1) String() string {
	fingerprint := make([]byte, len(sig[:]))
	copy(fingerprint, sig[:])
	return fmt.Sprintf("/%X.../", fingerprint)
}

//Equals Equals
func (sig SignatureSecp256k1) Equals(other crypto.Signature) bool {
	if otherSecp, ok := other.(SignatureSecp256k1); ok {
		return bytes.Equal(sig[:], otherSecp[:])
	}
	return false
}
