// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"

	"github.com/33cn/rps/common"
	"github.com/33cn/rps/common/address"
	"github.com/33cn/rps/common/crypto"
	"google.golang.org/protobuf/encoding/protowire"
)

// Signature signer public key and signature over Hash()
type Signature struct {
	Ty        int32
	Pubkey    []byte
	Signature []byte
}

// Marshal Marshal
func (s *Signature) Marshal() []byte {
	var b []byte
	b = AppendVarint(b, 1, uint64(s.Ty))
	b = AppendBytes(b, 2, s.Pubkey)
	b = AppendBytes(b, 3, s.Signature)
	return b
}

// Unmarshal Unmarshal
func (s *Signature) Unmarshal(data []byte) error {
	*s = Signature{}
	return DecodeFields(data, func(num protowire.Number, typ protowire.Type, v []byte, x uint64) error {
		switch num {
		case 1:
			s.Ty = int32(x)
			return CheckType(num, typ, protowire.VarintType)
		case 2:
			s.Pubkey = common.CopyBytes(v)
			return CheckType(num, typ, protowire.BytesType)
		case 3:
			s.Signature = common.CopyBytes(v)
			return CheckType(num, typ, protowire.BytesType)
		}
		return nil
	})
}

// Transaction a signed call of an executor
type Transaction struct {
	Execer    []byte
	Payload   []byte
	Signature *Signature
	Nonce     int64
}

// Marshal Marshal
func (tx *Transaction) Marshal() []byte {
	var b []byte
	b = AppendBytes(b, 1, tx.Execer)
	b = AppendBytes(b, 2, tx.Payload)
	if tx.Signature != nil {
		b = AppendMessage(b, 3, tx.Signature)
	}
	b = AppendVarint(b, 4, uint64(tx.Nonce))
	return b
}

// Unmarshal Unmarshal
func (tx *Transaction) Unmarshal(data []byte) error {
	*tx = Transaction{}
	return DecodeFields(data, func(num protowire.Number, typ protowire.Type, v []byte, x uint64) error {
		switch num {
		case 1:
			tx.Execer = common.CopyBytes(v)
			return CheckType(num, typ, protowire.BytesType)
		case 2:
			tx.Payload = common.CopyBytes(v)
			return CheckType(num, typ, protowire.BytesType)
		case 3:
			if err := CheckType(num, typ, protowire.BytesType); err != nil {
				return err
			}
			tx.Signature = &Signature{}
			return tx.Signature.Unmarshal(v)
		case 4:
			tx.Nonce = int64(x)
			return CheckType(num, typ, protowire.VarintType)
		}
		return nil
	})
}

// Hash sha256 of the tx without its signature
func (tx *Transaction) Hash() []byte {
	copytx := *tx
	copytx.Signature = nil
	return common.Sha256(Encode(&copytx))
}

// Sign sign the tx with priv, ty is the crypto driver type
func (tx *Transaction) Sign(ty int32, priv crypto.PrivKey) {
	tx.Signature = nil
	data := Encode(tx)
	pub := priv.PubKey()
	sign := priv.Sign(data)
	tx.Signature = &Signature{
		Ty:        ty,
		Pubkey:    pub.Bytes(),
		Signature: sign.Bytes(),
	}
}

// CheckSign verify the signature against the signer public key
func (tx *Transaction) CheckSign() bool {
	if tx.Signature == nil {
		return false
	}
	c, err := crypto.Load(tx.Signature.Ty)
	if err != nil {
		return false
	}
	pub, err := c.PubKeyFromBytes(tx.Signature.Pubkey)
	if err != nil {
		return false
	}
	sig, err := c.SignatureFromBytes(tx.Signature.Signature)
	if err != nil {
		return false
	}
	copytx := *tx
	copytx.Signature = nil
	return pub.VerifyBytes(Encode(&copytx), sig)
}

// From signer address, "" for an unsigned tx
func (tx *Transaction) From() string {
	if tx.Signature == nil {
		return ""
	}
	return address.PubKeyToAddr(tx.Signature.Pubkey)
}

// JSON readable form of the tx
func (tx *Transaction) JSON() string {
	type signature struct {
		Ty        int32  `json:"ty"`
		Pubkey    string `json:"pubkey"`
		Signature string `json:"signature"`
	}
	type transaction struct {
		Hash      string     `json:"hash"`
		Execer    string     `json:"execer"`
		Payload   string     `json:"payload"`
		Signature *signature `json:"signature,omitempty"`
		Nonce     int64      `json:"nonce"`
		From      string     `json:"from,omitempty"`
	}
	t := &transaction{
		Hash:    common.ToHex(tx.Hash()),
		Execer:  string(tx.Execer),
		Payload: common.ToHex(tx.Payload),
		Nonce:   tx.Nonce,
		From:    tx.From(),
	}
	if tx.Signature != nil {
		t.Signature = &signature{
			Ty:        tx.Signature.Ty,
			Pubkey:    common.ToHex(tx.Signature.Pubkey),
			Signature: common.ToHex(tx.Signature.Signature),
		}
	}
	data, err := json.Marshal(t)
	if err != nil {
		return err.Error()
	}
	return string(data)
}
