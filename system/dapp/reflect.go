// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"reflect"
	"strings"

	"github.com/33cn/rps/types"
)

var (
	typeOfError   = reflect.TypeOf((*error)(nil)).Elem()
	typeOfMessage = reflect.TypeOf((*types.Message)(nil)).Elem()
)

// QueryPrefix method name prefix of query handlers
const QueryPrefix = "Query_"

// queryMethod bound method Query_<funcName> when its shape is
// func(*T) (types.Message, error) with *T a types.Message
func queryMethod(v reflect.Value, funcName string) (reflect.Value, bool) {
	if !v.IsValid() || funcName == "" {
		return reflect.Value{}, false
	}
	m := v.MethodByName(QueryPrefix + funcName)
	if !m.IsValid() {
		return reflect.Value{}, false
	}
	mt := m.Type()
	if mt.NumIn() != 1 || mt.NumOut() != 2 {
		return reflect.Value{}, false
	}
	in := mt.In(0)
	if in.Kind() != reflect.Ptr || !in.Implements(typeOfMessage) {
		return reflect.Value{}, false
	}
	if mt.Out(0) != typeOfMessage || mt.Out(1) != typeOfError {
		return reflect.Value{}, false
	}
	return m, true
}

// ListQuery names of the query functions of a driver
func ListQuery(d Driver) []string {
	var names []string
	typ := reflect.TypeOf(d)
	v := reflect.ValueOf(d)
	for i := 0; i < typ.NumMethod(); i++ {
		name := typ.Method(i).Name
		if !strings.HasPrefix(name, QueryPrefix) {
			continue
		}
		fn := strings.TrimPrefix(name, QueryPrefix)
		if _, ok := queryMethod(v, fn); ok {
			names = append(names, fn)
		}
	}
	return names
}
