// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"reflect"
	"unicode"
	"unicode/utf8"
)

type (
	// inbound is a request applied on the hub goroutine.
	// client is nil for requests that did not come from a Client (HTTP).
	inbound interface {
		Inbound(hub *Hub, client Client)
	}

	// outbound is anything the hub sends to clients.
	outbound interface {
		outbound()
	}

	// Message is the envelope of every inbound and outbound on a socket:
	// {"data":{...},"type":"impact"}. Only the jsoniter config can encode it.
	Message struct {
		Data interface{}
	}

	// messageType is the lower camel case name of the type in Message.Data.
	messageType string

	// SignedInbound is an inbound along with the Client it came from, if any.
	SignedInbound struct {
		Client Client
		inbound
	}
)

var (
	inboundTypes  = make(map[messageType]reflect.Type)
	outboundTypes = make(map[reflect.Type]messageType)
)

func messageTypeOf(typ reflect.Type) messageType {
	name := typ.Name()
	r, size := utf8.DecodeRuneInString(name)
	return messageType(string(unicode.ToLower(r)) + name[size:])
}

// registerInbound makes inbounds decodable. Called from init.
func registerInbound(inbounds ...inbound) {
	for _, in := range inbounds {
		typ := reflect.TypeOf(in)
		inboundTypes[messageTypeOf(typ)] = typ
	}
}

// registerOutbound makes outbounds encodable. Called from init.
func registerOutbound(outbounds ...outbound) {
	for _, out := range outbounds {
		typ := reflect.TypeOf(out)
		outboundTypes[typ] = messageTypeOf(typ)
	}
}

// newInbound returns a pointer to a zero value of the inbound named typ, or to an
// InvalidInbound if there is none.
func newInbound(typ messageType) interface{} {
	if t, ok := inboundTypes[typ]; ok {
		return reflect.New(t).Interface()
	}
	return &InvalidInbound{messageType: typ}
}

// outboundType panics for unregistered outbounds, which can only come from the hub.
func outboundType(out interface{}) messageType {
	typ := reflect.TypeOf(out)
	m, ok := outboundTypes[typ]
	if !ok {
		panic("unregistered outbound " + typ.String())
	}
	return m
}

// MarshalJSON is replaced by encodeMessage.
func (message Message) MarshalJSON() ([]byte, error) {
	panic("Message requires the jsoniter config")
}

// UnmarshalJSON is replaced by decodeMessage.
func (message *Message) UnmarshalJSON([]byte) error {
	panic("Message requires the jsoniter config")
}
