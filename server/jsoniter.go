// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"io"
	"reflect"
	"unsafe"

	"github.com/SoftbearStudios/crater/server/world"
	jsoniter "github.com/json-iterator/go"
)

// json is the config every wire format in this package goes through. The package level
// encoders and decoders are registered before it is frozen.
var json = func() jsoniter.API {
	never := func(unsafe.Pointer) bool { return false }

	encoders := []struct {
		value   interface{}
		encode  jsoniter.EncoderFunc
		isEmpty func(unsafe.Pointer) bool
	}{
		{Message{}, encodeMessage, never},
		{Terrain{}, encodeTerrain, never},
		{world.Vec2f{}, encodeVec2f, never},
		{world.AABB{}, encodeAABB, never},
		{world.Angle(0), encodeAngle, isZeroAngle},
	}
	for _, e := range encoders {
		jsoniter.RegisterTypeEncoderFunc(reflect.TypeOf(e.value).String(), e.encode, e.isEmpty)
	}

	jsoniter.RegisterTypeDecoderFunc(reflect.TypeOf(Message{}).String(), decodeMessage)
	jsoniter.RegisterTypeDecoderFunc(reflect.TypeOf(world.Vec2f{}).String(), decodeVec2f)

	// Floats are written in full so decoded snapshots match the hub's.
	return jsoniter.Config{
		SortMapKeys:                   true,
		ObjectFieldMustBeSimpleString: true,
		CaseSensitive:                 true,
	}.Froze()
}()

func encodeMessage(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	data := (*Message)(ptr).Data
	stream.WriteObjectStart()
	stream.WriteObjectField("data")
	stream.WriteVal(data)
	stream.WriteMore()
	stream.WriteObjectField("type")
	stream.WriteString(string(outboundType(data)))
	stream.WriteObjectEnd()
}

// encodeTerrain copies the snapshot the hub already encoded.
func encodeTerrain(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	raw := (*Terrain)(ptr).raw
	if raw == nil {
		stream.WriteNil()
		return
	}
	stream.Write(raw)
}

// encodeVec2f writes [x,y].
func encodeVec2f(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	v := (*world.Vec2f)(ptr)
	stream.WriteArrayStart()
	stream.WriteFloat32(v.X)
	stream.WriteMore()
	stream.WriteFloat32(v.Y)
	stream.WriteArrayEnd()
}

// encodeAABB writes {"x","y","width","height"} rather than nesting the embedded Vec2f.
func encodeAABB(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	aabb := (*world.AABB)(ptr)
	fields := [...]struct {
		name  string
		value float32
	}{
		{"x", aabb.X},
		{"y", aabb.Y},
		{"width", aabb.Width},
		{"height", aabb.Height},
	}

	stream.WriteObjectStart()
	for i, f := range fields {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteObjectField(f.name)
		stream.WriteFloat32(f.value)
	}
	stream.WriteObjectEnd()
}

func encodeAngle(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	stream.WriteFloat32Lossy((*world.Angle)(ptr).Float())
}

func isZeroAngle(ptr unsafe.Pointer) bool {
	return *(*world.Angle)(ptr) == 0
}

// decodeVec2f reads exactly [x,y].
func decodeVec2f(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	var xy [2]float32
	n := 0
	iter.ReadArrayCB(func(iter *jsoniter.Iterator) bool {
		if n < len(xy) {
			xy[n] = iter.ReadFloat32()
		} else {
			iter.Skip()
		}
		n++
		return true
	})

	if iter.Error == nil && n != len(xy) {
		iter.ReportError("decode Vec2f", "expected [x,y]")
	}
	*(*world.Vec2f)(ptr) = world.Vec2f{X: xy[0], Y: xy[1]}
}

// decodeMessage reads {"type":"...","data":{...}} into the registered inbound, in a single
// pass when type comes first. Unknown types decode to InvalidInbound.
func decodeMessage(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	var (
		in    interface{} // pointer to an inbound
		early []byte      // data that came before type
	)

	iter.ReadObjectCB(func(iter *jsoniter.Iterator, field string) bool {
		switch {
		case field == "type" && in == nil:
			in = newInbound(messageType(iter.ReadStringAsSlice()))
		case field == "data" && in != nil:
			iter.ReadVal(in)
		case field == "data":
			early = iter.SkipAndReturnBytes()
		default:
			iter.Skip()
		}
		return true
	})
	if iter.Error != nil {
		return
	}

	if in == nil {
		iter.ReportError("decode Message", "no inbound message type")
		return
	}

	if early != nil {
		pool := iter.Pool()
		dataIter := pool.BorrowIterator(early)
		dataIter.ReadVal(in)
		err := dataIter.Error
		pool.ReturnIterator(dataIter)

		if err != nil && err != io.EOF {
			iter.Error = err
			return
		}
	}

	(*Message)(ptr).Data = reflect.ValueOf(in).Elem().Interface()
}
