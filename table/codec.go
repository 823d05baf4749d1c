package table

import (
	"reflect"
	"unsafe"

	"github.com/gostonefire/collections/errs"
	"github.com/gostonefire/collections/internal/utils"
)

// KeyCodec - Returns the bytes a key is hashed and compared by. Equal keys must give equal bytes.
// The returned slice may alias key or other memory, the table copies it before keeping it.
type KeyCodec[K comparable] func(key K) []byte

// defaultKeyCodec - Selects the codec for K: string content for string kinds, raw memory for pointer free
// fixed-size types. Other types need an explicit KeyCodec.
func defaultKeyCodec[K comparable]() (codec KeyCodec[K], err error) {
	var k K
	t := reflect.TypeOf(&k).Elem()

	switch {
	case t.Kind() == reflect.String:
		codec = func(key K) []byte {
			return utils.StringBytes(*(*string)(unsafe.Pointer(&key)))
		}
	case utils.IsFixedSize(t):
		codec = func(key K) []byte {
			return utils.ValueBytes(&key)
		}
	default:
		err = errs.NewInvalidConfiguration("key type %s has no fixed byte representation, a KeyCodec is needed", t)
	}

	return
}
