// SPDX-License-Identifier: MPL-2.0

package gdapi

import "unsafe"

const ptrSize = unsafe.Sizeof(uintptr(0))

// Host value types, spelled as the manifest spells them. Their sizes follow
// the host headers; the contents are owned by the host.
type (
	godot_variant         struct{ data [24]byte }
	godot_string          struct{ _ [ptrSize]byte }
	godot_array           struct{ _ [ptrSize]byte }
	godot_dictionary      struct{ _ [ptrSize]byte }
	godot_pool_byte_array struct{ _ [ptrSize]byte }

	// godot_object is only ever handled by pointer.
	godot_object struct{ _ [0]func() }

	godot_int          = int32
	godot_bool         = bool
	godot_error        int32
	godot_variant_type int32

	godot_signal struct {
		name             godot_string
		num_args         int32
		args             unsafe.Pointer
		num_default_args int32
		default_args     *godot_variant
	}

	godot_net_stream_peer struct {
		version          [2]uint32
		data             unsafe.Pointer
		get_data         uintptr
		get_partial_data uintptr
		put_data         uintptr
		put_partial_data uintptr
		get_available    uintptr
		next             unsafe.Pointer
	}
)

// Exported names for the host types.
type (
	Variant             = godot_variant
	String              = godot_string
	Array               = godot_array
	Dictionary          = godot_dictionary
	PoolByteArray       = godot_pool_byte_array
	Object              = godot_object
	Int                 = godot_int
	Bool                = godot_bool
	Error               = godot_error
	VariantType         = godot_variant_type
	Signal              = godot_signal
	NetStreamPeer       = godot_net_stream_peer
)

// OK is the host's success error code.
const OK Error = 0
