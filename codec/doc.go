// Package codec maps typed records to and from their JSON wire form.
//
// A record type is described once by a [Struct]: an ordered table of
// [Field] descriptors, each pairing a wire name with an accessor on the
// host record and a [Value] codec for the field's shape. The same table
// drives both directions. Writing is sparse: absent fields (nil pointers,
// nil slices, nil maps) are omitted. Reading is forgiving: unknown members
// are skipped and a nested value that is not an object decodes as absent.
//
// Reading and writing stream through json-iterator's Iterator and Stream,
// wrapped by [Reader] and [Writer]. Struct tables and scalar codecs hold no
// mutable state and may be shared by any number of goroutines.
package codec
