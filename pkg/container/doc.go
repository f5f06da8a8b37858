// Package container provides the CML-H5 container tree and its file codec.
//
// A container is a tree of groups with a fixed shape: the root group holds
// one group per commercial microwave link (CML), and every CML group holds
// one group per channel. Any group may carry named attributes; channel
// groups also carry numeric datasets (the time series).
//
// The validator only sees the read-only [Group] interface. [Node] is the
// in-memory implementation used when reading files and building containers
// in code.
//
// # File Format
//
// Container files are CBOR encoded and start with the self-describe tag
// 0xd9d9f7. Attribute values keep their numeric width: float16, float32
// and float64 values are written with the matching CBOR float encoding and
// read back as float16.Float16, float32 and float64.
package container
