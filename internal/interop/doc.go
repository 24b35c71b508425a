// Package interop defines the messages exchanged between the embedded app
// and the host, and their JSON wire form.
//
// Every message travels as an object with a "tag" naming the variant and,
// for variants that carry a payload, a "data" field.
package interop
