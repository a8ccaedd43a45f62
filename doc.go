// Package mesh is the root of a lossless connectivity codec for indexed
// triangle meshes, implementing the Edgebreaker scheme of Rossignac.
//
// The module is organized leaf-first:
//
//   - symbol: the seven-member Edgebreaker alphabet.
//   - corner: half-edge (corner) id arithmetic.
//   - halfedge: builds corner adjacency from a vertex/face list.
//   - compress: the boundary-traversal compression engine.
//   - decompress: the two-pass inverse reconstruction engine.
//   - history: bit-packed symbol stream codec.
//   - sidetable: hole/merge side-table entries and disambiguation.
//   - objfile: the OBJ-like text container format.
//   - cmd/edgebreak: the command-line front end.
//
// The codec itself (halfedge, compress, decompress) has no dependency on
// logging, CLI, or text I/O; those are ambient concerns layered on top.
package mesh
