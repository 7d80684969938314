// Package sqlite implements the vector store on SQLite. Embeddings are
// stored as little-endian float32 blobs next to the chunk text and
// metadata; similarity search is a cosine-distance scan over the
// collection, which stays comfortably fast at the corpus sizes a single
// practitioner indexes.
package sqlite
