// Package malloc implements a buddy-system memory allocator over a
// private program-break arena, with a limited scope:
//
//   - Types and Functions exported by this package are not thread
//     safe.
//   - Blocks are power-of-two granules between 128 bytes and 128KB.
//     Requests whose gross size meets the largest granule are
//     serviced by anonymous kernel mappings instead.
//   - The arena is reserved from the kernel once, on first use, and
//     is never given back. Mapped chunks are returned to the kernel
//     when freed.
//   - Every block carries a metadata header guarded by a
//     process-lifetime random cookie, a corrupted header terminates
//     the process.
//
// Heap instances can be created with explicit settings, or the
// package-level entry points can be used against a process-wide
// default heap.
package malloc
