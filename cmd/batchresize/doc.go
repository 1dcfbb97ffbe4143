// Batchresize resizes every image in a directory to one resolution in a
// single batch.
//
// All images are expected to share the resolution of the first one; the
// target is computed once from --scale (default 0.5) or taken from
// --width and --height, and applied to the whole batch.
//
// Usage:
//
//	batchresize ./photos ./thumbs
//	batchresize ./photos ./thumbs --scale 0.25
//	batchresize ./photos ./thumbs --width 640 --height 480 --cpu
package main
