// Package imagebatch resizes a flat directory of same-resolution images in
// one batched call.
//
// The pipeline is strictly linear: [ListImages] picks files by extension,
// [Load] decodes them into a [Batch] of opaque RGB frames, a [Device]
// resizes the whole batch to one target with an antialiasing filter, and
// [Save] writes every frame back under its original filename. Per-file
// decode and save failures are logged and skipped; they never abort the
// batch.
//
// The target resolution is computed once by [TargetSize] from the first
// image that decodes and applied to every frame, whatever its own size.
package imagebatch
