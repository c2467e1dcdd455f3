// Package host exposes the conversion engine to WebAssembly guests as a
// wazero host module.
//
// Every direction is exported twice. The converting form is
//
//	<direction>(src_ptr, src_len, dst_ptr, dst_cap, progress_ptr, flags) -> status
//
// and the measuring form is
//
//	<direction>_length(src_ptr, src_len, progress_ptr, flags) -> status
//
// Lengths and capacities count code units of the respective encodings.
// src_len 0xFFFFFFFF scans for a zero unit. The call stores the written and
// consumed unit counts as two little-endian u32 values at progress_ptr and
// returns an errors.Status. A progress_ptr of 0 (NoProgress) stores nothing,
// so address 0 can never receive progress. Buffers live in the caller's linear memory and
// the engine writes straight into it; src and dst must not overlap.
//
// Guests are little-endian, so the "ne" directions and the directions whose
// target has no explicit order produce little-endian units. Sources without
// an explicit order honour a leading BOM and are read little-endian without
// one.
//
// has_bom(ptr, len, width) -> i32 reports whether the len bytes at ptr start
// with a byte order mark for the given code unit width (1, 2 or 4).
package host
