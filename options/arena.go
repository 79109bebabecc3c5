package options

// WithArenaCapacity returns a [GeometryOptionsFunc] that pre-sizes a scoped
// pool allocator's backing storage for functions that use one, such as
// [boolean.Run]. This is purely a performance hint: supplying too small (or
// no) capacity just means the allocator grows its backing storage as needed.
//
// Parameters:
//   - capacity: The number of vertices the caller expects to process. Values
//     less than or equal to 0 are ignored (the callee falls back to its own
//     estimate).
//
// Returns:
//   - A [GeometryOptionsFunc] function that sets ArenaCapacity in the
//     GeometryOptions struct.
func WithArenaCapacity(capacity int) GeometryOptionsFunc {
	return func(opts *GeometryOptions) {
		if capacity <= 0 {
			return
		}
		opts.ArenaCapacity = capacity
	}
}
