package outbreak

// Cloner allows records to provide deep copy logic.
//
// The Clone method must return a deep copy where modifications to the clone
// do not affect the original value. Records with only value fields return
// the receiver:
//
//	func (u LastUpdate) Clone() LastUpdate { return u }
//
// Records holding slices or pointers copy them explicitly; Status clones
// its children recursively and copies its timestamp.
type Cloner[T any] interface {
	Clone() T
}
